package challenge

import (
	"errors"

	"github.com/abhisek/promptquest/internal/i18n"
)

// ErrNotFound is returned when a challenge id is not in the catalog.
var ErrNotFound = errors.New("challenge not found")

// Text is a per-language string. Challenges carry localized title,
// description, and goal texts.
type Text map[i18n.Lang]string

// For returns the text in the requested language, falling back to the
// primary language.
func (t Text) For(lang i18n.Lang) string {
	if s, ok := t[lang]; ok && s != "" {
		return s
	}
	return t[i18n.LangJA]
}

// Challenge is a fixed prompt-engineering task. Immutable after load.
type Challenge struct {
	ID          int  `yaml:"id"`
	Title       Text `yaml:"title"`
	Description Text `yaml:"description"`
	Goal        Text `yaml:"goal"`
}
