package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
)

// Lang identifies a supported UI language.
type Lang string

const (
	// LangJA is the primary language and the default for unknown values.
	LangJA Lang = "ja"
	LangEN Lang = "en"
)

// Valid reports whether l is a supported language.
func (l Lang) Valid() bool {
	return l == LangJA || l == LangEN
}

// Detect resolves the request language. An explicit ?lang= value wins,
// otherwise an Accept-Language header starting with "en" selects English.
// Everything else falls back to Japanese.
func Detect(queryLang, acceptLanguage string) Lang {
	if l := Lang(queryLang); l.Valid() {
		return l
	}
	if queryLang == "" && strings.HasPrefix(acceptLanguage, "en") {
		return LangEN
	}
	return LangJA
}

//go:embed locales/*.json
var localeFS embed.FS

// Store holds the per-language string tables. Loaded once at startup,
// read-only thereafter. Rendering only; the evaluation pipeline carries
// its own localized strings.
type Store struct {
	tables map[Lang]map[string]map[string]string
}

// Load parses the embedded locale tables.
func Load() (*Store, error) {
	s := &Store{tables: make(map[Lang]map[string]map[string]string)}
	for _, lang := range []Lang{LangJA, LangEN} {
		data, err := localeFS.ReadFile(fmt.Sprintf("locales/%s.json", lang))
		if err != nil {
			return nil, fmt.Errorf("read locale %s: %w", lang, err)
		}
		var table map[string]map[string]string
		if err := json.Unmarshal(data, &table); err != nil {
			return nil, fmt.Errorf("parse locale %s: %w", lang, err)
		}
		s.tables[lang] = table
	}
	return s, nil
}

// T looks up a "section.key" string for the given language. Missing
// entries fall back to the primary language, then to the key itself.
func (s *Store) T(lang Lang, key string) string {
	section, name, ok := strings.Cut(key, ".")
	if !ok {
		return key
	}
	if v, ok := s.tables[lang][section][name]; ok {
		return v
	}
	if v, ok := s.tables[LangJA][section][name]; ok {
		return v
	}
	return key
}

// Table returns the full string table for a language, for embedding in
// rendered pages as client-side translations.
func (s *Store) Table(lang Lang) map[string]map[string]string {
	if t, ok := s.tables[lang]; ok {
		return t
	}
	return s.tables[LangJA]
}
