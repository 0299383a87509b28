package web

import (
	"encoding/json"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/abhisek/promptquest/internal/i18n"
)

var pageNames = []string{"home", "challenges", "challenge", "leaderboard", "profile"}

// parseViews compiles one template set per page, each pairing the shared
// layout with the page body.
func (s *Server) parseViews() error {
	views := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		t, err := template.ParseFS(viewFS, "views/layout.html", "views/"+name+".html")
		if err != nil {
			return fmt.Errorf("parse view %q: %w", name, err)
		}
		views[name] = t
	}
	s.views = views
	return nil
}

// basePage carries what every page needs: the resolved language, the
// active nav item, and a handle on the locale store for lookups from
// inside templates.
type basePage struct {
	Lang    i18n.Lang
	Active  string
	locales *i18n.Store
}

// T resolves a "section.key" translation for the page language.
func (p basePage) T(key string) string {
	return p.locales.T(p.Lang, key)
}

// TranslationsJSON exposes the full translation table for the page
// language to client-side scripts.
func (p basePage) TranslationsJSON() template.JS {
	b, err := json.Marshal(p.locales.Table(p.Lang))
	if err != nil {
		return template.JS("{}")
	}
	return template.JS(b)
}

func (s *Server) newBasePage(lang i18n.Lang, active string) basePage {
	return basePage{Lang: lang, Active: active, locales: s.locales}
}

func (s *Server) render(w http.ResponseWriter, name string, data any) {
	t, ok := s.views[name]
	if !ok {
		slog.Error("unknown view", "name", name)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := t.ExecuteTemplate(w, "layout", data); err != nil {
		slog.Error("failed to render view", "name", name, "error", err)
	}
}
