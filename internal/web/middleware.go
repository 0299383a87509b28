package web

import (
	"context"
	"net/http"

	"github.com/abhisek/promptquest/internal/i18n"
)

type contextKey string

const langKey contextKey = "lang"

// languageMiddleware resolves the request language from the ?lang= query
// parameter or the Accept-Language header and stores it in the context.
func (s *Server) languageMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lang := i18n.Detect(r.URL.Query().Get("lang"), r.Header.Get("Accept-Language"))
		ctx := context.WithValue(r.Context(), langKey, lang)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// langFrom extracts the resolved language from the request context.
func langFrom(ctx context.Context) i18n.Lang {
	if l, ok := ctx.Value(langKey).(i18n.Lang); ok {
		return l
	}
	return i18n.LangJA
}
