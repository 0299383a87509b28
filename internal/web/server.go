package web

import (
	"embed"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/abhisek/promptquest/internal/challenge"
	"github.com/abhisek/promptquest/internal/config"
	"github.com/abhisek/promptquest/internal/evaluate"
	"github.com/abhisek/promptquest/internal/i18n"
	"github.com/abhisek/promptquest/internal/progress"
)

//go:embed views/*.html
var viewFS embed.FS

//go:embed static
var staticFS embed.FS

// Server binds the catalog, evaluator, progress store, and locale store
// into the HTTP surface.
type Server struct {
	cfg       config.UserConfig
	router    *chi.Mux
	catalog   *challenge.Catalog
	evaluator *evaluate.Evaluator
	store     *progress.MemoryStore
	locales   *i18n.Store
	views     map[string]*template.Template
}

// NewServer creates the HTTP server with all routes configured.
func NewServer(
	cfg config.UserConfig,
	catalog *challenge.Catalog,
	evaluator *evaluate.Evaluator,
	store *progress.MemoryStore,
	locales *i18n.Store,
) (*Server, error) {
	s := &Server{
		cfg:       cfg,
		catalog:   catalog,
		evaluator: evaluator,
		store:     store,
		locales:   locales,
	}
	if err := s.parseViews(); err != nil {
		return nil, err
	}
	s.setupRouter()
	return s, nil
}

// Router returns the configured router.
func (s *Server) Router() http.Handler {
	return s.router
}

func (s *Server) setupRouter() {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.loggingMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))

	r.Use(s.languageMiddleware)

	r.Get("/health", s.handleHealth)

	// Pages
	r.Get("/", s.handleHome)
	r.Get("/challenges", s.handleChallenges)
	r.Get("/challenge/{id}", s.handleChallengeDetail)
	r.Get("/leaderboard", s.handleLeaderboard)
	r.Get("/profile", s.handleProfile)

	// JSON API
	r.Post("/api/submit-prompt", s.handleSubmitPrompt)

	// Static assets
	staticRoot, _ := fs.Sub(staticFS, "static")
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServerFS(staticRoot)))

	s.router = r
}

// loggingMiddleware logs HTTP requests using slog.
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			slog.Info("http request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration_ms", time.Since(start).Milliseconds(),
				"request_id", middleware.GetReqID(r.Context()),
				"remote_addr", r.RemoteAddr,
			)
		}()

		next.ServeHTTP(ww, r)
	})
}
