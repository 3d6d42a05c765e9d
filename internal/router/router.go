package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/saulo-duarte/studyquiz-api/docs"
	"github.com/saulo-duarte/studyquiz-api/internal/aiquiz"
	"github.com/saulo-duarte/studyquiz-api/internal/config"
	"github.com/saulo-duarte/studyquiz-api/internal/health"
)

const (
	notFoundError   = "Not found"
	notFoundMessage = "The requested endpoint does not exist"
)

type RouterConfig struct {
	AIQuizHandler  *aiquiz.Handler
	HealthHandler  *health.Handler
	AllowedOrigins []string
	MaxBodyBytes   int64
}

func New(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	r.NotFound(notFound)
	r.MethodNotAllowed(notFound)

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.StripSlashes)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "Authorization", "X-Request-Id"},
		MaxAge:         86400,
	}))
	r.Use(middleware.RequestSize(cfg.MaxBodyBytes))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", cfg.HealthHandler.Check)
		r.Get("/docs", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, "/api/docs/index.html", http.StatusMovedPermanently)
		})
		r.Get("/docs/*", httpSwagger.WrapHandler)
		r.Mount("/", aiquiz.Routes(cfg.AIQuizHandler))
	})

	return r
}

// notFound also answers known paths hit with the wrong method.
func notFound(w http.ResponseWriter, r *http.Request) {
	config.Error(w, http.StatusNotFound, notFoundError, notFoundMessage)
}
