package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/gvpass/gvpass-go/internal/crypto"
	"github.com/gvpass/gvpass-go/internal/middleware"
)

// RouterConfig holds the settings the HTTP routes depend on.
type RouterConfig struct {
	JWTSecret      string
	RateLimitRPS   float64
	RateLimitBurst int
}

// NewRouter registers all API routes. Generation routes are rate limited per
// client IP; statistics require an operator token.
func NewRouter(gen *GeneratorHandler, stats *StatsHandler, cfg RouterConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(middleware.Logger)
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))
		r.Post("/api/v1/generate", gen.HandleGenerate)
		r.Post("/api/v1/keys", gen.HandleKey)
		r.Post("/api/v1/strength", gen.HandleStrength)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.JWTAuth(cfg.JWTSecret, crypto.ScopeStats))
		r.Get("/api/v1/stats", stats.HandleStats)
	})

	return r
}
