package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/passgen/passgen-go/internal/config"
	"github.com/passgen/passgen-go/internal/middleware"
)

// NewRouter wires the API routes. The rate limiter's cleanup goroutine stops when ctx is done.
func NewRouter(ctx context.Context, cfg config.Config, gen *GeneratorHandler) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Use(middleware.Logger)

	r.Get("/health", HandleHealth)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(ctx, cfg.RateLimitRPS, cfg.RateLimitBurst))
		r.Post("/api/v1/generate", gen.HandleGenerate)
	})

	return r
}
