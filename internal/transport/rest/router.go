package rest

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/manuver-backend/internal/config"
	"github.com/heartmarshall/manuver-backend/internal/domain"
	"github.com/heartmarshall/manuver-backend/internal/transport/middleware"
)

type tokenValidator interface {
	ValidateAccessToken(token string) (domain.Scope, error)
}

// RouterDeps holds everything NewRouter mounts.
type RouterDeps struct {
	Log     *slog.Logger
	CORS    config.CORSConfig
	Tokens  tokenValidator
	Health  *HealthHandler
	Riwayat *RiwayatHandler
	Metrics http.Handler
}

// NewRouter builds the HTTP API.
func NewRouter(d RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery(d.Log))
	r.Use(middleware.CORS(d.CORS))
	r.Use(middleware.Auth(d.Tokens))
	r.Use(middleware.Logger(d.Log))

	r.Get("/live", d.Health.Live)
	r.Get("/ready", d.Health.Ready)
	r.Get("/health", d.Health.Health)
	if d.Metrics != nil {
		r.Handle("/metrics", d.Metrics)
	}

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.RequireScope)

		r.Route("/riwayat", func(r chi.Router) {
			r.Get("/", d.Riwayat.List)
			r.Post("/", d.Riwayat.Create)
			r.Delete("/", d.Riwayat.ClearAll)
			r.Get("/{id}", d.Riwayat.Get)
			r.Put("/{id}", d.Riwayat.Update)
			r.Delete("/{id}", d.Riwayat.Delete)
			r.Get("/{id}/report", d.Riwayat.Report)
		})

		r.Route("/session", func(r chi.Router) {
			r.Get("/", d.Riwayat.View)
			r.Post("/query", d.Riwayat.SetQuery)
			r.Post("/bay", d.Riwayat.SetBayFilter)
			r.Post("/sort", d.Riwayat.SetSortOrder)
			r.Post("/more", d.Riwayat.LoadMore)
			r.Post("/refresh", d.Riwayat.Refresh)
			r.Post("/undo", d.Riwayat.Undo)
		})
	})

	return r
}
