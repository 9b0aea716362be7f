package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/itchan-dev/agora/backend/internal/setup"
	mw "github.com/itchan-dev/agora/shared/middleware"
	"github.com/itchan-dev/agora/shared/middleware/metrics"
)

// Backend CSP: strict policy (JSON API only, no scripts/styles needed)
const backendCSP = "default-src 'none'; frame-ancestors 'none'"

// New creates and configures a chi router with all the routes.
// Rate limiters installed with Use limit all endpoints of that group combined.
func New(deps *setup.Dependencies) http.Handler {
	r := chi.NewRouter()
	cfg := deps.Config.Public

	r.Use(mw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(metrics.Middleware)
	r.Use(chimw.Compress(5))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CorsOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", mw.CSRFHeader},
		AllowCredentials: len(cfg.CorsOrigins) > 0,
		MaxAge:           300,
	}))
	r.Use(mw.SecurityHeaders(cfg.SecureCookies, backendCSP))

	h := deps.Handler
	authMw := deps.AuthMiddleware

	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Handle("/metrics", metrics.Handler())

	r.Route("/v1", func(r chi.Router) {
		// Reads are public, identity is attached when present
		r.Group(func(r chi.Router) {
			r.Use(authMw.OptionalAuth())

			r.Get("/threads", h.GetHome)
			r.Get("/stats", h.GetStats)
			r.Get("/random", h.RandomThread)
			r.Get("/threads/{thread}", h.GetThread)
			r.Get("/csrf", h.GetCSRFToken)
			r.With(mw.RateLimit(deps.Limiters.Search, mw.GetIP)).Get("/search", h.Search)
		})

		// Writes need a user and share one per-user budget
		r.Group(func(r chi.Router) {
			r.Use(authMw.NeedAuth())
			r.Use(mw.ValidateCSRFToken())
			r.Use(mw.RateLimit(deps.Limiters.Write, mw.GetUserIDFromContext))

			r.Post("/threads", h.CreateThread)
			r.Delete("/threads/{thread}", h.DeleteThread)
			r.Post("/threads/{thread}/like", h.ToggleThreadLike)
			r.Post("/threads/{thread}/comments", h.CreateComment)
			r.Put("/comments/{comment}", h.EditComment)
			r.Delete("/comments/{comment}", h.DeleteComment)
			r.Post("/comments/{comment}/like", h.ToggleCommentLike)
		})
	})

	return r
}
