package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	if h.cfg.TrustProxyHeaders {
		router.Use(middleware.RealIP)
	}
	router.Use(h.withTraceID, h.withLogging, h.withCORS, withGZip)
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}

	// routes without authorization
	router.Get("/", h.health)
	router.Get("/api/version", h.getServerVersion)

	router.Route("/users", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(h.withRateLimit)
			r.Post("/signup", h.signup)
			r.Post("/login", h.login)
			r.Post("/refresh-token", h.refreshToken)
		})

		r.Group(func(r chi.Router) {
			r.Use(h.protect)

			r.Get("/me", h.me)
			r.Get("/profile", h.profile)

			r.Get("/watchlist", h.getWatchlist)
			r.Post("/watchlist", h.addToWatchlist)
			r.Delete("/watchlist/{movieId}", h.removeFromWatchlist)
			r.Patch("/watchlist/{movieId}/rating", h.setRating)
			r.Patch("/watchlist/{movieId}/review", h.setReview)

			r.Get("/backlog", h.getBacklog)
			r.Post("/backlog", h.addToBacklog)
			r.Delete("/backlog/{movieId}", h.removeFromBacklog)
			r.Post("/backlog/{movieId}/move", h.moveToWatchlist)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))
	router.NotFound(notFound)

	return router
}
