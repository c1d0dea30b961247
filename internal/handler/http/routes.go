package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, h.metrics.withMetrics, withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Get("/health", h.health)
	router.Handle("/metrics", h.metrics.Handler())

	router.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.register)
			r.Post("/login", h.login)
			r.With(h.requireAuth).Get("/me", h.me)
		})

		r.Route("/recovery", func(r chi.Router) {
			r.Post("/questions", h.recoveryQuestions)
			r.Post("/verify", h.verifyAnswers)
			r.Put("/reset", h.resetPassword)
			r.With(h.requireAuth).Post("/security", h.setSecurityAnswers)
		})

		r.Get("/foods", h.listFoods)

		r.Route("/orders", func(r chi.Router) {
			// summary, listing and purge stay open to anonymous callers
			r.Get("/summary", h.ordersSummary)
			r.With(h.optionalAuth).Get("/mine", h.myOrders)
			r.Get("/{id}", h.getOrder)
			r.Delete("/", h.deleteOrders)
			r.With(h.requireAuth).Post("/", h.createOrder)
		})
	})

	// routes of the previous client generation
	router.Post("/login", h.legacyLogin)
	router.Post("/register", h.legacyRegister)

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
