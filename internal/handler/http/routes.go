package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router. Middleware order: trace id, access log, metrics,
// panic recovery, gzip, path cleaning and the token check. The token check
// runs after CleanPath so it sees the same path the router matches.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(
		h.withTraceID,
		h.withLogging,
		h.withMetrics,
		h.withRecover,
		middleware.Compress(5, "application/json"),
		middleware.CleanPath,
		h.auth,
	)

	router.Method(http.MethodGet, "/metrics", h.metrics.Handler())
	router.Get("/version", h.handle(h.getServerVersion))

	router.Route("/admin", func(r chi.Router) {
		if h.requestTimeout > 0 {
			r.Use(middleware.Timeout(h.requestTimeout))
		}

		r.Route("/employee", func(r chi.Router) {
			r.Post("/login", h.handle(h.login))
			r.Post("/logout", h.handle(h.logout))
			r.Post("/", h.handle(h.saveEmployee))
			r.Put("/", h.handle(h.updateEmployee))
			r.Get("/page", h.handle(h.pageEmployees))
			r.Post("/status/{status}", h.handle(h.employeeStatus))
			r.Get("/{id}", h.handle(h.getEmployee))
		})

		r.Route("/category", func(r chi.Router) {
			r.Post("/", h.handle(h.saveCategory))
			r.Put("/", h.handle(h.updateCategory))
			r.Delete("/", h.handle(h.deleteCategory))
			r.Get("/page", h.handle(h.pageCategories))
			r.Post("/status/{status}", h.handle(h.categoryStatus))
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod)

	return router
}
