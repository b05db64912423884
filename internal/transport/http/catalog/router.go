package catalog

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// NewRouter assembles the HTTP handler with the service middleware
// stack.
func NewRouter(h *Handler, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(WithRequestID)
	r.Use(RequestLogger(logger))
	r.Use(CORS)
	r.Mount("/", h.Routes())
	return r
}
