package wire

import (
	"truetimeshare/internal/adaptor"
	"truetimeshare/pkg/middleware"
	"truetimeshare/pkg/token"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireProperty(
	r chi.Router,
	propertyHandler *adaptor.PropertyHandler,
	issuer *token.Issuer,
	log *zap.Logger,
) {
	r.Route("/api/property", func(r chi.Router) {
		// Public listing detail
		r.Get("/{id}", propertyHandler.GetByID)

		// Owner routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.Authorize(issuer, log))
			r.Get("/", propertyHandler.GetMine)
			r.Post("/", propertyHandler.Create)
			r.Patch("/{id}", propertyHandler.Update)
			r.Delete("/{id}", propertyHandler.Delete)
		})
	})
}
