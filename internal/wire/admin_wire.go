package wire

import (
	"truetimeshare/internal/adaptor"
	"truetimeshare/pkg/middleware"
	"truetimeshare/pkg/token"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAdmin(
	r chi.Router,
	handler *adaptor.Handler,
	issuer *token.Issuer,
	log *zap.Logger,
) {
	r.Post("/api/admin/auth/login", handler.Auth.AdminLogin)

	r.Route("/api/admin/user", func(r chi.Router) {
		r.Use(middleware.Authorize(issuer, log))
		r.Use(middleware.Admin(log))

		r.Get("/", handler.AdminUser.List)
		r.Get("/{id}", handler.AdminUser.Get)
		r.Patch("/{id}", handler.AdminUser.Update)
		r.Delete("/{id}", handler.AdminUser.Delete)
	})
}
