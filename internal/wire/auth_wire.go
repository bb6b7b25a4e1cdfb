package wire

import (
	"truetimeshare/internal/adaptor"
	"truetimeshare/pkg/middleware"
	"truetimeshare/pkg/token"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	issuer *token.Issuer,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/register", authHandler.Register)
		r.Post("/register-from-landing", authHandler.RegisterFromLanding)
		r.Post("/login-by-email", authHandler.LoginByEmail)
		r.Post("/login-by-phone", authHandler.LoginByPhone)
		r.Post("/regenerate-token", authHandler.RegenerateToken)

		r.Post("/verify-register-token", authHandler.VerifyRegisterToken)
		r.Post("/verify-register-code", authHandler.VerifyRegisterCode)
		r.Post("/resend-register-code", authHandler.ResendRegisterCode)
		r.Post("/update-register-password", authHandler.UpdateRegisterPassword)

		r.Post("/send-reset-link", authHandler.SendResetLink)
		r.Post("/send-reset-code", authHandler.SendResetCode)
		r.Post("/verify-reset-token", authHandler.VerifyResetToken)
		r.Post("/verify-reset-code", authHandler.VerifyResetCode)
		r.Post("/resend-reset-code", authHandler.ResendResetCode)
		r.Post("/reset-password-by-token", authHandler.ResetPasswordByToken)
		r.Post("/reset-password-by-phone", authHandler.ResetPasswordByPhone)

		// ==================== PROTECTED ROUTES ====================
		r.With(middleware.Authorize(issuer, log)).Post("/logout", authHandler.Logout)
	})
}
