package adaptor

import (
	"encoding/json"
	"net/http"

	"truetimeshare/internal/dto/request"
	"truetimeshare/internal/usecase"
	"truetimeshare/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service usecase.AuthService
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		log:     log,
	}
}

// decode unmarshals and validates the request body. A false return
// means the response has already been written.
func decode(w http.ResponseWriter, r *http.Request, req any) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return false
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return false
	}

	return true
}

// Register handles POST /api/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest
	if !decode(w, r, &req) {
		return
	}

	if err := h.service.Register(r.Context(), &req); err != nil {
		handleServiceError(h.log, w, err, "register")
		return
	}

	utils.ResponseCreated(w, "Registration successful. Please verify your account.", nil)
}

// RegisterFromLanding handles POST /api/auth/register-from-landing
func (h *AuthHandler) RegisterFromLanding(w http.ResponseWriter, r *http.Request) {
	var req request.LandingRegisterRequest
	if !decode(w, r, &req) {
		return
	}

	if err := h.service.RegisterFromLanding(r.Context(), &req); err != nil {
		handleServiceError(h.log, w, err, "register from landing")
		return
	}

	utils.ResponseCreated(w, "Registration successful. Please verify your account.", nil)
}

// LoginByEmail handles POST /api/auth/login-by-email
func (h *AuthHandler) LoginByEmail(w http.ResponseWriter, r *http.Request) {
	var req request.LoginByEmailRequest
	if !decode(w, r, &req) {
		return
	}

	resp, err := h.service.LoginByEmail(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "login by email")
		return
	}

	utils.ResponseSuccess(w, "Login successful", resp)
}

// LoginByPhone handles POST /api/auth/login-by-phone
func (h *AuthHandler) LoginByPhone(w http.ResponseWriter, r *http.Request) {
	var req request.LoginByPhoneRequest
	if !decode(w, r, &req) {
		return
	}

	resp, err := h.service.LoginByPhone(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "login by phone")
		return
	}

	utils.ResponseSuccess(w, "Login successful", resp)
}

// Logout handles POST /api/auth/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	if err := h.service.Logout(r.Context(), userID); err != nil {
		handleServiceError(h.log, w, err, "logout")
		return
	}

	utils.ResponseSuccess(w, "Logout successful", nil)
}

// VerifyRegisterToken handles POST /api/auth/verify-register-token
func (h *AuthHandler) VerifyRegisterToken(w http.ResponseWriter, r *http.Request) {
	var req request.VerifyTokenRequest
	if !decode(w, r, &req) {
		return
	}

	if err := h.service.VerifyRegisterToken(r.Context(), req.Token); err != nil {
		handleServiceError(h.log, w, err, "verify register token")
		return
	}

	utils.ResponseSuccess(w, "Account verified", nil)
}

// VerifyRegisterCode handles POST /api/auth/verify-register-code
func (h *AuthHandler) VerifyRegisterCode(w http.ResponseWriter, r *http.Request) {
	var req request.VerifyCodeRequest
	if !decode(w, r, &req) {
		return
	}

	if err := h.service.VerifyRegisterCode(r.Context(), req.Phone, req.Code); err != nil {
		handleServiceError(h.log, w, err, "verify register code")
		return
	}

	utils.ResponseSuccess(w, "Code verified", nil)
}

// ResendRegisterCode handles POST /api/auth/resend-register-code
func (h *AuthHandler) ResendRegisterCode(w http.ResponseWriter, r *http.Request) {
	var req request.PhoneRequest
	if !decode(w, r, &req) {
		return
	}

	if err := h.service.ResendRegisterCode(r.Context(), req.Phone); err != nil {
		handleServiceError(h.log, w, err, "resend register code")
		return
	}

	utils.ResponseSuccess(w, "Code resent", nil)
}

// UpdateRegisterPassword handles POST /api/auth/update-register-password
func (h *AuthHandler) UpdateRegisterPassword(w http.ResponseWriter, r *http.Request) {
	var req request.PhonePasswordRequest
	if !decode(w, r, &req) {
		return
	}

	if err := h.service.UpdateRegisterPassword(r.Context(), req.Phone, req.Password); err != nil {
		handleServiceError(h.log, w, err, "update register password")
		return
	}

	utils.ResponseSuccess(w, "Registration completed", nil)
}

// RegenerateToken handles POST /api/auth/regenerate-token
func (h *AuthHandler) RegenerateToken(w http.ResponseWriter, r *http.Request) {
	var req request.RegenerateTokenRequest
	if !decode(w, r, &req) {
		return
	}

	resp, err := h.service.RegenerateToken(r.Context(), req.RefreshToken)
	if err != nil {
		handleServiceError(h.log, w, err, "regenerate token")
		return
	}

	utils.ResponseSuccess(w, "Tokens regenerated", resp)
}

// SendResetLink handles POST /api/auth/send-reset-link
func (h *AuthHandler) SendResetLink(w http.ResponseWriter, r *http.Request) {
	var req request.EmailRequest
	if !decode(w, r, &req) {
		return
	}

	if err := h.service.SendResetLink(r.Context(), req.Email); err != nil {
		handleServiceError(h.log, w, err, "send reset link")
		return
	}

	utils.ResponseSuccess(w, "Reset link sent", nil)
}

// SendResetCode handles POST /api/auth/send-reset-code
func (h *AuthHandler) SendResetCode(w http.ResponseWriter, r *http.Request) {
	var req request.PhoneRequest
	if !decode(w, r, &req) {
		return
	}

	if err := h.service.SendResetCode(r.Context(), req.Phone); err != nil {
		handleServiceError(h.log, w, err, "send reset code")
		return
	}

	utils.ResponseSuccess(w, "Reset code sent", nil)
}

// VerifyResetToken handles POST /api/auth/verify-reset-token
func (h *AuthHandler) VerifyResetToken(w http.ResponseWriter, r *http.Request) {
	var req request.VerifyTokenRequest
	if !decode(w, r, &req) {
		return
	}

	if err := h.service.VerifyResetToken(r.Context(), req.Token); err != nil {
		handleServiceError(h.log, w, err, "verify reset token")
		return
	}

	utils.ResponseSuccess(w, "Token verified", nil)
}

// VerifyResetCode handles POST /api/auth/verify-reset-code
func (h *AuthHandler) VerifyResetCode(w http.ResponseWriter, r *http.Request) {
	var req request.VerifyCodeRequest
	if !decode(w, r, &req) {
		return
	}

	if err := h.service.VerifyResetCode(r.Context(), req.Phone, req.Code); err != nil {
		handleServiceError(h.log, w, err, "verify reset code")
		return
	}

	utils.ResponseSuccess(w, "Code verified", nil)
}

// ResendResetCode handles POST /api/auth/resend-reset-code
func (h *AuthHandler) ResendResetCode(w http.ResponseWriter, r *http.Request) {
	var req request.PhoneRequest
	if !decode(w, r, &req) {
		return
	}

	if err := h.service.ResendResetCode(r.Context(), req.Phone); err != nil {
		handleServiceError(h.log, w, err, "resend reset code")
		return
	}

	utils.ResponseSuccess(w, "Code resent", nil)
}

// ResetPasswordByToken handles POST /api/auth/reset-password-by-token
func (h *AuthHandler) ResetPasswordByToken(w http.ResponseWriter, r *http.Request) {
	var req request.TokenPasswordRequest
	if !decode(w, r, &req) {
		return
	}

	if err := h.service.ResetPasswordByToken(r.Context(), req.Token, req.Password); err != nil {
		handleServiceError(h.log, w, err, "reset password by token")
		return
	}

	utils.ResponseSuccess(w, "Password reset", nil)
}

// ResetPasswordByPhone handles POST /api/auth/reset-password-by-phone
func (h *AuthHandler) ResetPasswordByPhone(w http.ResponseWriter, r *http.Request) {
	var req request.PhonePasswordRequest
	if !decode(w, r, &req) {
		return
	}

	if err := h.service.ResetPasswordByPhone(r.Context(), req.Phone, req.Password); err != nil {
		handleServiceError(h.log, w, err, "reset password by phone")
		return
	}

	utils.ResponseSuccess(w, "Password reset", nil)
}

// AdminLogin handles POST /api/admin/auth/login
func (h *AuthHandler) AdminLogin(w http.ResponseWriter, r *http.Request) {
	var req request.LoginByEmailRequest
	if !decode(w, r, &req) {
		return
	}

	resp, err := h.service.AdminLogin(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "admin login")
		return
	}

	utils.ResponseSuccess(w, "Login successful", resp)
}
