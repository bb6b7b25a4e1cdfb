package adaptor

import (
	"errors"
	"net/http"

	"truetimeshare/internal/usecase"
	"truetimeshare/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth      *AuthHandler
	Property  *PropertyHandler
	Community *CommunityHandler
	AdminUser *AdminUserHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:      NewAuthHandler(service.Auth, log),
		Property:  NewPropertyHandler(service.Property, log),
		Community: NewCommunityHandler(service.Community, log),
		AdminUser: NewAdminUserHandler(service.User, log),
	}
}

// handleResourceError is the mapping for plain resource endpoints,
// where a missing record is a 404 rather than a rejected credential.
func handleResourceError(log *zap.Logger, w http.ResponseWriter, err error, operation string) {
	if errors.Is(err, usecase.ErrNotFound) {
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, "Not found")
		return
	}
	handleServiceError(log, w, err, operation)
}

// handleServiceError maps the usecase error taxonomy onto HTTP status
// codes. Credential and grant failures all answer 406 so a caller
// can't probe which check tripped beyond the returned message.
// Anything outside the taxonomy is an unexpected failure and answers
// 500 without leaking detail.
func handleServiceError(log *zap.Logger, w http.ResponseWriter, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrConflict):
		log.Warn(operation+" failed - conflict", zap.Error(err))
		utils.ResponseConflict(w, "Already registered")

	case errors.Is(err, usecase.ErrNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotAcceptable(w, "Token is not found")

	case errors.Is(err, usecase.ErrExpired):
		log.Warn(operation+" failed - expired", zap.Error(err))
		utils.ResponseNotAcceptable(w, "Token is expired")

	case errors.Is(err, usecase.ErrAlreadyUsed):
		log.Warn(operation+" failed - already used", zap.Error(err))
		utils.ResponseNotAcceptable(w, "Token is already used")

	case errors.Is(err, usecase.ErrCodeMismatch):
		log.Warn(operation+" failed - code mismatch", zap.Error(err))
		utils.ResponseNotAcceptable(w, "Verification code does not match")

	case errors.Is(err, usecase.ErrUnauthorized):
		log.Warn(operation+" failed - unauthorized", zap.Error(err))
		utils.ResponseUnauthorized(w, "Invalid credentials")

	case errors.Is(err, usecase.ErrForbidden):
		log.Warn(operation+" failed - forbidden", zap.Error(err))
		utils.ResponseForbidden(w, "Access denied")

	case errors.Is(err, usecase.ErrValidation):
		log.Warn(operation+" failed - validation", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
