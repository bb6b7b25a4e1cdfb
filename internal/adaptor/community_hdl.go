package adaptor

import (
	"net/http"

	"truetimeshare/internal/dto/request"
	"truetimeshare/internal/usecase"
	"truetimeshare/pkg/utils"

	"go.uber.org/zap"
)

type CommunityHandler struct {
	service usecase.CommunityService
	log     *zap.Logger
}

func NewCommunityHandler(service usecase.CommunityService, log *zap.Logger) *CommunityHandler {
	return &CommunityHandler{
		service: service,
		log:     log,
	}
}

// RegisterEmail handles POST /api/community/register-email
func (h *CommunityHandler) RegisterEmail(w http.ResponseWriter, r *http.Request) {
	var req request.CommunityEmailRequest
	if !decode(w, r, &req) {
		return
	}

	if err := h.service.RegisterEmail(r.Context(), req.Email); err != nil {
		handleServiceError(h.log, w, err, "register community email")
		return
	}

	utils.ResponseCreated(w, "Email registered", nil)
}
