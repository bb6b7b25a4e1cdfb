package adaptor

import (
	"net/http"

	"truetimeshare/internal/dto/request"
	"truetimeshare/internal/usecase"
	"truetimeshare/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type PropertyHandler struct {
	service usecase.PropertyService
	log     *zap.Logger
}

func NewPropertyHandler(service usecase.PropertyService, log *zap.Logger) *PropertyHandler {
	return &PropertyHandler{
		service: service,
		log:     log,
	}
}

// Create handles POST /api/property
func (h *PropertyHandler) Create(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreatePropertyRequest
	if !decode(w, r, &req) {
		return
	}

	resp, err := h.service.Create(r.Context(), ownerID, &req)
	if err != nil {
		handleResourceError(h.log, w, err, "create property")
		return
	}

	utils.ResponseCreated(w, "Property created", resp)
}

// GetByID handles GET /api/property/{id}
func (h *PropertyHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseUUID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid property id", nil)
		return
	}

	resp, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		handleResourceError(h.log, w, err, "get property")
		return
	}

	utils.ResponseSuccess(w, "Property found", resp)
}

// GetMine handles GET /api/property
func (h *PropertyHandler) GetMine(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	resp, err := h.service.GetAllByOwner(r.Context(), ownerID)
	if err != nil {
		handleResourceError(h.log, w, err, "list properties")
		return
	}

	utils.ResponseSuccess(w, "Properties found", resp)
}

// Update handles PATCH /api/property/{id}
func (h *PropertyHandler) Update(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	id, err := utils.ParseUUID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid property id", nil)
		return
	}

	var req request.UpdatePropertyRequest
	if !decode(w, r, &req) {
		return
	}

	resp, err := h.service.Update(r.Context(), ownerID, id, &req)
	if err != nil {
		handleResourceError(h.log, w, err, "update property")
		return
	}

	utils.ResponseSuccess(w, "Property updated", resp)
}

// Delete handles DELETE /api/property/{id}
func (h *PropertyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	id, err := utils.ParseUUID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid property id", nil)
		return
	}

	if err := h.service.Delete(r.Context(), ownerID, id); err != nil {
		handleResourceError(h.log, w, err, "delete property")
		return
	}

	utils.ResponseSuccess(w, "Property deleted", nil)
}
