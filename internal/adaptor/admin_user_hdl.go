package adaptor

import (
	"net/http"
	"strconv"

	"truetimeshare/internal/dto/request"
	"truetimeshare/internal/usecase"
	"truetimeshare/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type AdminUserHandler struct {
	service usecase.UserService
	log     *zap.Logger
}

func NewAdminUserHandler(service usecase.UserService, log *zap.Logger) *AdminUserHandler {
	return &AdminUserHandler{
		service: service,
		log:     log,
	}
}

// List handles GET /api/admin/user
func (h *AdminUserHandler) List(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	perPage, _ := strconv.Atoi(r.URL.Query().Get("perPage"))

	resp, err := h.service.ListUsers(r.Context(), page, perPage)
	if err != nil {
		handleResourceError(h.log, w, err, "list users")
		return
	}

	utils.ResponseSuccess(w, "Users found", resp)
}

// Get handles GET /api/admin/user/{id}
func (h *AdminUserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseUUID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid user id", nil)
		return
	}

	resp, err := h.service.GetUser(r.Context(), id)
	if err != nil {
		handleResourceError(h.log, w, err, "get user")
		return
	}

	utils.ResponseSuccess(w, "User found", resp)
}

// Update handles PATCH /api/admin/user/{id}
func (h *AdminUserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseUUID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid user id", nil)
		return
	}

	var req request.UpdateUserRequest
	if !decode(w, r, &req) {
		return
	}

	resp, err := h.service.UpdateUser(r.Context(), id, &req)
	if err != nil {
		handleResourceError(h.log, w, err, "update user")
		return
	}

	utils.ResponseSuccess(w, "User updated", resp)
}

// Delete handles DELETE /api/admin/user/{id}
func (h *AdminUserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseUUID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid user id", nil)
		return
	}

	if err := h.service.DeleteUser(r.Context(), id); err != nil {
		handleResourceError(h.log, w, err, "delete user")
		return
	}

	utils.ResponseSuccess(w, "User deleted", nil)
}
