package adaptor

import (
	"encoding/json"
	"net/http"
	"strconv"

	"user-admin/internal/dto/request"
	"user-admin/internal/usecase"
	"user-admin/pkg/notify"
	"user-admin/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type UserHandler struct {
	service usecase.UserService
	toasts  *notify.Buffer
	log     *zap.Logger
}

func NewUserHandler(service usecase.UserService, toasts *notify.Buffer, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		toasts:  toasts,
		log:     log,
	}
}

// LoadUsers handles GET /api/console/users
func (h *UserHandler) LoadUsers(w http.ResponseWriter, r *http.Request) {
	list := h.service.Load(r.Context())
	utils.ResponseSuccess(w, "Users retrieved successfully", list, h.toasts.Drain())
}

// CreateUser handles POST /api/console/users
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req request.UserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil, h.toasts.Drain())
		return
	}

	created, err := h.service.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, h.toasts, err, "create user")
		return
	}

	utils.ResponseCreated(w, "User created successfully", created, h.toasts.Drain())
}

// GetUser handles GET /api/console/users/{id}, used to populate the
// edit form.
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		utils.ResponseBadRequest(w, "User ID is required", nil, h.toasts.Drain())
		return
	}

	user, err := h.service.Get(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, h.toasts, err, "get user")
		return
	}

	utils.ResponseSuccess(w, "User retrieved successfully", user, h.toasts.Drain())
}

// UpdateUser handles PUT /api/console/users/{id}
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		utils.ResponseBadRequest(w, "User ID is required", nil, h.toasts.Drain())
		return
	}

	var req request.UserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil, h.toasts.Drain())
		return
	}

	updated, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		handleServiceError(w, h.log, h.toasts, err, "update user")
		return
	}

	utils.ResponseSuccess(w, "User updated successfully", updated, h.toasts.Drain())
}

// DeleteUser handles DELETE /api/console/users/{id}?confirm=true
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		utils.ResponseBadRequest(w, "User ID is required", nil, h.toasts.Drain())
		return
	}

	deleted, err := h.service.Delete(r.Context(), id, confirmFromRequest(r))
	if err != nil {
		handleServiceError(w, h.log, h.toasts, err, "delete user")
		return
	}

	if !deleted {
		// Declined confirmation, nothing happened
		utils.ResponseSuccess(w, "Deletion cancelled", nil, h.toasts.Drain())
		return
	}

	utils.ResponseSuccess(w, "User deleted successfully", nil, h.toasts.Drain())
}

// ToggleStatus handles PATCH /api/console/users/{id}/status?active=true
func (h *UserHandler) ToggleStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		utils.ResponseBadRequest(w, "User ID is required", nil, h.toasts.Drain())
		return
	}

	active, err := strconv.ParseBool(r.URL.Query().Get("active"))
	if err != nil {
		utils.ResponseBadRequest(w, "Query parameter active must be true or false", nil, h.toasts.Drain())
		return
	}

	updated, err := h.service.ToggleStatus(r.Context(), id, active)
	if err != nil {
		handleServiceError(w, h.log, h.toasts, err, "toggle user status")
		return
	}

	utils.ResponseSuccess(w, "User status updated successfully", updated, h.toasts.Drain())
}

// ActiveUsers handles GET /api/console/users/active
func (h *UserHandler) ActiveUsers(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.ActiveUsers(r.Context())
	if err != nil {
		// Already toasted; the display stays as it was
		utils.ResponseSuccess(w, "Active users unavailable", nil, h.toasts.Drain())
		return
	}

	utils.ResponseSuccess(w, "Active users retrieved successfully", list, h.toasts.Drain())
}

// Stats handles GET /api/console/stats
func (h *UserHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Statistics(r.Context())
	if err != nil {
		handleServiceError(w, h.log, h.toasts, err, "update statistics")
		return
	}

	utils.ResponseSuccess(w, "Statistics retrieved successfully", stats, h.toasts.Drain())
}

// RefreshStats handles POST /api/console/stats/refresh
func (h *UserHandler) RefreshStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.RefreshStatistics(r.Context())
	if err != nil {
		handleServiceError(w, h.log, h.toasts, err, "refresh statistics")
		return
	}

	utils.ResponseSuccess(w, "Statistics refreshed successfully", stats, h.toasts.Drain())
}
