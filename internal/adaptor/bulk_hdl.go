package adaptor

import (
	"encoding/json"
	"net/http"

	"user-admin/internal/dto/response"
	"user-admin/internal/usecase"
	"user-admin/pkg/notify"
	"user-admin/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BulkHandler struct {
	service usecase.BulkService
	toasts  *notify.Buffer
	log     *zap.Logger
}

func NewBulkHandler(service usecase.BulkService, toasts *notify.Buffer, log *zap.Logger) *BulkHandler {
	return &BulkHandler{
		service: service,
		toasts:  toasts,
		log:     log,
	}
}

// ToggleSelection handles POST /api/console/selection/{id}
func (h *BulkHandler) ToggleSelection(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		utils.ResponseBadRequest(w, "User ID is required", nil, h.toasts.Drain())
		return
	}

	selection := h.service.ToggleSelection(id)
	utils.ResponseSuccess(w, "Selection updated", selection, h.toasts.Drain())
}

// SelectAll handles POST /api/console/selection/all
func (h *BulkHandler) SelectAll(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Checked bool `json:"checked"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil, h.toasts.Drain())
		return
	}

	selection := h.service.SelectAll(req.Checked)
	utils.ResponseSuccess(w, "Selection updated", selection, h.toasts.Drain())
}

// Delete handles POST /api/console/bulk/delete?confirm=true
func (h *BulkHandler) Delete(w http.ResponseWriter, r *http.Request) {
	results, err := h.service.Delete(r.Context(), confirmFromRequest(r))
	h.respond(w, results, err, "bulk delete")
}

// Activate handles POST /api/console/bulk/activate
func (h *BulkHandler) Activate(w http.ResponseWriter, r *http.Request) {
	results, err := h.service.Activate(r.Context())
	h.respond(w, results, err, "bulk activate")
}

// Deactivate handles POST /api/console/bulk/deactivate
func (h *BulkHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	results, err := h.service.Deactivate(r.Context())
	h.respond(w, results, err, "bulk deactivate")
}

func (h *BulkHandler) respond(w http.ResponseWriter, results []response.BulkResult, err error, operation string) {
	if err != nil {
		handleServiceError(w, h.log, h.toasts, err, operation)
		return
	}

	// Per-identifier outcomes make partial failure observable
	utils.ResponseSuccess(w, "Bulk operation completed", results, h.toasts.Drain())
}
