package adaptor

import (
	"encoding/json"
	"fmt"
	"net/http"

	"user-admin/internal/usecase"
	"user-admin/pkg/notify"
	"user-admin/pkg/utils"

	"go.uber.org/zap"
)

// ConsoleHandler covers the chrome around the list: theme, tabs and the
// CSV download.
type ConsoleHandler struct {
	service usecase.ConsoleService
	export  usecase.ExportService
	toasts  *notify.Buffer
	log     *zap.Logger
}

func NewConsoleHandler(service usecase.ConsoleService, export usecase.ExportService, toasts *notify.Buffer, log *zap.Logger) *ConsoleHandler {
	return &ConsoleHandler{
		service: service,
		export:  export,
		toasts:  toasts,
		log:     log,
	}
}

// Theme handles GET /api/console/theme
func (h *ConsoleHandler) Theme(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, "Theme retrieved successfully", h.service.Theme(), h.toasts.Drain())
}

// SetTheme handles PUT /api/console/theme
func (h *ConsoleHandler) SetTheme(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Theme string `json:"theme"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil, h.toasts.Drain())
		return
	}

	theme, err := h.service.SetTheme(req.Theme)
	if err != nil {
		utils.ResponseBadRequest(w, err.Error(), nil, h.toasts.Drain())
		return
	}

	utils.ResponseSuccess(w, "Theme updated successfully", theme, h.toasts.Drain())
}

// Tab handles GET /api/console/tab
func (h *ConsoleHandler) Tab(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, "Active tab retrieved successfully", h.service.ActiveTab(), h.toasts.Drain())
}

// SwitchTab handles PUT /api/console/tab
func (h *ConsoleHandler) SwitchTab(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Tab string `json:"tab"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil, h.toasts.Drain())
		return
	}

	tab, err := h.service.SwitchTab(req.Tab)
	if err != nil {
		utils.ResponseBadRequest(w, err.Error(), nil, h.toasts.Drain())
		return
	}

	utils.ResponseSuccess(w, "Tab switched successfully", tab, h.toasts.Drain())
}

// Export handles GET /api/console/export, streaming the CSV download.
func (h *ConsoleHandler) Export(w http.ResponseWriter, r *http.Request) {
	data, filename, err := h.export.CSV()
	if err != nil {
		handleServiceError(w, h.log, h.toasts, err, "export users")
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
