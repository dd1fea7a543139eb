package adaptor

import (
	"net/http"

	"user-admin/internal/dto/response"
	"user-admin/internal/usecase"
	"user-admin/pkg/notify"
	"user-admin/pkg/utils"

	"go.uber.org/zap"
)

// SearchHandler exposes the search and filter entry points. Search
// failures never surface as HTTP errors: the toasts carry the outcome
// and the browser leaves the current list alone when no data comes
// back.
type SearchHandler struct {
	service usecase.SearchService
	toasts  *notify.Buffer
	log     *zap.Logger
}

func NewSearchHandler(service usecase.SearchService, toasts *notify.Buffer, log *zap.Logger) *SearchHandler {
	return &SearchHandler{
		service: service,
		toasts:  toasts,
		log:     log,
	}
}

// Quick handles GET /api/console/search/quick?q=
func (h *SearchHandler) Quick(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.Quick(r.Context(), r.URL.Query().Get("q"))
	h.respond(w, list, err, "quick search")
}

// ByEmail handles GET /api/console/search/email?email=
func (h *SearchHandler) ByEmail(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.ByEmail(r.Context(), r.URL.Query().Get("email"))
	h.respond(w, list, err, "search by email")
}

// ByFirstName handles GET /api/console/search/firstname?value=
func (h *SearchHandler) ByFirstName(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.ByFirstName(r.Context(), r.URL.Query().Get("value"))
	h.respond(w, list, err, "search by first name")
}

// ByLastName handles GET /api/console/search/lastname?value=
func (h *SearchHandler) ByLastName(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.ByLastName(r.Context(), r.URL.Query().Get("value"))
	h.respond(w, list, err, "search by last name")
}

// ByRole handles GET /api/console/filter/role?role=
func (h *SearchHandler) ByRole(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.ByRole(r.Context(), r.URL.Query().Get("role"))
	h.respond(w, list, err, "filter by role")
}

// ByStatus handles GET /api/console/filter/status?status=
func (h *SearchHandler) ByStatus(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.ByStatus(r.Context(), r.URL.Query().Get("status"))
	h.respond(w, list, err, "filter by status")
}

// Clear handles POST /api/console/search/clear
func (h *SearchHandler) Clear(w http.ResponseWriter, r *http.Request) {
	list := h.service.Clear(r.Context())
	utils.ResponseSuccess(w, "All filters cleared", list, h.toasts.Drain())
}

func (h *SearchHandler) respond(w http.ResponseWriter, list *response.UserList, err error, operation string) {
	if err != nil {
		h.log.Warn(operation+" returned no results", zap.Error(err))
		utils.ResponseSuccess(w, "No results", nil, h.toasts.Drain())
		return
	}
	if list == nil {
		// Empty input, nothing searched
		utils.ResponseSuccess(w, "Search skipped", nil, h.toasts.Drain())
		return
	}

	utils.ResponseSuccess(w, "Search completed", list, h.toasts.Drain())
}
