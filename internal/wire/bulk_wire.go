package wire

import (
	"user-admin/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// wireBulk configures selection tracking and the bulk fan-out routes
func wireBulk(r chi.Router, bulkHandler *adaptor.BulkHandler) {
	r.Route("/api/console/selection", func(r chi.Router) {
		r.Post("/all", bulkHandler.SelectAll)
		r.Post("/{id}", bulkHandler.ToggleSelection)
	})

	r.Route("/api/console/bulk", func(r chi.Router) {
		r.Post("/delete", bulkHandler.Delete)
		r.Post("/activate", bulkHandler.Activate)
		r.Post("/deactivate", bulkHandler.Deactivate)
	})
}
