package wire

import (
	"user-admin/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// wireSearch configures the search and filter routes. Each route is an
// independent entry point; filters never compose.
func wireSearch(r chi.Router, searchHandler *adaptor.SearchHandler) {
	r.Route("/api/console/search", func(r chi.Router) {
		r.Get("/quick", searchHandler.Quick)
		r.Get("/email", searchHandler.ByEmail)
		r.Get("/firstname", searchHandler.ByFirstName)
		r.Get("/lastname", searchHandler.ByLastName)
		r.Post("/clear", searchHandler.Clear)
	})

	r.Route("/api/console/filter", func(r chi.Router) {
		r.Get("/role", searchHandler.ByRole)
		r.Get("/status", searchHandler.ByStatus)
	})
}
