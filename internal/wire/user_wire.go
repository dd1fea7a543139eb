package wire

import (
	"user-admin/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// wireUser configures the CRUD and statistics routes
func wireUser(r chi.Router, userHandler *adaptor.UserHandler) {
	r.Route("/api/console/users", func(r chi.Router) {
		r.Get("/", userHandler.LoadUsers)
		r.Post("/", userHandler.CreateUser)

		// Register before /{id} so the literal path wins
		r.Get("/active", userHandler.ActiveUsers)

		r.Get("/{id}", userHandler.GetUser)
		r.Put("/{id}", userHandler.UpdateUser)
		r.Delete("/{id}", userHandler.DeleteUser)
		r.Patch("/{id}/status", userHandler.ToggleStatus)
	})

	r.Get("/api/console/stats", userHandler.Stats)
	r.Post("/api/console/stats/refresh", userHandler.RefreshStats)
}
