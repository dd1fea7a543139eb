package wire

import (
	"user-admin/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// wireConsole configures theme, tab navigation and CSV export
func wireConsole(r chi.Router, consoleHandler *adaptor.ConsoleHandler) {
	// Flat registrations: a /api/console subrouter would shadow the
	// deeper mounts for users, search and bulk
	r.Get("/api/console/theme", consoleHandler.Theme)
	r.Put("/api/console/theme", consoleHandler.SetTheme)
	r.Get("/api/console/tab", consoleHandler.Tab)
	r.Put("/api/console/tab", consoleHandler.SwitchTab)
	r.Get("/api/console/export", consoleHandler.Export)
}
