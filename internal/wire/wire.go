package wire

import (
	"net/http"

	"user-admin/internal/adaptor"
	"user-admin/internal/data/remote"
	"user-admin/internal/state"
	"user-admin/internal/usecase"
	"user-admin/pkg/middleware"
	"user-admin/pkg/notify"
	"user-admin/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired console
type App struct {
	Router *chi.Mux
}

// Wiring initializes all dependencies
func Wiring(api remote.UserAPI, store *state.Store, prefs *utils.Prefs, toasts *notify.Buffer, config *utils.Config, logger *zap.Logger) *App {
	// Initialize services and handlers
	service := usecase.NewService(api, store, prefs, toasts, logger)
	handler := adaptor.NewHandler(service, toasts, logger)

	// Setup router
	router := setupRouter(handler, logger)

	return &App{
		Router: router,
	}
}

// setupRouter configures the Chi router
func setupRouter(handler *adaptor.Handler, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// Apply routes
	wireUser(r, handler.User)
	wireSearch(r, handler.Search)
	wireBulk(r, handler.Bulk)
	wireConsole(r, handler.Console)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
