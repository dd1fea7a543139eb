// main.go
package main

import (
	"log"

	"user-admin/cmd"
	"user-admin/internal/data/remote"
	"user-admin/internal/state"
	"user-admin/internal/wire"
	"user-admin/pkg/notify"
	"user-admin/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.String("api_base_url", config.API.BaseURL),
		zap.Bool("debug", config.App.Debug),
	)

	// Session state, preferences and the toast channel to the operator
	store := state.NewStore()
	prefs := utils.NewPrefs(config.UI.PrefsPath)
	toasts := notify.NewBuffer()

	// Remote user-management API client
	client := remote.NewClient(config.API, logger, toasts)
	api := remote.NewUserAPI(client, logger)

	// Wire all dependencies
	app := wire.Wiring(api, store, prefs, toasts, config, logger)

	toasts.Success("User Management System loaded successfully!")

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
