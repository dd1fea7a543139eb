package utils

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App AppConfig
	API APIConfig
	UI  UIConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type APIConfig struct {
	BaseURL string
	// Zero means no timeout; a slow request simply delays its own callback.
	Timeout time.Duration
}

type UIConfig struct {
	PrefsPath string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("APP_NAME", "user-admin")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("API_TIMEOUT_SECONDS", 0)
	viper.SetDefault("PREFS_PATH", "prefs.yaml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		API: APIConfig{
			BaseURL: viper.GetString("API_BASE_URL"),
			Timeout: time.Duration(viper.GetInt("API_TIMEOUT_SECONDS")) * time.Second,
		},
		UI: UIConfig{
			PrefsPath: viper.GetString("PREFS_PATH"),
		},
	}

	return config, nil
}
