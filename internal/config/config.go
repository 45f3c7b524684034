package config

import (
	"errors"
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	App  AppConfig
	Data DataConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DataConfig struct {
	FlightsFile       string
	MaxPromptAttempts int
}

// Load reads configuration from .env (when present) with environment
// variable overrides.
func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	viper.SetDefault("APP_NAME", "travel-agency-app")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("FLIGHTS_DATA", "data/flights.csv")
	viper.SetDefault("MAX_PROMPT_ATTEMPTS", 3)

	if err := viper.ReadInConfig(); err != nil {
		// Running without a .env file is fine; defaults and env vars apply.
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Data: DataConfig{
			FlightsFile:       viper.GetString("FLIGHTS_DATA"),
			MaxPromptAttempts: viper.GetInt("MAX_PROMPT_ATTEMPTS"),
		},
	}

	return config, nil
}
