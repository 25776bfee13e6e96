package configs

import (
	"os"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	AppEnv       string
	AppPort      string
	SeedDisabled bool
}

type LoggerConfig struct {
	Mode string
}

type Config struct {
	App    AppConfig
	Logger LoggerConfig
}

// LoadConfig reads the optional .env file and the process environment.
func LoadConfig() (*Config, error) {
	// A missing .env file is fine; plain environment variables still apply.
	_ = godotenv.Load()

	appConfig := AppConfig{
		AppEnv:       os.Getenv("APP_ENV"),
		AppPort:      os.Getenv("APP_PORT"),
		SeedDisabled: os.Getenv("SEED_DISABLED") == "1",
	}
	if appConfig.AppPort == "" {
		appConfig.AppPort = "8080"
	}

	loggerConfig := LoggerConfig{
		Mode: os.Getenv("LOG_MODE"),
	}
	if loggerConfig.Mode == "" {
		loggerConfig.Mode = "development"
	}

	return &Config{
		App:    appConfig,
		Logger: loggerConfig,
	}, nil
}
