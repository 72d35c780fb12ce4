package config

import (
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Load populates the configuration from the environment. Any provided .env
// paths are tried first; a missing file is not an error, the system
// environment simply wins.
func Load(envFilePath ...string) (*App, error) {
	logger := slog.Default()

	if len(envFilePath) == 0 {
		if err := godotenv.Load(); err != nil {
			logger.Warn("no .env file found, using system environment")
		}
	} else {
		for _, path := range envFilePath {
			if err := godotenv.Load(path); err != nil {
				logger.Debug("environment file not loaded", "path", path, "error", err)
				continue
			}
			logger.Info("environment loaded", "path", path)
			break
		}
	}

	var cfg App
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	logger.Info("config loaded",
		"env", cfg.Env,
		"server_host", cfg.Server.Host,
		"server_port", cfg.Server.Port,
		"rate_limit_max_requests", cfg.RateLimit.MaxRequests,
		"rate_limit_window", cfg.RateLimit.Window,
	)
	return &cfg, nil
}
