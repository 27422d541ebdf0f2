package main

import (
	"fmt"
	"log/slog"

	"github.com/o-magnata69/back-end-api/internal/config"
)

// loadAppConfig loads the application configuration from environment variables or config file.
// Returns the loaded config and any loading error.
func loadAppConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	slog.Info("server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	slog.Debug("database configuration",
		"url_present", cfg.Database.URL != "",
		"ping_on_startup", cfg.Database.PingOnStartup,
		"auto_migrate", cfg.Database.AutoMigrate)

	return cfg, nil
}
