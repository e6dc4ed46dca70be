package config

import (
	"os"

	"github.com/joho/godotenv"

	"glastor/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server   ServerConfig
	Admin    AdminConfig
	Database DatabaseConfig
	Store    StoreConfig
}

// ServerConfig holds public API server settings
type ServerConfig struct {
	Port    string
	GinMode string
}

// AdminConfig holds the ops/admin server settings
type AdminConfig struct {
	Port    string
	Enabled bool
}

// DatabaseConfig holds secondary-store connection settings. The URL is
// optional: without one the service runs fast-store-only and reconciliation
// is disabled.
type DatabaseConfig struct {
	URL string
}

// StoreConfig holds fast-store settings
type StoreConfig struct {
	// Driver is "sqlite" or "memory".
	Driver string
	// Path is the sqlite file location; ignored for the memory driver.
	Path string
}

// Load reads configuration from the environment, honoring an optional .env
// file, and validates it.
func Load() (*Config, error) {
	// Missing .env is fine; the environment may be fully set already.
	_ = godotenv.Load()

	config := &Config{
		Server: ServerConfig{
			Port:    getEnvOrDefault("PORT", "8080"),
			GinMode: getEnvOrDefault("GIN_MODE", "release"),
		},
		Admin: AdminConfig{
			Port:    getEnvOrDefault("ADMIN_PORT", "8081"),
			Enabled: getEnvBoolOrDefault("ADMIN_ENABLED", true),
		},
		Database: DatabaseConfig{
			URL: os.Getenv("DATABASE_URL"),
		},
		Store: StoreConfig{
			Driver: getEnvOrDefault("STORE_DRIVER", "sqlite"),
			Path:   getEnvOrDefault("STORE_PATH", "glastor-reviews.db"),
		},
	}

	if err := validate(config); err != nil {
		return nil, err
	}
	return config, nil
}

func validate(config *Config) error {
	switch config.Store.Driver {
	case "sqlite":
		if config.Store.Path == "" {
			return errors.ConfigInvalid("STORE_PATH is required for the sqlite store")
		}
	case "memory":
	default:
		return errors.ConfigInvalid("STORE_DRIVER must be sqlite or memory")
	}
	if config.Server.Port == "" {
		return errors.ConfigInvalid("PORT cannot be empty")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	switch os.Getenv(key) {
	case "1", "true", "TRUE", "yes":
		return true
	case "0", "false", "FALSE", "no":
		return false
	}
	return defaultValue
}
