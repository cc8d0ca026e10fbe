package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds all configuration for the application
// Following 12-factor app principles, all config is loaded from environment variables
type Config struct {
	Server   ServerConfig
	Admin    AdminConfig
	Catalog  CatalogConfig
	WhatsApp WhatsAppConfig
	LogLevel string
}

type ServerConfig struct {
	Port            string
	Host            string
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

type AdminConfig struct {
	Password string // Shared secret that unlocks the catalog editing endpoints
}

type CatalogConfig struct {
	FilePath    string // JSON file holding the persisted catalog
	MaxProducts int    // Maximum number of products accepted per save
}

type WhatsAppConfig struct {
	BaseURL string // Deep-link base, e.g. https://wa.me
	Phone   string // Destination phone number for order messages
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			Host:            getEnv("HOST", "0.0.0.0"),
			ReadTimeout:     getEnvAsInt("READ_TIMEOUT", 15),
			WriteTimeout:    getEnvAsInt("WRITE_TIMEOUT", 15),
			ShutdownTimeout: getEnvAsInt("SHUTDOWN_TIMEOUT", 30),
		},
		Admin: AdminConfig{
			Password: getEnv("ADMIN_PASSWORD", ""),
		},
		Catalog: CatalogConfig{
			FilePath:    getEnv("CATALOG_FILE", "data/catalog.json"),
			MaxProducts: getEnvAsInt("MAX_PRODUCTS", 20),
		},
		WhatsApp: WhatsAppConfig{
			BaseURL: getEnv("WHATSAPP_BASE_URL", "https://wa.me"),
			Phone:   getEnv("WHATSAPP_PHONE", ""),
		},
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.Admin.Password == "" {
		return fmt.Errorf("ADMIN_PASSWORD is required")
	}

	if c.Catalog.FilePath == "" {
		return fmt.Errorf("CATALOG_FILE is required")
	}

	if c.Catalog.MaxProducts <= 0 {
		return fmt.Errorf("MAX_PRODUCTS must be positive")
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[strings.ToLower(c.LogLevel)] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}

	return nil
}

// Helper functions for reading environment variables

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
