package config

import (
	"os"
)

// DefaultSeedToken gates the demo-seed endpoint when SEED_TOKEN is unset.
// It is intentionally weak and only meant for local development; always set
// SEED_TOKEN in any deployed environment.
const DefaultSeedToken = "dev"

// Config holds all configuration for the application, loaded from
// environment variables.
type Config struct {
	DatabaseURL   string
	DatabaseName  string
	HubSpotAPIKey string
	SeedToken     string
	Port          string
}

// Load reads configuration from environment variables. DATABASE_URL,
// DATABASE_NAME and HUBSPOT_API_KEY have no defaults: the server runs
// without a database connection and with CRM notifications disabled when
// they are absent.
func Load() Config {
	return Config{
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		DatabaseName:  os.Getenv("DATABASE_NAME"),
		HubSpotAPIKey: os.Getenv("HUBSPOT_API_KEY"),
		SeedToken:     getEnv("SEED_TOKEN", DefaultSeedToken),
		Port:          getEnv("PORT", "8000"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
