package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Config holds all runtime configuration, parsed from the environment.
type Config struct {
	// Server
	Port string `env:"PORT" envDefault:"8080"`

	// Firestore
	FirestoreProjectID           string `env:"FIRESTORE_PROJECT_ID"`
	GoogleApplicationCredentials string `env:"GOOGLE_APPLICATION_CREDENTIALS"`
	ContactsCollection           string `env:"CONTACTS_COLLECTION" envDefault:"contacts"`

	// List cache
	ListCacheTTL time.Duration `env:"LIST_CACHE_TTL" envDefault:"30s"`
}

// Load reads an optional .env file and parses the environment into a Config.
// A missing .env file is not an error; real environments set variables directly.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}
