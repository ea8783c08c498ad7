package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

const (
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

type Config struct {
	Addr       string
	DBURL      string
	AuthSecret string
	Store      string
}

// Load reads configuration from the environment, with a best-effort .env
// file for local development. Required settings fail fast here.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Addr:       envOr("ADDR", ":8080"),
		DBURL:      os.Getenv("DB_URL"),
		AuthSecret: os.Getenv("AUTH_SECRET"),
		Store:      envOr("STORE", StorePostgres),
	}

	if cfg.AuthSecret == "" {
		return Config{}, errors.New("AUTH_SECRET is required")
	}
	switch cfg.Store {
	case StorePostgres:
		if cfg.DBURL == "" {
			return Config{}, errors.New("DB_URL is required")
		}
	case StoreMemory:
		// no database needed
	default:
		return Config{}, fmt.Errorf("STORE must be %q or %q, got %q", StorePostgres, StoreMemory, cfg.Store)
	}
	return cfg, nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
