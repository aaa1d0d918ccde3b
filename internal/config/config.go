package config

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/medicore/portal/pkg/config"
)

type PortalConfig struct {
	config.Config
}

// Load reads .env when present, then the environment. JWT_SECRET is the
// only hard requirement; everything else has a local-friendly default.
func Load() PortalConfig {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}

	cfg := config.Load()
	config.MustNonEmptyBytes(cfg.JWTSecret, "JWT_SECRET")

	return PortalConfig{Config: cfg}
}
