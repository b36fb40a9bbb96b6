package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Deployment stages. Everything stage-dependent keys on these.
const (
	StageDev  = "dev"
	StageProd = "prod"
)

type Config struct {
	Stage       string `env:"STAGE" envDefault:"dev"`
	Port        int    `env:"PORT" envDefault:"9191"`
	DatabaseURL string `env:"DATABASE_URL,required"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load reads the process configuration. Outside prod a .env file is
// merged in first so local runs need no exported variables.
func Load() (Config, error) {
	if os.Getenv("STAGE") != StageProd {
		_ = godotenv.Load()
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing environment: %w", err)
	}

	if cfg.Stage != StageDev && cfg.Stage != StageProd {
		return Config{}, fmt.Errorf("invalid type of development stage: %s", cfg.Stage)
	}
	return cfg, nil
}
