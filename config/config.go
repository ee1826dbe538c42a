package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	ServerAddr      string        `env:"SERVER_ADDR" envDefault:":8080"`
	DatabaseURL     string        `env:"DATABASE_URL,required"`
	JwtSecret       string        `env:"JWT_SECRET,required"`
	TokenDuration   time.Duration `env:"TOKEN_DURATION" envDefault:"1h"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
