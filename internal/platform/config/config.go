package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
)

// Config captures everything the process reads from its environment.
// MONGODB_URI is the one startup-fatal variable: without a record store
// target there is nothing useful the server can do.
type Config struct {
	Addr            string        `env:"LIFELINK_ADDR" envDefault:":8080"`
	MongoURI        string        `env:"MONGODB_URI,required,notEmpty"`
	MongoDatabase   string        `env:"MONGODB_DATABASE" envDefault:"lifelink"`
	JWTSigningKey   string        `env:"JWT_SIGNING_KEY"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// FromEnv builds a Config from environment variables so main stays lean.
func FromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}
