package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort          string   `env:"SERVER_PORT" envDefault:"5000"`
	MySQLDSN            string   `env:"MYSQL_DSN" envDefault:"user:password@tcp(localhost:3306)/modelmatrix?charset=utf8mb4&parseTime=True&loc=Local"`
	RedisAddr           string   `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisDB             int      `env:"REDIS_DB" envDefault:"0"`
	RedisPass           string   `env:"REDIS_PASSWORD"`
	IdentityCredentials string   `env:"IDENTITY_CREDENTIALS,required"`
	ModelUnitPrice      string   `env:"MODEL_UNIT_PRICE" envDefault:"49.99"`
	CORSOrigins         []string `env:"CORS_ORIGINS" envDefault:"*"`
	SwaggerHost         string   `env:"SWAGGER_HOST"`
}

// Load parses environment variables into a Config.
// IDENTITY_CREDENTIALS is the base64-encoded JSON credential blob of the
// identity provider and has no usable default.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
