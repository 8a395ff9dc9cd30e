package config

import (
	"fmt"
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort  string   `envconfig:"SERVER_PORT" default:"8080"`
	SwaggerHost string   `envconfig:"SWAGGER_HOST"`
	Database    Database `envconfig:"DATABASE"`
	Log         Log      `envconfig:"LOG"`
}

// Database configures the relational store.
type Database struct {
	Driver       string `envconfig:"DRIVER" default:"sqlite"`
	DSN          string `envconfig:"DSN" default:"handpay_cloud.db"`
	MaxOpenConns int    `envconfig:"MAX_OPEN_CONNS" default:"1"`
	MaxIdleConns int    `envconfig:"MAX_IDLE_CONNS" default:"1"`
	// Reset drops and recreates both tables on startup.
	Reset bool `envconfig:"RESET" default:"false"`
}

// LogValue leaves the DSN out of log records; for mysql and postgres it
// carries the database password.
func (d Database) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("driver", d.Driver),
		slog.Int("max_open_conns", d.MaxOpenConns),
		slog.Bool("reset", d.Reset),
	)
}

// Log configures the process logger.
type Log struct {
	Level  string `envconfig:"LEVEL" default:"info"`
	Format string `envconfig:"FORMAT" default:"text"`
	Prefix string `envconfig:"PREFIX" default:"handpay"`
}

// Load builds Config from the environment. Variables found in the given
// env files (or ./.env when none is given) are loaded first; a missing file
// is not an error.
func Load(envFiles ...string) (*Config, error) {
	_ = godotenv.Load(envFiles...)

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("process env: %w", err)
	}
	return &cfg, nil
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.ServerPort
}
