// Package config handles loading and validation of application configuration
// from environment variables and an optional .env file.
package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/NomadCrew/nomad-checklist-backend/logger"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment represents the application's running environment.
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvProduction  Environment = "production"
	EnvTest        Environment = "test"
)

// DefaultAllowedOrigins are the local web client origins accepted outside
// production.
var DefaultAllowedOrigins = []string{
	"http://localhost:3000",
	"http://localhost:3001",
	"http://localhost:5173",
}

// ServerConfig holds server-specific configuration.
type ServerConfig struct {
	Environment            Environment `mapstructure:"ENVIRONMENT" yaml:"environment"`
	Port                   string      `mapstructure:"PORT" yaml:"port"`
	APIVersion             string      `mapstructure:"API_VERSION" yaml:"api_version"`
	AllowedOrigins         []string    `mapstructure:"ALLOWED_ORIGINS" yaml:"allowed_origins"`
	ShutdownTimeoutSeconds int         `mapstructure:"SHUTDOWN_TIMEOUT_SECONDS" yaml:"shutdown_timeout_seconds"`
}

// ShutdownTimeout is the grace period given to in-flight requests on exit.
func (s ServerConfig) ShutdownTimeout() time.Duration {
	return time.Duration(s.ShutdownTimeoutSeconds) * time.Second
}

// EventsConfig controls delivery of checklist change events.
type EventsConfig struct {
	Enabled               bool `mapstructure:"ENABLED" yaml:"enabled"`
	PublishTimeoutSeconds int  `mapstructure:"PUBLISH_TIMEOUT_SECONDS" yaml:"publish_timeout_seconds"`
}

func (e EventsConfig) PublishTimeout() time.Duration {
	return time.Duration(e.PublishTimeoutSeconds) * time.Second
}

// RedisConfig holds Redis connection details. Redis is only dialed when
// events are enabled.
type RedisConfig struct {
	Address      string `mapstructure:"ADDRESS" yaml:"address"`
	Password     string `mapstructure:"PASSWORD" yaml:"password"`
	DB           int    `mapstructure:"DB" yaml:"db"`
	UseTLS       bool   `mapstructure:"USE_TLS" yaml:"use_tls"`
	PoolSize     int    `mapstructure:"POOL_SIZE" yaml:"pool_size"`
	MinIdleConns int    `mapstructure:"MIN_IDLE_CONNS" yaml:"min_idle_conns"`
}

// SeedConfig points at an optional YAML document loaded at startup.
type SeedConfig struct {
	File string `mapstructure:"FILE" yaml:"file"`
}

// Config aggregates all application configuration sections.
type Config struct {
	Server   ServerConfig `mapstructure:"SERVER" yaml:"server"`
	Events   EventsConfig `mapstructure:"EVENTS" yaml:"events"`
	Redis    RedisConfig  `mapstructure:"REDIS" yaml:"redis"`
	Seed     SeedConfig   `mapstructure:"SEED" yaml:"seed"`
	LogLevel string       `mapstructure:"LOG_LEVEL" yaml:"log_level"`
}

// IsDevelopment returns true if the application is running in development environment.
func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == EnvDevelopment
}

// IsProduction returns true if the application is running in production environment.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == EnvProduction
}

// bindEnvVars binds each config key to one or more environment variables,
// earlier names taking precedence.
// Format: []{configKey, envVar...}
func bindEnvVars(v *viper.Viper, bindings [][]string) error {
	for _, b := range bindings {
		if err := v.BindEnv(b...); err != nil {
			return fmt.Errorf("failed to bind %s: %w", b[0], err)
		}
	}
	return nil
}

// LoadConfig reads .env (when present) into the process environment, then
// loads configuration from environment variables using Viper, applies
// defaults, unmarshals and validates it.
func LoadConfig() (*Config, error) {
	log := logger.GetLogger()

	if err := godotenv.Load(); err != nil {
		log.Debugw("No .env file loaded", "error", err)
	}

	v := viper.New()

	v.SetDefault("SERVER.ENVIRONMENT", EnvDevelopment)
	v.SetDefault("SERVER.PORT", "3000")
	v.SetDefault("SERVER.API_VERSION", "v1")
	v.SetDefault("SERVER.ALLOWED_ORIGINS", DefaultAllowedOrigins)
	v.SetDefault("SERVER.SHUTDOWN_TIMEOUT_SECONDS", 10)
	v.SetDefault("EVENTS.ENABLED", false)
	v.SetDefault("EVENTS.PUBLISH_TIMEOUT_SECONDS", 5)
	v.SetDefault("REDIS.ADDRESS", "localhost:6379")
	v.SetDefault("REDIS.PASSWORD", "")
	v.SetDefault("REDIS.DB", 0)
	v.SetDefault("REDIS.USE_TLS", false)
	v.SetDefault("REDIS.POOL_SIZE", 3)
	v.SetDefault("REDIS.MIN_IDLE_CONNS", 1)
	v.SetDefault("SEED.FILE", "")
	v.SetDefault("LOG_LEVEL", "info")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	envBindings := [][]string{
		// Server config
		{"SERVER.ENVIRONMENT", "SERVER_ENVIRONMENT", "NODE_ENV"},
		{"SERVER.PORT", "PORT"},
		{"SERVER.API_VERSION", "API_VERSION"},
		{"SERVER.ALLOWED_ORIGINS", "ALLOWED_ORIGINS", "CORS_ORIGINS"},
		{"SERVER.SHUTDOWN_TIMEOUT_SECONDS", "SHUTDOWN_TIMEOUT_SECONDS"},
		// Events
		{"EVENTS.ENABLED", "EVENTS_ENABLED"},
		{"EVENTS.PUBLISH_TIMEOUT_SECONDS", "EVENTS_PUBLISH_TIMEOUT_SECONDS"},
		// Redis config
		{"REDIS.ADDRESS", "REDIS_ADDRESS"},
		{"REDIS.PASSWORD", "REDIS_PASSWORD"},
		{"REDIS.DB", "REDIS_DB"},
		{"REDIS.USE_TLS", "REDIS_USE_TLS"},
		{"REDIS.POOL_SIZE", "REDIS_POOL_SIZE"},
		{"REDIS.MIN_IDLE_CONNS", "REDIS_MIN_IDLE_CONNS"},
		// Seed data
		{"SEED.FILE", "SEED_FILE"},
		{"LOG_LEVEL", "LOG_LEVEL"},
	}

	if err := bindEnvVars(v, envBindings); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config unmarshal failed: %w", err)
	}
	cfg.Server.AllowedOrigins = splitOrigins(cfg.Server.AllowedOrigins)

	log.Infow("Configuration loaded",
		"environment", cfg.Server.Environment,
		"server_port", cfg.Server.Port,
		"api_version", cfg.Server.APIVersion,
		"allowed_origins", cfg.Server.AllowedOrigins,
		"events_enabled", cfg.Events.Enabled,
		"redis_address", cfg.Redis.Address,
		"seed_file", cfg.Seed.File,
	)

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	log.Info("Configuration validated successfully")
	return &cfg, nil
}

// splitOrigins trims entries and expands any that still hold a
// comma-separated list.
func splitOrigins(origins []string) []string {
	out := make([]string, 0, len(origins))
	for _, o := range origins {
		for _, part := range strings.Split(o, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// validateConfig checks if the loaded configuration values are valid.
func validateConfig(cfg *Config) error {
	log := logger.GetLogger()

	switch cfg.Server.Environment {
	case EnvDevelopment, EnvProduction, EnvTest:
	default:
		return fmt.Errorf("unknown environment %q", cfg.Server.Environment)
	}

	// Validate Server Config
	if cfg.Server.Port == "" {
		return fmt.Errorf("server port is required")
	}
	if cfg.Server.APIVersion == "" {
		return fmt.Errorf("api version is required")
	}
	if cfg.Server.ShutdownTimeoutSeconds <= 0 {
		return fmt.Errorf("shutdown timeout must be positive")
	}

	if cfg.IsProduction() {
		if len(cfg.Server.AllowedOrigins) == 0 {
			return fmt.Errorf("allowed origins must be set in production")
		}
		if containsWildcard(cfg.Server.AllowedOrigins) {
			return fmt.Errorf("wildcard allowed origin is not permitted in production")
		}
	}
	// Validate AllowedOrigins format if not wildcard
	if !containsWildcard(cfg.Server.AllowedOrigins) {
		for _, origin := range cfg.Server.AllowedOrigins {
			if _, err := url.ParseRequestURI(origin); err != nil {
				return fmt.Errorf("invalid allowed origin '%s': %w", origin, err)
			}
		}
	}

	// Validate Events / Redis config
	if cfg.Events.Enabled {
		if cfg.Events.PublishTimeoutSeconds <= 0 {
			return fmt.Errorf("events publish timeout must be positive")
		}
		if cfg.Redis.Address == "" {
			return fmt.Errorf("redis address is required when events are enabled")
		}
		if cfg.Redis.Password == "" && cfg.Redis.UseTLS {
			log.Warn("Redis password is not set, but TLS is enabled. Ensure this is correct for your Redis provider.")
		}
	}

	return nil
}

func containsWildcard(origins []string) bool {
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return false
}
