package config

import "time"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	API      APIConfig      `mapstructure:"api"      validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth"     validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port            int           `mapstructure:"port"             validate:"required,gt=0,lt=65536"`
	LogLevel        string        `mapstructure:"log_level"        validate:"required,oneof=debug info warn error"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"     validate:"gte=0"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"    validate:"gte=0"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"     validate:"gte=0"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
}

// DatabaseConfig contains all database-related configuration settings.
//
// URL is intentionally optional: the pool is built lazily, so a missing or
// unreachable database only shows up when a query runs (and in the health
// payload). Set PingOnStartup to fail fast instead.
type DatabaseConfig struct {
	URL             string        `mapstructure:"url"`
	MaxConns        int32         `mapstructure:"max_conns"          validate:"gte=0"`
	MinConns        int32         `mapstructure:"min_conns"          validate:"gte=0,ltefield=MaxConns"`
	MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime"  validate:"gte=0"`
	MaxConnIdleTime time.Duration `mapstructure:"max_conn_idle_time" validate:"gte=0"`
	PingOnStartup   bool          `mapstructure:"ping_on_startup"`
	AutoMigrate     bool          `mapstructure:"auto_migrate"`
}

// APIConfig holds the identity reported by the root endpoint.
type APIConfig struct {
	Message string `mapstructure:"message" validate:"required"`
	Author  string `mapstructure:"author"`
}

// AuthConfig contains credential hashing settings.
type AuthConfig struct {
	BCryptCost int `mapstructure:"bcrypt_cost" validate:"gte=4,lte=31"`
}
