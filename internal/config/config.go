// Package config loads and validates application configuration.
package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth"     validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required"`
}

// AuthConfig contains all authentication and authorization settings.
type AuthConfig struct {
	// JWTSecret signs bearer tokens. Loaded once at startup and injected
	// into the token service; never a process-wide mutable global.
	JWTSecret string `mapstructure:"jwt_secret" validate:"required,min=32"`

	// EnforceUpdateOwnership extends the delete-only ownership rule to blog
	// updates. Off by default: likes-update is open to any authenticated
	// caller, matching the original route contract.
	EnforceUpdateOwnership bool `mapstructure:"enforce_update_ownership"`

	// LoginRatePerMinute and LoginBurst bound login attempts per client IP.
	LoginRatePerMinute int `mapstructure:"login_rate_per_minute" validate:"required,gt=0"`
	LoginBurst         int `mapstructure:"login_burst"           validate:"required,gt=0"`
}
