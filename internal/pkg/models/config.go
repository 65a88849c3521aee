package models

import "time"

// Config represents application configuration
type Config struct {
	App       AppConfig
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	NATS      NATSConfig
	NSQ       NSQConfig
	Events    EventsConfig
	Store     StoreConfig
	JWT       JWTConfig
	Auth      AuthConfig
	RateLimit RateLimitConfig
	CORS      CORSConfig
	Notifier  NotifierConfig
	Logger    LoggerConfig
	NewRelic  NewRelicConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Driver      string
	Host        string
	Port        int
	Username    string
	Password    string
	Database    string
	SSLMode     string
	MaxConns    int
	IdleConns   int
	AutoMigrate bool
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// NSQConfig contains NSQ daemon addresses
type NSQConfig struct {
	NSQDAddress     string
	LookupdAddress  string
	ConsumerChannel string
}

// EventsConfig selects the broker used for domain events: nats, nsq or none
type EventsConfig struct {
	Broker string
}

// StoreConfig selects the repository implementation: postgres or memory
type StoreConfig struct {
	Driver string
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// AuthConfig contains password and reset token settings
type AuthConfig struct {
	BcryptCost    int
	ResetTokenTTL time.Duration
}

// RateLimitConfig configures the Redis rate limiter on the auth routes
type RateLimitConfig struct {
	Enabled bool
	Limit   int
	Period  time.Duration
}

// CORSConfig lists the origins allowed to call the API from a browser
type CORSConfig struct {
	AllowOrigins []string
}

// NotifierConfig contains settings for the notifier worker
type NotifierConfig struct {
	DigestSchedule string
	AlertDedupTTL  time.Duration
	ResetURL       string
}

// LoggerConfig contains logger output settings
type LoggerConfig struct {
	Level    string
	FilePath string
}

// NewRelicConfig contains New Relic agent settings
type NewRelicConfig struct {
	LicenseKey  string
	AppName     string
	Enabled     bool
	ForwardLogs bool
}
