package models

import "time"

// Config represents application configuration
type Config struct {
	App       AppConfig
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	NATS      NATSConfig
	JWT       JWTConfig
	Gateway   GatewayConfig
	Location  LocationConfig
	Geofence  GeofenceConfig
	Presence  PresenceConfig
	RateLimit RateLimitConfig
	APIKeys   map[string]string
	NewRelic  NewRelicConfig
	Logger    LoggerConfig
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
	Driver    string
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
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
	URL        string
	QueueGroup string
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// GatewayConfig tunes the websocket connection gateway
type GatewayConfig struct {
	WriteTimeout    time.Duration
	PongTimeout     time.Duration
	PingInterval    time.Duration
	MaxMessageBytes int64
	SendBufferSize  int
	AllowedOrigins  []string
}

// LocationConfig holds query defaults for the nearby/heatmap engine
type LocationConfig struct {
	DefaultSearchRadiusKm float64
	MaxSearchRadiusKm     float64
	MaxHeatMapGridSize    int
}

// GeofenceConfig selects where geofence definitions are loaded from
type GeofenceConfig struct {
	Source          string // "default", "file" or "postgres"
	FilePath        string
	IncludeDefaults bool
}

// PresenceConfig selects the driver presence store backend
type PresenceConfig struct {
	Backend string // "memory" or "redis"
}

// RateLimitConfig limits location pushes over HTTP. A zero Limit disables it; it also needs redis.
type RateLimitConfig struct {
	Limit  int
	Period time.Duration
}

// NewRelicConfig contains New Relic agent configuration
type NewRelicConfig struct {
	LicenseKey  string
	AppName     string
	Enabled     bool
	ForwardLogs bool
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
