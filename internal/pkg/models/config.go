package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NSQ      NSQConfig
	JWT      JWTConfig
	Korapay  KorapayConfig
	Platform PlatformConfig
	Payout   PayoutConfig
	Banks    BanksConfig
	Logger   LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// IsDevelopment reports whether non-production relaxations (such as plain
// HTTP redirect URLs) are allowed.
func (a AppConfig) IsDevelopment() bool {
	switch a.Environment {
	case "local", "development", "dev", "test":
		return true
	}
	return a.Debug
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
	// RateLimit caps requests per client IP on public payment routes per RateWindow; 0 disables it
	RateLimit  int
	RateWindow time.Duration
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

// NSQConfig contains NSQ connection configuration
type NSQConfig struct {
	NSQDAddress     string
	LookupdAddress  []string
	NotifierChannel string
}

// JWTConfig contains JWT authentication configuration for admin routes
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// KorapayConfig holds payment provider credentials and endpoints
type KorapayConfig struct {
	BaseURL       string
	SecretKey     string
	PublicKey     string
	WebhookSecret string
	WebhookURL    string
	RedirectURL   string
	Timeout       time.Duration
}

// SigningSecret returns the secret used to verify webhook signatures.
func (k KorapayConfig) SigningSecret() string {
	if k.WebhookSecret != "" {
		return k.WebhookSecret
	}
	return k.SecretKey
}

// PlatformConfig holds process-wide platform identity and fee parameters
type PlatformConfig struct {
	Name       string
	Email      string
	Currency   string
	FlatFee    decimal.Decimal
	PercentFee decimal.Decimal
}

// PayoutConfig controls how verified payments are disbursed
type PayoutConfig struct {
	DeferHalls    bool
	MaxRetries    int
	RetryBaseWait time.Duration
}

// BanksConfig configures the bank directory and its cache
type BanksConfig struct {
	BaseURL  string
	Token    string
	CacheTTL time.Duration
	LockTTL  time.Duration
	LockWait time.Duration
	Timeout  time.Duration
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level      string
	FilePath   string
	MaxSize    int64
	MaxAge     int
	MaxBackups int
	Compress   bool
	Type       string
}
