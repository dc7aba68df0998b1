package config

import (
	"log"
	"strings"
	"time"

	"github.com/piresc/duespay/internal/pkg/models"
	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// InitConfig loads configuration from the environment. When APP_ENV is local
// (the default) the env-format file at configPath is read first.
func InitConfig(configPath string) *models.Config {
	v := viper.New()
	v.AutomaticEnv()

	if GetEnvFrom(v, "APP_ENV", "local") == "local" && configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil {
			log.Println("error loading config from file", err)
		}
	}

	return loadConfig(v)
}

func loadConfig(v *viper.Viper) *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = GetEnvFrom(v, "APP_NAME", "duespay")
	configs.App.Environment = GetEnvFrom(v, "APP_ENV", "local")
	configs.App.Debug = getBool(v, "APP_DEBUG", false)
	configs.App.Version = GetEnvFrom(v, "APP_VERSION", "")

	// Server config
	configs.Server.Host = GetEnvFrom(v, "SERVER_HOST", "")
	configs.Server.Port = getInt(v, "SERVER_PORT", 8080)
	configs.Server.ReadTimeout = getInt(v, "SERVER_READ_TIMEOUT", 30)
	configs.Server.WriteTimeout = getInt(v, "SERVER_WRITE_TIMEOUT", 30)
	configs.Server.ShutdownTimeout = getInt(v, "SERVER_SHUTDOWN_TIMEOUT", 10)
	configs.Server.RateLimit = getInt(v, "SERVER_RATE_LIMIT", 30)
	configs.Server.RateWindow = getDuration(v, "SERVER_RATE_WINDOW", time.Minute)

	// Database config
	configs.Database.Driver = GetEnvFrom(v, "DB_DRIVER", "pgx")
	configs.Database.Host = GetEnvFrom(v, "DB_HOST", "localhost")
	configs.Database.Port = getInt(v, "DB_PORT", 5432)
	configs.Database.Username = GetEnvFrom(v, "DB_USERNAME", "")
	configs.Database.Password = GetEnvFrom(v, "DB_PASSWORD", "")
	configs.Database.Database = GetEnvFrom(v, "DB_DATABASE", "duespay")
	configs.Database.SSLMode = GetEnvFrom(v, "DB_SSL_MODE", "disable")
	configs.Database.MaxConns = getInt(v, "DB_MAX_CONNS", 10)
	configs.Database.IdleConns = getInt(v, "DB_IDLE_CONNS", 5)

	// Redis config
	configs.Redis.Host = GetEnvFrom(v, "REDIS_HOST", "localhost")
	configs.Redis.Port = getInt(v, "REDIS_PORT", 6379)
	configs.Redis.Password = GetEnvFrom(v, "REDIS_PASSWORD", "")
	configs.Redis.DB = getInt(v, "REDIS_DB", 0)
	configs.Redis.PoolSize = getInt(v, "REDIS_POOL_SIZE", 10)

	// NSQ config
	configs.NSQ.NSQDAddress = GetEnvFrom(v, "NSQ_NSQD_ADDRESS", "localhost:4150")
	configs.NSQ.LookupdAddress = getList(v, "NSQ_LOOKUPD_ADDRESS")
	configs.NSQ.NotifierChannel = GetEnvFrom(v, "NSQ_NOTIFIER_CHANNEL", "notifier")

	// JWT config
	configs.JWT.Secret = GetEnvFrom(v, "JWT_SECRET", "")
	configs.JWT.Expiration = getInt(v, "JWT_EXPIRATION", 60)
	configs.JWT.Issuer = GetEnvFrom(v, "JWT_ISSUER", "duespay")

	// Korapay config
	configs.Korapay.BaseURL = GetEnvFrom(v, "KORAPAY_BASE_URL", "https://api.korapay.com/merchant/api/v1")
	configs.Korapay.SecretKey = GetEnvFrom(v, "KORAPAY_SECRET_KEY", "")
	configs.Korapay.PublicKey = GetEnvFrom(v, "KORAPAY_PUBLIC_KEY", "")
	configs.Korapay.WebhookSecret = GetEnvFrom(v, "KORAPAY_WEBHOOK_SECRET", "")
	configs.Korapay.WebhookURL = GetEnvFrom(v, "KORAPAY_WEBHOOK_URL", "")
	configs.Korapay.RedirectURL = GetEnvFrom(v, "KORAPAY_REDIRECT_URL", "")
	configs.Korapay.Timeout = getDuration(v, "KORAPAY_TIMEOUT", 30*time.Second)

	// Platform config
	configs.Platform.Name = GetEnvFrom(v, "PLATFORM_NAME", "DuesPay")
	configs.Platform.Email = GetEnvFrom(v, "PLATFORM_EMAIL", "payments@duespay.app")
	configs.Platform.Currency = GetEnvFrom(v, "PLATFORM_CURRENCY", "NGN")
	configs.Platform.FlatFee = getDecimal(v, "PLATFORM_FLAT_FEE", decimal.Zero)
	configs.Platform.PercentFee = getDecimal(v, "PLATFORM_PERCENT_FEE", decimal.Zero)

	// Payout config
	configs.Payout.DeferHalls = getBool(v, "PAYOUT_DEFER_HALLS", false)
	configs.Payout.MaxRetries = getInt(v, "PAYOUT_MAX_RETRIES", 3)
	configs.Payout.RetryBaseWait = getDuration(v, "PAYOUT_RETRY_BASE_WAIT", 500*time.Millisecond)

	// Bank directory config
	configs.Banks.BaseURL = GetEnvFrom(v, "NUBAPI_BASE_URL", "https://nubapi.com")
	configs.Banks.Token = GetEnvFrom(v, "NUBAPI_TOKEN", "")
	configs.Banks.CacheTTL = getDuration(v, "BANKS_CACHE_TTL", 24*time.Hour)
	configs.Banks.LockTTL = getDuration(v, "BANKS_LOCK_TTL", 30*time.Second)
	configs.Banks.LockWait = getDuration(v, "BANKS_LOCK_WAIT", 3*time.Second)
	configs.Banks.Timeout = getDuration(v, "NUBAPI_TIMEOUT", 10*time.Second)

	// Logger config
	configs.Logger.Level = GetEnvFrom(v, "LOG_LEVEL", "info")
	configs.Logger.FilePath = GetEnvFrom(v, "LOG_FILE_PATH", "logs/duespay.log")
	configs.Logger.MaxSize = int64(getInt(v, "LOG_MAX_SIZE", 100))
	configs.Logger.MaxAge = getInt(v, "LOG_MAX_AGE", 7)
	configs.Logger.MaxBackups = getInt(v, "LOG_MAX_BACKUPS", 3)
	configs.Logger.Compress = getBool(v, "LOG_COMPRESS", true)
	configs.Logger.Type = GetEnvFrom(v, "LOG_TYPE", "console")

	return configs
}

// GetEnvFrom returns the string value for key, or defaultValue when unset or empty
func GetEnvFrom(v *viper.Viper, key, defaultValue string) string {
	value := strings.TrimSpace(v.GetString(key))
	if value == "" {
		return defaultValue
	}
	return value
}

func getInt(v *viper.Viper, key string, defaultValue int) int {
	if !v.IsSet(key) || GetEnvFrom(v, key, "") == "" {
		return defaultValue
	}
	value, err := cast.ToIntE(strings.TrimSpace(v.GetString(key)))
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}
	return value
}

func getBool(v *viper.Viper, key string, defaultValue bool) bool {
	if !v.IsSet(key) || GetEnvFrom(v, key, "") == "" {
		return defaultValue
	}
	value, err := cast.ToBoolE(strings.TrimSpace(v.GetString(key)))
	if err != nil {
		log.Printf("Warning: Invalid boolean value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}
	return value
}

// getDuration accepts Go duration strings ("30s") or a plain number of seconds
func getDuration(v *viper.Viper, key string, defaultValue time.Duration) time.Duration {
	raw := GetEnvFrom(v, key, "")
	if raw == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	if secs, err := cast.ToIntE(raw); err == nil {
		return time.Duration(secs) * time.Second
	}
	log.Printf("Warning: Invalid duration value for %s, using default: %s", key, defaultValue)
	return defaultValue
}

func getDecimal(v *viper.Viper, key string, defaultValue decimal.Decimal) decimal.Decimal {
	raw := GetEnvFrom(v, key, "")
	if raw == "" {
		return defaultValue
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		log.Printf("Warning: Invalid decimal value for %s, using default: %s", key, defaultValue)
		return defaultValue
	}
	return d
}

func getList(v *viper.Viper, key string) []string {
	raw := GetEnvFrom(v, key, "")
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
