package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisSessionDB int    `mapstructure:"REDIS_SESSION_DB"`
	RedisAuthDB    int    `mapstructure:"REDIS_AUTH_DB"`
	RedisCatalogDB int    `mapstructure:"REDIS_CATALOG_DB"`
	RedisQueueDB   int    `mapstructure:"REDIS_QUEUE_DB"`

	// Practice-platform API.
	PlatformBaseURL    string `mapstructure:"PLATFORM_BASE_URL"`
	PlatformTimeoutSec int    `mapstructure:"PLATFORM_TIMEOUT_SEC"`

	// Registration session lifetime and catalog cache TTL, in minutes.
	SessionTTLMin       int `mapstructure:"SESSION_TTL_MIN"`
	CatalogTTLMin       int `mapstructure:"CATALOG_TTL_MIN"`
	CatalogRefreshHours int `mapstructure:"CATALOG_REFRESH_HOURS"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_SESSION_DB", 0)
	viper.SetDefault("REDIS_AUTH_DB", 1)
	viper.SetDefault("REDIS_CATALOG_DB", 2)
	viper.SetDefault("REDIS_QUEUE_DB", 3)
	viper.SetDefault("PLATFORM_BASE_URL", "http://localhost:9000/api")
	viper.SetDefault("PLATFORM_TIMEOUT_SEC", 15)
	viper.SetDefault("SESSION_TTL_MIN", 60)
	viper.SetDefault("CATALOG_TTL_MIN", 360)
	viper.SetDefault("CATALOG_REFRESH_HOURS", 6)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}

// SessionTTL returns the registration session lifetime as a duration.
func SessionTTL() time.Duration {
	return time.Duration(AppConfig.SessionTTLMin) * time.Minute
}

// CatalogTTL returns the catalog cache lifetime as a duration.
func CatalogTTL() time.Duration {
	return time.Duration(AppConfig.CatalogTTLMin) * time.Minute
}

// PlatformTimeout returns the HTTP timeout for platform API calls.
func PlatformTimeout() time.Duration {
	return time.Duration(AppConfig.PlatformTimeoutSec) * time.Second
}
