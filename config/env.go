package config

import (
	"context"
	"os"
	"strconv"
	"time"
)

// Environment keys:
//
//	PORT                 http listen port           (default 8082)
//	APP_ENV              development | production   (default development)
//	GADGETS_API_URL      upstream gadgets REST API  (default http://localhost:5000/api)
//	GADGETS_API_TIMEOUT  upstream timeout, seconds  (default 10)
//	SESSION_TTL_MINUTES  catalog session idle TTL   (default 30)
//	ITEMS_PER_PAGE       catalog page size          (default 12)
//	REDIS_URL            rate-limiter redis         (default redis://localhost:6379)

func Port() string {
	return getEnv("PORT", "8082")
}

func AppEnv() string {
	return getEnv("APP_ENV", "development")
}

func GadgetsAPIURL() string {
	return getEnv("GADGETS_API_URL", "http://localhost:5000/api")
}

func GadgetsAPITimeout() time.Duration {
	return time.Duration(getEnvInt("GADGETS_API_TIMEOUT", 10)) * time.Second
}

func SessionTTL() time.Duration {
	return time.Duration(getEnvInt("SESSION_TTL_MINUTES", 30)) * time.Minute
}

func ItemsPerPage() int {
	return getEnvInt("ITEMS_PER_PAGE", 12)
}

// WithTimeout returns a context with a 10s timeout, enough headroom for
// upstream cold starts.
func WithTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}

func WithCustomTimeout(duration time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), duration)
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed <= 0 {
		return defaultValue
	}
	return parsed
}
