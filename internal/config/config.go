package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort  string
	MySQLDSN    string
	RedisAddr   string
	RedisDB     int
	RedisPass   string
	SwaggerHost string

	// Identity provider settings. Both are mandatory: the app cannot
	// authenticate anyone without them.
	ProviderURL string
	ProviderKey string
}

const defaultMySQLDSN = "user:password@tcp(localhost:3306)/showcase?charset=utf8mb4&parseTime=True&loc=Local"

// MySQLDSN returns the database connection string. For tools that only
// need the database and not the full server configuration.
func MySQLDSN() string {
	return getEnv("MYSQL_DSN", defaultMySQLDSN)
}

// Load builds Config from environment. Server, database and Redis
// settings fall back to development defaults; provider settings do not,
// and a missing one is a startup error.
func Load() (*Config, error) {
	cfg := &Config{
		ServerPort:  getEnv("SERVER_PORT", "8080"),
		MySQLDSN:    MySQLDSN(),
		RedisAddr:   getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:     getEnvInt("REDIS_DB", 0),
		RedisPass:   os.Getenv("REDIS_PASSWORD"),
		SwaggerHost: os.Getenv("SWAGGER_HOST"),
		ProviderURL: os.Getenv("AUTH_PROVIDER_URL"),
		ProviderKey: os.Getenv("AUTH_PROVIDER_KEY"),
	}

	if cfg.ProviderURL == "" {
		return nil, fmt.Errorf("AUTH_PROVIDER_URL is not set")
	}
	if cfg.ProviderKey == "" {
		return nil, fmt.Errorf("AUTH_PROVIDER_KEY is not set")
	}

	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}
