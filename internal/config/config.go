package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds the whole application configuration, populated from
// environment variables.
type Config struct {
	App     AppConfig
	Redis   RedisConfig
	Auth    AuthConfig
	Catalog CatalogConfig
	Ratings RatingsConfig
	Cart    CartConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
}

type RedisConfig struct {
	Host     string
	Password string
	DB       int
}

// AuthConfig covers token verification only. Tokens are minted by the
// external identity provider; this service just validates them.
type AuthConfig struct {
	JWTSecret string
}

type CatalogConfig struct {
	BaseURL  string
	PageSize int
	// Requests per second against the catalog API.
	RateLimit int
}

type RatingsConfig struct {
	CacheEnabled bool
	CacheTTL     time.Duration
}

type CartConfig struct {
	// Flat price applied to every cart item until the catalog exposes
	// real pricing.
	DefaultPrice string
}

// Load reads config from environment variables.
func Load() (*Config, error) {
	cacheTTL, err := time.ParseDuration(getEnv("RATINGS_CACHE_TTL", "5m"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATINGS_CACHE_TTL: %w", err)
	}

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Bookshelf API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Auth: AuthConfig{
			JWTSecret: getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
		},
		Catalog: CatalogConfig{
			BaseURL:  getEnv("CATALOG_BASE_URL", "https://www.googleapis.com/books/v1"),
			PageSize: getEnvInt("CATALOG_PAGE_SIZE", 20),
			RateLimit: getEnvInt("CATALOG_RATE_LIMIT", 5),
		},
		Ratings: RatingsConfig{
			CacheEnabled: getEnvBool("RATINGS_CACHE_ENABLED", false),
			CacheTTL:     cacheTTL,
		},
		Cart: CartConfig{
			DefaultPrice: getEnv("CART_DEFAULT_PRICE", "9.99"),
		},
	}

	// Validate critical config
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks the loaded configuration for production mistakes.
func (c *Config) Validate() error {
	if c.App.Environment == "production" {
		if c.Auth.JWTSecret == "your-secret-key-change-in-production" {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
	}

	if c.Catalog.PageSize <= 0 {
		return fmt.Errorf("CATALOG_PAGE_SIZE must be positive")
	}

	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
