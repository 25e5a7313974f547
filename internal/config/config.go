// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

const (
	SessionStoreMemory = "memory"
	SessionStoreRedis  = "redis"
)

// Config holds all configuration for our application
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Commerce CommerceConfig
	Session  SessionConfig
	Redis    RedisConfig
	Catalog  CatalogConfig
	Pricing  PricingConfig
	Checkout CheckoutConfig
	Security SecurityConfig
	Logging  LoggingConfig
}

// AppConfig contains application-level configuration
type AppConfig struct {
	Name        string
	Version     string
	Environment string
	Debug       bool
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port           string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	RequestTimeout time.Duration
}

// CommerceConfig points at the headless commerce backend
type CommerceConfig struct {
	BaseURL string
	Timeout time.Duration
}

// SessionConfig contains browser session configuration
type SessionConfig struct {
	Store      string
	Secret     string
	CookieName string
	TTL        time.Duration
	Secure     bool
}

// RedisConfig contains Redis configuration
type RedisConfig struct {
	Enabled      bool
	Host         string
	Port         string
	Password     string
	DB           int
	PoolSize     int
	MinIdleConns int
}

// CatalogConfig contains catalog caching configuration
type CatalogConfig struct {
	CacheTTL time.Duration
}

// PricingConfig contains order total configuration
type PricingConfig struct {
	Currency       string
	TaxRatePercent string
	Locale         string
}

// CheckoutConfig controls order submission
type CheckoutConfig struct {
	SubmitOrders bool
}

// SecurityConfig contains security-related configuration
type SecurityConfig struct {
	RateLimitPerMinute int
	CORSAllowedOrigins []string
	CORSAllowedMethods []string
	CORSAllowedHeaders []string
	TrustedProxies     []string
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string
	Format string
}

// Load loads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found, using environment variables")
	}

	config := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Storefront"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			Environment: getEnv("APP_ENV", "development"),
			Debug:       getEnvAsBool("APP_DEBUG", true),
		},
		Server: ServerConfig{
			Port:           getEnv("APP_PORT", "3000"),
			ReadTimeout:    getEnvAsDuration("SERVER_READ_TIMEOUT", 30*time.Second),
			WriteTimeout:   getEnvAsDuration("SERVER_WRITE_TIMEOUT", 30*time.Second),
			IdleTimeout:    getEnvAsDuration("SERVER_IDLE_TIMEOUT", 60*time.Second),
			RequestTimeout: getEnvAsDuration("SERVER_REQUEST_TIMEOUT", 30*time.Second),
		},
		Commerce: CommerceConfig{
			BaseURL: strings.TrimRight(getEnv("COMMERCE_API_URL", "http://localhost:8080"), "/"),
			Timeout: getEnvAsDuration("COMMERCE_TIMEOUT", 10*time.Second),
		},
		Session: SessionConfig{
			Store:      getEnv("SESSION_STORE", SessionStoreMemory),
			Secret:     getEnv("SESSION_SECRET", "storefront-session-secret-change-in-production"),
			CookieName: getEnv("SESSION_COOKIE", "storefront_session"),
			TTL:        getEnvAsDuration("SESSION_TTL", 24*time.Hour),
			Secure:     getEnvAsBool("SESSION_COOKIE_SECURE", false),
		},
		Redis: RedisConfig{
			Enabled:      getEnvAsBool("REDIS_ENABLED", false),
			Host:         getEnv("REDIS_HOST", "localhost"),
			Port:         getEnv("REDIS_PORT", "6379"),
			Password:     getEnv("REDIS_PASSWORD", ""),
			DB:           getEnvAsInt("REDIS_DB", 0),
			PoolSize:     getEnvAsInt("REDIS_POOL_SIZE", 10),
			MinIdleConns: getEnvAsInt("REDIS_MIN_IDLE_CONNS", 5),
		},
		Catalog: CatalogConfig{
			CacheTTL: getEnvAsDuration("CATALOG_CACHE_TTL", 5*time.Minute),
		},
		Pricing: PricingConfig{
			Currency:       getEnv("STORE_CURRENCY", "USD"),
			TaxRatePercent: getEnv("TAX_RATE_PERCENT", "8"),
			Locale:         getEnv("STORE_LOCALE", "en-US"),
		},
		Checkout: CheckoutConfig{
			SubmitOrders: getEnvAsBool("CHECKOUT_SUBMIT_ORDERS", false),
		},
		Security: SecurityConfig{
			RateLimitPerMinute: getEnvAsInt("RATE_LIMIT_PER_MINUTE", 300),
			CORSAllowedOrigins: getEnvAsSlice("CORS_ALLOWED_ORIGINS", []string{"http://localhost:5173"}),
			CORSAllowedMethods: getEnvAsSlice("CORS_ALLOWED_METHODS", []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
			CORSAllowedHeaders: getEnvAsSlice("CORS_ALLOWED_HEADERS", []string{"Origin", "Content-Type", "Accept", "Authorization"}),
			TrustedProxies:     getEnvAsSlice("TRUSTED_PROXIES", []string{}),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if len(c.Session.Secret) < 32 {
		return fmt.Errorf("SESSION_SECRET must be at least 32 characters long")
	}

	switch c.Session.Store {
	case SessionStoreMemory:
	case SessionStoreRedis:
		if c.Redis.Host == "" {
			return fmt.Errorf("REDIS_HOST is required when SESSION_STORE is redis")
		}
	default:
		return fmt.Errorf("SESSION_STORE must be %q or %q, got %q", SessionStoreMemory, SessionStoreRedis, c.Session.Store)
	}

	if c.Commerce.BaseURL == "" {
		return fmt.Errorf("COMMERCE_API_URL is required")
	}

	if _, err := c.StoreCurrency(); err != nil {
		return err
	}

	rate, err := c.TaxRate()
	if err != nil {
		return err
	}
	if rate.IsNegative() {
		return fmt.Errorf("TAX_RATE_PERCENT must not be negative")
	}

	if _, err := c.StoreLocale(); err != nil {
		return err
	}

	if c.Server.Port == "" {
		return fmt.Errorf("APP_PORT is required")
	}

	return nil
}

// IsDevelopment returns true if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

// IsProduction returns true if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// UsesRedis reports whether a Redis connection should be opened. Sessions stored in Redis
// force it on; otherwise REDIS_ENABLED turns on the rate limiter and the catalog cache.
func (c *Config) UsesRedis() bool {
	return c.Redis.Enabled || c.Session.Store == SessionStoreRedis
}

// GetRedisAddr returns the Redis address
func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", c.Redis.Host, c.Redis.Port)
}

// StoreCurrency parses STORE_CURRENCY
func (c *Config) StoreCurrency() (currency.Unit, error) {
	cur, err := currency.ParseISO(c.Pricing.Currency)
	if err != nil {
		return currency.Unit{}, fmt.Errorf("STORE_CURRENCY[%s] is not valid: %w", c.Pricing.Currency, err)
	}
	return cur, nil
}

// StoreLocale parses STORE_LOCALE, the BCP 47 tag prices are displayed in
func (c *Config) StoreLocale() (language.Tag, error) {
	tag, err := language.Parse(c.Pricing.Locale)
	if err != nil {
		return language.Und, fmt.Errorf("STORE_LOCALE[%s] is not valid: %w", c.Pricing.Locale, err)
	}
	return tag, nil
}

// TaxRate parses TAX_RATE_PERCENT
func (c *Config) TaxRate() (decimal.Decimal, error) {
	rate, err := decimal.NewFromString(c.Pricing.TaxRatePercent)
	if err != nil {
		return decimal.Zero, fmt.Errorf("TAX_RATE_PERCENT[%s] is not valid: %w", c.Pricing.TaxRatePercent, err)
	}
	return rate, nil
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		return strings.Split(value, ",")
	}
	return defaultValue
}
