// Package config provides configuration management for the cart service.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the complete application configuration.
type Config struct {
	Server   ServerConfig
	Engine   EngineConfig
	Gateway  GatewayConfig
	Catalog  CatalogConfig
	Database DatabaseConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port        string
	RateLimit   int
	RateWindow  time.Duration
	CORSOrigins []string
	SwaggerUser string
	SwaggerPass string
}

// EngineConfig holds cart engine configuration.
type EngineConfig struct {
	// StoragePath is the file path for the cart snapshot when MongoDB is
	// disabled.
	StoragePath string
	// DebounceWindow is the quantity-update debounce window for remote sync.
	DebounceWindow time.Duration
}

// GatewayConfig holds remote cart gateway configuration.
type GatewayConfig struct {
	BaseURL string
	Timeout time.Duration
	// CircuitBreaker configuration
	CircuitBreakerFailureThreshold int
	CircuitBreakerSuccessThreshold int
	CircuitBreakerCooldown         time.Duration
}

// CatalogConfig holds product catalog client configuration.
type CatalogConfig struct {
	BaseURL   string
	Timeout   time.Duration
	CacheSize int
	CacheTTL  time.Duration
}

// DatabaseConfig holds MongoDB configuration.
type DatabaseConfig struct {
	URI          string
	DatabaseName string
	Enabled      bool
}

// Load creates a Config from environment variables.
func Load() Config {
	return Config{
		Server: ServerConfig{
			Port:        getEnv("PORT", "8080"),
			RateLimit:   getEnvInt("RATE_LIMIT", 100),
			RateWindow:  getEnvDuration("RATE_WINDOW", time.Minute),
			CORSOrigins: parseCORSOrigins(os.Getenv("CORS_ORIGINS")),
			SwaggerUser: getEnv("SWAGGER_USER", ""),
			SwaggerPass: getEnv("SWAGGER_PASS", ""),
		},
		Engine: EngineConfig{
			StoragePath:    getEnv("CART_STORAGE_PATH", "data/cart.json"),
			DebounceWindow: getEnvDuration("CART_DEBOUNCE_WINDOW", 500*time.Millisecond),
		},
		Gateway: GatewayConfig{
			BaseURL:                        getEnv("CART_API_BASE_URL", "http://localhost:8080/api"),
			Timeout:                        getEnvDuration("CART_API_TIMEOUT", 10*time.Second),
			CircuitBreakerFailureThreshold: getEnvInt("CIRCUIT_BREAKER_FAILURE_THRESHOLD", 5),
			CircuitBreakerSuccessThreshold: getEnvInt("CIRCUIT_BREAKER_SUCCESS_THRESHOLD", 2),
			CircuitBreakerCooldown:         getEnvDuration("CIRCUIT_BREAKER_COOLDOWN", 30*time.Second),
		},
		Catalog: CatalogConfig{
			BaseURL:   getEnv("CATALOG_BASE_URL", "https://dummyjson.com"),
			Timeout:   getEnvDuration("CATALOG_TIMEOUT", 10*time.Second),
			CacheSize: getEnvInt("CATALOG_CACHE_SIZE", 256),
			CacheTTL:  getEnvDuration("CATALOG_CACHE_TTL", 5*time.Minute),
		},
		Database: DatabaseConfig{
			URI:          getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			DatabaseName: getEnv("MONGODB_DATABASE", "cart_service"),
			Enabled:      getEnvBool("MONGODB_ENABLED", false),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultValue
}

func parseCORSOrigins(s string) []string {
	// Default origins for local development
	defaults := []string{
		"http://localhost:3000",
		"http://127.0.0.1:3000",
	}
	if s == "" {
		return defaults
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts)+len(defaults))
	result = append(result, defaults...)
	for _, p := range parts {
		if origin := strings.TrimSpace(p); origin != "" {
			result = append(result, origin)
		}
	}
	return result
}
