package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	Environment string
	LogLevel    string
	LogDir      string
	DBUser      string
	DBPassword  string
	DBHost      string
	DBPort      string
	DBName      string
	APIKey      string // API key for authentication

	CatalogDir string // Directory of world catalog JSON files

	SessionTTL       time.Duration // Idle time before a cached session is evicted
	SessionCacheSize int           // Max live sessions held in memory
	SaveInterval     time.Duration // Cadence of the dirty-session flush
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		Environment: getEnv("ENVIRONMENT", "dev"),
		LogLevel:    getEnv("LOG_LEVEL", "INFO"),
		LogDir:      getEnv("LOG_DIR", DefaultLogDir),
		DBUser:      getEnv("DB_USER", "postgres"),
		DBPassword:  getEnv("DB_PASSWORD", "postgres"),
		DBHost:      getEnv("DB_HOST", "localhost"),
		DBPort:      getEnv("DB_PORT", "5432"),
		DBName:      getEnv("DB_NAME", "deepmine"),
		APIKey:      getEnv("API_KEY", ""),
		CatalogDir:  getEnv("CATALOG_DIR", DefaultCatalogDir),
	}

	port, err := getEnvInt("PORT", 8080)
	if err != nil {
		return nil, err
	}
	cfg.Port = port

	ttlSeconds, err := getEnvInt("SESSION_TTL_SECONDS", DefaultSessionTTLSeconds)
	if err != nil {
		return nil, err
	}
	cfg.SessionTTL = time.Duration(ttlSeconds) * time.Second

	cacheSize, err := getEnvInt("SESSION_CACHE_SIZE", DefaultSessionCacheSize)
	if err != nil {
		return nil, err
	}
	if cacheSize < 1 {
		return nil, fmt.Errorf("SESSION_CACHE_SIZE must be at least 1, got %d", cacheSize)
	}
	cfg.SessionCacheSize = cacheSize

	saveSeconds, err := getEnvInt("SAVE_INTERVAL_SECONDS", DefaultSaveIntervalSeconds)
	if err != nil {
		return nil, err
	}
	if saveSeconds < 1 {
		return nil, fmt.Errorf("SAVE_INTERVAL_SECONDS must be at least 1, got %d", saveSeconds)
	}
	cfg.SaveInterval = time.Duration(saveSeconds) * time.Second

	// Validate API key is set
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API_KEY environment variable must be set for security")
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	raw, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return v, nil
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
