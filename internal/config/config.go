package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/binderapp/binder/internal/storage"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	Environment string
	LogDir      string
	APIKey      string // API key for authentication

	StorageBackend string
	DataDir        string // badger database path

	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string

	CatalogBaseURL  string
	CatalogFile     string // when set, serve the catalog from this file instead of the API
	CatalogSet      string
	CatalogCacheTTL time.Duration

	SnapshotInterval time.Duration // 0 disables the snapshot job

	WorkerCount  int
	JobQueueSize int

	TrustedProxies []string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "text"),
		Environment:    getEnv("ENVIRONMENT", "dev"),
		LogDir:         getEnv("LOG_DIR", "logs"),
		APIKey:         getEnv("API_KEY", ""),
		StorageBackend: getEnv("STORAGE_BACKEND", storage.BackendBadger),
		DataDir:        getEnv("DATA_DIR", "data"),
		DBUser:         getEnv("DB_USER", "postgres"),
		DBPassword:     getEnv("DB_PASSWORD", "postgres"),
		DBHost:         getEnv("DB_HOST", "localhost"),
		DBPort:         getEnv("DB_PORT", "5432"),
		DBName:         getEnv("DB_NAME", "binder"),
		CatalogBaseURL: getEnv("CATALOG_BASE_URL", DefaultCatalogBaseURL),
		CatalogFile:    getEnv("CATALOG_FILE", ""),
		CatalogSet:     getEnv("CATALOG_SET", ""),
		WorkerCount:    getEnvAsInt("WORKER_COUNT", DefaultWorkerCount),
		JobQueueSize:   getEnvAsInt("JOB_QUEUE_SIZE", DefaultJobQueueSize),
		TrustedProxies: splitAndTrim(getEnv("TRUSTED_PROXIES", "")),
	}

	port, err := strconv.Atoi(getEnv("PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	cacheTTL, err := getEnvAsDuration("CATALOG_CACHE_TTL", DefaultCatalogCacheTTL)
	if err != nil {
		return nil, err
	}
	cfg.CatalogCacheTTL = cacheTTL

	snapshotInterval, err := getEnvAsDuration("SNAPSHOT_INTERVAL", DefaultSnapshotInterval)
	if err != nil {
		return nil, err
	}
	cfg.SnapshotInterval = snapshotInterval

	if cfg.StorageBackend != storage.BackendBadger && cfg.StorageBackend != storage.BackendPostgres {
		return nil, fmt.Errorf("invalid STORAGE_BACKEND %q: must be %q or %q",
			cfg.StorageBackend, storage.BackendBadger, storage.BackendPostgres)
	}

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

// getEnvAsInt retrieves an integer environment variable, falling back to the
// default when unset or unparseable
func getEnvAsInt(key string, defaultValue int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

// getEnvAsDuration retrieves a duration environment variable. Malformed
// values fail Load instead of falling back.
func getEnvAsDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue, nil
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	if parsed < 0 {
		return 0, fmt.Errorf("invalid %s value %q: must not be negative", key, value)
	}
	return parsed, nil
}

// splitAndTrim parses a comma-separated list, dropping empty entries
func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
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
