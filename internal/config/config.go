package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	// Server configuration
	ServerPort   string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	// Database configuration
	DBHost              string
	DBPort              int
	DBUser              string
	DBPassword          string
	DBName              string
	DBSSLMode           string
	DBMaxConns          int32
	DBMinConns          int32
	DBMaxConnLifetime   time.Duration
	DBMaxConnIdleTime   time.Duration
	DBHealthCheckPeriod time.Duration
	MigrationsPath      string
	RunMigrations       bool

	// Session store configuration; an empty RedisAddr keeps sessions in process
	RedisAddr        string
	RedisPassword    string
	RedisDB          int
	SessionTTL       time.Duration
	SessionCacheSize int

	// Archive configuration
	StorageProvider    string
	ArchiveDir         string
	GCSBucket          string
	GCSCredentialsJSON string

	// Import configuration
	UpsertChunkSize      int
	AuditChunkSize       int
	MaxUploadSize        int64
	CompareUnitOfMeasure bool

	// HTTP configuration
	CORSAllowedOrigins []string

	// Logging configuration
	LogLevel string
}

// Load loads configuration from environment variables, after reading a
// .env file from the working directory when one exists.
func Load() (*Config, error) {
	return LoadFiles(".env")
}

// LoadFiles loads the given env files, skipping missing ones, then reads the
// environment. Variables already set take precedence over file values.
func LoadFiles(files ...string) (*Config, error) {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}

	cfg := &Config{
		ServerPort:           getEnv("SERVER_PORT", "8080"),
		ReadTimeout:          getEnvDuration("HTTP_READ_TIMEOUT", 30*time.Second),
		WriteTimeout:         getEnvDuration("HTTP_WRITE_TIMEOUT", 5*time.Minute),
		IdleTimeout:          getEnvDuration("HTTP_IDLE_TIMEOUT", 120*time.Second),
		DBHost:               getEnv("DB_HOST", "localhost"),
		DBPort:               getEnvInt("DB_PORT", 5432),
		DBUser:               getEnv("DB_USER", "postgres"),
		DBPassword:           getEnv("DB_PASSWORD", "postgres"),
		DBName:               getEnv("DB_NAME", "florify"),
		DBSSLMode:            getEnv("DB_SSL_MODE", "disable"),
		DBMaxConns:           int32(getEnvInt("DB_MAX_CONNS", 25)),
		DBMinConns:           int32(getEnvInt("DB_MIN_CONNS", 5)),
		DBMaxConnLifetime:    getEnvDuration("DB_MAX_CONN_LIFETIME", time.Hour),
		DBMaxConnIdleTime:    getEnvDuration("DB_MAX_CONN_IDLE_TIME", 30*time.Minute),
		DBHealthCheckPeriod:  getEnvDuration("DB_HEALTH_CHECK_PERIOD", time.Minute),
		MigrationsPath:       getEnv("MIGRATIONS_PATH", "migrations"),
		RunMigrations:        getEnvBool("RUN_MIGRATIONS", true),
		RedisAddr:            getEnv("REDIS_ADDR", ""),
		RedisPassword:        getEnv("REDIS_PASSWORD", ""),
		RedisDB:              getEnvInt("REDIS_DB", 0),
		SessionTTL:           getEnvDuration("SESSION_TTL", time.Hour),
		SessionCacheSize:     getEnvInt("SESSION_CACHE_SIZE", 128),
		StorageProvider:      strings.ToLower(getEnv("STORAGE_PROVIDER", "local")),
		ArchiveDir:           getEnv("ARCHIVE_DIR", "./archive"),
		GCSBucket:            getEnv("GCS_BUCKET", ""),
		GCSCredentialsJSON:   getEnv("GCS_CREDENTIALS_JSON", ""),
		UpsertChunkSize:      getEnvInt("UPSERT_CHUNK_SIZE", 500),
		AuditChunkSize:       getEnvInt("AUDIT_CHUNK_SIZE", 50),
		MaxUploadSize:        int64(getEnvInt("MAX_UPLOAD_SIZE", 20<<20)),
		CompareUnitOfMeasure: getEnvBool("COMPARE_UNIT_OF_MEASURE", false),
		CORSAllowedOrigins:   getEnvList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:5173"}),
		LogLevel:             getEnv("LOG_LEVEL", "info"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate validates the configuration.
func (c *Config) validate() error {
	if c.ServerPort == "" {
		return fmt.Errorf("SERVER_PORT is required")
	}
	if c.DBHost == "" {
		return fmt.Errorf("DB_HOST is required")
	}
	if c.DBUser == "" {
		return fmt.Errorf("DB_USER is required")
	}
	if c.DBName == "" {
		return fmt.Errorf("DB_NAME is required")
	}
	if c.RunMigrations && c.MigrationsPath == "" {
		return fmt.Errorf("MIGRATIONS_PATH is required when RUN_MIGRATIONS is set")
	}
	switch c.StorageProvider {
	case "local":
		if c.ArchiveDir == "" {
			return fmt.Errorf("ARCHIVE_DIR is required for the local storage provider")
		}
	case "gcs":
		if c.GCSBucket == "" {
			return fmt.Errorf("GCS_BUCKET is required for the gcs storage provider")
		}
	default:
		return fmt.Errorf("STORAGE_PROVIDER must be local or gcs, got %q", c.StorageProvider)
	}
	if c.UpsertChunkSize < 1 {
		return fmt.Errorf("UPSERT_CHUNK_SIZE must be at least 1")
	}
	if c.AuditChunkSize < 1 {
		return fmt.Errorf("AUDIT_CHUNK_SIZE must be at least 1")
	}
	if c.MaxUploadSize < 1 {
		return fmt.Errorf("MAX_UPLOAD_SIZE must be at least 1")
	}
	if c.SessionCacheSize < 1 {
		return fmt.Errorf("SESSION_CACHE_SIZE must be at least 1")
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive")
	}
	return nil
}

// getEnv gets an environment variable with a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an environment variable as int with a default value.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvBool gets an environment variable as bool with a default value.
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

// getEnvDuration gets an environment variable as duration with a default value.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// getEnvList gets a comma separated environment variable.
func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
