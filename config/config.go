package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Storage drivers
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverMemory   = "memory"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerPort  string
	ServerHost  string
	CORSOrigins []string

	// Storage configuration
	StorageDriver string
	SQLitePath    string
	MigrationsDir string

	// Database configuration
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Redis configuration
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	RedisURL      string

	// JWT configuration
	JWTSecret string
	JWTTTL    time.Duration

	// Logging
	LogLevel  string
	LogFormat string

	// Routine generations allowed per user per hour
	GenerateRateLimit int

	// Catalog import bucket
	S3Bucket  string
	AWSRegion string
}

// LoadConfig creates a new Config instance with values from environment variables or secrets
func LoadConfig() (*Config, error) {
	env := GetEnvironment()
	cfg := &Config{}

	// Load configuration based on environment
	switch env {
	case CI:
		if err := loadCIConfig(cfg); err != nil {
			return nil, fmt.Errorf("failed to load CI configuration: %w", err)
		}
	case Development, Test:
		if err := loadDevConfig(cfg); err != nil {
			return nil, fmt.Errorf("failed to load development configuration: %w", err)
		}
	case Production:
		if err := loadProdConfig(cfg); err != nil {
			return nil, fmt.Errorf("failed to load production configuration: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown environment: %s", env)
	}

	// Validate the configuration
	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// loadCIConfig loads configuration for CI from environment variables only
func loadCIConfig(cfg *Config) error {
	applyCommon(cfg, os.Getenv)
	cfg.DBPassword = os.Getenv("TEST_DB_PASSWORD")
	if cfg.DBPassword == "" {
		cfg.DBPassword = os.Getenv("DB_PASSWORD")
	}
	cfg.JWTSecret = os.Getenv("TEST_JWT_SECRET")
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = os.Getenv("JWT_SECRET")
	}
	cfg.RedisPassword = os.Getenv("TEST_REDIS_PASSWORD")
	if cfg.RedisPassword == "" {
		cfg.RedisPassword = os.Getenv("REDIS_PASSWORD")
	}
	return nil
}

// loadDevConfig loads configuration for development and tests. A .env file
// is read first when present; Docker secrets fill in anything still unset.
func loadDevConfig(cfg *Config) error {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", envFile, err)
	}

	lookup := func(key string) string {
		if v := os.Getenv(key); v != "" {
			return v
		}
		return readSecret(strings.ToLower(key))
	}
	applyCommon(cfg, lookup)
	cfg.DBPassword = lookup("DB_PASSWORD")
	cfg.JWTSecret = lookup("JWT_SECRET")
	cfg.RedisPassword = lookup("REDIS_PASSWORD")
	return nil
}

// loadProdConfig loads configuration for production. Sensitive values come
// only from Docker secrets.
func loadProdConfig(cfg *Config) error {
	lookup := func(key string) string {
		if v := readSecret(strings.ToLower(key)); v != "" {
			return v
		}
		return os.Getenv(key)
	}
	applyCommon(cfg, lookup)
	cfg.DBPassword = readSecret("db_password")
	cfg.JWTSecret = readSecret("jwt_secret")
	cfg.RedisPassword = readSecret("redis_password")
	return nil
}

func applyCommon(cfg *Config, get func(string) string) {
	cfg.ServerPort = withDefault(get("SERVER_PORT"), "8080")
	cfg.ServerHost = withDefault(get("SERVER_HOST"), "0.0.0.0")
	cfg.CORSOrigins = splitList(withDefault(get("CORS_ORIGINS"), "http://localhost:5173,http://frontend:5173"))

	cfg.StorageDriver = withDefault(get("STORAGE_DRIVER"), DriverPostgres)
	cfg.SQLitePath = withDefault(get("SQLITE_PATH"), "skinroutine.db")
	cfg.MigrationsDir = withDefault(get("MIGRATIONS_DIR"), "migrations")

	cfg.DBHost = get("DB_HOST")
	cfg.DBPort = withDefault(get("DB_PORT"), "5432")
	cfg.DBUser = get("DB_USER")
	cfg.DBName = get("DB_NAME")
	cfg.DBSSLMode = withDefault(get("DB_SSL_MODE"), "disable")

	cfg.RedisHost = get("REDIS_HOST")
	cfg.RedisPort = withDefault(get("REDIS_PORT"), "6379")
	cfg.RedisURL = get("REDIS_URL")
	cfg.RedisDB = atoiDefault(get("REDIS_DB"), 0)

	cfg.JWTTTL = durationDefault(get("JWT_TTL"), 24*time.Hour)
	cfg.LogLevel = withDefault(get("LOG_LEVEL"), "info")
	cfg.LogFormat = withDefault(get("LOG_FORMAT"), "text")
	cfg.GenerateRateLimit = atoiDefault(get("GENERATE_RATE_LIMIT"), 20)

	cfg.S3Bucket = get("S3_BUCKET_NAME")
	cfg.AWSRegion = get("AWS_REGION")
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	secretPath := filepath.Join(secretsDir, name)
	if data, err := os.ReadFile(secretPath); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}

func withDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func atoiDefault(v string, def int) int {
	if n, err := strconv.Atoi(v); err == nil {
		return n
	}
	return def
}

func durationDefault(v string, def time.Duration) time.Duration {
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	return def
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
