package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Database      DatabaseConfig
	App           AppConfig
	Storage       StorageConfig
	Import        ImportConfig
	Recalculation RecalculationConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
	MaxConns int32
	MinConns int32
}

// AppConfig holds application configuration
type AppConfig struct {
	Name        string
	Version     string
	Port        int
	Env         string
	LogLevel    string
	CORSOrigins []string
}

// StorageConfig selects where uploaded source files are kept
type StorageConfig struct {
	Type     string // local or s3
	BasePath string
	BaseURL  string
	Bucket   string
	Region   string
	Prefix   string
}

type ImportConfig struct {
	MaxUploadMB int
	Workers     int
}

type RecalculationConfig struct {
	// CronSpec schedules the resume of stale recalculations, empty disables it
	CronSpec string
	Workers  int
	Timezone string
}

func Load() (*Config, error) {
	// A missing .env is fine, the environment may already be populated
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	config := &Config{}

	// Database configuration
	dbPort, err := getEnvInt("DB_PORT", 5432)
	if err != nil {
		return nil, err
	}
	maxConns, err := getEnvInt("DB_MAX_CONNS", 10)
	if err != nil {
		return nil, err
	}
	minConns, err := getEnvInt("DB_MIN_CONNS", 1)
	if err != nil {
		return nil, err
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "attendance_dashboard"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		MaxConns: int32(maxConns),
		MinConns: int32(minConns),
	}

	// Application configuration
	appPort, err := getEnvInt("APP_PORT", 8080)
	if err != nil {
		return nil, err
	}

	config.App = AppConfig{
		Name:        getEnv("APP_NAME", "attendance-dashboard"),
		Version:     getEnv("APP_VERSION", "v1.0.0"),
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		CORSOrigins: getEnvSlice("CORS_ALLOWED_ORIGINS"),
	}
	if len(config.App.CORSOrigins) == 0 {
		config.App.CORSOrigins = []string{"http://localhost:3000"}
	}

	// Storage configuration
	config.Storage = StorageConfig{
		Type:     getEnv("STORAGE_TYPE", "local"),
		BasePath: getEnv("STORAGE_BASE_PATH", "./storage"),
		BaseURL:  getEnv("STORAGE_BASE_URL", "http://localhost:8080/files"),
		Bucket:   getEnv("S3_BUCKET", ""),
		Region:   getEnv("AWS_REGION", "ap-southeast-1"),
		Prefix:   getEnv("S3_PREFIX", ""),
	}

	// Import configuration
	maxUploadMB, err := getEnvInt("IMPORT_MAX_UPLOAD_MB", 10)
	if err != nil {
		return nil, err
	}
	importWorkers, err := getEnvInt("IMPORT_WORKERS", 8)
	if err != nil {
		return nil, err
	}
	config.Import = ImportConfig{
		MaxUploadMB: maxUploadMB,
		Workers:     importWorkers,
	}

	// Recalculation configuration
	recalcWorkers, err := getEnvInt("RECALC_WORKERS", 8)
	if err != nil {
		return nil, err
	}
	config.Recalculation = RecalculationConfig{
		CronSpec: getEnv("RECALC_CRON", "0 2 * * *"),
		Workers:  recalcWorkers,
		Timezone: getEnv("RECALC_TIMEZONE", "UTC"),
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.Database.MaxConns < 1 {
		return fmt.Errorf("DB_MAX_CONNS must be at least 1")
	}

	switch c.Storage.Type {
	case "local":
		if c.Storage.BasePath == "" {
			return fmt.Errorf("STORAGE_BASE_PATH is required for local storage")
		}
	case "s3":
		if c.Storage.Bucket == "" {
			return fmt.Errorf("S3_BUCKET is required for s3 storage")
		}
	default:
		return fmt.Errorf("unsupported STORAGE_TYPE %q", c.Storage.Type)
	}

	if c.Import.MaxUploadMB < 1 {
		return fmt.Errorf("IMPORT_MAX_UPLOAD_MB must be at least 1")
	}
	if c.Import.Workers < 1 || c.Recalculation.Workers < 1 {
		return fmt.Errorf("IMPORT_WORKERS and RECALC_WORKERS must be at least 1")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// MaxUploadBytes is the request size accepted by the import endpoint.
func (c *Config) MaxUploadBytes() int64 {
	return int64(c.Import.MaxUploadMB) << 20
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	value := getEnv(key, "")
	if value == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func getEnvSlice(env string) []string {
	value := getEnv(env, "")
	if value == "" {
		return []string{}
	}
	var result []string
	for _, v := range strings.Split(value, ",") {
		if v = strings.TrimSpace(v); v != "" {
			result = append(result, v)
		}
	}
	return result
}
