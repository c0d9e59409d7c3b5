package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Store backends.
const (
	BackendMemory   = "memory"
	BackendJSONBin  = "jsonbin"
	BackendR2       = "r2"
	BackendPostgres = "postgres"
)

// Config хранит все конфигурационные параметры приложения.
type Config struct {
	ServerPort int
	LogLevel   slog.Level

	StoreBackend string
	SaveRetries  int

	JSONBinBaseURL string
	JSONBinBinID   string
	JSONBinAPIKey  string

	R2AccountID       string
	R2AccessKeyID     string
	R2SecretAccessKey string
	R2BucketName      string
	R2DocumentKey     string

	DatabaseURL string
	DocumentID  string
	DBTimeout   time.Duration

	CORSAllowedOrigins []string
	RateLimitRPS       float64
	RateLimitBurst     int
}

// Load загружает конфигурацию из переменных окружения.
// Опционально подгружает .env файл (полезно для локальной разработки).
func Load() (*Config, error) {
	_ = godotenv.Load() // .env может отсутствовать
	return FromEnv()
}

// FromEnv reads the configuration from the process environment only.
func FromEnv() (*Config, error) {
	port, err := intEnv("SERVER_PORT", 8080)
	if err != nil {
		return nil, err
	}
	if port <= 0 || port > 65535 {
		return nil, fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", port)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(stringEnv("LOG_LEVEL", "info"))); err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	retries, err := intEnv("SAVE_RETRIES", 3)
	if err != nil {
		return nil, err
	}
	if retries < 0 {
		return nil, fmt.Errorf("SAVE_RETRIES must not be negative, got %d", retries)
	}

	rps, err := strconv.ParseFloat(stringEnv("RATE_LIMIT_RPS", "5"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_RPS environment variable: %w", err)
	}
	burst, err := intEnv("RATE_LIMIT_BURST", 10)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		ServerPort:         port,
		LogLevel:           level,
		StoreBackend:       strings.ToLower(stringEnv("STORE_BACKEND", BackendMemory)),
		SaveRetries:        retries,
		JSONBinBaseURL:     stringEnv("JSONBIN_BASE_URL", "https://api.jsonbin.io/v3"),
		JSONBinBinID:       os.Getenv("JSONBIN_BIN_ID"),
		JSONBinAPIKey:      os.Getenv("JSONBIN_API_KEY"),
		R2AccountID:        os.Getenv("R2_ACCOUNT_ID"),
		R2AccessKeyID:      os.Getenv("R2_ACCESS_KEY_ID"),
		R2SecretAccessKey:  os.Getenv("R2_SECRET_ACCESS_KEY"),
		R2BucketName:       os.Getenv("R2_BUCKET_NAME"),
		R2DocumentKey:      stringEnv("R2_DOCUMENT_KEY", "tournament.json"),
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		DocumentID:         stringEnv("DOCUMENT_ID", "main"),
		DBTimeout:          5 * time.Second,
		CORSAllowedOrigins: splitList(stringEnv("CORS_ALLOWED_ORIGINS", "*")),
		RateLimitRPS:       rps,
		RateLimitBurst:     burst,
	}

	if err := cfg.validateBackend(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validateBackend checks that the selected store has its settings.
func (c *Config) validateBackend() error {
	var missing []string
	require := func(key, value string) {
		if value == "" {
			missing = append(missing, key)
		}
	}

	switch c.StoreBackend {
	case BackendMemory:
	case BackendJSONBin:
		require("JSONBIN_BIN_ID", c.JSONBinBinID)
		require("JSONBIN_API_KEY", c.JSONBinAPIKey)
	case BackendR2:
		require("R2_ACCOUNT_ID", c.R2AccountID)
		require("R2_ACCESS_KEY_ID", c.R2AccessKeyID)
		require("R2_SECRET_ACCESS_KEY", c.R2SecretAccessKey)
		require("R2_BUCKET_NAME", c.R2BucketName)
	case BackendPostgres:
		require("DATABASE_URL", c.DatabaseURL)
	default:
		return fmt.Errorf("unknown STORE_BACKEND %q", c.StoreBackend)
	}

	if len(missing) > 0 {
		return fmt.Errorf("STORE_BACKEND=%s requires %s", c.StoreBackend, strings.Join(missing, ", "))
	}
	return nil
}

func stringEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func intEnv(key string, fallback int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s environment variable: %w", key, err)
	}
	return n, nil
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
