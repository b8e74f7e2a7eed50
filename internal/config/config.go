package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Catalog sources.
const (
	SourceEmbedded = "embedded"
	SourceCSV      = "csv"
	SourcePostgres = "postgres"
)

type Config struct {
	AppEnv      string
	ServiceName string

	HTTPAddr string

	// Catalog
	CatalogSource string
	CatalogPath   string
	DatabaseURL   string
	CatalogTable  string

	// Browser clients calling from another origin
	CORSAllowedOrigins []string

	MetricsEnabled bool

	// Tracing
	TracingEnabled bool
	OTLPEndpoint   string

	LogLevel  string
	LogFormat string

	HTTPReadTimeout  time.Duration
	HTTPWriteTimeout time.Duration
	HTTPIdleTimeout  time.Duration
	ShutdownTimeout  time.Duration
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}

	cfg.AppEnv = getEnv("APP_ENV", "dev")
	cfg.ServiceName = getEnv("SERVICE_NAME", "destination-service")
	cfg.HTTPAddr = getEnv("HTTP_ADDR", ":8080")

	cfg.CatalogSource = strings.ToLower(getEnv("CATALOG_SOURCE", SourceEmbedded))
	cfg.CatalogPath = getEnv("CATALOG_PATH", "")
	cfg.DatabaseURL = getEnv("DATABASE_URL", "")
	cfg.CatalogTable = getEnv("CATALOG_TABLE", "cities")

	cfg.CORSAllowedOrigins = getListEnv("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"})

	cfg.MetricsEnabled = getBoolEnv("METRICS_ENABLED", true)

	cfg.TracingEnabled = getBoolEnv("TRACING_ENABLED", false)
	cfg.OTLPEndpoint = getEnv("OTLP_ENDPOINT", "localhost:4318")

	cfg.LogLevel = getEnv("LOG_LEVEL", "info")
	cfg.LogFormat = getEnv("LOG_FORMAT", "console")

	cfg.HTTPReadTimeout = getDuration("HTTP_READ_TIMEOUT", 5*time.Second)
	cfg.HTTPWriteTimeout = getDuration("HTTP_WRITE_TIMEOUT", 10*time.Second)
	cfg.HTTPIdleTimeout = getDuration("HTTP_IDLE_TIMEOUT", 60*time.Second)
	cfg.ShutdownTimeout = getDuration("SHUTDOWN_TIMEOUT", 10*time.Second)

	// validation
	switch cfg.CatalogSource {
	case SourceEmbedded:
	case SourceCSV:
		if cfg.CatalogPath == "" {
			return nil, fmt.Errorf("missing CATALOG_PATH (required when CATALOG_SOURCE=csv)")
		}
	case SourcePostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("missing DATABASE_URL (required when CATALOG_SOURCE=postgres)")
		}
	default:
		return nil, fmt.Errorf("invalid CATALOG_SOURCE %q (want embedded, csv or postgres)", cfg.CatalogSource)
	}

	return cfg, nil
}

func getEnv(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

func getDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}

func getBoolEnv(key string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

// getListEnv splits a comma separated value, dropping empty items.
func getListEnv(key string, def []string) []string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
