package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds the doveguide runtime configuration. Everything comes from
// environment variables with code defaults; there is no config file.
type Config struct {
	// AppEnv selects the logging profile ("development" or "production").
	AppEnv string
	// SourcePath is a local CSV export to load. Takes precedence over
	// SourceURL when both are set.
	SourcePath string
	// SourceURL is the HTTPS location of the current export.
	SourceURL string
	// MetricsAddr, when non-empty, serves Prometheus metrics on this
	// address (e.g. ":9090").
	MetricsAddr string
	// CacheTTL is how long a parsed guide stays cached per source.
	CacheTTL time.Duration
	// DecodeWorkers is the number of concurrent row decoders.
	DecodeWorkers int
	// Strict aborts an import on the first rejected row instead of
	// collecting rejects into the report.
	Strict bool
}

func Load() *Config {
	return &Config{
		AppEnv:        getEnv("APP_ENV", "development"),
		SourcePath:    getEnv("DOVE_SOURCE_PATH", ""),
		SourceURL:     getEnv("DOVE_SOURCE_URL", "https://dove.cccbr.org.uk/dove.csv"),
		MetricsAddr:   getEnv("METRICS_ADDR", ""),
		CacheTTL:      time.Duration(parseInt(getEnv("DOVE_CACHE_TTL_SECONDS", "900"), 900)) * time.Second,
		DecodeWorkers: parseInt(getEnv("DOVE_DECODE_WORKERS", "4"), 4),
		Strict:        getEnv("DOVE_STRICT", "false") == "true",
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseInt(s string, fallback int) int {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
