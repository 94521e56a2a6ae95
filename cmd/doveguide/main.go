package main

import (
	"context"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"bellmetal/doveguide/internal/config"
	"bellmetal/doveguide/internal/dove"
	"bellmetal/doveguide/internal/logging"
	"bellmetal/doveguide/internal/metrics"
)

func main() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfg := config.Load()

	// Initialize structured logging
	if err := logging.Init(cfg.AppEnv); err != nil {
		log.Fatalf("❌ Failed to initialize logger: %v", err)
	}
	defer logging.Close()

	logging.Info("Doveguide starting up",
		"environment", cfg.AppEnv,
		"timestamp", time.Now().Format(time.RFC3339),
	)

	reg := metrics.NewMetricsRegistry()
	if cfg.MetricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		go func() {
			logging.Info("Prometheus metrics endpoint registered at /metrics", "addr", cfg.MetricsAddr)
			if err := http.ListenAndServe(cfg.MetricsAddr, mux); err != nil {
				logging.Error("Metrics server stopped", "error", err.Error())
			}
		}()
	}

	loader := dove.NewLoader(cfg.DecodeWorkers, cfg.Strict, reg)
	ctx := context.Background()

	var (
		doves *dove.Doves
		err   error
	)
	if cfg.SourcePath != "" {
		cache := dove.NewCache(cfg.CacheTTL, loader, reg)
		doves, err = cache.LoadFile(ctx, cfg.SourcePath)
	} else {
		fetcher := dove.NewFetcher(cfg.SourceURL, reg)
		var body io.ReadCloser
		body, err = fetcher.Fetch(ctx)
		if err == nil {
			defer body.Close()
			doves, err = loader.Load(ctx, body, cfg.SourceURL)
		}
	}
	if err != nil {
		logging.Error("Import failed", "error", err.Error())
		os.Exit(1)
	}

	rep := doves.Report()
	logging.Info("Guide imported",
		"run_id", rep.RunID,
		"source", rep.Source,
		"rows", rep.Rows,
		"decoded", rep.Decoded,
		"rejected", rep.Rejected,
		"duration_ms", rep.Duration.Milliseconds(),
	)
	for _, recErr := range rep.Errors {
		logging.Warn("Rejected row", "row", recErr.Row, "error", recErr.Error())
	}
}
