package dove

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"

	"bellmetal/doveguide/internal/metrics"
)

// Fetcher downloads the current guide export over HTTPS. Downloads are
// rate-limited client-side; the guide changes at most a few times a day
// and dove.cccbr.org.uk is a volunteer-run service.
type Fetcher struct {
	client  *resty.Client
	limiter *rate.Limiter
	url     string
	metrics *metrics.MetricsRegistry
}

// NewFetcher creates a fetcher for the export at url. reg may be nil.
func NewFetcher(url string, reg *metrics.MetricsRegistry) *Fetcher {
	client := resty.New().
		SetTimeout(60 * time.Second).
		SetRetryCount(3).
		SetRetryWaitTime(1 * time.Second).
		SetRetryMaxWaitTime(10 * time.Second).
		SetHeader("Accept", "text/csv")

	return &Fetcher{
		client:  client,
		limiter: rate.NewLimiter(rate.Every(30*time.Second), 1), // 1 download per 30s, burst 1
		url:     url,
		metrics: reg,
	}
}

// Fetch downloads the export and returns its body. The caller owns the
// returned reader and must close it.
func (f *Fetcher) Fetch(ctx context.Context) (io.ReadCloser, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	resp, err := f.client.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		Get(f.url)
	if err != nil {
		f.outcome("error")
		return nil, fmt.Errorf("failed to fetch export: %w", err)
	}
	if resp.StatusCode() != 200 {
		resp.RawBody().Close()
		f.outcome("error")
		return nil, fmt.Errorf("failed to fetch export: HTTP %d", resp.StatusCode())
	}

	f.outcome("success")
	return resp.RawBody(), nil
}

func (f *Fetcher) outcome(label string) {
	if f.metrics != nil {
		f.metrics.FetchesTotal.WithLabelValues(label).Inc()
	}
}
