package dove

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"bellmetal/doveguide/internal/decode"
	"bellmetal/doveguide/internal/logging"
	"bellmetal/doveguide/internal/metrics"
	"bellmetal/doveguide/internal/models"
)

// Loader reads a Dove's Guide CSV export and decodes it row by row.
//
// Decoding itself is pure and touches only read-only vocabulary tables, so
// rows are decoded concurrently; output order always matches source order.
type Loader struct {
	workers int
	// strict aborts on the first rejected row; otherwise rejects are
	// collected into the Report and decoding continues.
	strict  bool
	metrics *metrics.MetricsRegistry
}

// NewLoader creates a loader. reg may be nil when metrics are not wanted
// (tests, one-shot runs).
func NewLoader(workers int, strict bool, reg *metrics.MetricsRegistry) *Loader {
	if workers < 1 {
		workers = 1
	}
	return &Loader{workers: workers, strict: strict, metrics: reg}
}

// Load reads the export from r and decodes every data row. source is a
// human-readable name for logs and the report (file path or URL).
func (l *Loader) Load(ctx context.Context, r io.Reader, source string) (*Doves, error) {
	start := time.Now()
	runID := uuid.New().String()
	log := logging.WithImport(runID, source)

	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header row: %w", err)
	}
	seen := make(map[string]bool, len(header))
	for _, name := range header {
		if seen[name] {
			return nil, fmt.Errorf("duplicate column %q in header", name)
		}
		seen[name] = true
	}

	var rows [][]string
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row %d: %w", len(rows)+1, err)
		}
		rows = append(rows, row)
	}

	log.Infow("Export read", "columns", len(header), "rows", len(rows))

	rings := make([]*models.Ring, len(rows))
	rejects := make([]*decode.RecordError, len(rows))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(l.workers)
	for i := range rows {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			raw := make(decode.Raw, len(header))
			for j, name := range header {
				raw[name] = rows[i][j]
			}
			ring, err := decode.Assemble(i+1, raw)
			if err != nil {
				var recErr *decode.RecordError
				if !errors.As(err, &recErr) {
					return err
				}
				if l.strict {
					return recErr
				}
				rejects[i] = recErr
				return nil
			}
			rings[i] = ring
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Errorw("Import aborted", "error", err.Error())
		return nil, err
	}

	doves := &Doves{report: Report{RunID: runID, Source: source, Rows: len(rows)}}
	for i := range rows {
		if rings[i] != nil {
			doves.rings = append(doves.rings, rings[i])
			continue
		}
		doves.report.Errors = append(doves.report.Errors, rejects[i])
		log.Warnw("Row rejected", "row", rejects[i].Row, "errors", len(rejects[i].Fields))
	}
	doves.report.Decoded = len(doves.rings)
	doves.report.Rejected = len(doves.report.Errors)
	doves.report.Duration = time.Since(start)

	l.observe(source, doves.report)
	log.Infow("Import finished",
		"decoded", doves.report.Decoded,
		"rejected", doves.report.Rejected,
		"duration_ms", doves.report.Duration.Milliseconds(),
	)
	return doves, nil
}

func (l *Loader) observe(source string, rep Report) {
	if l.metrics == nil {
		return
	}
	l.metrics.RingsDecodedTotal.Add(float64(rep.Decoded))
	l.metrics.RowsRejectedTotal.Add(float64(rep.Rejected))
	for _, recErr := range rep.Errors {
		for _, fe := range recErr.Fields {
			l.metrics.DecodeErrorsTotal.WithLabelValues(fe.Kind.String()).Inc()
		}
	}
	l.metrics.ImportDuration.WithLabelValues(source).Observe(rep.Duration.Seconds())
}
