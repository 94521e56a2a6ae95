package dove

import (
	"time"

	"bellmetal/doveguide/internal/decode"
	"bellmetal/doveguide/internal/models"
)

// Report summarizes one import run.
type Report struct {
	RunID    string
	Source   string
	Rows     int
	Decoded  int
	Rejected int
	// Errors holds the per-row decode failures in source order. Empty in
	// strict mode, where the first failure aborts the load instead.
	Errors   []*decode.RecordError
	Duration time.Duration
}

// Doves is an ordered collection of decoded rings, in source row order.
type Doves struct {
	rings  []*models.Ring
	report Report
}

// Len returns the number of decoded rings.
func (d *Doves) Len() int { return len(d.rings) }

// Rings returns the decoded rings in source order.
func (d *Doves) Rings() []*models.Ring { return d.rings }

// Ring returns the ring at index i.
func (d *Doves) Ring(i int) *models.Ring { return d.rings[i] }

// Report returns the import run summary.
func (d *Doves) Report() Report { return d.report }
