package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/civicdata/fee-staging-etl/internal/domain"
	"github.com/civicdata/fee-staging-etl/internal/observability"
)

// Extractor reads all raw records from the tabular source.
type Extractor interface {
	Extract(ctx context.Context) ([]domain.RawRecord, error)
}

// Loader writes the normalized records to the tabular sink.
type Loader interface {
	Load(ctx context.Context, records []domain.CanonicalRecord) error
}

// Failure records one skipped row: its 1-based position in the input and why
// it could not be normalized.
type Failure struct {
	Index  int
	Reason string
}

// Report summarizes one batch run.
type Report struct {
	Profile   string
	RowsIn    int
	RowsOut   int
	Failures  []Failure
	StartedAt time.Time
	Duration  time.Duration
}

// Pipeline orchestrates the extract-normalize-load run for one batch.
type Pipeline struct {
	extractor Extractor
	processor *Processor
	loader    Loader
	logger    *slog.Logger
	metrics   *observability.Metrics
}

// New creates a Pipeline with the given stages and observability.
func New(e Extractor, p *Processor, l Loader, logger *slog.Logger, metrics *observability.Metrics) *Pipeline {
	return &Pipeline{
		extractor: e,
		processor: p,
		loader:    l,
		logger:    logger,
		metrics:   metrics,
	}
}

// Run executes one batch to completion. Row-level failures are collected in
// the report and never abort the run; only failing to obtain the input or
// write the output is fatal, and those errors propagate unmodified.
func (p *Pipeline) Run(ctx context.Context) (Report, error) {
	start := clock.Now()

	raw, err := p.extractor.Extract(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("extract records: %w", err)
	}
	p.metrics.RowsRead.Add(float64(len(raw)))
	p.logger.Info("batch extracted", "profile", p.processor.profile.Name, "rows", len(raw))

	records, failures := p.processor.Process(raw)

	if err := p.loader.Load(ctx, records); err != nil {
		return Report{}, fmt.Errorf("load records: %w", err)
	}

	report := Report{
		Profile:   p.processor.profile.Name,
		RowsIn:    len(raw),
		RowsOut:   len(records),
		Failures:  failures,
		StartedAt: start,
		Duration:  clock.Since(start),
	}

	p.metrics.BatchDuration.Observe(report.Duration.Seconds())
	p.logger.Info("batch complete",
		"profile", report.Profile,
		"rows_in", report.RowsIn,
		"rows_out", report.RowsOut,
		"failures", len(report.Failures),
		"duration", report.Duration,
	)
	return report, nil
}
