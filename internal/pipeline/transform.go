package pipeline

import (
	"log/slog"

	"github.com/civicdata/fee-staging-etl/internal/domain"
	"github.com/civicdata/fee-staging-etl/internal/observability"
)

// Processor normalizes a batch of raw records against one profile, isolating
// per-row failures so a single bad row never aborts the batch.
type Processor struct {
	profile domain.Profile
	logger  *slog.Logger
	metrics *observability.Metrics
}

// NewProcessor creates a Processor for the given profile.
func NewProcessor(profile domain.Profile, logger *slog.Logger, metrics *observability.Metrics) *Processor {
	return &Processor{
		profile: profile,
		logger:  logger,
		metrics: metrics,
	}
}

// Process normalizes every record in input order. Rows that fail are skipped,
// reported with their 1-based input position, and leave no placeholder in the
// output; surviving rows keep their original relative order.
func (p *Processor) Process(raw []domain.RawRecord) ([]domain.CanonicalRecord, []Failure) {
	records := make([]domain.CanonicalRecord, 0, len(raw))
	var failures []Failure

	for i, rec := range raw {
		index := i + 1

		normalized, err := domain.NormalizeRow(rec, p.profile)
		if err != nil {
			p.logger.Warn("row skipped", "row", index, "error", err)
			p.metrics.RowFailures.Inc()
			failures = append(failures, Failure{Index: index, Reason: err.Error()})
			continue
		}

		p.metrics.RowsNormalized.Inc()
		p.metrics.CalcTypeAssigned.WithLabelValues(normalized["calc_type"]).Inc()
		records = append(records, normalized)
	}

	return records, failures
}
