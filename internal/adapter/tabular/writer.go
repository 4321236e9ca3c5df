package tabular

import (
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"

	"github.com/civicdata/fee-staging-etl/internal/domain"
)

// Writer loads normalized records into one CSV file, header row first, columns
// in the profile's fixed order.
type Writer struct {
	path   string
	fields []string
	logger *slog.Logger
}

// NewWriter creates a Writer for the given file and output profile.
func NewWriter(path string, profile domain.Profile, logger *slog.Logger) *Writer {
	return &Writer{path: path, fields: profile.Fields, logger: logger}
}

// Load writes all records. The header row is written even when the batch
// produced no surviving rows.
func (w *Writer) Load(_ context.Context, records []domain.CanonicalRecord) error {
	f, err := os.Create(w.path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.Write(w.fields); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	row := make([]string, len(w.fields))
	for _, rec := range records {
		for i, field := range w.fields {
			row[i] = rec[field]
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}

	w.logger.Debug("output written", "path", w.path, "rows", len(records))
	return nil
}
