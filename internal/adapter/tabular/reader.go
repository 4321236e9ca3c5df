// Package tabular reads and writes the comma-separated text files that carry
// fee-schedule data in and out of the normalizer. It implements the
// pipeline's Extractor and Loader ports.
package tabular

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"

	"github.com/civicdata/fee-staging-etl/internal/domain"
)

// utf8BOM is stripped from the first header cell if present.
const utf8BOM = "\uFEFF"

// Reader extracts all raw records from one CSV file.
type Reader struct {
	path   string
	enc    encoding.Encoding // nil means the file is already UTF-8
	logger *slog.Logger
}

// NewReader creates a Reader for the given file and input encoding name.
func NewReader(path, encodingName string, logger *slog.Logger) (*Reader, error) {
	enc, err := lookupEncoding(encodingName)
	if err != nil {
		return nil, err
	}
	return &Reader{path: path, enc: enc, logger: logger}, nil
}

// Extract reads the whole file into memory as raw records keyed by the header
// row. Short rows leave their trailing columns absent rather than blank, so
// the normalizer can distinguish a column the source never had from one it
// left empty. Rows wider than the header have the extras dropped.
func (r *Reader) Extract(_ context.Context) ([]domain.RawRecord, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	var src io.Reader = f
	if r.enc != nil {
		src = transform.NewReader(f, r.enc.NewDecoder())
	}

	cr := csv.NewReader(src)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	header = stripHeaderBOM(header)

	var records []domain.RawRecord
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", len(records)+1, err)
		}

		rec := make(domain.RawRecord, len(header))
		for i, col := range header {
			if i >= len(row) {
				break
			}
			rec[col] = row[i]
		}
		records = append(records, rec)
	}

	r.logger.Debug("input read", "path", r.path, "columns", len(header), "rows", len(records))
	return records, nil
}

// stripHeaderBOM removes a UTF-8 BOM from the first header cell if present.
func stripHeaderBOM(header []string) []string {
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], utf8BOM)
	}
	return header
}
