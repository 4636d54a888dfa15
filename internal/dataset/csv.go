// Package dataset loads labeled CSV datasets and extracts the named columns
// a fairness evaluation needs: features, true labels, and the sensitive
// attribute.
package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Row represents a single CSV row with column name to value mapping.
type Row map[string]string

// Table is a loaded CSV file: the header row plus every data row.
type Table struct {
	Headers []string
	Rows    []Row
}

// HasColumn reports whether the table's header row contains name.
func (t *Table) HasColumn(name string) bool {
	for _, h := range t.Headers {
		if h == name {
			return true
		}
	}
	return false
}

// Load reads a CSV file and returns its header and rows.
// The first row is treated as headers (column names).
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("csv: open %s: %w", path, err)
	}
	defer f.Close() //nolint:errcheck

	reader := csv.NewReader(f)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("csv: parse %s: %w", path, err)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("csv: %s is empty (no header row)", path)
	}

	headers := records[0]
	rows := make([]Row, 0, len(records)-1)

	for i, record := range records[1:] {
		if len(record) != len(headers) {
			return nil, fmt.Errorf("csv: row %d has %d columns, expected %d", i+2, len(record), len(headers))
		}
		row := make(Row, len(headers))
		for j, h := range headers {
			row[h] = record[j]
		}
		rows = append(rows, row)
	}

	return &Table{Headers: headers, Rows: rows}, nil
}

// SchemaError reports a configured column that is absent from the dataset.
type SchemaError struct {
	Column string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("dataset: column %q not found", e.Column)
}

// Columns holds the three parallel sequences extracted from a dataset.
// All slices have the same length and index alignment as the source rows.
type Columns struct {
	// Features are opaque per-row payloads, passed to the endpoint verbatim.
	Features []any
	// Labels are the true binary labels.
	Labels []int
	// Sensitive holds the raw sensitive-attribute values. Values stay as
	// strings so group membership is decided by exact equality.
	Sensitive []string
}

// Extract pulls the three named columns out of a table. A missing column
// yields a *SchemaError naming it; the check runs before any cell is read.
func Extract(t *Table, featuresCol, labelsCol, sensitiveCol string) (*Columns, error) {
	for _, col := range []string{featuresCol, labelsCol, sensitiveCol} {
		if !t.HasColumn(col) {
			return nil, &SchemaError{Column: col}
		}
	}

	cols := &Columns{
		Features:  make([]any, 0, len(t.Rows)),
		Labels:    make([]int, 0, len(t.Rows)),
		Sensitive: make([]string, 0, len(t.Rows)),
	}

	for i, row := range t.Rows {
		label, err := strconv.Atoi(strings.TrimSpace(row[labelsCol]))
		if err != nil {
			return nil, fmt.Errorf("dataset: row %d: label %q is not an integer", i+1, row[labelsCol])
		}
		cols.Features = append(cols.Features, parseCell(row[featuresCol]))
		cols.Labels = append(cols.Labels, label)
		cols.Sensitive = append(cols.Sensitive, row[sensitiveCol])
	}

	return cols, nil
}

// parseCell types a raw CSV cell: integer form becomes int, float form
// becomes float64, anything else stays a string. The engine never inspects
// the result; typing only affects how the value serializes on the wire.
func parseCell(s string) any {
	trimmed := strings.TrimSpace(s)
	if i, err := strconv.Atoi(trimmed); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return f
	}
	return s
}
