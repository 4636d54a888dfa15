package reporting

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/fairbench/faircheck/internal/models"
	"github.com/klauspost/compress/gzip"
)

// WriteJSON writes the report as indented JSON to path. A path ending in
// .gz is written gzip-compressed.
func WriteJSON(report *models.EvaluationReport, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	data = append(data, '\n')

	if strings.HasSuffix(path, ".gz") {
		return writeGzip(data, path)
	}
	return os.WriteFile(path, data, 0644)
}

func writeGzip(data []byte, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	zw := gzip.NewWriter(f)
	if _, err := zw.Write(data); err != nil {
		f.Close() //nolint:errcheck
		return fmt.Errorf("compressing report: %w", err)
	}
	if err := zw.Close(); err != nil {
		f.Close() //nolint:errcheck
		return fmt.Errorf("finishing gzip stream: %w", err)
	}
	return f.Close()
}
