package reporting

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	require.NoError(t, WriteJSON(sampleReport(), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(data, &parsed))
	assert.Equal(t, float64(100), parsed["total_predictions"])
	assert.Equal(t, 0.85, parsed["accuracy"])

	fm, ok := parsed["fairness_metrics"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 0.05, fm["demographic_parity_difference"])
}

func TestWriteJSONGzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json.gz")
	require.NoError(t, WriteJSON(sampleReport(), path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	zr, err := gzip.NewReader(f)
	require.NoError(t, err)
	data, err := io.ReadAll(zr)
	require.NoError(t, err)
	require.NoError(t, zr.Close())

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(data, &parsed))
	assert.Equal(t, "http://localhost:8000/classify", parsed["endpoint_url"])
}

func TestWriteJSONBadPath(t *testing.T) {
	err := WriteJSON(sampleReport(), filepath.Join(t.TempDir(), "missing", "report.json"))
	require.Error(t, err)
}
