package webserver

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	return New(Config{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		Seed:   1,
	})
}

func doJSON(t *testing.T, handler http.Handler, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	var parsed map[string]any
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &parsed))
	}
	return rec, parsed
}

func TestHealth(t *testing.T) {
	rec, body := doJSON(t, newTestServer(t).Handler(), http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "healthy", body["status"])
}

func TestInfoListsEndpoints(t *testing.T) {
	rec, body := doJSON(t, newTestServer(t).Handler(), http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "faircheck demo classifier", body["service"])

	endpoints, ok := body["endpoints"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, endpoints, "/classify/biased")
}

func TestClassifyReturnsBinaryLabel(t *testing.T) {
	handler := newTestServer(t).Handler()
	for range 20 {
		rec, body := doJSON(t, handler, http.MethodPost, "/classify", `{"features": [1, 2, 3]}`)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, []any{float64(0), float64(1)}, body["inference"])
	}
}

func TestClassifyEchoesFeatures(t *testing.T) {
	rec, body := doJSON(t, newTestServer(t).Handler(), http.MethodPost, "/classify",
		`{"features": {"age": 30}}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]any{"age": float64(30)}, body["features"])
}

func TestClassifyIsDeterministicPerSeed(t *testing.T) {
	sequence := func() []any {
		handler := newTestServer(t).Handler()
		var labels []any
		for range 10 {
			_, body := doJSON(t, handler, http.MethodPost, "/classify", `{"features": "x"}`)
			labels = append(labels, body["inference"])
		}
		return labels
	}
	assert.Equal(t, sequence(), sequence())
}

func TestClassifyBiasedAlwaysPositive(t *testing.T) {
	handler := newTestServer(t).Handler()
	for range 10 {
		rec, body := doJSON(t, handler, http.MethodPost, "/classify/biased", `{"features": 42}`)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, float64(1), body["inference"])
		assert.Contains(t, body["note"], "intentionally biased")
	}
}

func TestClassifyRejectsBadJSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/classify", bytes.NewReader([]byte("{{{")))
	rec := httptest.NewRecorder()
	newTestServer(t).Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "features")
}

func TestClassifyRejectsGet(t *testing.T) {
	rec, _ := doJSON(t, newTestServer(t).Handler(), http.MethodGet, "/classify", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
