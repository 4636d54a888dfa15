package orchestration

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fairbench/faircheck/internal/inference"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

// Runs the full pipeline against a live HTTP endpoint with no fakes.
func TestRunAgainstLiveEndpoint(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		// Classify even-numbered rows positive.
		label := 0
		if s, ok := body["features"].(string); ok && (s == "r0" || s == "r2") {
			label = 1
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"inference": label})
	}))
	defer srv.Close()

	path := writeDataset(t, `features,label,sensitive_attribute
r0,1,A
r1,0,A
r2,1,B
r3,0,B
`)
	cfg := testConfig(path)
	cfg.Endpoint.URL = srv.URL

	report, err := NewRunner(cfg).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 4, report.TotalPredictions)
	assert.InDelta(t, 1.0, report.Accuracy, 1e-9)
	assert.Zero(t, report.FairnessMetrics.DemographicParityDifference)
	assert.True(t, report.ThresholdsMet.AllMet())
}

func TestRunInvalidResponseAborts(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"inference": "abc"})
	}))
	defer srv.Close()

	path := writeDataset(t, `features,label,sensitive_attribute
r0,1,A
r1,0,B
`)
	cfg := testConfig(path)
	cfg.Endpoint.URL = srv.URL

	report, err := NewRunner(cfg).Run(context.Background())
	require.Error(t, err)
	assert.Nil(t, report)

	var formatErr *inference.ResponseFormatError
	require.ErrorAs(t, err, &formatErr)
	assert.Equal(t, 1, calls, "the run aborts on the first bad response")
}

// Separate runners against one shared endpoint must not interfere; each
// evaluation sees only its own dataset and produces its own report.
func TestConcurrentRunsAreIndependent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		label := 0
		if s, _ := body["features"].(string); s == "pos" {
			label = 1
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"prediction": label})
	}))
	defer srv.Close()

	allPositive := writeDataset(t, `features,label,sensitive_attribute
pos,1,A
pos,1,B
pos,1,A
pos,1,B
`)
	allNegative := writeDataset(t, `features,label,sensitive_attribute
neg,0,A
neg,0,B
neg,0,A
neg,0,B
`)

	accuracies := make([]float64, 2)
	totals := make([]int, 2)

	group, ctx := errgroup.WithContext(context.Background())
	for i, path := range []string{allPositive, allNegative} {
		cfg := testConfig(path)
		cfg.Endpoint.URL = srv.URL
		runner := NewRunner(cfg)

		group.Go(func() error {
			report, err := runner.Run(ctx)
			if err != nil {
				return err
			}
			accuracies[i] = report.Accuracy
			totals[i] = report.TotalPredictions
			return nil
		})
	}
	require.NoError(t, group.Wait())

	assert.InDelta(t, 1.0, accuracies[0], 1e-9)
	assert.InDelta(t, 1.0, accuracies[1], 1e-9)
	assert.Equal(t, []int{4, 4}, totals)
}
