// Package models defines the structured results a fairness evaluation
// hands back to its callers.
package models

import "time"

// EvaluationReport is the complete result of one fairness evaluation run.
// It is the only artifact returned to the caller; no partial report exists
// for a failed run.
type EvaluationReport struct {
	Timestamp        time.Time       `json:"timestamp"`
	EndpointURL      string          `json:"endpoint_url"`
	TotalPredictions int             `json:"total_predictions"`
	Accuracy         float64         `json:"accuracy"`
	FairnessMetrics  FairnessMetrics `json:"fairness_metrics"`
	Thresholds       Thresholds      `json:"thresholds"`
	ThresholdsMet    ThresholdsMet   `json:"thresholds_met"`

	// GroupSelectionRates breaks the positive-prediction rate down by
	// sensitive-attribute group, for presentation.
	GroupSelectionRates map[string]float64 `json:"group_selection_rates,omitempty"`
}

// FairnessMetrics holds the computed fairness-difference values.
type FairnessMetrics struct {
	DemographicParityDifference float64 `json:"demographic_parity_difference"`
	EqualOpportunityDifference  float64 `json:"equal_opportunity_difference"`
}

// Thresholds echoes the configured maximum acceptable differences.
type Thresholds struct {
	DemographicParity float64 `json:"demographic_parity"`
	EqualOpportunity  float64 `json:"equal_opportunity"`
}

// ThresholdsMet records, per metric, whether value <= threshold.
// Equality passes.
type ThresholdsMet struct {
	DemographicParity bool `json:"demographic_parity"`
	EqualOpportunity  bool `json:"equal_opportunity"`
}

// AllMet reports whether every fairness threshold was satisfied.
func (t ThresholdsMet) AllMet() bool {
	return t.DemographicParity && t.EqualOpportunity
}
