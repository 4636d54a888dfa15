// Package reporting renders an EvaluationReport for people and CI systems:
// plain-language interpretation, JUnit XML, and JSON files.
package reporting

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fairbench/faircheck/internal/metrics"
	"github.com/fairbench/faircheck/internal/models"
)

// InterpretAccuracy returns a plain-language label for an accuracy (0–1).
func InterpretAccuracy(accuracy float64) string {
	pct := accuracy * 100
	switch {
	case pct > 90:
		return "Excellent (>90%)"
	case pct >= 70:
		return "Good (70-90%)"
	case pct >= 50:
		return "Needs Work (50-70%)"
	default:
		return "Poor (<50%)"
	}
}

// InterpretMetric explains one fairness metric against its threshold.
func InterpretMetric(name string, value, threshold float64) string {
	if value <= threshold {
		return fmt.Sprintf("%s is %.4f, within the %.4f threshold.", name, value, threshold)
	}
	return fmt.Sprintf("%s is %.4f, exceeding the %.4f threshold by %.4f — the endpoint treats some groups differently.",
		name, value, threshold, value-threshold)
}

// InterpretGroupRates explains how spread out the per-group selection rates are.
func InterpretGroupRates(rates map[string]float64) string {
	if len(rates) < 2 {
		return "Only one group is present; group comparison is not meaningful."
	}
	values := make([]float64, 0, len(rates))
	for _, v := range rates {
		values = append(values, v)
	}
	sd := metrics.StdDev(values)
	if sd < 0.05 {
		return fmt.Sprintf("Selection rates are nearly uniform across %d groups (σ=%.4f).", len(rates), sd)
	}
	return fmt.Sprintf("Selection rates vary noticeably across %d groups (σ=%.4f).", len(rates), sd)
}

// FormatInterpretation produces a full plain-language report.
func FormatInterpretation(report *models.EvaluationReport) string {
	var b strings.Builder

	b.WriteString("=== Interpretation ===\n\n")
	b.WriteString(fmt.Sprintf("Accuracy: %.2f — %s\n", report.Accuracy, InterpretAccuracy(report.Accuracy)))
	b.WriteString(InterpretMetric("Demographic parity difference",
		report.FairnessMetrics.DemographicParityDifference, report.Thresholds.DemographicParity))
	b.WriteString("\n")
	b.WriteString(InterpretMetric("Equal opportunity difference",
		report.FairnessMetrics.EqualOpportunityDifference, report.Thresholds.EqualOpportunity))
	b.WriteString("\n")
	b.WriteString(InterpretGroupRates(report.GroupSelectionRates))
	b.WriteString("\n")

	if len(report.GroupSelectionRates) > 0 {
		b.WriteString("\nPer-Group Selection Rates:\n")
		names := make([]string, 0, len(report.GroupSelectionRates))
		for name := range report.GroupSelectionRates {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			b.WriteString(fmt.Sprintf("  %s: %.4f\n", name, report.GroupSelectionRates[name]))
		}
	}

	return b.String()
}
