package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fairbench/faircheck/internal/models"
	"github.com/mattn/go-runewidth"
)

// padCell right-pads a string to the given display width. runewidth keeps
// alignment correct for non-ASCII group names.
func padCell(s string, width int) string {
	return s + strings.Repeat(" ", max(0, width-runewidth.StringWidth(s)))
}

// FormatConsoleReport renders the evaluation report for the terminal.
func FormatConsoleReport(report *models.EvaluationReport) string {
	var b strings.Builder

	b.WriteString("\n" + strings.Repeat("=", 60) + "\n")
	b.WriteString("FAIRNESS EVALUATION RESULTS\n")
	b.WriteString(strings.Repeat("=", 60) + "\n\n")

	b.WriteString(fmt.Sprintf("Endpoint: %s\n", report.EndpointURL))
	b.WriteString(fmt.Sprintf("Total predictions: %d\n", report.TotalPredictions))
	b.WriteString(fmt.Sprintf("Accuracy: %.2f%%\n\n", report.Accuracy*100))

	b.WriteString("Fairness Metrics:\n")
	rows := []struct {
		name      string
		value     float64
		threshold float64
		met       bool
	}{
		{"demographic_parity_difference", report.FairnessMetrics.DemographicParityDifference,
			report.Thresholds.DemographicParity, report.ThresholdsMet.DemographicParity},
		{"equal_opportunity_difference", report.FairnessMetrics.EqualOpportunityDifference,
			report.Thresholds.EqualOpportunity, report.ThresholdsMet.EqualOpportunity},
	}

	nameWidth := 0
	for _, row := range rows {
		nameWidth = max(nameWidth, runewidth.StringWidth(row.name))
	}
	for _, row := range rows {
		b.WriteString(fmt.Sprintf("  %s  %.4f\n", padCell(row.name, nameWidth), row.value))
	}
	b.WriteString("\n")

	for _, row := range rows {
		if row.met {
			b.WriteString(fmt.Sprintf("✓ %s within %.4f threshold\n", row.name, row.threshold))
		} else {
			b.WriteString(fmt.Sprintf("⚠ Warning: %s exceeds %.4f threshold\n", row.name, row.threshold))
		}
	}

	if len(report.GroupSelectionRates) > 0 {
		b.WriteString("\nSelection rates by group:\n")
		names := make([]string, 0, len(report.GroupSelectionRates))
		groupWidth := 0
		for name := range report.GroupSelectionRates {
			names = append(names, name)
			groupWidth = max(groupWidth, runewidth.StringWidth(name))
		}
		sort.Strings(names)
		for _, name := range names {
			b.WriteString(fmt.Sprintf("  %s  %.4f\n", padCell(name, groupWidth), report.GroupSelectionRates[name]))
		}
	}

	return b.String()
}

// FormatGitHubComment formats an EvaluationReport as a markdown comment for GitHub PRs
func FormatGitHubComment(report *models.EvaluationReport) string {
	var b strings.Builder

	b.WriteString("## ⚖️ Fairness Evaluation Results\n\n")

	statusIcon := "✅ Passed"
	if !report.ThresholdsMet.AllMet() {
		statusIcon = "❌ Failed"
	}
	b.WriteString(fmt.Sprintf("**Status:** %s | **Accuracy:** %.2f%% | **Samples:** %d\n\n",
		statusIcon, report.Accuracy*100, report.TotalPredictions))

	b.WriteString("| Metric | Value | Threshold | Status |\n")
	b.WriteString("|--------|-------|-----------|--------|\n")
	writeMetricRow(&b, "Demographic parity difference",
		report.FairnessMetrics.DemographicParityDifference,
		report.Thresholds.DemographicParity, report.ThresholdsMet.DemographicParity)
	writeMetricRow(&b, "Equal opportunity difference",
		report.FairnessMetrics.EqualOpportunityDifference,
		report.Thresholds.EqualOpportunity, report.ThresholdsMet.EqualOpportunity)
	b.WriteString("\n")

	if len(report.GroupSelectionRates) > 0 {
		b.WriteString("### Selection Rates by Group\n\n")
		b.WriteString("| Group | Selection Rate |\n")
		b.WriteString("|-------|----------------|\n")

		names := make([]string, 0, len(report.GroupSelectionRates))
		for name := range report.GroupSelectionRates {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			b.WriteString(fmt.Sprintf("| %s | %.4f |\n", name, report.GroupSelectionRates[name]))
		}
		b.WriteString("\n")
	}

	b.WriteString("---\n\n")
	b.WriteString(fmt.Sprintf("**Endpoint:** %s | **Evaluated:** %s\n",
		report.EndpointURL, report.Timestamp.Format("2006-01-02 15:04:05 UTC")))

	return b.String()
}

func writeMetricRow(b *strings.Builder, name string, value, threshold float64, met bool) {
	icon := "✅"
	if !met {
		icon = "❌"
	}
	b.WriteString(fmt.Sprintf("| %s | %.4f | %.4f | %s |\n", name, value, threshold, icon))
}
