// Package metrics provides pure statistical functions for fairness
// evaluation. All functions take equal-length slices, never mutate their
// input, and return a defined value (never panic) for empty input.
package metrics

// Accuracy returns the fraction of indices where yTrue[i] == yPred[i].
// Empty input yields 0.
func Accuracy(yTrue, yPred []int) float64 {
	if len(yTrue) == 0 || len(yTrue) != len(yPred) {
		return 0
	}
	matches := 0
	for i := range yTrue {
		if yTrue[i] == yPred[i] {
			matches++
		}
	}
	return float64(matches) / float64(len(yTrue))
}

// DemographicParityDifference returns the spread between the highest and
// lowest positive-prediction rate across sensitive-attribute groups.
// Groups are formed by exact equality of the sensitive values. Zero or one
// group yields 0.
func DemographicParityDifference(yPred []int, sensitive []string) float64 {
	groups := groupIndices(sensitive)
	rates := make([]float64, 0, len(groups))
	for _, indices := range groups {
		rates = append(rates, selectionRate(yPred, indices))
	}
	return spread(rates)
}

// EqualOpportunityDifference returns the spread between the highest and
// lowest true-positive rate across groups. Groups with zero positive true
// labels are excluded entirely; if no group qualifies the result is 0.
func EqualOpportunityDifference(yTrue, yPred []int, sensitive []string) float64 {
	groups := groupIndices(sensitive)
	tprs := make([]float64, 0, len(groups))
	for _, indices := range groups {
		positives, truePositives := 0, 0
		for _, i := range indices {
			if yTrue[i] != 1 {
				continue
			}
			positives++
			if yPred[i] == 1 {
				truePositives++
			}
		}
		if positives > 0 {
			tprs = append(tprs, float64(truePositives)/float64(positives))
		}
	}
	return spread(tprs)
}

// SelectionRates returns the positive-prediction rate of each group,
// keyed by sensitive-attribute value.
func SelectionRates(yPred []int, sensitive []string) map[string]float64 {
	groups := groupIndices(sensitive)
	rates := make(map[string]float64, len(groups))
	for value, indices := range groups {
		rates[value] = selectionRate(yPred, indices)
	}
	return rates
}

func selectionRate(yPred []int, indices []int) float64 {
	selected := make([]float64, len(indices))
	for i, j := range indices {
		if yPred[j] == 1 {
			selected[i] = 1
		}
	}
	return Mean(selected)
}

// groupIndices partitions indices by distinct sensitive value.
func groupIndices(sensitive []string) map[string][]int {
	groups := make(map[string][]int)
	for i, v := range sensitive {
		groups[v] = append(groups[v], i)
	}
	return groups
}
