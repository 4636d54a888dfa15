package metrics

import "testing"

func TestMean(t *testing.T) {
	tests := []struct {
		name   string
		input  []float64
		expect float64
	}{
		{"empty", nil, 0},
		{"single", []float64{5.0}, 5.0},
		{"multiple", []float64{1, 2, 3, 4, 5}, 3.0},
		{"all_same", []float64{7, 7, 7}, 7.0},
		{"negative", []float64{-2, 0, 2}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Mean(tt.input)
			if !approxEqual(got, tt.expect) {
				t.Errorf("Mean(%v) = %f, want %f", tt.input, got, tt.expect)
			}
		})
	}
}

func TestStdDev(t *testing.T) {
	tests := []struct {
		name   string
		input  []float64
		expect float64
	}{
		{"empty", nil, 0},
		{"uniform", []float64{3, 3, 3}, 0},
		{"simple", []float64{2, 4, 4, 4, 5, 5, 7, 9}, 2.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StdDev(tt.input)
			if !approxEqual(got, tt.expect) {
				t.Errorf("StdDev(%v) = %f, want %f", tt.input, got, tt.expect)
			}
		})
	}
}

func TestSpread(t *testing.T) {
	tests := []struct {
		name   string
		input  []float64
		expect float64
	}{
		{"empty", nil, 0},
		{"single", []float64{0.4}, 0},
		{"two", []float64{0.25, 0.5}, 0.25},
		{"unordered", []float64{0.5, 0.1, 0.9, 0.3}, 0.8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := spread(tt.input)
			if !approxEqual(got, tt.expect) {
				t.Errorf("spread(%v) = %f, want %f", tt.input, got, tt.expect)
			}
		})
	}
}
