package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateConfigBytes(t *testing.T) {
	tests := []struct {
		name      string
		yaml      string
		wantValid bool
	}{
		{
			name: "minimal valid",
			yaml: `
endpoint:
  url: http://localhost:8000/classify
dataset:
  path: data.csv
`,
			wantValid: true,
		},
		{
			name: "full valid",
			yaml: `
endpoint:
  url: http://localhost:8000/classify
  method: GET
  headers:
    X-Key: abc
  timeout: 5
  auth_token: tok
dataset:
  path: data.csv
  features_column: f
  labels_column: l
  sensitive_column: s
fairness:
  demographic_parity_threshold: 0.1
  equal_opportunity_threshold: 0.1
`,
			wantValid: true,
		},
		{
			name:      "endpoint missing",
			yaml:      "dataset:\n  path: d.csv\n",
			wantValid: false,
		},
		{
			name:      "timeout not an integer",
			yaml:      "endpoint:\n  url: http://x\n  timeout: soon\ndataset:\n  path: d.csv\n",
			wantValid: false,
		},
		{
			name:      "header value not a string",
			yaml:      "endpoint:\n  url: http://x\n  headers:\n    X-Count: [1]\ndataset:\n  path: d.csv\n",
			wantValid: false,
		},
		{
			name:      "unparseable yaml",
			yaml:      ":\n:::",
			wantValid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			problems := ValidateConfigBytes([]byte(tt.yaml))
			if tt.wantValid {
				assert.Empty(t, problems)
			} else {
				assert.NotEmpty(t, problems)
			}
		})
	}
}
