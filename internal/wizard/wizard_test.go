package wizard

import (
	"testing"

	"github.com/fairbench/faircheck/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateConfigYAML(t *testing.T) {
	spec := &ConfigSpec{
		EndpointURL:                "http://localhost:8000/classify",
		Method:                     "POST",
		AuthToken:                  "secret-token",
		DatasetPath:                "data/test_set.csv",
		DemographicParityThreshold: 0.1,
		EqualOpportunityThreshold:  0.15,
	}

	out, err := GenerateConfigYAML(spec)
	require.NoError(t, err)

	assert.Contains(t, out, "url: http://localhost:8000/classify")
	assert.Contains(t, out, "method: POST")
	assert.Contains(t, out, "auth_token: secret-token")
	assert.Contains(t, out, "path: data/test_set.csv")
	assert.Contains(t, out, "demographic_parity_threshold: 0.1")
	assert.Contains(t, out, "equal_opportunity_threshold: 0.15")
}

func TestGenerateConfigYAMLOmitsEmptyToken(t *testing.T) {
	out, err := GenerateConfigYAML(&ConfigSpec{
		EndpointURL:                "http://localhost:8000/classify",
		Method:                     "GET",
		DatasetPath:                "data.csv",
		DemographicParityThreshold: 0.1,
		EqualOpportunityThreshold:  0.1,
	})
	require.NoError(t, err)
	assert.NotContains(t, out, "auth_token")
}

// The wizard's output must load through the regular config path.
func TestGeneratedConfigParses(t *testing.T) {
	out, err := GenerateConfigYAML(&ConfigSpec{
		EndpointURL:                "https://models.example.com/v1/classify",
		Method:                     "POST",
		AuthToken:                  "tok",
		DatasetPath:                "test.csv",
		DemographicParityThreshold: 0.05,
		EqualOpportunityThreshold:  0.2,
	})
	require.NoError(t, err)

	cfg, err := config.Parse([]byte(out))
	require.NoError(t, err)
	assert.Equal(t, "https://models.example.com/v1/classify", cfg.Endpoint.URL)
	assert.Equal(t, "tok", cfg.Endpoint.AuthToken)
	assert.Equal(t, 0.05, cfg.Fairness.DemographicParityThreshold)
	assert.Equal(t, 0.2, cfg.Fairness.EqualOpportunityThreshold)
	assert.Equal(t, config.DefaultTimeoutSec, cfg.Endpoint.TimeoutSec)
}

func TestValidateURL(t *testing.T) {
	require.NoError(t, validateURL("http://localhost:8000/classify"))
	require.Error(t, validateURL(""))
	require.Error(t, validateURL("   "))
	require.Error(t, validateURL("not-a-url"))
	require.Error(t, validateURL("/relative/path"))
}

func TestValidateThreshold(t *testing.T) {
	require.NoError(t, validateThreshold("0.1"))
	require.NoError(t, validateThreshold("0"))
	require.NoError(t, validateThreshold(" 0.25 "))
	require.Error(t, validateThreshold("-0.1"))
	require.Error(t, validateThreshold("abc"))
	require.Error(t, validateThreshold(""))
}
