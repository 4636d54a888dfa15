// Package config loads and validates faircheck configuration files.
//
// A config file is YAML, validated against the embedded JSON Schema and then
// decoded onto a Config pre-populated with defaults, so absent fields keep
// their default values.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fairbench/faircheck/internal/validation"
	"github.com/go-viper/mapstructure/v2"
	"gopkg.in/yaml.v3"
)

// Default values for configuration. These are the single source of truth —
// New() references them and no other code should duplicate them.
const (
	DefaultMethod     = "POST"
	DefaultTimeoutSec = 30

	DefaultFeaturesColumn  = "features"
	DefaultLabelsColumn    = "label"
	DefaultSensitiveColumn = "sensitive_attribute"

	DefaultDemographicParityThreshold = 0.1
	DefaultEqualOpportunityThreshold  = 0.1
)

// EndpointConfig describes the classifier inference endpoint.
// It is immutable for the duration of a run.
type EndpointConfig struct {
	URL        string            `mapstructure:"url" yaml:"url"`
	Method     string            `mapstructure:"method" yaml:"method"`
	Headers    map[string]string `mapstructure:"headers" yaml:"headers,omitempty"`
	TimeoutSec int               `mapstructure:"timeout" yaml:"timeout"`
	AuthToken  string            `mapstructure:"auth_token" yaml:"auth_token,omitempty"`
}

// Timeout returns the per-request timeout as a duration.
func (c EndpointConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSec) * time.Second
}

// DatasetConfig describes the labeled CSV dataset and its column names.
type DatasetConfig struct {
	Path            string `mapstructure:"path" yaml:"path"`
	FeaturesColumn  string `mapstructure:"features_column" yaml:"features_column"`
	LabelsColumn    string `mapstructure:"labels_column" yaml:"labels_column"`
	SensitiveColumn string `mapstructure:"sensitive_column" yaml:"sensitive_column"`
}

// FairnessConfig holds the maximum acceptable fairness-difference values.
type FairnessConfig struct {
	DemographicParityThreshold float64 `mapstructure:"demographic_parity_threshold" yaml:"demographic_parity_threshold"`
	EqualOpportunityThreshold  float64 `mapstructure:"equal_opportunity_threshold" yaml:"equal_opportunity_threshold"`
}

// Config is the top-level faircheck configuration.
type Config struct {
	Endpoint EndpointConfig `mapstructure:"endpoint" yaml:"endpoint"`
	Dataset  DatasetConfig  `mapstructure:"dataset" yaml:"dataset"`
	Fairness FairnessConfig `mapstructure:"fairness" yaml:"fairness"`
}

// New returns a Config with all hard-coded defaults populated.
func New() *Config {
	return &Config{
		Endpoint: EndpointConfig{
			Method:     DefaultMethod,
			TimeoutSec: DefaultTimeoutSec,
		},
		Dataset: DatasetConfig{
			FeaturesColumn:  DefaultFeaturesColumn,
			LabelsColumn:    DefaultLabelsColumn,
			SensitiveColumn: DefaultSensitiveColumn,
		},
		Fairness: FairnessConfig{
			DemographicParityThreshold: DefaultDemographicParityThreshold,
			EqualOpportunityThreshold:  DefaultEqualOpportunityThreshold,
		},
	}
}

// ValidationError reports a config file that failed schema validation.
type ValidationError struct {
	Path     string
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config %s is invalid:\n  %s", e.Path, strings.Join(e.Problems, "\n  "))
}

// Load reads, validates, and decodes a config file.
// Schema violations are returned as a *ValidationError listing every problem.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		var ve *ValidationError
		if errors.As(err, &ve) {
			ve.Path = path
			return nil, ve
		}
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse validates and decodes raw config YAML.
func Parse(data []byte) (*Config, error) {
	if problems := validation.ValidateConfigBytes(data); len(problems) > 0 {
		return nil, &ValidationError{Path: "config", Problems: problems}
	}

	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}

	cfg := New()
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  cfg,
		TagName: "mapstructure",
	})
	if err != nil {
		return nil, fmt.Errorf("building config decoder: %w", err)
	}
	if err := dec.Decode(doc); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	cfg.Endpoint.Method = strings.ToUpper(cfg.Endpoint.Method)
	return cfg, nil
}
