// Package wizard collects faircheck configuration interactively and renders
// it as a config YAML file.
package wizard

import (
	"fmt"
	"io"
	"net/url"
	"os"
	"strconv"
	"strings"
	"text/template"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"
)

// ConfigSpec holds all fields collected during the interactive wizard.
type ConfigSpec struct {
	EndpointURL                string
	Method                     string
	AuthToken                  string
	DatasetPath                string
	DemographicParityThreshold float64
	EqualOpportunityThreshold  float64
}

const configTemplate = `endpoint:
  url: {{ .EndpointURL }}
  method: {{ .Method }}
{{- if .AuthToken }}
  auth_token: {{ .AuthToken }}
{{- end }}

dataset:
  path: {{ .DatasetPath }}

fairness:
  demographic_parity_threshold: {{ .DemographicParityThreshold }}
  equal_opportunity_threshold: {{ .EqualOpportunityThreshold }}
`

// RunConfigWizard runs an interactive huh form to collect endpoint and
// dataset settings. Thresholds are entered as text and validated as
// non-negative floats.
func RunConfigWizard(in io.Reader, out io.Writer) (*ConfigSpec, error) {
	var (
		endpointURL string
		method      = "POST"
		authToken   string
		datasetPath string
		dpRaw       = "0.1"
		eoRaw       = "0.1"
	)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Endpoint URL").
				Description("The classifier inference endpoint to evaluate").
				Placeholder("http://localhost:8000/classify").
				Value(&endpointURL).
				Validate(validateURL),
			huh.NewSelect[string]().
				Title("HTTP method").
				Options(
					huh.NewOption("POST", "POST"),
					huh.NewOption("GET", "GET"),
				).
				Value(&method),
			huh.NewInput().
				Title("Auth token").
				Description("Optional bearer token (leave empty for none)").
				EchoMode(huh.EchoModePassword).
				Value(&authToken),
			huh.NewInput().
				Title("Dataset path").
				Description("CSV file with features, label, and sensitive_attribute columns").
				Placeholder("data/test_set.csv").
				Value(&datasetPath).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("dataset path is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Demographic parity threshold").
				Value(&dpRaw).
				Validate(validateThreshold),
			huh.NewInput().
				Title("Equal opportunity threshold").
				Value(&eoRaw).
				Validate(validateThreshold),
		),
	).
		WithInput(in).
		WithOutput(out)

	// Use accessible mode for non-TTY input (e.g., tests, piped input).
	if f, ok := in.(*os.File); !ok || !term.IsTerminal(int(f.Fd())) {
		form = form.WithAccessible(true)
	}

	if err := form.Run(); err != nil {
		return nil, fmt.Errorf("wizard failed: %w", err)
	}

	dp, _ := strconv.ParseFloat(strings.TrimSpace(dpRaw), 64)
	eo, _ := strconv.ParseFloat(strings.TrimSpace(eoRaw), 64)

	return &ConfigSpec{
		EndpointURL:                strings.TrimSpace(endpointURL),
		Method:                     method,
		AuthToken:                  strings.TrimSpace(authToken),
		DatasetPath:                strings.TrimSpace(datasetPath),
		DemographicParityThreshold: dp,
		EqualOpportunityThreshold:  eo,
	}, nil
}

// GenerateConfigYAML renders a config file from the given spec.
func GenerateConfigYAML(spec *ConfigSpec) (string, error) {
	tmpl, err := template.New("config").Parse(configTemplate)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	var buf strings.Builder
	if err := tmpl.Execute(&buf, spec); err != nil {
		return "", fmt.Errorf("failed to render template: %w", err)
	}
	return buf.String(), nil
}

func validateURL(s string) error {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return fmt.Errorf("endpoint URL is required")
	}
	u, err := url.Parse(trimmed)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("must be an absolute URL like http://host/path")
	}
	return nil
}

func validateThreshold(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fmt.Errorf("must be a number")
	}
	if v < 0 {
		return fmt.Errorf("must be non-negative")
	}
	return nil
}
