package reporting

import (
	"encoding/xml"
	"fmt"
	"os"
	"time"

	"github.com/fairbench/faircheck/internal/models"
)

// JUnit XML schema types

// JUnitTestSuites is the top-level container.
type JUnitTestSuites struct {
	XMLName    xml.Name         `xml:"testsuites"`
	Tests      int              `xml:"tests,attr"`
	Failures   int              `xml:"failures,attr"`
	Errors     int              `xml:"errors,attr"`
	TestSuites []JUnitTestSuite `xml:"testsuite"`
}

// JUnitTestSuite maps to one evaluation run.
type JUnitTestSuite struct {
	XMLName    xml.Name        `xml:"testsuite"`
	Name       string          `xml:"name,attr"`
	Tests      int             `xml:"tests,attr"`
	Failures   int             `xml:"failures,attr"`
	Errors     int             `xml:"errors,attr"`
	Timestamp  string          `xml:"timestamp,attr"`
	Properties []JUnitProperty `xml:"properties>property,omitempty"`
	TestCases  []JUnitTestCase `xml:"testcase"`
}

// JUnitTestCase maps to one fairness threshold check.
type JUnitTestCase struct {
	XMLName   xml.Name      `xml:"testcase"`
	Name      string        `xml:"name,attr"`
	Classname string        `xml:"classname,attr"`
	Failure   *JUnitFailure `xml:"failure,omitempty"`
}

// JUnitFailure represents a threshold violation.
type JUnitFailure struct {
	Message string `xml:"message,attr"`
	Type    string `xml:"type,attr"`
}

// JUnitProperty is a key-value metadata entry.
type JUnitProperty struct {
	Name  string `xml:"name,attr"`
	Value string `xml:"value,attr"`
}

// ConvertToJUnit converts an EvaluationReport to JUnit XML, one test case
// per fairness threshold, so CI systems can surface violations natively.
func ConvertToJUnit(report *models.EvaluationReport) *JUnitTestSuites {
	cases := []JUnitTestCase{
		thresholdCase("demographic_parity",
			report.FairnessMetrics.DemographicParityDifference,
			report.Thresholds.DemographicParity,
			report.ThresholdsMet.DemographicParity),
		thresholdCase("equal_opportunity",
			report.FairnessMetrics.EqualOpportunityDifference,
			report.Thresholds.EqualOpportunity,
			report.ThresholdsMet.EqualOpportunity),
	}

	failures := 0
	for _, tc := range cases {
		if tc.Failure != nil {
			failures++
		}
	}

	suite := JUnitTestSuite{
		Name:      "fairness",
		Tests:     len(cases),
		Failures:  failures,
		Timestamp: report.Timestamp.Format(time.RFC3339),
		Properties: []JUnitProperty{
			{Name: "endpoint", Value: report.EndpointURL},
			{Name: "total_predictions", Value: fmt.Sprintf("%d", report.TotalPredictions)},
			{Name: "accuracy", Value: fmt.Sprintf("%.4f", report.Accuracy)},
		},
		TestCases: cases,
	}

	return &JUnitTestSuites{
		Tests:      len(cases),
		Failures:   failures,
		TestSuites: []JUnitTestSuite{suite},
	}
}

func thresholdCase(name string, value, threshold float64, passed bool) JUnitTestCase {
	tc := JUnitTestCase{
		Name:      name,
		Classname: "faircheck",
	}
	if !passed {
		tc.Failure = &JUnitFailure{
			Message: fmt.Sprintf("%s difference %.4f exceeds threshold %.4f", name, value, threshold),
			Type:    "ThresholdExceeded",
		}
	}
	return tc
}

// WriteJUnitXML writes JUnit XML to the specified file path.
func WriteJUnitXML(report *models.EvaluationReport, path string) error {
	suites := ConvertToJUnit(report)

	data, err := xml.MarshalIndent(suites, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JUnit XML: %w", err)
	}

	output := append([]byte(xml.Header), data...)
	return os.WriteFile(path, output, 0644)
}
