package main

import (
	"errors"
	"fmt"
	"os"
)

// Exit codes for different failure modes
const (
	ExitSuccess        = 0 // Evaluation ran and all thresholds were met
	ExitFairnessFailed = 1 // Evaluation ran but a fairness threshold was exceeded
	ExitError          = 2 // Configuration or runtime error
)

// FairnessFailureError indicates that the evaluation ran successfully,
// but one or more fairness metrics exceeded their configured threshold.
type FairnessFailureError struct {
	Message string
}

func (e *FairnessFailureError) Error() string {
	return e.Message
}

func main() {
	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)

		// Check error type to determine exit code
		var fairnessErr *FairnessFailureError
		if errors.As(err, &fairnessErr) {
			os.Exit(ExitFairnessFailed)
		}

		// All other errors are configuration/runtime errors
		os.Exit(ExitError)
	}
}
