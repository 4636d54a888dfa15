package inference

import "fmt"

// EndpointError reports a network-level failure or a non-success HTTP
// status from the inference endpoint. StatusCode is zero when the request
// never produced a response.
type EndpointError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *EndpointError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("inference: endpoint %s returned status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("inference: request to %s failed: %v", e.URL, e.Err)
}

func (e *EndpointError) Unwrap() error { return e.Err }

// ResponseFormatError reports a response body that could not be turned into
// a binary label: not JSON, missing every recognized label field, or a label
// value that cannot be coerced to an integer.
type ResponseFormatError struct {
	Reason string
	// Value is the offending label value, when one was located.
	Value any
}

func (e *ResponseFormatError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("inference: invalid response: %s: %#v", e.Reason, e.Value)
	}
	return fmt.Sprintf("inference: invalid response: %s", e.Reason)
}
