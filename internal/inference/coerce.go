package inference

import (
	"encoding/json"
	"strconv"
	"strings"
)

// coerceLabel converts a decoded JSON value to an integer class label.
//
// Precedence, checked in order: integer passthrough; boolean mapped to 0/1;
// float truncated toward zero; numeric string (optionally surrounded by
// whitespace) parsed as an integer. Everything else — null, arrays, objects,
// non-numeric strings — is rejected with a *ResponseFormatError naming the
// offending value.
func coerceLabel(v any) (int, error) {
	switch val := v.(type) {
	case nil:
		return 0, &ResponseFormatError{Reason: "label is null"}
	case json.Number:
		if i, err := strconv.ParseInt(val.String(), 10, 64); err == nil {
			return int(i), nil
		}
		if f, err := val.Float64(); err == nil {
			return int(f), nil // truncates toward zero
		}
		return 0, &ResponseFormatError{Reason: "label is not a usable number", Value: val.String()}
	case bool:
		if val {
			return 1, nil
		}
		return 0, nil
	case float64:
		// Reached only when the body was decoded without UseNumber.
		return int(val), nil
	case string:
		if i, err := strconv.Atoi(strings.TrimSpace(val)); err == nil {
			return i, nil
		}
		return 0, &ResponseFormatError{Reason: "label string is not numeric", Value: val}
	default:
		return 0, &ResponseFormatError{Reason: "label has an unsupported type", Value: v}
	}
}
