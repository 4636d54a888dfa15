// Package schemas holds the embedded JSON Schema documents used to
// validate faircheck configuration files.
package schemas

import _ "embed"

// ConfigSchemaJSON is the JSON Schema for faircheck config YAML files.
//
//go:embed config.schema.json
var ConfigSchemaJSON string
