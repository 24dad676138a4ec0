// Package schemas holds the JSON Schemas shipped with the binary.
package schemas

import _ "embed"

// ProfileSchema is the JSON Schema for a profile file.
//
//go:embed profile.schema.json
var ProfileSchema []byte
