// internal/validation/validation.go

// Package validation checks inbound CMS and contact-form payloads against
// the embedded JSON Schemas before they are bound into request structs.
package validation

import (
	"embed"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schemas/*.json
var schemasFS embed.FS

// Schema names accepted by Validate.
const (
	SchemaInquiry = "inquiry"
	SchemaVehicle = "vehicle"
)

var compiledSchemas = map[string]*jsonschema.Schema{}

func init() {
	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true

	for _, name := range []string{SchemaInquiry, SchemaVehicle} {
		path := fmt.Sprintf("schemas/%s.schema.json", name)
		file, err := schemasFS.Open(path)
		if err != nil {
			panic(fmt.Sprintf("missing embedded schema %s: %v", path, err))
		}
		if err := compiler.AddResource(path, file); err != nil {
			panic(fmt.Sprintf("failed to add schema resource %s: %v", path, err))
		}
		schema, err := compiler.Compile(path)
		if err != nil {
			panic(fmt.Sprintf("failed to compile schema %s: %v", path, err))
		}
		compiledSchemas[name] = schema
	}
}

// Validate checks a raw JSON body against the named schema.
func Validate(name string, body []byte) error {
	schema, ok := compiledSchemas[name]
	if !ok {
		return fmt.Errorf("unknown schema %q", name)
	}

	var v interface{}
	if err := json.Unmarshal(body, &v); err != nil {
		return fmt.Errorf("body is not valid JSON: %w", err)
	}

	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
