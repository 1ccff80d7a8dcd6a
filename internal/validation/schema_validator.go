// Package validation wraps JSON-schema checking for config files loaded at
// startup. Schemas are compiled once from embedded sources and cached.
package validation

import (
	"bytes"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// SchemaValidator validates JSON data against a named embedded schema.
type SchemaValidator interface {
	ValidateBytes(data []byte, schemaName string) error
}

type validator struct {
	mu      sync.Mutex
	sources map[string]string
	schemas map[string]*jsonschema.Schema
}

// NewSchemaValidator creates a validator over a set of embedded schema
// sources, keyed by schema name.
func NewSchemaValidator(sources map[string]string) SchemaValidator {
	return &validator{
		sources: sources,
		schemas: make(map[string]*jsonschema.Schema),
	}
}

// ValidateBytes validates JSON data bytes against the named schema.
func (v *validator) ValidateBytes(data []byte, schemaName string) error {
	schema, err := v.loadSchema(schemaName)
	if err != nil {
		return fmt.Errorf("failed to load schema %s: %w", schemaName, err)
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to parse JSON data: %w", err)
	}

	if err := schema.Validate(inst); err != nil {
		return formatValidationError(err)
	}

	return nil
}

// loadSchema compiles a schema by name, caching the result.
func (v *validator) loadSchema(name string) (*jsonschema.Schema, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if schema, ok := v.schemas[name]; ok {
		return schema, nil
	}

	src, ok := v.sources[name]
	if !ok {
		return nil, fmt.Errorf("unknown schema %q", name)
	}

	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("failed to parse schema JSON: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(name, doc); err != nil {
		return nil, fmt.Errorf("failed to add schema resource: %w", err)
	}

	schema, err := compiler.Compile(name)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	v.schemas[name] = schema
	return schema, nil
}

// formatValidationError keeps schema violations distinguishable from load
// failures for callers deciding whether a config file is usable.
func formatValidationError(err error) error {
	if validationErr, ok := err.(*jsonschema.ValidationError); ok {
		return fmt.Errorf("schema validation failed: %w", validationErr)
	}
	return fmt.Errorf("validation error: %w", err)
}
