package validation

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// SchemaValidator validates JSON documents against named schemas.
// Schemas are compiled once at construction; validation itself is cheap
// enough to sit on request paths.
type SchemaValidator interface {
	Validate(data []byte, schemaName string) error
}

type validator struct {
	schemas map[string]*jsonschema.Schema
}

// NewSchemaValidator compiles the given schema sources, keyed by name.
// A schema that does not compile fails construction, not validation.
func NewSchemaValidator(sources map[string]string) (SchemaValidator, error) {
	compiler := jsonschema.NewCompiler()
	schemas := make(map[string]*jsonschema.Schema, len(sources))

	for name, source := range sources {
		doc, err := jsonschema.UnmarshalJSON(strings.NewReader(source))
		if err != nil {
			return nil, fmt.Errorf("failed to parse schema %q: %w", name, err)
		}

		resource := name + ".json"
		if err := compiler.AddResource(resource, doc); err != nil {
			return nil, fmt.Errorf("failed to add schema %q: %w", name, err)
		}

		schema, err := compiler.Compile(resource)
		if err != nil {
			return nil, fmt.Errorf("failed to compile schema %q: %w", name, err)
		}
		schemas[name] = schema
	}

	return &validator{schemas: schemas}, nil
}

// Validate checks data against the named schema
func (v *validator) Validate(data []byte, schemaName string) error {
	schema, ok := v.schemas[schemaName]
	if !ok {
		return fmt.Errorf("unknown schema %q", schemaName)
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to parse JSON data: %w", err)
	}

	if err := schema.Validate(doc); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// formatValidationError flattens the validator's error tree into one
// readable message with a line per failing location
func formatValidationError(err error) error {
	validationErr, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return fmt.Errorf("validation error: %w", err)
	}

	var lines []string
	var walk func(e *jsonschema.ValidationError)
	walk = func(e *jsonschema.ValidationError) {
		if line := describeError(e); line != "" {
			lines = append(lines, line)
		}
		for _, cause := range e.Causes {
			walk(cause)
		}
	}
	walk(validationErr)

	return fmt.Errorf("schema validation failed:\n%s", strings.Join(lines, "\n"))
}

func describeError(err *jsonschema.ValidationError) string {
	location := "(root)"
	if len(err.InstanceLocation) > 0 {
		location = "/" + strings.Join(err.InstanceLocation, "/")
	}

	if err.ErrorKind == nil {
		return fmt.Sprintf("  - at %s: validation failed", location)
	}

	keyword := strings.Join(err.ErrorKind.KeywordPath(), ".")
	if keyword == "" {
		return ""
	}
	return fmt.Sprintf("  - at %s: %s validation failed", location, keyword)
}
