package project

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/stencil-labs/stencil/internal/schema"
	"github.com/stencil-labs/stencil/internal/textcase"
)

//go:embed schema/project.schema.json
var schemaBytes []byte

var (
	compiledSchema *jsonschema.Schema
	compileOnce    sync.Once
	compileErr     error
)

// getSchema compiles the embedded JSON schema once and returns it.
func getSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		compiledSchema, compileErr = schema.Compile("project.schema.json", schemaBytes)
	})
	return compiledSchema, compileErr
}

// Build validates a loosely structured field mapping and returns an
// immutable Config. When the slug is absent it is derived from the name via
// Slugify; a derivation that produces an empty or pattern-invalid slug is a
// validation failure, never silently substituted.
//
// On failure the returned error is a *ValidationError enumerating every
// violated field. Unknown fields are rejected.
func Build(fields map[string]any) (*Config, error) {
	s, err := getSchema()
	if err != nil {
		return nil, fmt.Errorf("loading project schema: %w", err)
	}

	// Work on a copy so slug derivation never mutates the caller's mapping.
	m := make(map[string]any, len(fields)+1)
	for k, v := range fields {
		m[k] = v
	}

	// Derive the slug only when truly absent (or explicitly empty); a
	// mistyped slug value must surface as its own validation error.
	if v, ok := m["slug"]; !ok || v == "" {
		if name, ok := m["name"].(string); ok {
			m["slug"] = textcase.Slugify(name)
		}
	}

	issues, err := schema.Validate(s, m)
	if err != nil {
		return nil, fmt.Errorf("validating project configuration: %w", err)
	}
	if len(issues) > 0 {
		verr := &ValidationError{}
		for _, issue := range issues {
			verr.Fields = append(verr.Fields, FieldError{
				Field:   fieldFromPath(issue.Path),
				Message: issue.Message,
			})
		}
		return nil, verr
	}

	// Decode the validated mapping into the typed Config.
	jsonData, err := json.Marshal(schema.Normalize(m))
	if err != nil {
		return nil, fmt.Errorf("encoding validated configuration: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(jsonData, &cfg); err != nil {
		return nil, fmt.Errorf("decoding validated configuration: %w", err)
	}
	return &cfg, nil
}

// fieldFromPath converts a schema instance path ("/stack/backend") to a
// dotted field name ("stack.backend").
func fieldFromPath(path string) string {
	return strings.ReplaceAll(strings.TrimPrefix(path, "/"), "/", ".")
}
