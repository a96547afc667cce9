package project

import "strings"

// FieldError is one violated field in a configuration mapping.
type FieldError struct {
	Field   string // dotted path, e.g. "name" or "stack.backend"; empty for document-level errors
	Message string
}

// ValidationError reports every violated field of a configuration mapping.
// Build never returns a partially valid Config alongside one.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "invalid project configuration"
	}
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		if f.Field == "" {
			parts[i] = f.Message
		} else {
			parts[i] = f.Field + ": " + f.Message
		}
	}
	return "invalid project configuration: " + strings.Join(parts, "; ")
}

// Has reports whether the error includes a violation for the given field.
func (e *ValidationError) Has(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field || (f.Field == "" && strings.Contains(f.Message, "'"+field+"'")) {
			return true
		}
	}
	return false
}
