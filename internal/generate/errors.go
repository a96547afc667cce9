package generate

import (
	"errors"
	"fmt"
)

// SecurityError reports a destination path that was rejected before any
// filesystem mutation: a parent-directory segment in the raw path, or a
// resolved path over the length ceiling.
type SecurityError struct {
	Path   string
	Reason string
}

func (e *SecurityError) Error() string {
	return fmt.Sprintf("refusing destination %q: %s", e.Path, e.Reason)
}

// ConflictError reports an existing, non-empty destination under the
// fail-on-conflict policy. It is raised before any write.
type ConflictError struct {
	Path string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("destination %q already exists and is not empty (use overwrite to replace)", e.Path)
}

// RenderError is fatal to the whole run and names the entry whose template
// could not be materialized.
type RenderError struct {
	Entry string // catalog entry identifier
	Err   error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("rendering entry %q: %v", e.Entry, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }

// Sentinel causes distinguishable inside a RenderError.
var (
	ErrTemplateNotFound = errors.New("template not found")
	ErrTemplateInvalid  = errors.New("template syntax or undefined reference")
)
