package catalog

import "strings"

// CatalogError reports defects in a catalog index: schema violations,
// duplicate identifiers, malformed selection rules, or an incompatible
// min_tool_version. A catalog defect always aborts the run.
type CatalogError struct {
	Path     string // catalog index path, when known
	Problems []string
}

func (e *CatalogError) Error() string {
	msg := "invalid catalog"
	if e.Path != "" {
		msg += " " + e.Path
	}
	if len(e.Problems) > 0 {
		msg += ": " + strings.Join(e.Problems, "; ")
	}
	return msg
}
