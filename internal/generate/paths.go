package generate

import (
	"path/filepath"
	"strings"
)

// maxDestinationLen is a fixed cross-platform ceiling for the resolved
// destination path, leaving headroom under the classic 260-character
// Windows limit for files created beneath it.
const maxDestinationLen = 240

// ValidateDestination checks the raw destination string and returns the
// resolved absolute path. The parent-directory check runs on the raw,
// unnormalized input: normalizing first would collapse the very ".."
// segments being checked for. Both slash styles count as separators so a
// traversal cannot hide behind the foreign separator.
func ValidateDestination(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", &SecurityError{Path: raw, Reason: "destination is empty"}
	}

	for _, seg := range splitSegments(raw) {
		if seg == ".." {
			return "", &SecurityError{Path: raw, Reason: "path contains a parent-directory segment"}
		}
	}

	abs, err := filepath.Abs(raw)
	if err != nil {
		return "", &SecurityError{Path: raw, Reason: "cannot resolve to an absolute path"}
	}
	if len(abs) > maxDestinationLen {
		return "", &SecurityError{Path: raw, Reason: "resolved path exceeds the length ceiling"}
	}
	return abs, nil
}

// splitSegments splits a raw path on both '/' and '\' without any
// normalization.
func splitSegments(raw string) []string {
	return strings.FieldsFunc(raw, func(r rune) bool {
		return r == '/' || r == '\\'
	})
}
