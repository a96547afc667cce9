package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeCatalog(t *testing.T, index string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, IndexFile), []byte(index), 0644); err != nil {
		t.Fatalf("writing index: %v", err)
	}
	return dir
}

const validIndex = `version: 1
min_tool_version: 0.1.0
entries:
  - identifier: go-style-guide
    category: assistant-document
    kind: verbatim
    source_path: documents/go-style.md
    priority: high
    selection_rule:
      kinds: [api-service, web-service]
      any_of:
        backend: [go]
  - identifier: postgres-helper
    category: skill-package
    kind: renderable
    source_path: skills/postgres-helper.md.tmpl
    selection_rule:
      all_of:
        datastore: [postgres]
`

func TestLoadValid(t *testing.T) {
	dir := writeCatalog(t, validIndex)
	cat, err := Load(dir, "1.0.0")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(cat.Entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(cat.Entries))
	}
	if cat.Entries[0].Priority != PriorityHigh {
		t.Errorf("entry[0].Priority = %q, want high", cat.Entries[0].Priority)
	}
	// Unspecified priority defaults to medium.
	if cat.Entries[1].Priority != PriorityMedium {
		t.Errorf("entry[1].Priority = %q, want medium default", cat.Entries[1].Priority)
	}
	src := cat.Source(cat.Entries[0])
	if !filepath.IsAbs(src) || !strings.HasSuffix(src, filepath.FromSlash("documents/go-style.md")) {
		t.Errorf("Source() = %q, want absolute path under catalog dir", src)
	}
}

func TestLoadMissingIndex(t *testing.T) {
	dir := t.TempDir()
	_, err := Load(dir, "1.0.0")
	var cerr *CatalogError
	if !errors.As(err, &cerr) {
		t.Fatalf("error = %v (%T), want *CatalogError", err, err)
	}
}

func TestLoadSchemaViolations(t *testing.T) {
	dir := writeCatalog(t, `version: 1
entries:
  - identifier: Bad_Name
    category: mystery-box
    kind: verbatim
    source_path: documents/x.md
`)
	_, err := Load(dir, "1.0.0")
	var cerr *CatalogError
	if !errors.As(err, &cerr) {
		t.Fatalf("error = %v (%T), want *CatalogError", err, err)
	}
	// Both the identifier pattern and the category enum should be reported.
	if len(cerr.Problems) < 2 {
		t.Errorf("expected both violations reported, got %v", cerr.Problems)
	}
}

func TestLoadDuplicateIdentifier(t *testing.T) {
	dir := writeCatalog(t, `version: 1
entries:
  - identifier: dup
    category: assistant-document
    kind: verbatim
    source_path: documents/a.md
    selection_rule: {kinds: [api-service]}
  - identifier: dup
    category: assistant-document
    kind: verbatim
    source_path: documents/b.md
    selection_rule: {kinds: [api-service]}
`)
	_, err := Load(dir, "1.0.0")
	var cerr *CatalogError
	if !errors.As(err, &cerr) {
		t.Fatalf("error = %v (%T), want *CatalogError", err, err)
	}
	if !strings.Contains(err.Error(), "duplicate identifier") {
		t.Errorf("error should mention duplicate identifier: %v", err)
	}
}

func TestLoadSameIdentifierAcrossCategories(t *testing.T) {
	// Identifiers are unique per category, not globally.
	dir := writeCatalog(t, `version: 1
entries:
  - identifier: shared
    category: assistant-document
    kind: verbatim
    source_path: documents/a.md
    selection_rule: {kinds: [api-service]}
  - identifier: shared
    category: skill-package
    kind: verbatim
    source_path: skills/a.md
    selection_rule: {kinds: [api-service]}
`)
	if _, err := Load(dir, "1.0.0"); err != nil {
		t.Fatalf("Load() error: %v", err)
	}
}

func TestLoadMalformedRule(t *testing.T) {
	dir := writeCatalog(t, `version: 1
entries:
  - identifier: bad-rule
    category: assistant-document
    kind: verbatim
    source_path: documents/a.md
    selection_rule:
      kinds: [spaceship]
      any_of:
        flux_capacitor: [installed]
`)
	_, err := Load(dir, "1.0.0")
	var cerr *CatalogError
	if !errors.As(err, &cerr) {
		t.Fatalf("error = %v (%T), want *CatalogError", err, err)
	}
	if !strings.Contains(err.Error(), "spaceship") || !strings.Contains(err.Error(), "flux_capacitor") {
		t.Errorf("error should name both rule defects: %v", err)
	}
}

func TestLoadEscapingSourcePath(t *testing.T) {
	dir := writeCatalog(t, `version: 1
entries:
  - identifier: sneaky
    category: assistant-document
    kind: verbatim
    source_path: ../../etc/passwd
    selection_rule: {kinds: [api-service]}
`)
	_, err := Load(dir, "1.0.0")
	var cerr *CatalogError
	if !errors.As(err, &cerr) {
		t.Fatalf("error = %v (%T), want *CatalogError", err, err)
	}
}

func TestLoadMinToolVersion(t *testing.T) {
	index := `version: 1
min_tool_version: 2.0.0
entries: []
`
	dir := writeCatalog(t, index)

	if _, err := Load(dir, "1.0.0"); err == nil {
		t.Error("expected CatalogError for too-old tool")
	}
	if _, err := Load(dir, "2.1.0"); err != nil {
		t.Errorf("tool 2.1.0 should satisfy min 2.0.0: %v", err)
	}
	if _, err := Load(dir, "v2.0.0"); err != nil {
		t.Errorf("v-prefixed tool version should parse: %v", err)
	}
	// Development builds skip the gate.
	if _, err := Load(dir, "dev"); err != nil {
		t.Errorf("non-semver tool version should skip the gate: %v", err)
	}
}

func TestLoadUnknownTopLevelField(t *testing.T) {
	dir := writeCatalog(t, `version: 1
surprise: true
entries: []
`)
	if _, err := Load(dir, "1.0.0"); err == nil {
		t.Error("expected CatalogError for unknown top-level field")
	}
}
