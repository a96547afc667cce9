package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"go.yaml.in/yaml/v3"

	"github.com/stencil-labs/stencil/internal/project"
	"github.com/stencil-labs/stencil/internal/schema"
)

// IndexFile is the catalog index file name inside a catalog directory.
const IndexFile = "catalog.yaml"

//go:embed schema/catalog.schema.json
var schemaBytes []byte

var (
	compiledSchema *jsonschema.Schema
	compileOnce    sync.Once
	compileErr     error
)

func getSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		compiledSchema, compileErr = schema.Compile("catalog.schema.json", schemaBytes)
	})
	return compiledSchema, compileErr
}

// Load reads and validates the catalog index in dir. toolVersion is the
// running tool's version and is checked against the index's
// min_tool_version; non-semver tool versions (e.g. "dev") skip the gate.
// Any catalog defect returns a *CatalogError.
func Load(dir, toolVersion string) (*Catalog, error) {
	s, err := getSchema()
	if err != nil {
		return nil, fmt.Errorf("loading catalog schema: %w", err)
	}

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving catalog directory %s: %w", dir, err)
	}
	indexPath := filepath.Join(absDir, IndexFile)

	data, err := os.ReadFile(indexPath)
	if err != nil {
		return nil, &CatalogError{Path: indexPath, Problems: []string{fmt.Sprintf("reading index: %v", err)}}
	}

	// Schema validation over the generic document first, so every shape
	// violation is reported at once.
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, &CatalogError{Path: indexPath, Problems: []string{fmt.Sprintf("parsing YAML: %v", err)}}
	}
	issues, err := schema.Validate(s, raw)
	if err != nil {
		return nil, fmt.Errorf("validating catalog index: %w", err)
	}
	if len(issues) > 0 {
		cerr := &CatalogError{Path: indexPath}
		for _, issue := range issues {
			problem := issue.Message
			if issue.Path != "" {
				problem = issue.Path + ": " + problem
			}
			cerr.Problems = append(cerr.Problems, problem)
		}
		return nil, cerr
	}

	var cat Catalog
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return nil, &CatalogError{Path: indexPath, Problems: []string{fmt.Sprintf("decoding index: %v", err)}}
	}
	cat.Dir = absDir

	var problems []string

	if cat.MinToolVersion != "" {
		if _, err := parseSemver(cat.MinToolVersion); err != nil {
			problems = append(problems, fmt.Sprintf("min_tool_version %q is not valid semver", cat.MinToolVersion))
		} else if ok, err := toolSatisfies(toolVersion, cat.MinToolVersion); err == nil && !ok {
			// A non-semver tool version (development builds) skips the gate.
			problems = append(problems,
				fmt.Sprintf("catalog requires tool version >= %s (running %s)", cat.MinToolVersion, toolVersion))
		}
	}

	problems = append(problems, checkEntries(cat.Entries)...)

	if len(problems) > 0 {
		return nil, &CatalogError{Path: indexPath, Problems: problems}
	}

	// Default priority applies after validation so the schema still rejects
	// misspelled priorities.
	for i := range cat.Entries {
		if cat.Entries[i].Priority == "" {
			cat.Entries[i].Priority = PriorityMedium
		}
	}

	return &cat, nil
}

// checkEntries performs the structural checks the schema cannot express:
// identifier uniqueness per category, rule vocabulary, and source path
// containment.
func checkEntries(entries []Entry) []string {
	var problems []string
	seen := make(map[string]bool)

	for _, e := range entries {
		key := string(e.Category) + "/" + e.Identifier
		if seen[key] {
			problems = append(problems, fmt.Sprintf("duplicate identifier %q in category %s", e.Identifier, e.Category))
		}
		seen[key] = true

		for _, k := range e.Rule.Kinds {
			if !project.ValidKind(k) {
				problems = append(problems,
					fmt.Sprintf("entry %q: selection_rule.kinds references unknown archetype %q", e.Identifier, k))
			}
		}
		for _, clause := range []struct {
			name  string
			attrs map[string][]string
		}{
			{"any_of", e.Rule.AnyOf},
			{"all_of", e.Rule.AllOf},
		} {
			for attr := range clause.attrs {
				if !project.KnownAttribute(attr) {
					problems = append(problems,
						fmt.Sprintf("entry %q: selection_rule.%s references unknown attribute %q", e.Identifier, clause.name, attr))
				}
			}
		}

		if p := checkSourcePath(e); p != "" {
			problems = append(problems, p)
		}
	}

	return problems
}

// checkSourcePath rejects absolute source paths and paths that escape the
// catalog directory.
func checkSourcePath(e Entry) string {
	sp := e.SourcePath
	if filepath.IsAbs(sp) || strings.HasPrefix(sp, "/") {
		return fmt.Sprintf("entry %q: source_path must be relative, got %q", e.Identifier, sp)
	}
	for _, seg := range strings.Split(sp, "/") {
		if seg == ".." {
			return fmt.Sprintf("entry %q: source_path must not escape the catalog directory: %q", e.Identifier, sp)
		}
	}
	return ""
}
