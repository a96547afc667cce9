package generate

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/stencil-labs/stencil/internal/catalog"
	"github.com/stencil-labs/stencil/internal/project"
	"github.com/stencil-labs/stencil/internal/textcase"
)

// ConflictPolicy controls how an existing destination is handled.
type ConflictPolicy int

const (
	// PolicyFailOnConflict aborts before any write if the destination
	// exists and is non-empty.
	PolicyFailOnConflict ConflictPolicy = iota
	// PolicyOverwrite proceeds, replacing existing files.
	PolicyOverwrite
)

// Manifest records every entry file written during one run, per category,
// in write order, as absolute paths.
type Manifest map[catalog.Category][]string

// categoryDirs maps each category to its subdirectory under the
// destination.
var categoryDirs = map[catalog.Category]string{
	catalog.CategoryDocument: "documents",
	catalog.CategorySkill:    "skills",
	catalog.CategoryCommand:  "commands",
}

// structuredLayouts lists archetypes whose scaffold includes a source tree.
var structuredLayouts = map[project.Kind]bool{
	project.KindWebService:   true,
	project.KindAPIService:   true,
	project.KindLibrary:      true,
	project.KindDataPipeline: true,
}

// Options bundles the inputs of one generation run.
type Options struct {
	Config      *project.Config
	Catalog     *catalog.Catalog
	Selection   map[catalog.Category][]catalog.Entry
	Destination string // raw caller-supplied path, validated before use
	Policy      ConflictPolicy
	Renderer    Renderer // nil selects TemplateRenderer
}

// Generate validates the destination, scaffolds the directory tree, and
// materializes every selected entry. It fails atomically before any write
// on an invalid destination or a conflict; a materialization failure aborts
// the run naming the offending entry, leaving already-written files in
// place.
func Generate(opts Options) (Manifest, error) {
	if opts.Config == nil || opts.Catalog == nil {
		return nil, fmt.Errorf("generate: config and catalog are required")
	}
	renderer := opts.Renderer
	if renderer == nil {
		renderer = TemplateRenderer{}
	}

	dest, err := ValidateDestination(opts.Destination)
	if err != nil {
		return nil, err
	}

	if err := checkConflict(dest, opts.Policy); err != nil {
		return nil, err
	}

	if err := scaffold(dest, opts.Config); err != nil {
		return nil, err
	}

	manifest := make(Manifest, len(categoryDirs))
	context := TemplateContext(opts.Config)

	for _, category := range catalog.Categories {
		catDir := filepath.Join(dest, categoryDirs[category])
		for _, entry := range opts.Selection[category] {
			written, err := materialize(opts.Catalog, entry, catDir, renderer, context)
			if err != nil {
				return nil, err
			}
			manifest[category] = append(manifest[category], written...)
		}
	}

	return manifest, nil
}

// checkConflict enforces the conflict policy before anything is created. A
// destination that exists as a regular file is always an error.
func checkConflict(dest string, policy ConflictPolicy) error {
	info, err := os.Stat(dest)
	if err != nil {
		return nil // does not exist yet
	}
	if !info.IsDir() {
		return &ConflictError{Path: dest}
	}
	if policy == PolicyOverwrite {
		return nil
	}
	entries, err := os.ReadDir(dest)
	if err != nil {
		return fmt.Errorf("reading destination %s: %w", dest, err)
	}
	if len(entries) > 0 {
		return &ConflictError{Path: dest}
	}
	return nil
}

// scaffold creates the destination, the fixed category subdirectories, and
// the archetype source layout. Package-marker files are created only when
// absent, never overwriting.
func scaffold(dest string, cfg *project.Config) error {
	if err := os.MkdirAll(dest, 0755); err != nil {
		return fmt.Errorf("creating destination %s: %w", dest, err)
	}
	for _, category := range catalog.Categories {
		dir := filepath.Join(dest, categoryDirs[category])
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating category directory %s: %w", dir, err)
		}
	}

	if !structuredLayouts[cfg.Kind] {
		return nil
	}
	layout := []string{"src"}
	if cfg.Kind == project.KindLibrary {
		layout = append(layout, filepath.Join("src", textcase.Snake(cfg.Name)))
	}
	for _, rel := range layout {
		dir := filepath.Join(dest, rel)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating layout directory %s: %w", dir, err)
		}
		marker := filepath.Join(dir, ".gitkeep")
		if _, err := os.Stat(marker); err == nil {
			continue // never overwrite an existing marker
		}
		if err := os.WriteFile(marker, nil, 0644); err != nil {
			return fmt.Errorf("creating package marker %s: %w", marker, err)
		}
	}
	return nil
}

// materialize writes one entry into its category directory and returns the
// written file paths.
func materialize(cat *catalog.Catalog, entry catalog.Entry, catDir string, renderer Renderer, context map[string]any) ([]string, error) {
	src := cat.Source(entry)

	switch entry.Kind {
	case catalog.KindVerbatim:
		dst := filepath.Join(catDir, filepath.Base(src))
		written, err := copyVerbatim(src, dst)
		if err != nil {
			return nil, fmt.Errorf("entry %q: %w", entry.Identifier, err)
		}
		return written, nil

	case catalog.KindRenderable:
		text, err := renderer.Render(src, context)
		if err != nil {
			return nil, &RenderError{Entry: entry.Identifier, Err: err}
		}
		outName := strings.TrimSuffix(filepath.Base(src), TemplateSuffix)
		dst := filepath.Join(catDir, outName)
		if err := os.WriteFile(dst, []byte(text), 0644); err != nil {
			return nil, fmt.Errorf("entry %q: writing %s: %w", entry.Identifier, dst, err)
		}
		return []string{dst}, nil

	default:
		return nil, fmt.Errorf("entry %q: unknown kind %q", entry.Identifier, entry.Kind)
	}
}
