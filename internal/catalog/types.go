package catalog

import "path/filepath"

// Category identifies which bucket of the generated tree an entry lands in.
type Category string

// The three fixed entry categories.
const (
	CategoryDocument Category = "assistant-document"
	CategorySkill    Category = "skill-package"
	CategoryCommand  Category = "command-definition"
)

// Categories lists every valid category in manifest order.
var Categories = []Category{CategoryDocument, CategorySkill, CategoryCommand}

// Kind is the materialization mode of an entry: copied byte-for-byte or
// rendered through the template engine.
type Kind string

const (
	KindVerbatim   Kind = "verbatim"
	KindRenderable Kind = "renderable"
)

// Priority orders selected entries. It never affects inclusion.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Rank returns the sort rank of a priority (high first).
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	default:
		return 3
	}
}

// SelectionRule is the declarative predicate controlling whether an entry is
// selected for a project. All clauses are optional; an entry whose rule has
// no clauses at all is never selected (selection is opt-in).
type SelectionRule struct {
	// Kinds restricts the entry to the listed project archetypes. Empty
	// means every archetype matches.
	Kinds []string `yaml:"kinds,omitempty" json:"kinds,omitempty"`

	// AnyOf passes when at least one named attribute has one of the listed
	// values.
	AnyOf map[string][]string `yaml:"any_of,omitempty" json:"any_of,omitempty"`

	// AllOf passes only when every named attribute has one of its listed
	// values.
	AllOf map[string][]string `yaml:"all_of,omitempty" json:"all_of,omitempty"`
}

// Empty reports whether the rule has no clauses at all.
func (r SelectionRule) Empty() bool {
	return len(r.Kinds) == 0 && len(r.AnyOf) == 0 && len(r.AllOf) == 0
}

// Entry is one selectable resource in the catalog.
type Entry struct {
	Identifier string        `yaml:"identifier" json:"identifier"`
	Category   Category      `yaml:"category" json:"category"`
	Kind       Kind          `yaml:"kind" json:"kind"`
	SourcePath string        `yaml:"source_path" json:"source_path"`
	Priority   Priority      `yaml:"priority,omitempty" json:"priority,omitempty"`
	Rule       SelectionRule `yaml:"selection_rule,omitempty" json:"selection_rule,omitempty"`
}

// Catalog is the loaded, immutable set of entries. It is passed into the
// selection engine as an explicit value; nothing in this package holds
// module-level catalog state.
type Catalog struct {
	Dir            string  // absolute catalog directory
	Version        int     `yaml:"version"`
	MinToolVersion string  `yaml:"min_tool_version"`
	Entries        []Entry `yaml:"entries"`
}

// Source resolves an entry's source path against the catalog directory.
func (c *Catalog) Source(e Entry) string {
	return filepath.Join(c.Dir, filepath.FromSlash(e.SourcePath))
}
