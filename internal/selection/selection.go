// Package selection decides which catalog entries apply to a project. It is
// a small interpreter over the fixed selection-rule schema (archetype filter,
// any-of, all-of) followed by a stable priority sort. Select is pure:
// identical inputs always yield the identical ordered result.
package selection

import (
	"sort"

	"github.com/stencil-labs/stencil/internal/catalog"
	"github.com/stencil-labs/stencil/internal/project"
)

// Select returns the entries of one category that match the project
// configuration, ordered high → medium → low with catalog order preserved
// within equal priorities.
//
// Selection is opt-in: an entry whose rule has no clauses is never selected.
func Select(cfg *project.Config, cat *catalog.Catalog, category catalog.Category) []catalog.Entry {
	var selected []catalog.Entry
	for _, e := range cat.Entries {
		if e.Category != category {
			continue
		}
		if Matches(cfg, e.Rule) {
			selected = append(selected, e)
		}
	}

	sort.SliceStable(selected, func(i, j int) bool {
		return selected[i].Priority.Rank() < selected[j].Priority.Rank()
	})

	return selected
}

// SelectAll runs Select for every category and returns the results keyed by
// category.
func SelectAll(cfg *project.Config, cat *catalog.Catalog) map[catalog.Category][]catalog.Entry {
	out := make(map[catalog.Category][]catalog.Entry, len(catalog.Categories))
	for _, category := range catalog.Categories {
		out[category] = Select(cfg, cat, category)
	}
	return out
}

// Matches evaluates a selection rule against the configuration. The three
// clauses combine with AND; a rule with no clauses never matches.
func Matches(cfg *project.Config, rule catalog.SelectionRule) bool {
	if rule.Empty() {
		return false
	}
	if !kindMatches(cfg, rule.Kinds) {
		return false
	}
	if !anyOfMatches(cfg, rule.AnyOf) {
		return false
	}
	return allOfMatches(cfg, rule.AllOf)
}

// kindMatches applies the archetype filter. An empty list matches every
// archetype.
func kindMatches(cfg *project.Config, kinds []string) bool {
	if len(kinds) == 0 {
		return true
	}
	for _, k := range kinds {
		if k == string(cfg.Kind) {
			return true
		}
	}
	return false
}

// anyOfMatches passes when at least one named attribute has one of its
// acceptable values. An absent clause always passes.
func anyOfMatches(cfg *project.Config, anyOf map[string][]string) bool {
	if len(anyOf) == 0 {
		return true
	}
	for attr, values := range anyOf {
		if attrMatches(cfg, attr, values) {
			return true
		}
	}
	return false
}

// allOfMatches passes only when every named attribute has one of its
// acceptable values. An absent clause always passes.
func allOfMatches(cfg *project.Config, allOf map[string][]string) bool {
	for attr, values := range allOf {
		if !attrMatches(cfg, attr, values) {
			return false
		}
	}
	return true
}

func attrMatches(cfg *project.Config, attr string, values []string) bool {
	got, ok := cfg.Attribute(attr)
	if !ok {
		return false
	}
	for _, v := range values {
		if v == got {
			return true
		}
	}
	return false
}
