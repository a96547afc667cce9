// Package catalog loads and validates the resource catalog: a directory
// holding a catalog.yaml index plus the resource files it references. The
// index is validated against an embedded JSON Schema and then structurally
// (unique identifiers, known rule attributes, sane source paths); any defect
// is a *CatalogError that aborts the run rather than silently skipping
// entries.
package catalog
