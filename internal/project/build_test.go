package project

import (
	"errors"
	"testing"
)

func validFields() map[string]any {
	return map[string]any{
		"name":        "Sample Api",
		"kind":        "api-service",
		"description": "A sample REST API service for testing.",
		"stack": map[string]any{
			"backend":   "go",
			"datastore": "postgres",
		},
		"features": map[string]any{
			"auth": true,
		},
	}
}

func TestBuildValid(t *testing.T) {
	cfg, err := Build(validFields())
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if cfg.Name != "Sample Api" {
		t.Errorf("Name = %q, want %q", cfg.Name, "Sample Api")
	}
	if cfg.Slug != "sample-api" {
		t.Errorf("Slug = %q, want %q (derived)", cfg.Slug, "sample-api")
	}
	if cfg.Kind != KindAPIService {
		t.Errorf("Kind = %q, want %q", cfg.Kind, KindAPIService)
	}
	if cfg.Stack.Backend != "go" {
		t.Errorf("Stack.Backend = %q, want %q", cfg.Stack.Backend, "go")
	}
	if !cfg.Features["auth"] {
		t.Error("Features[auth] should be true")
	}
}

func TestBuildExplicitSlugKept(t *testing.T) {
	fields := validFields()
	fields["slug"] = "custom-slug"
	cfg, err := Build(fields)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if cfg.Slug != "custom-slug" {
		t.Errorf("Slug = %q, want %q", cfg.Slug, "custom-slug")
	}
}

func TestBuildSlugDerivationDeterministic(t *testing.T) {
	fields := validFields()
	fields["name"] = "My HTTPServer Project"
	first, err := Build(fields)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	second, err := Build(fields)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if first.Slug != second.Slug {
		t.Errorf("slug derivation not deterministic: %q vs %q", first.Slug, second.Slug)
	}
	if first.Slug == "" {
		t.Error("derived slug should not be empty")
	}
}

func TestBuildCollectsAllViolations(t *testing.T) {
	fields := map[string]any{
		"name":        "ab",        // too short
		"kind":        "spaceship", // not a known archetype
		"description": "short",     // too short
	}
	_, err := Build(fields)
	if err == nil {
		t.Fatal("expected validation error")
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error type = %T, want *ValidationError", err)
	}
	for _, field := range []string{"name", "kind", "description"} {
		if !verr.Has(field) {
			t.Errorf("ValidationError missing violation for %q; got %v", field, verr.Fields)
		}
	}
}

func TestBuildMissingRequired(t *testing.T) {
	_, err := Build(map[string]any{})
	if err == nil {
		t.Fatal("expected validation error for empty mapping")
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error type = %T, want *ValidationError", err)
	}
	for _, field := range []string{"name", "kind", "description"} {
		if !verr.Has(field) {
			t.Errorf("ValidationError should mention required field %q; got %v", field, verr.Fields)
		}
	}
}

func TestBuildUnslugifiableName(t *testing.T) {
	fields := validFields()
	fields["name"] = "!!! ???" // slugifies to ""
	_, err := Build(fields)
	if err == nil {
		t.Fatal("expected validation error for unslugifiable name")
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error type = %T, want *ValidationError", err)
	}
	if !verr.Has("slug") {
		t.Errorf("ValidationError should flag slug, got %v", verr.Fields)
	}
}

func TestBuildRejectsUnknownFields(t *testing.T) {
	fields := validFields()
	fields["surprise"] = "value"
	_, err := Build(fields)
	if err == nil {
		t.Fatal("expected validation error for unknown field")
	}
}

func TestBuildRejectsUnknownStackValue(t *testing.T) {
	fields := validFields()
	fields["stack"] = map[string]any{"backend": "cobol"}
	_, err := Build(fields)
	if err == nil {
		t.Fatal("expected validation error for out-of-vocabulary backend")
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error type = %T, want *ValidationError", err)
	}
	if !verr.Has("stack.backend") {
		t.Errorf("ValidationError should flag stack.backend, got %v", verr.Fields)
	}
}

func TestBuildDoesNotMutateInput(t *testing.T) {
	fields := validFields()
	if _, err := Build(fields); err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if _, ok := fields["slug"]; ok {
		t.Error("Build should not write the derived slug into the caller's mapping")
	}
}

func TestAttribute(t *testing.T) {
	cfg, err := Build(validFields())
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	tests := []struct {
		name   string
		want   string
		wantOK bool
	}{
		{"backend", "go", true},
		{"datastore", "postgres", true},
		{"frontend", "", false}, // unset
		{"auth", "true", true},  // feature flag
		{"docker", "", false},   // feature not set
		{"bogus", "", false},    // unknown
	}
	for _, tt := range tests {
		got, ok := cfg.Attribute(tt.name)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("Attribute(%q) = (%q, %v), want (%q, %v)", tt.name, got, ok, tt.want, tt.wantOK)
		}
	}
}
