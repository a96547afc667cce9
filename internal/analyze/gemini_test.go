package analyze

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stencil-labs/stencil/internal/project"
)

type stubProvider struct {
	response string
	err      error
}

func (s *stubProvider) hints(_ context.Context, _ string) (string, error) {
	return s.response, s.err
}

func newTestGemini(p hintProvider) *Gemini {
	return &Gemini{provider: p, timeout: time.Second}
}

func TestGeminiMergesHints(t *testing.T) {
	g := newTestGemini(&stubProvider{
		response: `{"kind": "web-service", "stack": {"frontend": "vue"}, "features": {"auth": true}}`,
	})

	m, err := g.Analyze(context.Background(), "Shop Front", "An online storefront")
	if err != nil {
		t.Fatalf("Analyze() error: %v", err)
	}
	if m["kind"] != "web-service" {
		t.Errorf("kind = %v, want web-service", m["kind"])
	}
	stack := m["stack"].(map[string]any)
	if stack["frontend"] != "vue" {
		t.Errorf("frontend = %v, want vue (hint should override default)", stack["frontend"])
	}
	if stack["backend"] != "go" {
		t.Errorf("backend = %v, want go (default for hinted kind)", stack["backend"])
	}
	features := m["features"].(map[string]any)
	if features["auth"] != true {
		t.Errorf("features = %v, want auth enabled", features)
	}

	// The merged mapping must still validate.
	if _, err := project.Build(m); err != nil {
		t.Errorf("merged mapping failed validation: %v", err)
	}
}

func TestGeminiProviderErrorFallsBack(t *testing.T) {
	g := newTestGemini(&stubProvider{err: errors.New("deadline exceeded")})

	m, err := g.Analyze(context.Background(), "Orders", "A REST api for orders")
	if err != nil {
		t.Fatalf("provider failure must not surface: %v", err)
	}

	want, _ := Keyword{}.Analyze(context.Background(), "Orders", "A REST api for orders")
	if m["kind"] != want["kind"] {
		t.Errorf("fallback kind = %v, want keyword result %v", m["kind"], want["kind"])
	}
}

func TestGeminiMalformedResponseFallsBack(t *testing.T) {
	for _, response := range []string{"", "not json at all", `{"kind": unquoted}`} {
		g := newTestGemini(&stubProvider{response: response})
		m, err := g.Analyze(context.Background(), "Orders", "A REST api for orders")
		if err != nil {
			t.Fatalf("malformed response %q must not surface: %v", response, err)
		}
		if m["kind"] != string(project.KindAPIService) {
			t.Errorf("response %q: kind = %v, want keyword fallback", response, m["kind"])
		}
	}
}

func TestGeminiOutOfContractHintsDropped(t *testing.T) {
	g := newTestGemini(&stubProvider{
		response: `{"kind": "spaceship", "stack": {"backend": "cobol"}, "features": {"warp": true}, "name": "Injected"}`,
	})

	m, err := g.Analyze(context.Background(), "Orders", "A REST api for orders")
	if err != nil {
		t.Fatalf("Analyze() error: %v", err)
	}
	if m["kind"] != string(project.KindAPIService) {
		t.Errorf("invalid kind hint should be dropped; kind = %v", m["kind"])
	}
	if m["name"] != "Orders" {
		t.Errorf("model must not override the caller's name; name = %v", m["name"])
	}
	stack := m["stack"].(map[string]any)
	if stack["backend"] != "go" {
		t.Errorf("out-of-vocabulary backend hint should be dropped; backend = %v", stack["backend"])
	}
	if _, err := project.Build(m); err != nil {
		t.Errorf("sanitized mapping failed validation: %v", err)
	}
}

func TestGeminiJSONInMarkdownFence(t *testing.T) {
	g := newTestGemini(&stubProvider{
		response: "```json\n{\"kind\": \"library\"}\n```",
	})
	m, err := g.Analyze(context.Background(), "Logger", "A REST api for orders")
	if err != nil {
		t.Fatalf("Analyze() error: %v", err)
	}
	if m["kind"] != string(project.KindLibrary) {
		t.Errorf("kind = %v, want library (fenced JSON should parse)", m["kind"])
	}
}

func TestResolveWithoutCredential(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	a := Resolve(Options{AIEnabled: true})
	if _, ok := a.(Keyword); !ok {
		t.Errorf("Resolve without credential = %T, want Keyword", a)
	}
}

func TestResolveDisabled(t *testing.T) {
	a := Resolve(Options{AIEnabled: false, APIKey: "unused"})
	if _, ok := a.(Keyword); !ok {
		t.Errorf("Resolve with AI disabled = %T, want Keyword", a)
	}
}
