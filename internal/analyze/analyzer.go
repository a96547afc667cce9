package analyze

import (
	"context"
	"os"
	"time"
)

// Analyzer produces the raw field mapping for a project from its name and
// description. The mapping is flat with at most one level of nesting for the
// grouped "stack" and "features" attributes.
type Analyzer interface {
	Analyze(ctx context.Context, name, description string) (map[string]any, error)
}

// Options controls strategy selection for a run.
type Options struct {
	AIEnabled bool
	APIKey    string        // Gemini credential; empty disables the AI path
	Model     string        // defaults to defaultModel when empty
	Timeout   time.Duration // per-call guard for the AI path
}

// Resolve picks the analysis strategy for a run. The AI path is chosen only
// when enabled and a credential is available; it degrades to the keyword
// analyzer internally, so the returned Analyzer never fails the run.
func Resolve(opts Options) Analyzer {
	if !opts.AIEnabled {
		return Keyword{}
	}
	key := opts.APIKey
	if key == "" {
		key = os.Getenv("GEMINI_API_KEY")
	}
	if key == "" {
		return Keyword{}
	}
	g, err := NewGemini(key, opts.Model, opts.Timeout)
	if err != nil {
		return Keyword{}
	}
	return g
}
