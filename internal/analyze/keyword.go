package analyze

import (
	"context"
	"strings"

	"github.com/stencil-labs/stencil/internal/project"
)

// Keyword is the deterministic analysis strategy: archetype detection via
// disjoint keyword sets, conventional stack defaults per archetype, and
// feature extraction via a fixed substring vocabulary. It is total and never
// returns an error; it is the correctness backstop for the AI path.
type Keyword struct{}

// kindKeywords maps each archetype to its detection keywords. Sets are
// disjoint and evaluated in this order; the first archetype with a match
// wins.
var kindKeywords = []struct {
	kind  project.Kind
	words []string
}{
	{project.KindAPIService, []string{"api", "rest", "grpc", "endpoint", "microservice"}},
	{project.KindWebService, []string{"website", "web app", "webapp", "dashboard", "frontend"}},
	{project.KindDataPipeline, []string{"pipeline", "etl", "batch job", "streaming", "ingest"}},
	{project.KindEmbeddedDevice, []string{"embedded", "firmware", "iot", "microcontroller", "sensor"}},
	{project.KindLibrary, []string{"library", "sdk", "reusable package"}},
	{project.KindCLITool, []string{"cli", "command-line", "command line", "terminal"}},
}

// stackDefaults holds the conventional stack for each archetype.
var stackDefaults = map[project.Kind]map[string]any{
	project.KindWebService: {
		"backend": "go", "frontend": "react", "datastore": "postgres", "deployment": "docker",
	},
	project.KindAPIService: {
		"backend": "go", "datastore": "postgres", "deployment": "docker",
	},
	project.KindCLITool: {
		"backend": "go", "deployment": "bare-metal",
	},
	project.KindLibrary: {
		"backend": "go",
	},
	project.KindDataPipeline: {
		"backend": "python", "datastore": "postgres", "deployment": "kubernetes",
	},
	project.KindEmbeddedDevice: {
		"backend": "rust", "deployment": "bare-metal",
	},
}

// featureKeywords maps each feature flag to the substrings that enable it.
var featureKeywords = map[string][]string{
	"auth":       {"auth", "login", "sign-in", "sso"},
	"docker":     {"docker", "container"},
	"ci":         {"continuous integration", "ci/cd", "github actions", "build pipeline"},
	"monitoring": {"monitoring", "metrics", "observab", "telemetry"},
	"docs":       {"documentation", "docs site", "readme"},
}

// Analyze implements Analyzer. The context is unused; the keyword path does
// no I/O.
func (Keyword) Analyze(_ context.Context, name, description string) (map[string]any, error) {
	lower := strings.ToLower(description)

	kind := detectKind(lower)

	stack := make(map[string]any, len(stackDefaults[kind]))
	for k, v := range stackDefaults[kind] {
		stack[k] = v
	}

	m := map[string]any{
		"name":        name,
		"description": description,
		"kind":        string(kind),
		"stack":       stack,
	}

	features := make(map[string]any)
	for feature, words := range featureKeywords {
		if containsAny(lower, words) {
			features[feature] = true
		}
	}
	if len(features) > 0 {
		m["features"] = features
	}

	return m, nil
}

// detectKind returns the first archetype whose keyword set matches, or
// cli-tool when nothing matches.
func detectKind(lower string) project.Kind {
	for _, kk := range kindKeywords {
		if containsAny(lower, kk.words) {
			return kk.kind
		}
	}
	return project.KindCLITool
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
