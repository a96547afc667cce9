package analyze

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/stencil-labs/stencil/internal/project"
)

const (
	defaultModel   = "gemini-2.0-flash"
	defaultTimeout = 15 * time.Second
)

var errEmptyResponse = errors.New("empty model response")

// hintProvider is the single call the Gemini analyzer makes against the
// model. Factored out so the merge and fallback logic is testable without a
// credential.
type hintProvider interface {
	hints(ctx context.Context, prompt string) (string, error)
}

// Gemini is the AI-assisted analysis strategy. It asks the model for a
// strict-JSON mapping and overlays the sanitized hints on the keyword
// baseline. Every failure mode (missing credential, timeout, malformed or
// out-of-contract response) degrades to the keyword result; the AI path can
// never fail a run.
type Gemini struct {
	provider hintProvider
	timeout  time.Duration
	base     Keyword
}

// NewGemini builds the AI strategy around the official genai client.
func NewGemini(apiKey, model string, timeout time.Duration) (*Gemini, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	if model == "" {
		model = defaultModel
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	cli, err := genai.NewClient(context.Background(), &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("creating genai client: %w", err)
	}

	return &Gemini{
		provider: &genaiProvider{cli: cli, model: model},
		timeout:  timeout,
	}, nil
}

// Analyze implements Analyzer.
func (g *Gemini) Analyze(ctx context.Context, name, description string) (map[string]any, error) {
	baseline, _ := g.base.Analyze(ctx, name, description)

	callCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	raw, err := g.provider.hints(callCtx, buildPrompt(description))
	if err != nil {
		return baseline, nil
	}

	hints, err := parseHints(raw)
	if err != nil {
		return baseline, nil
	}

	return mergeHints(baseline, hints), nil
}

// buildPrompt asks for a JSON object restricted to the fields the project
// schema accepts.
func buildPrompt(description string) string {
	var kinds []string
	for _, k := range project.Kinds {
		kinds = append(kinds, string(k))
	}
	var stacks []string
	for attr, vocab := range project.StackVocabulary {
		stacks = append(stacks, fmt.Sprintf("%q: one of %s", attr, strings.Join(vocab, ", ")))
	}

	return fmt.Sprintf(`Classify the software project described below.
Respond with a single JSON object and nothing else, using only these fields:
  "kind": one of %s
  "stack": object with any of {%s}
  "features": object with boolean values for any of {%s}
Omit any field you are not confident about.

Project description:
%s`,
		strings.Join(kinds, ", "),
		strings.Join(stacks, "; "),
		strings.Join(project.FeatureNames, ", "),
		description)
}

var jsonObjectPattern = regexp.MustCompile(`(?s)\{.*\}`)

// parseHints extracts the JSON object from the model response. Models
// occasionally wrap JSON in markdown fences; take the outermost object.
func parseHints(raw string) (map[string]any, error) {
	match := jsonObjectPattern.FindString(raw)
	if match == "" {
		return nil, errEmptyResponse
	}
	var hints map[string]any
	if err := json.Unmarshal([]byte(match), &hints); err != nil {
		return nil, fmt.Errorf("parsing model response: %w", err)
	}
	return hints, nil
}

// mergeHints overlays sanitized hints on the keyword baseline. Only values
// that would pass project validation are accepted; anything out of contract
// is dropped so the merged mapping still validates. Name and description are
// caller input and never overridden.
func mergeHints(baseline, hints map[string]any) map[string]any {
	merged := make(map[string]any, len(baseline))
	for k, v := range baseline {
		merged[k] = v
	}

	if kind, ok := hints["kind"].(string); ok && project.ValidKind(kind) {
		merged["kind"] = kind
		// The baseline stack belongs to the baseline kind; restart from the
		// hinted kind's defaults before applying stack hints.
		stack := make(map[string]any)
		for k, v := range stackDefaults[project.Kind(kind)] {
			stack[k] = v
		}
		merged["stack"] = stack
	}

	if hintStack, ok := hints["stack"].(map[string]any); ok {
		stack, _ := merged["stack"].(map[string]any)
		if stack == nil {
			stack = make(map[string]any)
		}
		for attr, v := range hintStack {
			val, ok := v.(string)
			if !ok {
				continue
			}
			if vocabContains(project.StackVocabulary[attr], val) {
				stack[attr] = val
			}
		}
		merged["stack"] = stack
	}

	if hintFeatures, ok := hints["features"].(map[string]any); ok {
		features, _ := merged["features"].(map[string]any)
		if features == nil {
			features = make(map[string]any)
		}
		for name, v := range hintFeatures {
			enabled, ok := v.(bool)
			if !ok || !featureKnown(name) {
				continue
			}
			if enabled {
				features[name] = true
			} else {
				delete(features, name)
			}
		}
		if len(features) > 0 {
			merged["features"] = features
		} else {
			delete(merged, "features")
		}
	}

	return merged
}

func vocabContains(vocab []string, v string) bool {
	for _, entry := range vocab {
		if entry == v {
			return true
		}
	}
	return false
}

func featureKnown(name string) bool {
	for _, f := range project.FeatureNames {
		if f == name {
			return true
		}
	}
	return false
}

// genaiProvider adapts the official client to hintProvider.
type genaiProvider struct {
	cli   *genai.Client
	model string
}

func (p *genaiProvider) hints(ctx context.Context, prompt string) (string, error) {
	resp, err := p.cli.Models.GenerateContent(ctx, p.model,
		[]*genai.Content{{Parts: []*genai.Part{{Text: prompt}}}},
		&genai.GenerateContentConfig{ResponseMIMEType: "application/json"},
	)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", errEmptyResponse
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}
