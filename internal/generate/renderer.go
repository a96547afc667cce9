package generate

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"text/template"
	"time"

	"github.com/stencil-labs/stencil/internal/project"
	"github.com/stencil-labs/stencil/internal/textcase"
)

// TemplateSuffix is stripped from a renderable entry's file name when the
// rendered output is written.
const TemplateSuffix = ".tmpl"

// Renderer resolves a template reference against a context and returns the
// rendered text. Implementations must wrap failures in ErrTemplateNotFound
// or ErrTemplateInvalid so the orchestrator can attribute them.
type Renderer interface {
	Render(templatePath string, data map[string]any) (string, error)
}

// TemplateRenderer is the default Renderer, backed by text/template.
// Unresolved references are errors, not silent blanks.
type TemplateRenderer struct{}

// Render implements Renderer.
func (TemplateRenderer) Render(templatePath string, data map[string]any) (string, error) {
	raw, err := os.ReadFile(templatePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrTemplateNotFound, templatePath)
		}
		return "", fmt.Errorf("reading template %s: %w", templatePath, err)
	}

	tmpl, err := template.New(filepath.Base(templatePath)).
		Option("missingkey=error").
		Parse(string(raw))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTemplateInvalid, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrTemplateInvalid, err)
	}
	return buf.String(), nil
}

// TemplateContext assembles the rendering context for a project: every
// configuration field, the derived case variants of the name, and the
// current year.
func TemplateContext(cfg *project.Config) map[string]any {
	return map[string]any{
		"Name":        cfg.Name,
		"Slug":        cfg.Slug,
		"PascalName":  textcase.Pascal(cfg.Name),
		"SnakeName":   textcase.Snake(cfg.Name),
		"CamelName":   textcase.Camel(cfg.Name),
		"Kind":        string(cfg.Kind),
		"Description": cfg.Description,
		"Backend":     cfg.Stack.Backend,
		"Frontend":    cfg.Stack.Frontend,
		"Datastore":   cfg.Stack.Datastore,
		"Cache":       cfg.Stack.Cache,
		"Deployment":  cfg.Stack.Deployment,
		"Platform":    cfg.Stack.Platform,
		"Features":    cfg.Features,
		"Year":        time.Now().Year(),
	}
}
