package template

import (
	"bytes"
	"fmt"
	"io/fs"
	"regexp"
	"strings"
	"text/template"
)

// unexpandedTokenPattern detects leftover template actions in rendered
// output. Only Go-template tokens are checked: generated TypeScript
// legitimately contains ${...} string interpolation.
var unexpandedTokenPattern = regexp.MustCompile(`\{\{\.?[A-Za-z_][A-Za-z0-9_.]*\}\}`)

// Renderer renders Go text/template files with strict mode enabled.
type Renderer interface {
	// Render parses the named template from the backing FS and executes
	// it with the given data. Returns ErrMissingTemplateKey if a key is
	// missing and ErrUnexpandedToken if tokens remain after rendering.
	Render(templateName string, data any) ([]byte, error)
}

type renderer struct {
	fsys fs.FS
}

// NewRenderer creates a Renderer backed by the given filesystem.
// In production the fs.FS comes from go:embed; in tests use
// testing/fstest.MapFS.
func NewRenderer(fsys fs.FS) Renderer {
	return &renderer{fsys: fsys}
}

// DefaultRenderer returns a Renderer over the embedded template bodies.
func DefaultRenderer() Renderer {
	return NewRenderer(FS())
}

// Render parses and executes a template with missingkey=error.
func (r *renderer) Render(templateName string, data any) ([]byte, error) {
	content, err := fs.ReadFile(r.fsys, templateName)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, templateName)
	}

	tmpl, err := template.New(templateName).
		Option("missingkey=error").
		Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("template parse %q: %w", templateName, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingTemplateKey, err)
	}

	result := buf.Bytes()
	if loc := unexpandedTokenPattern.Find(result); loc != nil {
		return nil, fmt.Errorf("%w: found %q", ErrUnexpandedToken, string(loc))
	}

	return result, nil
}

// RenderPath expands a destination path pattern with the given context.
// Patterns are small templates over the same context the bodies use.
func RenderPath(pattern string, data any) (string, error) {
	tmpl, err := template.New("path").
		Option("missingkey=error").
		Parse(pattern)
	if err != nil {
		return "", fmt.Errorf("path pattern parse %q: %w", pattern, err)
	}

	var buf strings.Builder
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMissingTemplateKey, err)
	}
	return buf.String(), nil
}
