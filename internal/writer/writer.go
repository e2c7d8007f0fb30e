// Package writer executes a generation plan against the project tree.
// Rendering and writing are best-effort per file: one bad artifact does
// not stop the batch, it becomes a Failed entry in the manifest.
package writer

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/forgekit/forge/internal/manifest"
	"github.com/forgekit/forge/internal/plan"
	"github.com/forgekit/forge/internal/template"
)

var (
	ErrPathTraversal = errors.New("writer: path escapes project root")
	ErrFileExists    = errors.New("writer: file already exists")
)

// ConflictPolicy decides what happens when a planned file already
// exists at its destination.
type ConflictPolicy int

const (
	// FailOnExisting records a Failed entry for the file and moves on.
	// This is the default: generated code never silently clobbers work.
	FailOnExisting ConflictPolicy = iota

	// SkipExisting leaves the file untouched and records Skipped.
	SkipExisting

	// Overwrite replaces the file and records Overwritten.
	Overwrite
)

func (p ConflictPolicy) String() string {
	switch p {
	case FailOnExisting:
		return "fail-on-existing"
	case SkipExisting:
		return "skip-existing"
	case Overwrite:
		return "overwrite"
	}
	return fmt.Sprintf("ConflictPolicy(%d)", int(p))
}

// Writer renders plan steps and writes them under a project root.
type Writer struct {
	renderer template.Renderer
	fs       FileSystem
	onStep   func(plan.Step)
}

// OnStep registers a callback invoked before each step is attempted.
// The progress UI uses it; a nil fn clears the callback.
func (w *Writer) OnStep(fn func(plan.Step)) {
	w.onStep = fn
}

// New creates a Writer with an explicit renderer and filesystem.
// Tests inject fakes here; production callers use NewDefault.
func New(renderer template.Renderer, fsys FileSystem) *Writer {
	return &Writer{renderer: renderer, fs: fsys}
}

// NewDefault creates a Writer over the embedded templates and the
// real filesystem.
func NewDefault() *Writer {
	return New(template.DefaultRenderer(), OSFileSystem{})
}

// Execute renders every step of the plan and writes the results under
// projectRoot. Per-file errors are recorded in the manifest and the
// batch continues. The returned error is non-nil only for whole-batch
// conditions, currently just context cancellation.
func (w *Writer) Execute(ctx context.Context, p *plan.Plan, tctx *template.Context, projectRoot string, policy ConflictPolicy) (*manifest.Manifest, error) {
	projectRoot = filepath.Clean(projectRoot)
	m := &manifest.Manifest{}

	for _, step := range p.Steps {
		select {
		case <-ctx.Done():
			return m, ctx.Err()
		default:
		}

		if w.onStep != nil {
			w.onStep(step)
		}

		if err := w.writeStep(step, tctx, projectRoot, policy, m); err != nil {
			m.AddFailure(step.Path, err)
		}
	}

	return m, nil
}

func (w *Writer) writeStep(step plan.Step, tctx *template.Context, projectRoot string, policy ConflictPolicy, m *manifest.Manifest) error {
	if err := validatePath(projectRoot, step.Path); err != nil {
		return err
	}

	tmpl, ok := template.Lookup(step.TemplateID)
	if !ok {
		return fmt.Errorf("%w: %s", template.ErrUnknownTemplate, step.TemplateID)
	}

	content, err := w.renderer.Render(tmpl.File, tctx)
	if err != nil {
		return err
	}

	destPath := filepath.Join(projectRoot, filepath.FromSlash(step.Path))

	existed := false
	if _, statErr := w.fs.Stat(destPath); statErr == nil {
		existed = true
		switch policy {
		case SkipExisting:
			m.Add(step.Path, manifest.Skipped)
			return nil
		case FailOnExisting:
			return fmt.Errorf("%w: %s", ErrFileExists, step.Path)
		}
	}

	if err := w.fs.MkdirAll(filepath.Dir(destPath), 0o755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	if err := w.fs.WriteFileAtomic(destPath, content, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", step.Path, err)
	}

	if existed {
		m.Add(step.Path, manifest.Overwritten)
	} else {
		m.Add(step.Path, manifest.Created)
	}
	return nil
}

// validatePath ensures a planned path does not escape projectRoot.
func validatePath(projectRoot, relPath string) error {
	cleaned := filepath.Clean(filepath.FromSlash(relPath))

	if filepath.IsAbs(cleaned) {
		return fmt.Errorf("%w: absolute path %q", ErrPathTraversal, relPath)
	}

	if strings.HasPrefix(cleaned, "..") || strings.Contains(cleaned, string(filepath.Separator)+"..") {
		return fmt.Errorf("%w: parent reference in %q", ErrPathTraversal, relPath)
	}

	absProjectRoot, err := filepath.Abs(projectRoot)
	if err != nil {
		return fmt.Errorf("resolve project root: %w", err)
	}

	absPath := filepath.Join(absProjectRoot, cleaned)
	if !strings.HasPrefix(absPath, absProjectRoot+string(filepath.Separator)) && absPath != absProjectRoot {
		return fmt.Errorf("%w: %q", ErrPathTraversal, relPath)
	}

	return nil
}
