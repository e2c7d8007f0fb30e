package writer

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/forgekit/forge/internal/manifest"
	"github.com/forgekit/forge/internal/plan"
	"github.com/forgekit/forge/internal/spec"
	"github.com/forgekit/forge/internal/template"
)

func domainPlan(t *testing.T) (*plan.Plan, *template.Context) {
	t.Helper()
	d, err := spec.Parse("product", "name:string,price:float64")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	ctx := template.NewContext(
		template.WithModule("example.com/shop"),
		template.WithDomain(d),
	)
	p, err := plan.Build(plan.Request{Kind: plan.KindDomainCRUD}, ctx)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return p, ctx
}

func TestExecuteCreatesAllFiles(t *testing.T) {
	root := t.TempDir()
	p, tctx := domainPlan(t)

	w := NewDefault()
	m, err := w.Execute(context.Background(), p, tctx, root, FailOnExisting)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if got := m.Count(manifest.Created); got != len(p.Steps) {
		t.Errorf("created = %d, want %d", got, len(p.Steps))
	}
	if m.State() != manifest.Completed {
		t.Errorf("state = %v, want Completed", m.State())
	}

	entity := filepath.Join(root, "internal/domain/entity/product.go")
	data, err := os.ReadFile(entity)
	if err != nil {
		t.Fatalf("read entity: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, "type Product struct") {
		t.Errorf("entity missing struct declaration:\n%s", content)
	}
	if !strings.Contains(content, `return "products"`) {
		t.Errorf("entity missing table name:\n%s", content)
	}
}

func TestExecuteFailOnExistingRerun(t *testing.T) {
	root := t.TempDir()
	p, tctx := domainPlan(t)
	w := NewDefault()

	if _, err := w.Execute(context.Background(), p, tctx, root, FailOnExisting); err != nil {
		t.Fatalf("first Execute: %v", err)
	}

	m, err := w.Execute(context.Background(), p, tctx, root, FailOnExisting)
	if err != nil {
		t.Fatalf("second Execute: %v", err)
	}
	if got := m.Count(manifest.Failed); got != len(p.Steps) {
		t.Errorf("failed = %d, want %d", got, len(p.Steps))
	}
	if m.State() != manifest.PartiallyCompleted {
		t.Errorf("state = %v, want PartiallyCompleted", m.State())
	}
	for _, e := range m.Failures() {
		if !errors.Is(e.Err, ErrFileExists) {
			t.Errorf("failure for %s: err = %v, want ErrFileExists", e.Path, e.Err)
		}
	}
}

func TestExecuteSkipExistingIsIdempotent(t *testing.T) {
	root := t.TempDir()
	p, tctx := domainPlan(t)
	w := NewDefault()

	if _, err := w.Execute(context.Background(), p, tctx, root, FailOnExisting); err != nil {
		t.Fatalf("first Execute: %v", err)
	}

	marker := filepath.Join(root, "internal/domain/entity/product.go")
	if err := os.WriteFile(marker, []byte("// user edit\n"), 0o644); err != nil {
		t.Fatalf("write marker: %v", err)
	}

	m, err := w.Execute(context.Background(), p, tctx, root, SkipExisting)
	if err != nil {
		t.Fatalf("second Execute: %v", err)
	}
	if got := m.Count(manifest.Skipped); got != len(p.Steps) {
		t.Errorf("skipped = %d, want %d", got, len(p.Steps))
	}

	data, err := os.ReadFile(marker)
	if err != nil {
		t.Fatalf("read marker: %v", err)
	}
	if string(data) != "// user edit\n" {
		t.Errorf("skip-existing overwrote user file: %q", data)
	}
}

func TestExecuteOverwrite(t *testing.T) {
	root := t.TempDir()
	p, tctx := domainPlan(t)
	w := NewDefault()

	if _, err := w.Execute(context.Background(), p, tctx, root, FailOnExisting); err != nil {
		t.Fatalf("first Execute: %v", err)
	}

	marker := filepath.Join(root, "internal/domain/entity/product.go")
	if err := os.WriteFile(marker, []byte("stale\n"), 0o644); err != nil {
		t.Fatalf("write marker: %v", err)
	}

	m, err := w.Execute(context.Background(), p, tctx, root, Overwrite)
	if err != nil {
		t.Fatalf("second Execute: %v", err)
	}
	if got := m.Count(manifest.Overwritten); got != len(p.Steps) {
		t.Errorf("overwritten = %d, want %d", got, len(p.Steps))
	}

	data, err := os.ReadFile(marker)
	if err != nil {
		t.Fatalf("read marker: %v", err)
	}
	if !strings.Contains(string(data), "type Product struct") {
		t.Errorf("overwrite did not regenerate content")
	}
}

func TestExecuteLeavesNoTempFiles(t *testing.T) {
	root := t.TempDir()
	p, tctx := domainPlan(t)
	w := NewDefault()

	if _, err := w.Execute(context.Background(), p, tctx, root, FailOnExisting); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasPrefix(d.Name(), ".forge-") {
			t.Errorf("leftover temp file: %s", path)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("walk: %v", err)
	}
}

func TestExecuteCancelledContext(t *testing.T) {
	root := t.TempDir()
	p, tctx := domainPlan(t)
	w := NewDefault()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	m, err := w.Execute(ctx, p, tctx, root, FailOnExisting)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if len(m.Entries) != 0 {
		t.Errorf("got %d entries after immediate cancel, want 0", len(m.Entries))
	}
}

// failingFS wraps OSFileSystem but refuses every write.
type failingFS struct {
	OSFileSystem
}

func (failingFS) WriteFileAtomic(path string, data []byte, perm fs.FileMode) error {
	return errors.New("disk full")
}

func TestExecuteContinuesPastWriteFailures(t *testing.T) {
	root := t.TempDir()
	p, tctx := domainPlan(t)

	w := New(template.DefaultRenderer(), failingFS{})
	m, err := w.Execute(context.Background(), p, tctx, root, FailOnExisting)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if got := m.Count(manifest.Failed); got != len(p.Steps) {
		t.Errorf("failed = %d, want %d: the batch should not stop at the first error", got, len(p.Steps))
	}
}

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		relPath string
		wantErr bool
	}{
		{"plain relative", "internal/handler/user_handler.go", false},
		{"dot env file", ".env.example", false},
		{"parent escape", "../outside.go", true},
		{"embedded parent", "internal/../../outside.go", true},
		{"absolute", "/etc/passwd", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validatePath("/tmp/project", tt.relPath)
			if tt.wantErr && !errors.Is(err, ErrPathTraversal) {
				t.Errorf("err = %v, want ErrPathTraversal", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
