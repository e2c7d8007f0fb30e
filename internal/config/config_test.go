package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestLoadResolvesModulePath(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "go.mod", "module github.com/acme/shop\n\ngo 1.24\n")

	p, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if p.Module != "github.com/acme/shop" {
		t.Errorf("module = %q", p.Module)
	}
	if p.Defaults.OnConflict != "" {
		t.Errorf("defaults should be zero without forge.yaml, got %+v", p.Defaults)
	}
}

func TestLoadQuotedModulePath(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "go.mod", "module \"github.com/acme/shop\"\n")

	p, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if p.Module != "github.com/acme/shop" {
		t.Errorf("module = %q", p.Module)
	}
}

func TestLoadMissingGoMod(t *testing.T) {
	_, err := Load(t.TempDir())
	if !errors.Is(err, ErrNoGoMod) {
		t.Fatalf("err = %v, want ErrNoGoMod", err)
	}
}

func TestLoadGoModWithoutModuleLine(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "go.mod", "go 1.24\n\nrequire example.com/x v1.0.0\n")

	_, err := Load(dir)
	if !errors.Is(err, ErrNoModulePath) {
		t.Fatalf("err = %v, want ErrNoModulePath", err)
	}
}

func TestLoadForgeYAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "go.mod", "module example.com/app\n")
	writeFile(t, dir, "forge.yaml", "on_conflict: skip-existing\nui_dir: web\n")

	p, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if p.Defaults.OnConflict != "skip-existing" {
		t.Errorf("on_conflict = %q", p.Defaults.OnConflict)
	}
	if p.Defaults.UIDir != "web" {
		t.Errorf("ui_dir = %q", p.Defaults.UIDir)
	}
}

func TestLoadMalformedForgeYAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "go.mod", "module example.com/app\n")
	writeFile(t, dir, "forge.yaml", "on_conflict: [not, a, string\n")

	if _, err := Load(dir); err == nil {
		t.Fatal("expected error for malformed forge.yaml")
	}
}
