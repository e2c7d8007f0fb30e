// Package config resolves the target project's context: its Go module
// path from go.mod and optional generator defaults from forge.yaml.
// The project root is always an explicit argument; the package never
// consults the working directory or environment.
package config

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	ErrNoGoMod      = errors.New("config: go.mod not found in project root")
	ErrNoModulePath = errors.New("config: module path not found in go.mod")
)

// Defaults are the optional per-project generator settings read from
// forge.yaml at the project root. Every field has a zero-value meaning,
// so a missing file yields usable defaults.
type Defaults struct {
	// OnConflict overrides the conflict policy when no flag is given:
	// "fail", "skip-existing", or "overwrite". Empty means "fail".
	OnConflict string `yaml:"on_conflict"`

	// UIDir overrides the frontend source directory, default "src".
	UIDir string `yaml:"ui_dir"`
}

// Project is the resolved context for one target project.
type Project struct {
	Root     string
	Module   string
	Defaults Defaults
}

// Load resolves the project at root. go.mod is required; forge.yaml is
// optional and malformed YAML is an error rather than a silent default,
// since a typo in a policy name should not flip conflict behavior.
func Load(root string) (*Project, error) {
	root = filepath.Clean(root)

	module, err := modulePath(root)
	if err != nil {
		return nil, err
	}

	defaults, err := loadDefaults(root)
	if err != nil {
		return nil, err
	}

	return &Project{Root: root, Module: module, Defaults: defaults}, nil
}

// LoadUI resolves a project for frontend generation. go.mod is not
// required there; only forge.yaml is consulted.
func LoadUI(root string) (*Project, error) {
	root = filepath.Clean(root)

	defaults, err := loadDefaults(root)
	if err != nil {
		return nil, err
	}

	return &Project{Root: root, Defaults: defaults}, nil
}

// UIDir returns the frontend source directory, default "src".
func (p *Project) UIDir() string {
	if p.Defaults.UIDir != "" {
		return p.Defaults.UIDir
	}
	return "src"
}

// modulePath scans go.mod for the module directive.
func modulePath(root string) (string, error) {
	f, err := os.Open(filepath.Join(root, "go.mod"))
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrNoGoMod, root)
		}
		return "", fmt.Errorf("config: read go.mod: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "module ") || strings.HasPrefix(line, "module\t") {
			path := strings.TrimSpace(strings.TrimPrefix(line, "module"))
			path = strings.Trim(path, `"`)
			if path != "" {
				return path, nil
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("config: scan go.mod: %w", err)
	}
	return "", ErrNoModulePath
}

// loadDefaults reads forge.yaml if present.
func loadDefaults(root string) (Defaults, error) {
	var d Defaults

	data, err := os.ReadFile(filepath.Join(root, "forge.yaml"))
	if err != nil {
		if os.IsNotExist(err) {
			return d, nil
		}
		return d, fmt.Errorf("config: read forge.yaml: %w", err)
	}

	if err := yaml.Unmarshal(data, &d); err != nil {
		return d, fmt.Errorf("config: parse forge.yaml: %w", err)
	}
	return d, nil
}
