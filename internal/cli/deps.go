// Package cli provides the Cobra command tree for the forge generator.
// This file defines the Dependencies struct (Composition Root) that
// wires rendering, writing and terminal output together.
package cli

import (
	"github.com/forgekit/forge/internal/ui"
	"github.com/forgekit/forge/internal/writer"
)

// Dependencies holds the services CLI commands use. It is the only
// place where concrete types are instantiated; commands reach them
// through the package-level instance.
type Dependencies struct {
	Writer   *writer.Writer
	Theme    *ui.Theme
	Headless *ui.HeadlessManager
	Progress ui.Progress
}

// deps is the global dependencies instance, initialized by
// InitDependencies.
var deps *Dependencies

// InitDependencies creates and wires the CLI dependencies. It should be
// called once during startup, before any command runs.
func InitDependencies() {
	headless := ui.NewHeadlessManager()
	theme := ui.NewTheme(ui.ThemeConfig{NoColor: noColor})
	if noColor {
		headless.ForceHeadless(true)
	}

	deps = &Dependencies{
		Writer:   writer.NewDefault(),
		Theme:    theme,
		Headless: headless,
		Progress: ui.NewProgress(theme, headless),
	}
}

// GetDeps returns the current Dependencies instance, or nil before
// InitDependencies runs.
func GetDeps() *Dependencies {
	return deps
}

// SetDeps replaces the global dependencies (used for testing).
func SetDeps(d *Dependencies) {
	deps = d
}
