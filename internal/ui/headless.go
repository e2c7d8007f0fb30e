package ui

import (
	"os"

	"github.com/mattn/go-isatty"
)

// HeadlessManager detects whether the UI should run without interactive
// components. Detection follows the TTY state of os.Stdin and can be
// overridden, which pipelines and tests use.
type HeadlessManager struct {
	forced *bool
}

// NewHeadlessManager creates a HeadlessManager using TTY auto-detection.
func NewHeadlessManager() *HeadlessManager {
	return &HeadlessManager{}
}

// IsHeadless reports whether interactive components should be skipped.
func (h *HeadlessManager) IsHeadless() bool {
	if h.forced != nil {
		return *h.forced
	}
	return !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd())
}

// ForceHeadless overrides TTY detection. Pass true to force headless
// mode, or false to force interactive mode regardless of TTY state.
func (h *HeadlessManager) ForceHeadless(force bool) {
	h.forced = &force
}

// ClearForce reverts to automatic TTY detection.
func (h *HeadlessManager) ClearForce() {
	h.forced = nil
}
