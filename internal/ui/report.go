package ui

import (
	"fmt"
	"io"

	"github.com/forgekit/forge/internal/manifest"
)

// Report writes the per-file outcomes and the summary line for one
// generation run.
func Report(w io.Writer, theme *Theme, m *manifest.Manifest) {
	for _, e := range m.Entries {
		switch e.Outcome {
		case manifest.Created:
			fmt.Fprintf(w, "%s %s\n", theme.Success("✓ created"), e.Path)
		case manifest.Overwritten:
			fmt.Fprintf(w, "%s %s\n", theme.Warning("↻ overwritten"), e.Path)
		case manifest.Skipped:
			fmt.Fprintf(w, "%s %s\n", theme.Muted("- skipped"), e.Path)
		case manifest.Failed:
			fmt.Fprintf(w, "%s %s: %v\n", theme.Error("✗ failed"), e.Path, e.Err)
		}
	}

	summary := fmt.Sprintf("%d created, %d overwritten, %d skipped, %d failed",
		m.Count(manifest.Created),
		m.Count(manifest.Overwritten),
		m.Count(manifest.Skipped),
		m.Count(manifest.Failed),
	)

	// Aborted runs fail before a manifest exists, so only the two
	// post-write states reach the report.
	if m.State() == manifest.Completed {
		fmt.Fprintf(w, "\n%s (%s)\n", theme.Success("completed"), summary)
	} else {
		fmt.Fprintf(w, "\n%s (%s)\n", theme.Warning("partially completed"), summary)
	}
}
