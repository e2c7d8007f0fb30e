package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"
)

// RenderMarkdown renders markdown to w. In headless or no-color mode
// the raw markdown is written unchanged so output stays greppable.
func RenderMarkdown(w io.Writer, theme *Theme, hm *HeadlessManager, markdown string) error {
	if hm.IsHeadless() || theme.NoColor {
		_, err := fmt.Fprintln(w, markdown)
		return err
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return fmt.Errorf("ui: create markdown renderer: %w", err)
	}

	out, err := renderer.Render(markdown)
	if err != nil {
		return fmt.Errorf("ui: render markdown: %w", err)
	}
	_, err = fmt.Fprint(w, out)
	return err
}
