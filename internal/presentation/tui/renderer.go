package tui

import (
	"github.com/charmbracelet/glamour"
)

// NewRenderer returns a function that renders markdown using glamour.
// It auto-detects the terminal background; used for the --pretty summary.
func NewRenderer() func(string) (string, error) {
	r, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
	)

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}
