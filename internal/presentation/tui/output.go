package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/aretw0/cadenza/pkg/domain"
)

// ColorEnabled reports whether stdout is a terminal; non-terminal output
// (pipes, CI logs) is kept plain.
func ColorEnabled() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// FormatProgression renders the progression one chord per line, with the
// symbol highlighted and a tritone marker where a root was substituted.
func FormatProgression(prog *domain.Progression, color bool) string {
	p := termenv.ColorProfile()
	if !color {
		p = termenv.Ascii
	}

	var sb strings.Builder
	for i, chord := range prog.Chords {
		symbol := p.String(fmt.Sprintf("%-8s", chord.Symbol)).Foreground(p.Color("#818cf8")).Bold()
		pitches := p.String(strings.Join(chord.Pitches, " ")).Foreground(p.Color("#a78bfa"))

		sb.WriteString(fmt.Sprintf("%2d. %s %s", i+1, symbol, pitches))
		if prog.Steps[i].Tritone {
			sb.WriteString(p.String("  (tritone)").Foreground(p.Color("#fb7185")).String())
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// MarkdownSummary builds a markdown document describing the progression,
// for rendering via NewRenderer.
func MarkdownSummary(prog *domain.Progression, cfg domain.Config) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("# Progression in %s %s\n\n", cfg.ScaleRoot, cfg.ScaleName))
	sb.WriteString("| # | Vertex | Chord | Pitches |\n")
	sb.WriteString("|---|--------|-------|--------|\n")
	for i, chord := range prog.Chords {
		vertex := fmt.Sprintf("%d", prog.Steps[i].Vertex)
		if prog.Steps[i].Tritone {
			vertex += " (tritone)"
		}
		sb.WriteString(fmt.Sprintf("| %d | %s | %s | %s |\n",
			i+1, vertex, chord.Symbol, strings.Join(chord.Pitches, " ")))
	}
	return sb.String()
}
