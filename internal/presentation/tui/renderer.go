package tui

import (
	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"
)

// NewMarkdownRenderer returns a function that renders markdown using
// glamour, auto-detecting light/dark terminal backgrounds.
func NewMarkdownRenderer() func(string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
	)
	if err != nil {
		// Fall back to raw markdown rather than failing the command.
		return func(markdown string) (string, error) { return markdown, nil }
	}
	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}

// StateLabel renders a state name for cycle traces, highlighting final
// states.
func StateLabel(name string, final bool) string {
	p := termenv.ColorProfile()
	if final {
		return termenv.String(name).Foreground(p.Color("#22c55e")).Bold().String()
	}
	return termenv.String(name).Foreground(p.Color("#38bdf8")).String()
}

// TransitionLabel renders a fired transition name for cycle traces.
func TransitionLabel(name string) string {
	p := termenv.ColorProfile()
	return termenv.String(name).Foreground(p.Color("#f59e0b")).String()
}
