// Package tui renders the CLI's list output using charmbracelet styling.
// It automatically detects terminal capabilities and disables rich output
// when piping or redirecting.
//
// Environment Variables:
//   - NO_COLOR or MIDIMACRO_NO_COLOR: Disable colors (respects https://no-color.org/)
//   - TERM=dumb: Disable colors
package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/macrokit/midimacro/internal/macro"
)

// Color definitions using basic ANSI colors so output degrades gracefully.
var (
	colorGreen = lipgloss.ANSIColor(2)
	colorBlue  = lipgloss.ANSIColor(4)
	colorGray  = lipgloss.ANSIColor(8)
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(colorBlue).Bold(true)
	nameStyle   = lipgloss.NewStyle().Foreground(colorGreen)
	dimStyle    = lipgloss.NewStyle().Foreground(colorGray)
)

// IsTerminal reports whether f is connected to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// isColorDisabled checks if colors are explicitly disabled
func isColorDisabled() bool {
	// Standard NO_COLOR environment variable (https://no-color.org/)
	if os.Getenv("NO_COLOR") != "" {
		return true
	}
	if os.Getenv("MIDIMACRO_NO_COLOR") != "" {
		return true
	}
	if os.Getenv("TERM") == "dumb" {
		return true
	}
	return false
}

// colorized applies style only when stdout is a TTY and colors are allowed.
func colorized(style lipgloss.Style, text string) string {
	if !IsTerminal(os.Stdout) || isColorDisabled() {
		return text
	}
	return style.Render(text)
}

// RenderPortList renders the available MIDI input ports.
func RenderPortList(ports []string) string {
	var sb strings.Builder
	sb.WriteString(colorized(headerStyle, "Available MIDI input ports"))
	sb.WriteString("\n")

	if len(ports) == 0 {
		sb.WriteString(colorized(dimStyle, "  (none found)"))
		sb.WriteString("\n")
		return sb.String()
	}

	for i, port := range ports {
		sb.WriteString(fmt.Sprintf("  %s %s\n",
			colorized(dimStyle, fmt.Sprintf("[%d]", i)),
			colorized(nameStyle, port)))
	}
	return sb.String()
}

// RenderMacroList renders a one-line summary per resolved macro, in
// declaration (= evaluation) order.
func RenderMacroList(macros []*macro.Macro) string {
	var sb strings.Builder
	sb.WriteString(colorized(headerStyle, fmt.Sprintf("Resolved macros (%d)", len(macros))))
	sb.WriteString("\n")

	for i, m := range macros {
		name := m.Name()
		if name == "" {
			name = "(unnamed)"
		}

		details := []string{
			fmt.Sprintf("%d matcher(s)", m.MatcherCount()),
			fmt.Sprintf("%d action(s)", len(m.Actions())),
		}
		if m.PreconditionCount() > 0 {
			details = append(details, fmt.Sprintf("%d precondition(s)", m.PreconditionCount()))
		}
		if m.Scoped() {
			details = append(details, "scoped")
		}

		sb.WriteString(fmt.Sprintf("  %s %s %s\n",
			colorized(dimStyle, fmt.Sprintf("%d.", i+1)),
			colorized(nameStyle, name),
			colorized(dimStyle, strings.Join(details, ", "))))
	}
	return sb.String()
}
