package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	itemStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("36"))
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// HighlightItem renders an item name in bold cyan when stdout is a terminal.
func HighlightItem(item string) string {
	if item == "" || !ansiEnabled() {
		return item
	}
	return itemStyle.Render(item)
}

// Muted renders secondary text dimmed when stdout is a terminal.
func Muted(value string) string {
	if value == "" || !ansiEnabled() {
		return value
	}
	return mutedStyle.Render(value)
}

// TerminalWidth returns the width of stdout, or fallback when stdout is
// not a terminal.
func TerminalWidth(fallback int) int {
	if !StdoutIsTerminal() {
		return fallback
	}
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return fallback
	}
	return width
}

// StdoutIsTerminal reports whether stdout is attached to a terminal.
func StdoutIsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func ansiEnabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return StdoutIsTerminal()
}
