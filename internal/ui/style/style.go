// Package style provides shared UI styling primitives including brand colors
// and icons for consistent visual presentation across the CLI.
package style

import "github.com/charmbracelet/lipgloss"

// Brand Colors.
var (
	Teal   = lipgloss.Color("#14B8A6")
	Slate  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Dot     = "●"
	Circle  = "○"
)

// Styles shared by command output.
var (
	// Active marks the currently selected SDK version.
	Active = lipgloss.NewStyle().Foreground(Green).Bold(true)

	// Muted renders secondary detail such as locations.
	Muted = lipgloss.NewStyle().Foreground(Slate)

	// Invalid renders entries whose manifest did not resolve.
	Invalid = lipgloss.NewStyle().Foreground(Red)
)
