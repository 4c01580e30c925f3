// Package style provides shared UI styling primitives including brand colors
// and icons for consistent visual presentation across the CLI.
package style

import "github.com/charmbracelet/lipgloss"

// Brand Colors.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
	Blue   = lipgloss.Color("#2563EB")
)

// ChannelColor returns the color used for a release channel name.
func ChannelColor(development bool) lipgloss.Color {
	if development {
		return Yellow
	}
	return Green
}

// Icons.
const (
	Cross   = "✗"
	Warning = "!"
	Dot     = "●"
	Arrow   = "→"
)

// Rule is the separator printed between sections of the default command.
const Rule = "------------------------------------------------------------------------------------------"
