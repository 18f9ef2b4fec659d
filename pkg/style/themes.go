package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Severity colours use the basic ANSI palette so they follow the user's
// terminal theme
var (
	SuccessColor = lipgloss.Color("2") // Green
	ProblemColor = lipgloss.Color("1") // Red
	WarningColor = lipgloss.Color("3") // Yellow
	InfoColor    = lipgloss.Color("4") // Blue
)

// Markers prefix each report line
const (
	SuccessMarker = "✓"
	ProblemMarker = "✗"
	WarningMarker = "⚠"
	InfoMarker    = "ℹ"
)
