package style

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Palette colours text for a single writer
type Palette struct {
	success lipgloss.Style
	problem lipgloss.Style
	warning lipgloss.Style
	info    lipgloss.Style
}

// NewPalette builds the styles for w. When color is false every style renders
// plain text, whatever the terminal supports.
func NewPalette(w io.Writer, color bool) *Palette {
	renderer := lipgloss.NewRenderer(w)
	if color {
		renderer.SetColorProfile(termenv.ANSI)
	} else {
		renderer.SetColorProfile(termenv.Ascii)
	}

	return &Palette{
		success: renderer.NewStyle().Foreground(SuccessColor),
		problem: renderer.NewStyle().Foreground(ProblemColor),
		warning: renderer.NewStyle().Foreground(WarningColor),
		info:    renderer.NewStyle().Foreground(InfoColor),
	}
}

// Success renders s in the success colour
func (p *Palette) Success(s string) string { return p.success.Render(s) }

// Problem renders s in the problem colour
func (p *Palette) Problem(s string) string { return p.problem.Render(s) }

// Warning renders s in the warning colour
func (p *Palette) Warning(s string) string { return p.warning.Render(s) }

// Info renders s in the info colour
func (p *Palette) Info(s string) string { return p.info.Render(s) }
