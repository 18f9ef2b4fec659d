package style

import (
	"os"
	"strings"

	"github.com/arthur-debert/builder-doctor/pkg/config"
	doctorerrors "github.com/arthur-debert/builder-doctor/pkg/errors"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// ColorMode is the user's colour preference
type ColorMode int

const (
	// ColorAuto colours terminals that support it
	ColorAuto ColorMode = iota
	// ColorAlways colours even when piped
	ColorAlways
	// ColorNever never colours
	ColorNever
)

// String returns the string representation of the mode
func (m ColorMode) String() string {
	switch m {
	case ColorAuto:
		return config.ColorAuto
	case ColorAlways:
		return config.ColorAlways
	case ColorNever:
		return config.ColorNever
	default:
		return "unknown"
	}
}

// ParseColorMode parses auto, always or never
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case config.ColorAuto, "":
		return ColorAuto, nil
	case config.ColorAlways, "on":
		return ColorAlways, nil
	case config.ColorNever, "off":
		return ColorNever, nil
	default:
		return ColorAuto, doctorerrors.Newf(doctorerrors.ErrInvalidInput, "unknown color mode: %s", s)
	}
}

// Enabled resolves the mode for output
func (m ColorMode) Enabled(output *os.File) bool {
	switch m {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return DetectColor(output)
	}
}

// DetectColor reports whether output is a terminal that takes colours
func DetectColor(output *os.File) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	// Piped or redirected
	if !isatty.IsTerminal(output.Fd()) && !isatty.IsCygwinTerminal(output.Fd()) {
		return false
	}

	return termenv.NewOutput(output).EnvColorProfile() != termenv.Ascii
}
