package terminal

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// Color flag values
const (
	ColorAuto      = "auto"
	ColorNever     = "never"
	Color256       = "256"
	ColorTrueColor = "truecolor"
)

// IsTerminal reports whether f is attached to a terminal
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// ResolvePalette maps a -color flag value to a palette for output file f
// auto paints with the 256-color palette only when f is a terminal
func ResolvePalette(flagValue string, f *os.File) (*Palette, error) {
	switch strings.ToLower(flagValue) {
	case ColorAuto, "":
		if IsTerminal(f) {
			return NewPalette(ColorMode256), nil
		}
		return PlainPalette(), nil
	case ColorNever, "none", "off":
		return PlainPalette(), nil
	case Color256:
		return NewPalette(ColorMode256), nil
	case ColorTrueColor, "true", "24bit":
		return NewPalette(ColorModeTrueColor), nil
	default:
		return nil, fmt.Errorf("unknown color mode %q (want auto, never, 256 or truecolor)", flagValue)
	}
}
