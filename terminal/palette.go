package terminal

import "strings"

// Palette paints game messages; a nil or disabled palette passes text through
type Palette struct {
	enabled bool
	mode    ColorMode
}

// NewPalette creates a palette emitting sequences for the given color mode
func NewPalette(mode ColorMode) *Palette {
	return &Palette{enabled: true, mode: mode}
}

// PlainPalette returns a palette that never emits escape sequences
func PlainPalette() *Palette {
	return &Palette{}
}

// Enabled reports whether the palette emits escape sequences
func (p *Palette) Enabled() bool {
	return p != nil && p.enabled
}

func (p *Palette) paint(c RGB, bold bool, s string) string {
	if !p.Enabled() || s == "" {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 24)
	if bold {
		b.WriteString(csiAttrBold)
	}
	writeFg(&b, p.mode, c)
	b.WriteString(s)
	b.WriteString(csiReset)
	return b.String()
}

// Low styles a too-low hint
func (p *Palette) Low(s string) string { return p.paint(RGBLow, false, s) }

// High styles a too-high hint
func (p *Palette) High(s string) string { return p.paint(RGBHigh, false, s) }

// Win styles a correct-guess message
func (p *Palette) Win(s string) string { return p.paint(RGBWin, true, s) }

// Loss styles an out-of-guesses or out-of-time message
func (p *Palette) Loss(s string) string { return p.paint(RGBLoss, true, s) }

// Numberwang styles the decoy message
func (p *Palette) Numberwang(s string) string { return p.paint(RGBNumberwang, true, s) }

// Info styles banners and timers
func (p *Palette) Info(s string) string { return p.paint(RGBInfo, false, s) }
