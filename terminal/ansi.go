package terminal

import (
	"strconv"
	"strings"
)

// ANSI sequence fragments
const (
	csi          = "\x1b["
	csiEnd       = "m"
	csiReset     = "\x1b[0m"
	csiFg256     = "\x1b[38;5;" // followed by N;m
	csiFgRGB     = "\x1b[38;2;" // followed by R;G;B;m
	csiAttrBold  = "\x1b[1m"
)

// writeFg writes a foreground color sequence for the given mode
func writeFg(b *strings.Builder, mode ColorMode, c RGB) {
	if mode == ColorModeTrueColor {
		b.WriteString(csiFgRGB)
		b.WriteString(strconv.Itoa(int(c.R)))
		b.WriteByte(';')
		b.WriteString(strconv.Itoa(int(c.G)))
		b.WriteByte(';')
		b.WriteString(strconv.Itoa(int(c.B)))
		b.WriteString(csiEnd)
		return
	}
	b.WriteString(csiFg256)
	b.WriteString(strconv.Itoa(int(RGBTo256(c))))
	b.WriteString(csiEnd)
}

// StripANSI removes SGR sequences, used to compare styled output with plain text
func StripANSI(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if strings.HasPrefix(s[i:], csi) {
			end := strings.Index(s[i:], csiEnd)
			if end >= 0 {
				i += end
				continue
			}
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
