package terminal

// ColorMode indicates terminal color capability
type ColorMode uint8

const (
	ColorMode256       ColorMode = iota // xterm-256 palette
	ColorModeTrueColor                  // 24-bit RGB
)

// RGB represents a 24-bit color
type RGB struct {
	R, G, B uint8
}

// Equal returns true if colors match
func (c RGB) Equal(other RGB) bool {
	return c.R == other.R && c.G == other.G && c.B == other.B
}

// Color cube values for 6x6x6 palette (indices 16-231)
// Levels: 0, 95, 135, 175, 215, 255
var cubeValues = [6]uint8{0, 95, 135, 175, 215, 255}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// cubeLevel maps 0-255 to nearest cube index 0-5
func cubeLevel(v uint8) uint8 {
	best := 0
	bestDist := abs(int(v) - int(cubeValues[0]))
	for j := 1; j < 6; j++ {
		d := abs(int(v) - int(cubeValues[j]))
		if d < bestDist {
			bestDist = d
			best = j
		}
	}
	return uint8(best)
}

// RGBTo256 converts RGB to nearest 256-color palette index
// Near-gray colors are matched against the 232-255 grayscale ramp as well as the cube
func RGBTo256(c RGB) uint8 {
	r, g, b := c.R, c.G, c.B
	cr, cg, cb := cubeLevel(r), cubeLevel(g), cubeLevel(b)
	cubeIdx := 16 + 36*cr + 6*cg + cb

	gray := (int(r) + int(g) + int(b)) / 3
	maxDiff := max(abs(int(r)-gray), abs(int(g)-gray), abs(int(b)-gray))
	if maxDiff >= 10 {
		return cubeIdx
	}

	if gray < 4 {
		return 16
	}
	if gray > 243 {
		return 231
	}

	// Grayscale ramp: 232-255 maps to luminance 8, 18, 28, ..., 238
	step := (gray - 8) / 10
	if step < 0 {
		step = 0
	}
	if step > 23 {
		step = 23
	}
	grayIdx := uint8(232 + step)
	grayLevel := 8 + step*10
	grayDist := abs(int(r)-grayLevel) + abs(int(g)-grayLevel) + abs(int(b)-grayLevel)

	cubeDist := abs(int(r)-int(cubeValues[cr])) +
		abs(int(g)-int(cubeValues[cg])) +
		abs(int(b)-int(cubeValues[cb]))

	if grayDist < cubeDist {
		return grayIdx
	}
	return cubeIdx
}

// Game palette
var (
	RGBLow        = RGB{95, 175, 255}  // too low hint
	RGBHigh       = RGB{255, 135, 95}  // too high hint
	RGBWin        = RGB{95, 215, 95}   // correct guess
	RGBLoss       = RGB{215, 95, 95}   // out of guesses / time
	RGBNumberwang = RGB{255, 215, 0}   // decoy hit
	RGBInfo       = RGB{175, 175, 175} // range banner, timers
)
