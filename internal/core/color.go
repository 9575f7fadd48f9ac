package core

// Color is a foreground color for a screen cell, stored as an ANSI
// 256-color code so the renderer can emit it directly.
type Color uint8

// Named codes for common game elements.
const (
	ColorDefault      Color = 0
	ColorRed          Color = 1
	ColorGreen        Color = 2
	ColorYellow       Color = 3
	ColorBlue         Color = 4
	ColorMagenta      Color = 5
	ColorCyan         Color = 6
	ColorWhite        Color = 7
	ColorBrightYellow Color = 11
	ColorBrightWhite  Color = 15
	ColorGold         Color = 220
	ColorOrange       Color = 208
	ColorBrown        Color = 130
	ColorGray         Color = 245
	ColorDarkGray     Color = 238
	ColorSkyDay       Color = 117
	ColorSkyNight     Color = 17
)

// FromRGB quantizes an RGB triple to the nearest ANSI-256 code.
// Uses the 6x6x6 color cube (codes 16-231) and the grayscale ramp
// (codes 232-255) for near-gray colors.
func FromRGB(r, g, b uint8) Color {
	// Near-gray colors map better onto the 24-step gray ramp.
	if nearGray(r, g, b) {
		avg := (int(r) + int(g) + int(b)) / 3
		if avg < 4 {
			return 16 // cube black
		}
		if avg > 246 {
			return 231 // cube white
		}
		return Color(232 + (avg-4)/10)
	}
	return Color(16 + 36*cubeIndex(r) + 6*cubeIndex(g) + cubeIndex(b))
}

func nearGray(r, g, b uint8) bool {
	max := Max(int(r), Max(int(g), int(b)))
	min := Min(int(r), Min(int(g), int(b)))
	return max-min < 12
}

// cubeIndex maps a channel value onto the 6 cube levels
// (0, 95, 135, 175, 215, 255).
func cubeIndex(v uint8) int {
	if v < 48 {
		return 0
	}
	if v < 115 {
		return 1
	}
	return (int(v) - 35) / 40
}
