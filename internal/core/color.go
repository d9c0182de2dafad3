package core

import "fmt"

// RGB is a 24-bit color used by screen cells and the pixel canvas.
type RGB struct {
	R, G, B uint8
}

// Predefined colors for HUD and fallback drawing.
var (
	ColorBlack    = RGB{0, 0, 0}
	ColorWhite    = RGB{255, 255, 255}
	ColorGray     = RGB{128, 128, 128}
	ColorRed      = RGB{220, 50, 47}
	ColorYellow   = RGB{240, 200, 60}
	ColorNight    = RGB{10, 10, 15}
	ColorHUDText  = RGB{200, 200, 210}
	ColorHUDPanel = RGB{25, 25, 35}
)

// Hex returns the color in #rrggbb form.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseHex parses "#rrggbb" or "rrggbb". The second return is false on malformed input.
func ParseHex(s string) (RGB, bool) {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	if len(s) != 6 {
		return RGB{}, false
	}
	var c RGB
	if _, err := fmt.Sscanf(s, "%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
		return RGB{}, false
	}
	return c, true
}
