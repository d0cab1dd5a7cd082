package graphics

import (
	"fmt"
	"math"
	"strings"
)

// maxByte is the maximum value of a byte, used for color normalization.
const maxByte = 255.0

// Color is stored as ARGB (0xAARRGGBB).
type Color uint32

// RGBA constructs a Color from red, green, blue bytes and alpha (0-1).
func RGBA(r, g, b uint8, a float64) Color {
	return Color(uint32(alpha01ToByte(a))<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGB constructs an opaque Color from red, green, blue bytes.
func RGB(r, g, b uint8) Color {
	return Color(0xFF000000 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// ParseHex parses a #rrggbb or #rgb color string (leading '#' optional).
func ParseHex(s string) (Color, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(s) {
	case 3:
		var r, g, b uint8
		if _, err := fmt.Sscanf(s, "%1x%1x%1x", &r, &g, &b); err != nil {
			return 0, fmt.Errorf("invalid hex color %q: %w", s, err)
		}
		return RGB(r*17, g*17, b*17), nil
	case 6:
		var r, g, b uint8
		if _, err := fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b); err != nil {
			return 0, fmt.Errorf("invalid hex color %q: %w", s, err)
		}
		return RGB(r, g, b), nil
	default:
		return 0, fmt.Errorf("invalid hex color %q: want 3 or 6 digits", s)
	}
}

// Red returns the red component byte.
func (c Color) Red() uint8 { return uint8(c >> 16) }

// Green returns the green component byte.
func (c Color) Green() uint8 { return uint8(c >> 8) }

// Blue returns the blue component byte.
func (c Color) Blue() uint8 { return uint8(c) }

// Alpha returns the alpha component as a value from 0.0 (transparent) to 1.0 (opaque).
func (c Color) Alpha() float64 {
	return float64(uint8(c>>24)) / maxByte
}

// WithAlpha returns a copy of the color with the given alpha (0-1).
func (c Color) WithAlpha(a float64) Color {
	return Color(uint32(alpha01ToByte(a))<<24 | uint32(c)&0x00FFFFFF)
}

// CSS returns the CSS representation of the color: "#rrggbb" when fully
// opaque, "rgba(r, g, b, a)" otherwise.
func (c Color) CSS() string {
	if uint8(c>>24) == 0xFF {
		return fmt.Sprintf("#%02x%02x%02x", c.Red(), c.Green(), c.Blue())
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.Red(), c.Green(), c.Blue(), FormatNumber(c.Alpha()))
}

// String returns the CSS representation.
func (c Color) String() string { return c.CSS() }

// alpha01ToByte converts a 0-1 alpha to 0-255 with proper rounding.
func alpha01ToByte(a float64) uint8 {
	return uint8(math.Round(clamp01(a) * 255))
}

// clamp01 clamps a value to the range [0, 1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
