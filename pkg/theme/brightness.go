package theme

import "fmt"

// Brightness indicates whether a theme is light or dark.
type Brightness int

const (
	// BrightnessLight selects the light palette.
	BrightnessLight Brightness = iota
	// BrightnessDark selects the dark palette.
	BrightnessDark
)

// String returns a human-readable representation of the brightness.
func (b Brightness) String() string {
	switch b {
	case BrightnessLight:
		return "light"
	case BrightnessDark:
		return "dark"
	default:
		return fmt.Sprintf("Brightness(%d)", int(b))
	}
}

// ParseBrightness converts "light" or "dark" into a Brightness.
func ParseBrightness(s string) (Brightness, error) {
	switch s {
	case "light":
		return BrightnessLight, nil
	case "dark":
		return BrightnessDark, nil
	default:
		return BrightnessLight, fmt.Errorf("unknown brightness %q: want light or dark", s)
	}
}
