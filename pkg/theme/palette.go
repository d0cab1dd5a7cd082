// Package theme supplies the light/dark color palettes consumed by the
// surface style computations and an explicit change-notification source
// for brightness switches.
//
// The palette is always passed into style computations as a parameter;
// nothing in this module reads ambient global state. A view layer
// subscribes once at its composition boundary via [Controller.AddListener]
// and recomputes styles when notified.
package theme

import "github.com/neu-ui/neu/pkg/graphics"

// glowAlpha is the opacity of the soft centered glow layer derived from
// the palette's dark shadow color.
const glowAlpha = 0.6

// Palette holds the color tokens of a neumorphic theme. The two shadow
// tokens simulate a light source above and to the left of the surface:
// ShadowDark falls toward the bottom-right, ShadowLight highlights the
// top-left.
type Palette struct {
	// Surface is the background color surfaces are extruded from.
	Surface graphics.Color
	// ShadowDark is the directional shadow color.
	ShadowDark graphics.Color
	// ShadowLight is the opposite-corner highlight color.
	ShadowLight graphics.Color
}

// Glow returns the translucent ambient glow color derived from ShadowDark.
func (p Palette) Glow() graphics.Color {
	return p.ShadowDark.WithAlpha(glowAlpha)
}

// DefaultLightPalette returns the light theme tokens.
func DefaultLightPalette() Palette {
	return Palette{
		Surface:     graphics.RGB(0xe8, 0xe8, 0xe8),
		ShadowDark:  graphics.RGB(0xd1, 0xd1, 0xd1),
		ShadowLight: graphics.RGB(0xff, 0xff, 0xff),
	}
}

// DefaultDarkPalette returns the dark theme tokens.
func DefaultDarkPalette() Palette {
	return Palette{
		Surface:     graphics.RGB(0x25, 0x25, 0x25),
		ShadowDark:  graphics.RGB(0x15, 0x15, 0x15),
		ShadowLight: graphics.RGB(0x35, 0x35, 0x35),
	}
}

// PaletteFor returns the default palette for the given brightness.
func PaletteFor(b Brightness) Palette {
	if b == BrightnessDark {
		return DefaultDarkPalette()
	}
	return DefaultLightPalette()
}
