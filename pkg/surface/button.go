package surface

import (
	"time"

	"github.com/neu-ui/neu/pkg/graphics"
	"github.com/neu-ui/neu/pkg/style"
	"github.com/neu-ui/neu/pkg/theme"
)

// Button shadow magnitudes at full intensity, in pixels.
const (
	buttonShadowOffset = 16
	buttonShadowBlur   = 32
	buttonGlowBlur     = 15

	// The inset (pressed) family uses fixed magnitudes so pressing
	// feels the same anywhere on the page.
	buttonInsetOffset   = 12
	buttonInsetBlur     = 24
	buttonInsetGlowBlur = 10
)

// Rest-state scale factors.
const (
	hiddenScale  = 0.95
	pressedScale = 0.98
)

// contentFadeDuration is the opacity transition of the inner icon+text
// once the reveal delay has elapsed.
const contentFadeDuration = 700 * time.Millisecond

// ButtonState is the interaction snapshot a button style derives from.
type ButtonState struct {
	Pressed  bool
	Visible  bool
	Progress float64
}

// ButtonStyle computes the button's style for the given state, variant
// and palette.
//
// The transform has three discrete rest states: 0.95 hidden, 0.98
// pressed, 1.0 otherwise. While visible the box-shadow value is always
// emitted, even when scroll progress has faded every magnitude to zero.
func ButtonStyle(state ButtonState, variant Variant, palette theme.Palette) style.Style {
	s := style.Style{
		Opacity:    1,
		Transition: style.DefaultTransition(),
	}

	switch {
	case !state.Visible:
		s.Transform = style.Scale(hiddenScale)
		s.Opacity = 0
		s.BoxShadow = graphics.ComposeShadows(nil)
		return s
	case state.Pressed:
		s.Transform = style.Scale(pressedScale)
	default:
		s.Transform = style.Scale(1)
	}

	s.BoxShadow = graphics.ComposeShadows(ButtonShadowLayers(state, variant, palette))
	return s
}

// ButtonShadowLayers returns the raw shadow layers behind ButtonStyle,
// for renderers that composite layers directly (see pkg/preview).
// A hidden button has no layers.
func ButtonShadowLayers(state ButtonState, variant Variant, palette theme.Palette) []graphics.ShadowLayer {
	if !state.Visible {
		return nil
	}

	factor := variant.subtleFactor()
	if state.Pressed {
		return graphics.NeumorphicLayers(
			buttonInsetOffset*factor,
			buttonInsetBlur*factor,
			buttonInsetGlowBlur*factor,
			palette.ShadowDark, palette.ShadowLight, palette.Glow(),
			true,
		)
	}

	intensity := shadowIntensity(variant.baseIntensity(), variant.scrollCoefficient(), state.Progress)
	return graphics.NeumorphicLayers(
		buttonShadowOffset*intensity*factor,
		buttonShadowBlur*intensity*factor,
		buttonGlowBlur*intensity*factor,
		palette.ShadowDark, palette.ShadowLight, palette.Glow(),
		false,
	)
}

// ContentStyle fades the button's inner content in and out. The boolean
// comes from an [interaction.Reveal] gate, which delays the flip to true
// by 500ms after the button becomes visible.
func ContentStyle(contentVisible bool) style.Style {
	opacity := 0.0
	if contentVisible {
		opacity = 1
	}
	return style.Style{
		Transform: "none",
		BoxShadow: "none",
		Opacity:   opacity,
		Transition: style.Transition{
			Properties: []string{"opacity"},
			Duration:   contentFadeDuration,
		},
	}
}
