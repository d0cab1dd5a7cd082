package surface

import (
	"github.com/neu-ui/neu/pkg/graphics"
	"github.com/neu-ui/neu/pkg/style"
	"github.com/neu-ui/neu/pkg/theme"
)

// Card shadow magnitudes at full intensity, in pixels. Cards are larger
// surfaces than buttons and cast proportionally larger shadows.
const (
	cardShadowOffset = 32
	cardShadowBlur   = 64
	cardGlowBlur     = 24

	cardInsetOffset   = 24
	cardInsetBlur     = 48
	cardInsetGlowBlur = 18
)

// Card intensity parameters.
const (
	cardScrollCoefficient = 1.2
	cardScrollShrink      = 0.02
	cardHoverScale        = 1.02
	cardHoverIntensity    = 0.8
	cardRestIntensity     = 0.6
)

// CardState is the interaction snapshot a card style derives from.
type CardState struct {
	Pressed  bool
	Hovered  bool
	Visible  bool
	Progress float64
}

// CardPressStyle computes the card's press treatment.
//
// Unpressed visible cards shrink slightly as they scroll away from the
// viewport center (scale 1 − 0.02·progress) while the outer shadow fades.
// The pressed inset family uses fixed magnitudes, so the pressed-in look
// stays constant regardless of scroll.
func CardPressStyle(state CardState, palette theme.Palette) style.Style {
	s := style.Style{
		Opacity:    1,
		Transition: style.DefaultTransition(),
	}

	switch {
	case state.Pressed:
		s.Transform = style.Scale(pressedScale)
	case state.Visible:
		s.Transform = style.Scale(1 - cardScrollShrink*state.Progress)
	default:
		s.Transform = style.Scale(hiddenScale)
	}

	if !state.Visible {
		s.Opacity = 0
	}
	s.BoxShadow = graphics.ComposeShadows(CardPressShadowLayers(state, palette))
	return s
}

// CardPressShadowLayers returns the raw layers behind CardPressStyle.
// A hidden card has no layers.
func CardPressShadowLayers(state CardState, palette theme.Palette) []graphics.ShadowLayer {
	if !state.Visible {
		return nil
	}

	if state.Pressed {
		return graphics.NeumorphicLayers(
			cardInsetOffset, cardInsetBlur, cardInsetGlowBlur,
			palette.ShadowDark, palette.ShadowLight, palette.Glow(),
			true,
		)
	}

	intensity := shadowIntensity(1, cardScrollCoefficient, state.Progress)
	return graphics.NeumorphicLayers(
		cardShadowOffset*intensity,
		cardShadowBlur*intensity,
		cardGlowBlur*intensity,
		palette.ShadowDark, palette.ShadowLight, palette.Glow(),
		false,
	)
}

// CardHoverStyle computes the card's hover treatment: a slight grow on
// hover with a brighter outer shadow, and never an inset family (hover
// has no pressed-in look).
//
// The non-visible arm still derives its scale from scroll progress even
// though the card is fully transparent at that point, so the shrink is
// already in place when it fades back in.
func CardHoverStyle(state CardState, palette theme.Palette) style.Style {
	s := style.Style{
		Opacity:    1,
		Transition: style.DefaultTransition(),
	}

	if state.Visible {
		if state.Hovered {
			s.Transform = style.Scale(cardHoverScale)
		} else {
			s.Transform = style.Scale(1)
		}
	} else {
		s.Transform = style.Scale(1 - cardScrollShrink*state.Progress)
		s.Opacity = 0
	}

	s.BoxShadow = graphics.ComposeShadows(CardHoverShadowLayers(state, palette))
	return s
}

// CardHoverShadowLayers returns the raw layers behind CardHoverStyle:
// always an outer family, never inset.
func CardHoverShadowLayers(state CardState, palette theme.Palette) []graphics.ShadowLayer {
	if !state.Visible {
		return nil
	}

	base := cardRestIntensity
	if state.Hovered {
		base = cardHoverIntensity
	}
	intensity := shadowIntensity(base, cardScrollCoefficient, state.Progress)
	return graphics.NeumorphicLayers(
		cardShadowOffset*intensity,
		cardShadowBlur*intensity,
		cardGlowBlur*intensity,
		palette.ShadowDark, palette.ShadowLight, palette.Glow(),
		false,
	)
}
