package surface

import (
	"strconv"
	"strings"
	"testing"

	"github.com/neu-ui/neu/pkg/theme"
)

func lightPalette() theme.Palette { return theme.DefaultLightPalette() }
func darkPalette() theme.Palette  { return theme.DefaultDarkPalette() }

// leadingMagnitude parses the x offset of the first shadow layer.
func leadingMagnitude(t *testing.T, shadow string) float64 {
	t.Helper()
	fields := strings.Fields(shadow)
	if len(fields) == 0 {
		t.Fatalf("empty shadow %q", shadow)
	}
	v, err := strconv.ParseFloat(strings.TrimSuffix(fields[0], "px"), 64)
	if err != nil {
		t.Fatalf("unparseable shadow %q: %v", shadow, err)
	}
	return v
}

func TestButtonStyle_ScaleInvariants(t *testing.T) {
	tests := []struct {
		name  string
		state ButtonState
		want  string
	}{
		{"hidden", ButtonState{Visible: false}, "scale(0.95)"},
		{"hidden pressed", ButtonState{Visible: false, Pressed: true}, "scale(0.95)"},
		{"pressed", ButtonState{Visible: true, Pressed: true}, "scale(0.98)"},
		{"rest", ButtonState{Visible: true}, "scale(1)"},
		{"rest at full progress", ButtonState{Visible: true, Progress: 1}, "scale(1)"},
	}
	for _, tt := range tests {
		s := ButtonStyle(tt.state, VariantDefault, lightPalette())
		if s.Transform != tt.want {
			t.Errorf("%s: transform = %q, want %q", tt.name, s.Transform, tt.want)
		}
	}
}

func TestButtonStyle_RestLightFullIntensity(t *testing.T) {
	s := ButtonStyle(ButtonState{Visible: true, Progress: 0}, VariantDefault, lightPalette())

	if s.Transform != "scale(1)" {
		t.Errorf("transform = %q, want scale(1)", s.Transform)
	}
	if s.Opacity != 1 {
		t.Errorf("opacity = %v, want 1", s.Opacity)
	}
	want := "16px 16px 32px #d1d1d1, -16px -16px 32px #ffffff, 0px 0px 15px rgba(209, 209, 209, 0.6)"
	if s.BoxShadow != want {
		t.Errorf("box-shadow\n got: %q\nwant: %q", s.BoxShadow, want)
	}
}

func TestButtonStyle_FullProgressCollapsesButEmits(t *testing.T) {
	// intensity = max(1 - 1*1.2, 0) = 0: every magnitude collapses, but
	// the shadow string is still emitted while the button is visible.
	s := ButtonStyle(ButtonState{Visible: true, Progress: 1}, VariantDefault, lightPalette())

	if s.BoxShadow == "none" || s.BoxShadow == "" {
		t.Fatalf("visible button must keep a box-shadow value, got %q", s.BoxShadow)
	}
	want := "0px 0px 0px #d1d1d1, 0px 0px 0px #ffffff, 0px 0px 0px rgba(209, 209, 209, 0.6)"
	if s.BoxShadow != want {
		t.Errorf("box-shadow\n got: %q\nwant: %q", s.BoxShadow, want)
	}
}

func TestButtonStyle_Hidden(t *testing.T) {
	s := ButtonStyle(ButtonState{Visible: false}, VariantDefault, lightPalette())
	if s.BoxShadow != "none" {
		t.Errorf("hidden button box-shadow = %q, want none", s.BoxShadow)
	}
	if s.Opacity != 0 {
		t.Errorf("hidden button opacity = %v, want 0", s.Opacity)
	}
}

func TestButtonStyle_PressedInsetIgnoresProgress(t *testing.T) {
	at := func(progress float64) string {
		return ButtonStyle(ButtonState{Visible: true, Pressed: true, Progress: progress},
			VariantDefault, lightPalette()).BoxShadow
	}

	zero := at(0)
	if !strings.HasPrefix(zero, "inset ") {
		t.Fatalf("pressed button should use the inset family, got %q", zero)
	}
	if zero != at(0.5) || zero != at(1) {
		t.Error("pressed inset shadow must not fade with scroll progress")
	}
	want := "inset 12px 12px 24px #d1d1d1, inset -12px -12px 24px #ffffff, inset 0px 0px 10px rgba(209, 209, 209, 0.6)"
	if zero != want {
		t.Errorf("inset shadow\n got: %q\nwant: %q", zero, want)
	}
}

func TestButtonStyle_SubtleVariant(t *testing.T) {
	// Subtle: base 0.5, scroll coefficient 0.6, magnitudes halved.
	s := ButtonStyle(ButtonState{Visible: true, Progress: 0}, VariantSubtle, lightPalette())
	// intensity 0.5, factor 0.5: offset 16*0.25 = 4, blur 8, glow 3.75.
	want := "4px 4px 8px #d1d1d1, -4px -4px 8px #ffffff, 0px 0px 3.75px rgba(209, 209, 209, 0.6)"
	if s.BoxShadow != want {
		t.Errorf("subtle box-shadow\n got: %q\nwant: %q", s.BoxShadow, want)
	}

	// Subtle fades slower: at progress 0.5 intensity = 0.5 - 0.3 = 0.2.
	s = ButtonStyle(ButtonState{Visible: true, Progress: 0.5}, VariantSubtle, lightPalette())
	if !strings.HasPrefix(s.BoxShadow, "1.6px 1.6px 3.2px") {
		t.Errorf("subtle at progress 0.5 = %q", s.BoxShadow)
	}

	// Pressed subtle inset is halved but progress-independent.
	s = ButtonStyle(ButtonState{Visible: true, Pressed: true, Progress: 0.9}, VariantSubtle, lightPalette())
	if !strings.HasPrefix(s.BoxShadow, "inset 6px 6px 12px") {
		t.Errorf("subtle inset = %q", s.BoxShadow)
	}
}

func TestButtonStyle_IntensityNeverNegative(t *testing.T) {
	for _, variant := range []Variant{VariantDefault, VariantSubtle} {
		prevOffset := -1.0
		for progress := 1.0; progress >= 0; progress -= 0.05 {
			s := ButtonStyle(ButtonState{Visible: true, Progress: progress}, variant, lightPalette())
			x := leadingMagnitude(t, s.BoxShadow)
			if x < 0 {
				t.Fatalf("%v: negative magnitude at progress %v: %q", variant, progress, s.BoxShadow)
			}
			// Walking progress down, magnitudes must be non-decreasing.
			if x < prevOffset {
				t.Fatalf("%v: intensity not monotone at progress %v", variant, progress)
			}
			prevOffset = x
		}
	}
}

func TestButtonStyle_ThemeSwitchChangesOnlyColors(t *testing.T) {
	state := ButtonState{Visible: true, Progress: 0}
	light := ButtonStyle(state, VariantDefault, lightPalette())
	dark := ButtonStyle(state, VariantDefault, darkPalette())

	if light.Transform != dark.Transform {
		t.Errorf("theme switch changed transform: %q vs %q", light.Transform, dark.Transform)
	}
	if light.Opacity != dark.Opacity {
		t.Error("theme switch changed opacity")
	}

	// Replacing the dark tokens with the light ones must make the
	// shadow strings identical: the numbers stay put.
	swapped := strings.NewReplacer(
		"#151515", "#d1d1d1",
		"#353535", "#ffffff",
		"rgba(21, 21, 21, 0.6)", "rgba(209, 209, 209, 0.6)",
	).Replace(dark.BoxShadow)
	if swapped != light.BoxShadow {
		t.Errorf("theme switch changed more than colors\nlight: %q\n dark: %q", light.BoxShadow, dark.BoxShadow)
	}
}

func TestContentStyle(t *testing.T) {
	shown := ContentStyle(true)
	if shown.Opacity != 1 {
		t.Errorf("shown content opacity = %v, want 1", shown.Opacity)
	}
	hidden := ContentStyle(false)
	if hidden.Opacity != 0 {
		t.Errorf("hidden content opacity = %v, want 0", hidden.Opacity)
	}
	if got := shown.Transition.CSS(); got != "opacity 700ms cubic-bezier(0.4, 0, 0.2, 1)" {
		t.Errorf("content transition = %q", got)
	}
}

func TestVariant_Parse(t *testing.T) {
	if v, err := ParseVariant("subtle"); err != nil || v != VariantSubtle {
		t.Errorf("ParseVariant(subtle) = %v, %v", v, err)
	}
	if _, err := ParseVariant("loud"); err == nil {
		t.Error("ParseVariant should reject unknown variants")
	}
}
