package preview

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/neu-ui/neu/pkg/graphics"
	"github.com/neu-ui/neu/pkg/theme"
)

func testOptions() Options {
	return Options{
		Width:        200,
		Height:       200,
		Surface:      graphics.RectFromLTWH(60, 60, 80, 80),
		CornerRadius: 12,
		Palette:      theme.DefaultLightPalette(),
		Layers: graphics.NeumorphicLayers(8, 16, 8,
			theme.DefaultLightPalette().ShadowDark,
			theme.DefaultLightPalette().ShadowLight,
			theme.DefaultLightPalette().Glow(),
			false),
	}
}

func TestRender_SurfaceFill(t *testing.T) {
	img, err := Render(testOptions())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	// The surface center must carry the palette surface color.
	want := toNRGBA(theme.DefaultLightPalette().Surface)
	r, g, b, _ := img.At(100, 100).RGBA()
	if uint8(r>>8) != want.R || uint8(g>>8) != want.G || uint8(b>>8) != want.B {
		t.Errorf("surface center = %v, want %v", img.At(100, 100), want)
	}
}

func TestRender_OuterShadowDarkensBottomRight(t *testing.T) {
	opts := testOptions()
	img, err := Render(opts)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	plain, err := Render(Options{
		Width: opts.Width, Height: opts.Height,
		Surface: opts.Surface, CornerRadius: opts.CornerRadius,
		Palette: opts.Palette,
	})
	if err != nil {
		t.Fatalf("Render without layers failed: %v", err)
	}

	// Somewhere outside the bottom-right corner the dark layer must
	// have changed pixels relative to a shadowless render.
	changed := false
	for y := 142; y < 170 && !changed; y++ {
		for x := 142; x < 170 && !changed; x++ {
			if img.At(x, y) != plain.At(x, y) {
				changed = true
			}
		}
	}
	if !changed {
		t.Error("outer shadow left the bottom-right region untouched")
	}
}

func TestRender_InsetStaysInsideShape(t *testing.T) {
	opts := testOptions()
	opts.Layers = graphics.NeumorphicLayers(6, 12, 6,
		opts.Palette.ShadowDark, opts.Palette.ShadowLight, opts.Palette.Glow(), true)

	img, err := Render(opts)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	plain, err := Render(Options{
		Width: opts.Width, Height: opts.Height,
		Surface: opts.Surface, CornerRadius: opts.CornerRadius,
		Palette: opts.Palette,
	})
	if err != nil {
		t.Fatalf("Render without layers failed: %v", err)
	}

	// Far outside the surface nothing may change.
	if img.At(10, 10) != plain.At(10, 10) {
		t.Error("inset shadow painted outside the surface")
	}
}

func TestRender_InvalidSize(t *testing.T) {
	if _, err := Render(Options{Width: 0, Height: 100}); err == nil {
		t.Error("expected error for zero-width canvas")
	}
}

func TestWritePNG(t *testing.T) {
	img, err := Render(testOptions())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	var buf bytes.Buffer
	if err := WritePNG(&buf, img); err != nil {
		t.Fatalf("WritePNG failed: %v", err)
	}

	decoded, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("encoded preview is not valid png: %v", err)
	}
	if decoded.Bounds().Dx() != 200 || decoded.Bounds().Dy() != 200 {
		t.Errorf("decoded size = %v", decoded.Bounds())
	}
}
