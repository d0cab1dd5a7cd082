package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/neu-ui/neu/pkg/graphics"
	"github.com/neu-ui/neu/pkg/preview"
	"github.com/neu-ui/neu/pkg/surface"
)

var (
	previewOut      string
	previewKind     string
	previewTheme    string
	previewVariant  string
	previewPressed  bool
	previewHovered  bool
	previewProgress float64
	previewWidth    int
	previewHeight   int
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Render a PNG preview of a computed surface",
	RunE:  runPreview,
}

func init() {
	previewCmd.Flags().StringVarP(&previewOut, "out", "o", "preview.png", "output PNG path")
	previewCmd.Flags().StringVar(&previewKind, "kind", "button", "surface kind: button or card")
	previewCmd.Flags().StringVar(&previewTheme, "theme", "", "light or dark (overrides profile)")
	previewCmd.Flags().StringVar(&previewVariant, "variant", "", "button variant (overrides profile)")
	previewCmd.Flags().BoolVar(&previewPressed, "pressed", false, "preview the pressed state")
	previewCmd.Flags().BoolVar(&previewHovered, "hovered", false, "preview the hovered state (card only)")
	previewCmd.Flags().Float64Var(&previewProgress, "progress", 0, "scroll progress in [0,1]")
	previewCmd.Flags().IntVar(&previewWidth, "width", 480, "canvas width in pixels")
	previewCmd.Flags().IntVar(&previewHeight, "height", 480, "canvas height in pixels")
	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, args []string) error {
	r, err := loadProfile()
	if err != nil {
		return err
	}
	if err := overrideBrightness(r, previewTheme); err != nil {
		return err
	}
	if err := overrideVariant(r, previewVariant); err != nil {
		return err
	}
	if previewProgress < 0 || previewProgress > 1 {
		return fmt.Errorf("progress %v out of range [0,1]", previewProgress)
	}

	palette := r.Palette()

	var layers []graphics.ShadowLayer
	switch previewKind {
	case "button":
		layers = surface.ButtonShadowLayers(surface.ButtonState{
			Pressed: previewPressed, Visible: true, Progress: previewProgress,
		}, r.Variant, palette)
	case "card":
		state := surface.CardState{
			Pressed: previewPressed, Hovered: previewHovered,
			Visible: true, Progress: previewProgress,
		}
		if previewHovered && !previewPressed {
			layers = surface.CardHoverShadowLayers(state, palette)
		} else {
			layers = surface.CardPressShadowLayers(state, palette)
		}
	default:
		return fmt.Errorf("unknown kind %q: want button or card", previewKind)
	}

	// Center the surface on the canvas at half size.
	sw, sh := float64(previewWidth)/2, float64(previewHeight)/2
	img, err := preview.Render(preview.Options{
		Width:        previewWidth,
		Height:       previewHeight,
		Surface:      graphics.RectFromLTWH(sw/2, sh/2, sw, sh),
		CornerRadius: 24,
		Palette:      palette,
		Layers:       layers,
	})
	if err != nil {
		return err
	}

	f, err := os.Create(previewOut)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", previewOut, err)
	}
	defer f.Close()
	if err := preview.WritePNG(f, img); err != nil {
		return err
	}

	log.Info().
		Str("path", previewOut).
		Str("kind", previewKind).
		Str("theme", r.Brightness.String()).
		Msg("preview written")
	return nil
}
