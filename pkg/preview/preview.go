// Package preview rasterizes a computed surface to an image so shadow
// tuning can be inspected without a browser: the surface's rounded
// rectangle is composited over the theme background together with its
// shadow layers.
//
// Blur is approximated by downscaling and re-upscaling the layer with a
// bilinear kernel, which is close enough to a Gaussian for soft UI
// shadows and much cheaper.
package preview

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	xdraw "golang.org/x/image/draw"

	"github.com/neu-ui/neu/pkg/graphics"
	"github.com/neu-ui/neu/pkg/theme"
)

// Options configures a preview rendering.
type Options struct {
	// Width and Height size the canvas in pixels.
	Width  int
	Height int
	// Surface is the element rectangle on the canvas.
	Surface graphics.Rect
	// CornerRadius rounds the surface corners.
	CornerRadius float64
	// Palette supplies the background and surface fill.
	Palette theme.Palette
	// Layers are the shadow layers to composite, outermost first.
	Layers []graphics.ShadowLayer
}

// Render draws the surface and its shadows onto a fresh canvas.
func Render(opts Options) (*image.RGBA, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("invalid canvas size %dx%d", opts.Width, opts.Height)
	}

	canvas := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(toNRGBA(opts.Palette.Surface)), image.Point{}, draw.Src)

	shape := roundedRectMask(opts.Width, opts.Height, opts.Surface, opts.CornerRadius)

	// Outer layers paint behind the surface, inset layers inside it.
	for _, layer := range opts.Layers {
		if layer.Inset {
			continue
		}
		compositeOuter(canvas, opts, layer)
	}

	fill := image.NewUniform(toNRGBA(opts.Palette.Surface))
	draw.DrawMask(canvas, canvas.Bounds(), fill, image.Point{}, shape, image.Point{}, draw.Over)

	for _, layer := range opts.Layers {
		if !layer.Inset {
			continue
		}
		compositeInset(canvas, opts, layer, shape)
	}

	return canvas, nil
}

// WritePNG encodes the rendered preview.
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode preview png: %w", err)
	}
	return nil
}

// compositeOuter draws one blurred outer shadow layer under the surface.
func compositeOuter(canvas *image.RGBA, opts Options, layer graphics.ShadowLayer) {
	shifted := graphics.RectFromLTWH(
		opts.Surface.Left+layer.Offset.X,
		opts.Surface.Top+layer.Offset.Y,
		opts.Surface.Width(),
		opts.Surface.Height(),
	)
	mask := roundedRectMask(canvas.Bounds().Dx(), canvas.Bounds().Dy(), shifted, opts.CornerRadius)
	blurred := blurAlpha(mask, layer.Blur)
	fill := image.NewUniform(toNRGBA(layer.Color))
	draw.DrawMask(canvas, canvas.Bounds(), fill, image.Point{}, blurred, image.Point{}, draw.Over)
}

// compositeInset draws one blurred inset layer clipped to the shape.
func compositeInset(canvas *image.RGBA, opts Options, layer graphics.ShadowLayer, shape *image.Alpha) {
	w, h := canvas.Bounds().Dx(), canvas.Bounds().Dy()

	// The inset shadow is the inverse of the shifted shape: solid
	// outside, clear inside, so blurring bleeds color inward across
	// the shape edge.
	shifted := graphics.RectFromLTWH(
		opts.Surface.Left+layer.Offset.X,
		opts.Surface.Top+layer.Offset.Y,
		opts.Surface.Width(),
		opts.Surface.Height(),
	)
	inverse := roundedRectMask(w, h, shifted, opts.CornerRadius)
	for i, a := range inverse.Pix {
		inverse.Pix[i] = 0xFF - a
	}
	blurred := blurAlpha(inverse, layer.Blur)

	// Clip to the unshifted shape so nothing paints outside the surface.
	for i := range blurred.Pix {
		blurred.Pix[i] = uint8(uint16(blurred.Pix[i]) * uint16(shape.Pix[i]) / 0xFF)
	}

	fill := image.NewUniform(toNRGBA(layer.Color))
	draw.DrawMask(canvas, canvas.Bounds(), fill, image.Point{}, blurred, image.Point{}, draw.Over)
}

// blurAlpha approximates a Gaussian blur on an alpha mask by scaling it
// down and back up with a bilinear kernel. Radius 0 returns the mask
// unchanged.
func blurAlpha(mask *image.Alpha, radius float64) *image.Alpha {
	if radius <= 1 {
		return mask
	}
	w, h := mask.Bounds().Dx(), mask.Bounds().Dy()

	factor := int(radius / 2)
	if factor < 2 {
		factor = 2
	}
	dw, dh := w/factor, h/factor
	if dw < 1 {
		dw = 1
	}
	if dh < 1 {
		dh = 1
	}

	small := image.NewAlpha(image.Rect(0, 0, dw, dh))
	xdraw.BiLinear.Scale(small, small.Bounds(), mask, mask.Bounds(), xdraw.Src, nil)

	out := image.NewAlpha(image.Rect(0, 0, w, h))
	xdraw.BiLinear.Scale(out, out.Bounds(), small, small.Bounds(), xdraw.Src, nil)
	return out
}

// roundedRectMask builds an alpha mask for a rounded rectangle.
func roundedRectMask(w, h int, r graphics.Rect, radius float64) *image.Alpha {
	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	maxRadius := r.Width() / 2
	if r.Height()/2 < maxRadius {
		maxRadius = r.Height() / 2
	}
	if radius > maxRadius {
		radius = maxRadius
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if insideRoundedRect(float64(x)+0.5, float64(y)+0.5, r, radius) {
				mask.SetAlpha(x, y, color.Alpha{A: 0xFF})
			}
		}
	}
	return mask
}

func insideRoundedRect(x, y float64, r graphics.Rect, radius float64) bool {
	if x < r.Left || x > r.Right || y < r.Top || y > r.Bottom {
		return false
	}
	if radius <= 0 {
		return true
	}

	// Corner checks: outside the quarter circle means outside the shape.
	var cx, cy float64
	switch {
	case x < r.Left+radius && y < r.Top+radius:
		cx, cy = r.Left+radius, r.Top+radius
	case x > r.Right-radius && y < r.Top+radius:
		cx, cy = r.Right-radius, r.Top+radius
	case x < r.Left+radius && y > r.Bottom-radius:
		cx, cy = r.Left+radius, r.Bottom-radius
	case x > r.Right-radius && y > r.Bottom-radius:
		cx, cy = r.Right-radius, r.Bottom-radius
	default:
		return true
	}
	dx, dy := x-cx, y-cy
	return dx*dx+dy*dy <= radius*radius
}

func toNRGBA(c graphics.Color) color.NRGBA {
	return color.NRGBA{
		R: c.Red(),
		G: c.Green(),
		B: c.Blue(),
		A: uint8(c.Alpha()*255 + 0.5),
	}
}
