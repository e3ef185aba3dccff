// Package preview rasterizes a panelized document to PNG so the layout can
// be checked before a sheet goes to the cutter.
//
// Rendering uses oksvg, which understands a useful subset of SVG (paths,
// basic shapes, group transforms, fills and strokes). Unsupported elements
// are skipped rather than failing the preview.
package preview

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"fortio.org/safecast"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/matzehuels/panelize/pkg/errors"
	"github.com/matzehuels/panelize/pkg/svgdoc"
)

// DefaultScale is the number of pixels per view box unit.
const DefaultScale = 1.0

// MaxDimension caps either side of the preview image in pixels.
const MaxDimension = 16384

// Options configures preview rendering.
type Options struct {
	Scale      float64     // pixels per view box unit; DefaultScale if zero
	Background color.Color // nil leaves the image transparent
}

// Render rasterizes doc. The document is not modified.
func Render(doc *svgdoc.Document, opts Options) (*image.RGBA, error) {
	scale := opts.Scale
	if scale == 0 {
		scale = DefaultScale
	}
	if scale < 0 || math.IsNaN(scale) || math.IsInf(scale, 0) {
		return nil, errors.New(errors.ErrCodePreview, "invalid preview scale %v", opts.Scale)
	}

	// oksvg sizes the icon from the view box once physical units are gone.
	bare := doc.Clone()
	bare.Root().RemoveAttr(svgdoc.AttrWidth)
	bare.Root().RemoveAttr(svgdoc.AttrHeight)
	data, err := bare.Bytes()
	if err != nil {
		return nil, err
	}

	icon, err := oksvg.ReadIconStream(bytes.NewReader(data), oksvg.IgnoreErrorMode)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodePreview, err, "failed to read document for preview")
	}

	w, err := pixels(icon.ViewBox.W * scale)
	if err != nil {
		return nil, err
	}
	h, err := pixels(icon.ViewBox.H * scale)
	if err != nil {
		return nil, err
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	if opts.Background != nil {
		draw.Draw(img, img.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)
	}

	icon.SetTarget(0, 0, float64(w), float64(h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	raster := rasterx.NewDasher(w, h, scanner)
	icon.Draw(raster, 1.0)

	return img, nil
}

// EncodePNG writes img as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return errors.Wrap(errors.ErrCodePreview, err, "failed to encode png")
	}
	return nil
}

// RenderPNG rasterizes doc and returns the encoded PNG bytes.
func RenderPNG(doc *svgdoc.Document, opts Options) ([]byte, error) {
	img, err := Render(doc, opts)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := EncodePNG(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// pixels converts a scaled view box extent to a pixel count.
func pixels(v float64) (int, error) {
	n, err := safecast.Convert[int](math.Ceil(v))
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodePreview, err, "preview size %v out of range", v)
	}
	if n < 1 || n > MaxDimension {
		return 0, errors.New(errors.ErrCodePreview, "preview size %d px outside 1..%d", n, MaxDimension)
	}
	return n, nil
}
