// Package compose builds the bordered canvas for one image.
package compose

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"

	"github.com/lensmark/lensmark/internal/border"
)

// white is the border fill. A plain white mount reads as neutral for
// both color and monochrome photographs.
var white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

// Compose allocates a new canvas sized source-plus-insets, fills it
// white, and pastes the source at the inset offset.
//
// The source is flattened to opaque RGB first: alpha is discarded, not
// blended. Pixel values inside the pasted rectangle are otherwise
// copied exactly, with no resampling or color conversion. The source
// image is never modified.
func Compose(src image.Image, ins border.Insets) *image.NRGBA {
	b := src.Bounds()
	w := b.Dx() + ins.Left + ins.Right
	h := b.Dy() + ins.Top + ins.Bottom

	canvas := imaging.New(w, h, white)
	return imaging.Paste(canvas, flatten(src), image.Pt(ins.Left, ins.Top))
}

// flatten clones the source into non-premultiplied NRGBA and forces
// every pixel opaque. The clone keeps raw channel values, so discarding
// alpha never darkens a semi-transparent pixel.
func flatten(src image.Image) *image.NRGBA {
	flat := imaging.Clone(src)
	for i := 3; i < len(flat.Pix); i += 4 {
		flat.Pix[i] = 0xff
	}
	return flat
}
