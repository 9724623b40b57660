package overlay

import (
	"image"
	"image/color"
	"image/draw"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/lensmark/lensmark/internal/errs"
)

const (
	// lineSeparator joins the caption lines into the single string
	// drawn along the bottom border.
	lineSeparator = " | "

	leftMargin   = 20
	topMargin    = 5
	scaleDivisor = 80
)

// DefaultColor is the caption color used when none is configured:
// dark gray, readable on the white border.
var DefaultColor = color.NRGBA{R: 64, G: 64, B: 64, A: 255}

// Renderer draws captions onto a composed canvas. A renderer with no
// font is valid and draws nothing.
type Renderer struct {
	fnt    *sfnt.Font
	color  color.Color
	logger *zap.Logger
}

// NewRenderer parses the TTF at fontPath and returns a caption
// renderer drawing in captionColor.
//
// An empty fontPath yields a renderer that skips drawing. A file that
// cannot be read or parsed is a font-kind error; callers typically log
// it and fall back to NewDisabledRenderer.
func NewRenderer(fontPath string, captionColor color.Color, logger *zap.Logger) (*Renderer, error) {
	if captionColor == nil {
		captionColor = DefaultColor
	}
	r := &Renderer{color: captionColor, logger: logger}
	if fontPath == "" {
		return r, nil
	}

	data, err := os.ReadFile(fontPath)
	if err != nil {
		return nil, errs.E(errs.Font, "read font file", err)
	}
	fnt, err := opentype.Parse(data)
	if err != nil {
		return nil, errs.E(errs.Font, "parse font file", err)
	}
	r.fnt = fnt
	return r, nil
}

// NewDisabledRenderer returns a renderer that never draws. It is the
// fallback when the configured font is unusable.
func NewDisabledRenderer(logger *zap.Logger) *Renderer {
	return &Renderer{color: DefaultColor, logger: logger}
}

// Enabled reports whether the renderer has a font to draw with.
func (r *Renderer) Enabled() bool { return r.fnt != nil }

// Render draws the caption lines as one " | "-joined string with its
// origin at (originX, originY), the top-left corner of the bottom
// border strip. The glyph size is 1/80 of the canvas's smallest
// dimension, offset by a 20px left and 5px top margin inside the
// strip.
//
// With no font configured this is a no-op, not an error; the bordered
// image is still worth saving without its caption.
func (r *Renderer) Render(canvas draw.Image, lines []string, originX, originY int) error {
	if r.fnt == nil {
		if r.logger != nil {
			r.logger.Debug("no font configured, skipping caption")
		}
		return nil
	}
	if len(lines) == 0 {
		return nil
	}

	b := canvas.Bounds()
	size := min(b.Dx(), b.Dy()) / scaleDivisor
	if size < 1 {
		size = 1
	}

	face, err := opentype.NewFace(r.fnt, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return errs.E(errs.Font, "create font face", err)
	}
	defer face.Close()

	d := &font.Drawer{
		Dst:  canvas,
		Src:  image.NewUniform(r.color),
		Face: face,
		Dot:  fixed.P(originX+leftMargin, originY+topMargin),
	}
	// Drop the baseline by the ascent so the glyphs sit inside the
	// border strip rather than above the origin.
	d.Dot.Y += face.Metrics().Ascent
	d.DrawString(strings.Join(lines, lineSeparator))
	return nil
}
