// Package job orchestrates the processing of one image file: decode,
// border geometry, compositing, optional caption, encode.
package job

import (
	"image"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"go.uber.org/zap"

	"github.com/lensmark/lensmark/internal/border"
	"github.com/lensmark/lensmark/internal/compose"
	"github.com/lensmark/lensmark/internal/errs"
	"github.com/lensmark/lensmark/internal/exifmeta"
	"github.com/lensmark/lensmark/internal/overlay"
)

// supportedExtensions lists the container formats the encode side can
// produce. Inputs outside this set fail before any decode work.
var supportedExtensions = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".tif": true, ".tiff": true, ".bmp": true,
}

// Processor holds the per-run settings shared by every image job.
type Processor struct {
	Style       border.Style
	ShowEXIF    bool
	Renderer    *overlay.Renderer
	OutputDir   string
	JPEGQuality int
	Logger      *zap.Logger
}

// Process runs one file through the pipeline and returns the output
// path it was saved to.
//
// Decode, encode and path-derivation failures are fatal for this file.
// Metadata and caption failures degrade to warnings: the bordered
// image is still saved without its caption. A job is never retried.
func (p *Processor) Process(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if !supportedExtensions[ext] {
		return "", errs.Errorf(errs.Image, "check input", "unsupported image extension %q", ext)
	}

	src, err := imaging.Open(path)
	if err != nil {
		return "", errs.E(errs.Image, "decode image", err)
	}

	b := src.Bounds()
	ins := border.ComputeInsets(p.Style, b.Dx(), b.Dy())
	canvas := compose.Compose(src, ins)

	if p.ShowEXIF {
		p.applyCaption(canvas, path, ins)
	}

	outPath, err := OutputPath(path, p.OutputDir)
	if err != nil {
		return "", err
	}

	opts := []imaging.EncodeOption{}
	if p.JPEGQuality > 0 {
		opts = append(opts, imaging.JPEGQuality(p.JPEGQuality))
	}
	if err := imaging.Save(canvas, outPath, opts...); err != nil {
		return "", errs.E(errs.Image, "encode image", err)
	}
	return outPath, nil
}

// applyCaption extracts metadata and draws it into the bottom border.
// Failures here are logged and swallowed: captions are best-effort.
func (p *Processor) applyCaption(canvas *image.NRGBA, path string, ins border.Insets) {
	tl, err := exifmeta.Open(path)
	if err != nil {
		p.Logger.Warn("could not read EXIF data",
			zap.String("path", path), zap.Error(err))
		return
	}

	lines := overlay.FormatLines(exifmeta.Extract(tl))
	if len(lines) == 0 {
		return
	}

	// Caption origin: top-left of the bottom border strip.
	originY := canvas.Bounds().Dy() - ins.Bottom
	if err := p.Renderer.Render(canvas, lines, ins.Left, originY); err != nil {
		p.Logger.Warn("could not draw caption",
			zap.String("path", path), zap.Error(err))
	}
}

// OutputPath derives the destination for an input file:
// "<stem>_border.<ext>" inside outDir, or beside the original when
// outDir is empty. An input with no stem or no extension is an
// io-kind error.
func OutputPath(input, outDir string) (string, error) {
	base := filepath.Base(input)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)

	if ext == "" {
		return "", errs.Errorf(errs.IO, "derive output path", "input %q has no file extension", input)
	}
	if stem == "" {
		return "", errs.Errorf(errs.IO, "derive output path", "input %q has no file stem", input)
	}

	dir := outDir
	if dir == "" {
		dir = filepath.Dir(input)
	}
	return filepath.Join(dir, stem+"_border"+ext), nil
}
