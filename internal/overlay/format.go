package overlay

import (
	"strings"

	"github.com/lensmark/lensmark/internal/exifmeta"
)

// fieldSeparator joins the technical settings on one line.
const fieldSeparator = " • "

// FormatLines turns a metadata record into ordered caption lines:
// camera, lens, technical settings, date. Absent fields skip their
// line entirely; an empty record yields no lines.
func FormatLines(rec exifmeta.Record) []string {
	var lines []string

	if rec.Camera != nil {
		lines = append(lines, *rec.Camera)
	}
	if rec.Lens != nil {
		lines = append(lines, *rec.Lens)
	}

	var settings []string
	for _, f := range []*string{rec.FocalLength, rec.Aperture, rec.ShutterSpeed, rec.ISO} {
		if f != nil {
			settings = append(settings, *f)
		}
	}
	if len(settings) > 0 {
		lines = append(lines, strings.Join(settings, fieldSeparator))
	}

	if rec.DateTaken != nil {
		lines = append(lines, *rec.DateTaken)
	}

	return lines
}
