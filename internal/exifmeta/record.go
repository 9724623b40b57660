package exifmeta

import "strings"

// Tag names understood by Extract. These are the standardized EXIF tag
// names, independent of any particular metadata library.
const (
	TagMake         = "Make"
	TagModel        = "Model"
	TagLensModel    = "LensModel"
	TagFocalLength  = "FocalLength"
	TagFNumber      = "FNumber"
	TagExposureTime = "ExposureTime"
	TagISO          = "PhotographicSensitivity"
)

// TagLookup fetches the display value of a primary metadata tag by its
// standardized name. The second return is false when the tag is absent
// or undecodable.
type TagLookup interface {
	Lookup(name string) (string, bool)
}

// Record holds the metadata fields a caption can show. Nil fields were
// absent from the source and are skipped during formatting.
type Record struct {
	Camera       *string
	Lens         *string
	FocalLength  *string
	Aperture     *string
	ShutterSpeed *string
	ISO          *string
	DateTaken    *string
}

// Extract builds a Record from a tag lookup. It never fails: every
// missing or malformed tag simply leaves its field nil.
//
// The camera field is populated only when both Make and Model are
// present; Make is consulted for presence only, and the Model display
// value (quote-trimmed) becomes the camera string.
func Extract(tl TagLookup) Record {
	var rec Record

	if _, ok := tl.Lookup(TagMake); ok {
		if model, ok := tl.Lookup(TagModel); ok {
			rec.Camera = ptr(strings.Trim(model, `"`))
		}
	}

	if lens, ok := tl.Lookup(TagLensModel); ok {
		rec.Lens = ptr(strings.Trim(lens, `"`))
	}

	if focal, ok := tl.Lookup(TagFocalLength); ok {
		rec.FocalLength = ptr(focal + "mm")
	}

	if aperture, ok := tl.Lookup(TagFNumber); ok {
		rec.Aperture = ptr("f/" + aperture)
	}

	if shutter, ok := tl.Lookup(TagExposureTime); ok {
		rec.ShutterSpeed = ptr(shutter + "s")
	}

	if iso, ok := tl.Lookup(TagISO); ok {
		rec.ISO = ptr("ISO " + iso)
	}

	// DateTaken stays nil for now. DateTimeOriginal is deliberately not
	// read; enabling it is a product decision, not a bug fix.

	return rec
}

func ptr(s string) *string { return &s }
