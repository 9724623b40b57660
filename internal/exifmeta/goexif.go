package exifmeta

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rwcarlsen/goexif/exif"
	"github.com/rwcarlsen/goexif/tiff"

	"github.com/lensmark/lensmark/internal/errs"
)

// fieldNames maps standardized tag names to goexif field names.
var fieldNames = map[string]exif.FieldName{
	TagMake:         exif.Make,
	TagModel:        exif.Model,
	TagLensModel:    exif.LensModel,
	TagFocalLength:  exif.FocalLength,
	TagFNumber:      exif.FNumber,
	TagExposureTime: exif.ExposureTime,
	TagISO:          exif.ISOSpeedRatings,
}

// exifLookup adapts a decoded goexif container to the TagLookup
// interface.
type exifLookup struct {
	x *exif.Exif
}

// Open reads the EXIF container of the image at path.
//
// A file without a readable EXIF segment is a metadata-kind error;
// callers should log it and continue without a caption rather than
// failing the job.
func Open(path string) (TagLookup, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errs.E(errs.Metadata, "open image for metadata", err)
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil {
		return nil, errs.E(errs.Metadata, "decode exif container", err)
	}
	return &exifLookup{x: x}, nil
}

func (l *exifLookup) Lookup(name string) (string, bool) {
	field, ok := fieldNames[name]
	if !ok {
		return "", false
	}
	tag, err := l.x.Get(field)
	if err != nil || tag == nil {
		return "", false
	}

	switch name {
	case TagFNumber, TagFocalLength:
		return rationalValue(tag)
	case TagExposureTime:
		return exposureValue(tag)
	case TagISO:
		v, err := tag.Int(0)
		if err != nil {
			return "", false
		}
		return strconv.Itoa(v), true
	default:
		return stringValue(tag)
	}
}

// stringValue returns an ASCII tag trimmed of trailing NULs. Cameras
// pad fixed-width fields with NUL bytes.
func stringValue(tag *tiff.Tag) (string, bool) {
	v, err := tag.StringVal()
	if err != nil {
		return "", false
	}
	v = strings.TrimRight(strings.TrimSpace(v), "\x00")
	if v == "" {
		return "", false
	}
	return v, true
}

// rationalValue formats a rational tag as a compact decimal, the way a
// camera body reports it (2.8, 50, 1.4). Some writers store these as
// plain integers instead.
func rationalValue(tag *tiff.Tag) (string, bool) {
	num, den, err := tag.Rat2(0)
	if err != nil || den == 0 {
		v, errInt := tag.Int(0)
		if errInt != nil {
			return "", false
		}
		return strconv.Itoa(v), true
	}
	return strconv.FormatFloat(float64(num)/float64(den), 'f', -1, 64), true
}

// exposureValue formats ExposureTime as photographers expect:
// "1/250" for fast shutters, a decimal for exposures of a second
// or longer.
func exposureValue(tag *tiff.Tag) (string, bool) {
	num, den, err := tag.Rat2(0)
	if err != nil || den == 0 {
		return "", false
	}
	if num == 1 && den > 1 {
		return fmt.Sprintf("1/%d", den), true
	}
	val := float64(num) / float64(den)
	if val >= 1.0 {
		return strconv.FormatFloat(val, 'f', 1, 64), true
	}
	return strconv.FormatFloat(val, 'f', 4, 64), true
}
