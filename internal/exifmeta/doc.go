// Package exifmeta extracts camera metadata for caption rendering.
//
// The extraction logic is written against the TagLookup interface, which
// exposes "display value of the primary tag, or absent". A goexif-backed
// implementation is provided for real files; tests substitute a map.
//
// # Presence semantics
//
// Every Record field is a *string: nil means the source tag was missing
// or undecodable. A missing tag is never an error and never produces
// placeholder text. Only a container that cannot be read at all (no
// EXIF segment, truncated TIFF structure) surfaces as an error, and
// callers are expected to treat that as a warning rather than failing
// the enclosing image job.
package exifmeta
