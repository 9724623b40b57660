// Package errs defines the error taxonomy shared by the processing pipeline.
//
// Every failure that crosses a package boundary is tagged with a Kind so
// callers can decide between "fail the job", "fail the run" and "log and
// keep going" without string matching. Per-field metadata absence is not
// an error and never produces a Kind.
package errs

import (
	"errors"
	"fmt"
)

// Kind classifies a pipeline failure.
type Kind int

const (
	// Image covers decode, compositing and encode failures.
	Image Kind = iota
	// IO covers filesystem and output-path derivation failures.
	IO
	// Metadata means the EXIF container was unreadable as a whole.
	// Individual missing tags are not errors.
	Metadata
	// Font covers unparseable font resources and invalid
	// style or color configuration tokens.
	Font
)

func (k Kind) String() string {
	switch k {
	case Image:
		return "image"
	case IO:
		return "io"
	case Metadata:
		return "metadata"
	case Font:
		return "font"
	default:
		return "unknown"
	}
}

// Error is a Kind-tagged wrapper around an underlying cause.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("%s error: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// E wraps err with a kind and a short operation description.
func E(kind Kind, op string, err error) error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// Errorf is E with inline message formatting.
func Errorf(kind Kind, op, format string, args ...interface{}) error {
	return &Error{Kind: kind, Op: op, Err: fmt.Errorf(format, args...)}
}

// KindOf reports the Kind of err, if it carries one.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

// IsKind reports whether err carries the given Kind.
func IsKind(err error, kind Kind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}
