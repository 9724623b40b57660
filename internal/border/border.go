// Package border computes border geometry for the compositing pipeline.
package border

import (
	"strings"

	"github.com/lensmark/lensmark/internal/errs"
)

// Style selects one of the three border sizes.
type Style int

const (
	// StyleNarrow is a mount-style border: nothing on top/left/right,
	// a thin strip at the bottom.
	StyleNarrow Style = iota
	// StyleMedium is a uniform border of 1/15 of the smallest dimension.
	StyleMedium
	// StyleLarge is a uniform border of 1/10 of the smallest dimension.
	StyleLarge
)

func (s Style) String() string {
	switch s {
	case StyleNarrow:
		return "narrow"
	case StyleMedium:
		return "medium"
	case StyleLarge:
		return "large"
	default:
		return "unknown"
	}
}

// ParseStyle converts a user-supplied token into a Style.
//
// Accepted tokens (case-insensitive): "s"/"small", "m"/"medium",
// "l"/"large". Anything else is a font-kind configuration error,
// raised before any file is touched.
func ParseStyle(token string) (Style, error) {
	switch strings.ToLower(token) {
	case "s", "small":
		return StyleNarrow, nil
	case "m", "medium":
		return StyleMedium, nil
	case "l", "large":
		return StyleLarge, nil
	default:
		return 0, errs.Errorf(errs.Font, "parse border style", "invalid border style %q (want s/small, m/medium or l/large)", token)
	}
}

// Insets holds the border thickness for each edge, in pixels.
// Values are always non-negative.
type Insets struct {
	Top    int `json:"top"`
	Right  int `json:"right"`
	Bottom int `json:"bottom"`
	Left   int `json:"left"`
}

// ComputeInsets derives per-edge border thickness from the style and the
// source image dimensions. The smallest dimension drives the proportions
// so portrait and landscape images get visually consistent borders.
//
// Integer division truncates: a source smaller than 60px on its short
// side yields a zero-thickness narrow border, which is valid output.
func ComputeInsets(style Style, width, height int) Insets {
	minDim := min(width, height)

	switch style {
	case StyleMedium:
		b := minDim / 15
		return Insets{Top: b, Right: b, Bottom: b, Left: b}
	case StyleLarge:
		b := minDim / 10
		return Insets{Top: b, Right: b, Bottom: b, Left: b}
	default:
		// Narrow: bottom strip only.
		return Insets{Bottom: minDim / 60}
	}
}
