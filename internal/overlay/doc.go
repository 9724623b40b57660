// Package overlay formats metadata into caption lines and draws them
// into the border strip.
//
// Formatting and rasterization are split: FormatLines is a pure
// function from a metadata record to display lines, and Renderer owns
// the font resource and placement math. Glyph shaping itself is
// delegated to golang.org/x/image/font.
//
// Caption drawing is best-effort. A renderer without a font silently
// skips drawing, and a font that fails to parse is reported once at
// construction time so the caller can degrade to border-only output.
package overlay
