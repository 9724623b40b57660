// Package config assembles the run configuration from CLI options and
// LENSMARK_* environment variables. Flags win over the environment;
// a .env file is loaded if present.
package config

import (
	"fmt"
	"image/color"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/lensmark/lensmark/internal/border"
	"github.com/lensmark/lensmark/internal/errs"
	"github.com/lensmark/lensmark/internal/overlay"
)

const defaultJPEGQuality = 95

// Options are the raw values collected from the command line. Zero
// values mean "not set" and fall back to the environment.
type Options struct {
	StyleToken   string
	ShowEXIF     bool
	FontPath     string
	OutputDir    string
	CaptionColor string
	JPEGQuality  int
}

// Config is the validated per-run configuration.
type Config struct {
	Style        border.Style
	ShowEXIF     bool
	FontPath     string
	OutputDir    string
	CaptionColor color.Color
	JPEGQuality  int
}

// Load validates options into a Config. Configuration failures here
// are fatal for the whole run: they are raised before any file is
// touched.
func Load(opts Options) (*Config, error) {
	// Optional .env for local defaults.
	_ = godotenv.Load()

	style, err := border.ParseStyle(fallback(opts.StyleToken, getEnv("LENSMARK_STYLE", "s")))
	if err != nil {
		return nil, err
	}

	captionColor := color.Color(overlay.DefaultColor)
	if hex := fallback(opts.CaptionColor, getEnv("LENSMARK_TEXT_COLOR", "")); hex != "" {
		c, err := colorful.Hex(hex)
		if err != nil {
			return nil, errs.Errorf(errs.Font, "parse caption color", "invalid color %q: want #RRGGBB", hex)
		}
		r, g, b := c.RGB255()
		captionColor = color.NRGBA{R: r, G: g, B: b, A: 255}
	}

	outDir := fallback(opts.OutputDir, getEnv("LENSMARK_OUTPUT_DIR", ""))
	if outDir != "" {
		if err := ensureDir(outDir); err != nil {
			return nil, err
		}
	}

	quality := opts.JPEGQuality
	if quality == 0 {
		quality = getEnvAsInt("LENSMARK_JPEG_QUALITY", defaultJPEGQuality)
	}
	if quality < 1 || quality > 100 {
		return nil, errs.Errorf(errs.IO, "validate jpeg quality", "quality %d out of range 1-100", quality)
	}

	return &Config{
		Style:        style,
		ShowEXIF:     opts.ShowEXIF,
		FontPath:     fallback(opts.FontPath, getEnv("LENSMARK_FONT", "")),
		OutputDir:    outDir,
		CaptionColor: captionColor,
		JPEGQuality:  quality,
	}, nil
}

// ensureDir creates the output directory if missing. A path that
// exists but is not a directory is a run-fatal io error.
func ensureDir(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		if err := os.MkdirAll(path, 0o755); err != nil {
			return errs.E(errs.IO, "create output directory", err)
		}
		return nil
	}
	if err != nil {
		return errs.E(errs.IO, "stat output directory", err)
	}
	if !info.IsDir() {
		return errs.Errorf(errs.IO, "check output directory", "output path %q exists but is not a directory", path)
	}
	return nil
}

// fallback returns value unless it is empty.
func fallback(value, def string) string {
	if value != "" {
		return value
	}
	return def
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as an integer or returns a
// default value.
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
		fmt.Fprintf(os.Stderr, "warning: %s=%q is not an integer, using %d\n", key, value, defaultValue)
	}
	return defaultValue
}
