// Command lensmark adds a white border to photographs and optionally
// burns a line of camera metadata into that border.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/lensmark/lensmark/internal/batch"
	"github.com/lensmark/lensmark/internal/config"
	"github.com/lensmark/lensmark/internal/job"
	"github.com/lensmark/lensmark/internal/overlay"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	var (
		showVersion = flag.Bool("version", false, "print version information")
		showEXIF    = flag.Bool("exif", false, "draw photo EXIF data on the border")
		styleToken  = flag.String("border", "", "border size: s/small, m/medium, l/large (default \"s\")")
		fontPath    = flag.String("font", "", "TTF font file for the caption")
		outputDir   = flag.String("output-dir", "", "output directory (default: beside each original)")
		textColor   = flag.String("text-color", "", "caption color as #RRGGBB hex (default dark gray)")
		quality     = flag.Int("quality", 0, "JPEG quality 1-100 (default 95)")
	)
	flag.Usage = usage
	flag.Parse()

	if *showVersion {
		fmt.Printf("lensmark %s\n", Version)
		fmt.Printf("  Build time: %s\n", BuildTime)
		fmt.Printf("  Git commit: %s\n", GitCommit)
		return
	}

	files := flag.Args()
	if len(files) == 0 {
		usage()
		os.Exit(2)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	cfg, err := config.Load(config.Options{
		StyleToken:   *styleToken,
		ShowEXIF:     *showEXIF,
		FontPath:     *fontPath,
		OutputDir:    *outputDir,
		CaptionColor: *textColor,
		JPEGQuality:  *quality,
	})
	if err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}

	renderer, err := overlay.NewRenderer(cfg.FontPath, cfg.CaptionColor, logger)
	if err != nil {
		// Border output is still worth producing without the caption.
		logger.Warn("font unavailable, captions disabled", zap.Error(err))
		renderer = overlay.NewDisabledRenderer(logger)
	}

	runner := &batch.Runner{
		Processor: &job.Processor{
			Style:       cfg.Style,
			ShowEXIF:    cfg.ShowEXIF,
			Renderer:    renderer,
			OutputDir:   cfg.OutputDir,
			JPEGQuality: cfg.JPEGQuality,
			Logger:      logger,
		},
		Logger: logger,
	}

	summary := runner.Run(files)
	fmt.Print(summary.Report())
}

func usage() {
	fmt.Fprintln(os.Stderr, "lensmark - add a border and EXIF caption to photos")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Usage: lensmark [options] <image>...")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Options:")
	flag.PrintDefaults()
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Environment variables:")
	fmt.Fprintln(os.Stderr, "  LENSMARK_STYLE         default border style token")
	fmt.Fprintln(os.Stderr, "  LENSMARK_FONT          default caption font path")
	fmt.Fprintln(os.Stderr, "  LENSMARK_OUTPUT_DIR    default output directory")
	fmt.Fprintln(os.Stderr, "  LENSMARK_TEXT_COLOR    default caption color (#RRGGBB)")
	fmt.Fprintln(os.Stderr, "  LENSMARK_JPEG_QUALITY  default JPEG quality (1-100)")
}
