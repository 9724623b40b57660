package config

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/lensmark/lensmark/internal/border"
	"github.com/lensmark/lensmark/internal/errs"
	"github.com/lensmark/lensmark/internal/overlay"
)

func TestGetEnv(t *testing.T) {
	t.Run("returns value when set", func(t *testing.T) {
		t.Setenv("TEST_GET_ENV_KEY", "myvalue")
		if got := getEnv("TEST_GET_ENV_KEY", "default"); got != "myvalue" {
			t.Errorf("got %q, want myvalue", got)
		}
	})

	t.Run("returns default when unset", func(t *testing.T) {
		os.Unsetenv("TEST_GET_ENV_KEY_MISSING")
		if got := getEnv("TEST_GET_ENV_KEY_MISSING", "fallback"); got != "fallback" {
			t.Errorf("got %q, want fallback", got)
		}
	})
}

func TestGetEnvAsInt(t *testing.T) {
	t.Run("valid int", func(t *testing.T) {
		t.Setenv("TEST_INT", "42")
		if got := getEnvAsInt("TEST_INT", 10); got != 42 {
			t.Errorf("got %d, want 42", got)
		}
	})

	t.Run("invalid int returns default", func(t *testing.T) {
		t.Setenv("TEST_INT_BAD", "not_a_number")
		if got := getEnvAsInt("TEST_INT_BAD", 99); got != 99 {
			t.Errorf("got %d, want 99", got)
		}
	})
}

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"LENSMARK_STYLE", "LENSMARK_FONT", "LENSMARK_OUTPUT_DIR", "LENSMARK_TEXT_COLOR", "LENSMARK_JPEG_QUALITY"} {
		os.Unsetenv(key)
	}

	cfg, err := Load(Options{})
	if err != nil {
		t.Fatalf("Load with defaults failed: %v", err)
	}

	if cfg.Style != border.StyleNarrow {
		t.Errorf("default style: got %v, want narrow", cfg.Style)
	}
	if cfg.JPEGQuality != defaultJPEGQuality {
		t.Errorf("default quality: got %d, want %d", cfg.JPEGQuality, defaultJPEGQuality)
	}
	if cfg.CaptionColor != color.Color(overlay.DefaultColor) {
		t.Errorf("default caption color: got %v", cfg.CaptionColor)
	}
	if cfg.OutputDir != "" || cfg.FontPath != "" {
		t.Errorf("output dir and font should default empty, got %q %q", cfg.OutputDir, cfg.FontPath)
	}
}

func TestLoad_StyleFromEnv(t *testing.T) {
	t.Setenv("LENSMARK_STYLE", "large")

	cfg, err := Load(Options{})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Style != border.StyleLarge {
		t.Errorf("style from env: got %v, want large", cfg.Style)
	}
}

func TestLoad_FlagWinsOverEnv(t *testing.T) {
	t.Setenv("LENSMARK_STYLE", "large")

	cfg, err := Load(Options{StyleToken: "m"})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Style != border.StyleMedium {
		t.Errorf("flag should win over env: got %v, want medium", cfg.Style)
	}
}

func TestLoad_InvalidStyle(t *testing.T) {
	_, err := Load(Options{StyleToken: "gigantic"})
	if err == nil {
		t.Fatal("Load should fail for an invalid style token")
	}
	if !errs.IsKind(err, errs.Font) {
		t.Errorf("error kind: got %v, want font", err)
	}
}

func TestLoad_CaptionColor(t *testing.T) {
	cfg, err := Load(Options{CaptionColor: "#FF8800"})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.CaptionColor != (color.NRGBA{R: 255, G: 136, B: 0, A: 255}) {
		t.Errorf("caption color: got %v", cfg.CaptionColor)
	}
}

func TestLoad_InvalidCaptionColor(t *testing.T) {
	_, err := Load(Options{CaptionColor: "reddish"})
	if err == nil {
		t.Fatal("Load should fail for an invalid color token")
	}
	if !errs.IsKind(err, errs.Font) {
		t.Errorf("error kind: got %v, want font", err)
	}
}

func TestLoad_CreatesOutputDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out", "nested")

	cfg, err := Load(Options{OutputDir: dir})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.OutputDir != dir {
		t.Errorf("output dir: got %q, want %q", cfg.OutputDir, dir)
	}

	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		t.Errorf("output dir was not created: %v", err)
	}
}

func TestLoad_OutputPathIsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "collision")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	_, err := Load(Options{OutputDir: path})
	if err == nil {
		t.Fatal("Load should fail when the output path is a file")
	}
	if !errs.IsKind(err, errs.IO) {
		t.Errorf("error kind: got %v, want io", err)
	}
}

func TestLoad_QualityOutOfRange(t *testing.T) {
	for _, q := range []int{-1, 101} {
		if _, err := Load(Options{JPEGQuality: q}); err == nil {
			t.Errorf("Load should fail for quality %d", q)
		}
	}
}
