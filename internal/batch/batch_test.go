package batch

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/lensmark/lensmark/internal/border"
	"github.com/lensmark/lensmark/internal/job"
	"github.com/lensmark/lensmark/internal/overlay"
)

func writeTestImage(t *testing.T, path string) {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 80, 60))
	for y := 0; y < 60; y++ {
		for x := 0; x < 80; x++ {
			img.Set(x, y, color.RGBA{R: 180, G: 180, B: 180, A: 255})
		}
	}

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create file: %v", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode image: %v", err)
	}
}

func writeBrokenImage(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("not an image"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
}

func newTestRunner() *Runner {
	return &Runner{
		Processor: &job.Processor{
			Style:    border.StyleNarrow,
			Renderer: overlay.NewDisabledRenderer(zap.NewNop()),
			Logger:   zap.NewNop(),
		},
		Logger: zap.NewNop(),
	}
}

func TestRun_IsolatesFailures(t *testing.T) {
	dir := t.TempDir()

	// Six inputs; the second and fifth are undecodable.
	var paths []string
	for i := 0; i < 6; i++ {
		p := filepath.Join(dir, fmt.Sprintf("img%d.png", i))
		if i == 1 || i == 4 {
			writeBrokenImage(t, p)
		} else {
			writeTestImage(t, p)
		}
		paths = append(paths, p)
	}

	s := newTestRunner().Run(paths)

	if s.Attempted != 6 {
		t.Errorf("attempted: got %d, want 6", s.Attempted)
	}
	if s.Succeeded != 4 {
		t.Errorf("succeeded: got %d, want 4", s.Succeeded)
	}
	if s.Failed != 2 {
		t.Errorf("failed: got %d, want 2", s.Failed)
	}

	if len(s.Failures) != 2 {
		t.Fatalf("failure entries: got %d, want 2", len(s.Failures))
	}
	// Failures must preserve input order.
	if s.Failures[0].Path != paths[1] || s.Failures[1].Path != paths[4] {
		t.Errorf("failure order: got %q then %q, want %q then %q",
			s.Failures[0].Path, s.Failures[1].Path, paths[1], paths[4])
	}
}

func TestRun_EmptyInput(t *testing.T) {
	s := newTestRunner().Run(nil)

	if s.Attempted != 0 || s.Succeeded != 0 || s.Failed != 0 {
		t.Errorf("empty input should be zero work, got %+v", s)
	}
	if !strings.Contains(s.Report(), "Processed 0 image(s)") {
		t.Errorf("report: got %q", s.Report())
	}
}

func TestRun_FailureCap(t *testing.T) {
	dir := t.TempDir()

	var paths []string
	for i := 0; i < 8; i++ {
		p := filepath.Join(dir, fmt.Sprintf("bad%d.jpg", i))
		writeBrokenImage(t, p)
		paths = append(paths, p)
	}

	s := newTestRunner().Run(paths)

	if s.Failed != 8 {
		t.Errorf("failed: got %d, want 8", s.Failed)
	}
	if len(s.Failures) != 5 {
		t.Errorf("detailed failures: got %d, want cap of 5", len(s.Failures))
	}
	if s.Truncated != 3 {
		t.Errorf("truncated: got %d, want 3", s.Truncated)
	}

	report := s.Report()
	if !strings.Contains(report, "...and 3 more errors") {
		t.Errorf("report missing truncation note:\n%s", report)
	}
	if got := strings.Count(report, ".jpg:"); got != 5 {
		t.Errorf("report shows %d detailed failure lines, want 5", got)
	}
}

func TestReport_Format(t *testing.T) {
	s := Summary{Attempted: 3, Succeeded: 2, Failed: 1,
		Failures: []Failure{{Path: "a.jpg", Reason: "decode image: bad header"}}}

	report := s.Report()
	if !strings.Contains(report, "Processed 3 image(s): 2 succeeded, 1 failed") {
		t.Errorf("report totals line wrong:\n%s", report)
	}
	if !strings.Contains(report, "a.jpg: decode image: bad header") {
		t.Errorf("report missing path: reason line:\n%s", report)
	}
	if strings.Contains(report, "more errors") {
		t.Errorf("report should not mention truncation:\n%s", report)
	}
}
