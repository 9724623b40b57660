// Package batch drives image jobs over a list of inputs and collects
// a summary.
//
// Processing is strictly sequential in input order so failures map
// deterministically to inputs and re-runs produce identical reports.
// One failing item never stops the batch.
package batch

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/lensmark/lensmark/internal/job"
)

// maxReportedFailures caps the detailed failure lines in a report;
// further failures are folded into a remainder count.
const maxReportedFailures = 5

// Failure records one input that could not be processed.
type Failure struct {
	Path   string
	Reason string
}

// Summary accumulates the result of one batch run. It is the only
// state that outlives individual jobs.
type Summary struct {
	Attempted int
	Succeeded int
	Failed    int
	// Failures holds up to maxReportedFailures entries in input order.
	Failures []Failure
	// Truncated counts failures beyond the reporting cap.
	Truncated int
}

// Runner executes jobs sequentially. An empty input list is zero work,
// not an error.
type Runner struct {
	Processor *job.Processor
	Logger    *zap.Logger
}

// Run processes every path in order and returns the summary. Each
// failure is converted into a Failure entry; Run itself never fails.
func (r *Runner) Run(paths []string) Summary {
	s := Summary{Attempted: len(paths)}

	for i, path := range paths {
		r.Logger.Info("processing image",
			zap.Int("index", i+1),
			zap.Int("total", len(paths)),
			zap.String("path", path))

		out, err := r.Processor.Process(path)
		if err != nil {
			r.Logger.Error("processing failed",
				zap.String("path", path), zap.Error(err))
			s.record(Failure{Path: path, Reason: err.Error()})
			continue
		}

		r.Logger.Info("saved bordered image", zap.String("output", out))
		s.Succeeded++
	}

	return s
}

func (s *Summary) record(f Failure) {
	s.Failed++
	if len(s.Failures) < maxReportedFailures {
		s.Failures = append(s.Failures, f)
		return
	}
	s.Truncated++
}

// Report renders the human-readable multi-line summary: totals, then
// up to maxReportedFailures "path: reason" lines, then a truncation
// note if more failures occurred.
func (s Summary) Report() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Processed %d image(s): %d succeeded, %d failed\n",
		s.Attempted, s.Succeeded, s.Failed)
	for _, f := range s.Failures {
		fmt.Fprintf(&b, "  %s: %s\n", f.Path, f.Reason)
	}
	if s.Truncated > 0 {
		fmt.Fprintf(&b, "  ...and %d more errors\n", s.Truncated)
	}
	return b.String()
}
