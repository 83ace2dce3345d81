// Package report renders a completed judging run as a human-readable
// summary, using dustin/go-humanize for the same kind of friendly
// duration/count formatting the teacher's ecosystem favors over raw
// numbers (the teacher's own go.mod carries go-humanize but never
// imports it directly; this is its first real use).
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"basedchecker/internal/verdict"
)

// Render produces a multi-line stderr-friendly block describing one
// judging run. It never affects the verdict or exit code — it is purely
// informational, gated behind the CLI's -report flag.
func Render(runID string, taskID int, v verdict.Verdict, fail *verdict.CheckerFail, elapsed time.Duration) string {
	var b strings.Builder
	fmt.Fprintf(&b, "run %s (task %d) finished in %s\n", runID, taskID, humanizeDuration(elapsed))
	if fail != nil {
		fmt.Fprintf(&b, "  checker failure: %s\n", fail.Message)
		return b.String()
	}
	fmt.Fprintf(&b, "  verdict: %s\n", v.Kind)
	if v.Message != "" {
		fmt.Fprintf(&b, "  detail: %s\n", v.Message)
	}
	if v.Kind == verdict.RuntimeError || v.Kind == verdict.CompileError {
		fmt.Fprintf(&b, "  line: %s\n", humanize.Ordinal(v.Line+1))
	}
	return b.String()
}

// humanizeDuration renders d as a friendly approximation ("3.2ms",
// "1.1s") rather than Go's default "%v" formatting.
func humanizeDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
	if d < time.Second {
		return fmt.Sprintf("%.1fms", float64(d.Microseconds())/1000)
	}
	return fmt.Sprintf("%.1fs", d.Seconds())
}

// TrialSummary formats a trial count for display, e.g. "50 trials".
func TrialSummary(n int) string {
	return humanize.Comma(int64(n)) + " " + pluralTrials(n)
}

func pluralTrials(n int) string {
	if n == 1 {
		return "trial"
	}
	return "trials"
}
