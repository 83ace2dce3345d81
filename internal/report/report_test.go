package report

import (
	"strings"
	"testing"
	"time"

	"basedchecker/internal/verdict"
)

func TestRenderIncludesVerdictAndRunID(t *testing.T) {
	v := verdict.MakeWrongAnswer("git gud")
	out := Render("run-1", 2, v, nil, 12*time.Millisecond)
	if !strings.Contains(out, "run-1") {
		t.Errorf("missing run id: %s", out)
	}
	if !strings.Contains(out, "WrongAnswer") {
		t.Errorf("missing verdict kind: %s", out)
	}
	if !strings.Contains(out, "git gud") {
		t.Errorf("missing detail: %s", out)
	}
}

func TestRenderPrefersCheckerFailure(t *testing.T) {
	fail := verdict.Fail("jury solution failed")
	out := Render("run-2", 1, verdict.Verdict{}, fail, time.Second)
	if !strings.Contains(out, "checker failure") {
		t.Errorf("expected checker failure wording, got %s", out)
	}
}

func TestRenderIncludesLineForRuntimeErrors(t *testing.T) {
	v := verdict.MakeRuntimeError(4, "no such variable x")
	out := Render("run-3", 1, v, nil, time.Millisecond)
	if !strings.Contains(out, "5th") {
		t.Errorf("expected a humanized 1-based line ordinal, got %s", out)
	}
}

func TestHumanizeDurationBuckets(t *testing.T) {
	cases := []struct {
		d    time.Duration
		want string
	}{
		{500 * time.Nanosecond, "500ns"},
		{2500 * time.Microsecond, "2.5ms"},
		{3 * time.Second, "3.0s"},
	}
	for _, tc := range cases {
		if got := humanizeDuration(tc.d); got != tc.want {
			t.Errorf("humanizeDuration(%v) = %q, want %q", tc.d, got, tc.want)
		}
	}
}

func TestTrialSummaryPluralization(t *testing.T) {
	if got := TrialSummary(1); got != "1 trial" {
		t.Errorf("got %q", got)
	}
	if got := TrialSummary(10); got != "10 trials" {
		t.Errorf("got %q", got)
	}
}
