package judge_test

import (
	"testing"

	"basedchecker/internal/judge"
	"basedchecker/internal/rng"
	"basedchecker/internal/verdict"
)

var task1Solution = []string{
	"yoink a",
	"yoink b",
	"*slaps b on top of a*",
	"yeet a",
	"go touch some grass",
}

// task2Solution computes |a| without a dedicated absolute-value
// instruction: when a is negative it's negated into a scratch variable
// (auto-created at 0 on first write) before being printed.
var task2Solution = []string{
	"yoink a",
	"vibe check a ratios -1",
	"simp for 7",
	"rip this neg fell off by a",
	"rip this a fell off by a",
	"*slaps neg on top of a*",
	"yeet a",
	"go touch some grass",
}

func TestJudgeTask1AllTrialsCorrect(t *testing.T) {
	v, fail := judge.Judge(1, task1Solution, rng.NewSeeded(), nil)
	if fail != nil {
		t.Fatalf("unexpected checker failure: %v", fail)
	}
	if !v.IsCorrect() {
		t.Fatalf("got %v, want Correct", v)
	}
}

func TestJudgeTask2AllTrialsCorrect(t *testing.T) {
	v, fail := judge.Judge(2, task2Solution, rng.NewSeeded(), nil)
	if fail != nil {
		t.Fatalf("unexpected checker failure: %v", fail)
	}
	if !v.IsCorrect() {
		t.Fatalf("got %v, want Correct", v)
	}
}

func TestJudgeUnknownTaskIsACheckerFailure(t *testing.T) {
	_, fail := judge.Judge(99, task1Solution, rng.NewSeeded(), nil)
	if fail == nil {
		t.Fatal("expected a checker failure for an unrecognized task id")
	}
}

func TestJudgeCompileErrorShortCircuits(t *testing.T) {
	v, fail := judge.Judge(1, []string{"nonsense line here"}, rng.NewSeeded(), nil)
	if fail != nil {
		t.Fatalf("unexpected checker failure: %v", fail)
	}
	if v.Kind != verdict.CompileError {
		t.Fatalf("got %v, want CompileError", v)
	}
}

func TestJudgeBasedSourceIsReportedImmediately(t *testing.T) {
	v, fail := judge.Judge(1, []string{"this is so based"}, rng.NewSeeded(), nil)
	if fail != nil {
		t.Fatalf("unexpected checker failure: %v", fail)
	}
	if v.Kind != verdict.Based {
		t.Fatalf("got %v, want Based", v)
	}
}

func TestJudgeWrongAnswerStopsAtFirstFailingTrial(t *testing.T) {
	alwaysZero := []string{"yeet 0", "go touch some grass"}
	v, fail := judge.Judge(1, alwaysZero, rng.NewSeeded(), nil)
	if fail != nil {
		t.Fatalf("unexpected checker failure: %v", fail)
	}
	if v.Kind != verdict.WrongAnswer {
		t.Fatalf("got %v, want WrongAnswer", v)
	}
}

func TestJudgeObserverSeesEveryTrial(t *testing.T) {
	var seen []verdict.Verdict
	observe := func(trial int, v verdict.Verdict) { seen = append(seen, v) }

	v, fail := judge.Judge(1, task1Solution, rng.NewSeeded(), observe)
	if fail != nil {
		t.Fatalf("unexpected checker failure: %v", fail)
	}
	if !v.IsCorrect() {
		t.Fatalf("got %v, want Correct", v)
	}
	if len(seen) != 10 {
		t.Fatalf("expected 10 observed trials, got %d", len(seen))
	}
	for i, sv := range seen {
		if !sv.IsCorrect() {
			t.Errorf("trial %d: got %v, want Correct", i, sv)
		}
	}
}

func TestRunCheckerRejectsAFailingJury(t *testing.T) {
	alwaysZero := []string{"yeet 0", "go touch some grass"}
	_, fail := judge.RunChecker(1, task1Solution, alwaysZero, nil)
	if fail == nil {
		t.Fatal("expected a checker failure when the jury's own solution is not Correct")
	}
}

func TestRunCheckerJudgesTheCandidateAfterTheJuryPasses(t *testing.T) {
	v, fail := judge.RunChecker(1, task1Solution, task1Solution, nil)
	if fail != nil {
		t.Fatalf("unexpected checker failure: %v", fail)
	}
	if !v.IsCorrect() {
		t.Fatalf("got %v, want Correct", v)
	}
}
