// Package judge is the top-level entry point (spec.md §4.H): compile
// once, run every prescribed trial for a task, short-circuit on the
// first non-Correct verdict.
package judge

import (
	"basedchecker/internal/compiler"
	"basedchecker/internal/harness"
	"basedchecker/internal/rng"
	"basedchecker/internal/verdict"
	"basedchecker/internal/vm"
)

const (
	task1TimeLimit uint64 = 100_000
	task2TimeLimit uint64 = 100_000
	task3TimeLimit uint64 = 100_000
	task4TimeLimit uint64 = 2_500_000

	arrayTaskMaxN = 50
)

// TrialObserver is notified after every individual trial completes,
// correct or not. It exists purely for side-channel instrumentation
// (component M's live dashboard) and never influences judging.
type TrialObserver func(trial int, v verdict.Verdict)

// Judge compiles source and, if it compiles, dispatches to the trial
// battery for taskID against the shared PRNG r. The first non-Correct
// verdict short-circuits the whole run; an all-Correct run returns
// Correct. An unrecognized taskID is a checker-internal failure, never a
// Verdict (spec.md §4.H). observe may be nil.
func Judge(taskID int, source []string, r *rng.Pcg128, observe TrialObserver) (verdict.Verdict, *verdict.CheckerFail) {
	template, compileVerdict := compiler.Compile(source)
	if compileVerdict != nil {
		return *compileVerdict, nil
	}

	switch taskID {
	case 1:
		return runTrials(template, r, task1TimeLimit, fixedTrials(10, harness.Task1{}), observe), nil
	case 2:
		return runTrials(template, r, task2TimeLimit, fixedTrials(10, harness.Task2{}), observe), nil
	case 3:
		return runTrials(template, r, task3TimeLimit, task3Trials(), observe), nil
	case 4:
		return runTrials(template, r, task4TimeLimit, task4Trials(), observe), nil
	default:
		return verdict.Verdict{}, verdict.Fail("unknown task id %d", taskID)
	}
}

// runTrials clones template once per trial (spec.md §5: only instructions
// and costs are shared; everything else resets) and stops at the first
// non-Correct verdict.
func runTrials(template *vm.Program, r *rng.Pcg128, timeLimit uint64, trials []harness.Task, observe TrialObserver) verdict.Verdict {
	for i, task := range trials {
		v := harness.RunAndCheck(task, template.Clone(), r, timeLimit)
		if observe != nil {
			observe(i, v)
		}
		if !v.IsCorrect() {
			return v
		}
	}
	return verdict.MakeCorrect()
}

func fixedTrials(count int, task harness.Task) []harness.Task {
	trials := make([]harness.Task, count)
	for i := range trials {
		trials[i] = task
	}
	return trials
}

// task3Trials runs one trial per array size 1..=50.
func task3Trials() []harness.Task {
	trials := make([]harness.Task, 0, arrayTaskMaxN)
	for n := 1; n <= arrayTaskMaxN; n++ {
		trials = append(trials, harness.Task3{N: n})
	}
	return trials
}

// task4Trials runs (25/n)+1 trials per array size 1..=50 (integer
// division — spec.md §9 preserves this exactly, asymmetry and all).
func task4Trials() []harness.Task {
	var trials []harness.Task
	for n := 1; n <= arrayTaskMaxN; n++ {
		count := 25/n + 1
		for i := 0; i < count; i++ {
			trials = append(trials, harness.Task4{N: n})
		}
	}
	return trials
}
