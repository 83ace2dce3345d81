// Package harness implements the four concrete tasks (spec.md §4.G):
// each seeds a cloned Program's input queue from the shared PRNG,
// computes the expected answer, runs the program under a time limit, and
// checks the single output value it produced.
package harness

import (
	"basedchecker/internal/rng"
	"basedchecker/internal/verdict"
	"basedchecker/internal/vm"
)

// Task prepares one trial's input/expected-answer pair against a cloned
// Program, sharing the caller's PRNG state across every trial and task
// in the judging session (spec.md §4.G: "the PRNG is shared across
// trials and tasks").
type Task interface {
	Prepare(p *vm.Program, r *rng.Pcg128) int64
}

// RunAndCheck executes the common prepare/execute/check cycle shared by
// every task (spec.md §4.G).
func RunAndCheck(t Task, p *vm.Program, r *rng.Pcg128, timeLimit uint64) verdict.Verdict {
	expected := t.Prepare(p, r)

	if verr := vm.Run(p, timeLimit); verr != nil {
		return *verr
	}

	out, ok := p.PopOutput()
	if !ok {
		return verdict.MakeWrongAnswer("print something")
	}
	if out.Kind == vm.ArrayValue {
		return verdict.MakeWrongAnswer("U PRINTERD AN ENTRIE ARRAY???")
	}
	if p.HasOutput() {
		return verdict.MakeWrongAnswer("too much stuff printed")
	}
	if out.Int != expected {
		return verdict.MakeWrongAnswer("git gud")
	}
	return verdict.MakeCorrect()
}
