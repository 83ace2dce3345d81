package judge

import (
	"basedchecker/internal/rng"
	"basedchecker/internal/verdict"
)

// RunChecker is the full checker invocation (spec.md §4.H, §6): the
// jury's reference solution is judged first as a sanity check. If it
// does not come back Correct, the checker itself has failed — that is
// never reported as the candidate's verdict. Only once the jury passes
// is the candidate judged, and its verdict is what gets reported. Jury
// and candidate each get their own freshly-seeded PRNG, since each is
// judged independently against the same fixed seed contract.
func RunChecker(taskID int, candidateSource, jurySource []string, observe TrialObserver) (verdict.Verdict, *verdict.CheckerFail) {
	juryVerdict, fail := Judge(taskID, jurySource, rng.NewSeeded(), nil)
	if fail != nil {
		return verdict.Verdict{}, fail
	}
	if !juryVerdict.IsCorrect() {
		return verdict.Verdict{}, verdict.Fail("jury's solution failed with verdict %s", juryVerdict)
	}
	return Judge(taskID, candidateSource, rng.NewSeeded(), observe)
}
