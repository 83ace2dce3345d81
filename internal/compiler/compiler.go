// Package compiler turns toy-language source lines into a Program ready
// for internal/vm to execute, accumulating the per-instruction cost the
// interpreter later charges against a task's time budget.
package compiler

import (
	"strings"

	"basedchecker/internal/lang"
	"basedchecker/internal/vm"
	"basedchecker/internal/verdict"
)

// instructionBaseCost is the fixed per-line overhead added to every
// instruction's byte length, per spec.md §4.C.
const instructionBaseCost = 5

// Compile turns an ordered sequence of source lines into a vm.Program, or
// returns the compile-time verdict that explains why it could not.
//
// Lines are scanned in order. A case-insensitive "based" substring on any
// line immediately wins over every other diagnostic, including ones
// already produced by earlier lines surviving to this point — but not
// retroactively: a CompileError already returned for an earlier line is
// never un-returned.
func Compile(lines []string) (*vm.Program, *verdict.Verdict) {
	prog := vm.NewProgram()
	for lineno, line := range lines {
		if strings.Contains(strings.ToLower(line), "based") {
			v := verdict.MakeBased()
			return nil, &v
		}
		inst, err := lang.ParseInstruction(line)
		if err != nil {
			v := verdict.MakeCompileError(lineno, err.Error())
			return nil, &v
		}
		prog.Instructions = append(prog.Instructions, inst)
		prog.Costs = append(prog.Costs, uint64(len(line))+instructionBaseCost)
	}
	return prog, nil
}
