package vm

import (
	"basedchecker/internal/lang"
)

// Program is the full execution state of a compiled toy-language source:
// the instruction/cost sequences produced once by internal/compiler, plus
// the mutable environment, queues, program counter, runtime meter, and
// return flag that a single trial mutates in place (spec.md §3).
type Program struct {
	Instructions []lang.Instruction
	Costs        []uint64

	vars     map[string]Value
	input    []Value
	output   []Value
	pc       int
	runtime  uint64
	returned bool
}

// NewProgram returns an empty Program with no instructions — the shape
// internal/compiler builds up line by line.
func NewProgram() *Program {
	return &Program{vars: make(map[string]Value)}
}

// Clone returns an independent copy suitable for one trial: instructions
// and costs are shared (they are immutable after compile), but the
// environment, queues, pc, runtime, and returned flag are all reset to a
// fresh start, per spec.md §5.
func (p *Program) Clone() *Program {
	return &Program{
		Instructions: p.Instructions,
		Costs:        p.Costs,
		vars:         make(map[string]Value),
	}
}

// PC returns the current 0-based program counter, useful for embedding in
// diagnostics raised by callers (e.g. the console's step command).
func (p *Program) PC() int { return p.pc }

// Returned reports whether a Return instruction has executed.
func (p *Program) Returned() bool { return p.returned }

// Runtime returns the accumulated cost meter.
func (p *Program) Runtime() uint64 { return p.runtime }

// Vars returns the live variable environment, for callers (the console
// driver's "vars" command) that need to inspect it between steps. It is
// the real map, not a copy — callers must treat it as read-only.
func (p *Program) Vars() map[string]Value { return p.vars }

// PushInput appends a value to the back of the input queue; the
// interpreter's Input instruction drains from the front.
func (p *Program) PushInput(v Value) {
	p.input = append(p.input, v)
}

// PopOutput removes and returns the front of the output queue.
func (p *Program) PopOutput() (Value, bool) {
	if len(p.output) == 0 {
		return Value{}, false
	}
	v := p.output[0]
	p.output = p.output[1:]
	return v, true
}

// HasOutput reports whether the output queue still holds values.
func (p *Program) HasOutput() bool {
	return len(p.output) > 0
}
