package vm

import (
	"fmt"

	"basedchecker/internal/lang"
	"basedchecker/internal/verdict"
)

// readInt resolves a bare name to its integer value. Every failure here
// carries the program's current pc, per spec.md §4.D.
func (p *Program) readInt(name string) (int64, *verdict.Verdict) {
	v, ok := p.vars[name]
	if !ok {
		return 0, rterr(p.pc, "no such variable %s", lang.Compress(name))
	}
	if v.Kind != IntegerValue {
		return 0, rterr(p.pc, "expected integer, found array %s", lang.Compress(name))
	}
	return v.Int, nil
}

func (p *Program) readArray(name string) ([]int64, *verdict.Verdict) {
	v, ok := p.vars[name]
	if !ok {
		return nil, rterr(p.pc, "no such variable %s", lang.Compress(name))
	}
	if v.Kind != ArrayValue {
		return nil, rterr(p.pc, "expected array, found integer %s", lang.Compress(name))
	}
	return v.Array, nil
}

// evalRead evaluates an operand in read position, per spec.md §4.D.
func (p *Program) evalRead(op lang.Operand) (int64, *verdict.Verdict) {
	switch op.Kind {
	case lang.Constant:
		return op.Value, nil
	case lang.Variable:
		return p.readInt(op.Name)
	case lang.ArrayConstIndex:
		arr, verr := p.readArray(op.Name)
		if verr != nil {
			return 0, verr
		}
		idx := op.Index
		if idx < 0 || uint64(idx) >= uint64(len(arr)) {
			return 0, rterr(p.pc, "index %d out of bounds", idx)
		}
		return arr[idx], nil
	case lang.ArrayVarIndex:
		idxVal, verr := p.readInt(op.IdxOf)
		if verr != nil {
			return 0, verr
		}
		arr, verr := p.readArray(op.Name)
		if verr != nil {
			return 0, verr
		}
		// A negative index cast to unsigned becomes enormous and fails
		// the bounds check cleanly (spec.md §4.D), never panics.
		uidx := uint64(idxVal)
		if uidx >= uint64(len(arr)) {
			return 0, rterr(p.pc, "index %d out of bounds", uidx)
		}
		return arr[uidx], nil
	default:
		return 0, rterr(p.pc, "malformed operand")
	}
}

// evalWrite resolves an operand in write-reference position and returns
// a setter for it. Constant operands are rejected; a bare Variable
// operand auto-creates as integer 0 if unbound (spec.md §9).
func (p *Program) evalWrite(op lang.Operand) (set func(int64), verr *verdict.Verdict) {
	switch op.Kind {
	case lang.Constant:
		return nil, rterr(p.pc, "constant %d is not assignable", op.Value)
	case lang.Variable:
		v, ok := p.vars[op.Name]
		if !ok {
			v = Integer(0)
			p.vars[op.Name] = v
		}
		if v.Kind != IntegerValue {
			return nil, rterr(p.pc, "expected integer, found array %s", lang.Compress(op.Name))
		}
		name := op.Name
		return func(val int64) { p.vars[name] = Integer(val) }, nil
	case lang.ArrayConstIndex:
		arr, verr := p.readArray(op.Name)
		if verr != nil {
			return nil, verr
		}
		idx := op.Index
		if idx < 0 || uint64(idx) >= uint64(len(arr)) {
			return nil, rterr(p.pc, "index %d out of bounds", idx)
		}
		return func(val int64) { arr[idx] = val }, nil
	case lang.ArrayVarIndex:
		idxVal, verr := p.readInt(op.IdxOf)
		if verr != nil {
			return nil, verr
		}
		arr, verr := p.readArray(op.Name)
		if verr != nil {
			return nil, verr
		}
		uidx := uint64(idxVal)
		if uidx >= uint64(len(arr)) {
			return nil, rterr(p.pc, "index %d out of bounds", uidx)
		}
		return func(val int64) { arr[uidx] = val }, nil
	default:
		return nil, rterr(p.pc, "malformed operand")
	}
}

// currentInt reads the present value of a write-reference operand,
// needed by Add/Sub which mutate relative to the prior value rather than
// overwrite it. Unlike evalRead, a still-unbound Variable reads as 0
// instead of erroring, since evalWrite is about to create it anyway.
func (p *Program) currentInt(op lang.Operand) (int64, *verdict.Verdict) {
	if op.Kind == lang.Variable {
		if v, ok := p.vars[op.Name]; ok {
			if v.Kind != IntegerValue {
				return 0, rterr(p.pc, "expected integer, found array %s", lang.Compress(op.Name))
			}
			return v.Int, nil
		}
		return 0, nil
	}
	return p.evalRead(op)
}

func rterr(pc int, format string, args ...any) *verdict.Verdict {
	v := verdict.MakeRuntimeError(pc, fmt.Sprintf(format, args...))
	return &v
}
