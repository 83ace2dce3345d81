package vm

import (
	"math/bits"

	"basedchecker/internal/lang"
	"basedchecker/internal/verdict"
)

// Run drives the fetch-decode-execute loop until the program returns,
// hits a runtime error, or exceeds timeLimit. There is no normal
// completion without an explicit Return: falling off the last line is a
// runtime error (spec.md §4.E).
func Run(p *Program, timeLimit uint64) *verdict.Verdict {
	for !p.returned {
		if p.runtime > timeLimit {
			v := verdict.MakeTimeLimitExceeded()
			return &v
		}
		if verr := Step(p); verr != nil {
			return verr
		}
	}
	return nil
}

// Step executes exactly one instruction, per spec.md §4.E. It is exposed
// for the single-step console driver; Run is the ordinary trial loop.
func Step(p *Program) *verdict.Verdict {
	curPC := p.pc
	nextPC := curPC + 1

	if curPC < 0 || curPC >= len(p.Instructions) {
		return rterr(curPC, "that's not even a line")
	}
	inst := p.Instructions[curPC]

	p.runtime = saturatingAdd(p.runtime, p.Costs[curPC])

	switch inst.Op {
	case lang.Nop:
		// no effect

	case lang.Input:
		if inst.Dst.Kind != lang.Variable {
			return rterr(curPC, "input operand must be an identifier")
		}
		if len(p.input) == 0 {
			return rterr(curPC, "you're reading from nothing")
		}
		v := p.input[0]
		p.input = p.input[1:]
		p.vars[inst.Dst.Name] = v

	case lang.Output:
		if inst.Src.Kind == lang.Variable {
			v, ok := p.vars[inst.Src.Name]
			if !ok {
				return rterr(curPC, "you're printing nothing")
			}
			p.output = append(p.output, v.Clone())
		} else {
			val, verr := p.evalRead(inst.Src)
			if verr != nil {
				return verr
			}
			p.output = append(p.output, Integer(val))
		}

	case lang.Assign:
		set, verr := p.evalWrite(inst.Dst)
		if verr != nil {
			return verr
		}
		val, verr := p.evalRead(inst.Src)
		if verr != nil {
			return verr
		}
		set(val)

	case lang.Add:
		cur, verr := p.currentInt(inst.Dst)
		if verr != nil {
			return verr
		}
		set, verr := p.evalWrite(inst.Dst)
		if verr != nil {
			return verr
		}
		val, verr := p.evalRead(inst.Src)
		if verr != nil {
			return verr
		}
		set(cur + val) // two's-complement wrapping is Go's native int64 behavior

	case lang.Sub:
		cur, verr := p.currentInt(inst.Dst)
		if verr != nil {
			return verr
		}
		set, verr := p.evalWrite(inst.Dst)
		if verr != nil {
			return verr
		}
		val, verr := p.evalRead(inst.Src)
		if verr != nil {
			return verr
		}
		set(cur - val)

	case lang.Compare:
		a, verr := p.evalRead(inst.Dst)
		if verr != nil {
			return verr
		}
		b, verr := p.evalRead(inst.Src)
		if verr != nil {
			return verr
		}
		if !(a > b) {
			nextPC = curPC + 2
		}

	case lang.Jump:
		if inst.Src.Kind != lang.Constant {
			return rterr(curPC, "simp operand must be a constant")
		}
		// 1-based target. A result outside the program (negative, or past
		// the last line) is left as is and caught by the next fetch's
		// bounds check.
		nextPC = int(inst.Src.Value - 1)

	case lang.Return:
		p.returned = true

	default:
		return rterr(curPC, "malformed instruction")
	}

	p.pc = nextPC
	return nil
}

// saturatingAdd adds b to a without wrapping past the maximum
// representable uint64, matching spec.md §3's "runtime never overflows"
// invariant.
func saturatingAdd(a, b uint64) uint64 {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return ^uint64(0)
	}
	return sum
}
