// Package rng implements a deterministic PCG-XSH-RR generator with a
// 128-bit internal state producing unsigned 64-bit words and signed
// n-bit words (spec.md §4.F). Go has no native 128-bit integer type, so
// the state is carried as a (hi, lo) pair of uint64 words and advanced
// with math/bits' carrying multiply/add primitives — the standard
// idiom for fixed-width wide arithmetic in Go when no third-party
// big-integer/field-element library in this codebase's dependency set
// fits a deterministic, allocation-free 128-bit linear congruential
// step (see DESIGN.md).
package rng

import "math/bits"

// multiplier is PCG's 128-bit LCG constant, split into high and low
// 64-bit halves: 0x2360ed051fc65da44385df649fccf645.
const (
	multiplierHi uint64 = 0x2360ed051fc65da4
	multiplierLo uint64 = 0x4385df649fccf645
)

// u128 is a 128-bit unsigned integer as two uint64 words, most
// significant first.
type u128 struct {
	hi, lo uint64
}

// Pcg128 is a PCG generator seeded with a 128-bit state and a stream
// selector, matching the original construction exactly: increment =
// (stream << 1) | 1.
type Pcg128 struct {
	state     u128
	increment u128
}

// New builds a generator from a (state, stream) seed pair, both given as
// 128-bit values split into high/low 64-bit halves.
func New(stateHi, stateLo, streamHi, streamLo uint64) *Pcg128 {
	incHi, incLo := shiftLeft1(streamHi, streamLo)
	incLo |= 1
	return &Pcg128{
		state:     u128{stateHi, stateLo},
		increment: u128{incHi, incLo},
	}
}

// shiftLeft1 computes (hi:lo) << 1 as two uint64 words.
func shiftLeft1(hi, lo uint64) (uint64, uint64) {
	newHi := (hi << 1) | (lo >> 63)
	newLo := lo << 1
	return newHi, newLo
}

// mul128 computes the low 128 bits of a*b, both 128-bit operands,
// discarding overflow past bit 127 exactly as Rust's wrapping_mul does.
func mul128(a, b u128) u128 {
	hi, lo := bits.Mul64(a.lo, b.lo)
	hi += a.hi*b.lo + a.lo*b.hi
	return u128{hi, lo}
}

// add128 computes a+b mod 2^128, matching wrapping_add.
func add128(a, b u128) u128 {
	lo, carry := bits.Add64(a.lo, b.lo, 0)
	hi, _ := bits.Add64(a.hi, b.hi, carry)
	return u128{hi, lo}
}

// Next advances the internal state and returns the XSH-RR mixed 64-bit
// output word, per spec.md §4.F:
//
//	rot = state >> 122        (top 6 bits become a rotation amount)
//	xsh = (state >> 64) xor state, truncated to 64 bits
//	out = rotate_right(xsh, rot)
func (p *Pcg128) Next() uint64 {
	p.state = add128(mul128(p.state, u128{multiplierHi, multiplierLo}), p.increment)

	rot := uint(p.state.hi >> 58) // bits 58-63 of hi are bits 122-127 of the full 128-bit state
	xsh := p.state.hi ^ p.state.lo
	return bits.RotateLeft64(xsh, -int(rot))
}

// NextSigned returns a value uniformly distributed over the symmetric
// range for the given bit width, preserving sign: the raw 64-bit word
// reinterpreted as signed, then arithmetic-shifted right by (64-bits).
func (p *Pcg128) NextSigned(width uint) int64 {
	return int64(p.Next()) >> (64 - width)
}
