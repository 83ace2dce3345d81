package lang

import "strings"

// Opcode identifies which variant of Instruction is populated.
type Opcode int

const (
	Nop Opcode = iota
	Input
	Output
	Assign
	Add
	Sub
	Compare
	Jump
	Return
)

// Instruction is a single decoded line of source. Dst/Src are populated
// according to Op; unused fields are left zero.
type Instruction struct {
	Op  Opcode
	Dst Operand
	Src Operand
}

// fields splits a line on runs of ASCII whitespace, dropping empty
// tokens, matching spec.md §4.B exactly (no quoting, no escapes).
func fields(line string) []string {
	return strings.FieldsFunc(line, func(r rune) bool {
		switch r {
		case ' ', '\t', '\n', '\r', '\v', '\f':
			return true
		default:
			return false
		}
	})
}

// ParseInstruction recognizes one source line as an Instruction by
// matching its whitespace-split tokens against the closed set of keyword
// templates in spec.md §4.B, case-sensitively.
func ParseInstruction(line string) (Instruction, error) {
	tokens := fields(line)
	switch {
	case len(tokens) == 0:
		return Instruction{Op: Nop}, nil

	case len(tokens) == 2 && tokens[0] == "yoink":
		dst, err := ParseOperand(tokens[1])
		if err != nil {
			return Instruction{}, err
		}
		return Instruction{Op: Input, Dst: dst}, nil

	case len(tokens) == 2 && tokens[0] == "yeet":
		src, err := ParseOperand(tokens[1])
		if err != nil {
			return Instruction{}, err
		}
		return Instruction{Op: Output, Src: src}, nil

	case len(tokens) == 6 && tokens[0] == "bruh" && tokens[2] == "is" &&
		tokens[3] == "lowkey" && tokens[4] == "just":
		dst, err := ParseOperand(tokens[1])
		if err != nil {
			return Instruction{}, err
		}
		src, err := ParseOperand(tokens[5])
		if err != nil {
			return Instruction{}, err
		}
		return Instruction{Op: Assign, Dst: dst, Src: src}, nil

	case len(tokens) == 6 && tokens[0] == "*slaps" && tokens[2] == "on" &&
		tokens[3] == "top" && tokens[4] == "of" && strings.HasSuffix(tokens[5], "*"):
		dstTok := tokens[5][:len(tokens[5])-1]
		dst, err := ParseOperand(dstTok)
		if err != nil {
			return Instruction{}, err
		}
		src, err := ParseOperand(tokens[1])
		if err != nil {
			return Instruction{}, err
		}
		return Instruction{Op: Add, Dst: dst, Src: src}, nil

	case len(tokens) == 7 && tokens[0] == "rip" && tokens[1] == "this" &&
		tokens[3] == "fell" && tokens[4] == "off" && tokens[5] == "by":
		dst, err := ParseOperand(tokens[2])
		if err != nil {
			return Instruction{}, err
		}
		src, err := ParseOperand(tokens[6])
		if err != nil {
			return Instruction{}, err
		}
		return Instruction{Op: Sub, Dst: dst, Src: src}, nil

	case len(tokens) == 5 && tokens[0] == "vibe" && tokens[1] == "check" &&
		tokens[3] == "ratios":
		return parseCompare(tokens)

	case len(tokens) == 3 && tokens[0] == "simp" && tokens[1] == "for":
		src, err := ParseOperand(tokens[2])
		if err != nil {
			return Instruction{}, err
		}
		return Instruction{Op: Jump, Src: src}, nil

	case len(tokens) == 4 && tokens[0] == "go" && tokens[1] == "touch" &&
		tokens[2] == "some" && tokens[3] == "grass":
		return Instruction{Op: Return}, nil
	}

	return Instruction{}, &ParseError{Message: "unknown expression: '" + compress(line) + "'"}
}

// parseCompare exists only to keep the vibe-check branch above readable;
// tokens is already known to be exactly ["vibe","check",dst,"ratios",src].
func parseCompare(tokens []string) (Instruction, error) {
	a, err := ParseOperand(tokens[2])
	if err != nil {
		return Instruction{}, err
	}
	b, err := ParseOperand(tokens[4])
	if err != nil {
		return Instruction{}, err
	}
	return Instruction{Op: Compare, Dst: a, Src: b}, nil
}
