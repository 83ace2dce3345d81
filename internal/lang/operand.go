// Package lang recognizes the toy language's lexical surface: operands
// and instructions. It does not execute anything — that is internal/vm's
// job — it only turns text into the typed values internal/compiler and
// internal/vm operate on.
package lang

import (
	"strconv"
	"strings"
)

// compressLimit is the maximum number of characters an embedded token may
// contribute to an error message before it is truncated with an ellipsis.
const compressLimit = 32

// compress shortens s to at most compressLimit characters for embedding in
// a diagnostic message, so a malicious or huge token can't blow up error
// output.
func compress(s string) string {
	r := []rune(s)
	if len(r) <= compressLimit {
		return s
	}
	return string(r[:compressLimit-3]) + "..."
}

// isIdentifier reports whether s is a legal variable/array name: a
// non-empty ASCII run starting with a letter or underscore, continuing
// with letters, digits, or underscores.
func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, c := range s {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c == '_':
		case c >= '0' && c <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// OperandKind identifies which variant of Operand is populated.
type OperandKind int

const (
	Constant OperandKind = iota
	Variable
	ArrayConstIndex
	ArrayVarIndex
)

// Operand is a tagged value: exactly one of a signed constant, a bare
// variable name, an array indexed by a constant, or an array indexed by
// another variable.
type Operand struct {
	Kind  OperandKind
	Value int64  // Constant
	Name  string // Variable, ArrayConstIndex, ArrayVarIndex
	Index int64  // ArrayConstIndex
	IdxOf string // ArrayVarIndex
}

func (o Operand) String() string {
	switch o.Kind {
	case Constant:
		return strconv.FormatInt(o.Value, 10)
	case Variable:
		return o.Name
	case ArrayConstIndex:
		return o.Name + "[" + strconv.FormatInt(o.Index, 10) + "]"
	case ArrayVarIndex:
		return o.Name + "[" + o.IdxOf + "]"
	default:
		return "<invalid operand>"
	}
}

// ParseOperand recognizes one whitespace-free token as an Operand,
// trying each of the four surface forms in the order spec.md §4.A
// prescribes.
func ParseOperand(token string) (Operand, error) {
	if idx := strings.IndexByte(token, '['); idx >= 0 {
		return parseArrayIndex(token, idx)
	}
	if value, err := strconv.ParseInt(token, 10, 64); err == nil {
		return Operand{Kind: Constant, Value: value}, nil
	}
	if isIdentifier(token) {
		return Operand{Kind: Variable, Name: token}, nil
	}
	return Operand{}, &ParseError{
		Message: "cannot parse operand '" + compress(token) +
			"', should be one of: integer, identifier, identifier[integer], identifier[identifier]",
	}
}

func parseArrayIndex(token string, bracket int) (Operand, error) {
	head := token[:bracket]
	rest := token[bracket+1:]
	closeIdx := strings.IndexByte(rest, ']')
	if closeIdx < 0 || closeIdx != len(rest)-1 {
		return Operand{}, &ParseError{
			Message: "cannot parse index '" + compress(rest) + "', should be integer or identifier",
		}
	}
	index := rest[:closeIdx]
	if !isIdentifier(head) {
		return Operand{}, &ParseError{
			Message: "invalid identifier '" + compress(head) +
				"', should contain only letters, numbers, and '_', and cannot begin with a number",
		}
	}
	if value, err := strconv.ParseInt(index, 10, 64); err == nil {
		return Operand{Kind: ArrayConstIndex, Name: head, Index: value}, nil
	}
	if isIdentifier(index) {
		return Operand{Kind: ArrayVarIndex, Name: head, IdxOf: index}, nil
	}
	return Operand{}, &ParseError{
		Message: "cannot parse index '" + compress(index) + "', should be integer or identifier",
	}
}

// ParseError is the plain compile-time diagnostic produced by the
// operand/instruction recognizers. internal/compiler attaches a line
// number to turn it into a verdict.CompileError.
type ParseError struct {
	Message string
}

func (e *ParseError) Error() string { return e.Message }
