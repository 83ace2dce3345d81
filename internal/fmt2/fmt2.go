// Package fmt2 is a source formatter for the toy language: it
// re-tokenizes each line through internal/lang's own parsing rules and
// re-emits the canonical single-space-separated spelling of whichever
// keyword template matched, so stray tabs, doubled spaces, or trailing
// whitespace in a submission never change how a line parses or reads.
package fmt2

import (
	"fmt"
	"strings"

	"basedchecker/internal/lang"
)

// Format re-renders every line of source in its canonical spelling. A
// blank or whitespace-only line formats to the empty string, matching
// the no-op instruction it parses to. If any line fails to parse, Format
// returns no lines and an error naming the 1-based number of the first
// such line.
func Format(source []string) ([]string, error) {
	out := make([]string, len(source))
	for i, line := range source {
		inst, err := lang.ParseInstruction(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		out[i] = render(inst)
	}
	return out, nil
}

// render reproduces exactly one of the eight keyword templates
// internal/lang.ParseInstruction recognizes, the inverse of that
// recognition.
func render(inst lang.Instruction) string {
	switch inst.Op {
	case lang.Nop:
		return ""
	case lang.Input:
		return "yoink " + inst.Dst.String()
	case lang.Output:
		return "yeet " + inst.Src.String()
	case lang.Assign:
		return "bruh " + inst.Dst.String() + " is lowkey just " + inst.Src.String()
	case lang.Add:
		return "*slaps " + inst.Src.String() + " on top of " + inst.Dst.String() + "*"
	case lang.Sub:
		return "rip this " + inst.Dst.String() + " fell off by " + inst.Src.String()
	case lang.Compare:
		return "vibe check " + inst.Dst.String() + " ratios " + inst.Src.String()
	case lang.Jump:
		return "simp for " + inst.Src.String()
	case lang.Return:
		return "go touch some grass"
	default:
		return ""
	}
}

// Join is a small convenience wrapper so callers don't need to import
// strings just to write the formatted lines back out with trailing
// newlines.
func Join(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}
