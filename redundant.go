package iconlint

import (
	"fmt"
	"strings"
)

// Redundancy describes an instruction that draws nothing new.
type Redundancy struct {
	// Index is the position of the instruction in the path.
	Index int
	// Instruction is the instruction as written.
	Instruction Instruction
	// Suggestion is an equivalent simpler instruction, if one exists.
	Suggestion string
}

// Readable renders the instruction with its operands grouped into
// coordinate pairs, e.g. "c0 0, 0 0, 5 5".
func (r Redundancy) Readable() string {
	in := r.Instruction
	var sb strings.Builder
	sb.WriteString(in.Command.String())
	for i, v := range in.Operands {
		switch {
		case i == 0:
		case i%2 == 1:
			sb.WriteByte(' ')
		default:
			sb.WriteString(", ")
		}
		sb.WriteString(FormatNumber(v))
	}
	return sb.String()
}

func (r Redundancy) String() string {
	if r.Suggestion == "" {
		return r.Readable()
	}
	return fmt.Sprintf("%s (should be %q)", r.Readable(), r.Suggestion)
}

// Redundancies returns the instructions of p that leave the rendered
// geometry unchanged. See RedundanciesResolved.
func Redundancies(p *Path) []Redundancy {
	return RedundanciesResolved(Resolve(p))
}

// RedundanciesResolved scans a resolved instruction sequence for
// ineffective instructions:
//
//   - h or v with a zero delta;
//   - m or l with both deltas zero (an initial m is an absolute move);
//   - s whose first control point delta is zero, which is a plain line;
//   - c whose first control point delta is zero and whose second control
//     point or endpoint delta is also zero;
//   - H, V, M or L landing exactly on the previous point.
func RedundanciesResolved(rs []ResolvedInstruction) []Redundancy {
	var out []Redundancy
	for i, r := range rs {
		if red, ok := redundancyAt(rs, i); ok {
			red.Index = i
			red.Instruction = r.Instruction
			out = append(out, red)
		}
	}
	return out
}

func redundancyAt(rs []ResolvedInstruction, i int) (Redundancy, bool) {
	in := rs[i].Instruction
	ops := in.Operands

	switch in.Command {
	case RelHorizontalTo, RelVerticalTo:
		return Redundancy{}, ops[0] == 0
	case RelMoveTo:
		return Redundancy{}, i > 0 && ops[0] == 0 && ops[1] == 0
	case RelLineTo:
		return Redundancy{}, ops[0] == 0 && ops[1] == 0
	case RelSmoothCubicTo:
		if ops[0] != 0 || ops[1] != 0 {
			return Redundancy{}, false
		}
		return Redundancy{Suggestion: lineSuggestion(ops[2], ops[3])}, true
	case RelCubicTo:
		if ops[0] != 0 || ops[1] != 0 {
			return Redundancy{}, false
		}
		if ops[2] == 0 && ops[3] == 0 {
			return Redundancy{Suggestion: lineSuggestion(ops[4], ops[5])}, true
		}
		return Redundancy{}, ops[4] == 0 && ops[5] == 0
	case HorizontalTo:
		x, _, haveX, _ := previousPoint(rs, i)
		return Redundancy{}, haveX && ops[0] == x
	case VerticalTo:
		_, y, _, haveY := previousPoint(rs, i)
		return Redundancy{}, haveY && ops[0] == y
	case MoveTo, LineTo:
		x, y, haveX, haveY := previousPoint(rs, i)
		return Redundancy{}, haveX && haveY && ops[0] == x && ops[1] == y
	}
	return Redundancy{}, false
}

// lineSuggestion returns the relative line replacing a degenerate curve,
// or "" if the curve ends where it starts.
func lineSuggestion(dx, dy float64) string {
	if dx == 0 && dy == 0 {
		return ""
	}
	return Instruction{Command: RelLineTo, Operands: []float64{dx, dy}}.String()
}

// previousPoint finds the absolute point reached before instruction i.
//
// H only defines x and V only defines y, so after a run of them the loop
// keeps walking back until both coordinates are known or the start of the
// path is reached. Every other instruction defines both.
func previousPoint(rs []ResolvedInstruction, i int) (x, y float64, haveX, haveY bool) {
	for j := i - 1; j >= 0 && !(haveX && haveY); j-- {
		r := rs[j]
		switch r.Abs.Command {
		case HorizontalTo:
			if !haveX {
				x, haveX = r.Abs.Operands[0], true
			}
		case VerticalTo:
			if !haveY {
				y, haveY = r.Abs.Operands[0], true
			}
		default:
			if !haveX {
				x, haveX = r.End.X, true
			}
			if !haveY {
				y, haveY = r.End.Y, true
			}
		}
	}
	return x, y, haveX, haveY
}
