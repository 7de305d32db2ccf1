package iconlint

import (
	"strconv"
	"strings"
)

// Command is a single path-data command letter.
// Uppercase commands take absolute coordinates, lowercase relative ones.
type Command byte

// Supported commands.
const (
	MoveTo           Command = 'M'
	LineTo           Command = 'L'
	HorizontalTo     Command = 'H'
	VerticalTo       Command = 'V'
	CubicTo          Command = 'C'
	SmoothCubicTo    Command = 'S'
	ClosePath        Command = 'Z'
	RelMoveTo        Command = 'm'
	RelLineTo        Command = 'l'
	RelHorizontalTo  Command = 'h'
	RelVerticalTo    Command = 'v'
	RelCubicTo       Command = 'c'
	RelSmoothCubicTo Command = 's'
	RelClosePath     Command = 'z'
)

// Arity returns the number of operands the command takes,
// or -1 if the command is not supported.
func (c Command) Arity() int {
	switch c.Abs() {
	case MoveTo, LineTo:
		return 2
	case HorizontalTo, VerticalTo:
		return 1
	case CubicTo:
		return 6
	case SmoothCubicTo:
		return 4
	case ClosePath:
		return 0
	}
	return -1
}

// Valid reports whether c is one of the supported commands.
func (c Command) Valid() bool {
	return c.Arity() >= 0
}

// IsRelative reports whether the command takes relative coordinates.
func (c Command) IsRelative() bool {
	return c >= 'a' && c <= 'z'
}

// Abs returns the absolute (uppercase) form of the command.
func (c Command) Abs() Command {
	if c.IsRelative() {
		return c - 'a' + 'A'
	}
	return c
}

// IsCurve reports whether the command draws a cubic curve.
func (c Command) IsCurve() bool {
	a := c.Abs()
	return a == CubicTo || a == SmoothCubicTo
}

func (c Command) String() string {
	return string(rune(c))
}

// Instruction is a command letter with its operands.
type Instruction struct {
	Command  Command
	Operands []float64
}

// String returns the canonical form of the instruction, e.g. "C1 2 3 4 5 6".
// ParsePath reads the canonical form back into an identical Instruction.
func (in Instruction) String() string {
	var sb strings.Builder
	sb.WriteByte(byte(in.Command))
	for i, v := range in.Operands {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(FormatNumber(v))
	}
	return sb.String()
}

// Path is an ordered, immutable sequence of instructions.
type Path struct {
	raw          string
	instructions []Instruction
}

// NewPath builds a Path from instructions. The slice is copied.
func NewPath(instructions ...Instruction) *Path {
	p := &Path{instructions: make([]Instruction, len(instructions))}
	for i, in := range instructions {
		p.instructions[i] = Instruction{
			Command:  in.Command,
			Operands: append([]float64(nil), in.Operands...),
		}
	}
	return p
}

// Len returns the number of instructions in the path.
func (p *Path) Len() int {
	return len(p.instructions)
}

// At returns the instruction at index i.
// The returned operand slice must not be modified.
func (p *Path) At(i int) Instruction {
	return p.instructions[i]
}

// Instructions returns a copy of the instruction sequence.
func (p *Path) Instructions() []Instruction {
	out := make([]Instruction, len(p.instructions))
	copy(out, p.instructions)
	return out
}

// Raw returns the path data the path was parsed from, or the canonical
// form if it was built with NewPath.
func (p *Path) Raw() string {
	if p.raw == "" && len(p.instructions) > 0 {
		return p.String()
	}
	return p.raw
}

// String returns the canonical path data for the path.
func (p *Path) String() string {
	parts := make([]string, len(p.instructions))
	for i, in := range p.instructions {
		parts[i] = in.String()
	}
	return strings.Join(parts, " ")
}

// FormatNumber formats v with the fewest digits that read back to v.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
