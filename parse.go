package iconlint

import (
	"errors"
	"fmt"
	"strconv"

	parsestrconv "github.com/tdewolff/parse/v2/strconv"
)

// excerptLen caps the offending substring carried by MalformedPathError.
const excerptLen = 16

// ParsePath tokenizes SVG path data into a Path.
//
// Numbers follow the SVG grammar: optional sign, digits, optional fraction
// and exponent, separated by commas or whitespace or simply run together
// ("1-2", ".5.5"). Repeated operand sets after one command expand into one
// instruction per set; extra sets after M and m become L and l.
//
// Only the M, L, H, V, C, S and Z commands (and their relative forms) are
// accepted. Any failure is reported as a *MalformedPathError.
func ParsePath(d string) (*Path, error) {
	b := []byte(d)
	p := &Path{raw: d}

	i := skipCommaWhitespace(b, 0)
	for i < len(b) {
		if !isLetter(b[i]) {
			return nil, malformed(b, i, "expected a command letter")
		}
		cmd := Command(b[i])
		if !cmd.Valid() {
			return nil, malformed(b, i, fmt.Sprintf("unsupported command %q", b[i]))
		}
		i = skipCommaWhitespace(b, i+1)

		if cmd.Arity() == 0 {
			if i < len(b) && startsNumber(b[i]) {
				return nil, malformed(b, i, fmt.Sprintf("command %s takes no operands", cmd))
			}
			p.instructions = append(p.instructions, Instruction{Command: cmd})
			continue
		}

		for set := 0; ; set++ {
			if set > 0 && (i >= len(b) || !startsNumber(b[i])) {
				break
			}
			ops, next, err := readOperands(b, i, cmd)
			if err != nil {
				return nil, err
			}
			i = next

			c := cmd
			if set > 0 && c.Abs() == MoveTo {
				c = LineTo
				if cmd.IsRelative() {
					c = RelLineTo
				}
			}
			p.instructions = append(p.instructions, Instruction{Command: c, Operands: ops})
		}
	}
	return p, nil
}

// MustParsePath is like ParsePath but panics on error.
// It simplifies initialization of paths known to be valid.
func MustParsePath(d string) *Path {
	p, err := ParsePath(d)
	if err != nil {
		panic(err)
	}
	return p
}

// readOperands reads exactly cmd.Arity() numbers starting at i and returns
// them together with the index following the last separator.
func readOperands(b []byte, i int, cmd Command) ([]float64, int, error) {
	arity := cmd.Arity()
	ops := make([]float64, 0, arity)
	for len(ops) < arity {
		if i >= len(b) || !startsNumber(b[i]) {
			return nil, i, malformed(b, i, fmt.Sprintf("command %s expects %d operands, got %d", cmd, arity, len(ops)))
		}
		// The scanner delimits the token; the value comes from the correctly
		// rounded conversion so that formatted numbers read back exactly.
		_, n := parsestrconv.ParseFloat(b[i:])
		if n == 0 {
			return nil, i, malformed(b, i, "invalid number")
		}
		num, err := strconv.ParseFloat(string(b[i:i+n]), 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return nil, i, malformed(b, i, "invalid number")
		}
		if !isFinite(num) {
			return nil, i, malformed(b, i, "number out of range")
		}
		ops = append(ops, num)
		i = skipCommaWhitespace(b, i+n)
	}
	return ops, i, nil
}

func malformed(b []byte, offset int, reason string) *MalformedPathError {
	end := offset + excerptLen
	if end > len(b) {
		end = len(b)
	}
	return &MalformedPathError{Offset: offset, Text: string(b[offset:end]), Reason: reason}
}

func skipCommaWhitespace(b []byte, i int) int {
	for i < len(b) && (b[i] == ' ' || b[i] == ',' || b[i] == '\n' || b[i] == '\r' || b[i] == '\t' || b[i] == '\f') {
		i++
	}
	return i
}

func startsNumber(c byte) bool {
	return c >= '0' && c <= '9' || c == '.' || c == '-' || c == '+'
}

func isLetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}
