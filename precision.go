package iconlint

import (
	"strconv"
	"strings"
)

// Decimals returns the number of fractional digits needed to write v
// exactly in its shortest decimal form. Integers have zero decimals;
// 1.25 has 2 and 1e-7 has 7.
func Decimals(v float64) int {
	if v == 0 || !isFinite(v) {
		return 0
	}
	s := strconv.FormatFloat(v, 'e', -1, 64)
	mantissa, exp, _ := strings.Cut(s, "e")
	e, err := strconv.Atoi(exp)
	if err != nil {
		return 0
	}
	frac := 0
	if _, f, ok := strings.Cut(mantissa, "."); ok {
		frac = len(f)
	}
	if d := frac - e; d > 0 {
		return d
	}
	return 0
}

// MaxDecimals returns the largest Decimals over every operand in p,
// or zero for a path without operands.
func (p *Path) MaxDecimals() int {
	most := 0
	for _, in := range p.instructions {
		for _, v := range in.Operands {
			if d := Decimals(v); d > most {
				most = d
			}
		}
	}
	return most
}
