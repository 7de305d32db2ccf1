package iconlint

import "math"

// Polynomial root solver for the derivative of a cubic Bezier component.
//
// Based on algorithms from kurbo (https://github.com/linebender/kurbo)
// with adaptations for Go idioms.

// SolveQuadratic finds the real roots of ax^2 + bx + c = 0 in ascending
// order. When a is too small for the scaled coefficients to be finite the
// equation is solved as linear; a constant equation has no roots. The
// coefficients are assumed finite.
func SolveQuadratic(a, b, c float64) []float64 {
	sc0 := c / a
	sc1 := b / a
	if !isFinite(sc0) || !isFinite(sc1) {
		if root := -c / b; isFinite(root) {
			return []float64{root}
		}
		return nil
	}

	var root1 float64
	switch arg := sc1*sc1 - 4*sc0; {
	case !isFinite(arg):
		// sc1 dominates; the larger root is about -sc1.
		root1 = -sc1
	case arg < 0:
		return nil
	case arg == 0:
		return []float64{-0.5 * sc1}
	default:
		// Stable form, avoids cancellation between -b and the square root.
		root1 = -0.5 * (sc1 + math.Copysign(math.Sqrt(arg), sc1))
	}
	root2 := sc0 / root1
	if !isFinite(root2) {
		return []float64{root1}
	}
	if root1 > root2 {
		return []float64{root2, root1}
	}
	return []float64{root1, root2}
}

// SolveQuadraticInOpenUnitInterval returns roots of ax^2 + bx + c = 0 that
// lie strictly inside (0, 1). Curve endpoints are handled by the caller, so
// roots at the boundaries carry no extra information.
func SolveQuadraticInOpenUnitInterval(a, b, c float64) []float64 {
	roots := SolveQuadratic(a, b, c)
	if len(roots) == 0 {
		return nil
	}

	result := make([]float64, 0, len(roots))
	for _, r := range roots {
		if r > 0 && r < 1 {
			result = append(result, r)
		}
	}

	if len(result) == 0 {
		return nil
	}
	return result
}

// isFinite returns true if x is neither infinite nor NaN.
func isFinite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}
