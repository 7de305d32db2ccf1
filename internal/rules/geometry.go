package rules

import (
	"fmt"
	"math"

	"github.com/gogpu/iconlint"
)

func checkSize(in *Input, e *env) []Diagnostic {
	prec := e.settings.FloatPrecision
	size := e.settings.CanvasSize
	w := iconlint.Round(in.Box.Width(), prec)
	h := iconlint.Round(in.Box.Height(), prec)

	if in.Box.Round(prec).IsEmpty() {
		return []Diagnostic{{
			Rule:    Size.Name(),
			Kind:    KindDegenerate,
			Message: "Path bounds were reported as 0 x 0; check if the path is valid",
		}}
	}
	// Exactly one dimension spans the canvas.
	if (w == size) == (h == size) {
		return []Diagnostic{violation(Size,
			"Size of <path> must be exactly %s in one dimension; the size is currently %s x %s",
			iconlint.FormatNumber(size), iconlint.FormatNumber(w), iconlint.FormatNumber(h))}
	}
	return nil
}

func checkCentered(in *Input, e *env) []Diagnostic {
	prec := e.settings.FloatPrecision
	target := e.settings.CanvasSize / 2
	c := in.Box.Center()
	cx := iconlint.Round(c.X, prec)
	cy := iconlint.Round(c.Y, prec)

	if math.Abs(cx-target) > e.settings.Tolerance || math.Abs(cy-target) > e.settings.Tolerance {
		t := iconlint.FormatNumber(target)
		return []Diagnostic{violation(Centered,
			"<path> must be centered at (%s, %s); the center is currently (%s, %s)",
			t, t, iconlint.FormatNumber(cx), iconlint.FormatNumber(cy))}
	}
	return nil
}

func checkPrecision(in *Input, e *env) []Diagnostic {
	if got := in.Path.MaxDecimals(); got > e.settings.MaxFloatPrecision {
		return []Diagnostic{violation(Precision,
			"Maximum precision should not be greater than %d; it is currently %d",
			e.settings.MaxFloatPrecision, got)}
	}
	return nil
}

func checkIneffectiveSegments(in *Input, _ *env) []Diagnostic {
	var out []Diagnostic
	for _, r := range iconlint.RedundanciesResolved(in.Resolved) {
		out = append(out, violation(IneffectiveSegments, "Unexpected segment %s in path.", r))
	}
	return out
}

func violation(r Rule, format string, args ...any) Diagnostic {
	return Diagnostic{Rule: r.Name(), Kind: KindViolation, Message: fmt.Sprintf(format, args...)}
}
