package iconlint

// ResolvedInstruction is an Instruction annotated with the absolute
// coordinates it resolves to. It is only meaningful within the analysis of
// the Path it came from.
type ResolvedInstruction struct {
	Instruction

	// Abs is the absolute form: uppercase command, absolute operands.
	Abs Instruction

	// Start is the current point before the instruction executed,
	// End the current point after.
	Start, End Point

	// Ctrl1 and Ctrl2 are the absolute control points of a cubic curve.
	// For S and s, Ctrl1 is the reflection of the previous curve's second
	// control point, or Start if the previous instruction was not a curve.
	Ctrl1, Ctrl2 Point
}

// Curve returns the cubic described by a curve instruction.
// The result is meaningless for non-curve commands.
func (r ResolvedInstruction) Curve() CubicBez {
	return NewCubicBez(r.Start, r.Ctrl1, r.Ctrl2, r.End)
}

// Resolve walks the path, tracking the current point and the start of the
// current subpath (both initially at the origin), and converts every
// instruction to absolute coordinates. The result has the same length and
// order as the path.
func Resolve(p *Path) []ResolvedInstruction {
	out := make([]ResolvedInstruction, len(p.instructions))

	var current, subpathStart, lastCtrl Point
	prevCurve := false

	for i, in := range p.instructions {
		r := ResolvedInstruction{Instruction: in, Start: current}

		var origin Point
		if in.Command.IsRelative() {
			origin = current
		}
		ops := in.Operands
		abs := make([]float64, len(ops))

		switch in.Command.Abs() {
		case MoveTo:
			current = Pt(ops[0]+origin.X, ops[1]+origin.Y)
			// An initial relative move is measured from the origin, which
			// coincides with current, so no special case is needed.
			subpathStart = current
			abs[0], abs[1] = current.X, current.Y
		case LineTo:
			current = Pt(ops[0]+origin.X, ops[1]+origin.Y)
			abs[0], abs[1] = current.X, current.Y
		case HorizontalTo:
			current.X = ops[0] + origin.X
			abs[0] = current.X
		case VerticalTo:
			current.Y = ops[0] + origin.Y
			abs[0] = current.Y
		case CubicTo:
			r.Ctrl1 = Pt(ops[0]+origin.X, ops[1]+origin.Y)
			r.Ctrl2 = Pt(ops[2]+origin.X, ops[3]+origin.Y)
			current = Pt(ops[4]+origin.X, ops[5]+origin.Y)
			abs[0], abs[1] = r.Ctrl1.X, r.Ctrl1.Y
			abs[2], abs[3] = r.Ctrl2.X, r.Ctrl2.Y
			abs[4], abs[5] = current.X, current.Y
		case SmoothCubicTo:
			r.Ctrl1 = current
			if prevCurve {
				r.Ctrl1 = current.Reflect(lastCtrl)
			}
			r.Ctrl2 = Pt(ops[0]+origin.X, ops[1]+origin.Y)
			current = Pt(ops[2]+origin.X, ops[3]+origin.Y)
			abs[0], abs[1] = r.Ctrl2.X, r.Ctrl2.Y
			abs[2], abs[3] = current.X, current.Y
		case ClosePath:
			current = subpathStart
		}

		prevCurve = in.Command.IsCurve()
		lastCtrl = r.Ctrl2

		r.End = current
		r.Abs = Instruction{Command: in.Command.Abs(), Operands: abs}
		out[i] = r
	}
	return out
}
