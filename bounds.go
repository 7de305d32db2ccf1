package iconlint

// Bounds returns the tight bounding box of the outline described by p.
// See BoundsResolved.
func Bounds(p *Path) Rect {
	return BoundsResolved(Resolve(p))
}

// BoundsResolved returns the tight bounding box of a resolved instruction
// sequence. Line-type instructions contribute their endpoint; cubic curves
// contribute their endpoints and the points where either coordinate reaches
// a local extremum. Control points are never included directly.
//
// An empty sequence yields the zero Rect.
func BoundsResolved(rs []ResolvedInstruction) Rect {
	var (
		box     Rect
		started bool
	)
	add := func(r Rect) {
		if !started {
			box, started = r, true
			return
		}
		box = box.Union(r)
	}

	for _, r := range rs {
		switch r.Command.Abs() {
		case CubicTo, SmoothCubicTo:
			add(r.Curve().BoundingBox())
		case ClosePath:
			// Returns to the subpath start, which is already included.
			if !started {
				add(Rect{Min: r.End, Max: r.End})
			}
		default:
			add(Rect{Min: r.End, Max: r.End})
		}
	}
	return box
}
