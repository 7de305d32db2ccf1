package iconlint

import (
	"math"
	"testing"
)

const epsilon = 1e-10

func pointsEqual(p1, p2 Point, eps float64) bool {
	return math.Abs(p1.X-p2.X) < eps && math.Abs(p1.Y-p2.Y) < eps
}

// -------------------------------------------------------------------
// Rect Tests
// -------------------------------------------------------------------

func TestRect_NewRect(t *testing.T) {
	tests := []struct {
		name      string
		p1, p2    Point
		expectMin Point
		expectMax Point
	}{
		{
			name: "normal order",
			p1:   Pt(0, 0), p2: Pt(10, 10),
			expectMin: Pt(0, 0), expectMax: Pt(10, 10),
		},
		{
			name: "reversed order",
			p1:   Pt(10, 10), p2: Pt(0, 0),
			expectMin: Pt(0, 0), expectMax: Pt(10, 10),
		},
		{
			name: "mixed",
			p1:   Pt(5, 0), p2: Pt(0, 5),
			expectMin: Pt(0, 0), expectMax: Pt(5, 5),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRect(tt.p1, tt.p2)
			if !pointsEqual(r.Min, tt.expectMin, epsilon) {
				t.Errorf("Min = %v, want %v", r.Min, tt.expectMin)
			}
			if !pointsEqual(r.Max, tt.expectMax, epsilon) {
				t.Errorf("Max = %v, want %v", r.Max, tt.expectMax)
			}
		})
	}
}

func TestRect_Measures(t *testing.T) {
	r := NewRect(Pt(0, 0), Pt(10, 5))
	if r.Width() != 10 {
		t.Errorf("Width() = %v, want 10", r.Width())
	}
	if r.Height() != 5 {
		t.Errorf("Height() = %v, want 5", r.Height())
	}
	if c := r.Center(); c != Pt(5, 2.5) {
		t.Errorf("Center() = %v, want (5, 2.5)", c)
	}
	if r.IsEmpty() {
		t.Error("IsEmpty() = true for a 10x5 rect")
	}
	if !(Rect{Min: Pt(3, 3), Max: Pt(3, 3)}).IsEmpty() {
		t.Error("IsEmpty() = false for a point rect")
	}
}

func TestRect_Union(t *testing.T) {
	u := NewRect(Pt(0, 0), Pt(5, 5)).Union(NewRect(Pt(3, 3), Pt(10, 10)))

	if !pointsEqual(u.Min, Pt(0, 0), epsilon) {
		t.Errorf("Union Min = %v, want (0, 0)", u.Min)
	}
	if !pointsEqual(u.Max, Pt(10, 10), epsilon) {
		t.Errorf("Union Max = %v, want (10, 10)", u.Max)
	}
}

func TestRound(t *testing.T) {
	tests := []struct {
		v      float64
		digits int
		want   float64
	}{
		{23.99951, 3, 24},
		{11.9504, 3, 11.95},
		{-0.0004, 3, 0},
		{7, 0, 7},
		{math.Inf(1), 3, math.Inf(1)},
	}

	for _, tt := range tests {
		if got := Round(tt.v, tt.digits); got != tt.want {
			t.Errorf("Round(%v, %d) = %v, want %v", tt.v, tt.digits, got, tt.want)
		}
	}
}

// -------------------------------------------------------------------
// CubicBez Tests
// -------------------------------------------------------------------

func TestCubicBez_Eval(t *testing.T) {
	c := NewCubicBez(Pt(0, 0), Pt(0, 10), Pt(10, 10), Pt(10, 0))

	tests := []struct {
		name   string
		t      float64
		expect Point
	}{
		{"t=0", 0, Pt(0, 0)},
		{"t=1", 1, Pt(10, 0)},
		{"t=0.5", 0.5, Pt(5, 7.5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Eval(tt.t); !pointsEqual(got, tt.expect, epsilon) {
				t.Errorf("Eval(%v) = %v, want %v", tt.t, got, tt.expect)
			}
		})
	}
}

func TestCubicBez_Extrema(t *testing.T) {
	c := NewCubicBez(Pt(0, 0), Pt(0, 1), Pt(1, 1), Pt(1, 0))
	extrema := c.Extrema()

	if len(extrema) != 1 {
		t.Fatalf("Extrema() = %v, want exactly one", extrema)
	}
	if !almostEqual(extrema[0], 0.5, epsilon) {
		t.Errorf("Extrema()[0] = %v, want 0.5", extrema[0])
	}
}

func TestCubicBez_BoundingBox(t *testing.T) {
	c := NewCubicBez(Pt(0, 0), Pt(0, 10), Pt(10, 10), Pt(10, 0))
	bbox := c.BoundingBox()

	if !pointsEqual(bbox.Min, Pt(0, 0), epsilon) || !pointsEqual(bbox.Max, Pt(10, 7.5), epsilon) {
		t.Errorf("BoundingBox() = %v, want (0,0)-(10,7.5)", bbox)
	}

	for i := 0; i <= 100; i++ {
		tt := float64(i) / 100.0
		p := c.Eval(tt)
		if p.X < bbox.Min.X || p.X > bbox.Max.X || p.Y < bbox.Min.Y || p.Y > bbox.Max.Y {
			t.Errorf("BoundingBox should contain point at t=%v: %v", tt, p)
		}
	}
}

func TestCubicBez_BoundingBoxIgnoresControlHull(t *testing.T) {
	// The control points reach y=-4 but the curve only reaches y=0.
	c := NewCubicBez(Pt(0, 12), Pt(0, -4), Pt(24, -4), Pt(24, 12))
	bbox := c.BoundingBox()

	if !almostEqual(bbox.Min.Y, 0, epsilon) {
		t.Errorf("Min.Y = %v, want 0", bbox.Min.Y)
	}
	if !almostEqual(bbox.Max.Y, 12, epsilon) {
		t.Errorf("Max.Y = %v, want 12", bbox.Max.Y)
	}
}
