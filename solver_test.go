package iconlint

import (
	"math"
	"sort"
	"testing"
)

func almostEqual(a, b, epsilon float64) bool {
	return math.Abs(a-b) < epsilon
}

func verifySolverRoots(t *testing.T, name string, roots, expected []float64, epsilon float64) {
	t.Helper()

	if len(roots) != len(expected) {
		t.Errorf("%s: got %d roots, want %d. roots=%v, expected=%v",
			name, len(roots), len(expected), roots, expected)
		return
	}

	sortedRoots := append([]float64(nil), roots...)
	sort.Float64s(sortedRoots)
	sortedExpected := append([]float64(nil), expected...)
	sort.Float64s(sortedExpected)

	for i := range sortedRoots {
		if !almostEqual(sortedRoots[i], sortedExpected[i], epsilon) {
			t.Errorf("%s: root[%d] = %v, want %v (roots=%v, expected=%v)",
				name, i, sortedRoots[i], sortedExpected[i], sortedRoots, sortedExpected)
		}
	}
}

func TestSolveQuadratic(t *testing.T) {
	tests := []struct {
		name     string
		a, b, c  float64
		expected []float64
	}{
		// ax^2 + bx + c = 0
		{
			name: "x^2 - 5 = 0 (two roots)",
			a:    1, b: 0, c: -5,
			expected: []float64{-math.Sqrt(5), math.Sqrt(5)},
		},
		{
			name: "x^2 + 5 = 0 (no real roots)",
			a:    1, b: 0, c: 5,
			expected: nil,
		},
		{
			name: "x + 5 = 0 (linear)",
			a:    0, b: 1, c: 5,
			expected: []float64{-5},
		},
		{
			name: "x^2 + 2x + 1 = 0 (double root at -1)",
			a:    1, b: 2, c: 1,
			expected: []float64{-1},
		},
		{
			name: "2x^2 - 10x + 12 = 0 (roots at 2 and 3)",
			a:    2, b: -10, c: 12,
			expected: []float64{2, 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roots := SolveQuadratic(tt.a, tt.b, tt.c)
			verifySolverRoots(t, tt.name, roots, tt.expected, 1e-10)

			for _, r := range roots {
				val := tt.a*r*r + tt.b*r + tt.c
				if math.Abs(val) > 1e-8 {
					t.Errorf("%s: root %v gives f(x) = %v, want 0", tt.name, r, val)
				}
			}
		})
	}
}

func TestSolveQuadraticInOpenUnitInterval(t *testing.T) {
	tests := []struct {
		name     string
		a, b, c  float64
		expected []float64
	}{
		{
			name: "roots outside (0,1)",
			a:    1, b: 0, c: -100,
			expected: nil,
		},
		{
			name: "roots at boundaries are dropped",
			a:    1, b: -1, c: 0, // x(x-1) = 0
			expected: nil,
		},
		{
			name: "one root inside",
			a:    1, b: -0.5, c: 0, // x(x-0.5) = 0
			expected: []float64{0.5},
		},
		{
			name: "both roots inside",
			a:    1, b: -0.6, c: 0.08,
			expected: []float64{0.2, 0.4},
		},
		{
			name: "constant has no roots",
			a:    0, b: 0, c: 0,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roots := SolveQuadraticInOpenUnitInterval(tt.a, tt.b, tt.c)
			verifySolverRoots(t, tt.name, roots, tt.expected, 1e-10)
		})
	}
}

func TestSolveQuadratic_EdgeCases(t *testing.T) {
	if roots := SolveQuadratic(0, 0, 0); roots != nil {
		t.Errorf("Constant zero: got %v, want no roots", roots)
	}
	if roots := SolveQuadratic(0, 0, 3); roots != nil {
		t.Errorf("Constant nonzero: got %v, want no roots", roots)
	}

	roots := SolveQuadratic(1e-300, 2, -1)
	if len(roots) == 0 || !almostEqual(roots[len(roots)-1], 0.5, 1e-12) {
		t.Errorf("Vanishing a: got %v, want the larger root at 0.5", roots)
	}

	roots = SolveQuadratic(1, -2, 1+1e-15)
	for _, r := range roots {
		if math.Abs(r-1) > 0.001 {
			t.Errorf("Nearly double root: root %v not close to 1", r)
		}
	}
}

func TestIsFinite(t *testing.T) {
	tests := []struct {
		name   string
		x      float64
		expect bool
	}{
		{"positive", 1.0, true},
		{"negative", -1.0, true},
		{"zero", 0.0, true},
		{"inf", math.Inf(1), false},
		{"neg inf", math.Inf(-1), false},
		{"nan", math.NaN(), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isFinite(tt.x); got != tt.expect {
				t.Errorf("isFinite(%v) = %v, want %v", tt.x, got, tt.expect)
			}
		})
	}
}
