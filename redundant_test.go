package iconlint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedundancies(t *testing.T) {
	tests := []struct {
		name    string
		d       string
		indexes []int
	}{
		{"clean square", "M0 0h24v24H0z", nil},
		{"relative move to the same point", "M1 1m0 0", []int{1}},
		{"initial relative move", "m0 0h24", nil},
		{"zero relative line", "M1 1l0 0", []int{1}},
		{"zero horizontal", "M1 1h0", []int{1}},
		{"zero vertical", "M1 1v0", []int{1}},
		{"non-zero relative moves", "M1 1m1 0l0 1h-1v1", nil},
		{"absolute move onto origin", "M0 0M0 0", []int{1}},
		{"absolute move from elsewhere", "M5 5M0 0", nil},
		{"absolute line onto current point", "M3 4L3 4", []int{1}},
		{"horizontal onto current x", "M3 4H3", []int{1}},
		{"vertical onto current y", "M3 4V4", []int{1}},
		{"repeated vertical", "M3 4V8V8", []int{2}},
		{"horizontal after vertical looks back", "M1 2H5V7H5", []int{3}},
		{"line after directional chain", "M1 2H5V7L5 7", []int{3}},
		{"line after directional chain elsewhere", "M1 2H5V7L1 7", nil},
		{"lookback stops at path start", "V3H0", nil},
		{"lookback finds earlier horizontal", "H3H3", []int{1}},
		{"move onto closed subpath start", "M2 2L5 5ZM2 2", []int{3}},
		{"move after curve endpoint", "M0 0C1 1 2 2 3 3M3 3", []int{2}},
		{"degenerate smooth curve", "M1 1s0 0 5 5", []int{1}},
		{"smooth curve with control point", "M1 1s1 0 5 5", nil},
		{"degenerate cubic", "M1 1c0 0 0 0 5 5", []int{1}},
		{"cubic collapsing onto its start", "M1 1c0 0 3 3 0 0", []int{1}},
		{"proper cubic", "M1 1c0 0 3 3 4 4", nil},
		{"absolute curves are left alone", "M1 1C1 1 1 1 1 1", nil},
		{"several", "M1 1h0v0l2 2l0 0", []int{1, 2, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []int
			for _, r := range Redundancies(MustParsePath(tt.d)) {
				got = append(got, r.Index)
			}
			assert.Equal(t, tt.indexes, got)
		})
	}
}

func TestRedundancy_Rendering(t *testing.T) {
	tests := []struct {
		d    string
		want string
	}{
		{"M1 1m0 0", "m0 0"},
		{"M1 1h0", "h0"},
		{"M0 0M0 0", "M0 0"},
		{"M3 4H3", "H3"},
		{"M1 1s0 0 5 5", `s0 0, 5 5 (should be "l5 5")`},
		{"M1 1c0 0 0 0 5 -5.5", `c0 0, 0 0, 5 -5.5 (should be "l5 -5.5")`},
		{"M1 1c0 0 3 3 0 0", "c0 0, 3 3, 0 0"},
		{"M1 1s0 0 0 0", "s0 0, 0 0"},
	}

	for _, tt := range tests {
		t.Run(tt.d, func(t *testing.T) {
			rs := Redundancies(MustParsePath(tt.d))
			require.Len(t, rs, 1)
			assert.Equal(t, tt.want, rs[0].String())
		})
	}
}
