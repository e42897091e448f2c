package scoring

import (
	"math"
	"testing"
)

func TestPoints(t *testing.T) {
	tests := []struct {
		name string
		oz   float64
		want float64
	}{
		{"deep deficit", -200, -2},
		{"just below -120", -120.001, -2},
		{"exactly -120", -120, -1.5},
		{"exactly -90", -90, -1},
		{"exactly -60", -60, -0.5},
		{"lower edge of neutral band", -24, 0},
		{"zero", 0, 0},
		{"just below neutral upper edge", 23.999, 0},
		{"exactly 24", 24, 0.5},
		{"mid band", 45, 0.5},
		{"exactly 60", 60, 1},
		{"exactly 90", 90, 1.5},
		{"just below 120", 119.999, 1.5},
		{"exactly 120", 120, 2},
		{"large intake", 500, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Points(tt.oz); got != tt.want {
				t.Errorf("Points(%v) = %v, want %v", tt.oz, got, tt.want)
			}
		})
	}
}

func TestPointsMonotonic(t *testing.T) {
	prev := math.Inf(-1)
	for oz := -150.0; oz <= 150.0; oz += 0.5 {
		got := Points(oz)
		if got < prev {
			t.Fatalf("Points not monotonic: Points(%v) = %v < %v", oz, got, prev)
		}
		prev = got
	}
}

func TestPointsSignSymmetry(t *testing.T) {
	// Inside the neutral band both signs score exactly 0. Outside it the
	// curve mirrors, except at the exact positive cutoffs where the strict
	// `<` chain shifts the negative twin into the next lower band.
	cutoffs := map[float64]bool{24: true, 60: true, 90: true, 120: true}
	for oz := 0.0; oz <= 150.0; oz += 0.25 {
		pos := Points(oz)
		neg := Points(-oz)
		if oz < 24 {
			if pos != 0 || neg != 0 {
				t.Fatalf("neutral band violated at %v: Points=%v, Points(-)=%v", oz, pos, neg)
			}
			continue
		}
		if cutoffs[oz] {
			continue
		}
		if neg != -pos {
			t.Fatalf("sign symmetry violated at %v: Points=%v, Points(-)=%v", oz, pos, neg)
		}
	}
}
