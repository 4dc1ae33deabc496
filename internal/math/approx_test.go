package math

import (
	"math"
	"testing"
)

func TestApproxEqual(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		a, b   float64
		tol    float64
		expect bool
	}{
		{"identical", 1.5, 1.5, 0, true},
		{"within tolerance", 1, 1 + 1e-11, 1e-10, true},
		{"outside tolerance", 1, 1 + 1e-9, 1e-10, false},
		{"same infinity", math.Inf(1), math.Inf(1), 1e-10, true},
		{"opposite infinities", math.Inf(1), math.Inf(-1), 1e-10, false},
		{"nan", math.NaN(), math.NaN(), 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := ApproxEqual(tt.a, tt.b, tt.tol); got != tt.expect {
				t.Errorf("ApproxEqual(%v, %v, %v) = %v, want %v", tt.a, tt.b, tt.tol, got, tt.expect)
			}
		})
	}
}

func TestMaxAbsDiff(t *testing.T) {
	t.Parallel()

	if got := MaxAbsDiff(1, 2, 1.5, 1); got != 1 {
		t.Errorf("MaxAbsDiff = %v, want 1", got)
	}

	if got := MaxAbsDiff(1, math.NaN(), 1, 1); !math.IsNaN(got) {
		t.Errorf("MaxAbsDiff with NaN = %v, want NaN", got)
	}
}
