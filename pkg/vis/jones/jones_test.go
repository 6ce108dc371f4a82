package jones

import (
	"math"
	"math/cmplx"
	"testing"
)

func matrixEqual64(a, b Matrix64, epsilon float64) bool {
	for i := range a {
		if cmplx.Abs(a[i]-b[i]) > epsilon {
			return false
		}
	}
	return true
}

func TestIdentity(t *testing.T) {
	id := Identity()
	want := Matrix{1, 0, 0, 1}
	if id != want {
		t.Errorf("Identity() = %v, want %v", id, want)
	}
	if Zero() != (Matrix{}) {
		t.Errorf("Zero() is not the additive identity")
	}
	if got := Identity().Add(Zero()); got != id {
		t.Errorf("Identity().Add(Zero()) = %v, want %v", got, id)
	}
}

func TestAddAssign(t *testing.T) {
	sum := Zero64()
	for i := 0; i < 10; i++ {
		sum.AddAssign(Identity64())
	}
	want := Matrix64{10, 0, 0, 10}
	if !matrixEqual64(sum, want, 0) {
		t.Errorf("sum = %v, want %v", sum, want)
	}
}

func TestScaleDiv(t *testing.T) {
	m := Matrix64{1 + 2i, 3, 4i, -1}
	tests := []struct {
		name string
		got  Matrix64
		want Matrix64
	}{
		{"scale", m.Scale(2), Matrix64{2 + 4i, 6, 8i, -2}},
		{"div", m.Div(2), Matrix64{0.5 + 1i, 1.5, 2i, -0.5}},
		{"scale-zero", m.Scale(0), Zero64()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !matrixEqual64(tt.got, tt.want, 1e-12) {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestPrecisionRoundTrip(t *testing.T) {
	m := Matrix{0.5 + 0.25i, -3, 2i, 1}
	if got := m.To64().To32(); got != m {
		t.Errorf("To64().To32() = %v, want %v", got, m)
	}
}

func TestDivByZeroIsNonFinite(t *testing.T) {
	q := Identity64().Div(0)
	if !math.IsInf(real(q[0]), 1) {
		t.Errorf("1/0 = %v, want +Inf", q[0])
	}
}
