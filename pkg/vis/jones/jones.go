// Package jones provides 2x2 complex Jones matrix value types for
// polarized visibility samples. Element order is XX, XY, YX, YY.
package jones

// Matrix is a single-precision Jones matrix, the storage type for
// visibility cubes.
type Matrix [4]complex64

// Matrix64 is a double-precision Jones matrix, used for accumulation so
// that long sums do not lose precision.
type Matrix64 [4]complex128

// NumPols is the number of polarization cross-products in a Jones matrix.
const NumPols = 4

func Zero() Matrix {
	return Matrix{}
}

func Identity() Matrix {
	return Matrix{1, 0, 0, 1}
}

func Zero64() Matrix64 {
	return Matrix64{}
}

func Identity64() Matrix64 {
	return Matrix64{1, 0, 0, 1}
}

// To64 widens each element to double precision.
func (m Matrix) To64() Matrix64 {
	return Matrix64{
		complex128(m[0]),
		complex128(m[1]),
		complex128(m[2]),
		complex128(m[3]),
	}
}

// To32 narrows each element to single precision.
func (m Matrix64) To32() Matrix {
	return Matrix{
		complex64(m[0]),
		complex64(m[1]),
		complex64(m[2]),
		complex64(m[3]),
	}
}

func (m Matrix) Add(o Matrix) Matrix {
	return Matrix{m[0] + o[0], m[1] + o[1], m[2] + o[2], m[3] + o[3]}
}

func (m Matrix64) Add(o Matrix64) Matrix64 {
	return Matrix64{m[0] + o[0], m[1] + o[1], m[2] + o[2], m[3] + o[3]}
}

// AddAssign accumulates o into m in place.
func (m *Matrix64) AddAssign(o Matrix64) {
	m[0] += o[0]
	m[1] += o[1]
	m[2] += o[2]
	m[3] += o[3]
}

// Scale multiplies every element by s.
func (m Matrix) Scale(s float32) Matrix {
	c := complex(s, 0)
	return Matrix{m[0] * c, m[1] * c, m[2] * c, m[3] * c}
}

func (m Matrix64) Scale(s float64) Matrix64 {
	c := complex(s, 0)
	return Matrix64{m[0] * c, m[1] * c, m[2] * c, m[3] * c}
}

// Div divides every element by s. Division by zero produces the usual
// IEEE non-finite values; callers guard against it.
func (m Matrix64) Div(s float64) Matrix64 {
	c := complex(s, 0)
	return Matrix64{m[0] / c, m[1] / c, m[2] / c, m[3] / c}
}
