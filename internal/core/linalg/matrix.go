package linalg

import (
	"fmt"
	"math"
)

// Matrix is a 4x4 affine transformation matrix in homogeneous form, stored
// row-major. Every matrix produced by the builders below has the bottom row
// [0, 0, 0, 1] exactly.
type Matrix [16]float64

// Identity returns the 4x4 identity matrix.
func Identity() Matrix {
	return Matrix{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// MatrixFromSlice builds a Matrix from a 16-component row-major slice.
func MatrixFromSlice(s []float64) (Matrix, error) {
	if len(s) != 16 {
		return Matrix{}, fmt.Errorf("%w: expected 16 components, got %d", ErrDimension, len(s))
	}
	var m Matrix
	copy(m[:], s)
	return m, nil
}

// Translation returns the matrix moving points by (dx, dy, dz).
func Translation(dx, dy, dz float64) Matrix {
	m := Identity()
	m[3] = dx
	m[7] = dy
	m[11] = dz
	return m
}

// Scaling returns diag(sx, sy, sz, 1).
func Scaling(sx, sy, sz float64) Matrix {
	m := Identity()
	m[0] = sx
	m[5] = sy
	m[10] = sz
	return m
}

// RotationX returns the right-handed rotation about the X axis by theta
// radians. A positive angle rotates counter-clockwise when viewed from +X
// toward the origin.
func RotationX(theta float64) Matrix {
	sin, cos := math.Sincos(theta)
	m := Identity()
	m[5] = cos
	m[6] = -sin
	m[9] = sin
	m[10] = cos
	return m
}

// RotationY returns the right-handed rotation about the Y axis by theta radians.
func RotationY(theta float64) Matrix {
	sin, cos := math.Sincos(theta)
	m := Identity()
	m[0] = cos
	m[2] = sin
	m[8] = -sin
	m[10] = cos
	return m
}

// RotationZ returns the right-handed rotation about the Z axis by theta radians.
func RotationZ(theta float64) Matrix {
	sin, cos := math.Sincos(theta)
	m := Identity()
	m[0] = cos
	m[1] = -sin
	m[4] = sin
	m[5] = cos
	return m
}

// Mul returns a x b.
func Mul(a, b Matrix) Matrix {
	var m Matrix
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			m[r*4+c] = a[r*4+0]*b[0*4+c] + a[r*4+1]*b[1*4+c] +
				a[r*4+2]*b[2*4+c] + a[r*4+3]*b[3*4+c]
		}
	}
	return m
}

// Compose multiplies the given matrices left to right in the mathematical
// sense: Compose(A, B).Apply(v) equals A.Apply(B.Apply(v)), meaning B acts on
// the vector first. Matrix multiplication is not commutative, so the operand
// order matters. Compose() of nothing returns the identity.
func Compose(ms ...Matrix) Matrix {
	out := Identity()
	for _, m := range ms {
		out = Mul(out, m)
	}
	return out
}

// Apply multiplies the matrix by a 4x1 column vector, returning the
// transformed vector (new = m x v).
func (m Matrix) Apply(v Vector) Vector {
	return Vector{
		X: m[0]*v.X + m[1]*v.Y + m[2]*v.Z + m[3]*v.W,
		Y: m[4]*v.X + m[5]*v.Y + m[6]*v.Z + m[7]*v.W,
		Z: m[8]*v.X + m[9]*v.Y + m[10]*v.Z + m[11]*v.W,
		W: m[12]*v.X + m[13]*v.Y + m[14]*v.Z + m[15]*v.W,
	}
}

// MatrixEqual reports whether all 16 components of a and b differ by at most tol.
func MatrixEqual(a, b Matrix, tol float64) bool {
	for i := range a {
		if math.Abs(a[i]-b[i]) > tol {
			return false
		}
	}
	return true
}
