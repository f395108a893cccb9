package linalg

import (
	"fmt"
	"math"
)

// Tolerance is the default threshold for floating-point comparisons in this
// package. Comparisons never use exact equality.
const Tolerance = 1e-9

// Vector is a 4x1 column vector in homogeneous coordinates.
// W is 1 for points and 0 for free directions. Vector is a plain value type;
// every operation returns a new value.
type Vector struct {
	X, Y, Z, W float64
}

// Point3 creates a homogeneous point (W = 1).
func Point3(x, y, z float64) Vector {
	return Vector{X: x, Y: y, Z: z, W: 1}
}

// Direction creates a homogeneous direction (W = 0).
func Direction(x, y, z float64) Vector {
	return Vector{X: x, Y: y, Z: z, W: 0}
}

// VectorFromSlice builds a Vector from a 4-component slice.
func VectorFromSlice(s []float64) (Vector, error) {
	if len(s) != 4 {
		return Vector{}, fmt.Errorf("%w: expected 4 components, got %d", ErrDimension, len(s))
	}
	return Vector{X: s[0], Y: s[1], Z: s[2], W: s[3]}, nil
}

// Equal reports whether all four components of a and b differ by at most tol.
func Equal(a, b Vector, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol &&
		math.Abs(a.Y-b.Y) <= tol &&
		math.Abs(a.Z-b.Z) <= tol &&
		math.Abs(a.W-b.W) <= tol
}

// Add returns the component-wise sum.
func (v Vector) Add(o Vector) Vector {
	return Vector{v.X + o.X, v.Y + o.Y, v.Z + o.Z, v.W + o.W}
}

// Sub returns the component-wise difference.
func (v Vector) Sub(o Vector) Vector {
	return Vector{v.X - o.X, v.Y - o.Y, v.Z - o.Z, v.W - o.W}
}

// Scale returns the scalar product.
func (v Vector) Scale(s float64) Vector {
	return Vector{v.X * s, v.Y * s, v.Z * s, v.W * s}
}

// Dot returns the 4-component dot product. For differences of two points
// (W = 0) this equals the 3D dot product.
func (v Vector) Dot(o Vector) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z + v.W*o.W
}

// Norm returns the Euclidean length.
func (v Vector) Norm() float64 {
	return math.Sqrt(v.Dot(v))
}

// Midpoint returns the point halfway between two points. Both operands are
// expected to carry W = 1, which the result preserves.
func (v Vector) Midpoint(o Vector) Vector {
	return v.Add(o).Scale(0.5)
}

// Lerp returns the linear interpolation between v and o at parameter t.
func (v Vector) Lerp(o Vector, t float64) Vector {
	return Vector{
		v.X + (o.X-v.X)*t,
		v.Y + (o.Y-v.Y)*t,
		v.Z + (o.Z-v.Z)*t,
		v.W + (o.W-v.W)*t,
	}
}

// XYZ returns the three spatial components.
func (v Vector) XYZ() (x, y, z float64) {
	return v.X, v.Y, v.Z
}

func (v Vector) String() string {
	return fmt.Sprintf("(%g, %g, %g, %g)", v.X, v.Y, v.Z, v.W)
}
