package linalg

import (
	"fmt"
	"math"
)

// Axis identifies one of the three principal axes.
type Axis uint8

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return fmt.Sprintf("axis(%d)", uint8(a))
	}
}

// ParseAxis converts "x", "y" or "z" into an Axis.
func ParseAxis(s string) (Axis, error) {
	switch s {
	case "x", "X":
		return AxisX, nil
	case "y", "Y":
		return AxisY, nil
	case "z", "Z":
		return AxisZ, nil
	default:
		return 0, fmt.Errorf("unknown axis %q", s)
	}
}

// AngleBetween returns the angle in radians, in [0, pi], subtended at origin
// by the points a and b. The angle is the inverse cosine of the normalized
// dot product of (a - origin) and (b - origin). It returns
// ErrDegenerateVector when either point coincides with origin within the
// default tolerance, since the cosine is undefined for a zero-length vector.
func AngleBetween(origin, a, b Vector) (float64, error) {
	u := a.Sub(origin)
	v := b.Sub(origin)

	nu := u.Norm()
	nv := v.Norm()
	if nu <= Tolerance || nv <= Tolerance {
		return 0, ErrDegenerateVector
	}

	// Clamp against floating-point drift before acos.
	cos := u.Dot(v) / (nu * nv)
	cos = math.Max(-1, math.Min(1, cos))

	return math.Acos(cos), nil
}

// CommonAxis determines which principal axis is invariant across the three
// points using the default tolerance. See CommonAxisTol.
func CommonAxis(p1, p2, p3 Vector) (Axis, error) {
	return CommonAxisTol(p1, p2, p3, Tolerance)
}

// CommonAxisTol determines which principal axis the three points share: the
// axis along which all three coordinates lie within tol of each other,
// identifying the rotation axis that carries one point to another while
// holding that coordinate fixed. Axes are probed in X, Y, Z order and the
// first match wins. Returns ErrNoCommonAxis when no coordinate spread is
// within tol.
func CommonAxisTol(p1, p2, p3 Vector, tol float64) (Axis, error) {
	coords := [3][3]float64{
		{p1.X, p2.X, p3.X},
		{p1.Y, p2.Y, p3.Y},
		{p1.Z, p2.Z, p3.Z},
	}
	for i, c := range coords {
		if spread(c) <= tol {
			return Axis(i), nil
		}
	}
	return 0, ErrNoCommonAxis
}

// spread returns max - min of the three values.
func spread(c [3]float64) float64 {
	lo := math.Min(c[0], math.Min(c[1], c[2]))
	hi := math.Max(c[0], math.Max(c[1], c[2]))
	return hi - lo
}

// AxisAngle returns the inclination, in radians, of the point's position
// against the given principal axis:
//
//	AxisX: atan(y / x)
//	AxisY: atan(x / y)
//	AxisZ: atan(sqrt(x^2 + y^2) / z)
//
// The indeterminate 0/0 case (position at the origin) yields 0.
func AxisAngle(v Vector, axis Axis) float64 {
	var angle float64
	switch axis {
	case AxisX:
		angle = math.Atan(v.Y / v.X)
	case AxisY:
		angle = math.Atan(v.X / v.Y)
	case AxisZ:
		angle = math.Atan(math.Hypot(v.X, v.Y) / v.Z)
	}
	if math.IsNaN(angle) {
		return 0
	}
	return angle
}
