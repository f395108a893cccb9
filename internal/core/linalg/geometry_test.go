package linalg

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAngleBetween_RightAngle(t *testing.T) {
	angle, err := AngleBetween(Point3(0, 0, 0), Point3(1, 0, 0), Point3(0, 1, 0))
	require.NoError(t, err)
	assert.InDelta(t, math.Pi/2, angle, Tolerance)
}

func TestAngleBetween_Symmetric(t *testing.T) {
	origin := Point3(1, 1, 1)
	a := Point3(3, 1, 0)
	b := Point3(0, 2, 5)

	ab, err := AngleBetween(origin, a, b)
	require.NoError(t, err)
	ba, err := AngleBetween(origin, b, a)
	require.NoError(t, err)

	assert.InDelta(t, ab, ba, Tolerance)
}

func TestAngleBetween_Range(t *testing.T) {
	origin := Point3(0, 0, 0)

	collinear, err := AngleBetween(origin, Point3(1, 0, 0), Point3(2, 0, 0))
	require.NoError(t, err)
	assert.InDelta(t, 0, collinear, Tolerance)

	opposite, err := AngleBetween(origin, Point3(1, 0, 0), Point3(-1, 0, 0))
	require.NoError(t, err)
	assert.InDelta(t, math.Pi, opposite, Tolerance)
}

func TestAngleBetween_Degenerate(t *testing.T) {
	origin := Point3(1, 2, 3)

	_, err := AngleBetween(origin, origin, Point3(4, 5, 6))
	assert.ErrorIs(t, err, ErrDegenerateVector)

	_, err = AngleBetween(origin, Point3(4, 5, 6), origin)
	assert.ErrorIs(t, err, ErrDegenerateVector)
}

func TestCommonAxis(t *testing.T) {
	tests := []struct {
		name       string
		p1, p2, p3 Vector
		want       Axis
		wantErr    error
	}{
		{
			name: "z invariant",
			p1:   Point3(1, 0, 0), p2: Point3(0, 1, 0), p3: Point3(-1, 0, 0),
			want: AxisZ,
		},
		{
			name: "x invariant",
			p1:   Point3(2, 0, 0), p2: Point3(2, 1, 4), p3: Point3(2, -3, 1),
			want: AxisX,
		},
		{
			name: "y invariant",
			p1:   Point3(0, -1, 0), p2: Point3(1, -1, 4), p3: Point3(5, -1, 1),
			want: AxisY,
		},
		{
			name: "x wins over z when both are invariant",
			p1:   Point3(1, 0, 0), p2: Point3(1, 1, 0), p3: Point3(1, 2, 0),
			want: AxisX,
		},
		{
			name:    "no invariant axis",
			p1:      Point3(1, 2, 3),
			p2:      Point3(4, 5, 6),
			p3:      Point3(7, 8, 10),
			wantErr: ErrNoCommonAxis,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			axis, err := CommonAxis(tt.p1, tt.p2, tt.p3)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, axis)
		})
	}
}

func TestCommonAxisTol_NearPlanar(t *testing.T) {
	// Points not exactly coplanar but within an explicit tolerance.
	p1 := Point3(1, 0, 0)
	p2 := Point3(0, 1, 1e-7)
	p3 := Point3(-1, 0, -1e-7)

	_, err := CommonAxis(p1, p2, p3)
	assert.ErrorIs(t, err, ErrNoCommonAxis, "default tolerance must reject the spread")

	axis, err := CommonAxisTol(p1, p2, p3, 1e-6)
	require.NoError(t, err)
	assert.Equal(t, AxisZ, axis)
}

func TestAxisAngle(t *testing.T) {
	// 45 degrees up from the X axis in the XY plane.
	assert.InDelta(t, math.Pi/4, AxisAngle(Point3(1, 1, 0), AxisX), Tolerance)
	assert.InDelta(t, math.Pi/4, AxisAngle(Point3(1, 1, 0), AxisY), Tolerance)

	// Point on the Z axis subtends no angle against Z.
	assert.InDelta(t, 0, AxisAngle(Point3(0, 0, 2), AxisZ), Tolerance)

	// The origin is indeterminate and collapses to zero.
	assert.Zero(t, AxisAngle(Point3(0, 0, 0), AxisX))
	assert.Zero(t, AxisAngle(Point3(0, 0, 0), AxisZ))
}

func TestParseAxis(t *testing.T) {
	for s, want := range map[string]Axis{"x": AxisX, "Y": AxisY, "z": AxisZ} {
		axis, err := ParseAxis(s)
		require.NoError(t, err)
		assert.Equal(t, want, axis)
	}
	_, err := ParseAxis("w")
	assert.Error(t, err)
}
