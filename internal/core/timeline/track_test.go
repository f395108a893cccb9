package timeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/motus3d/motus/internal/core/linalg"
)

func TestTrack_RecordMonotonic(t *testing.T) {
	tr := NewTrack()

	require.NoError(t, tr.Record(5, linalg.Point3(0, 0, 0)))
	require.NoError(t, tr.Record(5, linalg.Point3(1, 0, 0)), "equal frames are allowed")
	require.NoError(t, tr.Record(10, linalg.Point3(2, 0, 0)))
	assert.Equal(t, 3, tr.Len())

	last, ok := tr.Last()
	require.True(t, ok)
	assert.Equal(t, 10, last.Frame)
}

func TestTrack_RecordRejectsRewind(t *testing.T) {
	tr := NewTrack()

	require.NoError(t, tr.Record(5, linalg.Point3(0, 0, 0)))
	err := tr.Record(3, linalg.Point3(1, 1, 1))
	assert.ErrorIs(t, err, ErrInvalidFrame)
	assert.Equal(t, 1, tr.Len(), "a rejected record must not append")
}

func TestTrack_RecordRejectsNegative(t *testing.T) {
	tr := NewTrack()
	assert.ErrorIs(t, tr.Record(-1, linalg.Point3(0, 0, 0)), ErrInvalidFrame)
}

func TestTrack_HistoryIsAdditive(t *testing.T) {
	tr := NewTrack()
	require.NoError(t, tr.Record(2, linalg.Point3(1, 0, 0)))
	require.NoError(t, tr.Record(2, linalg.Point3(2, 0, 0)))

	keys := tr.Keyframes()
	require.Len(t, keys, 2)
	assert.Equal(t, linalg.Point3(1, 0, 0), keys[0].Position, "earlier snapshots survive")
	assert.Equal(t, linalg.Point3(2, 0, 0), keys[1].Position)
}

func TestTrack_Sample(t *testing.T) {
	tr := NewTrack()
	require.NoError(t, tr.Record(0, linalg.Point3(0, 0, 0)))
	require.NoError(t, tr.Record(10, linalg.Point3(10, 0, 0)))

	mid, ok := tr.Sample(5)
	require.True(t, ok)
	assert.True(t, linalg.Equal(linalg.Point3(5, 0, 0), mid, linalg.Tolerance))

	before, _ := tr.Sample(-3)
	assert.True(t, linalg.Equal(linalg.Point3(0, 0, 0), before, linalg.Tolerance), "clamps to first")

	after, _ := tr.Sample(99)
	assert.True(t, linalg.Equal(linalg.Point3(10, 0, 0), after, linalg.Tolerance), "clamps to last")
}

func TestTrack_SampleEmpty(t *testing.T) {
	_, ok := NewTrack().Sample(0)
	assert.False(t, ok)
}
