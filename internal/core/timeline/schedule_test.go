package timeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchedule_Validate(t *testing.T) {
	assert.NoError(t, DefaultSchedule().Validate())
	assert.Error(t, Schedule{FPS: 0, PaddingSeconds: 1}.Validate())
	assert.Error(t, Schedule{FPS: 24, PaddingSeconds: -1}.Validate())
}

func TestSchedule_Frames(t *testing.T) {
	s := Schedule{FPS: 24, PaddingSeconds: 2}

	assert.Equal(t, 120, s.Frames(5))
	assert.Equal(t, 48, s.PaddingFrames())
	assert.Equal(t, 12, s.Frames(0.5))
}

func TestSchedule_RotationFrames(t *testing.T) {
	s := Schedule{FPS: 24}

	// 90 degrees at 30 deg/s takes 3 seconds.
	assert.Equal(t, 72, s.RotationFrames(90, 30))
	assert.Equal(t, 72, s.RotationFrames(-90, 30))
	assert.Equal(t, 0, s.RotationFrames(90, 0))
}

func TestCursor(t *testing.T) {
	s := Schedule{FPS: 24, PaddingSeconds: 2}
	c := s.NewCursor()

	require.Equal(t, 48, c.Frame(), "cursor starts after the leading padding")
	assert.Equal(t, 168, c.Advance(5))
	assert.Equal(t, 168, c.Frame())
	assert.Equal(t, 216, c.End(), "end frame adds the trailing padding")
}
