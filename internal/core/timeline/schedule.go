package timeline

import (
	"fmt"
	"math"
)

// Schedule holds the timing model of an animation: how many frames make a
// second and how much quiet padding surrounds the animated segments.
type Schedule struct {
	FPS            int     `json:"fps" yaml:"fps"`
	PaddingSeconds float64 `json:"padding_seconds" yaml:"padding_seconds"`
}

// DefaultSchedule matches the host application's usual playback settings.
func DefaultSchedule() Schedule {
	return Schedule{FPS: 24, PaddingSeconds: 2}
}

// Validate checks the schedule parameters.
func (s Schedule) Validate() error {
	if s.FPS <= 0 {
		return fmt.Errorf("schedule fps must be positive, got %d", s.FPS)
	}
	if s.PaddingSeconds < 0 {
		return fmt.Errorf("schedule padding must not be negative, got %g", s.PaddingSeconds)
	}
	return nil
}

// Frames converts a duration in seconds into a whole frame count.
func (s Schedule) Frames(seconds float64) int {
	return int(math.Round(seconds * float64(s.FPS)))
}

// PaddingFrames returns the quiet frames before and after the animation.
func (s Schedule) PaddingFrames() int {
	return s.Frames(s.PaddingSeconds)
}

// RotationFrames returns how many frames a sweep of the given size takes at
// a constant angular speed in degrees per second.
func (s Schedule) RotationFrames(degrees, degreesPerSecond float64) int {
	if degreesPerSecond == 0 {
		return 0
	}
	return s.Frames(math.Abs(degrees / degreesPerSecond))
}

// Cursor walks the timeline of a schedule, frame by frame. It starts after
// the leading padding.
type Cursor struct {
	schedule Schedule
	frame    int
}

// NewCursor creates a cursor positioned after the leading padding.
func (s Schedule) NewCursor() *Cursor {
	return &Cursor{schedule: s, frame: s.PaddingFrames()}
}

// Frame returns the cursor's current frame.
func (c *Cursor) Frame() int {
	return c.frame
}

// Advance moves the cursor forward by a duration in seconds and returns the
// new frame.
func (c *Cursor) Advance(seconds float64) int {
	c.frame += c.schedule.Frames(seconds)
	return c.frame
}

// End returns the scene end frame: the current frame plus trailing padding.
func (c *Cursor) End() int {
	return c.frame + c.schedule.PaddingFrames()
}
