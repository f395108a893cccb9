package timeline

import (
	"fmt"

	"github.com/motus3d/motus/internal/core/linalg"
)

// Keyframe is a position snapshot recorded at a timeline frame.
type Keyframe struct {
	Frame    int
	Position linalg.Vector
}

// Track is an ordered, additive history of position keyframes for one
// animated property. Frames must be recorded in non-decreasing order; every
// insertion appends a new entry and never rewrites a prior one.
type Track struct {
	keys []Keyframe
}

// NewTrack creates an empty track.
func NewTrack() *Track {
	return &Track{}
}

// Check reports whether a keyframe could be recorded at the given frame
// without recording it.
func (t *Track) Check(frame int) error {
	if frame < 0 {
		return fmt.Errorf("%w: frame %d is negative", ErrInvalidFrame, frame)
	}
	if last, ok := t.Last(); ok && frame < last.Frame {
		return fmt.Errorf("%w: frame %d precedes recorded frame %d", ErrInvalidFrame, frame, last.Frame)
	}
	return nil
}

// Record appends a keyframe at the given frame.
func (t *Track) Record(frame int, pos linalg.Vector) error {
	if err := t.Check(frame); err != nil {
		return err
	}
	t.keys = append(t.keys, Keyframe{Frame: frame, Position: pos})
	return nil
}

// Len returns the number of recorded keyframes.
func (t *Track) Len() int {
	return len(t.keys)
}

// Last returns the most recent keyframe, if any.
func (t *Track) Last() (Keyframe, bool) {
	if len(t.keys) == 0 {
		return Keyframe{}, false
	}
	return t.keys[len(t.keys)-1], true
}

// Keyframes returns a copy of the recorded history in order.
func (t *Track) Keyframes() []Keyframe {
	out := make([]Keyframe, len(t.keys))
	copy(out, t.keys)
	return out
}

// Sample returns the position at the given frame, linearly interpolated
// between the surrounding keyframes. Frames before the first keyframe clamp
// to it, frames after the last clamp to the last. The second return is false
// when the track is empty.
func (t *Track) Sample(frame float64) (linalg.Vector, bool) {
	if len(t.keys) == 0 {
		return linalg.Vector{}, false
	}
	first := t.keys[0]
	if frame <= float64(first.Frame) {
		return first.Position, true
	}
	last := t.keys[len(t.keys)-1]
	if frame >= float64(last.Frame) {
		return last.Position, true
	}
	for i := 1; i < len(t.keys); i++ {
		lo, hi := t.keys[i-1], t.keys[i]
		if frame > float64(hi.Frame) {
			continue
		}
		span := float64(hi.Frame - lo.Frame)
		if span == 0 {
			// Coincident frames: the later insertion wins.
			return hi.Position, true
		}
		u := (frame - float64(lo.Frame)) / span
		return lo.Position.Lerp(hi.Position, u), true
	}
	return last.Position, true
}
