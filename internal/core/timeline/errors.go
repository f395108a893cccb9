package timeline

import "errors"

var (
	// ErrInvalidFrame marks a negative frame number or a frame earlier than
	// one already recorded. Keyframes follow the animation timeline and must
	// be recorded in non-decreasing order.
	ErrInvalidFrame = errors.New("invalid keyframe frame")
)
