package scene

import (
	"context"

	"github.com/motus3d/motus/internal/core/linalg"
)

// State tracks an entity's lifecycle in the host scene.
type State uint8

const (
	// StateUnplaced means the entity exists only in memory.
	StateUnplaced State = iota
	// StatePlaced means the entity has a host representation.
	StatePlaced
	// StateAnimating means at least one keyframe has been recorded.
	StateAnimating
)

func (s State) String() string {
	switch s {
	case StateUnplaced:
		return "unplaced"
	case StatePlaced:
		return "placed"
	case StateAnimating:
		return "animating"
	default:
		return "unknown"
	}
}

// Animatable is an entity that owns a position, applies affine transforms to
// it and records it at discrete animation frames. Point, Edge and Cube
// implement it.
type Animatable interface {
	Name() string
	ID() uint64
	State() State

	Place(ctx context.Context) error

	Translate(v linalg.Vector) error
	ScaleBy(v linalg.Vector) error
	RotateX(theta float64) error
	RotateY(theta float64) error
	RotateZ(theta float64) error

	RecordKeyframe(ctx context.Context, frame int) error
	Update(ctx context.Context) error
}
