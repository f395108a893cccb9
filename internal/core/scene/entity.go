package scene

import (
	"context"
	"fmt"

	"github.com/cespare/xxhash/v2"

	"github.com/motus3d/motus/internal/core/linalg"
	"github.com/motus3d/motus/internal/core/timeline"
)

var _ Animatable = (*Point)(nil)

// Point is an animatable point entity: a named homogeneous position bound to
// a host scene object, with a keyframe history.
type Point struct {
	name   string
	id     uint64
	host   Host
	pos    linalg.Vector
	state  State
	track  *timeline.Track
	handle Handle
}

// NewPoint creates an unplaced point at (x, y, z).
func NewPoint(name string, x, y, z float64, host Host) *Point {
	return &Point{
		name:  name,
		id:    xxhash.Sum64String(name),
		host:  host,
		pos:   linalg.Point3(x, y, z),
		track: timeline.NewTrack(),
	}
}

func (p *Point) Name() string { return p.name }

// ID is a stable identifier derived from the entity name.
func (p *Point) ID() uint64 { return p.id }

func (p *Point) State() State { return p.state }

// Position returns the current in-memory position.
func (p *Point) Position() linalg.Vector { return p.pos }

// Handle returns the host handle, empty until placed.
func (p *Point) Handle() Handle { return p.handle }

// Track returns the recorded keyframe history.
func (p *Point) Track() *timeline.Track { return p.track }

func (p *Point) String() string {
	return fmt.Sprintf("Point<%q>(%g, %g, %g)", p.name, p.pos.X, p.pos.Y, p.pos.Z)
}

// Place creates the point's host representation and pushes the initial
// position, transitioning the entity from unplaced to placed.
func (p *Point) Place(ctx context.Context) error {
	if p.state != StateUnplaced {
		return fmt.Errorf("%w: %s", ErrAlreadyPlaced, p.name)
	}

	err := editNew(ctx, p.host, func(ctx context.Context) error {
		h, err := p.host.CreateObject(ctx, p.name, KindEmpty)
		if err != nil {
			return err
		}
		p.handle = h
		return p.host.SetPosition(ctx, h, p.pos)
	})
	if err != nil {
		return err
	}

	p.state = StatePlaced
	return nil
}

// Translate moves the point by the spatial components of v.
func (p *Point) Translate(v linalg.Vector) error {
	return p.apply(linalg.Translation(v.X, v.Y, v.Z))
}

// ScaleBy scales the point's position per axis by the components of v.
func (p *Point) ScaleBy(v linalg.Vector) error {
	return p.apply(linalg.Scaling(v.X, v.Y, v.Z))
}

// RotateX rotates the position about the X axis by theta radians.
func (p *Point) RotateX(theta float64) error {
	return p.apply(linalg.RotationX(theta))
}

// RotateY rotates the position about the Y axis by theta radians.
func (p *Point) RotateY(theta float64) error {
	return p.apply(linalg.RotationY(theta))
}

// RotateZ rotates the position about the Z axis by theta radians.
func (p *Point) RotateZ(theta float64) error {
	return p.apply(linalg.RotationZ(theta))
}

// apply replaces the current position with m applied to it. Transforms are
// in-memory only; Update pushes the result to the host.
func (p *Point) apply(m linalg.Matrix) error {
	if p.state == StateUnplaced {
		return fmt.Errorf("%w: %s", ErrNotPlaced, p.name)
	}
	p.pos = m.Apply(p.pos)
	return nil
}

// RecordKeyframe snapshots the current position at the given frame, both in
// the entity's own history and in the host. Frames must be non-decreasing.
func (p *Point) RecordKeyframe(ctx context.Context, frame int) error {
	if p.state == StateUnplaced {
		return fmt.Errorf("%w: %s", ErrNotPlaced, p.name)
	}
	if err := p.track.Check(frame); err != nil {
		return err
	}
	// The host keyframes whatever value the property holds, so the current
	// position must be pushed before the insert.
	if err := p.host.SetPosition(ctx, p.handle, p.pos); err != nil {
		return err
	}
	if err := p.host.InsertKeyframe(ctx, p.handle, frame, PropertyLocation); err != nil {
		return err
	}
	if err := p.track.Record(frame, p.pos); err != nil {
		return err
	}
	p.state = StateAnimating
	return nil
}

// Update pushes the current in-memory position to the host representation
// without recording a keyframe.
func (p *Point) Update(ctx context.Context) error {
	if p.state == StateUnplaced {
		return fmt.Errorf("%w: %s", ErrNotPlaced, p.name)
	}
	return EditSelected(ctx, p.host, p.handle, func(ctx context.Context) error {
		return p.host.SetPosition(ctx, p.handle, p.pos)
	})
}
