package scene

import (
	"context"
	"fmt"

	"github.com/cespare/xxhash/v2"

	"github.com/motus3d/motus/internal/core/linalg"
)

var _ Animatable = (*Edge)(nil)

// Edge is an animatable line segment between two point entities. It owns no
// vector state of its own: its position is the midpoint of its endpoints, and
// every transform, placement and update call is delegated to both endpoints,
// keeping them synchronized under one identifier.
type Edge struct {
	name       string
	id         uint64
	host       Host
	start, end *Point
	handle     Handle
	state      State

	// axis is the principal axis invariant across the edge's span, when one
	// exists. It orients the host representation at placement.
	axis    linalg.Axis
	hasAxis bool
}

// NewEdge creates an unplaced edge over two endpoints. The endpoints may be
// shared with other entities; the caller then owns the transform ordering.
func NewEdge(name string, start, end *Point, host Host) *Edge {
	return &Edge{
		name:  name,
		id:    xxhash.Sum64String(name),
		host:  host,
		start: start,
		end:   end,
	}
}

func (e *Edge) Name() string { return e.name }

func (e *Edge) ID() uint64 { return e.id }

func (e *Edge) State() State { return e.state }

// Start returns the first endpoint.
func (e *Edge) Start() *Point { return e.start }

// End returns the second endpoint.
func (e *Edge) End() *Point { return e.end }

// Midpoint returns the derived position of the edge.
func (e *Edge) Midpoint() linalg.Vector {
	return e.start.Position().Midpoint(e.end.Position())
}

// Handle returns the host handle of the edge's own representation.
func (e *Edge) Handle() Handle { return e.handle }

// Axis returns the principal axis the edge's span holds invariant, when one
// was determinable at placement.
func (e *Edge) Axis() (linalg.Axis, bool) { return e.axis, e.hasAxis }

func (e *Edge) String() string {
	return fmt.Sprintf("Edge<%q>(%s -> %s)", e.name, e.start.Position(), e.end.Position())
}

// Place places both endpoints, then creates the edge's own host
// representation at the midpoint, oriented by the common axis of its span
// where one is determinable.
func (e *Edge) Place(ctx context.Context) error {
	if e.state != StateUnplaced {
		return fmt.Errorf("%w: %s", ErrAlreadyPlaced, e.name)
	}

	for _, p := range []*Point{e.start, e.end} {
		if p.State() == StateUnplaced {
			if err := p.Place(ctx); err != nil {
				return err
			}
		}
	}

	mid := e.Midpoint()
	if axis, err := linalg.CommonAxis(e.start.Position(), mid, e.end.Position()); err == nil {
		e.axis = axis
		e.hasAxis = true
	}

	err := editNew(ctx, e.host, func(ctx context.Context) error {
		h, err := e.host.CreateObject(ctx, e.name, KindPlane)
		if err != nil {
			return err
		}
		e.handle = h
		return e.host.SetPosition(ctx, h, mid)
	})
	if err != nil {
		return err
	}

	e.state = StatePlaced
	return nil
}

// Translate delegates to both endpoints.
func (e *Edge) Translate(v linalg.Vector) error {
	return e.each(func(p *Point) error { return p.Translate(v) })
}

// ScaleBy delegates to both endpoints.
func (e *Edge) ScaleBy(v linalg.Vector) error {
	return e.each(func(p *Point) error { return p.ScaleBy(v) })
}

// RotateX delegates to both endpoints.
func (e *Edge) RotateX(theta float64) error {
	return e.each(func(p *Point) error { return p.RotateX(theta) })
}

// RotateY delegates to both endpoints.
func (e *Edge) RotateY(theta float64) error {
	return e.each(func(p *Point) error { return p.RotateY(theta) })
}

// RotateZ delegates to both endpoints.
func (e *Edge) RotateZ(theta float64) error {
	return e.each(func(p *Point) error { return p.RotateZ(theta) })
}

func (e *Edge) each(fn func(*Point) error) error {
	if e.state == StateUnplaced {
		return fmt.Errorf("%w: %s", ErrNotPlaced, e.name)
	}
	if err := fn(e.start); err != nil {
		return err
	}
	return fn(e.end)
}

// RecordKeyframe records the frame on both endpoints and on the edge's own
// host representation.
func (e *Edge) RecordKeyframe(ctx context.Context, frame int) error {
	if e.state == StateUnplaced {
		return fmt.Errorf("%w: %s", ErrNotPlaced, e.name)
	}
	if err := e.start.RecordKeyframe(ctx, frame); err != nil {
		return err
	}
	if err := e.end.RecordKeyframe(ctx, frame); err != nil {
		return err
	}
	return e.recordOwnKeyframe(ctx, frame)
}

// recordOwnKeyframe keyframes the edge's own host representation at its
// derived midpoint, without touching the endpoints.
func (e *Edge) recordOwnKeyframe(ctx context.Context, frame int) error {
	if err := e.host.SetPosition(ctx, e.handle, e.Midpoint()); err != nil {
		return err
	}
	if err := e.host.InsertKeyframe(ctx, e.handle, frame, PropertyLocation); err != nil {
		return err
	}
	e.state = StateAnimating
	return nil
}

// Update pushes both endpoints and the derived midpoint to the host.
func (e *Edge) Update(ctx context.Context) error {
	if e.state == StateUnplaced {
		return fmt.Errorf("%w: %s", ErrNotPlaced, e.name)
	}
	if err := e.start.Update(ctx); err != nil {
		return err
	}
	if err := e.end.Update(ctx); err != nil {
		return err
	}
	return EditSelected(ctx, e.host, e.handle, func(ctx context.Context) error {
		return e.host.SetPosition(ctx, e.handle, e.Midpoint())
	})
}
