package scene

import (
	"context"
	"fmt"

	"github.com/cespare/xxhash/v2"

	"github.com/motus3d/motus/internal/core/linalg"
)

var _ Animatable = (*Cube)(nil)

// cubeEdges lists the 12 edges of a cube as corner index pairs, corners
// ordered by the binary pattern (x, y, z) in {0, 1}^3.
var cubeEdges = [12][2]int{
	{0, 1}, {2, 3}, {4, 5}, {6, 7}, // along x
	{0, 2}, {1, 3}, {4, 6}, {5, 7}, // along y
	{0, 4}, {1, 5}, {2, 6}, {3, 7}, // along z
}

// Cube is a composite entity: 8 corner points and 12 edges over them, all
// animated under one identifier. Transforms touch each corner exactly once;
// the edges derive their positions from the shared corners.
type Cube struct {
	name   string
	id     uint64
	state  State
	points [8]*Point
	edges  [12]*Edge
}

// NewCube creates an unplaced axis-aligned cube with the given origin corner
// and edge length.
func NewCube(name string, origin linalg.Vector, size float64, host Host) *Cube {
	c := &Cube{
		name: name,
		id:   xxhash.Sum64String(name),
	}
	for i := range c.points {
		dx := float64(i & 1)
		dy := float64(i >> 1 & 1)
		dz := float64(i >> 2 & 1)
		c.points[i] = NewPoint(
			fmt.Sprintf("%s_p%d", name, i+1),
			origin.X+dx*size, origin.Y+dy*size, origin.Z+dz*size,
			host,
		)
	}
	for i, pair := range cubeEdges {
		c.edges[i] = NewEdge(
			fmt.Sprintf("%s_e%d", name, i+1),
			c.points[pair[0]], c.points[pair[1]],
			host,
		)
	}
	return c
}

func (c *Cube) Name() string { return c.name }

func (c *Cube) ID() uint64 { return c.id }

func (c *Cube) State() State { return c.state }

// Points returns the cube's corner points.
func (c *Cube) Points() []*Point { return c.points[:] }

// Edges returns the cube's edges.
func (c *Cube) Edges() []*Edge { return c.edges[:] }

// Place places every corner and edge.
func (c *Cube) Place(ctx context.Context) error {
	if c.state != StateUnplaced {
		return fmt.Errorf("%w: %s", ErrAlreadyPlaced, c.name)
	}
	for _, e := range c.edges {
		// Edges place their endpoints first, so shared corners are placed
		// exactly once.
		if err := e.Place(ctx); err != nil {
			return err
		}
	}
	c.state = StatePlaced
	return nil
}

// Translate moves every corner; edges derive.
func (c *Cube) Translate(v linalg.Vector) error {
	return c.eachPoint(func(p *Point) error { return p.Translate(v) })
}

// ScaleBy scales every corner; edges derive.
func (c *Cube) ScaleBy(v linalg.Vector) error {
	return c.eachPoint(func(p *Point) error { return p.ScaleBy(v) })
}

// RotateX rotates every corner about the X axis.
func (c *Cube) RotateX(theta float64) error {
	return c.eachPoint(func(p *Point) error { return p.RotateX(theta) })
}

// RotateY rotates every corner about the Y axis.
func (c *Cube) RotateY(theta float64) error {
	return c.eachPoint(func(p *Point) error { return p.RotateY(theta) })
}

// RotateZ rotates every corner about the Z axis.
func (c *Cube) RotateZ(theta float64) error {
	return c.eachPoint(func(p *Point) error { return p.RotateZ(theta) })
}

func (c *Cube) eachPoint(fn func(*Point) error) error {
	if c.state == StateUnplaced {
		return fmt.Errorf("%w: %s", ErrNotPlaced, c.name)
	}
	for _, p := range c.points {
		if err := fn(p); err != nil {
			return err
		}
	}
	return nil
}

// RecordKeyframe records the frame on every corner and on every edge's host
// representation. Corners are recorded once each, directly.
func (c *Cube) RecordKeyframe(ctx context.Context, frame int) error {
	if c.state == StateUnplaced {
		return fmt.Errorf("%w: %s", ErrNotPlaced, c.name)
	}
	for _, p := range c.points {
		if err := p.RecordKeyframe(ctx, frame); err != nil {
			return err
		}
	}
	for _, e := range c.edges {
		if err := e.recordOwnKeyframe(ctx, frame); err != nil {
			return err
		}
	}
	c.state = StateAnimating
	return nil
}

// Update pushes every corner and edge position to the host.
func (c *Cube) Update(ctx context.Context) error {
	if c.state == StateUnplaced {
		return fmt.Errorf("%w: %s", ErrNotPlaced, c.name)
	}
	for _, p := range c.points {
		if err := p.Update(ctx); err != nil {
			return err
		}
	}
	for _, e := range c.edges {
		if err := EditSelected(ctx, e.host, e.handle, func(ctx context.Context) error {
			return e.host.SetPosition(ctx, e.handle, e.Midpoint())
		}); err != nil {
			return err
		}
	}
	return nil
}
