// Package engine builds entities from a scene description and drives their
// animation program against a host binding: place everything, apply
// transforms, and record keyframes at the schedule's segment boundaries. The
// run is synchronous and deterministic; the host interpolates between the
// recorded keyframes at playback.
package engine

import (
	"context"
	"fmt"
	"math"

	"github.com/motus3d/motus/internal/core/config"
	"github.com/motus3d/motus/internal/core/events/bus"
	"github.com/motus3d/motus/internal/core/linalg"
	"github.com/motus3d/motus/internal/core/observability/log"
	"github.com/motus3d/motus/internal/core/scene"
	"github.com/motus3d/motus/internal/core/timeline"
)

// Event types published on the bus during a run.
const (
	EventEntityPlaced     = "entity.placed"
	EventKeyframeRecorded = "keyframe.recorded"
	EventPositionUpdated  = "position.updated"
	EventRunFinished      = "run.finished"
)

// Summary reports what a run produced.
type Summary struct {
	Scene     string
	Entities  int
	Keyframes int
	EndFrame  int
}

// Engine owns the entities of one scene and replays its animation program.
type Engine struct {
	host scene.Host
	log  log.Log
	bus  bus.Bus

	schedule timeline.Schedule
	name     string
	entities []scene.Animatable
}

// New creates an engine bound to a host. A nil b runs without notifications.
func New(host scene.Host, lg log.Log, b bus.Bus) *Engine {
	return &Engine{host: host, log: lg, bus: b}
}

// Build constructs the scene's entities. The scene must already be validated.
func (e *Engine) Build(sc *config.Scene) error {
	if err := sc.Validate(); err != nil {
		return fmt.Errorf("scene validation failed: %w", err)
	}

	e.name = sc.Name
	e.schedule = sc.Schedule
	e.entities = e.entities[:0]

	for _, p := range sc.Points {
		e.entities = append(e.entities, scene.NewPoint(p.Name, p.At[0], p.At[1], p.At[2], e.host))
	}
	for _, edge := range sc.Edges {
		start := scene.NewPoint(edge.Name+"_start", edge.Start[0], edge.Start[1], edge.Start[2], e.host)
		end := scene.NewPoint(edge.Name+"_end", edge.End[0], edge.End[1], edge.End[2], e.host)
		e.entities = append(e.entities, scene.NewEdge(edge.Name, start, end, e.host))
	}
	for _, c := range sc.Cubes {
		origin := linalg.Point3(c.Origin[0], c.Origin[1], c.Origin[2])
		e.entities = append(e.entities, scene.NewCube(c.Name, origin, c.Size, e.host))
	}

	e.log.Info("scene built",
		log.String("scene", e.name),
		log.Int("entities", len(e.entities)),
	)
	return nil
}

// Entities returns the built entities in declaration order.
func (e *Engine) Entities() []scene.Animatable {
	return e.entities
}

// Run places every entity and replays the animation steps. Each keyframe step
// records the timeline cursor's current frame on every entity; wait steps
// advance the cursor. The returned summary carries the scene end frame,
// padding included.
func (e *Engine) Run(ctx context.Context, steps []config.Step) (Summary, error) {
	if len(e.entities) == 0 {
		return Summary{}, fmt.Errorf("engine has no entities; call Build first")
	}

	for _, ent := range e.entities {
		if err := ent.Place(ctx); err != nil {
			return Summary{}, fmt.Errorf("failed to place %s: %w", ent.Name(), err)
		}
		e.publish(bus.NewEvent(EventEntityPlaced, ent.Name(), nil))
	}
	e.log.Info("entities placed", log.Int("count", len(e.entities)))

	cursor := e.schedule.NewCursor()
	keyframes := 0

	for i, step := range steps {
		if err := ctx.Err(); err != nil {
			return Summary{}, err
		}
		switch step.Op {
		case config.OpWait:
			cursor.Advance(step.Seconds)

		case config.OpKeyframe:
			frame := cursor.Frame()
			for _, ent := range e.entities {
				if err := ent.RecordKeyframe(ctx, frame); err != nil {
					return Summary{}, fmt.Errorf("failed to keyframe %s at %d: %w", ent.Name(), frame, err)
				}
				e.publish(bus.NewEvent(EventKeyframeRecorded, ent.Name(), frame))
			}
			keyframes++
			e.log.Debug("keyframe recorded", log.Int("frame", frame))

		case config.OpTranslate:
			if err := e.each(func(a scene.Animatable) error {
				return a.Translate(linalg.Direction(step.By[0], step.By[1], step.By[2]))
			}); err != nil {
				return Summary{}, fmt.Errorf("step %d: %w", i, err)
			}

		case config.OpScale:
			if err := e.each(func(a scene.Animatable) error {
				return a.ScaleBy(linalg.Direction(step.By[0], step.By[1], step.By[2]))
			}); err != nil {
				return Summary{}, fmt.Errorf("step %d: %w", i, err)
			}

		case config.OpRotate:
			axis, err := linalg.ParseAxis(step.Axis)
			if err != nil {
				return Summary{}, fmt.Errorf("step %d: %w", i, err)
			}
			theta := step.Degrees * math.Pi / 180
			if err = e.each(func(a scene.Animatable) error {
				switch axis {
				case linalg.AxisX:
					return a.RotateX(theta)
				case linalg.AxisY:
					return a.RotateY(theta)
				default:
					return a.RotateZ(theta)
				}
			}); err != nil {
				return Summary{}, fmt.Errorf("step %d: %w", i, err)
			}

		case config.OpUpdate:
			for _, ent := range e.entities {
				if err := ent.Update(ctx); err != nil {
					return Summary{}, fmt.Errorf("failed to update %s: %w", ent.Name(), err)
				}
				e.publish(bus.NewEvent(EventPositionUpdated, ent.Name(), nil))
			}

		default:
			return Summary{}, fmt.Errorf("step %d: unknown op %q", i, step.Op)
		}
	}

	summary := Summary{
		Scene:     e.name,
		Entities:  len(e.entities),
		Keyframes: keyframes,
		EndFrame:  cursor.End(),
	}
	e.publish(bus.NewEvent(EventRunFinished, e.name, summary))
	e.log.Info("run finished",
		log.String("scene", summary.Scene),
		log.Int("entities", summary.Entities),
		log.Int("keyframes", summary.Keyframes),
		log.Int("end_frame", summary.EndFrame),
	)
	return summary, nil
}

func (e *Engine) each(fn func(scene.Animatable) error) error {
	for _, ent := range e.entities {
		if err := fn(ent); err != nil {
			return err
		}
	}
	return nil
}

func (e *Engine) publish(event bus.Event) {
	if e.bus != nil {
		e.bus.Publish(event)
	}
}
