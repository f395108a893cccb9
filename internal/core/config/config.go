package config

import (
	"fmt"

	"github.com/motus3d/motus/internal/core/timeline"
)

// Step operations understood by the engine.
const (
	OpWait      = "wait"      // advance the timeline cursor
	OpKeyframe  = "keyframe"  // record a keyframe at the cursor on every entity
	OpTranslate = "translate" // translate every entity
	OpScale     = "scale"     // scale every entity per axis
	OpRotate    = "rotate"    // rotate every entity about a principal axis
	OpUpdate    = "update"    // push in-memory positions to the host
)

// Scene describes an animated scene: its entities, its timing model and the
// ordered animation steps applied to every entity.
type Scene struct {
	Name     string            `json:"name" yaml:"name"`
	Schedule timeline.Schedule `json:"schedule" yaml:"schedule"`
	Points   []Point           `json:"points,omitempty" yaml:"points,omitempty"`
	Edges    []Edge            `json:"edges,omitempty" yaml:"edges,omitempty"`
	Cubes    []Cube            `json:"cubes,omitempty" yaml:"cubes,omitempty"`
	Steps    []Step            `json:"steps,omitempty" yaml:"steps,omitempty"`
}

// Point places a named point entity.
type Point struct {
	Name string     `json:"name" yaml:"name"`
	At   [3]float64 `json:"at" yaml:"at"`
}

// Edge places a named edge entity with its own two endpoints.
type Edge struct {
	Name  string     `json:"name" yaml:"name"`
	Start [3]float64 `json:"start" yaml:"start"`
	End   [3]float64 `json:"end" yaml:"end"`
}

// Cube places a named axis-aligned cube by origin corner and edge length.
type Cube struct {
	Name   string     `json:"name" yaml:"name"`
	Origin [3]float64 `json:"origin" yaml:"origin"`
	Size   float64    `json:"size" yaml:"size"`
}

// Step is one operation of the animation program.
type Step struct {
	Op      string      `json:"op" yaml:"op"`
	By      *[3]float64 `json:"by,omitempty" yaml:"by,omitempty"`           // translate, scale
	Axis    string      `json:"axis,omitempty" yaml:"axis,omitempty"`       // rotate
	Degrees float64     `json:"degrees,omitempty" yaml:"degrees,omitempty"` // rotate
	Seconds float64     `json:"seconds,omitempty" yaml:"seconds,omitempty"` // wait
}

// Validate checks the scene description.
func (s *Scene) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("scene name is required")
	}
	if err := s.Schedule.Validate(); err != nil {
		return fmt.Errorf("schedule validation failed: %w", err)
	}
	if len(s.Points)+len(s.Edges)+len(s.Cubes) == 0 {
		return fmt.Errorf("scene %q has no entities", s.Name)
	}

	names := make(map[string]struct{})
	claim := func(name, kind string) error {
		if name == "" {
			return fmt.Errorf("%s name is required", kind)
		}
		if _, dup := names[name]; dup {
			return fmt.Errorf("duplicate entity name %q", name)
		}
		names[name] = struct{}{}
		return nil
	}

	for _, p := range s.Points {
		if err := claim(p.Name, "point"); err != nil {
			return err
		}
	}
	for _, e := range s.Edges {
		if err := claim(e.Name, "edge"); err != nil {
			return err
		}
		if e.Start == e.End {
			return fmt.Errorf("edge %q has coincident endpoints", e.Name)
		}
	}
	for _, c := range s.Cubes {
		if err := claim(c.Name, "cube"); err != nil {
			return err
		}
		if c.Size <= 0 {
			return fmt.Errorf("cube %q size must be positive, got %g", c.Name, c.Size)
		}
	}

	for i, st := range s.Steps {
		if err := st.validate(); err != nil {
			return fmt.Errorf("step %d validation failed: %w", i, err)
		}
	}
	return nil
}

func (st Step) validate() error {
	switch st.Op {
	case OpWait:
		if st.Seconds <= 0 {
			return fmt.Errorf("wait requires positive seconds, got %g", st.Seconds)
		}
	case OpKeyframe, OpUpdate:
		// no parameters
	case OpTranslate, OpScale:
		if st.By == nil {
			return fmt.Errorf("%s requires a 'by' vector", st.Op)
		}
	case OpRotate:
		switch st.Axis {
		case "x", "y", "z":
		default:
			return fmt.Errorf("rotate requires axis x, y or z, got %q", st.Axis)
		}
	case "":
		return fmt.Errorf("step op is required")
	default:
		return fmt.Errorf("unknown step op %q", st.Op)
	}
	return nil
}

// CubeDemo is the built-in demo scene: a unit cube of eight named points,
// lifted by two units over five seconds and then swept a quarter turn about
// the Z axis at 30 degrees per second, keyframed at each segment boundary.
func CubeDemo() *Scene {
	points := make([]Point, 0, 8)
	for i := 0; i < 8; i++ {
		points = append(points, Point{
			Name: fmt.Sprintf("p_%d", i+1),
			At:   [3]float64{float64(i & 1), float64(i >> 1 & 1), float64(i >> 2 & 1)},
		})
	}
	return &Scene{
		Name:     "cube_demo",
		Schedule: timeline.DefaultSchedule(),
		Points:   points,
		Steps: []Step{
			{Op: OpKeyframe},
			{Op: OpTranslate, By: &[3]float64{0, 0, 2}},
			{Op: OpWait, Seconds: 5},
			{Op: OpKeyframe},
			{Op: OpRotate, Axis: "z", Degrees: 90},
			{Op: OpWait, Seconds: 3},
			{Op: OpKeyframe},
		},
	}
}
