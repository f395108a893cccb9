package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/motus3d/motus/internal/core/config"
	"github.com/motus3d/motus/internal/core/events/bus"
	"github.com/motus3d/motus/internal/core/linalg"
	"github.com/motus3d/motus/internal/core/observability/log"
	"github.com/motus3d/motus/internal/core/scene"
	"github.com/motus3d/motus/internal/host/memory"
)

func liftScene() *config.Scene {
	return &config.Scene{
		Name:     "lift",
		Schedule: config.CubeDemo().Schedule,
		Points: []config.Point{
			{Name: "p_1", At: [3]float64{0, 0, 0}},
			{Name: "p_2", At: [3]float64{1, 0, 0}},
		},
		Steps: []config.Step{
			{Op: config.OpKeyframe},
			{Op: config.OpTranslate, By: &[3]float64{0, 0, 2}},
			{Op: config.OpWait, Seconds: 5},
			{Op: config.OpKeyframe},
		},
	}
}

func TestEngine_RunLift(t *testing.T) {
	host := memory.New()
	eng := New(host, log.Nop(), nil)
	require.NoError(t, eng.Build(liftScene()))

	summary, err := eng.Run(context.Background(), liftScene().Steps)
	require.NoError(t, err)

	assert.Equal(t, "lift", summary.Scene)
	assert.Equal(t, 2, summary.Entities)
	assert.Equal(t, 2, summary.Keyframes)
	// 24 fps, 2 s padding: keyframes at 48 and 168, end at 216.
	assert.Equal(t, 216, summary.EndFrame)

	handle, ok := host.Lookup("p_1")
	require.True(t, ok)

	n, err := host.KeyframeCount(handle)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	// Final host position reflects the translation.
	pos, err := host.Position(handle)
	require.NoError(t, err)
	assert.True(t, linalg.Equal(linalg.Point3(0, 0, 2), pos, linalg.Tolerance))

	// Playback midway through the lift is halfway up.
	mid, err := host.Sample(handle, 108)
	require.NoError(t, err)
	assert.True(t, linalg.Equal(linalg.Point3(0, 0, 1), mid, linalg.Tolerance))

	assert.Zero(t, host.SelectedCount(), "the run leaves a clean selection")
}

func TestEngine_RunCubeDemo(t *testing.T) {
	host := memory.New()
	eng := New(host, log.Nop(), nil)

	sc := config.CubeDemo()
	require.NoError(t, eng.Build(sc))

	summary, err := eng.Run(context.Background(), sc.Steps)
	require.NoError(t, err)

	assert.Equal(t, 8, summary.Entities)
	assert.Equal(t, 3, summary.Keyframes)
	assert.Equal(t, 8, host.ObjectCount())

	// After the lift and the quarter turn, p_2 started at (1, 0, 0):
	// lifted to (1, 0, 2), then rotated onto (0, 1, 2).
	handle, ok := host.Lookup("p_2")
	require.True(t, ok)
	pos, err := host.Position(handle)
	require.NoError(t, err)
	assert.True(t, linalg.Equal(linalg.Point3(0, 1, 2), pos, linalg.Tolerance))
}

func TestEngine_BuildAllEntityKinds(t *testing.T) {
	host := memory.New()
	eng := New(host, log.Nop(), nil)

	sc := &config.Scene{
		Name:     "mixed",
		Schedule: config.CubeDemo().Schedule,
		Points:   []config.Point{{Name: "p", At: [3]float64{0, 0, 0}}},
		Edges:    []config.Edge{{Name: "e", Start: [3]float64{0, 0, 0}, End: [3]float64{1, 0, 0}}},
		Cubes:    []config.Cube{{Name: "c", Origin: [3]float64{0, 0, 0}, Size: 1}},
	}
	require.NoError(t, eng.Build(sc))
	require.Len(t, eng.Entities(), 3)

	_, err := eng.Run(context.Background(), nil)
	require.NoError(t, err)

	// 1 point + edge (2 endpoints + 1 plane) + cube (8 corners + 12 planes).
	assert.Equal(t, 1+3+20, host.ObjectCount())
}

func TestEngine_PublishesEvents(t *testing.T) {
	host := memory.New()
	b := bus.New()

	placed, keyframed := 0, 0
	b.Subscribe(EventEntityPlaced, func(bus.Event) { placed++ })
	b.Subscribe(EventKeyframeRecorded, func(e bus.Event) {
		keyframed++
		assert.Equal(t, 48, e.Data)
	})

	var finished []bus.Event
	b.Subscribe(EventRunFinished, func(e bus.Event) { finished = append(finished, e) })

	eng := New(host, log.Nop(), b)
	sc := liftScene()
	sc.Steps = sc.Steps[:1] // just the first keyframe
	require.NoError(t, eng.Build(sc))

	_, err := eng.Run(context.Background(), sc.Steps)
	require.NoError(t, err)

	assert.Equal(t, 2, placed)
	assert.Equal(t, 2, keyframed)
	require.Len(t, finished, 1)
	assert.Equal(t, "lift", finished[0].Source)
}

func TestEngine_RunWithoutBuild(t *testing.T) {
	eng := New(memory.New(), log.Nop(), nil)
	_, err := eng.Run(context.Background(), nil)
	assert.Error(t, err)
}

func TestEngine_InvalidSceneRejected(t *testing.T) {
	eng := New(memory.New(), log.Nop(), nil)
	err := eng.Build(&config.Scene{Name: ""})
	assert.Error(t, err)
}

var _ scene.Host = (*memory.Host)(nil)
