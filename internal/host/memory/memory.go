// Package memory implements the host scene binding in process: an object
// table with selection state and keyframe tracks, standing in for the real
// 3D application. It backs the demo binary and the engine tests, and its
// Sample method previews the interpolation the real host performs between
// recorded keyframes.
package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/motus3d/motus/internal/core/linalg"
	"github.com/motus3d/motus/internal/core/scene"
	"github.com/motus3d/motus/internal/core/timeline"
)

var (
	ErrObjectNotFound = errors.New("host object not found")
)

var _ scene.Host = (*Host)(nil)

type object struct {
	name     string
	kind     scene.ObjectKind
	position linalg.Vector
	track    *timeline.Track
}

// Host is an in-memory scene.
type Host struct {
	mu       sync.RWMutex
	objects  map[scene.Handle]*object
	byName   map[string]scene.Handle
	selected map[scene.Handle]struct{}
}

// New creates an empty in-memory host scene.
func New() *Host {
	return &Host{
		objects:  make(map[scene.Handle]*object),
		byName:   make(map[string]scene.Handle),
		selected: make(map[scene.Handle]struct{}),
	}
}

// CreateObject adds an object to the scene. As in the real host, the freshly
// created object becomes selected.
func (h *Host) CreateObject(_ context.Context, name string, kind scene.ObjectKind) (scene.Handle, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	handle := scene.Handle(uuid.New().String())
	h.objects[handle] = &object{
		name:  name,
		kind:  kind,
		track: timeline.NewTrack(),
	}
	h.byName[name] = handle
	h.selected[handle] = struct{}{}
	return handle, nil
}

// SetPosition moves an object.
func (h *Host) SetPosition(_ context.Context, handle scene.Handle, pos linalg.Vector) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	obj, ok := h.objects[handle]
	if !ok {
		return ErrObjectNotFound
	}
	obj.position = pos
	return nil
}

// Select marks an object selected.
func (h *Host) Select(_ context.Context, handle scene.Handle) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.objects[handle]; !ok {
		return ErrObjectNotFound
	}
	h.selected[handle] = struct{}{}
	return nil
}

// DeselectAll clears the selection.
func (h *Host) DeselectAll(_ context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	clear(h.selected)
	return nil
}

// InsertKeyframe records the object's current value of the given property at
// the frame. Only the location property is animated here.
func (h *Host) InsertKeyframe(_ context.Context, handle scene.Handle, frame int, property string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	obj, ok := h.objects[handle]
	if !ok {
		return ErrObjectNotFound
	}
	if property != scene.PropertyLocation {
		return errors.New("unsupported keyframe property: " + property)
	}
	return obj.track.Record(frame, obj.position)
}

// Lookup resolves an object by name.
func (h *Host) Lookup(name string) (scene.Handle, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	handle, ok := h.byName[name]
	return handle, ok
}

// Position returns an object's current position.
func (h *Host) Position(handle scene.Handle) (linalg.Vector, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	obj, ok := h.objects[handle]
	if !ok {
		return linalg.Vector{}, ErrObjectNotFound
	}
	return obj.position, nil
}

// Sample previews the object's animated position at a (possibly fractional)
// frame, interpolating between recorded keyframes the way the real host does
// at playback.
func (h *Host) Sample(handle scene.Handle, frame float64) (linalg.Vector, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	obj, ok := h.objects[handle]
	if !ok {
		return linalg.Vector{}, ErrObjectNotFound
	}
	pos, ok := obj.track.Sample(frame)
	if !ok {
		// No keyframes yet: the static position stands.
		return obj.position, nil
	}
	return pos, nil
}

// KeyframeCount returns how many keyframes an object carries.
func (h *Host) KeyframeCount(handle scene.Handle) (int, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	obj, ok := h.objects[handle]
	if !ok {
		return 0, ErrObjectNotFound
	}
	return obj.track.Len(), nil
}

// ObjectCount returns the number of objects in the scene.
func (h *Host) ObjectCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.objects)
}

// SelectedCount returns how many objects are currently selected.
func (h *Host) SelectedCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.selected)
}
