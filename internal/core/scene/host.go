package scene

import (
	"context"

	"github.com/motus3d/motus/internal/core/linalg"
)

// Handle identifies an object living in the host scene.
type Handle string

// ObjectKind names the host-side representation of an entity.
type ObjectKind string

const (
	// KindEmpty is a dimensionless marker object, used for points.
	KindEmpty ObjectKind = "empty"
	// KindPlane is a flat primitive, used for edges.
	KindPlane ObjectKind = "plane"
)

// PropertyLocation is the animated property keyframes are recorded against.
const PropertyLocation = "location"

// Host is the scene binding of the external 3D application. The core calls
// it to realize placements, updates and keyframes; it never implements host
// behavior itself, and host failures pass through to the caller unmodified.
type Host interface {
	CreateObject(ctx context.Context, name string, kind ObjectKind) (Handle, error)
	SetPosition(ctx context.Context, h Handle, pos linalg.Vector) error
	Select(ctx context.Context, h Handle) error
	DeselectAll(ctx context.Context) error
	InsertKeyframe(ctx context.Context, h Handle, frame int, property string) error
}
