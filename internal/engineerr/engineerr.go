// Package engineerr defines the four render error kinds, as sentinel
// values wrapped with fmt.Errorf("%w", ...) at each propagation boundary —
// the teacher's error idiom throughout internal/config, internal/trs,
// internal/itemlist.
package engineerr

import "errors"

// Kind identifies which of the four outcomes a Render call hit.
type Kind int

const (
	// KindNone means no error occurred.
	KindNone Kind = iota
	// KindEmptyModel: no voxels. The caller should treat this as
	// non-fatal — render an empty framed image with only background.
	KindEmptyModel
	// KindInvalidConfig: a configuration the engine cannot clamp, such as
	// a shader config naming an unregistered module. Out-of-range numeric
	// view parameters (fov, scale) are clamped and never produce it.
	KindInvalidConfig
	// KindCancelledJob: the job was cancelled before completion. Not
	// surfaced as a user-facing error; callers check for this sentinel
	// and suppress it.
	KindCancelledJob
	// KindInternalInvariantViolated: rotation non-orthogonal, bounds
	// inverted, non-convex quad. Fatal — the caller must crash or
	// report-and-recover by rebuilding the model.
	KindInternalInvariantViolated
)

// ErrEmptyModel is returned (wrapped) when a render is requested against a
// VoxelModel with zero voxels.
var ErrEmptyModel = errors.New("engine: empty voxel model")

// ErrCancelledJob is the sentinel for a cancelled render job. Render takes
// no context or cancel flag, so no function in this module returns it;
// ClassOf maps it to KindCancelledJob.
var ErrCancelledJob = errors.New("engine: render job cancelled")

// ErrInvariantViolated is returned (wrapped) when an internal precondition
// the engine assumes — an orthonormal rotation matrix, tight non-inverted
// bounds, a convex screen-space quad — does not hold. This indicates a bug
// upstream of the engine, not a bad user input.
var ErrInvariantViolated = errors.New("engine: internal invariant violated")

// ErrInvalidConfig is returned (wrapped) by Render when its shader config
// names a module the registry does not have. Out-of-range numeric view
// parameters are clamped at the boundary instead.
var ErrInvalidConfig = errors.New("engine: invalid render configuration")

// ClassOf maps an error produced by this package (possibly wrapped) back to
// its Kind, for callers that branch on outcome rather than matching errors.
func ClassOf(err error) Kind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrEmptyModel):
		return KindEmptyModel
	case errors.Is(err, ErrCancelledJob):
		return KindCancelledJob
	case errors.Is(err, ErrInvariantViolated):
		return KindInternalInvariantViolated
	case errors.Is(err, ErrInvalidConfig):
		return KindInvalidConfig
	default:
		return KindNone
	}
}
