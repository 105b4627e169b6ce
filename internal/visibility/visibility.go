// Package visibility implements per-voxel face visibility as a back-face
// cull followed by an adjacency cull.
package visibility

import (
	"math"

	"github.com/voxelforge/vrender/internal/mathutil"
	"github.com/voxelforge/vrender/internal/voxel"
)

// baseThreshold is the back-face dot-product threshold at voxelSize<=1.
const baseThreshold = 0.01

// Threshold returns the back-face test threshold for a given voxel on-screen
// size. It is lowered as voxelSize grows toward 3 so thin faces stay visible
// under zoom; capped so it never rises above baseThreshold for
// small/unzoomed voxels.
func Threshold(voxelSize float64) float64 {
	factor := math.Min(3, voxelSize)
	if factor < 1 {
		factor = 1
	}
	return baseThreshold / factor
}

// Result holds the raw back-face visibility and the final adjacency-culled
// "drawn" visibility for each of the six faces, indexed the same way as
// voxel.Faces().
type Result struct {
	RawVisible [6]bool
	Drawn      [6]bool
}

// Evaluate computes face visibility for one voxel. rotation is the current
// camera/model rotation matrix; viewVec is the camera-facing direction in
// model space (the projection convention used throughout this engine is
// that +Z faces the camera before rotation, so callers typically pass
// mathutil.Vec3{0,0,1}).
func Evaluate(v voxel.Voxel, occ voxel.Occupancy, rotation mathutil.Mat3, viewVec mathutil.Vec3, voxelSize float64) Result {
	threshold := Threshold(voxelSize)
	hidden := voxel.HiddenFaces(v, occ)

	var r Result
	for i, f := range voxel.Faces() {
		n := f.Normal()
		normal := mathutil.Vec3{float64(n[0]), float64(n[1]), float64(n[2])}
		rotatedNormal := rotation.MulVec3(normal)
		visible := rotatedNormal.Dot(viewVec) > threshold
		r.RawVisible[i] = visible
		r.Drawn[i] = visible && !hidden[i]
	}
	return r
}

// Counters accumulates the per-render face counters reported in Metrics:
// raw-visible faces culled by adjacency, faces that were never raw-visible
// (back-faced), and faces that survive to be drawn. Each face is counted
// once, under the first of those tests it fails.
type Counters struct {
	FacesBackfaced int
	FacesCulledAdj int
	FacesDrawn     int
}

// Add folds one voxel's Result into the running counters.
func (c *Counters) Add(r Result) {
	for i := range r.RawVisible {
		switch {
		case !r.RawVisible[i]:
			c.FacesBackfaced++
		case !r.Drawn[i]:
			c.FacesCulledAdj++
		default:
			c.FacesDrawn++
		}
	}
}
