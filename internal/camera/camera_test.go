package camera

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/voxelforge/vrender/internal/mathutil"
	"github.com/voxelforge/vrender/internal/voxel"
)

func TestPerspectiveScaleReferenceContract(t *testing.T) {
	bounds := voxel.Bounds{MinX: -2, MaxX: 2, MinY: -2, MaxY: 2, MinZ: -2, MaxZ: 2}
	for _, ref := range []ScaleRef{ScaleRefMiddle, ScaleRefFront, ScaleRefBack} {
		state := Build(Params{
			Rotation:     mathutil.Mat3Identity(),
			Bounds:       bounds,
			Orthogonal:   false,
			FovDegrees:   45,
			ScaleRef:     ref,
			TargetPixels: 10,
			Width:        400,
			Height:       400,
		})

		var depthRef float64
		switch ref {
		case ScaleRefFront:
			depthRef = state.DepthFront
		case ScaleRefBack:
			depthRef = state.DepthBack
		default:
			depthRef = state.DepthMiddle
		}

		// Project two points one voxel apart at exactly depthRef; the screen
		// distance between them must be targetPixels ± 1.
		worldZ := state.CameraZ - depthRef
		p0 := mathutil.Vec3{0, 0, worldZ}
		p1 := mathutil.Vec3{1, 0, worldZ}
		sx0, _, _ := state.Project(p0, [2]float64{0, 0})
		sx1, _, _ := state.Project(p1, [2]float64{0, 0})

		require.InDelta(t, 10.0, math.Abs(sx1-sx0), 1.0, "scaleRef=%v", ref)
	}
}

func TestOrthoVoxelSizeMatchesTargetWhenUnclamped(t *testing.T) {
	bounds := voxel.Bounds{MinX: 0, MaxX: 1, MinY: 0, MaxY: 1, MinZ: 0, MaxZ: 1}
	state := Build(Params{
		Rotation:     mathutil.Mat3Identity(),
		Bounds:       bounds,
		Orthogonal:   true,
		TargetPixels: 1,
		Width:        200,
		Height:       200,
	})
	require.Equal(t, 1.0, state.VoxelSize)
}

func TestSafetyClampBoundsVoxelSize(t *testing.T) {
	bounds := voxel.Bounds{MinX: 0, MaxX: 100, MinY: 0, MaxY: 100, MinZ: 0, MaxZ: 100}
	state := Build(Params{
		Rotation:     mathutil.Mat3Identity(),
		Bounds:       bounds,
		Orthogonal:   true,
		TargetPixels: 1000,
		Width:        200,
		Height:       200,
	})
	maxDim := float64(bounds.MaxDim())
	require.LessOrEqual(t, state.VoxelSize*maxDim, 0.9*200+1e-9)
}
