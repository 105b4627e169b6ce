package raster

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/voxelforge/vrender/internal/mathutil"
	"github.com/voxelforge/vrender/internal/voxel"
)

// orthoProj mimics camera.State.Project's ortho branch: it is the single
// place an offset from center gets scaled into pixels, so a test built on
// it exercises the same "scale applied exactly once" wiring the real
// camera enforces.
const orthoProjScale = 10.0

func orthoProj(v mathutil.Vec3, center [2]float64) (float64, float64, float64) {
	return 50 + (v[0]-center[0])*orthoProjScale, 50 - (v[1]-center[1])*orthoProjScale, 100 - v[2]
}

func TestProjectCubeKeepsEightDistinctCorners(t *testing.T) {
	verts := ProjectCube(voxel.Pos{0, 0, 0}, mathutil.Mat3Identity(), [2]float64{0, 0}, orthoProj)
	seen := map[[3]float64]bool{}
	for _, v := range verts {
		seen[[3]float64{v.SX, v.SY, v.Depth}] = true
	}
	require.Len(t, seen, 8)
}

func TestFaceQuadsProduceSixFacesWithCorrectNormalOrder(t *testing.T) {
	verts := ProjectCube(voxel.Pos{0, 0, 0}, mathutil.Mat3Identity(), [2]float64{0, 0}, orthoProj)
	quads := FaceQuads(verts)
	require.Len(t, quads, 6)
	for i, f := range voxel.Faces() {
		require.Equal(t, f, quads[i].Face)
	}
}

func TestProjectCubeAbutsAdjacentVoxelsAtAnyScale(t *testing.T) {
	left := ProjectCube(voxel.Pos{0, 0, 0}, mathutil.Mat3Identity(), [2]float64{0, 0}, orthoProj)
	right := ProjectCube(voxel.Pos{1, 0, 0}, mathutil.Mat3Identity(), [2]float64{0, 0}, orthoProj)

	leftQuads := FaceQuads(left)
	rightQuads := FaceQuads(right)

	var leftFace, rightFace Quad
	for i, f := range voxel.Faces() {
		if f == voxel.FaceRight {
			leftFace = leftQuads[i]
		}
		if f == voxel.FaceLeft {
			rightFace = rightQuads[i]
		}
	}

	leftSet := map[[2]float64]bool{}
	for _, c := range leftFace.Corners {
		leftSet[c] = true
	}
	rightSet := map[[2]float64]bool{}
	for _, c := range rightFace.Corners {
		rightSet[c] = true
	}
	require.Equal(t, leftSet, rightSet, "adjacent voxel faces must share the same screen-space corners, not gap or overlap, at any scale")
}

func TestSortQuadsFarthestFirst(t *testing.T) {
	quads := []Quad{
		{Face: voxel.FaceFront, AvgZ: 1},
		{Face: voxel.FaceBack, AvgZ: 5},
		{Face: voxel.FaceTop, AvgZ: 3},
	}
	SortQuadsFarthestFirst(quads)
	require.Equal(t, []float64{5, 3, 1}, []float64{quads[0].AvgZ, quads[1].AvgZ, quads[2].AvgZ})
}

func TestSortVoxelsBackToFrontIsStableOnTies(t *testing.T) {
	depths := []VoxelDepth{
		{Index: 2, SqrDist: 10},
		{Index: 0, SqrDist: 10},
		{Index: 1, SqrDist: 20},
	}
	SortVoxelsBackToFront(depths)
	require.Equal(t, []int{1, 2, 0}, []int{depths[0].Index, depths[1].Index, depths[2].Index})
}

func TestFillQuadFillsASquareWithoutGaps(t *testing.T) {
	fb := NewFrameBuffer(20, 20)
	corners := [4][2]float64{{2, 2}, {10, 2}, {10, 10}, {2, 10}}
	FillQuad(fb, corners, [4]uint8{255, 0, 0, 255})

	filled := 0
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			if fb.Color[(y*20+x)*4+3] != 0 {
				filled++
			}
		}
	}
	require.InDelta(t, 64, filled, 8) // ~8x8 square, tolerant of edge rounding
}

func TestFillQuadCornerRecoveryHandlesSubPixelRuns(t *testing.T) {
	fb := NewFrameBuffer(10, 10)
	// A thin sliver narrower than 1px at the top; corner-recovery rule must
	// still produce a non-empty run (endX = startX) instead of dropping it.
	corners := [4][2]float64{{5, 0}, {5.3, 0}, {6, 5}, {4, 5}}
	require.NotPanics(t, func() {
		FillQuad(fb, corners, [4]uint8{0, 255, 0, 255})
	})
	// Row 0 crosses the sliver at x≈4.9..5.37: recovery fills pixel (5,0).
	require.Equal(t, uint8(255), fb.Color[(0*10+5)*4+3])
}

func TestBlendOpaqueOverwrites(t *testing.T) {
	fb := NewFrameBuffer(2, 2)
	fb.Blend(0, 0, [4]uint8{10, 20, 30, 255})
	fb.Blend(0, 0, [4]uint8{200, 100, 50, 255})
	require.Equal(t, []uint8{200, 100, 50, 255}, fb.Color[0:4])
}

func TestBlendTransparentSourceIsNoop(t *testing.T) {
	fb := NewFrameBuffer(2, 2)
	fb.Blend(0, 0, [4]uint8{10, 20, 30, 255})
	fb.Blend(0, 0, [4]uint8{200, 100, 50, 0})
	require.Equal(t, []uint8{10, 20, 30, 255}, fb.Color[0:4])
}
