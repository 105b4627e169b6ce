package raster

import (
	"github.com/voxelforge/vrender/internal/mathutil"
	"github.com/voxelforge/vrender/internal/voxel"
)

// unitCubeCorners are the 8 corners of a unit cube centered on a voxel's
// lattice position, in a fixed order referenced by faceCorners below.
var unitCubeCorners = [8]mathutil.Vec3{
	{-0.5, -0.5, -0.5}, // 0
	{0.5, -0.5, -0.5},  // 1
	{0.5, 0.5, -0.5},   // 2
	{-0.5, 0.5, -0.5},  // 3
	{-0.5, -0.5, 0.5},  // 4
	{0.5, -0.5, 0.5},   // 5
	{0.5, 0.5, 0.5},    // 6
	{-0.5, 0.5, 0.5},   // 7
}

// faceCorners indexes unitCubeCorners into a CCW (viewed from outside) quad
// for each voxel.Face, ordered to match voxel.Faces().
var faceCorners = [6][4]int{
	{4, 5, 6, 7}, // front  +Z
	{1, 0, 3, 2}, // back   -Z
	{0, 4, 7, 3}, // left   -X
	{5, 1, 2, 6}, // right  +X
	{7, 6, 2, 3}, // top    +Y
	{0, 1, 5, 4}, // bottom -Y
}

// ProjectedVertex is one of a voxel's 8 projected cube corners.
type ProjectedVertex struct {
	SX, SY float64 // screen space
	Depth  float64 // camera-relative depth, larger = farther
	Model  mathutil.Vec3 // rotated model-space position (for shading normals)
}

// ProjectCube projects the 8 unit-cube corners of a voxel at pos and
// rotates them by rotation, using proj for the screen mapping. Corners are
// built in the same unscaled lattice-unit space as the voxel centers
// themselves (half-extent ±0.5 around pos); proj is the single place that
// converts a lattice-unit offset from center into pixels, so voxel pitch
// and voxel extent scale together and adjacent voxels keep abutting at any
// scale.
func ProjectCube(pos voxel.Pos, rotation mathutil.Mat3, centerXY [2]float64, proj func(mathutil.Vec3, [2]float64) (float64, float64, float64)) [8]ProjectedVertex {
	base := mathutil.Vec3{float64(pos[0]), float64(pos[1]), float64(pos[2])}
	var out [8]ProjectedVertex
	for i, c := range unitCubeCorners {
		world := mathutil.Vec3{base[0] + c[0], base[1] + c[1], base[2] + c[2]}
		rotated := rotation.MulVec3(world)
		sx, sy, depth := proj(rotated, centerXY)
		out[i] = ProjectedVertex{SX: sx, SY: sy, Depth: depth, Model: rotated}
	}
	return out
}

// Quad is one projected, screen-space face ready for fill: 4 corners in
// order plus the average depth used for the farther-first sort.
type Quad struct {
	Face    voxel.Face
	Corners [4][2]float64
	AvgZ    float64
	Color   voxel.Color
}

// FaceQuads builds the 6 screen-space quads of a projected cube, tagging
// each with its average depth for the subsequent farther-first sort.
func FaceQuads(verts [8]ProjectedVertex) [6]Quad {
	var out [6]Quad
	for i, f := range voxel.Faces() {
		idx := faceCorners[i]
		var q Quad
		q.Face = f
		var sumZ float64
		for k, ci := range idx {
			q.Corners[k] = [2]float64{verts[ci].SX, verts[ci].SY}
			sumZ += verts[ci].Depth
		}
		q.AvgZ = sumZ / 4
		out[i] = q
	}
	return out
}
