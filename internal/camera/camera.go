// Package camera builds a projection (orthographic or perspective) from a
// rotation matrix, model bounds, and a selectable scale-reference depth.
package camera

import (
	"math"

	"github.com/voxelforge/vrender/internal/mathutil"
	"github.com/voxelforge/vrender/internal/voxel"
)

// ScaleRef selects which depth slice of the rotated bounding box projects to
// exactly Params.TargetPixels pixels per voxel (unless the safety clamp
// lowers VoxelSize).
type ScaleRef int

const (
	ScaleRefMiddle ScaleRef = iota
	ScaleRefFront
	ScaleRefBack
)

// Params are the inputs to Build. TargetPixels is the requested "scale":
// pixels-per-voxel at the reference depth.
type Params struct {
	Rotation      mathutil.Mat3
	Bounds        voxel.Bounds
	Orthogonal    bool
	FovDegrees    float64
	ScaleRef      ScaleRef
	TargetPixels  float64
	Width, Height int
}

// State holds the precomputed camera values a render needs per-vertex.
type State struct {
	Orthogonal  bool
	CameraZ     float64 // camera position along the rotated Z axis (model space)
	CenterZ     float64 // rotated-bounds center Z, the origin the camera orbits
	FocalLength float64
	Cx, Cy      float64
	VoxelSize   float64
	DepthFront  float64
	DepthMiddle float64
	DepthBack   float64
}

const minFov, maxFov = 5, 75

func clampFov(deg float64) float64 {
	if deg < minFov {
		return minFov
	}
	if deg > maxFov {
		return maxFov
	}
	return deg
}

// rotatedCorners returns the 8 corners of b rotated by R.
func rotatedCorners(b voxel.Bounds, r mathutil.Mat3) [8]mathutil.Vec3 {
	xs := [2]float64{float64(b.MinX), float64(b.MaxX)}
	ys := [2]float64{float64(b.MinY), float64(b.MaxY)}
	zs := [2]float64{float64(b.MinZ), float64(b.MaxZ)}
	var out [8]mathutil.Vec3
	i := 0
	for _, x := range xs {
		for _, y := range ys {
			for _, z := range zs {
				out[i] = r.MulVec3(mathutil.Vec3{x, y, z})
				i++
			}
		}
	}
	return out
}

// Build computes a camera State from p, including the scale-reference depth
// selection and the safety clamp voxelSize·maxDim ≤ 0.9·min(w,h).
func Build(p Params) State {
	maxDim := float64(p.Bounds.MaxDim())
	if maxDim < 1 {
		maxDim = 1
	}

	corners := rotatedCorners(p.Bounds, p.Rotation)
	zMin, zMax := corners[0][2], corners[0][2]
	for _, c := range corners[1:] {
		if c[2] < zMin {
			zMin = c[2]
		}
		if c[2] > zMax {
			zMax = c[2]
		}
	}
	centerZ := (zMin + zMax) / 2

	minWH := float64(p.Width)
	if float64(p.Height) < minWH {
		minWH = float64(p.Height)
	}

	var s State
	s.Orthogonal = p.Orthogonal
	s.CenterZ = centerZ
	s.Cx = float64(p.Width) / 2
	s.Cy = float64(p.Height) / 2

	if p.Orthogonal {
		cameraDistance := maxDim * 5
		s.CameraZ = centerZ + cameraDistance
		s.DepthMiddle = cameraDistance
		s.DepthFront = s.CameraZ - zMax
		s.DepthBack = s.CameraZ - zMin
		voxelSize := p.TargetPixels
		if voxelSize*maxDim > 0.9*minWH {
			voxelSize = 0.9 * minWH / maxDim
		}
		s.VoxelSize = voxelSize
		return s
	}

	fov := clampFov(p.FovDegrees)
	t := (fov - minFov) / (maxFov - minFov)
	amplified := math.Cbrt(t)
	cameraDistance := maxDim * (1.2 + (1-amplified)*(1-amplified)*45)
	s.CameraZ = centerZ + cameraDistance

	halfFovRad := mathutil.Deg2Rad(fov / 2)
	focalLength := (float64(p.Height) / 2) / math.Tan(halfFovRad)
	s.FocalLength = focalLength

	s.DepthMiddle = cameraDistance
	s.DepthFront = s.CameraZ - zMax
	s.DepthBack = s.CameraZ - zMin

	var depthRef float64
	switch p.ScaleRef {
	case ScaleRefFront:
		depthRef = s.DepthFront
	case ScaleRefBack:
		depthRef = s.DepthBack
	default:
		depthRef = s.DepthMiddle
	}
	if depthRef < 1e-6 {
		depthRef = 1e-6
	}

	voxelSize := p.TargetPixels * depthRef / focalLength
	if voxelSize*maxDim > 0.9*minWH {
		voxelSize = 0.9 * minWH / maxDim
	}
	s.VoxelSize = voxelSize

	return s
}

// Project maps a rotated model-space point (already transformed by the same
// rotation matrix passed to Build) to screen coordinates and a depth value.
// center is the rotated-bounds center (Bounds.Middle() rotated the same way)
// projected in X/Y; its Z is State.CenterZ.
func (s State) Project(rotated mathutil.Vec3, centerXY [2]float64) (sx, sy, depth float64) {
	if s.Orthogonal {
		sx = s.Cx + (rotated[0]-centerXY[0])*s.VoxelSize
		sy = s.Cy - (rotated[1]-centerXY[1])*s.VoxelSize
		depth = s.CameraZ - rotated[2]
		return sx, sy, depth
	}

	depth = s.CameraZ - rotated[2]
	if depth < 0.001 {
		depth = 0.001
	}
	sx = s.Cx + (rotated[0]-centerXY[0])*s.VoxelSize*s.FocalLength/depth
	sy = s.Cy - (rotated[1]-centerXY[1])*s.VoxelSize*s.FocalLength/depth
	return sx, sy, depth
}
