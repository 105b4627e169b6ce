// Package engine is the top-level render orchestration: build
// bounds/occupancy, choose the camera, compute visibility, run the shading
// stack, rasterize, then hand the image and its Metrics back to the
// caller. It depends on every leaf package but exposes no shading/camera/
// visibility types of its own — only the view/config wiring between them.
package engine

import (
	"github.com/voxelforge/vrender/internal/camera"
	"github.com/voxelforge/vrender/internal/shading"
	"github.com/voxelforge/vrender/internal/voxel"
)

// ViewParameters is the caller-owned, read-during-render view snapshot.
// EulerX/Y/Z are the authoritative orientation representation; Render
// derives the rotation matrix from them, and there is no matrix field for a
// caller to set.
type ViewParameters struct {
	EulerX, EulerY, EulerZ float64 // degrees, normalized to [0,360)

	Scale               float64 // pixels per voxel at the reference depth
	Orthogonal          bool
	FovDegrees          float64
	PerspectiveScaleRef camera.ScaleRef

	Background voxel.Color

	Width, Height int
}

// ShaderConfig is an alias for the shading package's resolved chain
// configuration — an ordered sequence of shader instances is exactly
// shading.Config, so engine does not redeclare it.
type ShaderConfig = shading.Config
