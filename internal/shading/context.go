package shading

import (
	"math"

	"github.com/voxelforge/vrender/internal/mathutil"
	"github.com/voxelforge/vrender/internal/voxel"
)

// LightingCache holds the per-frame lighting quantities derived once and
// shared by every module that consumes them. Built lazily by the first
// module in a frame that calls ViewContext.EnsureLighting.
type LightingCache struct {
	CamLight   mathutil.Vec3 // light direction in camera space
	LightModel mathutil.Vec3 // light direction in model space (Rᵀ·camLight)
	Exponent   float64       // Lambert exponent, from "dynamic" diffuse param
	Ambient    float64
	LightColor voxel.Color

	BaseRadius        float64 // cone base radius, model units
	CoreRadius        float64
	RimDistFromCenter float64
}

// ViewContext is the read-only per-render state every shader module sees:
// rotated normals, light directions, camera vectors, model bounds/radii. A
// module never reaches outside this struct and its own params, so Process
// calls are deterministic given identical inputs.
type ViewContext struct {
	Rotation    mathutil.Mat3
	RotationInv mathutil.Mat3 // Rᵀ — maps camera-space directions to model space
	ViewVec     mathutil.Vec3 // camera-facing direction, model space before rotation
	ModelRadius float64       // half of the largest bounds extent
	ModelMiddle [3]float64

	lighting *LightingCache
}

// NewViewContext builds the per-render, rotation/bounds-derived context
// shared read-only across every shader module invocation this frame.
func NewViewContext(rotation mathutil.Mat3, bounds voxel.Bounds) *ViewContext {
	size := bounds.Size()
	maxDim := size[0]
	if size[1] > maxDim {
		maxDim = size[1]
	}
	if size[2] > maxDim {
		maxDim = size[2]
	}
	return &ViewContext{
		Rotation:    rotation,
		RotationInv: rotation.Transpose(),
		ViewVec:     mathutil.Vec3{0, 0, 1},
		ModelRadius: float64(maxDim) / 2,
		ModelMiddle: bounds.Middle(),
	}
}

// EnsureLighting returns the frame's LightingCache, building it from the
// given "dynamic"-shaped params on first call. yawDeg/pitchDeg/diffuse/
// ambientPct/diameter follow the dynamic module's schema (see dynamic.go).
func (ctx *ViewContext) EnsureLighting(params map[string]any) *LightingCache {
	if ctx.lighting != nil {
		return ctx.lighting
	}

	yaw := mathutil.Deg2Rad(paramFloat(params, "yaw", 45))
	pitch := mathutil.Deg2Rad(paramFloat(params, "pitch", 35))
	diffuse := paramFloat(params, "diffuse", 70)   // 0-100
	ambientPct := paramFloat(params, "ambient", 20) / 100
	diameter := paramFloat(params, "diameter", 140) // 0-100+, fraction of model diameter
	lightColor := paramColor(params, "lightColor", voxel.Color{R: 255, G: 255, B: 255, A: 255})

	camLight := mathutil.Vec3{
		math.Cos(yaw) * math.Cos(pitch),
		math.Sin(pitch),
		math.Sin(yaw) * math.Cos(pitch),
	}
	lightModel := ctx.RotationInv.MulVec3(camLight)

	diffusePct := diffuse / 100
	exponent := math.Max(0.2, 5-4*diffusePct)
	ambient := 0.02 + 0.48*ambientPct

	s := ctx.ModelRadius
	baseRadius := (diameter / 100) * s
	coreRadius := baseRadius * (1 - 0.4*diffusePct)
	rimArg := s*s - baseRadius*baseRadius
	if rimArg < 0 {
		rimArg = 0
	}
	rimDist := math.Sqrt(rimArg)

	ctx.lighting = &LightingCache{
		CamLight:          camLight,
		LightModel:        lightModel,
		Exponent:          exponent,
		Ambient:           ambient,
		LightColor:        lightColor,
		BaseRadius:        baseRadius,
		CoreRadius:        coreRadius,
		RimDistFromCenter: rimDist,
	}
	return ctx.lighting
}
