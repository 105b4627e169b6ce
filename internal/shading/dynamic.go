package shading

import (
	"math"

	"github.com/voxelforge/vrender/internal/mathutil"
	"github.com/voxelforge/vrender/internal/voxel"
)

// Dynamic is the parametric "dynamic light" module: Lambert diffuse with a
// radial falloff cone, a constant ambient floor, and an optional fresnel
// rim term.
type Dynamic struct{}

func NewDynamic() *Dynamic { return &Dynamic{} }

func (*Dynamic) ID() string         { return "dynamic" }
func (*Dynamic) Name() string       { return "Dynamic Light" }
func (*Dynamic) Category() Category { return CategoryLighting }

func (*Dynamic) Schema() []ParamSpec {
	return []ParamSpec{
		{Key: "yaw", Kind: ParamSlider, Min: 0, Max: 360, Default: 45.0},
		{Key: "pitch", Kind: ParamSlider, Min: -90, Max: 90, Default: 35.0},
		{Key: "diffuse", Kind: ParamSlider, Min: 0, Max: 100, Default: 70.0},
		{Key: "ambient", Kind: ParamSlider, Min: 0, Max: 100, Default: 20.0},
		{Key: "diameter", Kind: ParamSlider, Min: 0, Max: 300, Default: 140.0},
		{Key: "lightColor", Kind: ParamColor, Default: voxel.Color{R: 255, G: 255, B: 255, A: 255}},
		{Key: "rim", Kind: ParamBool, Default: false},
		{Key: "rimStrength", Kind: ParamSlider, Min: 0, Max: 1, Default: 0.3},
	}
}

func (m *Dynamic) Process(inputs []FaceInput, params map[string]any, ctx *ViewContext) []FaceOutput {
	lc := ctx.EnsureLighting(params)
	rim := paramBool(params, "rim", false)
	rimStrength := paramFloat(params, "rimStrength", 0.3)

	out := make([]FaceOutput, len(inputs))
	for i, in := range inputs {
		normal := mathutil.Vec3(in.Normal)
		rotatedNormal := ctx.Rotation.MulVec3(normal)

		ndotl := normal.Dot(lc.LightModel)
		if ndotl < 0 {
			ndotl = 0
		}

		radial := radialFactor(in.Pos, ctx.ModelMiddle, lc.CoreRadius, lc.BaseRadius)
		// shadowFactor: no occluder/shadow-map pass in this engine; fixed
		// at 1 until one is added.
		shadowFactor := 1.0

		diffuse := math.Pow(ndotl, lc.Exponent) * radial * shadowFactor
		col := mulColor(in.Base, lc.Ambient+diffuse, lc.LightColor)

		if rim {
			ndv := rotatedNormal.Dot(ctx.ViewVec)
			rimTerm := rimStrength * smoothstep(0.55, 0.95, 1-ndv)
			col = addColor(col, scaleColor(lc.LightColor, rimTerm))
		}
		out[i] = FaceOutput{Color: col}
	}
	return out
}

// radialFactor is 1 inside coreRadius, 0 outside baseRadius, and an inverted
// smoothstep between — distance measured from the voxel to the model
// center.
func radialFactor(pos voxel.Pos, middle [3]float64, coreRadius, baseRadius float64) float64 {
	dx := float64(pos[0]) - middle[0]
	dy := float64(pos[1]) - middle[1]
	dz := float64(pos[2]) - middle[2]
	d := math.Sqrt(dx*dx + dy*dy + dz*dz)
	if d <= coreRadius {
		return 1
	}
	if d >= baseRadius || baseRadius <= coreRadius {
		return 0
	}
	return 1 - smoothstep(coreRadius, baseRadius, d)
}

func smoothstep(edge0, edge1, x float64) float64 {
	t := (x - edge0) / (edge1 - edge0)
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return t * t * (3 - 2*t)
}

// mulColor multiplies base RGB by scalar and by tint's RGB (normalized to
// [0,1]), clamping to [0,255]; alpha passes through.
func mulColor(base voxel.Color, scalar float64, tint voxel.Color) voxel.Color {
	tr, tg, tb := float64(tint.R)/255, float64(tint.G)/255, float64(tint.B)/255
	return voxel.Color{
		R: clamp8(float64(base.R) * scalar * tr),
		G: clamp8(float64(base.G) * scalar * tg),
		B: clamp8(float64(base.B) * scalar * tb),
		A: base.A,
	}
}

func addColor(a, b voxel.Color) voxel.Color {
	return voxel.Color{
		R: clamp8(float64(a.R) + float64(b.R)),
		G: clamp8(float64(a.G) + float64(b.G)),
		B: clamp8(float64(a.B) + float64(b.B)),
		A: a.A,
	}
}
