package shading

import (
	"math"

	"github.com/voxelforge/vrender/internal/mathutil"
	"github.com/voxelforge/vrender/internal/voxel"
)

// Basic is the fixed-function "basic light" module, the only entry in a
// default ShaderConfig. It is a simple fresnel-weighted
// rim/fill term: b = (0.05+0.9·li) + (1-(0.05+0.9·li))·max(0,dot(n,view))^(1+6·(1-si)²).
type Basic struct{}

func NewBasic() *Basic { return &Basic{} }

func (*Basic) ID() string         { return "basic" }
func (*Basic) Name() string       { return "Basic Light" }
func (*Basic) Category() Category { return CategoryLighting }

func (*Basic) Schema() []ParamSpec {
	return []ParamSpec{
		{Key: "si", Kind: ParamSlider, Min: 0, Max: 1, Default: 0.5},
		{Key: "li", Kind: ParamSlider, Min: 0, Max: 1, Default: 0.5},
	}
}

func (m *Basic) Process(inputs []FaceInput, params map[string]any, ctx *ViewContext) []FaceOutput {
	si := paramFloat(params, "si", 0.5)
	li := paramFloat(params, "li", 0.5)

	fill := 0.05 + 0.9*li
	exponent := 1 + 6*(1-si)*(1-si)

	out := make([]FaceOutput, len(inputs))
	for i, in := range inputs {
		rotated := ctx.Rotation.MulVec3(mathutil.Vec3(in.Normal))
		ndv := rotated.Dot(ctx.ViewVec)
		if ndv < 0 {
			ndv = 0
		}
		b := fill + (1-fill)*math.Pow(ndv, exponent)
		out[i] = FaceOutput{Color: scaleColor(in.Base, b)}
	}
	return out
}

// scaleColor multiplies RGB by b, clamping to [0,255]; alpha passes through.
func scaleColor(c voxel.Color, b float64) voxel.Color {
	return voxel.Color{
		R: clamp8(float64(c.R) * b),
		G: clamp8(float64(c.G) * b),
		B: clamp8(float64(c.B) * b),
		A: c.A,
	}
}

func clamp8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
