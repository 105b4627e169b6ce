package shading

import "github.com/voxelforge/vrender/internal/voxel"

// FaceShade applies a constant per-face tint, either multiplicative or
// alpha-blended, one of the two "fx" built-ins.
type FaceShade struct{}

func NewFaceShade() *FaceShade { return &FaceShade{} }

func (*FaceShade) ID() string         { return "faceshade" }
func (*FaceShade) Name() string       { return "Face Shade" }
func (*FaceShade) Category() Category { return CategoryFX }

var faceShadeKeys = [6]string{"front", "back", "left", "right", "top", "bottom"}

func (*FaceShade) Schema() []ParamSpec {
	defaults := [6]voxel.Color{
		{R: 255, G: 255, B: 255, A: 255}, // front
		{R: 200, G: 200, B: 200, A: 255}, // back
		{R: 215, G: 215, B: 215, A: 255}, // left
		{R: 230, G: 230, B: 230, A: 255}, // right
		{R: 255, G: 255, B: 255, A: 255}, // top
		{R: 170, G: 170, B: 170, A: 255}, // bottom
	}
	specs := make([]ParamSpec, 0, 7)
	for i, key := range faceShadeKeys {
		specs = append(specs, ParamSpec{Key: key, Kind: ParamColor, Default: defaults[i]})
	}
	specs = append(specs, ParamSpec{Key: "alphaBlend", Kind: ParamBool, Default: false})
	return specs
}

func faceKey(f voxel.Face) string {
	return faceShadeKeys[int(f)]
}

func (m *FaceShade) Process(inputs []FaceInput, params map[string]any, ctx *ViewContext) []FaceOutput {
	alphaBlend := paramBool(params, "alphaBlend", false)
	out := make([]FaceOutput, len(inputs))
	for i, in := range inputs {
		tint := paramColor(params, faceKey(in.Face), voxel.Color{R: 255, G: 255, B: 255, A: 255})
		if alphaBlend {
			out[i] = FaceOutput{Color: blendColor(in.Base, tint)}
		} else {
			out[i] = FaceOutput{Color: mulColor(in.Base, 1, tint)}
		}
	}
	return out
}

// blendColor alpha-composites tint over base using tint's own alpha.
func blendColor(base, tint voxel.Color) voxel.Color {
	a := float64(tint.A) / 255
	return voxel.Color{
		R: clamp8(float64(tint.R)*a + float64(base.R)*(1-a)),
		G: clamp8(float64(tint.G)*a + float64(base.G)*(1-a)),
		B: clamp8(float64(tint.B)*a + float64(base.B)*(1-a)),
		A: base.A,
	}
}
