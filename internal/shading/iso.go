package shading

import "github.com/voxelforge/vrender/internal/voxel"

// Iso is the 3-color isometric preset: every face is recolored to one of a
// fixed top/left/right triad rather than shaded from a light direction.
// Top takes the top tone, left and back take the left tone, and right,
// front and bottom take the right tone.
type Iso struct{}

func NewIso() *Iso { return &Iso{} }

func (*Iso) ID() string         { return "iso" }
func (*Iso) Name() string       { return "Isometric Shade" }
func (*Iso) Category() Category { return CategoryFX }

func (*Iso) Schema() []ParamSpec {
	return []ParamSpec{
		{Key: "top", Kind: ParamColor, Default: voxel.Color{R: 255, G: 255, B: 255, A: 255}},
		{Key: "left", Kind: ParamColor, Default: voxel.Color{R: 190, G: 190, B: 190, A: 255}},
		{Key: "right", Kind: ParamColor, Default: voxel.Color{R: 225, G: 225, B: 225, A: 255}},
		{Key: "tintStrength", Kind: ParamSlider, Min: 0, Max: 1, Default: 1.0},
	}
}

func (m *Iso) Process(inputs []FaceInput, params map[string]any, ctx *ViewContext) []FaceOutput {
	top := paramColor(params, "top", voxel.Color{R: 255, G: 255, B: 255, A: 255})
	left := paramColor(params, "left", voxel.Color{R: 190, G: 190, B: 190, A: 255})
	right := paramColor(params, "right", voxel.Color{R: 225, G: 225, B: 225, A: 255})
	strength := paramFloat(params, "tintStrength", 1.0)

	out := make([]FaceOutput, len(inputs))
	for i, in := range inputs {
		tint := isoTint(in.Face, top, left, right)
		tinted := mulColor(in.Base, 1, tint)
		out[i] = FaceOutput{Color: blendStrength(in.Base, tinted, strength)}
	}
	return out
}

// isoTint maps each of the six faces to one of the three preset tones: top
// stays top, left/back take the left tone, right/front take the right tone.
func isoTint(f voxel.Face, top, left, right voxel.Color) voxel.Color {
	switch f {
	case voxel.FaceTop:
		return top
	case voxel.FaceLeft, voxel.FaceBack:
		return left
	default: // FaceRight, FaceFront, FaceBottom
		return right
	}
}

func blendStrength(base, tinted voxel.Color, strength float64) voxel.Color {
	if strength >= 1 {
		return tinted
	}
	if strength <= 0 {
		return base
	}
	return voxel.Color{
		R: clamp8(float64(tinted.R)*strength + float64(base.R)*(1-strength)),
		G: clamp8(float64(tinted.G)*strength + float64(base.G)*(1-strength)),
		B: clamp8(float64(tinted.B)*strength + float64(base.B)*(1-strength)),
		A: base.A,
	}
}
