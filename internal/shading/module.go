// Package shading implements the pluggable shader stack: an ordered chain
// of pure shader modules operating on per-face base colors.
//
// This replaces a dynamic dispatch on a shader id string with a
// tagged-variant registry: every built-in module is a concrete Go type
// satisfying Module, registered by a stable string id, with a declarative
// parameter schema instead of reflection over free-form fields.
package shading

import "github.com/voxelforge/vrender/internal/voxel"

// ParamKind names the UI control a parameter should render as, so a host UI
// can auto-generate its controls from the schema alone.
type ParamKind int

const (
	ParamSlider ParamKind = iota
	ParamBool
	ParamColor
	ParamEnum
)

// ParamSpec declares one configurable parameter of a shader module.
type ParamSpec struct {
	Key     string
	Kind    ParamKind
	Min     float64  // ParamSlider only
	Max     float64  // ParamSlider only
	Default any      // float64, bool, voxel.Color, or string (enum value)
	Options []string // ParamEnum only
}

// Category partitions the chain: lighting modules always run before fx
// modules, regardless of declared order within ShaderConfig.
type Category int

const (
	CategoryLighting Category = iota
	CategoryFX
)

// FaceInput carries everything a shader module may read about one face. It
// never exposes host state — only this struct and the chain's ViewContext —
// so Process stays a pure function of its inputs.
type FaceInput struct {
	Face   voxel.Face
	Base   voxel.Color
	Normal [3]float64 // model-space unit normal
	Pos    voxel.Pos  // voxel lattice position
}

// FaceOutput is the color a module produces for one face; it becomes the
// next module's FaceInput.Base.
type FaceOutput struct {
	Color voxel.Color
}

// Module is one shader in the chain. Process must be a pure function of its
// inputs: same faceInputs + params + ctx always yields the same outputs.
type Module interface {
	ID() string
	Name() string
	Category() Category
	Schema() []ParamSpec
	Process(inputs []FaceInput, params map[string]any, ctx *ViewContext) []FaceOutput
}

// paramFloat looks up a float64 parameter, falling back to def when the key
// is absent or not a float64. Shared helper used by every built-in module.
func paramFloat(params map[string]any, key string, def float64) float64 {
	if v, ok := params[key]; ok {
		if f, ok := v.(float64); ok {
			return f
		}
	}
	return def
}

func paramBool(params map[string]any, key string, def bool) bool {
	if v, ok := params[key]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return def
}

func paramColor(params map[string]any, key string, def voxel.Color) voxel.Color {
	if v, ok := params[key]; ok {
		if c, ok := v.(voxel.Color); ok {
			return c
		}
	}
	return def
}
