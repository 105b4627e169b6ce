package shading

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/voxelforge/vrender/internal/mathutil"
	"github.com/voxelforge/vrender/internal/voxel"
)

func testCtx() *ViewContext {
	bounds := voxel.Bounds{MinX: -5, MaxX: 5, MinY: -5, MaxY: 5, MinZ: -5, MaxZ: 5}
	return NewViewContext(mathutil.Mat3Identity(), bounds)
}

func TestBasicProcessIsDeterministic(t *testing.T) {
	m := NewBasic()
	ctx := testCtx()
	in := []FaceInput{{Face: voxel.FaceFront, Base: voxel.Color{R: 200, G: 100, B: 50, A: 255}, Normal: [3]float64{0, 0, 1}}}
	params := map[string]any{"si": 0.5, "li": 0.5}

	out1 := m.Process(in, params, ctx)
	out2 := m.Process(in, params, ctx)
	require.Equal(t, out1, out2)
}

func TestBasicFullLightAndShadowPreservesAlpha(t *testing.T) {
	m := NewBasic()
	ctx := testCtx()
	in := []FaceInput{{Face: voxel.FaceFront, Base: voxel.Color{R: 200, G: 100, B: 50, A: 128}, Normal: [3]float64{0, 0, 1}}}
	out := m.Process(in, map[string]any{"si": 1.0, "li": 1.0}, ctx)
	require.Equal(t, uint8(128), out[0].Color.A)
}

func TestDynamicLightingCacheBuiltOnce(t *testing.T) {
	ctx := testCtx()
	params := map[string]any{"yaw": 45.0, "pitch": 35.0, "diffuse": 70.0, "ambient": 20.0, "diameter": 140.0}
	lc1 := ctx.EnsureLighting(params)
	lc2 := ctx.EnsureLighting(map[string]any{"yaw": 0.0}) // different params ignored once cached
	require.Same(t, lc1, lc2)
}

func TestDynamicFaceAtModelCenterGetsFullRadialFactor(t *testing.T) {
	m := NewDynamic()
	ctx := testCtx()
	in := []FaceInput{{Face: voxel.FaceTop, Base: voxel.Color{R: 255, G: 255, B: 255, A: 255}, Normal: [3]float64{0, 1, 0}, Pos: voxel.Pos{0, 0, 0}}}
	out := m.Process(in, map[string]any{"diffuse": 70.0, "ambient": 20.0, "diameter": 300.0}, ctx)
	require.Greater(t, out[0].Color.R, uint8(0))
	lc := ctx.EnsureLighting(nil) // cached by Process above
	require.Equal(t, 1.0, radialFactor(in[0].Pos, ctx.ModelMiddle, lc.CoreRadius, lc.BaseRadius))
}

func TestFaceShadeMultiplyModeAppliesPerFaceTint(t *testing.T) {
	m := NewFaceShade()
	in := []FaceInput{
		{Face: voxel.FaceTop, Base: voxel.Color{R: 255, G: 255, B: 255, A: 255}},
		{Face: voxel.FaceBottom, Base: voxel.Color{R: 255, G: 255, B: 255, A: 255}},
	}
	out := m.Process(in, nil, testCtx())
	require.NotEqual(t, out[0].Color, out[1].Color)
}

func TestIsoAssignsDistinctTonesToTopAndSides(t *testing.T) {
	m := NewIso()
	in := []FaceInput{
		{Face: voxel.FaceTop, Base: voxel.Color{R: 255, G: 255, B: 255, A: 255}},
		{Face: voxel.FaceLeft, Base: voxel.Color{R: 255, G: 255, B: 255, A: 255}},
		{Face: voxel.FaceFront, Base: voxel.Color{R: 255, G: 255, B: 255, A: 255}},
	}
	out := m.Process(in, nil, testCtx())
	require.NotEqual(t, out[0].Color, out[1].Color)
	require.NotEqual(t, out[1].Color, out[2].Color)
}

func TestRegistryResolvesBuiltins(t *testing.T) {
	reg := NewRegistry()
	for _, id := range []string{"basic", "dynamic", "faceshade", "iso"} {
		_, ok := reg.Lookup(id)
		require.True(t, ok, "expected built-in %q registered", id)
	}
}

func TestChainRunsLightingBeforeFX(t *testing.T) {
	reg := NewRegistry()
	cfg := Config{Entries: []EntryConfig{
		{ModuleID: "faceshade"}, // declared first, but fx always runs after lighting
		{ModuleID: "basic"},
	}}
	chain, err := Build(reg, cfg)
	require.NoError(t, err)

	in := []FaceInput{{Face: voxel.FaceTop, Base: voxel.Color{R: 100, G: 100, B: 100, A: 255}, Normal: [3]float64{0, 1, 0}}}
	out := chain.Run(in, testCtx())
	require.Len(t, out, 1)
}

func TestChainWithNoEntriesIsIdentity(t *testing.T) {
	reg := NewRegistry()
	chain, err := Build(reg, Config{})
	require.NoError(t, err)

	in := []FaceInput{{Face: voxel.FaceTop, Base: voxel.Color{R: 10, G: 20, B: 30, A: 255}}}
	out := chain.Run(in, testCtx())
	require.Equal(t, in[0].Base, out[0].Color)
}

func TestBuildRejectsUnknownModule(t *testing.T) {
	reg := NewRegistry()
	_, err := Build(reg, Config{Entries: []EntryConfig{{ModuleID: "nope"}}})
	require.Error(t, err)
}

func TestDefaultConfigIsBasicOnly(t *testing.T) {
	cfg := DefaultConfig()
	require.Len(t, cfg.Entries, 1)
	require.Equal(t, "basic", cfg.Entries[0].ModuleID)
}
