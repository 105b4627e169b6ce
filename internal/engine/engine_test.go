package engine

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/voxelforge/vrender/internal/animation"
	"github.com/voxelforge/vrender/internal/engineerr"
	"github.com/voxelforge/vrender/internal/shading"
	"github.com/voxelforge/vrender/internal/voxel"
)

func singleVoxelModel(t *testing.T) voxel.Model {
	t.Helper()
	m, err := voxel.NewModel([]voxel.Voxel{
		{Pos: voxel.Pos{0, 0, 0}, Color: voxel.Color{R: 200, G: 50, B: 50, A: 255}},
	})
	require.NoError(t, err)
	return m
}

func defaultView() ViewParameters {
	return ViewParameters{
		EulerX: 20, EulerY: 30, EulerZ: 0,
		Scale:               20,
		Orthogonal:          false,
		FovDegrees:          45,
		PerspectiveScaleRef: 0,
		Background:          voxel.Color{R: 10, G: 10, B: 10, A: 255},
		Width:               64,
		Height:              64,
	}
}

func TestRenderEmptyModelReturnsBackgroundOnly(t *testing.T) {
	empty, err := voxel.NewModel(nil)
	require.NoError(t, err)

	res, renderErr := Render(empty, defaultView(), shading.DefaultConfig(), shading.NewRegistry(), nil)
	require.ErrorIs(t, renderErr, engineerr.ErrEmptyModel)
	require.NotNil(t, res.Image)
	require.Equal(t, uint8(10), res.Image.Pix[0])
}

func TestRenderSingleVoxelProducesNonBackgroundPixels(t *testing.T) {
	model := singleVoxelModel(t)
	res, err := Render(model, defaultView(), shading.DefaultConfig(), shading.NewRegistry(), nil)
	require.NoError(t, err)
	require.Equal(t, 1, res.Metrics.Counters.Voxels)
	require.Greater(t, res.Metrics.Counters.FacesDrawn, 0)

	foundNonBackground := false
	for i := 0; i < len(res.Image.Pix); i += 4 {
		if res.Image.Pix[i+3] != 0 && res.Image.Pix[i] != 10 {
			foundNonBackground = true
			break
		}
	}
	require.True(t, foundNonBackground, "expected at least one drawn voxel pixel")
}

func TestRenderIsDeterministicAcrossRepeatedCalls(t *testing.T) {
	model := singleVoxelModel(t)
	view := defaultView()
	reg := shading.NewRegistry()
	cfg := shading.DefaultConfig()

	res1, err := Render(model, view, cfg, reg, nil)
	require.NoError(t, err)
	res2, err := Render(model, view, cfg, reg, nil)
	require.NoError(t, err)
	require.Equal(t, res1.Image.Pix, res2.Image.Pix)
}

func TestRenderClampsOutOfRangeFovSilently(t *testing.T) {
	model := singleVoxelModel(t)
	view := defaultView()
	view.FovDegrees = 500
	_, err := Render(model, view, shading.DefaultConfig(), shading.NewRegistry(), nil)
	require.NoError(t, err)
}

func TestRenderAnimationYieldsExactStepCount(t *testing.T) {
	model := singleVoxelModel(t)
	spec := animation.Spec{Axis: animation.AxisYaw, Steps: 4, StartAngle: 0, Span: 360}
	frames, err := RenderAnimation(model, defaultView(), spec, shading.DefaultConfig(), shading.NewRegistry(), nil)
	require.NoError(t, err)
	require.Len(t, frames, 4)
	for _, f := range frames {
		require.Equal(t, 360, f.DurationMs)
	}
}

func TestRenderAnimationOnEmptyModelDoesNotFail(t *testing.T) {
	empty, err := voxel.NewModel(nil)
	require.NoError(t, err)
	spec := animation.Spec{Axis: animation.AxisX, Steps: 2, StartAngle: 0, Span: 90}
	frames, animErr := RenderAnimation(empty, defaultView(), spec, shading.DefaultConfig(), shading.NewRegistry(), nil)
	require.NoError(t, animErr)
	require.Len(t, frames, 2)
	require.False(t, errors.Is(animErr, engineerr.ErrInvariantViolated))
}
