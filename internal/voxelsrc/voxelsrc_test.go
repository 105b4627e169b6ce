package voxelsrc

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
)

func solidLayer(w, h int, c color.NRGBA) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestBuildTurnsOpaquePixelsIntoVoxelsAtLayerZ(t *testing.T) {
	layers := []Layer{
		{Z: 0, Image: solidLayer(2, 2, color.NRGBA{R: 200, G: 0, B: 0, A: 255})},
		{Z: 1, Image: solidLayer(2, 2, color.NRGBA{R: 0, G: 200, B: 0, A: 255})},
	}
	model, err := Build(layers)
	require.NoError(t, err)
	require.Len(t, model.Voxels, 8)
	require.Equal(t, 0, model.Bounds.MinZ)
	require.Equal(t, 1, model.Bounds.MaxZ)
}

func TestBuildSkipsTransparentPixels(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, color.NRGBA{R: 100, G: 100, B: 100, A: 255})
	img.SetNRGBA(1, 0, color.NRGBA{A: 0})

	model, err := Build([]Layer{{Z: 0, Image: img}})
	require.NoError(t, err)
	require.Len(t, model.Voxels, 1)
	require.Equal(t, [3]int{0, 0, 0}, [3]int(model.Voxels[0].Pos))
}

func TestBuildSortsLayersByZRegardlessOfInputOrder(t *testing.T) {
	layers := []Layer{
		{Z: 5, Image: solidLayer(1, 1, color.NRGBA{A: 255})},
		{Z: 1, Image: solidLayer(1, 1, color.NRGBA{A: 255})},
	}
	model, err := Build(layers)
	require.NoError(t, err)
	require.Equal(t, 1, model.Bounds.MinZ)
	require.Equal(t, 5, model.Bounds.MaxZ)
}

func TestBuildRejectsMismatchedLayerBounds(t *testing.T) {
	layers := []Layer{
		{Z: 0, Image: solidLayer(2, 2, color.NRGBA{A: 255})},
		{Z: 1, Image: solidLayer(3, 3, color.NRGBA{A: 255})},
	}
	_, err := Build(layers)
	require.Error(t, err)
}

func TestBuildOnNoLayersYieldsEmptyModel(t *testing.T) {
	model, err := Build(nil)
	require.NoError(t, err)
	require.True(t, model.Empty())
}
