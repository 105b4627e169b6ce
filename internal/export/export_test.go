package export

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/voxelforge/vrender/internal/engine"
)

func solidImage(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestWriteFrameProducesNonEmptyOutput(t *testing.T) {
	var buf bytes.Buffer
	img := solidImage(4, 4, color.NRGBA{R: 100, G: 150, B: 200, A: 255})
	err := WriteFrame(&buf, img)
	require.NoError(t, err)
	require.Greater(t, buf.Len(), 0)
}

func TestMeshFormatsEnumeratesAllThreeNames(t *testing.T) {
	formats := MeshFormats()
	require.Equal(t, []MeshFormat{MeshOBJ, MeshPLY, MeshSTL}, formats)
}

func TestContactSheetTilesFramesSideBySide(t *testing.T) {
	frames := []engine.AnimationFrame{
		{Image: solidImage(4, 4, color.NRGBA{R: 255, A: 255})},
		{Image: solidImage(4, 4, color.NRGBA{G: 255, A: 255})},
	}
	sheet := ContactSheet(frames, 2)
	require.Equal(t, 10, sheet.Bounds().Dx()) // 4 + 2 + 4
	require.Equal(t, 4, sheet.Bounds().Dy())

	left := sheet.NRGBAAt(0, 0)
	require.Equal(t, uint8(255), left.R)
	right := sheet.NRGBAAt(6, 0)
	require.Equal(t, uint8(255), right.G)
}

func TestContactSheetOnNoFramesReturnsEmptyImage(t *testing.T) {
	sheet := ContactSheet(nil, 2)
	require.Equal(t, 0, sheet.Bounds().Dx())
}
