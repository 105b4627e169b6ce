// Package voxelsrc implements a reference voxel-generation source: a
// provider that turns a host document handle into a sequence of
// (x,y,z, R,G,B,A) tuples. Voxel generation is treated as an
// external-collaborator input contract elsewhere in the engine (mechanics
// out of scope there); this package is the one concrete, testable adapter
// that satisfies it, turning a stack of same-sized layer images into a
// voxel.Model the way the teacher's internal/texture and internal/bmd
// packages turn raw asset files into renderer input.
package voxelsrc

import (
	"fmt"
	"image"
	_ "image/png"
	"os"
	"sort"
	"strings"

	_ "github.com/ftrvxmtrx/tga"

	"github.com/voxelforge/vrender/internal/voxel"
)

// Layer is one Z-slice source image plus the Z index it occupies. Layer
// indices need not be contiguous or start at zero — the generator only
// requires a total order; the Z index of a layer determines its depth.
type Layer struct {
	Z     int
	Image image.Image
}

// LoadLayerFiles decodes a PNG or TGA file per path and returns one Layer
// per file, in path order, with Z assigned 0..len(paths)-1. This mirrors the
// teacher's texture.LoadTexture's "read raw bytes, let image.Decode pick the
// codec" shape, generalized from the OZJ/OZT container formats to plain
// PNG/TGA files.
func LoadLayerFiles(paths []string) ([]Layer, error) {
	layers := make([]Layer, len(paths))
	for i, p := range paths {
		img, err := decodeLayerFile(p)
		if err != nil {
			return nil, fmt.Errorf("voxelsrc: %w", err)
		}
		layers[i] = Layer{Z: i, Image: img}
	}
	return layers, nil
}

func decodeLayerFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if !strings.HasSuffix(strings.ToLower(path), ".png") && !strings.HasSuffix(strings.ToLower(path), ".tga") {
		return nil, fmt.Errorf("unsupported layer format: %s", path)
	}
	return img, nil
}

// Build turns a set of layers into a voxel.Model: every layer's non-zero-
// alpha pixel becomes a voxel at (x, y, layer.Z) with that pixel's color.
// Layers are sorted by Z before scanning so voxel ordering is
// deterministic regardless of input order. All layers must share the same
// pixel bounds; Build returns an error otherwise, since a per-layer offset
// is not part of the contract.
func Build(layers []Layer) (voxel.Model, error) {
	if len(layers) == 0 {
		return voxel.NewModel(nil)
	}

	sorted := make([]Layer, len(layers))
	copy(sorted, layers)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Z < sorted[j].Z })

	bounds := sorted[0].Image.Bounds()
	var voxels []voxel.Voxel
	for _, layer := range sorted {
		b := layer.Image.Bounds()
		if b != bounds {
			return voxel.Model{}, fmt.Errorf("voxelsrc: layer at z=%d has bounds %v, want %v", layer.Z, b, bounds)
		}
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				r, g, bl, a := layer.Image.At(x, y).RGBA()
				if a == 0 {
					continue
				}
				// image.Image.At returns alpha-premultiplied 16-bit
				// components; unpremultiply and downscale to 8 bits.
				a8 := uint8(a >> 8)
				voxels = append(voxels, voxel.Voxel{
					Pos: voxel.Pos{x - b.Min.X, y - b.Min.Y, layer.Z},
					Color: voxel.Color{
						R: unpremultiply(r, a),
						G: unpremultiply(g, a),
						B: unpremultiply(bl, a),
						A: a8,
					},
				})
			}
		}
	}
	return voxel.NewModel(voxels)
}

func unpremultiply(c, a uint32) uint8 {
	if a == 0 {
		return 0
	}
	v := c * 0xff / a
	if v > 0xff {
		v = 0xff
	}
	return uint8(v)
}
