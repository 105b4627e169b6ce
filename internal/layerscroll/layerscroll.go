// Package layerscroll implements focus-layer windowing: selecting the
// contiguous slice of Z-layers around a focus index that a layer-scroll UI
// wants to draw. Focus works from the parent model's bounds; Apply builds a
// fresh Model with its own bounds and occupancy.
package layerscroll

import "github.com/voxelforge/vrender/internal/voxel"

// Window names a closed, clamped Z range [MinZ, MaxZ] of a model's bounds.
type Window struct {
	MinZ, MaxZ int
}

// Focus selects a contiguous window of radius layers on either side of
// focusZ, clamped to the model's actual Z extent, the same contiguous
// integer-keyed range a keyed lookup over model.Bounds would produce.
func Focus(bounds voxel.Bounds, focusZ, radius int) Window {
	if radius < 0 {
		radius = 0
	}
	w := Window{MinZ: focusZ - radius, MaxZ: focusZ + radius}
	if w.MinZ < bounds.MinZ {
		w.MinZ = bounds.MinZ
	}
	if w.MaxZ > bounds.MaxZ {
		w.MaxZ = bounds.MaxZ
	}
	if w.MinZ > w.MaxZ {
		w.MinZ, w.MaxZ = bounds.MinZ, bounds.MinZ
	}
	return w
}

// Contains reports whether z falls inside the window.
func (w Window) Contains(z int) bool {
	return z >= w.MinZ && z <= w.MaxZ
}

// Apply returns the subset of model's voxels whose Z lies within w, building
// a fresh Model so the windowed view carries its own tight bounds/occupancy
// rather than reusing the parent model's — the no-duplicate-positions,
// tight-bounds invariant applies to every Model value, including windowed
// ones.
func Apply(model voxel.Model, w Window) (voxel.Model, error) {
	filtered := make([]voxel.Voxel, 0, len(model.Voxels))
	for _, v := range model.Voxels {
		if w.Contains(v.Pos[2]) {
			filtered = append(filtered, v)
		}
	}
	return voxel.NewModel(filtered)
}
