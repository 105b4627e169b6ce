// Package voxel holds the colored voxel set and the bounds/occupancy/
// hidden-face pre-pass the rest of the engine is built on.
package voxel

// Pos is an integer lattice position.
type Pos [3]int

// Color is a straight-alpha RGBA color, 8 bits per channel.
type Color struct {
	R, G, B, A uint8
}

// Voxel is a unit-cube pixel in 3D with a color. Immutable during a render.
type Voxel struct {
	Pos   Pos
	Color Color
}

// Bounds is a tight axis-aligned integer bounding box.
type Bounds struct {
	MinX, MaxX int
	MinY, MaxY int
	MinZ, MaxZ int
}

// Middle returns the bounds center, used as the model-space origin for
// camera and shading computations.
func (b Bounds) Middle() [3]float64 {
	return [3]float64{
		float64(b.MinX+b.MaxX) / 2,
		float64(b.MinY+b.MaxY) / 2,
		float64(b.MinZ+b.MaxZ) / 2,
	}
}

// Size returns the bounds extent plus one per axis (number of lattice cells
// spanned on each axis).
func (b Bounds) Size() [3]int {
	return [3]int{b.MaxX - b.MinX + 1, b.MaxY - b.MinY + 1, b.MaxZ - b.MinZ + 1}
}

// MaxDim returns the largest of the three size components, used by the
// camera to pick a distance/scale that fits the whole model.
func (b Bounds) MaxDim() int {
	s := b.Size()
	m := s[0]
	if s[1] > m {
		m = s[1]
	}
	if s[2] > m {
		m = s[2]
	}
	return m
}

// ComputeBounds computes the tight bounds of a non-empty voxel sequence in
// one pass. Callers must check len(voxels) > 0 first (see Model.Empty).
func ComputeBounds(voxels []Voxel) Bounds {
	b := Bounds{
		MinX: voxels[0].Pos[0], MaxX: voxels[0].Pos[0],
		MinY: voxels[0].Pos[1], MaxY: voxels[0].Pos[1],
		MinZ: voxels[0].Pos[2], MaxZ: voxels[0].Pos[2],
	}
	for _, v := range voxels[1:] {
		if v.Pos[0] < b.MinX {
			b.MinX = v.Pos[0]
		}
		if v.Pos[0] > b.MaxX {
			b.MaxX = v.Pos[0]
		}
		if v.Pos[1] < b.MinY {
			b.MinY = v.Pos[1]
		}
		if v.Pos[1] > b.MaxY {
			b.MaxY = v.Pos[1]
		}
		if v.Pos[2] < b.MinZ {
			b.MinZ = v.Pos[2]
		}
		if v.Pos[2] > b.MaxZ {
			b.MaxZ = v.Pos[2]
		}
	}
	return b
}

// Occupancy is an O(1) membership index keyed by lattice position, mirroring
// the teacher's keyed-map style for sparse per-item lookups (trs.Data).
type Occupancy map[Pos]struct{}

// ComputeOccupancy builds the occupancy index for a voxel sequence.
func ComputeOccupancy(voxels []Voxel) Occupancy {
	occ := make(Occupancy, len(voxels))
	for _, v := range voxels {
		occ[v.Pos] = struct{}{}
	}
	return occ
}

// Has reports whether p is occupied.
func (o Occupancy) Has(p Pos) bool {
	_, ok := o[p]
	return ok
}
