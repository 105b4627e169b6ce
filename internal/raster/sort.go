package raster

import "sort"

// SortQuadsFarthestFirst orders a voxel's 6 face quads by average depth,
// farther first, so FillQuad draws them in painter's order. Equal-depth
// quads (a degenerate case for an axis-aligned cube) keep their input
// order via SliceStable rather than an arbitrary secondary key.
func SortQuadsFarthestFirst(quads []Quad) {
	sort.SliceStable(quads, func(i, j int) bool {
		return quads[i].AvgZ > quads[j].AvgZ
	})
}

// VoxelDepth is a voxel index paired with its squared distance from camera,
// used to order voxels back-to-front before per-voxel face drawing.
type VoxelDepth struct {
	Index   int
	SqrDist float64
}

// SortVoxelsBackToFront orders voxel indices by descending squared camera
// distance (farthest drawn first). Equal-distance voxels keep their input
// order via SliceStable.
func SortVoxelsBackToFront(depths []VoxelDepth) {
	sort.SliceStable(depths, func(i, j int) bool {
		return depths[i].SqrDist > depths[j].SqrDist
	})
}
