// Package raster implements a painter's-algorithm quad rasterizer: project
// each voxel's 8 corners, build its 6 face quads, shade and fill them
// back-to-front. There is no per-pixel depth test — draw order alone
// determines occlusion, so voxel and face sort order are the
// correctness-critical inputs for idempotent output.
package raster

// FrameBuffer holds the rendering target as a flat NRGBA slice for cache
// locality, grounded on the teacher's internal/raster/buffer.go. Unlike the
// teacher's z-buffered target this carries no per-pixel depth: painter's
// order is the only occlusion mechanism this engine uses.
type FrameBuffer struct {
	Width  int
	Height int
	Color  []uint8 // RGBA interleaved, len = W*H*4
}

// NewFrameBuffer allocates a zeroed (fully transparent) color buffer.
func NewFrameBuffer(w, h int) *FrameBuffer {
	return &FrameBuffer{
		Width:  w,
		Height: h,
		Color:  make([]uint8, w*h*4),
	}
}

// Blend composites src (straight alpha) over the pixel at (x,y).
func (fb *FrameBuffer) Blend(x, y int, src [4]uint8) {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return
	}
	i := (y*fb.Width + x) * 4
	if src[3] == 255 {
		fb.Color[i], fb.Color[i+1], fb.Color[i+2], fb.Color[i+3] = src[0], src[1], src[2], src[3]
		return
	}
	if src[3] == 0 {
		return
	}
	sa := float64(src[3]) / 255
	da := float64(fb.Color[i+3]) / 255
	outA := sa + da*(1-sa)
	if outA <= 0 {
		fb.Color[i], fb.Color[i+1], fb.Color[i+2], fb.Color[i+3] = 0, 0, 0, 0
		return
	}
	blend := func(s, d uint8) uint8 {
		v := (float64(s)*sa + float64(d)*da*(1-sa)) / outA
		if v < 0 {
			v = 0
		}
		if v > 255 {
			v = 255
		}
		return uint8(v + 0.5)
	}
	fb.Color[i] = blend(src[0], fb.Color[i])
	fb.Color[i+1] = blend(src[1], fb.Color[i+1])
	fb.Color[i+2] = blend(src[2], fb.Color[i+2])
	fb.Color[i+3] = uint8(outA*255 + 0.5)
}
