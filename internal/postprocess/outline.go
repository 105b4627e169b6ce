// Package postprocess implements an outline post-pass and an integer
// supersample downsample, both operating on the engine's rasterized RGBA
// image after the core pipeline has run.
package postprocess

import "image"

// Mode selects which side of the alpha boundary an outline paints: Inside
// recolors the object's own edge pixels; Outside paints new pixels just
// beyond the object.
type Mode int

const (
	ModeInside Mode = iota
	ModeOutside
)

// Kernel selects which neighbor set marks a pixel as bordering the opposite
// alpha state.
type Kernel int

const (
	KernelCircle    Kernel = iota // 4-connected
	KernelSquare                  // 8-connected
	KernelHorizontal              // left/right only
	KernelVertical                // up/down only
)

func kernelOffsets(k Kernel) [][2]int {
	switch k {
	case KernelSquare:
		return [][2]int{{-1, -1}, {0, -1}, {1, -1}, {-1, 0}, {1, 0}, {-1, 1}, {0, 1}, {1, 1}}
	case KernelHorizontal:
		return [][2]int{{-1, 0}, {1, 0}}
	case KernelVertical:
		return [][2]int{{0, -1}, {0, 1}}
	default: // KernelCircle
		return [][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}
	}
}

// Outline scans interior pixels (the one-pixel border is excluded, since it
// has no full neighbor set to compare against), marks any pixel that
// neighbors a pixel of opposite alpha state under kernel, and paints the
// marked pixels with color into a clone of img. mode selects whether the
// marked pixel is an object pixel (Inside) or a background
// pixel (Outside).
func Outline(img *image.NRGBA, mode Mode, kernel Kernel, color [4]uint8) *image.NRGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	out := image.NewNRGBA(b)
	copy(out.Pix, img.Pix)

	isOpaque := func(x, y int) bool {
		return img.Pix[img.PixOffset(x, y)+3] > 0
	}

	offsets := kernelOffsets(kernel)
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			self := isOpaque(x, y)
			wantSelf := mode == ModeInside && self
			wantOther := mode == ModeOutside && !self
			if !wantSelf && !wantOther {
				continue
			}
			bordersOpposite := false
			for _, o := range offsets {
				if isOpaque(x+o[0], y+o[1]) != self {
					bordersOpposite = true
					break
				}
			}
			if !bordersOpposite {
				continue
			}
			i := out.PixOffset(x, y)
			out.Pix[i], out.Pix[i+1], out.Pix[i+2], out.Pix[i+3] = color[0], color[1], color[2], color[3]
		}
	}
	return out
}
