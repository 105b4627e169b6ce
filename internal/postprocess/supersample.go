package postprocess

import (
	"image"
	"math"
)

// DownsampleMode selects how a supersample block is reduced to one pixel.
type DownsampleMode int

const (
	// DownsampleNearest picks the block's top-left source pixel.
	DownsampleNearest DownsampleMode = iota
	// DownsampleBox averages the ss×ss block's RGBA with rounding.
	DownsampleBox
)

// SupersampleFactor returns ss = ceil(1/scale) for scale < 1, or 1 when no
// supersampling is requested.
func SupersampleFactor(scale float64) int {
	if scale >= 1 {
		return 1
	}
	if scale <= 0 {
		return 1
	}
	return int(math.Ceil(1 / scale))
}

// Downsample reduces img by the integer factor ss using mode, grounded on
// the teacher's premultiplied-alpha-aware resize shape in the original
// supersample.go (premultiply before averaging, unpremultiply after) — but
// replacing the teacher's Catmull-Rom resize with an exact nearest/box
// integer block reduction, since mean preservation within ±1 is required
// and a Catmull-Rom/Lanczos-like filter does not guarantee that. The
// result is clamped to outW×outH.
func Downsample(img *image.NRGBA, ss int, mode DownsampleMode, outW, outH int) *image.NRGBA {
	if ss <= 1 {
		return cropOrPad(img, outW, outH)
	}

	b := img.Bounds()
	srcW, srcH := b.Dx(), b.Dy()
	dstW, dstH := srcW/ss, srcH/ss

	dst := image.NewNRGBA(image.Rect(0, 0, dstW, dstH))
	for dy := 0; dy < dstH; dy++ {
		for dx := 0; dx < dstW; dx++ {
			sx, sy := b.Min.X+dx*ss, b.Min.Y+dy*ss
			var r, g, bl, a uint8
			if mode == DownsampleNearest {
				r, g, bl, a = pixelAt(img, sx, sy)
			} else {
				r, g, bl, a = boxAverage(img, sx, sy, ss)
			}
			i := dst.PixOffset(dx, dy)
			dst.Pix[i], dst.Pix[i+1], dst.Pix[i+2], dst.Pix[i+3] = r, g, bl, a
		}
	}
	return cropOrPad(dst, outW, outH)
}

func pixelAt(img *image.NRGBA, x, y int) (r, g, b, a uint8) {
	i := img.PixOffset(x, y)
	return img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3]
}

// boxAverage averages an ss×ss source block with premultiplied alpha (to
// avoid dark-halo artifacts at transparent edges, the teacher's original
// rationale for premultiplying in supersample.go), then unpremultiplies.
func boxAverage(img *image.NRGBA, x0, y0, ss int) (r, g, b, a uint8) {
	var sumR, sumG, sumB, sumA float64
	n := float64(ss * ss)
	for dy := 0; dy < ss; dy++ {
		for dx := 0; dx < ss; dx++ {
			i := img.PixOffset(x0+dx, y0+dy)
			pa := float64(img.Pix[i+3]) / 255
			sumR += float64(img.Pix[i]) * pa
			sumG += float64(img.Pix[i+1]) * pa
			sumB += float64(img.Pix[i+2]) * pa
			sumA += float64(img.Pix[i+3])
		}
	}
	avgA := sumA / n
	if avgA < 0.5 {
		return 0, 0, 0, 0
	}
	avgPremulR, avgPremulG, avgPremulB := sumR/n, sumG/n, sumB/n
	inv := 255 / avgA
	return clamp8(avgPremulR * inv), clamp8(avgPremulG * inv), clamp8(avgPremulB * inv), clamp8(avgA)
}

func clamp8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}

// cropOrPad returns an image exactly outW×outH, cropping or zero-padding
// img as needed to clamp it to the requested output dimensions.
func cropOrPad(img *image.NRGBA, outW, outH int) *image.NRGBA {
	b := img.Bounds()
	if b.Dx() == outW && b.Dy() == outH {
		return img
	}
	out := image.NewNRGBA(image.Rect(0, 0, outW, outH))
	copyW, copyH := outW, outH
	if b.Dx() < copyW {
		copyW = b.Dx()
	}
	if b.Dy() < copyH {
		copyH = b.Dy()
	}
	for y := 0; y < copyH; y++ {
		for x := 0; x < copyW; x++ {
			si := img.PixOffset(b.Min.X+x, b.Min.Y+y)
			di := out.PixOffset(x, y)
			out.Pix[di], out.Pix[di+1], out.Pix[di+2], out.Pix[di+3] = img.Pix[si], img.Pix[si+1], img.Pix[si+2], img.Pix[si+3]
		}
	}
	return out
}
