package raster

import "math"

// edge is one side of the quad with y0 < y1, used by FillQuad's scanline
// intersection test.
type edge struct {
	x0, y0, x1, y1 float64
}

// FillQuad fills a convex screen-space quad using an exact scanline
// algorithm: scan at y+0.5 for each integer y between the
// quad's floor(minY) and ceil(maxY); intersect the half-open edges
// (scanY ∈ [y0,y1)) with that scanline; sort the intersections and fill
// pixel runs with the corner-recovery rule (endX = startX when the run is
// narrower than one pixel). This is the bitwise-determinism-critical
// contract: no trig, no randomness, float math only.
func FillQuad(fb *FrameBuffer, corners [4][2]float64, color [4]uint8) {
	var edges [4]edge
	minY, maxY := corners[0][1], corners[0][1]
	for i := 0; i < 4; i++ {
		a, b := corners[i], corners[(i+1)%4]
		if a[1] < b[1] {
			edges[i] = edge{a[0], a[1], b[0], b[1]}
		} else {
			edges[i] = edge{b[0], b[1], a[0], a[1]}
		}
		if a[1] < minY {
			minY = a[1]
		}
		if a[1] > maxY {
			maxY = a[1]
		}
	}

	y0 := int(math.Floor(minY))
	y1 := int(math.Ceil(maxY))
	for y := y0; y < y1; y++ {
		scanY := float64(y) + 0.5
		xs := make([]float64, 0, 4)
		for _, e := range edges {
			if scanY < e.y0 || scanY >= e.y1 {
				continue
			}
			t := (scanY - e.y0) / (e.y1 - e.y0)
			xs = append(xs, e.x0+t*(e.x1-e.x0))
		}
		if len(xs) < 2 {
			continue
		}
		sortFloats(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			x0, x1 := xs[i], xs[i+1]
			startX := int(math.Floor(x0 + 0.5))
			var endX int
			if math.Abs(x1-x0) < 1 {
				endX = startX
			} else {
				endX = int(math.Floor(x1 - 0.5))
			}
			for x := startX; x <= endX; x++ {
				fb.Blend(x, y, color)
			}
		}
	}
}

// sortFloats is a tiny insertion sort: intersection counts per scanline are
// always small (a convex quad crosses at most 2-4 edges).
func sortFloats(xs []float64) {
	for i := 1; i < len(xs); i++ {
		v := xs[i]
		j := i - 1
		for j >= 0 && xs[j] > v {
			xs[j+1] = xs[j]
			j--
		}
		xs[j+1] = v
	}
}
