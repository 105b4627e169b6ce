package engine

import (
	"fmt"
	"image"
	"math"
	"time"

	"github.com/voxelforge/vrender/internal/camera"
	"github.com/voxelforge/vrender/internal/engineerr"
	"github.com/voxelforge/vrender/internal/mathutil"
	"github.com/voxelforge/vrender/internal/metrics"
	"github.com/voxelforge/vrender/internal/raster"
	"github.com/voxelforge/vrender/internal/shading"
	"github.com/voxelforge/vrender/internal/visibility"
	"github.com/voxelforge/vrender/internal/voxel"
)

// orthonormalEpsilon bounds how far a rotation matrix's determinant may
// drift from 1 before Render treats it as an internal invariant violation.
const orthonormalEpsilon = 1e-3

// Result is the output of a single Render call: the rasterized image plus
// its Metrics report.
type Result struct {
	Image   *image.NRGBA
	Metrics metrics.Metrics
}

// clampViewParameters applies the InvalidConfig rule: clamp silently at
// the boundary rather than fail.
func clampViewParameters(p ViewParameters) ViewParameters {
	if p.FovDegrees < 5 {
		p.FovDegrees = 5
	}
	if p.FovDegrees > 75 {
		p.FovDegrees = 75
	}
	if p.Scale <= 0 {
		p.Scale = 1
	}
	p.EulerX = mathutil.NormalizeDegrees(p.EulerX)
	p.EulerY = mathutil.NormalizeDegrees(p.EulerY)
	p.EulerZ = mathutil.NormalizeDegrees(p.EulerZ)
	return p
}

// Render executes the full per-frame data flow: build the camera and
// visibility, run the shading chain per surviving face, and rasterize
// back-to-front into a fresh image.
func Render(model voxel.Model, view ViewParameters, cfg ShaderConfig, reg *shading.Registry, log Logger) (Result, error) {
	if log == nil {
		log = noopLogger{}
	}
	var m metrics.Metrics
	var total metrics.Stopwatch

	if model.Empty() {
		log.Printf("render: empty model, returning background-only image")
		img := backgroundImage(view.Width, view.Height, view.Background)
		return Result{Image: img, Metrics: m}, fmt.Errorf("%w", engineerr.ErrEmptyModel)
	}

	if b := model.Bounds; b.MinX > b.MaxX || b.MinY > b.MaxY || b.MinZ > b.MaxZ {
		return Result{}, fmt.Errorf("render: %w: inverted bounds %+v", engineerr.ErrInvariantViolated, b)
	}

	view = clampViewParameters(view)
	m.Counters.Voxels = len(model.Voxels)

	rotation := mathutil.MatrixFromEuler(view.EulerX, view.EulerY, view.EulerZ)
	if err := checkOrthonormal(rotation); err != nil {
		return Result{}, err
	}

	camState := camera.Build(camera.Params{
		Rotation:     rotation,
		Bounds:       model.Bounds,
		Orthogonal:   view.Orthogonal,
		FovDegrees:   view.FovDegrees,
		ScaleRef:     view.PerspectiveScaleRef,
		TargetPixels: view.Scale,
		Width:        view.Width,
		Height:       view.Height,
	})

	middle := model.Bounds.Middle()
	rotatedCenter := rotation.MulVec3(mathutil.Vec3{middle[0], middle[1], middle[2]})
	centerXY := [2]float64{rotatedCenter[0], rotatedCenter[1]}

	chain, err := shading.Build(reg, cfg)
	if err != nil {
		return Result{}, fmt.Errorf("render: %w: %v", engineerr.ErrInvalidConfig, err)
	}

	viewVec := mathutil.Vec3{0, 0, 1}
	shadeCtx := shading.NewViewContext(rotation, model.Bounds)

	var optimize metrics.Stopwatch
	var draw metrics.Stopwatch
	total.Start(time.Now())
	optimize.Start(time.Now())

	order := depthOrder(model, rotation, camState, centerXY)
	var counters visibility.Counters

	optimize.Stop(time.Now())
	draw.Start(time.Now())

	fb := raster.NewFrameBuffer(view.Width, view.Height)
	fillBackground(fb, view.Background)

	projFn := camState.Project
	for _, vd := range order {
		v := model.Voxels[vd.Index]
		res := visibility.Evaluate(v, model.Occ, rotation, viewVec, camState.VoxelSize)
		counters.Add(res)

		if !anyDrawn(res.Drawn) {
			continue
		}

		verts := raster.ProjectCube(v.Pos, rotation, centerXY, projFn)
		quads := raster.FaceQuads(verts)

		inputs := make([]shading.FaceInput, 0, 6)
		faceIdx := make([]int, 0, 6)
		for i, f := range voxel.Faces() {
			if !res.Drawn[i] {
				continue
			}
			n := f.Normal()
			inputs = append(inputs, shading.FaceInput{
				Face:   f,
				Base:   v.Color,
				Normal: [3]float64{float64(n[0]), float64(n[1]), float64(n[2])},
				Pos:    v.Pos,
			})
			faceIdx = append(faceIdx, i)
		}

		outputs := chain.Run(inputs, shadeCtx)

		var live []raster.Quad
		for k, idx := range faceIdx {
			q := quads[idx]
			q.Color = outputs[k].Color
			if !convexQuad(q.Corners) {
				return Result{}, fmt.Errorf("render: %w: non-convex quad on voxel %v face %v", engineerr.ErrInvariantViolated, v.Pos, q.Face)
			}
			live = append(live, q)
		}
		raster.SortQuadsFarthestFirst(live)
		for _, q := range live {
			raster.FillQuad(fb, q.Corners, [4]uint8{q.Color.R, q.Color.G, q.Color.B, q.Color.A})
			m.Counters.PolygonsFilled++
		}
	}
	draw.Stop(time.Now())
	total.Stop(time.Now())

	m.Counters.FacesDrawn = counters.FacesDrawn
	m.Counters.FacesBackfaced = counters.FacesBackfaced
	m.Counters.FacesCulledAdj = counters.FacesCulledAdj
	m.Timings.Optimize = optimize.Elapsed
	m.Timings.Draw = draw.Elapsed
	m.Timings.Total = total.Elapsed

	img := image.NewNRGBA(image.Rect(0, 0, view.Width, view.Height))
	copy(img.Pix, fb.Color)

	return Result{Image: img, Metrics: m}, nil
}

func anyDrawn(drawn [6]bool) bool {
	for _, d := range drawn {
		if d {
			return true
		}
	}
	return false
}

// depthOrder sorts voxel indices back-to-front by squared camera distance
// in rotated model space, the step preceding the per-voxel draw.
func depthOrder(model voxel.Model, rotation mathutil.Mat3, cam camera.State, centerXY [2]float64) []raster.VoxelDepth {
	camPoint := mathutil.Vec3{centerXY[0], centerXY[1], cam.CameraZ}
	depths := make([]raster.VoxelDepth, len(model.Voxels))
	for i, v := range model.Voxels {
		p := mathutil.Vec3{float64(v.Pos[0]), float64(v.Pos[1]), float64(v.Pos[2])}
		rotated := rotation.MulVec3(p)
		dx, dy, dz := rotated[0]-camPoint[0], rotated[1]-camPoint[1], rotated[2]-camPoint[2]
		depths[i] = raster.VoxelDepth{Index: i, SqrDist: dx*dx + dy*dy + dz*dz}
	}
	raster.SortVoxelsBackToFront(depths)
	return depths
}

func checkOrthonormal(m mathutil.Mat3) error {
	det := m.Det()
	if math.Abs(det-1) > orthonormalEpsilon {
		return fmt.Errorf("render: %w: rotation determinant %.6f not within %.0e of 1", engineerr.ErrInvariantViolated, det, orthonormalEpsilon)
	}
	return nil
}

// convexQuad rejects degenerate/self-intersecting quads rather than letting
// FillQuad silently misdraw one. A cross-product sign check across the four
// corners suffices for the axis-aligned cube faces this engine ever
// produces — they stay convex under any rotation.
func convexQuad(c [4][2]float64) bool {
	sign := 0
	for i := 0; i < 4; i++ {
		a, b, cc := c[i], c[(i+1)%4], c[(i+2)%4]
		cross := (b[0]-a[0])*(cc[1]-b[1]) - (b[1]-a[1])*(cc[0]-b[0])
		if cross == 0 {
			continue
		}
		s := 1
		if cross < 0 {
			s = -1
		}
		if sign == 0 {
			sign = s
		} else if sign != s {
			return false
		}
	}
	return true
}

func fillBackground(fb *raster.FrameBuffer, bg voxel.Color) {
	for i := 0; i < len(fb.Color); i += 4 {
		fb.Color[i], fb.Color[i+1], fb.Color[i+2], fb.Color[i+3] = bg.R, bg.G, bg.B, bg.A
	}
}

func backgroundImage(w, h int, bg voxel.Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = bg.R, bg.G, bg.B, bg.A
	}
	return img
}
