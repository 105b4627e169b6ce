package engine

import (
	"errors"
	"image"

	"github.com/voxelforge/vrender/internal/animation"
	"github.com/voxelforge/vrender/internal/engineerr"
	"github.com/voxelforge/vrender/internal/metrics"
	"github.com/voxelforge/vrender/internal/shading"
	"github.com/voxelforge/vrender/internal/voxel"
)

// AnimationFrame pairs one rendered image with the duration it should be
// held, per the animation driver's contract.
type AnimationFrame struct {
	Image      *image.NRGBA
	DurationMs int
	Metrics    metrics.Metrics
}

// RenderAnimation steps baseView along spec's axis, rendering exactly
// spec.Steps frames. All frames share model, cfg, and reg; only the Euler
// angles change per frame.
func RenderAnimation(model voxel.Model, baseView ViewParameters, spec animation.Spec, cfg ShaderConfig, reg *shading.Registry, log Logger) ([]AnimationFrame, error) {
	driverFrames := animation.Build(spec, baseView.EulerX, baseView.EulerY, baseView.EulerZ)

	out := make([]AnimationFrame, 0, len(driverFrames))
	for _, f := range driverFrames {
		view := baseView
		view.EulerX, view.EulerY, view.EulerZ = f.EulerX, f.EulerY, f.EulerZ

		res, err := Render(model, view, cfg, reg, log)
		if err != nil && !errors.Is(err, engineerr.ErrEmptyModel) {
			return nil, err
		}
		out = append(out, AnimationFrame{Image: res.Image, DurationMs: f.DurationMs, Metrics: res.Metrics})
	}
	return out, nil
}
