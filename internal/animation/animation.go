// Package animation produces a finite sequence of frames by stepping a
// base view along one rotation axis, grounded on the teacher's batch.Run
// iterate-with-progress pattern generalized from independent items to
// dependent frames.
package animation

import (
	"math"

	"github.com/voxelforge/vrender/internal/mathutil"
)

// Axis names which rotation component an animation steps. X/Y/Z step the
// model's own Euler axes via ApplyAbsolute; Pitch/Yaw/Roll step the camera
// frame via ApplyRelative.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
	AxisPitch
	AxisYaw
	AxisRoll
)

// Spec is the animation driver's input contract.
type Spec struct {
	Axis       Axis
	Steps      int // must be >= 2
	StartAngle float64
	Span       float64
}

// Frame is one step's resulting Euler triple and the matrix it composes to,
// plus the duration a player should hold it.
type Frame struct {
	EulerX, EulerY, EulerZ float64
	Matrix                 mathutil.Mat3
	DurationMs             int
}

// Build yields exactly spec.Steps frames, stepping baseX/Y/Z by
// degreesPerStep = span/steps starting at startAngle. frameDurationMs =
// ceil(1440/steps) is constant across all frames.
func Build(spec Spec, baseX, baseY, baseZ float64) []Frame {
	steps := spec.Steps
	if steps < 2 {
		steps = 2
	}
	degreesPerStep := spec.Span / float64(steps)
	durationMs := int(math.Ceil(1440 / float64(steps)))

	frames := make([]Frame, steps)
	for i := 0; i < steps; i++ {
		angle := spec.StartAngle + degreesPerStep*float64(i)
		x, y, z := stepEuler(spec.Axis, baseX, baseY, baseZ, angle)
		frames[i] = Frame{
			EulerX:     x,
			EulerY:     y,
			EulerZ:     z,
			Matrix:     mathutil.MatrixFromEuler(x, y, z),
			DurationMs: durationMs,
		}
	}
	return frames
}

// stepEuler composes the base Euler triple with a delta of angle degrees
// along axis, using apply_absolute for X/Y/Z and apply_relative for
// Pitch/Yaw/Roll, then extracts the resulting Euler triple so every
// frame's Matrix and Euler angles stay consistent.
func stepEuler(axis Axis, baseX, baseY, baseZ, angle float64) (x, y, z float64) {
	base := mathutil.MatrixFromEuler(baseX, baseY, baseZ)

	var m mathutil.Mat3
	switch axis {
	case AxisX:
		m = mathutil.ApplyAbsolute(base, angle, 0, 0)
	case AxisY:
		m = mathutil.ApplyAbsolute(base, 0, angle, 0)
	case AxisZ:
		m = mathutil.ApplyAbsolute(base, 0, 0, angle)
	case AxisPitch:
		m = mathutil.ApplyRelative(base, angle, 0, 0)
	case AxisYaw:
		m = mathutil.ApplyRelative(base, 0, angle, 0)
	case AxisRoll:
		m = mathutil.ApplyRelative(base, 0, 0, angle)
	default:
		m = base
	}
	return mathutil.EulerFromMatrix(m)
}
