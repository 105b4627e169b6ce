package mathutil

import "math"

// RotX returns a 3×3 rotation matrix around the X axis. Angle in radians.
func RotX(a float64) Mat3 {
	c, s := math.Cos(a), math.Sin(a)
	return Mat3{
		1, 0, 0,
		0, c, -s,
		0, s, c,
	}
}

// RotY returns a 3×3 rotation matrix around the Y axis.
func RotY(a float64) Mat3 {
	c, s := math.Cos(a), math.Sin(a)
	return Mat3{
		c, 0, s,
		0, 1, 0,
		-s, 0, c,
	}
}

// RotZ returns a 3×3 rotation matrix around the Z axis.
func RotZ(a float64) Mat3 {
	c, s := math.Cos(a), math.Sin(a)
	return Mat3{
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	}
}

// Deg2Rad converts degrees to radians.
func Deg2Rad(d float64) float64 {
	return d * math.Pi / 180
}

// Rad2Deg converts radians to degrees.
func Rad2Deg(r float64) float64 {
	return r * 180 / math.Pi
}

// NormalizeDegrees folds an angle into [0,360) and snaps values within 1e-3
// of 360 down to 0.
func NormalizeDegrees(a float64) float64 {
	n := math.Mod(math.Mod(a, 360)+360, 360)
	if 360-n < 1e-3 {
		return 0
	}
	return n
}

// gimbalLockEpsilon is the threshold on sqrt(M00²+M10²) below which Euler
// extraction is considered gimbal-locked.
const gimbalLockEpsilon = 1e-6

// MatrixFromEuler builds the canonical Z·Y·X rotation matrix from Euler
// degrees. This composition order is the "co-dependent" convention the rest
// of the engine assumes for both camera orientation and animation stepping.
func MatrixFromEuler(xDeg, yDeg, zDeg float64) Mat3 {
	rx := RotX(Deg2Rad(NormalizeDegrees(xDeg)))
	ry := RotY(Deg2Rad(NormalizeDegrees(yDeg)))
	rz := RotZ(Deg2Rad(NormalizeDegrees(zDeg)))
	return Mat3Mul(Mat3Mul(rz, ry), rx)
}

// EulerFromMatrix extracts the Euler triple (degrees, each in [0,360)) that
// reproduces M under MatrixFromEuler's Z·Y·X convention. In the gimbal-lock
// case (sqrt(M[0][0]²+M[1][0]²) < 1e-6) z is forced to 0 and x is recovered
// from the inner column.
//
// M is stored row-major: M[r*3+c].
func EulerFromMatrix(m Mat3) (xDeg, yDeg, zDeg float64) {
	m00, m10 := m[0], m[3]
	sy := math.Sqrt(m00*m00 + m10*m10)

	if sy >= gimbalLockEpsilon {
		x := math.Atan2(m[7], m[8])  // atan2(M21, M22)
		y := math.Atan2(-m[6], sy)   // atan2(-M20, sy)
		z := math.Atan2(m10, m00)    // atan2(M10, M00)
		return NormalizeDegrees(Rad2Deg(x)), NormalizeDegrees(Rad2Deg(y)), NormalizeDegrees(Rad2Deg(z))
	}

	// Gimbal lock: z forced to 0, x recovered from the inner column.
	x := math.Atan2(-m[5], m[4]) // atan2(-M12, M11)
	y := math.Atan2(-m[6], sy)
	return NormalizeDegrees(Rad2Deg(x)), NormalizeDegrees(Rad2Deg(y)), 0
}

// ApplyAbsolute post-multiplies M by the delta rotation built from the
// model's own axes: M · Rx'y'z'(dx,dy,dz). Degrees.
func ApplyAbsolute(m Mat3, dxDeg, dyDeg, dzDeg float64) Mat3 {
	delta := MatrixFromEuler(dxDeg, dyDeg, dzDeg)
	return Mat3Mul(m, delta)
}

// ApplyRelative pre-multiplies M by a rotation built in the camera's own
// frame: (Rroll · Rpitch · Ryaw) · M. Degrees.
func ApplyRelative(m Mat3, pitchDeg, yawDeg, rollDeg float64) Mat3 {
	rp := RotX(Deg2Rad(pitchDeg))
	ry := RotY(Deg2Rad(yawDeg))
	rr := RotZ(Deg2Rad(rollDeg))
	delta := Mat3Mul(Mat3Mul(rr, rp), ry)
	return Mat3Mul(delta, m)
}

// sqrtHalf is the Bell trackball's sphere/hyperbola switch radius, √2/2.
var sqrtHalf = math.Sqrt(2) / 2

// trackballProject maps a point in [-1,1]² to a point on the Bell virtual
// trackball: the unit sphere inside radius √2/2, a hyperbolic sheet beyond.
func trackballProject(x, y float64) Vec3 {
	r2 := x*x + y*y
	if r2 <= sqrtHalf*sqrtHalf {
		return Vec3{x, y, math.Sqrt(1 - r2)}
	}
	// Hyperbolic sheet: z = (0.5) / sqrt(r2), matched at the sphere boundary.
	z := (0.5) / math.Sqrt(r2)
	return Vec3{x, y, z}
}

// AxisAngleFromTrackball maps a mouse drag from (startX,startY) to
// (endX,endY) over a w×h viewport onto the Bell virtual trackball, and
// returns the rotation axis (unnormalized cross of start/end projections,
// normalized here) and angle in radians.
func AxisAngleFromTrackball(startX, startY, endX, endY, w, h float64) (axis Vec3, angleRad float64) {
	toNDC := func(px, py float64) (float64, float64) {
		r := math.Min(w, h) / 2
		cx, cy := w/2, h/2
		return (px - cx) / r, (py - cy) / r
	}

	sx, sy := toNDC(startX, startY)
	ex, ey := toNDC(endX, endY)

	p1 := trackballProject(sx, sy).Normalize()
	p2 := trackballProject(ex, ey).Normalize()

	dot := p1.Dot(p2)
	if dot > 1 {
		dot = 1
	}
	if dot < -1 {
		dot = -1
	}
	angleRad = math.Acos(dot)

	axis = p1.Cross(p2)
	if axis.Len() < 1e-12 {
		return Vec3{1, 0, 0}, 0
	}
	return axis.Normalize(), angleRad
}

// MatrixFromAxisAngle builds a rotation matrix from a normalized axis and an
// angle in radians, routed through a quaternion intermediate (QuatToMat3)
// to avoid the numerical drift Rodrigues' formula accumulates for small
// angles under repeated composition.
func MatrixFromAxisAngle(axis Vec3, angleRad float64) Mat3 {
	return QuatToMat3(AxisAngleToQuat(axis, angleRad))
}
