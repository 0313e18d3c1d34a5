package common

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// WorldUp is the canonical world-space up axis.
var WorldUp = mgl32.Vec3{0, 1, 0}

// AxisAngleQuat builds a unit quaternion rotating by angleDegrees around axis.
// The axis is normalized before use, so callers may pass any non-zero vector.
// Layout: w = cos(θ/2), v = sin(θ/2) * axis.
//
// Parameters:
//   - axis: rotation axis (non-zero)
//   - angleDegrees: rotation angle in degrees (right-hand rule)
//
// Returns:
//   - mgl32.Quat: the unit rotation quaternion
func AxisAngleQuat(axis mgl32.Vec3, angleDegrees float32) mgl32.Quat {
	half := float64(mgl32.DegToRad(angleDegrees)) / 2.0
	s := float32(math.Sin(half))
	return mgl32.Quat{
		W: float32(math.Cos(half)),
		V: axis.Normalize().Mul(s),
	}
}

// RotateVec3 rotates v by the quaternion q using conjugation (q * v * q⁻¹)
// and renormalizes the result to counter floating-point drift.
// Zero-length inputs are returned unchanged.
//
// Parameters:
//   - q: rotation quaternion (expected unit length)
//   - v: vector to rotate
//
// Returns:
//   - mgl32.Vec3: the rotated, unit-length vector
func RotateVec3(q mgl32.Quat, v mgl32.Vec3) mgl32.Vec3 {
	if v.Len() == 0 {
		return v
	}
	p := mgl32.Quat{W: 0, V: v}
	r := q.Mul(p).Mul(q.Conjugate())
	return r.V.Normalize()
}

// Clamp limits value to the closed range [lo, hi].
//
// Parameters:
//   - value: value to clamp
//   - lo: lower bound
//   - hi: upper bound
//
// Returns:
//   - float32: the clamped value
func Clamp(value, lo, hi float32) float32 {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}

// TransformPoint multiplies a 4x4 column-major matrix by the homogeneous point (p, 1).
//
// Parameters:
//   - m: the 4x4 matrix
//   - p: the point to transform
//
// Returns:
//   - mgl32.Vec4: the transformed homogeneous point (not divided by w)
func TransformPoint(m mgl32.Mat4, p mgl32.Vec3) mgl32.Vec4 {
	return m.Mul4x1(p.Vec4(1))
}

// PerspectiveDivide divides a clip-space point by its w component.
// A zero w yields the xyz components unchanged.
//
// Parameters:
//   - clip: homogeneous clip-space coordinate
//
// Returns:
//   - mgl32.Vec3: normalized device coordinate
func PerspectiveDivide(clip mgl32.Vec4) mgl32.Vec3 {
	if clip[3] == 0 {
		return clip.Vec3()
	}
	return clip.Vec3().Mul(1 / clip[3])
}
