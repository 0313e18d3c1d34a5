package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// PerspectiveMatrix builds a right-handed perspective projection directly from the
// frustum formula. Camera-space depth in [-near, -far] maps to NDC [-1, 1].
// The caller must ensure height != 0 and near != far.
//
// Parameters:
//   - fovDegrees: vertical field of view in degrees
//   - width, height: viewport dimensions
//   - near, far: clip distances (0 < near < far)
//
// Returns:
//   - [16]float32: the projection matrix (column-major)
func PerspectiveMatrix(fovDegrees, width, height, near, far float32) [16]float32 {
	return perspective(fovDegrees, width, height, near, far, ProjectionRightHanded)
}

// PerspectiveMatrixForwardZ builds the +Z-forward layout of the projection
// (element [2][3] = 1, [3][3] = 0). Camera-space depth in [near, far] maps to NDC [-1, 1].
//
// Parameters:
//   - fovDegrees: vertical field of view in degrees
//   - width, height: viewport dimensions
//   - near, far: clip distances (0 < near < far)
//
// Returns:
//   - [16]float32: the projection matrix (column-major)
func PerspectiveMatrixForwardZ(fovDegrees, width, height, near, far float32) [16]float32 {
	return perspective(fovDegrees, width, height, near, far, ProjectionForwardZ)
}

func perspective(fovDegrees, width, height, near, far float32, convention ProjectionConvention) mgl32.Mat4 {
	tanHalf := float32(math.Tan(float64(mgl32.DegToRad(fovDegrees)) / 2))
	aspect := width / height

	a := (-near - far) / (near - far)
	b := (2 * near * far) / (near - far)

	var m mgl32.Mat4
	m[0] = 1 / (aspect * tanHalf)
	m[5] = 1 / tanHalf
	m[14] = b

	switch convention {
	case ProjectionForwardZ:
		m[10] = a
		m[11] = 1
	default:
		m[10] = -a
		m[11] = -1
	}
	return m
}
