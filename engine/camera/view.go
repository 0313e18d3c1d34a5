package camera

import (
	"github.com/go-gl/mathgl/mgl32"
)

// viewMatrix derives the world-to-camera transform with the selected strategy.
// All strategies map position to the origin and position - direction to (0, 0, -1).
func viewMatrix(strategy ViewStrategy, position, direction, up, worldUp mgl32.Vec3) mgl32.Mat4 {
	switch strategy {
	case ViewRowMajor:
		return rowMajorView(position, direction, up)
	case ViewLookAt:
		return mgl32.LookAtV(position, position.Sub(direction), up)
	default:
		return basisView(position, direction, worldUp)
	}
}

// basisView builds rotation * translation from an orthonormal basis anchored to worldUp.
// The basis vectors form the rows of the rotation, so it maps world axes into camera axes.
func basisView(position, direction, worldUp mgl32.Vec3) mgl32.Mat4 {
	f := direction.Normalize()
	r := worldUp.Cross(f).Normalize()
	u := f.Cross(r)

	rotation := mgl32.Mat4FromRows(
		r.Vec4(0),
		u.Vec4(0),
		f.Vec4(0),
		mgl32.Vec4{0, 0, 0, 1},
	)
	translation := mgl32.Translate3D(-position.X(), -position.Y(), -position.Z())

	return rotation.Mul4(translation)
}

// rowMajorView fills the matrix as a flat row-major array and transposes it into
// column-major storage. The translation column is the rotated negative eye position.
func rowMajorView(position, direction, up mgl32.Vec3) mgl32.Mat4 {
	n := direction.Normalize()
	v := up.Normalize()
	u := v.Cross(n).Normalize()

	rowMajor := mgl32.Mat4{
		u.X(), u.Y(), u.Z(), -u.Dot(position),
		v.X(), v.Y(), v.Z(), -v.Dot(position),
		n.X(), n.Y(), n.Z(), -n.Dot(position),
		0, 0, 0, 1,
	}

	return rowMajor.Transpose()
}
