package camera

// CameraMovement identifies one of the discrete keyboard movement requests a Camera accepts.
// It abstracts away window-system specific key handling.
type CameraMovement int

const (
	// MovementForward moves the camera along its facing direction.
	MovementForward CameraMovement = iota

	// MovementBackward moves the camera away from its facing direction.
	MovementBackward

	// MovementLeft strafes the camera along its negative right axis.
	MovementLeft

	// MovementRight strafes the camera along its right axis.
	MovementRight
)

// String returns a readable name for the movement.
func (m CameraMovement) String() string {
	switch m {
	case MovementForward:
		return "forward"
	case MovementBackward:
		return "backward"
	case MovementLeft:
		return "left"
	case MovementRight:
		return "right"
	default:
		return "unknown"
	}
}

// ViewStrategy selects how the Camera derives its view matrix.
// Every strategy maps the eye position to the origin and the facing direction to -Z.
type ViewStrategy int

const (
	// ViewBasis builds a rotation matrix from an orthonormal right/up/direction basis
	// anchored to the world up axis and multiplies it by a translation of -position.
	ViewBasis ViewStrategy = iota

	// ViewRowMajor fills a flat row-major array by hand and transposes it into column-major form.
	ViewRowMajor

	// ViewLookAt delegates to the library look-at routine with target = position - direction.
	ViewLookAt
)

// String returns the config name of the strategy.
func (s ViewStrategy) String() string {
	switch s {
	case ViewBasis:
		return "basis"
	case ViewRowMajor:
		return "row_major"
	case ViewLookAt:
		return "look_at"
	default:
		return "unknown"
	}
}

// OrientationMode selects how mouse deltas update the camera's orientation.
type OrientationMode int

const (
	// OrientationQuaternion rotates the local frame incrementally: pitch about the local
	// right axis, then yaw about the fixed world up axis.
	OrientationQuaternion OrientationMode = iota

	// OrientationEuler re-synthesizes the direction from accumulated yaw and pitch angles each update.
	OrientationEuler
)

// String returns the config name of the mode.
func (m OrientationMode) String() string {
	switch m {
	case OrientationQuaternion:
		return "quaternion"
	case OrientationEuler:
		return "euler"
	default:
		return "unknown"
	}
}

// ProjectionConvention selects the clip-space layout of the perspective projection.
type ProjectionConvention int

const (
	// ProjectionRightHanded matches the view matrix: the camera looks down -Z, w = -z,
	// and depth in [-near, -far] maps to NDC [-1, 1].
	ProjectionRightHanded ProjectionConvention = iota

	// ProjectionForwardZ uses element [2][3] = 1 and [3][3] = 0: the camera looks down +Z,
	// w = z, and depth in [near, far] maps to NDC [-1, 1].
	ProjectionForwardZ
)

// String returns the config name of the convention.
func (c ProjectionConvention) String() string {
	switch c {
	case ProjectionRightHanded:
		return "right_handed"
	case ProjectionForwardZ:
		return "forward_z"
	default:
		return "unknown"
	}
}

// Defaults applied by NewCamera.
const (
	DefaultMovementSpeed    float32 = 2.5
	DefaultMouseSensitivity float32 = 0.6
	DefaultFov              float32 = 45.0
	DefaultWidth            float32 = 800
	DefaultHeight           float32 = 600
	DefaultNear             float32 = 0.1
	DefaultFar              float32 = 100.0

	// MaxPitch bounds the accumulated pitch in degrees when the clamp is active.
	MaxPitch float32 = 89.0
)
