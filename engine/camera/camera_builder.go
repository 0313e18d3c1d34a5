package camera

// CameraBuilderOption is a functional option for configuring a Camera.
type CameraBuilderOption func(*cameraImpl)

// WithMovementSpeed overrides the default translation speed (2.5 units per second).
//
// Parameters:
//   - speed: world units per second
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's movement speed
func WithMovementSpeed(speed float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.movementSpeed = speed
	}
}

// WithMouseSensitivity overrides the default mouse sensitivity (0.6).
//
// Parameters:
//   - sensitivity: multiplier converting pointer deltas into degrees
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's mouse sensitivity
func WithMouseSensitivity(sensitivity float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.mouseSensitivity = sensitivity
	}
}

// WithFov sets the vertical field of view in degrees.
//
// Parameters:
//   - fov: field of view in degrees
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's field of view
func WithFov(fov float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.fov = fov
	}
}

// WithViewport sets the viewport dimensions used for the projection aspect ratio.
//
// Parameters:
//   - width: viewport width
//   - height: viewport height (non-zero)
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's viewport
func WithViewport(width, height float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.width = width
		c.height = height
	}
}

// WithNear sets the near clipping plane distance.
//
// Parameters:
//   - near: near plane distance (> 0)
//
// Returns:
//   - CameraBuilderOption: a function that sets the near plane
func WithNear(near float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.near = near
	}
}

// WithFar sets the far clipping plane distance.
//
// Parameters:
//   - far: far plane distance (> near)
//
// Returns:
//   - CameraBuilderOption: a function that sets the far plane
func WithFar(far float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.far = far
	}
}

// WithViewStrategy selects the view matrix derivation. Defaults to ViewBasis.
func WithViewStrategy(strategy ViewStrategy) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.viewStrategy = strategy
	}
}

// WithOrientationMode selects the mouse orientation model. Defaults to OrientationQuaternion.
func WithOrientationMode(mode OrientationMode) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.orientation = mode
	}
}

// WithProjectionConvention selects the projection clip-space layout. Defaults to ProjectionRightHanded.
func WithProjectionConvention(convention ProjectionConvention) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.convention = convention
	}
}
