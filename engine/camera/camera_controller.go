package camera

// FlyController defines the input side of a free-look camera.
// It turns raw key state and cursor positions into ProcessKeyboard and
// ProcessMouseMovement calls on an attached Camera. Window callbacks feed
// KeyDown/KeyUp/MouseMove as events arrive; Tick applies everything collected
// since the previous tick, so the camera is updated once per frame before its
// matrices are read.
type FlyController interface {
	// Camera returns the controlled camera.
	//
	// Returns:
	//   - Camera: the camera this controller drives
	Camera() Camera

	// KeyDown records a key press. Repeated presses of a held key are ignored.
	// Pressing the toggle key flips the pitch clamp policy.
	//
	// Parameters:
	//   - keyCode: the virtual key code (see common.Key*)
	KeyDown(keyCode uint32)

	// KeyUp records a key release.
	//
	// Parameters:
	//   - keyCode: the virtual key code
	KeyUp(keyCode uint32)

	// KeyHeld reports whether the key is currently held.
	//
	// Parameters:
	//   - keyCode: the virtual key code
	//
	// Returns:
	//   - bool: true if the key is down
	KeyHeld(keyCode uint32) bool

	// MouseMove records a cursor position in window coordinates.
	// The first sample after construction or ResetMouse only seeds the last position.
	// Later samples accumulate (x - lastX, lastY - y) until the next Tick.
	//
	// Parameters:
	//   - x, y: cursor position in pixels (y grows downward)
	MouseMove(x, y float64)

	// ResetMouse forgets the last cursor position and drops pending deltas,
	// e.g. after the cursor is recaptured.
	ResetMouse()

	// Tick applies held movements for elapsedSeconds and then the pending mouse delta.
	//
	// Parameters:
	//   - elapsedSeconds: time since the previous tick in seconds
	Tick(elapsedSeconds float32)

	// ConstrainPitch returns whether mouse pitch is clamped to ±MaxPitch.
	//
	// Returns:
	//   - bool: the current clamp policy
	ConstrainPitch() bool

	// SetConstrainPitch sets the pitch clamp policy.
	//
	// Parameters:
	//   - constrain: true to clamp pitch to ±MaxPitch
	SetConstrainPitch(constrain bool)

	// Bind maps a key to a movement, replacing any previous binding for that key.
	//
	// Parameters:
	//   - keyCode: the virtual key code
	//   - move: the movement to trigger while the key is held
	Bind(keyCode uint32, move CameraMovement)

	// Unbind removes the movement binding for a key.
	//
	// Parameters:
	//   - keyCode: the virtual key code
	Unbind(keyCode uint32)
}
