package camera

// FlyControllerOption is a functional option for configuring a FlyController.
type FlyControllerOption func(*flyControllerImpl)

// WithKeyBinding maps an additional key to a movement.
//
// Parameters:
//   - keyCode: the virtual key code
//   - move: the movement triggered while the key is held
//
// Returns:
//   - FlyControllerOption: functional option to add the binding
func WithKeyBinding(keyCode uint32, move CameraMovement) FlyControllerOption {
	return func(fc *flyControllerImpl) {
		fc.bindings[keyCode] = move
	}
}

// WithoutDefaultBindings removes the default WASD and arrow key bindings.
// Combine with WithKeyBinding to build a custom layout.
//
// Returns:
//   - FlyControllerOption: functional option to clear the bindings
func WithoutDefaultBindings() FlyControllerOption {
	return func(fc *flyControllerImpl) {
		fc.bindings = make(map[uint32]CameraMovement)
	}
}

// WithToggleKey sets the key that flips the pitch clamp policy. Pass 0 to disable toggling.
//
// Parameters:
//   - keyCode: the virtual key code
//
// Returns:
//   - FlyControllerOption: functional option to set the toggle key
func WithToggleKey(keyCode uint32) FlyControllerOption {
	return func(fc *flyControllerImpl) {
		fc.toggleKey = keyCode
	}
}

// WithConstrainPitch sets the initial pitch clamp policy (default true).
//
// Parameters:
//   - constrain: true to clamp pitch to ±MaxPitch
//
// Returns:
//   - FlyControllerOption: functional option to set the clamp policy
func WithConstrainPitch(constrain bool) FlyControllerOption {
	return func(fc *flyControllerImpl) {
		fc.constrainPitch = constrain
	}
}
