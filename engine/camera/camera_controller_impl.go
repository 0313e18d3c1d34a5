package camera

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-flycam/common"
)

// flyControllerImpl is the single implementation of FlyController.
type flyControllerImpl struct {
	mu *sync.Mutex

	camera Camera

	// Key state
	bindings  map[uint32]CameraMovement
	held      map[uint32]bool
	toggleKey uint32

	constrainPitch bool

	// Mouse state
	firstMouse bool
	lastX      float64
	lastY      float64
	pendingX   float32
	pendingY   float32
}

// Compile-time interface compliance check
var _ FlyController = &flyControllerImpl{}

// movementOrder fixes the order held movements are applied in during Tick.
var movementOrder = [...]CameraMovement{MovementForward, MovementBackward, MovementLeft, MovementRight}

// NewFlyController creates a controller for cam with WASD and arrow key bindings,
// C as the pitch clamp toggle, and the clamp enabled.
//
// Parameters:
//   - cam: the camera to drive
//   - options: functional options to configure the controller
//
// Returns:
//   - FlyController: the newly created controller
func NewFlyController(cam Camera, options ...FlyControllerOption) FlyController {
	fc := &flyControllerImpl{
		mu:     &sync.Mutex{},
		camera: cam,
		bindings: map[uint32]CameraMovement{
			common.KeyW:     MovementForward,
			common.KeyS:     MovementBackward,
			common.KeyA:     MovementLeft,
			common.KeyD:     MovementRight,
			common.KeyUp:    MovementForward,
			common.KeyDown:  MovementBackward,
			common.KeyLeft:  MovementLeft,
			common.KeyRight: MovementRight,
		},
		held:           make(map[uint32]bool),
		toggleKey:      common.KeyC,
		constrainPitch: true,
		firstMouse:     true,
	}

	for _, option := range options {
		option(fc)
	}

	return fc
}

func (fc *flyControllerImpl) Camera() Camera {
	return fc.camera
}

func (fc *flyControllerImpl) KeyDown(keyCode uint32) {
	fc.mu.Lock()
	defer fc.mu.Unlock()

	if fc.held[keyCode] {
		return
	}
	fc.held[keyCode] = true

	if fc.toggleKey != 0 && keyCode == fc.toggleKey {
		fc.constrainPitch = !fc.constrainPitch
	}
}

func (fc *flyControllerImpl) KeyUp(keyCode uint32) {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	delete(fc.held, keyCode)
}

func (fc *flyControllerImpl) KeyHeld(keyCode uint32) bool {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	return fc.held[keyCode]
}

func (fc *flyControllerImpl) MouseMove(x, y float64) {
	fc.mu.Lock()
	defer fc.mu.Unlock()

	if fc.firstMouse {
		fc.lastX, fc.lastY = x, y
		fc.firstMouse = false
		return
	}

	// reversed since window y-coordinates grow downward
	fc.pendingX += float32(x - fc.lastX)
	fc.pendingY += float32(fc.lastY - y)
	fc.lastX, fc.lastY = x, y
}

func (fc *flyControllerImpl) ResetMouse() {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	fc.firstMouse = true
	fc.pendingX, fc.pendingY = 0, 0
}

func (fc *flyControllerImpl) Tick(elapsedSeconds float32) {
	fc.mu.Lock()
	var active [len(movementOrder)]bool
	for key := range fc.held {
		if move, ok := fc.bindings[key]; ok && move >= 0 && int(move) < len(active) {
			active[move] = true
		}
	}
	dx, dy := fc.pendingX, fc.pendingY
	fc.pendingX, fc.pendingY = 0, 0
	constrain := fc.constrainPitch
	fc.mu.Unlock()

	if fc.camera == nil {
		return
	}

	for _, move := range movementOrder {
		if active[move] {
			fc.camera.ProcessKeyboard(move, elapsedSeconds)
		}
	}
	if dx != 0 || dy != 0 {
		fc.camera.ProcessMouseMovement(dx, dy, constrain)
	}
}

func (fc *flyControllerImpl) ConstrainPitch() bool {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	return fc.constrainPitch
}

func (fc *flyControllerImpl) SetConstrainPitch(constrain bool) {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	fc.constrainPitch = constrain
}

func (fc *flyControllerImpl) Bind(keyCode uint32, move CameraMovement) {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	fc.bindings[keyCode] = move
}

func (fc *flyControllerImpl) Unbind(keyCode uint32) {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	delete(fc.bindings, keyCode)
}
