package camera

import (
	"math"
	"sync"

	"github.com/Carmen-Shannon/oxy-flycam/common"
	"github.com/go-gl/mathgl/mgl32"
)

type cameraImpl struct {
	mu *sync.Mutex

	position  mgl32.Vec3
	direction mgl32.Vec3 // points from the target back toward the eye
	up        mgl32.Vec3
	worldUp   mgl32.Vec3

	movementSpeed    float32
	mouseSensitivity float32

	pitch float32 // degrees
	yaw   float32 // degrees

	fov    float32 // vertical, degrees
	width  float32
	height float32
	near   float32
	far    float32

	viewStrategy ViewStrategy
	orientation  OrientationMode
	convention   ProjectionConvention

	viewMatrix              mgl32.Mat4
	projectionMatrix        mgl32.Mat4
	viewProjectionMatrix    mgl32.Mat4
	inverseProjectionMatrix mgl32.Mat4
}

// Camera defines the interface for a free-look camera.
// The camera owns its position and orientation, translates on keyboard requests,
// reorients on mouse deltas, and derives view/projection matrices from that state.
//
// The per-frame contract is: apply all ProcessKeyboard/ProcessMouseMovement calls,
// then read the matrices for that frame's draw calls.
type Camera interface {
	// ProcessKeyboard translates the camera by MovementSpeed * elapsedSeconds along
	// its forward or strafe axis. Unknown movement values are ignored.
	//
	// Parameters:
	//   - move: the requested movement
	//   - elapsedSeconds: time since the last frame in seconds (not clamped)
	ProcessKeyboard(move CameraMovement, elapsedSeconds float32)

	// ProcessMouseMovement reorients the camera from a raw pointer delta.
	// Offsets are scaled by MouseSensitivity into degrees. When constrainPitch is true
	// the accumulated pitch saturates at ±MaxPitch and any residual rotation is dropped.
	//
	// Parameters:
	//   - xOffset: horizontal pointer delta (positive = rightward)
	//   - yOffset: vertical pointer delta (positive = upward)
	//   - constrainPitch: whether to clamp the pitch to ±MaxPitch
	ProcessMouseMovement(xOffset, yOffset float32, constrainPitch bool)

	// Position returns the eye location in world space.
	Position() mgl32.Vec3

	// SetPosition moves the eye to p without changing orientation.
	SetPosition(p mgl32.Vec3)

	// Direction returns the unit vector pointing from the target back toward the eye.
	Direction() mgl32.Vec3

	// Front returns the unit facing direction (the negated Direction).
	Front() mgl32.Vec3

	// Up returns the camera-local unit up vector.
	Up() mgl32.Vec3

	// Right returns the camera-local unit right vector.
	Right() mgl32.Vec3

	// WorldUp returns the fixed world up axis used to anchor yaw.
	WorldUp() mgl32.Vec3

	// Pitch returns the accumulated vertical angle in degrees.
	Pitch() float32

	// Yaw returns the accumulated horizontal angle in degrees.
	Yaw() float32

	// MovementSpeed returns the translation speed in world units per second.
	MovementSpeed() float32

	// SetMovementSpeed sets the translation speed in world units per second.
	SetMovementSpeed(speed float32)

	// MouseSensitivity returns the multiplier that converts pointer deltas into degrees.
	MouseSensitivity() float32

	// SetMouseSensitivity sets the multiplier that converts pointer deltas into degrees.
	SetMouseSensitivity(sensitivity float32)

	// Fov returns the vertical field of view in degrees.
	Fov() float32

	// SetFov sets the vertical field of view in degrees and recomputes the projection.
	SetFov(fov float32)

	// Viewport returns the viewport dimensions used for the aspect ratio.
	//
	// Returns:
	//   - width: viewport width
	//   - height: viewport height
	Viewport() (width, height float32)

	// SetViewport sets the viewport dimensions and recomputes the projection.
	// The caller must ensure height is non-zero.
	//
	// Parameters:
	//   - width: viewport width
	//   - height: viewport height
	SetViewport(width, height float32)

	// Near returns the near clipping plane distance.
	Near() float32

	// SetNear sets the near clipping plane distance and recomputes the projection.
	SetNear(near float32)

	// Far returns the far clipping plane distance.
	Far() float32

	// SetFar sets the far clipping plane distance and recomputes the projection.
	SetFar(far float32)

	// ViewStrategy returns the view matrix derivation in use.
	ViewStrategy() ViewStrategy

	// SetViewStrategy selects the view matrix derivation and recomputes the matrices.
	SetViewStrategy(strategy ViewStrategy)

	// OrientationMode returns the mouse orientation model in use.
	OrientationMode() OrientationMode

	// ProjectionConvention returns the clip-space layout of the projection matrix.
	ProjectionConvention() ProjectionConvention

	// ViewMatrix returns the current 4x4 view matrix as 16 floats (column-major).
	//
	// Returns:
	//   - [16]float32: the view matrix
	ViewMatrix() [16]float32

	// ProjectionMatrix returns the current 4x4 projection matrix as 16 floats (column-major).
	//
	// Returns:
	//   - [16]float32: the projection matrix
	ProjectionMatrix() [16]float32

	// ViewProjectionMatrix returns projection * view as 16 floats (column-major).
	//
	// Returns:
	//   - [16]float32: the combined view-projection matrix
	ViewProjectionMatrix() [16]float32

	// InverseProjectionMatrix returns the inverse of the projection matrix as 16 floats (column-major).
	//
	// Returns:
	//   - [16]float32: the inverse projection matrix
	InverseProjectionMatrix() [16]float32

	// Frustum returns the world-space view frustum of the current view-projection matrix.
	//
	// Returns:
	//   - common.Frustum: the six normalized frustum planes
	Frustum() common.Frustum

	// Uniform packs the current matrices and eye position for GPU upload.
	//
	// Returns:
	//   - GPUCameraUniform: the camera uniform block
	Uniform() GPUCameraUniform
}

var _ Camera = &cameraImpl{}

// NewCamera creates a free-look Camera at position, oriented by up and direction.
// up and direction are normalized on entry, then up is rebuilt perpendicular to direction
// without roll, as every mouse update does; direction points from the target back
// toward the eye, so a camera looking down -Z passes (0, 0, 1).
// Pitch and yaw are derived from direction, which gives 0° / -90° for (0, 0, 1).
//
// Parameters:
//   - position: the eye location in world space
//   - up: the camera up vector (non-zero)
//   - direction: the reversed facing direction (non-zero)
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(position, up, direction mgl32.Vec3, options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		mu:               &sync.Mutex{},
		position:         position,
		direction:        direction.Normalize(),
		up:               up.Normalize(),
		worldUp:          common.WorldUp,
		movementSpeed:    DefaultMovementSpeed,
		mouseSensitivity: DefaultMouseSensitivity,
		fov:              DefaultFov,
		width:            DefaultWidth,
		height:           DefaultHeight,
		near:             DefaultNear,
		far:              DefaultFar,
		viewStrategy:     ViewBasis,
		orientation:      OrientationQuaternion,
		convention:       ProjectionRightHanded,
	}
	c.orthonormalize()
	c.pitch, c.yaw = anglesFromDirection(c.direction)

	for _, option := range options {
		option(c)
	}

	c.updateMatrices()
	return c
}

func (c *cameraImpl) ProcessKeyboard(move CameraMovement, elapsedSeconds float32) {
	c.mu.Lock()
	defer c.mu.Unlock()

	velocity := c.movementSpeed * elapsedSeconds
	switch move {
	case MovementForward:
		// direction points backwards, so moving forward subtracts it
		c.position = c.position.Sub(c.direction.Mul(velocity))
	case MovementBackward:
		c.position = c.position.Add(c.direction.Mul(velocity))
	case MovementLeft:
		c.position = c.position.Sub(c.strafeAxis().Mul(velocity))
	case MovementRight:
		c.position = c.position.Add(c.strafeAxis().Mul(velocity))
	default:
		return
	}
	c.updateViewMatrices()
}

func (c *cameraImpl) ProcessMouseMovement(xOffset, yOffset float32, constrainPitch bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if xOffset == 0 && yOffset == 0 {
		return
	}

	yawDelta := -xOffset * c.mouseSensitivity
	pitchDelta := yOffset * c.mouseSensitivity

	switch c.orientation {
	case OrientationEuler:
		c.rotateEuler(yawDelta, pitchDelta, constrainPitch)
	default:
		c.rotateQuaternion(yawDelta, pitchDelta, constrainPitch)
	}
	c.updateViewMatrices()
}

func (c *cameraImpl) Position() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.position
}

func (c *cameraImpl) SetPosition(p mgl32.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.position = p
	c.updateViewMatrices()
}

func (c *cameraImpl) Direction() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.direction
}

func (c *cameraImpl) Front() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.direction.Mul(-1)
}

func (c *cameraImpl) Up() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.up
}

func (c *cameraImpl) Right() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.strafeAxis()
}

func (c *cameraImpl) WorldUp() mgl32.Vec3 {
	return c.worldUp
}

func (c *cameraImpl) Pitch() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pitch
}

func (c *cameraImpl) Yaw() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.yaw
}

func (c *cameraImpl) MovementSpeed() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.movementSpeed
}

func (c *cameraImpl) SetMovementSpeed(speed float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.movementSpeed = speed
}

func (c *cameraImpl) MouseSensitivity() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mouseSensitivity
}

func (c *cameraImpl) SetMouseSensitivity(sensitivity float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.mouseSensitivity = sensitivity
}

func (c *cameraImpl) Fov() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fov
}

func (c *cameraImpl) SetFov(fov float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fov = fov
	c.updateMatrices()
}

func (c *cameraImpl) Viewport() (width, height float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.width, c.height
}

func (c *cameraImpl) SetViewport(width, height float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.width = width
	c.height = height
	c.updateMatrices()
}

func (c *cameraImpl) Near() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.near
}

func (c *cameraImpl) SetNear(near float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.near = near
	c.updateMatrices()
}

func (c *cameraImpl) Far() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.far
}

func (c *cameraImpl) SetFar(far float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.far = far
	c.updateMatrices()
}

func (c *cameraImpl) ViewStrategy() ViewStrategy {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewStrategy
}

func (c *cameraImpl) SetViewStrategy(strategy ViewStrategy) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.viewStrategy = strategy
	c.updateViewMatrices()
}

func (c *cameraImpl) OrientationMode() OrientationMode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.orientation
}

func (c *cameraImpl) ProjectionConvention() ProjectionConvention {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.convention
}

func (c *cameraImpl) ViewMatrix() [16]float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewMatrix
}

func (c *cameraImpl) ProjectionMatrix() [16]float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.projectionMatrix
}

func (c *cameraImpl) ViewProjectionMatrix() [16]float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewProjectionMatrix
}

func (c *cameraImpl) InverseProjectionMatrix() [16]float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inverseProjectionMatrix
}

func (c *cameraImpl) Frustum() common.Frustum {
	c.mu.Lock()
	defer c.mu.Unlock()
	return common.ExtractFrustum(c.viewProjectionMatrix)
}

func (c *cameraImpl) Uniform() GPUCameraUniform {
	c.mu.Lock()
	defer c.mu.Unlock()
	return GPUCameraUniform{
		View:           c.viewMatrix,
		Projection:     c.projectionMatrix,
		CameraPosition: c.position,
	}
}

// --- internal helpers ---

// strafeAxis returns normalize(cross(up, direction)), recomputed on every call
// so strafing follows the latest orientation.
// Caller must hold the mutex.
func (c *cameraImpl) strafeAxis() mgl32.Vec3 {
	return c.up.Cross(c.direction).Normalize()
}

// applyPitch accumulates delta into the pitch and returns the rotation that should
// actually be applied. When constrained and the bound is crossed, only the part
// that reaches the bound is returned, which is zero once the pitch sits on it.
// The returned rotation never exceeds delta nor points against it.
// Caller must hold the mutex.
func (c *cameraImpl) applyPitch(delta float32, constrain bool) float32 {
	previous := c.pitch
	if constrain && (previous > MaxPitch || previous < -MaxPitch) {
		// Left beyond the bound by an unconstrained move: only turning back toward it applies.
		if delta*previous >= 0 {
			return 0
		}
		c.pitch += delta
		return delta
	}
	c.pitch += delta
	if !constrain || (c.pitch <= MaxPitch && c.pitch >= -MaxPitch) {
		return delta
	}
	c.pitch = common.Clamp(c.pitch, -MaxPitch, MaxPitch)
	return c.pitch - previous
}

// rotateQuaternion pitches the local frame about its right axis, then yaws the
// direction about the world up axis, then restores orthonormality.
// Caller must hold the mutex.
func (c *cameraImpl) rotateQuaternion(yawDelta, pitchDelta float32, constrain bool) {
	pitchDelta = c.applyPitch(pitchDelta, constrain)
	c.yaw -= yawDelta

	if pitchDelta != 0 {
		right := c.strafeAxis()
		q := common.AxisAngleQuat(right, pitchDelta)
		c.up = common.RotateVec3(q, c.up)
		c.direction = common.RotateVec3(q, c.direction)
	}

	// Yaw about worldUp rather than the local up so no roll accumulates.
	if yawDelta != 0 {
		q := common.AxisAngleQuat(c.worldUp, yawDelta)
		c.direction = common.RotateVec3(q, c.direction)
	}

	c.orthonormalize()
}

// rotateEuler accumulates yaw and pitch and rebuilds the direction from the angles.
// Caller must hold the mutex.
func (c *cameraImpl) rotateEuler(yawDelta, pitchDelta float32, constrain bool) {
	c.applyPitch(pitchDelta, constrain)
	c.yaw -= yawDelta

	yaw := float64(mgl32.DegToRad(c.yaw))
	pitch := float64(mgl32.DegToRad(c.pitch))
	front := mgl32.Vec3{
		float32(math.Cos(yaw) * math.Cos(pitch)),
		float32(math.Sin(pitch)),
		float32(math.Sin(yaw) * math.Cos(pitch)),
	}
	c.direction = front.Mul(-1).Normalize()

	c.orthonormalize()
}

// orthonormalize rebuilds up from direction and the world up axis.
// Caller must hold the mutex.
func (c *cameraImpl) orthonormalize() {
	right := c.worldUp.Cross(c.direction).Normalize()
	c.up = c.direction.Cross(right).Normalize()
}

// updateMatrices recalculates the projection and all view-dependent matrices.
// Caller must hold the mutex.
func (c *cameraImpl) updateMatrices() {
	c.projectionMatrix = perspective(c.fov, c.width, c.height, c.near, c.far, c.convention)
	c.inverseProjectionMatrix = c.projectionMatrix.Inv()
	c.updateViewMatrices()
}

// updateViewMatrices recalculates the view and view-projection matrices.
// Caller must hold the mutex.
func (c *cameraImpl) updateViewMatrices() {
	c.viewMatrix = viewMatrix(c.viewStrategy, c.position, c.direction, c.up, c.worldUp)
	c.viewProjectionMatrix = c.projectionMatrix.Mul4(c.viewMatrix)
}

// anglesFromDirection derives pitch and yaw in degrees from a reversed facing direction.
func anglesFromDirection(direction mgl32.Vec3) (pitch, yaw float32) {
	front := direction.Mul(-1)
	pitch = mgl32.RadToDeg(float32(math.Asin(float64(common.Clamp(front.Y(), -1, 1)))))
	yaw = mgl32.RadToDeg(float32(math.Atan2(float64(front.Z()), float64(front.X()))))
	return pitch, yaw
}
