package camera

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-flycam/common"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlyControllerKeyboard(t *testing.T) {
	c := newDefaultCamera()
	fc := NewFlyController(c)

	fc.KeyDown(common.KeyW)
	fc.Tick(1)
	assertVec3InDelta(t, mgl32.Vec3{0, 0, 0.5}, c.Position(), tol)

	fc.KeyUp(common.KeyW)
	fc.Tick(1)
	assertVec3InDelta(t, mgl32.Vec3{0, 0, 0.5}, c.Position(), tol, "released key stops movement")

	fc.KeyDown(common.KeyD)
	fc.Tick(0.4)
	assertVec3InDelta(t, mgl32.Vec3{1, 0, 0.5}, c.Position(), tol)
	assert.True(t, fc.KeyHeld(common.KeyD))
	assert.False(t, fc.KeyHeld(common.KeyW))
}

func TestFlyControllerAppliesEachMovementOnce(t *testing.T) {
	c := newDefaultCamera()
	fc := NewFlyController(c)

	fc.KeyDown(common.KeyW)
	fc.KeyDown(common.KeyUp)
	fc.Tick(1)
	assertVec3InDelta(t, mgl32.Vec3{0, 0, 0.5}, c.Position(), tol)
}

func TestFlyControllerOpposingKeysCancel(t *testing.T) {
	c := newDefaultCamera()
	fc := NewFlyController(c)

	fc.KeyDown(common.KeyA)
	fc.KeyDown(common.KeyD)
	fc.Tick(1)
	assertVec3InDelta(t, mgl32.Vec3{0, 0, 3}, c.Position(), tol)
}

func TestFlyControllerMouse(t *testing.T) {
	c := newDefaultCamera()
	fc := NewFlyController(c)

	fc.MouseMove(400, 300)
	fc.Tick(0)
	assert.InDelta(t, -90.0, c.Yaw(), tol, "first sample only seeds the position")

	fc.MouseMove(405, 300)
	fc.MouseMove(410, 290)
	fc.Tick(0)
	assert.InDelta(t, -84.0, c.Yaw(), tol)
	assert.InDelta(t, 6.0, c.Pitch(), tol, "screen y is inverted")

	fc.Tick(0)
	assert.InDelta(t, -84.0, c.Yaw(), tol, "pending delta is cleared by Tick")
}

func TestFlyControllerResetMouse(t *testing.T) {
	c := newDefaultCamera()
	fc := NewFlyController(c)

	fc.MouseMove(0, 0)
	fc.MouseMove(50, 0)
	fc.ResetMouse()
	fc.MouseMove(500, 500)
	fc.Tick(0)
	assert.InDelta(t, -90.0, c.Yaw(), tol)
	assert.InDelta(t, 0.0, c.Pitch(), tol)
}

func TestFlyControllerPitchToggle(t *testing.T) {
	c := newDefaultCamera()
	fc := NewFlyController(c)
	assert.True(t, fc.ConstrainPitch())

	fc.KeyDown(common.KeyC)
	assert.False(t, fc.ConstrainPitch())
	fc.KeyDown(common.KeyC) // key repeat
	assert.False(t, fc.ConstrainPitch())
	fc.KeyUp(common.KeyC)
	fc.KeyDown(common.KeyC)
	assert.True(t, fc.ConstrainPitch())

	fc.SetConstrainPitch(false)
	fc.MouseMove(0, 0)
	fc.MouseMove(0, -200)
	fc.Tick(0)
	assert.InDelta(t, 120.0, c.Pitch(), tol)

	// re-enabling the clamp beyond the bound must not snap the view on a horizontal move
	elevation := c.Front().Y()
	fc.KeyUp(common.KeyC)
	fc.KeyDown(common.KeyC)
	require.True(t, fc.ConstrainPitch())
	fc.MouseMove(10, -200)
	fc.Tick(0)
	assert.InDelta(t, elevation, c.Front().Y(), tol)
	assert.InDelta(t, 120.0, c.Pitch(), tol)
}

func TestFlyControllerClampsByDefault(t *testing.T) {
	c := newDefaultCamera()
	fc := NewFlyController(c)

	fc.MouseMove(0, 0)
	fc.MouseMove(0, -1000)
	fc.Tick(0)
	assert.Equal(t, MaxPitch, c.Pitch())
}

func TestFlyControllerBindings(t *testing.T) {
	c := newDefaultCamera()
	fc := NewFlyController(c,
		WithoutDefaultBindings(),
		WithKeyBinding(common.KeySpace, MovementBackward),
		WithToggleKey(0),
		WithConstrainPitch(false),
	)
	assert.False(t, fc.ConstrainPitch())

	fc.KeyDown(common.KeyW)
	fc.KeyDown(common.KeyC)
	fc.Tick(1)
	assertVec3InDelta(t, mgl32.Vec3{0, 0, 3}, c.Position(), tol, "defaults removed")
	assert.False(t, fc.ConstrainPitch(), "toggle disabled")

	fc.KeyDown(common.KeySpace)
	fc.Tick(1)
	assertVec3InDelta(t, mgl32.Vec3{0, 0, 5.5}, c.Position(), tol)

	fc.Unbind(common.KeySpace)
	fc.Bind(common.KeyW, MovementForward)
	fc.Tick(1)
	assertVec3InDelta(t, mgl32.Vec3{0, 0, 3}, c.Position(), tol)

	fc.Bind(common.KeyTab, CameraMovement(9))
	fc.KeyDown(common.KeyTab)
	assert.NotPanics(t, func() { fc.Tick(1) })
	assert.Same(t, c, fc.Camera())
}
