package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Carmen-Shannon/oxy-flycam/common"
	"github.com/Carmen-Shannon/oxy-flycam/engine/camera"
	"github.com/Carmen-Shannon/oxy-flycam/engine/window"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleTOML = `
[window]
title = "flycam test"
width = 1280
height = 720

[camera]
position = [1.0, 2.0, 5.0]
movement_speed = 4.0
fov = 60.0
view = "look_at"
orientation = "euler"

[controller]
constrain_pitch = false
toggle_key = "none"

[controller.bindings]
up = "forward"
down = "backward"

[renderer]
present_mode = "uncapped"
msaa = 1

[engine]
frame_limit = 144.0
profiling = true
`

const sampleYAML = `
window:
  width: 1024
  height: 768
camera:
  direction: [0, 0, -1]
  projection: forward_z
  near: 0.5
  far: 500
controller:
  toggle_key: V
`

func TestParseTOML(t *testing.T) {
	cfg, err := Parse([]byte(sampleTOML), FormatTOML)
	require.NoError(t, err)

	assert.Equal(t, "flycam test", cfg.Window.Title)
	assert.Equal(t, 1280, cfg.Window.Width)
	require.NotNil(t, cfg.Camera.Position)
	assert.Equal(t, [3]float32{1, 2, 5}, *cfg.Camera.Position)
	assert.Equal(t, [3]float32{0, 1, 0}, *cfg.Camera.Up, "unset vectors fall back to defaults")
	require.NotNil(t, cfg.Camera.MovementSpeed)
	assert.Equal(t, float32(4), *cfg.Camera.MovementSpeed)
	assert.Equal(t, camera.DefaultMouseSensitivity, *cfg.Camera.MouseSensitivity)
	assert.Equal(t, "look_at", cfg.Camera.View)
	require.NotNil(t, cfg.Controller.ConstrainPitch)
	assert.False(t, *cfg.Controller.ConstrainPitch)
	assert.Equal(t, map[string]string{"up": "forward", "down": "backward"}, cfg.Controller.Bindings)
	assert.Equal(t, 144.0, cfg.Engine.FrameLimit)
	assert.True(t, cfg.Engine.Profiling)
}

func TestParseYAML(t *testing.T) {
	cfg, err := Parse([]byte(sampleYAML), FormatYAML)
	require.NoError(t, err)

	assert.Equal(t, "oxy-flycam", cfg.Window.Title)
	assert.Equal(t, 1024, cfg.Window.Width)
	assert.Equal(t, [3]float32{0, 0, -1}, *cfg.Camera.Direction)
	assert.Equal(t, "forward_z", cfg.Camera.Projection)
	assert.Equal(t, float32(0.5), cfg.Camera.Near)
	assert.Equal(t, float32(500), cfg.Camera.Far)
	assert.Equal(t, "V", cfg.Controller.ToggleKey)
	assert.Equal(t, "vsync", cfg.Renderer.PresentMode)
}

func TestParseEmptyUsesDefaults(t *testing.T) {
	for _, format := range []Format{FormatTOML, FormatYAML} {
		cfg, err := Parse(nil, format)
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	}
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	_, err := Parse([]byte("[camera]\nzoom = 2.0\n"), FormatTOML)
	assert.ErrorContains(t, err, "unknown config keys")

	_, err = Parse([]byte("camera:\n  zoom: 2\n"), FormatYAML)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"far before near", "[camera]\nnear = 10.0\nfar = 5.0\n", "far plane"},
		{"fov out of range", "[camera]\nfov = 190.0\n", "fov"},
		{"zero up", "[camera]\nup = [0.0, 0.0, 0.0]\n", "up vector"},
		{"bad view", "[camera]\nview = \"orbit\"\n", "view strategy"},
		{"bad orientation", "[camera]\norientation = \"matrix\"\n", "orientation mode"},
		{"bad projection", "[camera]\nprojection = \"left\"\n", "projection convention"},
		{"bad toggle key", "[controller]\ntoggle_key = \"F13\"\n", "toggle key"},
		{"bad binding key", "[controller.bindings]\nkp0 = \"forward\"\n", "unknown key"},
		{"bad movement", "[controller.bindings]\nw = \"jump\"\n", "unknown movement"},
		{"bad present mode", "[renderer]\npresent_mode = \"mailbox\"\n", "present mode"},
		{"bad msaa", "[renderer]\nmsaa = 8\n", "msaa"},
		{"negative frame limit", "[engine]\nframe_limit = -1.0\n", "frame limit"},
		{"negative width", "[window]\nwidth = -5\n", "window size"},
		{"negative speed", "[camera]\nmovement_speed = -1.0\n", "movement speed"},
		{"negative sensitivity", "[camera]\nmouse_sensitivity = -0.1\n", "mouse sensitivity"},
		{"zero min size", "[window]\nmin_size = [0, 240]\n", "min_size must be positive"},
		{"min above max", "[window]\nmin_size = [1000, 240]\nmax_size = [800, 600]\n", "exceeds max_size"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data), FormatTOML)
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	tomlPath := filepath.Join(dir, "flycam.toml")
	require.NoError(t, os.WriteFile(tomlPath, []byte(sampleTOML), 0o644))
	cfg, err := Load(tomlPath)
	require.NoError(t, err)
	assert.Equal(t, 1280, cfg.Window.Width)

	yamlPath := filepath.Join(dir, "flycam.YML")
	require.NoError(t, os.WriteFile(yamlPath, []byte(sampleYAML), 0o644))
	cfg, err = Load(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, 1024, cfg.Window.Width)

	_, err = Load(filepath.Join(dir, "flycam.json"))
	assert.ErrorContains(t, err, "unsupported config extension")

	_, err = Load(filepath.Join(dir, "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestNewCameraFromConfig(t *testing.T) {
	cfg, err := Parse([]byte(sampleTOML), FormatTOML)
	require.NoError(t, err)

	cam, err := cfg.NewCamera()
	require.NoError(t, err)
	pos := cam.Position()
	assert.InDeltaSlice(t, []float32{1, 2, 5}, pos[:], 1e-6)
	assert.Equal(t, float32(4), cam.MovementSpeed())
	assert.Equal(t, float32(60), cam.Fov())
	assert.Equal(t, camera.ViewLookAt, cam.ViewStrategy())
	assert.Equal(t, camera.OrientationEuler, cam.OrientationMode())
	width, height := cam.Viewport()
	assert.Equal(t, float32(1280), width)
	assert.Equal(t, float32(720), height)

	zero, err := Config{}.NewCamera()
	require.NoError(t, err)
	pos = zero.Position()
	assert.InDeltaSlice(t, []float32{0, 0, 3}, pos[:], 1e-6, "zero config uses the default pose")
}

func TestControllerOptions(t *testing.T) {
	cfg, err := Parse([]byte(sampleTOML), FormatTOML)
	require.NoError(t, err)
	options, err := cfg.ControllerOptions()
	require.NoError(t, err)

	cam, err := cfg.NewCamera()
	require.NoError(t, err)
	fc := camera.NewFlyController(cam, options...)
	assert.False(t, fc.ConstrainPitch())

	fc.KeyDown(common.KeyC)
	assert.False(t, fc.ConstrainPitch(), "toggle disabled by \"none\"")

	fc.KeyDown(common.KeyW)
	fc.Tick(1)
	pos := cam.Position()
	assert.InDeltaSlice(t, []float32{1, 2, 5}, pos[:], 1e-6, "default bindings replaced")

	fc.KeyDown(common.KeyUp)
	fc.Tick(1)
	pos = cam.Position()
	assert.InDeltaSlice(t, []float32{1, 2, 1}, pos[:], 1e-5)
}

func TestRendererAndEngineOptions(t *testing.T) {
	cfg, err := Parse([]byte(sampleTOML), FormatTOML)
	require.NoError(t, err)

	rOpts, err := cfg.RendererOptions()
	require.NoError(t, err)
	assert.Len(t, rOpts, 3)

	assert.Len(t, cfg.EngineOptions(), 2)
	assert.Len(t, cfg.WindowOptions(), 4)

	yamlCfg, err := Parse([]byte("window:\n  capture_cursor: true\n"), FormatYAML)
	require.NoError(t, err)
	assert.Len(t, yamlCfg.WindowOptions(), 5)

	assert.Len(t, Config{}.WindowOptions(), 0)
}

func TestKeyByName(t *testing.T) {
	tests := map[string]uint32{
		"w":     common.KeyW,
		"W":     common.KeyW,
		"up":    common.KeyUp,
		"Space": common.KeySpace,
		"esc":   common.KeyEsc,
		"1":     '1',
	}
	for name, want := range tests {
		got, ok := common.KeyByName(name)
		assert.True(t, ok, name)
		assert.Equal(t, want, got, name)
	}
	_, ok := common.KeyByName("F13")
	assert.False(t, ok)
	_, ok = common.KeyByName("?")
	assert.False(t, ok)
}

func TestParseKeepsExplicitZeroTunables(t *testing.T) {
	cfg, err := Parse([]byte("[camera]\nmovement_speed = 0.0\nmouse_sensitivity = 0.0\n"), FormatTOML)
	require.NoError(t, err)
	require.NotNil(t, cfg.Camera.MovementSpeed)
	assert.Zero(t, *cfg.Camera.MovementSpeed)
	assert.Zero(t, *cfg.Camera.MouseSensitivity)

	cam, err := cfg.NewCamera()
	require.NoError(t, err)
	assert.Zero(t, cam.MovementSpeed())
	assert.Zero(t, cam.MouseSensitivity())

	cam.ProcessKeyboard(camera.MovementForward, 1)
	pos := cam.Position()
	assert.InDeltaSlice(t, []float32{0, 0, 3}, pos[:], 1e-6, "zero speed keeps the camera still")

	yamlCfg, err := Parse([]byte("camera:\n  movement_speed: 0\n"), FormatYAML)
	require.NoError(t, err)
	assert.Zero(t, *yamlCfg.Camera.MovementSpeed)
	assert.Equal(t, camera.DefaultMouseSensitivity, *yamlCfg.Camera.MouseSensitivity)
}

func TestParseWindowSizeLimits(t *testing.T) {
	cfg, err := Parse([]byte("[window]\nmin_size = [640, 480]\n"), FormatTOML)
	require.NoError(t, err)
	assert.Equal(t, [2]int{640, 480}, *cfg.Window.MinSize)
	assert.Equal(t, [2]int{window.DefaultMaxWidth, window.DefaultMaxHeight}, *cfg.Window.MaxSize, "unset limit falls back to default")

	yamlCfg, err := Parse([]byte("window:\n  max_size: [1920, 1080]\n"), FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, [2]int{1920, 1080}, *yamlCfg.Window.MaxSize)

	only := Config{Window: WindowConfig{MaxSize: &[2]int{1920, 1080}}}
	assert.Len(t, only.WindowOptions(), 1)
}
