package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Carmen-Shannon/oxy-flycam/common"
	"github.com/Carmen-Shannon/oxy-flycam/engine"
	"github.com/Carmen-Shannon/oxy-flycam/engine/camera"
	"github.com/Carmen-Shannon/oxy-flycam/engine/renderer"
	"github.com/Carmen-Shannon/oxy-flycam/engine/window"
	"github.com/go-gl/mathgl/mgl32"
)

// NewCamera builds a camera from the configured pose and options.
//
// Returns:
//   - camera.Camera: the configured camera
//   - error: an error if an enumerated name is invalid
func (c Config) NewCamera() (camera.Camera, error) {
	options, err := c.CameraOptions()
	if err != nil {
		return nil, err
	}
	cc := c.withDefaults(Default()).Camera
	return camera.NewCamera(mgl32.Vec3(*cc.Position), mgl32.Vec3(*cc.Up), mgl32.Vec3(*cc.Direction), options...), nil
}

// CameraOptions converts the camera section into builder options.
// The viewport is taken from the window size.
//
// Returns:
//   - []camera.CameraBuilderOption: the options
//   - error: an error if an enumerated name is invalid
func (c Config) CameraOptions() ([]camera.CameraBuilderOption, error) {
	cc := c.Camera
	view, err := parseViewStrategy(cc.View)
	if err != nil {
		return nil, err
	}
	orientation, err := parseOrientationMode(cc.Orientation)
	if err != nil {
		return nil, err
	}
	projection, err := parseProjectionConvention(cc.Projection)
	if err != nil {
		return nil, err
	}

	options := []camera.CameraBuilderOption{
		camera.WithViewStrategy(view),
		camera.WithOrientationMode(orientation),
		camera.WithProjectionConvention(projection),
	}
	if cc.MovementSpeed != nil {
		options = append(options, camera.WithMovementSpeed(*cc.MovementSpeed))
	}
	if cc.MouseSensitivity != nil {
		options = append(options, camera.WithMouseSensitivity(*cc.MouseSensitivity))
	}
	if cc.Fov > 0 {
		options = append(options, camera.WithFov(cc.Fov))
	}
	if cc.Near > 0 {
		options = append(options, camera.WithNear(cc.Near))
	}
	if cc.Far > 0 {
		options = append(options, camera.WithFar(cc.Far))
	}
	if c.Window.Width > 0 && c.Window.Height > 0 {
		options = append(options, camera.WithViewport(float32(c.Window.Width), float32(c.Window.Height)))
	}
	return options, nil
}

// ControllerOptions converts the controller section into builder options.
//
// Returns:
//   - []camera.FlyControllerOption: the options
//   - error: an error if a key or movement name is invalid
func (c Config) ControllerOptions() ([]camera.FlyControllerOption, error) {
	cc := c.Controller
	var options []camera.FlyControllerOption

	if cc.ConstrainPitch != nil {
		options = append(options, camera.WithConstrainPitch(*cc.ConstrainPitch))
	}

	if cc.ToggleKey != "" {
		code, err := cc.toggleKeyCode()
		if err != nil {
			return nil, err
		}
		options = append(options, camera.WithToggleKey(code))
	}

	bindings, err := cc.bindings()
	if err != nil {
		return nil, err
	}
	if len(bindings) > 0 {
		options = append(options, camera.WithoutDefaultBindings())
		// sorted for a deterministic option order
		codes := make([]uint32, 0, len(bindings))
		for code := range bindings {
			codes = append(codes, code)
		}
		sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
		for _, code := range codes {
			options = append(options, camera.WithKeyBinding(code, bindings[code]))
		}
	}
	return options, nil
}

// WindowOptions converts the window section into builder options.
//
// Returns:
//   - []window.WindowBuilderOption: the options
func (c Config) WindowOptions() []window.WindowBuilderOption {
	wc := c.Window
	var options []window.WindowBuilderOption
	if wc.Title != "" {
		options = append(options, window.WithTitle(wc.Title))
	}
	if wc.Width > 0 {
		options = append(options, window.WithWidth(wc.Width))
	}
	if wc.Height > 0 {
		options = append(options, window.WithHeight(wc.Height))
	}
	if wc.CaptureCursor != nil {
		options = append(options, window.WithCursorCaptured(*wc.CaptureCursor))
	}
	if wc.MinSize != nil || wc.MaxSize != nil {
		// zero keeps the window's own limit for that edge
		minSize, maxSize := common.Coalesce(wc.MinSize, &[2]int{}), common.Coalesce(wc.MaxSize, &[2]int{})
		options = append(options, window.WithSizeLimits(minSize[0], minSize[1], maxSize[0], maxSize[1]))
	}
	return options
}

// RendererOptions converts the renderer section into builder options.
//
// Returns:
//   - []renderer.RendererBuilderOption: the options
//   - error: an error if the present mode or sample count is invalid
func (c Config) RendererOptions() ([]renderer.RendererBuilderOption, error) {
	rc := c.Renderer
	var options []renderer.RendererBuilderOption
	if rc.PresentMode != "" {
		mode, err := parsePresentMode(rc.PresentMode)
		if err != nil {
			return nil, err
		}
		options = append(options, renderer.WithPresentMode(mode))
	}
	if rc.MSAA != 0 {
		msaa, err := parseMSAA(rc.MSAA)
		if err != nil {
			return nil, err
		}
		options = append(options, renderer.WithMSAA(msaa))
	}
	if rc.ClearColor != nil {
		cc := *rc.ClearColor
		options = append(options, renderer.WithClearColor(cc[0], cc[1], cc[2], cc[3]))
	}
	return options, nil
}

// EngineOptions converts the engine section into builder options.
//
// Returns:
//   - []engine.EngineBuilderOption: the options
func (c Config) EngineOptions() []engine.EngineBuilderOption {
	return []engine.EngineBuilderOption{
		engine.WithProfiling(c.Engine.Profiling),
		engine.WithRenderFrameLimit(c.Engine.FrameLimit),
	}
}

func (cc ControllerConfig) toggleKeyCode() (uint32, error) {
	switch strings.ToLower(strings.TrimSpace(cc.ToggleKey)) {
	case "":
		return common.KeyC, nil
	case "none":
		return 0, nil
	}
	code, ok := common.KeyByName(cc.ToggleKey)
	if !ok {
		return 0, fmt.Errorf("unknown toggle key %q", cc.ToggleKey)
	}
	return code, nil
}

func (cc ControllerConfig) bindings() (map[uint32]camera.CameraMovement, error) {
	out := make(map[uint32]camera.CameraMovement, len(cc.Bindings))
	for key, move := range cc.Bindings {
		code, ok := common.KeyByName(key)
		if !ok {
			return nil, fmt.Errorf("unknown key %q in bindings", key)
		}
		m, err := parseMovement(move)
		if err != nil {
			return nil, fmt.Errorf("binding %q: %w", key, err)
		}
		out[code] = m
	}
	return out, nil
}

func parseMovement(name string) (camera.CameraMovement, error) {
	for _, m := range []camera.CameraMovement{camera.MovementForward, camera.MovementBackward, camera.MovementLeft, camera.MovementRight} {
		if strings.EqualFold(name, m.String()) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown movement %q", name)
}

func parseViewStrategy(name string) (camera.ViewStrategy, error) {
	if name == "" {
		return camera.ViewBasis, nil
	}
	for _, s := range []camera.ViewStrategy{camera.ViewBasis, camera.ViewRowMajor, camera.ViewLookAt} {
		if strings.EqualFold(name, s.String()) {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown view strategy %q", name)
}

func parseOrientationMode(name string) (camera.OrientationMode, error) {
	if name == "" {
		return camera.OrientationQuaternion, nil
	}
	for _, m := range []camera.OrientationMode{camera.OrientationQuaternion, camera.OrientationEuler} {
		if strings.EqualFold(name, m.String()) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown orientation mode %q", name)
}

func parseProjectionConvention(name string) (camera.ProjectionConvention, error) {
	if name == "" {
		return camera.ProjectionRightHanded, nil
	}
	for _, p := range []camera.ProjectionConvention{camera.ProjectionRightHanded, camera.ProjectionForwardZ} {
		if strings.EqualFold(name, p.String()) {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown projection convention %q", name)
}

func parsePresentMode(name string) (renderer.PresentMode, error) {
	if name == "" {
		return renderer.PresentModeVSync, nil
	}
	for _, m := range []renderer.PresentMode{renderer.PresentModeVSync, renderer.PresentModeUncapped} {
		if strings.EqualFold(name, m.String()) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown present mode %q", name)
}

func parseMSAA(samples int) (renderer.MSAASampleCount, error) {
	switch samples {
	case 0, 4:
		return renderer.MSAA4x, nil
	case 1:
		return renderer.MSAAOff, nil
	default:
		return 0, fmt.Errorf("unsupported msaa sample count %d (use 1 or 4)", samples)
	}
}
