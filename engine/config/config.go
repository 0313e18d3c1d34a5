package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Carmen-Shannon/oxy-flycam/common"
	"github.com/Carmen-Shannon/oxy-flycam/engine/camera"
	"github.com/Carmen-Shannon/oxy-flycam/engine/window"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format identifies the encoding of a configuration file.
type Format int

const (
	// FormatTOML decodes with go-toml.
	FormatTOML Format = iota

	// FormatYAML decodes with yaml.v3.
	FormatYAML
)

// Config is the file representation of a flycam session.
// Zero values mean "use the default"; pointer fields distinguish an explicit zero or false.
type Config struct {
	Window     WindowConfig     `toml:"window" yaml:"window"`
	Camera     CameraConfig     `toml:"camera" yaml:"camera"`
	Controller ControllerConfig `toml:"controller" yaml:"controller"`
	Renderer   RendererConfig   `toml:"renderer" yaml:"renderer"`
	Engine     EngineConfig     `toml:"engine" yaml:"engine"`
}

// WindowConfig configures the platform window.
type WindowConfig struct {
	Title         string  `toml:"title" yaml:"title"`
	Width         int     `toml:"width" yaml:"width"`
	Height        int     `toml:"height" yaml:"height"`
	CaptureCursor *bool   `toml:"capture_cursor" yaml:"capture_cursor"`
	MinSize       *[2]int `toml:"min_size" yaml:"min_size"`
	MaxSize       *[2]int `toml:"max_size" yaml:"max_size"`
}

// CameraConfig configures the initial camera pose and its tunables.
type CameraConfig struct {
	Position         *[3]float32 `toml:"position" yaml:"position"`
	Up               *[3]float32 `toml:"up" yaml:"up"`
	Direction        *[3]float32 `toml:"direction" yaml:"direction"`
	MovementSpeed    *float32    `toml:"movement_speed" yaml:"movement_speed"`
	MouseSensitivity *float32    `toml:"mouse_sensitivity" yaml:"mouse_sensitivity"`
	Fov              float32     `toml:"fov" yaml:"fov"`
	Near             float32     `toml:"near" yaml:"near"`
	Far              float32     `toml:"far" yaml:"far"`
	View             string      `toml:"view" yaml:"view"`
	Orientation      string      `toml:"orientation" yaml:"orientation"`
	Projection       string      `toml:"projection" yaml:"projection"`
}

// ControllerConfig configures the keyboard and mouse controller.
type ControllerConfig struct {
	ConstrainPitch *bool `toml:"constrain_pitch" yaml:"constrain_pitch"`
	// ToggleKey names the key flipping the pitch clamp; "none" disables it.
	ToggleKey string `toml:"toggle_key" yaml:"toggle_key"`
	// Bindings maps key names to movements and replaces the default layout when set.
	Bindings map[string]string `toml:"bindings" yaml:"bindings"`
}

// RendererConfig configures presentation.
type RendererConfig struct {
	PresentMode string      `toml:"present_mode" yaml:"present_mode"`
	MSAA        int         `toml:"msaa" yaml:"msaa"`
	ClearColor  *[4]float64 `toml:"clear_color" yaml:"clear_color"`
}

// EngineConfig configures the frame loop.
type EngineConfig struct {
	FrameLimit float64 `toml:"frame_limit" yaml:"frame_limit"`
	Profiling  bool    `toml:"profiling" yaml:"profiling"`
}

// Default returns the configuration used when no file is given. Its initial pose matches
// the classic tutorial scene: eye at (0, 0, 3) looking toward the origin.
//
// Returns:
//   - Config: the default configuration
func Default() Config {
	return Config{
		Window: WindowConfig{
			Title:   "oxy-flycam",
			Width:   int(camera.DefaultWidth),
			Height:  int(camera.DefaultHeight),
			MinSize: &[2]int{window.DefaultMinWidth, window.DefaultMinHeight},
			MaxSize: &[2]int{window.DefaultMaxWidth, window.DefaultMaxHeight},
		},
		Camera: CameraConfig{
			Position:         &[3]float32{0, 0, 3},
			Up:               &[3]float32{0, 1, 0},
			Direction:        &[3]float32{0, 0, 1},
			MovementSpeed:    ptr(camera.DefaultMovementSpeed),
			MouseSensitivity: ptr(camera.DefaultMouseSensitivity),
			Fov:              camera.DefaultFov,
			Near:             camera.DefaultNear,
			Far:              camera.DefaultFar,
			View:             camera.ViewBasis.String(),
			Orientation:      camera.OrientationQuaternion.String(),
			Projection:       camera.ProjectionRightHanded.String(),
		},
		Controller: ControllerConfig{
			ToggleKey: "C",
		},
		Renderer: RendererConfig{
			PresentMode: "vsync",
			MSAA:        4,
			ClearColor:  &[4]float64{0.2, 0.3, 0.3, 1.0},
		},
	}
}

// Load reads a configuration file, choosing the decoder by extension
// (.toml, .yaml, .yml), and layers it over Default.
//
// Parameters:
//   - path: the configuration file path
//
// Returns:
//   - Config: the merged and validated configuration
//   - error: an error if the file cannot be read, decoded, or validated
func Load(path string) (Config, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return Config{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %q: %w", path, err)
	}
	cfg, err := Parse(data, format)
	if err != nil {
		return Config{}, fmt.Errorf("config %q: %w", path, err)
	}
	return cfg, nil
}

// FormatFromPath maps a file extension to a Format.
//
// Parameters:
//   - path: the configuration file path
//
// Returns:
//   - Format: the detected format
//   - error: an error if the extension is not supported
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return 0, fmt.Errorf("unsupported config extension %q", filepath.Ext(path))
	}
}

// Parse decodes data in the given format, rejecting unknown keys, then layers the
// result over Default and validates it.
//
// Parameters:
//   - data: the encoded configuration
//   - format: the encoding of data
//
// Returns:
//   - Config: the merged and validated configuration
//   - error: an error if decoding or validation fails
func Parse(data []byte, format Format) (Config, error) {
	var file Config
	switch format {
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&file); err != nil {
			var strict *toml.StrictMissingError
			if errors.As(err, &strict) {
				return Config{}, fmt.Errorf("unknown config keys: %s", strict.String())
			}
			return Config{}, fmt.Errorf("failed to decode toml: %w", err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		// An empty document decodes as io.EOF; treat it as "all defaults".
		if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
			return Config{}, fmt.Errorf("failed to decode yaml: %w", err)
		}
	default:
		return Config{}, fmt.Errorf("unknown config format %d", format)
	}

	cfg := file.withDefaults(Default())
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// withDefaults fills every unset field of c from d.
func (c Config) withDefaults(d Config) Config {
	out := c

	out.Window.Title = common.Coalesce(c.Window.Title, d.Window.Title)
	out.Window.Width = common.Coalesce(c.Window.Width, d.Window.Width)
	out.Window.Height = common.Coalesce(c.Window.Height, d.Window.Height)
	out.Window.CaptureCursor = common.Coalesce(c.Window.CaptureCursor, d.Window.CaptureCursor)
	out.Window.MinSize = common.Coalesce(c.Window.MinSize, d.Window.MinSize)
	out.Window.MaxSize = common.Coalesce(c.Window.MaxSize, d.Window.MaxSize)

	out.Camera.Position = common.Coalesce(c.Camera.Position, d.Camera.Position)
	out.Camera.Up = common.Coalesce(c.Camera.Up, d.Camera.Up)
	out.Camera.Direction = common.Coalesce(c.Camera.Direction, d.Camera.Direction)
	out.Camera.MovementSpeed = common.Coalesce(c.Camera.MovementSpeed, d.Camera.MovementSpeed)
	out.Camera.MouseSensitivity = common.Coalesce(c.Camera.MouseSensitivity, d.Camera.MouseSensitivity)
	out.Camera.Fov = common.Coalesce(c.Camera.Fov, d.Camera.Fov)
	out.Camera.Near = common.Coalesce(c.Camera.Near, d.Camera.Near)
	out.Camera.Far = common.Coalesce(c.Camera.Far, d.Camera.Far)
	out.Camera.View = common.Coalesce(c.Camera.View, d.Camera.View)
	out.Camera.Orientation = common.Coalesce(c.Camera.Orientation, d.Camera.Orientation)
	out.Camera.Projection = common.Coalesce(c.Camera.Projection, d.Camera.Projection)

	out.Controller.ConstrainPitch = common.Coalesce(c.Controller.ConstrainPitch, d.Controller.ConstrainPitch)
	out.Controller.ToggleKey = common.Coalesce(c.Controller.ToggleKey, d.Controller.ToggleKey)
	if len(c.Controller.Bindings) == 0 {
		out.Controller.Bindings = d.Controller.Bindings
	}

	out.Renderer.PresentMode = common.Coalesce(c.Renderer.PresentMode, d.Renderer.PresentMode)
	out.Renderer.MSAA = common.Coalesce(c.Renderer.MSAA, d.Renderer.MSAA)
	out.Renderer.ClearColor = common.Coalesce(c.Renderer.ClearColor, d.Renderer.ClearColor)

	out.Engine.FrameLimit = common.Coalesce(c.Engine.FrameLimit, d.Engine.FrameLimit)
	out.Engine.Profiling = c.Engine.Profiling || d.Engine.Profiling

	return out
}

// Validate checks ranges and enumerated names.
//
// Returns:
//   - error: the first problem found, or nil
func (c Config) Validate() error {
	if c.Window.Width < 0 || c.Window.Height < 0 {
		return fmt.Errorf("window size must not be negative, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if err := c.Window.validateSizeLimits(); err != nil {
		return err
	}
	if c.Camera.Near <= 0 {
		return fmt.Errorf("camera near plane must be positive, got %g", c.Camera.Near)
	}
	if c.Camera.Far <= c.Camera.Near {
		return fmt.Errorf("camera far plane %g must be beyond near plane %g", c.Camera.Far, c.Camera.Near)
	}
	if c.Camera.Fov <= 0 || c.Camera.Fov >= 180 {
		return fmt.Errorf("camera fov must be in (0, 180) degrees, got %g", c.Camera.Fov)
	}
	for name, v := range map[string]*float32{"movement speed": c.Camera.MovementSpeed, "mouse sensitivity": c.Camera.MouseSensitivity} {
		if v != nil && *v < 0 {
			return fmt.Errorf("camera %s must not be negative, got %g", name, *v)
		}
	}
	for name, v := range map[string]*[3]float32{"up": c.Camera.Up, "direction": c.Camera.Direction} {
		if v != nil && *v == [3]float32{} {
			return fmt.Errorf("camera %s vector must not be zero", name)
		}
	}
	if _, err := parseViewStrategy(c.Camera.View); err != nil {
		return err
	}
	if _, err := parseOrientationMode(c.Camera.Orientation); err != nil {
		return err
	}
	if _, err := parseProjectionConvention(c.Camera.Projection); err != nil {
		return err
	}
	if _, err := c.Controller.toggleKeyCode(); err != nil {
		return err
	}
	if _, err := c.Controller.bindings(); err != nil {
		return err
	}
	if _, err := parsePresentMode(c.Renderer.PresentMode); err != nil {
		return err
	}
	if _, err := parseMSAA(c.Renderer.MSAA); err != nil {
		return err
	}
	if c.Engine.FrameLimit < 0 {
		return fmt.Errorf("frame limit must not be negative, got %g", c.Engine.FrameLimit)
	}
	return nil
}

// validateSizeLimits checks that the resize limits are positive and ordered.
func (wc WindowConfig) validateSizeLimits() error {
	for name, v := range map[string]*[2]int{"min_size": wc.MinSize, "max_size": wc.MaxSize} {
		if v != nil && (v[0] <= 0 || v[1] <= 0) {
			return fmt.Errorf("window %s must be positive, got %dx%d", name, v[0], v[1])
		}
	}
	if wc.MinSize != nil && wc.MaxSize != nil && (wc.MinSize[0] > wc.MaxSize[0] || wc.MinSize[1] > wc.MaxSize[1]) {
		return fmt.Errorf("window min_size %dx%d exceeds max_size %dx%d",
			wc.MinSize[0], wc.MinSize[1], wc.MaxSize[0], wc.MaxSize[1])
	}
	return nil
}

func ptr[T any](v T) *T {
	return &v
}
