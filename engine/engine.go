package engine

import (
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Carmen-Shannon/oxy-flycam/engine/camera"
	"github.com/Carmen-Shannon/oxy-flycam/engine/profiler"
	"github.com/Carmen-Shannon/oxy-flycam/engine/renderer"
	"github.com/Carmen-Shannon/oxy-flycam/engine/scene"
	"github.com/Carmen-Shannon/oxy-flycam/engine/window"
)

// engine implements the Engine interface.
// Runs input, camera update, and rendering in strict order on the window thread.
type engine struct {
	running  atomic.Bool
	quit     atomic.Bool
	quitOnce sync.Once

	window     window.Window
	renderer   renderer.Renderer
	camera     camera.Camera
	controller camera.FlyController
	scene      scene.Scene

	profiler         *profiler.Profiler
	profilingEnabled bool

	tickCallback   func(deltaTime float32)
	renderCallback func(deltaTime float32)

	renderFrameLimit time.Duration // minimum frame duration; 0 = uncapped

	now       func() time.Time
	sleep     func(time.Duration)
	lastFrame time.Time
}

// Engine is the main entry point for the engine.
// It owns the frame loop: every window message loop iteration dispatches input events,
// advances the camera by the frame delta, then uploads the camera and renders.
type Engine interface {
	// Window returns the underlying window.
	//
	// Returns:
	//   - window.Window: the window instance
	Window() window.Window

	// Renderer returns the renderer, or nil if none was configured.
	Renderer() renderer.Renderer

	// Camera returns the camera driven by the frame loop, or nil if none was configured.
	Camera() camera.Camera

	// Controller returns the input controller, or nil if none was configured.
	Controller() camera.FlyController

	// Scene returns the marker scene synced each frame, or nil if none was configured.
	Scene() scene.Scene

	// SetScene replaces the marker scene. Pass nil to stop syncing markers.
	//
	// Parameters:
	//   - s: the scene to sync before each render pass
	SetScene(s scene.Scene)

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// SetTickCallback registers the function called each frame after input has been
	// applied to the camera and before rendering.
	//
	// Parameters:
	//   - callback: function receiving the frame delta time in seconds
	SetTickCallback(callback func(deltaTime float32))

	// SetRenderCallback registers the function called each frame after the camera uniform
	// upload and before the render pass. Use it to update renderer state such as markers.
	//
	// Parameters:
	//   - callback: function receiving the frame delta time in seconds
	SetRenderCallback(callback func(deltaTime float32))

	// SetRenderFrameLimit sets an optional frame rate cap in frames per second.
	// Pass 0 to uncap the loop (default).
	//
	// Parameters:
	//   - fps: maximum frames per second (0 = uncapped)
	SetRenderFrameLimit(fps float64)

	// Run starts the main engine loop (blocks until the window closes or Quit is called).
	Run()

	// Quit stops the frame loop and closes the window at the start of the next frame.
	// Safe to call multiple times and from any goroutine.
	Quit()
}

// NewEngine creates a new Engine instance with the provided options and wires window input
// into the controller and window resizes into the camera viewport and renderer surface.
//
// Parameters:
//   - options: functional options for engine configuration (window, camera, profiling, etc.)
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		profiler: profiler.NewProfiler(),
		now:      time.Now,
		sleep:    time.Sleep,
	}

	for _, opt := range options {
		opt(e)
	}

	if e.controller != nil && e.camera == nil {
		e.camera = e.controller.Camera()
	}
	if e.scene != nil && e.scene.Camera() == nil {
		e.scene.SetCamera(e.camera)
	}

	if e.window != nil {
		e.window.SetUpdateCallback(e.frame)
		e.window.SetResizeCallback(e.resize)
		if e.controller != nil {
			e.window.SetKeyDownCallback(e.controller.KeyDown)
			e.window.SetKeyUpCallback(e.controller.KeyUp)
			e.window.SetMouseMoveCallback(e.mouseMove)
		}
		if e.camera != nil && e.window.Width() > 0 && e.window.Height() > 0 {
			e.camera.SetViewport(float32(e.window.Width()), float32(e.window.Height()))
		}
	}

	return e
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Renderer() renderer.Renderer {
	return e.renderer
}

func (e *engine) Camera() camera.Camera {
	return e.camera
}

func (e *engine) Controller() camera.FlyController {
	return e.controller
}

func (e *engine) Scene() scene.Scene {
	return e.scene
}

func (e *engine) SetScene(s scene.Scene) {
	e.scene = s
}

func (e *engine) Run() {
	e.running.Store(true)
	e.lastFrame = e.now()
	e.window.ProcessMessages()
	e.running.Store(false)
}

func (e *engine) Quit() {
	e.quitOnce.Do(func() {
		e.quit.Store(true)
	})
}

// mouseMove forwards cursor positions to the controller while the cursor is captured.
// A released cursor resets the controller so recapturing does not produce a jump.
func (e *engine) mouseMove(x, y float64) {
	if !e.window.CursorCaptured() {
		e.controller.ResetMouse()
		return
	}
	e.controller.MouseMove(x, y)
}

// resize keeps the projection aspect ratio and the surface in sync with the framebuffer.
// Zero sizes (minimized window) are ignored.
func (e *engine) resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	if e.camera != nil {
		e.camera.SetViewport(float32(width), float32(height))
	}
	if e.renderer != nil {
		e.renderer.Resize(width, height)
	}
}

// frame runs one iteration of the loop after the window has dispatched pending events:
// controller tick, tick callback, camera upload, render callback, scene sync, render pass, profiler.
func (e *engine) frame() {
	if e.quit.Load() {
		if err := e.window.Close(); err != nil {
			log.Printf("[Engine] failed to close window: %v", err)
		}
		return
	}

	frameStart := e.now()
	dt := float32(frameStart.Sub(e.lastFrame).Seconds())
	e.lastFrame = frameStart

	if e.controller != nil {
		e.controller.Tick(dt)
	}
	if e.tickCallback != nil {
		e.tickCallback(dt)
	}

	e.render(dt)

	if e.profilingEnabled && e.profiler != nil {
		e.profiler.Tick()
	}

	if e.renderFrameLimit > 0 {
		if remaining := e.renderFrameLimit - e.now().Sub(frameStart); remaining > 0 {
			e.sleep(remaining)
		}
	}
}

func (e *engine) render(dt float32) {
	if e.renderer != nil && e.camera != nil {
		e.renderer.UploadCamera(e.camera.Uniform())
	}
	if e.renderCallback != nil {
		e.renderCallback(dt)
	}
	if e.renderer == nil {
		return
	}
	if e.scene != nil && e.scene.Active() {
		if _, err := e.scene.Sync(e.renderer); err != nil {
			log.Printf("[Engine] failed to sync scene %q: %v", e.scene.Name(), err)
		}
	}

	if err := e.renderer.BeginFrame(); err != nil {
		log.Printf("[Engine] skipping frame: %v", err)
		return
	}
	e.renderer.DrawMarkers()
	e.renderer.EndFrame()
	e.renderer.Present()
}

// EnableProfiler enables performance profiling output to the log.
func (e *engine) EnableProfiler() {
	e.profilingEnabled = true
}

// DisableProfiler disables performance profiling output.
func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}

func (e *engine) SetTickCallback(callback func(deltaTime float32)) {
	e.tickCallback = callback
}

func (e *engine) SetRenderCallback(callback func(deltaTime float32)) {
	e.renderCallback = callback
}

// SetRenderFrameLimit sets an optional frame rate cap.
// Pass 0 to uncap the loop.
func (e *engine) SetRenderFrameLimit(fps float64) {
	if fps <= 0 {
		e.renderFrameLimit = 0
		return
	}
	e.renderFrameLimit = time.Duration(float64(time.Second) / fps)
}
