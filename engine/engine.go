package engine

import (
	"os"
	"time"

	"github.com/Carmen-Shannon/oxy-fps/engine/controller"
	"github.com/Carmen-Shannon/oxy-fps/engine/input"
	"github.com/Carmen-Shannon/oxy-fps/engine/profiler"
	"github.com/Carmen-Shannon/oxy-fps/engine/scene"
	"github.com/Carmen-Shannon/oxy-fps/engine/window"
	"go.uber.org/zap"
)

// engine implements the Engine interface.
// All frame work runs on the window's message loop thread.
type engine struct {
	window     window.Window
	scene      scene.Scene
	controller controller.Controller
	tracker    *input.Tracker
	logger     *zap.Logger

	profiler         *profiler.Profiler
	profilingEnabled bool

	renderCallback   func(frame Frame)
	renderFrameLimit time.Duration // minimum frame duration; 0 = uncapped

	exitFunc    func(code int)
	now         func() time.Time
	sleep       func(d time.Duration)
	traceCursor bool

	frameIndex   uint64
	lastFrame    time.Time
	cursorLocked bool

	surface Surface
}

// Engine is the main entry point for the viewer.
// It drives one frame per window message loop iteration: input snapshot, click
// dispatch, controllers, camera update, then the render handoff.
type Engine interface {
	// Window returns the underlying window, or nil for a headless engine.
	//
	// Returns:
	//   - window.Window: the window instance
	Window() window.Window

	// Scene returns the scene driven by the engine.
	//
	// Returns:
	//   - scene.Scene: the scene
	Scene() scene.Scene

	// Controller returns the player controller.
	//
	// Returns:
	//   - controller.Controller: the controller
	Controller() controller.Controller

	// Tracker returns the input tracker fed by the window callbacks.
	//
	// Returns:
	//   - *input.Tracker: the tracker
	Tracker() *input.Tracker

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// SetRenderCallback registers the function receiving each built frame.
	//
	// Parameters:
	//   - callback: function to call once per frame
	SetRenderCallback(callback func(frame Frame))

	// SetRenderFrameLimit sets an optional frame rate cap in frames per second.
	// Pass 0 to uncap the loop (default).
	//
	// Parameters:
	//   - fps: maximum frames per second (0 = uncapped)
	SetRenderFrameLimit(fps float64)

	// Step runs a single frame. Run calls it from the window's update callback;
	// hosts without a window may call it directly.
	Step()

	// Run starts the window message loop (blocks until the window closes).
	Run()

	// Quit closes the window, ending Run.
	Quit()
}

var _ Engine = &engine{}

// NewEngine creates a new Engine. A scene is required; when no controller is
// given one is built over the scene with default bindings.
//
// Parameters:
//   - options: functional options for engine configuration
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		tracker:  input.NewTracker(),
		logger:   zap.NewNop(),
		exitFunc: os.Exit,
		now:      time.Now,
		sleep:    time.Sleep,
	}

	for _, opt := range options {
		opt(e)
	}

	if e.scene == nil {
		panic("engine requires a scene")
	}
	if e.controller == nil {
		e.controller = controller.NewController(e.scene, e.scene, controller.WithLogger(e.logger))
	}
	if e.profiler == nil {
		e.profiler = profiler.NewProfiler(profiler.WithLogger(e.logger), profiler.WithClock(e.now))
	}

	if e.window != nil {
		e.bindWindow()
		e.surface.Descriptor = e.window.SurfaceDescriptor()
		e.resize(e.window.Width(), e.window.Height())
	}
	return e
}

// bindWindow routes window events into the tracker and the frame loop.
func (e *engine) bindWindow() {
	e.window.SetKeyDownCallback(e.tracker.KeyDown)
	e.window.SetKeyUpCallback(e.tracker.KeyUp)
	e.window.SetMouseButtonDownCallback(e.tracker.MouseDown)
	e.window.SetMouseButtonUpCallback(e.tracker.MouseUp)
	e.window.SetMouseMoveCallback(e.tracker.MouseMove)
	e.window.SetCursorEnterCallback(e.tracker.CursorEnter)
	e.window.SetResizeCallback(e.resize)
	e.window.SetUpdateCallback(e.Step)
}

func (e *engine) resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	e.surface.Width, e.surface.Height = width, height
	e.surface.Resized = true
	aspect := float32(width) / float32(height)
	for _, p := range e.scene.Players() {
		for _, c := range p.Cameras() {
			c.SetAspect(aspect)
		}
	}
	e.logger.Debug("viewport resized", zap.Int("width", width), zap.Int("height", height))
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Scene() scene.Scene {
	return e.scene
}

func (e *engine) Controller() controller.Controller {
	return e.controller
}

func (e *engine) Tracker() *input.Tracker {
	return e.tracker
}

func (e *engine) EnableProfiler() {
	e.profilingEnabled = true
}

func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}

func (e *engine) SetRenderCallback(callback func(frame Frame)) {
	e.renderCallback = callback
}

func (e *engine) SetRenderFrameLimit(fps float64) {
	if fps <= 0 {
		e.renderFrameLimit = 0
		return
	}
	e.renderFrameLimit = time.Duration(float64(time.Second) / fps)
}

func (e *engine) Step() {
	start := e.now()
	var dt float32
	if !e.lastFrame.IsZero() {
		dt = float32(start.Sub(e.lastFrame).Seconds())
	}
	e.lastFrame = start

	snap := e.tracker.Snapshot()
	defer e.tracker.EndFrame()

	for _, click := range snap.Clicks() {
		e.controller.HandleClick(click)
	}

	fx := e.controller.Update(snap, dt)
	if fx.Exit {
		e.logger.Info("exit requested", zap.Uint64("frame", e.frameIndex))
		_ = e.logger.Sync()
		e.exitFunc(0)
		return
	}
	if fx.LockCursor {
		e.lockCursor()
	}

	if p, ok := e.scene.Player(); ok {
		p.UpdateCameras()
	}

	if e.traceCursor {
		if pos, inside := snap.Cursor(); inside {
			e.logger.Debug("cursor position", zap.Float32("x", pos.X()), zap.Float32("y", pos.Y()))
		} else {
			e.logger.Debug("cursor not in window")
		}
	}

	if e.renderCallback != nil {
		frame := BuildFrame(e.scene, e.frameIndex, dt)
		frame.Surface = e.surface
		e.renderCallback(frame)
		e.surface.Resized = false
	}
	e.frameIndex++

	if e.profilingEnabled {
		e.profiler.Tick()
	}

	if e.renderFrameLimit > 0 {
		if remaining := e.renderFrameLimit - e.now().Sub(start); remaining > 0 {
			e.sleep(remaining)
		}
	}
}

func (e *engine) lockCursor() {
	if e.window == nil {
		return
	}
	e.window.SetCursorVisible(false)
	e.window.SetCursorLocked(true)
	if !e.cursorLocked {
		e.logger.Info("cursor captured")
	}
	e.cursorLocked = true
}

func (e *engine) Run() {
	if e.window == nil {
		panic("engine has no window to run")
	}
	e.logger.Info("engine started",
		zap.String("scene", e.scene.Name()),
		zap.Int("objects", e.scene.Count()),
		zap.Int("lights", len(e.scene.Lights())),
	)
	e.window.ProcessMessages()
	e.logger.Info("engine stopped",
		zap.Uint64("frames", e.frameIndex),
		zap.Int("spawned", e.controller.Spawned()),
	)
	_ = e.logger.Sync()
}

func (e *engine) Quit() {
	if e.window == nil {
		return
	}
	if err := e.window.Close(); err != nil {
		e.logger.Warn("failed to close window", zap.Error(err))
	}
}
