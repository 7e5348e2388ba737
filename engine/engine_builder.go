package engine

import (
	"time"

	"github.com/Carmen-Shannon/oxy-fps/engine/controller"
	"github.com/Carmen-Shannon/oxy-fps/engine/input"
	"github.com/Carmen-Shannon/oxy-fps/engine/profiler"
	"github.com/Carmen-Shannon/oxy-fps/engine/scene"
	"github.com/Carmen-Shannon/oxy-fps/engine/window"
	"go.uber.org/zap"
)

// EngineBuilderOption is a functional option for configuring an Engine.
// Use the With* functions to create options that are applied directly to the engine instance.
type EngineBuilderOption func(*engine)

// WithProfiling enables or disables performance profiling output.
//
// Parameters:
//   - enabled: if true, enables performance profiling
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiling(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.profilingEnabled = enabled
	}
}

// WithProfiler replaces the default profiler.
//
// Parameters:
//   - p: the profiler
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiler(p *profiler.Profiler) EngineBuilderOption {
	return func(e *engine) {
		e.profiler = p
	}
}

// WithWindow sets the window whose message loop drives the engine. Without a
// window the engine is headless and frames are run with Step.
//
// Parameters:
//   - w: a configured Window instance
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithWindow(w window.Window) EngineBuilderOption {
	return func(e *engine) {
		e.window = w
	}
}

// WithScene sets the scene driven by the engine.
//
// Parameters:
//   - s: the Scene
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithScene(s scene.Scene) EngineBuilderOption {
	return func(e *engine) {
		e.scene = s
	}
}

// WithController sets the player controller.
//
// Parameters:
//   - c: the Controller
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithController(c controller.Controller) EngineBuilderOption {
	return func(e *engine) {
		e.controller = c
	}
}

// WithTracker sets the input tracker, mainly so tests can feed input directly.
//
// Parameters:
//   - t: the tracker
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithTracker(t *input.Tracker) EngineBuilderOption {
	return func(e *engine) {
		if t != nil {
			e.tracker = t
		}
	}
}

// WithLogger sets the engine logger.
//
// Parameters:
//   - logger: the logger (nil keeps the no-op logger)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithLogger(logger *zap.Logger) EngineBuilderOption {
	return func(e *engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithRenderCallback registers the function receiving each built frame.
//
// Parameters:
//   - callback: function to call once per frame
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithRenderCallback(callback func(frame Frame)) EngineBuilderOption {
	return func(e *engine) {
		e.renderCallback = callback
	}
}

// WithRenderFrameLimit sets an optional frame rate cap in frames per second.
// Pass 0 to uncap the loop (default).
//
// Parameters:
//   - fps: maximum frames per second (0 = uncapped)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithRenderFrameLimit(fps float64) EngineBuilderOption {
	return func(e *engine) {
		e.SetRenderFrameLimit(fps)
	}
}

// WithExitFunc replaces os.Exit as the quit action.
//
// Parameters:
//   - exit: called with the process exit code when quit is requested
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithExitFunc(exit func(code int)) EngineBuilderOption {
	return func(e *engine) {
		if exit != nil {
			e.exitFunc = exit
		}
	}
}

// WithClock replaces the wall clock and sleep used for frame timing.
//
// Parameters:
//   - now: returns the current time
//   - sleep: blocks for the given duration
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithClock(now func() time.Time, sleep func(d time.Duration)) EngineBuilderOption {
	return func(e *engine) {
		if now != nil {
			e.now = now
		}
		if sleep != nil {
			e.sleep = sleep
		}
	}
}

// WithCursorTrace enables a debug log of the cursor position every frame.
//
// Parameters:
//   - enabled: true to trace the cursor
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithCursorTrace(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.traceCursor = enabled
	}
}
