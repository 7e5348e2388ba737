package window

import (
	"fmt"
	"runtime"

	"github.com/cogentcore/webgpu/wgpu"
)

// Window provides platform windowing and input event handling.
// Wraps platform-specific window implementations with a common interface.
type Window interface {
	// SetUpdateCallback sets the function called each message loop iteration.
	//
	// Parameters:
	//   - callback: function to call (or nil to disable)
	SetUpdateCallback(callback func())

	// SetResizeCallback sets the function called when the window is resized.
	//
	// Parameters:
	//   - callback: function receiving new width and height in pixels
	SetResizeCallback(callback func(width, height int))

	// SetKeyDownCallback sets the callback for key press events. Auto-repeat
	// events are delivered as additional key downs.
	//
	// Parameters:
	//   - callback: function receiving the virtual key code
	SetKeyDownCallback(callback func(keyCode uint32))

	// SetKeyUpCallback sets the callback for key release events.
	//
	// Parameters:
	//   - callback: function receiving the virtual key code
	SetKeyUpCallback(callback func(keyCode uint32))

	// SetMouseButtonDownCallback sets the callback for mouse button presses.
	//
	// Parameters:
	//   - callback: function receiving the button code and cursor position
	SetMouseButtonDownCallback(callback func(button int, x, y float64))

	// SetMouseButtonUpCallback sets the callback for mouse button releases.
	//
	// Parameters:
	//   - callback: function receiving the button code and cursor position
	SetMouseButtonUpCallback(callback func(button int, x, y float64))

	// SetMouseMoveCallback sets the callback for cursor movement. While the
	// cursor is locked the position is virtual and unbounded.
	//
	// Parameters:
	//   - callback: function receiving the cursor x, y position
	SetMouseMoveCallback(callback func(x, y float64))

	// SetCursorEnterCallback sets the callback for the cursor entering or leaving the window.
	//
	// Parameters:
	//   - callback: function receiving true on enter and false on leave
	SetCursorEnterCallback(callback func(entered bool))

	// SetCursorVisible shows or hides the pointer while it is over the window.
	//
	// Parameters:
	//   - visible: false to hide the pointer
	SetCursorVisible(visible bool)

	// SetCursorLocked confines the pointer to the window and reports relative
	// motion. A locked pointer is always hidden.
	//
	// Parameters:
	//   - locked: true to lock the pointer
	SetCursorLocked(locked bool)

	// SurfaceDescriptor returns a wgpu.SurfaceDescriptor suitable for creating a WebGPU surface.
	// The descriptor is platform-appropriate (Windows HWND, X11 Xlib, Wayland, macOS Metal, etc.)
	// and is created by the wgpuglfw bridge from the underlying GLFW window.
	//
	// Returns:
	//   - *wgpu.SurfaceDescriptor: the platform-specific surface descriptor, or nil if window is not initialized
	SurfaceDescriptor() *wgpu.SurfaceDescriptor

	// IsRunning returns true if the window is still active.
	//
	// Returns:
	//   - bool: true if window is running, false if closed
	IsRunning() bool

	// Close closes the window and releases platform resources.
	//
	// Returns:
	//   - error: error if close operation fails
	Close() error

	// ProcessMessages runs the window message loop.
	// Blocks until the window is closed. Calls OnUpdate callback each iteration.
	ProcessMessages()

	// Width returns the current window client area width in pixels.
	//
	// Returns:
	//   - int: width in pixels
	Width() int

	// Height returns the current window client area height in pixels.
	//
	// Returns:
	//   - int: height in pixels
	Height() int
}

// engineWindow is the implementation of the Window interface.
// Holds window configuration, GLFW state, and event callbacks.
type engineWindow struct {
	title string

	// size limits applied during resize
	maxWidth  int
	maxHeight int
	minWidth  int
	minHeight int

	// current client area size in pixels
	width  int
	height int

	// rawMouseMotion requests unaccelerated motion while the cursor is locked, where supported.
	rawMouseMotion bool

	cursorVisible bool
	cursorLocked  bool

	// internalWindow holds the platform-specific window data (glfwWindow).
	internalWindow any

	onUpdate      func()
	onResize      func(width, height int)
	onKeyDown     func(keyCode uint32)
	onKeyUp       func(keyCode uint32)
	onMouseDown   func(button int, x, y float64)
	onMouseUp     func(button int, x, y float64)
	onMouseMove   func(x, y float64)
	onCursorEnter func(entered bool)
}

var _ Window = &engineWindow{}

// NewWindow creates a new Window with the specified options.
// Applies default values first, then each option in order.
//
// Parameters:
//   - options: functional options to configure the window
//
// Returns:
//   - Window: the configured window
func NewWindow(options ...WindowBuilderOption) Window {
	w := &engineWindow{
		title:          "oxy-fps",
		maxWidth:       2560,
		maxHeight:      1440,
		minWidth:       600,
		minHeight:      200,
		width:          1280,
		height:         720,
		rawMouseMotion: true,
		cursorVisible:  true,
	}
	for _, opt := range options {
		opt(w)
	}
	if err := newPlatformWindow(w); err != nil {
		panic(fmt.Sprintf("failed to create platform window: %v", err))
	}
	return w
}

func (w *engineWindow) SetUpdateCallback(callback func()) {
	w.onUpdate = callback
}

func (w *engineWindow) SetResizeCallback(callback func(width, height int)) {
	w.onResize = callback
}

func (w *engineWindow) SetKeyDownCallback(callback func(keyCode uint32)) {
	w.onKeyDown = callback
}

func (w *engineWindow) SetKeyUpCallback(callback func(keyCode uint32)) {
	w.onKeyUp = callback
}

func (w *engineWindow) SetMouseButtonDownCallback(callback func(button int, x, y float64)) {
	w.onMouseDown = callback
}

func (w *engineWindow) SetMouseButtonUpCallback(callback func(button int, x, y float64)) {
	w.onMouseUp = callback
}

func (w *engineWindow) SetMouseMoveCallback(callback func(x, y float64)) {
	w.onMouseMove = callback
}

func (w *engineWindow) SetCursorEnterCallback(callback func(entered bool)) {
	w.onCursorEnter = callback
}

func (w *engineWindow) SetCursorVisible(visible bool) {
	w.cursorVisible = visible
	platformApplyCursorMode(w)
}

func (w *engineWindow) SetCursorLocked(locked bool) {
	w.cursorLocked = locked
	platformApplyCursorMode(w)
}

func (w *engineWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return platformGetSurfaceDescriptor(w)
}

func (w *engineWindow) IsRunning() bool {
	return platformIsRunningCheck(w)
}

func (w *engineWindow) Close() error {
	return platformCloseWindow(w)
}

func (w *engineWindow) ProcessMessages() {
	for w.IsRunning() {
		if succ := platformProcessMessages(w); !succ {
			break
		}

		if w.onUpdate != nil {
			w.onUpdate()
		}

		runtime.Gosched()
	}
}

func (w *engineWindow) Width() int {
	return w.width
}

func (w *engineWindow) Height() int {
	return w.height
}
