package input

import (
	"maps"

	"github.com/go-gl/mathgl/mgl32"
)

// Tracker accumulates raw window events between frames and exposes them as a
// per-frame Snapshot. Window callbacks feed it; the frame loop calls Snapshot
// once per frame and EndFrame after all controllers have run.
//
// A key pressed and released between two snapshots is reported as just pressed
// and just released but not pressed, so held-key consumers never see the tap.
//
// Tracker is not safe for concurrent use. Window callbacks and the frame loop
// run on the same (main) thread.
type Tracker struct {
	pressed      map[uint32]bool
	justPressed  map[uint32]bool
	justReleased map[uint32]bool

	mousePressed      map[int]bool
	mouseJustPressed  map[int]bool
	mouseJustReleased map[int]bool

	mouseDelta   mgl32.Vec2
	cursor       mgl32.Vec2
	hasCursor    bool
	cursorInside bool
	clicks       []Click
}

// NewTracker creates an empty Tracker.
//
// Returns:
//   - *Tracker: the tracker
func NewTracker() *Tracker {
	return &Tracker{
		pressed:           make(map[uint32]bool),
		justPressed:       make(map[uint32]bool),
		justReleased:      make(map[uint32]bool),
		mousePressed:      make(map[int]bool),
		mouseJustPressed:  make(map[int]bool),
		mouseJustReleased: make(map[int]bool),
	}
}

// KeyDown records a key press. Repeated presses of a key that is already down
// (OS key repeat) do not produce a new press edge.
//
// Parameters:
//   - key: the virtual key code
func (t *Tracker) KeyDown(key uint32) {
	if t.pressed[key] {
		return
	}
	t.pressed[key] = true
	t.justPressed[key] = true
}

// KeyUp records a key release.
//
// Parameters:
//   - key: the virtual key code
func (t *Tracker) KeyUp(key uint32) {
	if !t.pressed[key] {
		return
	}
	delete(t.pressed, key)
	t.justReleased[key] = true
}

// MouseDown records a mouse button press.
//
// Parameters:
//   - button: the mouse button code
//   - x, y: cursor position in window coordinates
func (t *Tracker) MouseDown(button int, x, y float64) {
	if t.mousePressed[button] {
		return
	}
	t.mousePressed[button] = true
	t.mouseJustPressed[button] = true
}

// MouseUp records a mouse button release. Releasing a button that was down
// completes a Click.
//
// Parameters:
//   - button: the mouse button code
//   - x, y: cursor position in window coordinates
func (t *Tracker) MouseUp(button int, x, y float64) {
	if !t.mousePressed[button] {
		return
	}
	delete(t.mousePressed, button)
	t.mouseJustReleased[button] = true
	t.clicks = append(t.clicks, Click{Button: button, X: float32(x), Y: float32(y)})
}

// MouseMove records a cursor position and accumulates the motion since the
// previous position. The first position after the cursor enters the window
// only establishes the reference point.
//
// Parameters:
//   - x, y: cursor position in window coordinates
func (t *Tracker) MouseMove(x, y float64) {
	pos := mgl32.Vec2{float32(x), float32(y)}
	if t.hasCursor {
		t.mouseDelta = t.mouseDelta.Add(pos.Sub(t.cursor))
	}
	t.cursor = pos
	t.hasCursor = true
	t.cursorInside = true
}

// CursorEnter records the cursor entering or leaving the window.
//
// Parameters:
//   - entered: true if the cursor entered the window
func (t *Tracker) CursorEnter(entered bool) {
	t.cursorInside = entered
	if !entered {
		t.hasCursor = false
	}
}

// Snapshot returns a copy of the current frame's input state.
//
// Returns:
//   - Snapshot: the frame snapshot
func (t *Tracker) Snapshot() Snapshot {
	clicks := make([]Click, len(t.clicks))
	copy(clicks, t.clicks)
	return Snapshot{
		pressed:           maps.Clone(t.pressed),
		justPressed:       maps.Clone(t.justPressed),
		justReleased:      maps.Clone(t.justReleased),
		mousePressed:      maps.Clone(t.mousePressed),
		mouseJustPressed:  maps.Clone(t.mouseJustPressed),
		mouseJustReleased: maps.Clone(t.mouseJustReleased),
		mouseDelta:        t.mouseDelta,
		cursor:            t.cursor,
		cursorInside:      t.cursorInside,
		clicks:            clicks,
	}
}

// EndFrame clears the per-frame edges, click queue and accumulated motion.
// Held keys and buttons persist.
func (t *Tracker) EndFrame() {
	clear(t.justPressed)
	clear(t.justReleased)
	clear(t.mouseJustPressed)
	clear(t.mouseJustReleased)
	t.mouseDelta = mgl32.Vec2{}
	t.clicks = t.clicks[:0]
}
