package input

import "github.com/go-gl/mathgl/mgl32"

// Click is a completed press-and-release of a mouse button.
type Click struct {
	// Button is the mouse button code (see common.MouseButton*).
	Button int
	// X, Y is the cursor position at release, in window coordinates.
	X, Y float32
}

// Snapshot is the read-only input state of one frame. It is produced by a
// Tracker and must not be retained past the frame it was taken in.
type Snapshot struct {
	pressed      map[uint32]bool
	justPressed  map[uint32]bool
	justReleased map[uint32]bool

	mousePressed      map[int]bool
	mouseJustPressed  map[int]bool
	mouseJustReleased map[int]bool

	mouseDelta   mgl32.Vec2
	cursor       mgl32.Vec2
	cursorInside bool
	clicks       []Click
}

// Pressed reports whether key is held down this frame.
func (s Snapshot) Pressed(key uint32) bool {
	return s.pressed[key]
}

// JustPressed reports whether key went down during this frame.
func (s Snapshot) JustPressed(key uint32) bool {
	return s.justPressed[key]
}

// JustReleased reports whether key went up during this frame.
func (s Snapshot) JustReleased(key uint32) bool {
	return s.justReleased[key]
}

// MousePressed reports whether the mouse button is held down this frame.
func (s Snapshot) MousePressed(button int) bool {
	return s.mousePressed[button]
}

// MouseJustPressed reports whether the mouse button went down during this frame.
func (s Snapshot) MouseJustPressed(button int) bool {
	return s.mouseJustPressed[button]
}

// MouseJustReleased reports whether the mouse button went up during this frame.
func (s Snapshot) MouseJustReleased(button int) bool {
	return s.mouseJustReleased[button]
}

// MouseDelta returns the pointer motion accumulated since the previous frame.
func (s Snapshot) MouseDelta() mgl32.Vec2 {
	return s.mouseDelta
}

// Cursor returns the last known cursor position and whether the cursor is inside the window.
func (s Snapshot) Cursor() (mgl32.Vec2, bool) {
	return s.cursor, s.cursorInside
}

// Clicks returns the click events completed during this frame in arrival order.
func (s Snapshot) Clicks() []Click {
	return s.clicks
}

// SnapshotBuilderOption configures a synthetic Snapshot. Used by hosts that poll
// input from a source other than a Tracker, and by tests.
type SnapshotBuilderOption func(*Snapshot)

// NewSnapshot builds a Snapshot from the given options.
//
// Parameters:
//   - options: functional options describing the input state
//
// Returns:
//   - Snapshot: the snapshot
func NewSnapshot(options ...SnapshotBuilderOption) Snapshot {
	s := Snapshot{
		pressed:           make(map[uint32]bool),
		justPressed:       make(map[uint32]bool),
		justReleased:      make(map[uint32]bool),
		mousePressed:      make(map[int]bool),
		mouseJustPressed:  make(map[int]bool),
		mouseJustReleased: make(map[int]bool),
	}
	for _, option := range options {
		option(&s)
	}
	return s
}

// WithPressed marks keys as held.
func WithPressed(keys ...uint32) SnapshotBuilderOption {
	return func(s *Snapshot) {
		for _, k := range keys {
			s.pressed[k] = true
		}
	}
}

// WithJustPressed marks keys as held and pressed this frame.
func WithJustPressed(keys ...uint32) SnapshotBuilderOption {
	return func(s *Snapshot) {
		for _, k := range keys {
			s.pressed[k] = true
			s.justPressed[k] = true
		}
	}
}

// WithJustReleased marks keys as released this frame.
func WithJustReleased(keys ...uint32) SnapshotBuilderOption {
	return func(s *Snapshot) {
		for _, k := range keys {
			s.justReleased[k] = true
		}
	}
}

// WithMouseJustPressed marks mouse buttons as held and pressed this frame.
func WithMouseJustPressed(buttons ...int) SnapshotBuilderOption {
	return func(s *Snapshot) {
		for _, b := range buttons {
			s.mousePressed[b] = true
			s.mouseJustPressed[b] = true
		}
	}
}

// WithMouseDelta sets the accumulated pointer motion.
func WithMouseDelta(dx, dy float32) SnapshotBuilderOption {
	return func(s *Snapshot) {
		s.mouseDelta = mgl32.Vec2{dx, dy}
	}
}

// WithClicks appends completed click events.
func WithClicks(clicks ...Click) SnapshotBuilderOption {
	return func(s *Snapshot) {
		s.clicks = append(s.clicks, clicks...)
	}
}
