package common

import (
	"fmt"
	"strings"
)

// Virtual key codes for cross-platform input handling.
// These values match GLFW key codes which use ASCII values for printable keys.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Key
const (
	KeyW     = 87 // W key (ASCII)
	KeyA     = 65 // A key (ASCII)
	KeyS     = 83 // S key (ASCII)
	KeyD     = 68 // D key (ASCII)
	KeyP     = 80 // P key (ASCII)
	KeySpace = 32 // Spacebar (ASCII)

	KeyEsc   = 256 // Escape key (GLFW)
	KeyRight = 262 // Right arrow (GLFW)
	KeyLeft  = 263 // Left arrow (GLFW)
	KeyDown  = 264 // Down arrow (GLFW)
	KeyUp    = 265 // Up arrow (GLFW)
)

// Additional non-printable keys
const (
	KeyLeftShift  = 340 // Left Shift (GLFW)
	KeyRightShift = 344 // Right Shift (GLFW)
)

// Mouse button codes. These values match GLFW mouse button numbering.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#MouseButton
const (
	MouseButtonLeft   = 0
	MouseButtonRight  = 1
	MouseButtonMiddle = 2
)

var keyNames = map[string]uint32{
	"w":          KeyW,
	"a":          KeyA,
	"s":          KeyS,
	"d":          KeyD,
	"p":          KeyP,
	"space":      KeySpace,
	"escape":     KeyEsc,
	"right":      KeyRight,
	"left":       KeyLeft,
	"down":       KeyDown,
	"up":         KeyUp,
	"leftshift":  KeyLeftShift,
	"rightshift": KeyRightShift,
}

var mouseButtonNames = map[string]int{
	"mouseleft":   MouseButtonLeft,
	"mouseright":  MouseButtonRight,
	"mousemiddle": MouseButtonMiddle,
}

// ParseKey resolves a key binding name (case-insensitive, e.g. "W", "Space",
// "LeftShift", "Up") to its virtual key code.
//
// Parameters:
//   - name: the binding name
//
// Returns:
//   - uint32: the key code
//   - error: error if the name is not a known key
func ParseKey(name string) (uint32, error) {
	code, ok := keyNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("unknown key %q", name)
	}
	return code, nil
}

// ParseMouseButton resolves a mouse button binding name (case-insensitive,
// "MouseLeft", "MouseRight" or "MouseMiddle") to its button code.
//
// Parameters:
//   - name: the binding name
//
// Returns:
//   - int: the mouse button code
//   - error: error if the name is not a known mouse button
func ParseMouseButton(name string) (int, error) {
	button, ok := mouseButtonNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("unknown mouse button %q", name)
	}
	return button, nil
}
