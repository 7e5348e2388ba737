package controller

import (
	"math"

	"github.com/Carmen-Shannon/oxy-fps/common"
)

// Bindings maps logical actions to key and mouse button codes.
type Bindings struct {
	Forward uint32
	Back    uint32
	Left    uint32
	Right   uint32
	Up      uint32
	Down    uint32
	Quit    uint32

	FOVDecrease uint32
	FOVIncrease uint32

	Capture int
	Spawn   int
}

// DefaultBindings returns WASD movement, Space/LeftShift for vertical movement,
// P to quit, Up/Down arrows for field of view and the left mouse button for both
// cursor capture and spawning.
func DefaultBindings() Bindings {
	return Bindings{
		Forward:     common.KeyW,
		Back:        common.KeyS,
		Left:        common.KeyA,
		Right:       common.KeyD,
		Up:          common.KeySpace,
		Down:        common.KeyLeftShift,
		Quit:        common.KeyP,
		FOVDecrease: common.KeyUp,
		FOVIncrease: common.KeyDown,
		Capture:     common.MouseButtonLeft,
		Spawn:       common.MouseButtonLeft,
	}
}

// FOVLimits bounds the world-model camera's vertical field of view. All values are radians.
type FOVLimits struct {
	Min  float32
	Max  float32
	Step float32
}

// DefaultFOVLimits returns [20°, 160°] with a 1° step.
func DefaultFOVLimits() FOVLimits {
	return FOVLimits{
		Min:  common.DegToRad(20),
		Max:  common.DegToRad(160),
		Step: common.DegToRad(1),
	}
}

// PitchLimit is the largest absolute pitch the orientation controller allows.
const PitchLimit = float32(math.Pi/2 - 0.01)
