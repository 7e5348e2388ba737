package player

import (
	"github.com/Carmen-Shannon/oxy-fps/common"
	"github.com/Carmen-Shannon/oxy-fps/engine/camera"
	"github.com/go-gl/mathgl/mgl32"
)

// PlayerBuilderOption is a functional option for configuring a Player during construction.
type PlayerBuilderOption func(*playerImpl)

// WithPosition sets the player's initial world-space position.
//
// Parameters:
//   - position: the initial position
//
// Returns:
//   - PlayerBuilderOption: functional option to set the position
func WithPosition(position mgl32.Vec3) PlayerBuilderOption {
	return func(p *playerImpl) {
		p.position = position
	}
}

// WithRotation sets the player's initial rotation.
//
// Parameters:
//   - rotation: the initial rotation
//
// Returns:
//   - PlayerBuilderOption: functional option to set the rotation
func WithRotation(rotation mgl32.Quat) PlayerBuilderOption {
	return func(p *playerImpl) {
		p.rotation = rotation
	}
}

// WithYawPitch sets the player's initial rotation from yaw and pitch angles in radians.
//
// Parameters:
//   - yaw: rotation about the world up axis
//   - pitch: rotation about the local right axis
//
// Returns:
//   - PlayerBuilderOption: functional option to set the rotation
func WithYawPitch(yaw, pitch float32) PlayerBuilderOption {
	return func(p *playerImpl) {
		p.rotation = common.QuatFromEulerYXZ(yaw, pitch, 0)
	}
}

// WithSensitivity sets the (yaw, pitch) mouse gain.
//
// Parameters:
//   - sensitivity: yaw gain in X, pitch gain in Y
//
// Returns:
//   - PlayerBuilderOption: functional option to set the sensitivity
func WithSensitivity(sensitivity mgl32.Vec2) PlayerBuilderOption {
	return func(p *playerImpl) {
		p.sensitivity = sensitivity
	}
}

// WithWorldModelCamera attaches the camera that draws the world model.
//
// Parameters:
//   - c: the camera
//
// Returns:
//   - PlayerBuilderOption: functional option to attach the camera
func WithWorldModelCamera(c camera.Camera) PlayerBuilderOption {
	return func(p *playerImpl) {
		p.worldModelCamera = c
	}
}

// WithViewModelCamera attaches the camera that draws the view model on top of the world.
//
// Parameters:
//   - c: the camera
//
// Returns:
//   - PlayerBuilderOption: functional option to attach the camera
func WithViewModelCamera(c camera.Camera) PlayerBuilderOption {
	return func(p *playerImpl) {
		p.viewModelCamera = c
	}
}
