package player

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-fps/common"
	"github.com/Carmen-Shannon/oxy-fps/engine/camera"
	"github.com/go-gl/mathgl/mgl32"
)

// DefaultSensitivity is the default (yaw, pitch) gain applied to mouse motion, in radians per unit.
var DefaultSensitivity = mgl32.Vec2{0.003, 0.002}

type playerImpl struct {
	position    mgl32.Vec3
	rotation    mgl32.Quat
	sensitivity mgl32.Vec2

	worldModelCamera camera.Camera
	viewModelCamera  camera.Camera
}

// Player is the first-person controllable entity. It owns its position and
// rotation and exclusively owns its two child cameras: the world-model camera
// that draws the scene and the view-model camera that draws foreground content
// on top of it.
type Player interface {
	// Position returns the player's world-space position.
	//
	// Returns:
	//   - mgl32.Vec3: the position
	Position() mgl32.Vec3

	// SetPosition sets the player's world-space position.
	//
	// Parameters:
	//   - position: the new position
	SetPosition(position mgl32.Vec3)

	// Rotation returns the player's world-space rotation.
	//
	// Returns:
	//   - mgl32.Quat: the rotation
	Rotation() mgl32.Quat

	// SetRotation sets the player's world-space rotation.
	//
	// Parameters:
	//   - rotation: the new rotation
	SetRotation(rotation mgl32.Quat)

	// Sensitivity returns the (yaw, pitch) mouse gain.
	//
	// Returns:
	//   - mgl32.Vec2: yaw gain in X, pitch gain in Y
	Sensitivity() mgl32.Vec2

	// WorldModelCamera returns the camera drawing the world model, or nil if the
	// player was built without one.
	WorldModelCamera() camera.Camera

	// ViewModelCamera returns the camera drawing the view model, or nil if the
	// player was built without one.
	ViewModelCamera() camera.Camera

	// Cameras returns the player's cameras in draw order.
	Cameras() []camera.Camera

	// UpdateCameras recomputes both cameras' matrices from the player's current transform.
	UpdateCameras()
}

var _ Player = &playerImpl{}

// NewPlayer creates a Player at the origin with identity rotation and the default
// sensitivity. Child cameras are attached with WithWorldModelCamera and
// WithViewModelCamera.
//
// The view-model camera must draw after the world-model camera and the two must
// not share a render layer; a violation is reported as an error.
//
// Parameters:
//   - options: functional options to configure the player
//
// Returns:
//   - Player: the newly created player
//   - error: error if the camera layering is invalid
func NewPlayer(options ...PlayerBuilderOption) (Player, error) {
	p := &playerImpl{
		rotation:    mgl32.QuatIdent(),
		sensitivity: DefaultSensitivity,
	}
	for _, option := range options {
		option(p)
	}

	if err := camera.ValidateLayering(p.worldModelCamera, p.viewModelCamera); err != nil {
		return nil, fmt.Errorf("invalid player cameras: %w", err)
	}
	if p.worldModelCamera != nil && p.viewModelCamera != nil &&
		p.viewModelCamera.Order() <= p.worldModelCamera.Order() {
		return nil, fmt.Errorf("view model camera order %d must be greater than world model camera order %d",
			p.viewModelCamera.Order(), p.worldModelCamera.Order())
	}

	p.UpdateCameras()
	return p, nil
}

// NewDefaultPlayer creates a Player at (0, 1, 0) with a 90° world-model camera on
// the default render layer and a 70° view-model camera on the view-model layer.
//
// Parameters:
//   - aspect: initial viewport aspect ratio for both cameras
//
// Returns:
//   - Player: the newly created player
func NewDefaultPlayer(aspect float32) Player {
	p, err := NewPlayer(
		WithPosition(mgl32.Vec3{0, 1, 0}),
		WithWorldModelCamera(camera.NewCamera(
			camera.WithName("world_model"),
			camera.WithProjection(camera.NewPerspectiveProjection(common.DegToRad(90))),
			camera.WithAspect(aspect),
			camera.WithOrder(0),
			camera.WithLayers(common.Layers(common.DefaultRenderLayer)),
		)),
		WithViewModelCamera(camera.NewCamera(
			camera.WithName("view_model"),
			camera.WithProjection(camera.NewPerspectiveProjection(common.DegToRad(70))),
			camera.WithAspect(aspect),
			camera.WithOrder(1),
			camera.WithLayers(common.Layers(common.ViewModelRenderLayer)),
		)),
	)
	if err != nil {
		panic(fmt.Sprintf("default player construction failed: %v", err))
	}
	return p
}

func (p *playerImpl) Position() mgl32.Vec3 {
	return p.position
}

func (p *playerImpl) SetPosition(position mgl32.Vec3) {
	p.position = position
}

func (p *playerImpl) Rotation() mgl32.Quat {
	return p.rotation
}

func (p *playerImpl) SetRotation(rotation mgl32.Quat) {
	p.rotation = rotation
}

func (p *playerImpl) Sensitivity() mgl32.Vec2 {
	return p.sensitivity
}

func (p *playerImpl) WorldModelCamera() camera.Camera {
	return p.worldModelCamera
}

func (p *playerImpl) ViewModelCamera() camera.Camera {
	return p.viewModelCamera
}

func (p *playerImpl) Cameras() []camera.Camera {
	return camera.SortByOrder([]camera.Camera{p.worldModelCamera, p.viewModelCamera})
}

func (p *playerImpl) UpdateCameras() {
	for _, c := range []camera.Camera{p.worldModelCamera, p.viewModelCamera} {
		if c != nil {
			c.Update(p.position, p.rotation)
		}
	}
}
