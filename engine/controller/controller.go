package controller

import (
	"github.com/Carmen-Shannon/oxy-fps/engine/game_object"
	"github.com/Carmen-Shannon/oxy-fps/engine/input"
	"github.com/Carmen-Shannon/oxy-fps/engine/player"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// Effects are the host-side actions requested by a frame's controllers.
type Effects struct {
	// Exit asks the host to terminate the process immediately.
	Exit bool
	// LockCursor asks the host to hide the pointer and lock it to the window.
	LockCursor bool
}

// PlayerQuery resolves the scene's single controllable player.
type PlayerQuery interface {
	// Player returns the player when exactly one exists.
	Player() (player.Player, bool)
}

// ObjectCreator is the object store facade used for runtime spawning.
type ObjectCreator interface {
	// CreateObject stores a new object at position and returns it.
	CreateObject(shape game_object.Shape, material game_object.Material, position mgl32.Vec3) game_object.GameObject
}

type controllerImpl struct {
	bindings Bindings
	limits   FOVLimits
	logger   *zap.Logger

	spawnShape    game_object.Shape
	spawnMaterial game_object.Material

	orientation *Orientation
	fov         *FOV
	locomotion  *Locomotion
	spawner     *Spawner
}

// Controller runs the per-frame player update. Update drives the frame's
// controllers in a fixed order: orientation, field of view, then locomotion.
// Clicks are dispatched separately through HandleClick.
//
// A Controller is not safe for concurrent use.
type Controller interface {
	// Update applies one frame of input to the player.
	//
	// Parameters:
	//   - snap: the frame's input snapshot
	//   - dt: elapsed frame time in seconds
	//
	// Returns:
	//   - Effects: the host-side actions requested this frame
	Update(snap input.Snapshot, dt float32) Effects

	// HandleClick dispatches a single click event to the spawn handler.
	//
	// Parameters:
	//   - click: the completed click
	HandleClick(click input.Click)

	// Spawned returns the number of objects spawned this session.
	Spawned() int

	// Speed returns the current locomotion speed accumulator.
	Speed() float32

	// Bindings returns the active key and button bindings.
	Bindings() Bindings
}

var _ Controller = &controllerImpl{}

// NewController creates a Controller over the given player query and object
// store. Defaults are DefaultBindings, DefaultFOVLimits and a 0.5 box spawned in
// sRGB (124, 144, 255).
//
// Parameters:
//   - players: resolves the controlled player each frame
//   - objects: the store spawned objects are created in
//   - options: functional options to configure the controller
//
// Returns:
//   - Controller: the newly created controller
func NewController(players PlayerQuery, objects ObjectCreator, options ...ControllerBuilderOption) Controller {
	if players == nil {
		panic("controller requires a player query")
	}
	if objects == nil {
		panic("controller requires an object creator")
	}

	c := &controllerImpl{
		bindings:      DefaultBindings(),
		limits:        DefaultFOVLimits(),
		logger:        zap.NewNop(),
		spawnShape:    DefaultSpawnShape,
		spawnMaterial: DefaultSpawnMaterial,
	}
	for _, option := range options {
		option(c)
	}

	c.orientation = NewOrientation(players)
	c.fov = NewFOV(players, c.bindings, c.limits)
	c.locomotion = NewLocomotion(players, c.bindings, c.logger)
	c.spawner = NewSpawner(players, objects, c.bindings.Spawn, c.spawnShape, c.spawnMaterial, c.logger)
	return c
}

func (c *controllerImpl) Update(snap input.Snapshot, dt float32) Effects {
	c.orientation.Update(snap)
	c.fov.Update(snap)
	return c.locomotion.Update(snap, dt)
}

func (c *controllerImpl) HandleClick(click input.Click) {
	c.spawner.OnClick(click)
}

func (c *controllerImpl) Spawned() int {
	return c.spawner.Count()
}

func (c *controllerImpl) Speed() float32 {
	return c.locomotion.Speed()
}

func (c *controllerImpl) Bindings() Bindings {
	return c.bindings
}
