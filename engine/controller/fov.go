package controller

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-fps/engine/camera"
	"github.com/Carmen-Shannon/oxy-fps/engine/input"
)

// FOV adjusts the world-model camera's field of view while its keys are held.
type FOV struct {
	players  PlayerQuery
	bindings Bindings
	limits   FOVLimits
}

// NewFOV creates a field-of-view controller.
//
// Parameters:
//   - players: resolves the controlled player
//   - bindings: supplies the decrease and increase keys
//   - limits: the bounds and step in radians
//
// Returns:
//   - *FOV: the controller
func NewFOV(players PlayerQuery, bindings Bindings, limits FOVLimits) *FOV {
	return &FOV{players: players, bindings: bindings, limits: limits}
}

// Update steps the field of view once per held key. The step is applied per
// frame, not per second. Panics if the world-model camera is not perspective.
func (f *FOV) Update(snap input.Snapshot) {
	p, ok := f.players.Player()
	if !ok {
		return
	}
	cam := p.WorldModelCamera()
	if cam == nil {
		return
	}
	proj, ok := cam.Projection().(*camera.PerspectiveProjection)
	if !ok {
		panic(fmt.Sprintf("world model camera %q must use a perspective projection, got %T", cam.Name(), cam.Projection()))
	}

	if snap.Pressed(f.bindings.FOVDecrease) {
		proj.Fov = max(proj.Fov-f.limits.Step, f.limits.Min)
	}
	if snap.Pressed(f.bindings.FOVIncrease) {
		proj.Fov = min(proj.Fov+f.limits.Step, f.limits.Max)
	}
}
