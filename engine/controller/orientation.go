package controller

import (
	"github.com/Carmen-Shannon/oxy-fps/common"
	"github.com/Carmen-Shannon/oxy-fps/engine/input"
)

// Orientation maps mouse motion to player yaw and pitch.
type Orientation struct {
	players PlayerQuery
}

// NewOrientation creates an orientation controller.
//
// Parameters:
//   - players: resolves the controlled player
//
// Returns:
//   - *Orientation: the controller
func NewOrientation(players PlayerQuery) *Orientation {
	return &Orientation{players: players}
}

// Update rotates the player by the frame's mouse delta scaled by the player's
// sensitivity. Yaw is unbounded; pitch is clamped to ±PitchLimit and roll is kept.
func (o *Orientation) Update(snap input.Snapshot) {
	delta := snap.MouseDelta()
	if delta.X() == 0 && delta.Y() == 0 {
		return
	}
	p, ok := o.players.Player()
	if !ok {
		return
	}

	sens := p.Sensitivity()
	yaw, pitch, roll := common.EulerYXZ(p.Rotation())
	yaw += -delta.X() * sens.X()
	pitch = common.Clamp(pitch-delta.Y()*sens.Y(), -PitchLimit, PitchLimit)

	p.SetRotation(common.QuatFromEulerYXZ(yaw, pitch, roll))
}
