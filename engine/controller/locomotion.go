package controller

import (
	"github.com/Carmen-Shannon/oxy-fps/engine/input"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// BaseSpeed is the locomotion speed after a movement key is released.
const BaseSpeed = 0.5

type direction struct {
	key  func(Bindings) uint32
	axis mgl32.Vec3
}

// checked in this order every frame
var directions = []direction{
	{func(b Bindings) uint32 { return b.Forward }, mgl32.Vec3{0, 0, -1}},
	{func(b Bindings) uint32 { return b.Back }, mgl32.Vec3{0, 0, 1}},
	{func(b Bindings) uint32 { return b.Left }, mgl32.Vec3{-1, 0, 0}},
	{func(b Bindings) uint32 { return b.Right }, mgl32.Vec3{1, 0, 0}},
	{func(b Bindings) uint32 { return b.Up }, mgl32.Vec3{0, 1, 0}},
	{func(b Bindings) uint32 { return b.Down }, mgl32.Vec3{0, -1, 0}},
}

// Locomotion translates the player along the world axes.
//
// Speed is a single accumulator shared by all six directions and kept across
// frames: every held direction adds 1 per frame and a released direction resets
// it to BaseSpeed. Holding keys therefore accelerates the player without bound.
type Locomotion struct {
	players  PlayerQuery
	bindings Bindings
	logger   *zap.Logger

	speed float32
}

// NewLocomotion creates a locomotion controller with the speed at BaseSpeed.
//
// Parameters:
//   - players: resolves the controlled player
//   - bindings: supplies the movement, quit and capture bindings
//   - logger: logs quit and capture requests
//
// Returns:
//   - *Locomotion: the controller
func NewLocomotion(players PlayerQuery, bindings Bindings, logger *zap.Logger) *Locomotion {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Locomotion{
		players:  players,
		bindings: bindings,
		logger:   logger,
		speed:    BaseSpeed,
	}
}

// Speed returns the current speed accumulator.
func (l *Locomotion) Speed() float32 {
	return l.speed
}

// Update moves the player by normalize(direction) * speed * dt and reports the
// quit and cursor capture requests. A quit request suppresses movement.
func (l *Locomotion) Update(snap input.Snapshot, dt float32) Effects {
	p, ok := l.players.Player()
	if !ok {
		return Effects{}
	}

	var fx Effects
	if snap.MouseJustPressed(l.bindings.Capture) {
		l.logger.Debug("cursor capture requested")
		fx.LockCursor = true
	}

	var dir mgl32.Vec3
	for _, d := range directions {
		key := d.key(l.bindings)
		if snap.Pressed(key) {
			dir = dir.Add(d.axis)
			l.speed += 1.0
		} else if snap.JustReleased(key) {
			l.speed = BaseSpeed
		}
	}

	if snap.Pressed(l.bindings.Quit) {
		l.logger.Info("quit requested")
		fx.Exit = true
		return fx
	}

	if dir.Len() != 0 {
		p.SetPosition(p.Position().Add(dir.Normalize().Mul(l.speed * dt)))
	}
	return fx
}
