package controller

import (
	"github.com/Carmen-Shannon/oxy-fps/engine/game_object"
	"github.com/Carmen-Shannon/oxy-fps/engine/input"
	"go.uber.org/zap"
)

var (
	// DefaultSpawnShape is a box with 0.5 edges.
	DefaultSpawnShape = game_object.Box(0.5, 0.5, 0.5)
	// DefaultSpawnMaterial is sRGB (124, 144, 255).
	DefaultSpawnMaterial = game_object.SRGB8(124, 144, 255)
)

// Spawner creates one object at the player's position per click of its button.
// Spawned objects are owned by the store, not by the player.
type Spawner struct {
	players  PlayerQuery
	objects  ObjectCreator
	button   int
	shape    game_object.Shape
	material game_object.Material
	logger   *zap.Logger

	count int
}

// NewSpawner creates a spawn handler.
//
// Parameters:
//   - players: resolves the controlled player
//   - objects: the store to create objects in
//   - button: the mouse button whose clicks trigger a spawn
//   - shape: the spawned object's shape
//   - material: the spawned object's material
//   - logger: logs each spawn
//
// Returns:
//   - *Spawner: the handler
func NewSpawner(players PlayerQuery, objects ObjectCreator, button int,
	shape game_object.Shape, material game_object.Material, logger *zap.Logger) *Spawner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Spawner{
		players:  players,
		objects:  objects,
		button:   button,
		shape:    shape,
		material: material,
		logger:   logger,
	}
}

// OnClick spawns an object when the click is for the spawn button and a player exists.
func (s *Spawner) OnClick(click input.Click) {
	if click.Button != s.button {
		return
	}
	p, ok := s.players.Player()
	if !ok {
		return
	}

	obj := s.objects.CreateObject(s.shape, s.material, p.Position())
	s.count++
	if obj != nil {
		s.logger.Debug("spawned object",
			zap.Uint64("id", obj.ID()),
			zap.Stringer("tag", obj.Tag()),
			zap.Int("count", s.count))
	}
}

// Count returns the number of objects spawned so far.
func (s *Spawner) Count() int {
	return s.count
}
