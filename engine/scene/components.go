package scene

import (
	"github.com/Carmen-Shannon/oxy-fps/common"
	"github.com/Carmen-Shannon/oxy-fps/engine/game_object"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
)

// identity is the ECS component holding an object's identifiers.
type identity struct {
	ID      uint64
	Tag     uuid.UUID
	Spawned bool
}

// transform is the ECS component holding an object's world transform.
type transform struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
}

// mesh is the ECS component holding an object's draw description.
type mesh struct {
	Shape    game_object.Shape
	Material game_object.Material
	Layers   common.RenderLayers
}

// toGameObject converts stored components into an immutable GameObject snapshot.
func toGameObject(id *identity, t *transform, m *mesh) game_object.GameObject {
	return game_object.NewGameObject(
		game_object.WithID(id.ID),
		game_object.WithTag(id.Tag),
		game_object.WithSpawned(id.Spawned),
		game_object.WithPosition(t.Position),
		game_object.WithRotation(t.Rotation),
		game_object.WithShape(m.Shape),
		game_object.WithMaterial(m.Material),
		game_object.WithLayers(m.Layers),
	)
}
