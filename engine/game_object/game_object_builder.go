package game_object

import (
	"github.com/Carmen-Shannon/oxy-fps/common"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
)

// GameObjectBuilderOption is a functional option for configuring a GameObject during construction.
type GameObjectBuilderOption func(*gameObject)

// WithID sets the ID of the GameObject.
//
// Parameters:
//   - id: unique identifier for the GameObject
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the ID
func WithID(id uint64) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.id = id
	}
}

// WithTag sets the globally unique tag of the GameObject.
//
// Parameters:
//   - tag: the tag
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the tag
func WithTag(tag uuid.UUID) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.tag = tag
	}
}

// WithSpawned marks the GameObject as created at runtime by a spawn trigger.
//
// Parameters:
//   - spawned: true for runtime-spawned objects
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the Spawned flag
func WithSpawned(spawned bool) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.spawned = spawned
	}
}

// WithShape sets the mesh description.
//
// Parameters:
//   - s: the shape
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the shape
func WithShape(s Shape) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.shape = s
	}
}

// WithMaterial sets the surface description.
//
// Parameters:
//   - m: the material
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the material
func WithMaterial(m Material) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.material = m
	}
}

// WithLayers sets the render partitions the object belongs to.
//
// Parameters:
//   - layers: the layer mask
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the layer mask
func WithLayers(layers common.RenderLayers) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.layers = layers
	}
}

// WithPosition sets the world-space position of the GameObject.
//
// Parameters:
//   - position: the position
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the position
func WithPosition(position mgl32.Vec3) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.position = position
	}
}

// WithRotation sets the world-space rotation of the GameObject.
//
// Parameters:
//   - rotation: the rotation
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the rotation
func WithRotation(rotation mgl32.Quat) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.rotation = rotation
	}
}
