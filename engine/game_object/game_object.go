package game_object

import (
	"github.com/Carmen-Shannon/oxy-fps/common"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
)

type gameObject struct {
	id       uint64
	tag      uuid.UUID
	spawned  bool
	shape    Shape
	material Material
	layers   common.RenderLayers

	position mgl32.Vec3
	rotation mgl32.Quat
}

// GameObject is an immutable view of a scene object: its identity, its mesh
// description and its transform. Scenes hand out GameObjects as snapshots of
// their store; changing a snapshot does not change the scene.
type GameObject interface {
	// ID returns the object's scene-unique identifier. Zero until the object is added to a scene.
	//
	// Returns:
	//   - uint64: the object ID
	ID() uint64

	// Tag returns the object's globally unique tag.
	//
	// Returns:
	//   - uuid.UUID: the tag
	Tag() uuid.UUID

	// Spawned reports whether the object was created at runtime by a spawn
	// trigger rather than declared with the static scene.
	//
	// Returns:
	//   - bool: true if spawned
	Spawned() bool

	// Shape returns the object's mesh description.
	Shape() Shape

	// Material returns the object's surface description.
	Material() Material

	// Layers returns the render partitions the object belongs to.
	Layers() common.RenderLayers

	// Position returns the object's world-space position.
	Position() mgl32.Vec3

	// Rotation returns the object's world-space rotation.
	Rotation() mgl32.Quat

	// ModelMatrix returns translation * rotation for the object.
	//
	// Returns:
	//   - mgl32.Mat4: the model matrix (column-major)
	ModelMatrix() mgl32.Mat4
}

var _ GameObject = &gameObject{}

// NewGameObject creates a new GameObject configured with the given options.
// Defaults: a unit white box at the origin on the default render layer with a fresh random tag.
//
// Parameters:
//   - options: functional options to configure the object
//
// Returns:
//   - GameObject: the newly created object
func NewGameObject(options ...GameObjectBuilderOption) GameObject {
	obj := &gameObject{
		tag:      uuid.New(),
		shape:    Box(1, 1, 1),
		material: White,
		layers:   common.Layers(common.DefaultRenderLayer),
		rotation: mgl32.QuatIdent(),
	}
	for _, option := range options {
		option(obj)
	}
	return obj
}

func (g *gameObject) ID() uint64 {
	return g.id
}

func (g *gameObject) Tag() uuid.UUID {
	return g.tag
}

func (g *gameObject) Spawned() bool {
	return g.spawned
}

func (g *gameObject) Shape() Shape {
	return g.shape
}

func (g *gameObject) Material() Material {
	return g.material
}

func (g *gameObject) Layers() common.RenderLayers {
	return g.layers
}

func (g *gameObject) Position() mgl32.Vec3 {
	return g.position
}

func (g *gameObject) Rotation() mgl32.Quat {
	return g.rotation
}

func (g *gameObject) ModelMatrix() mgl32.Mat4 {
	return common.TransformMatrix(g.position, g.rotation)
}
