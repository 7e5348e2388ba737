package scene

import (
	"slices"

	"github.com/Carmen-Shannon/oxy-fps/common"
	"github.com/Carmen-Shannon/oxy-fps/engine/camera"
	"github.com/Carmen-Shannon/oxy-fps/engine/game_object"
	"github.com/Carmen-Shannon/oxy-fps/engine/light"
	"github.com/Carmen-Shannon/oxy-fps/engine/player"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
	"github.com/mlange-42/ark/ecs"
	"go.uber.org/zap"
)

// Scene owns everything the viewer draws: the player (with its cameras), the
// static and spawned objects, and the static lights.
//
// Objects live in an ECS world; the scene hands out immutable GameObject
// snapshots. Spawned objects have no link back to the player that triggered them.
//
// A Scene is not safe for concurrent use. The frame loop is its only user.
type Scene interface {
	// Name returns the scene's identifier.
	Name() string

	// Player returns the scene's player when exactly one is registered.
	// Zero or several registered players are reported as absent.
	//
	// Returns:
	//   - player.Player: the player, or nil
	//   - bool: true if exactly one player is registered
	Player() (player.Player, bool)

	// Players returns all registered players.
	Players() []player.Player

	// AddPlayer registers a player with the scene.
	//
	// Parameters:
	//   - p: the player to register
	AddPlayer(p player.Player)

	// RemovePlayer unregisters a player. Unknown players are ignored.
	//
	// Parameters:
	//   - p: the player to unregister
	RemovePlayer(p player.Player)

	// Cameras returns the cameras of the scene's player in draw order, or nil when
	// the player is absent.
	Cameras() []camera.Camera

	// Add stores a declared object and assigns it a scene-unique ID.
	// The object's ID field is ignored; its tag, spawned flag, shape, material,
	// layers and transform are copied.
	//
	// Parameters:
	//   - obj: the object to store
	//
	// Returns:
	//   - uint64: the assigned object ID
	Add(obj game_object.GameObject) uint64

	// CreateObject stores a new runtime-spawned object with a fresh tag on the
	// default render layer.
	//
	// Parameters:
	//   - shape: the object's mesh description
	//   - material: the object's surface description
	//   - position: the object's world-space position
	//
	// Returns:
	//   - game_object.GameObject: a snapshot of the created object
	CreateObject(shape game_object.Shape, material game_object.Material, position mgl32.Vec3) game_object.GameObject

	// Get retrieves an object snapshot by its ID. Returns nil if not found.
	//
	// Parameters:
	//   - id: the object's ID
	//
	// Returns:
	//   - game_object.GameObject: the object or nil
	Get(id uint64) game_object.GameObject

	// Remove deletes an object by its ID. Unknown IDs are ignored.
	//
	// Parameters:
	//   - id: the object's ID
	Remove(id uint64)

	// Objects returns snapshots of all stored objects in ascending ID order.
	Objects() []game_object.GameObject

	// Count returns the number of stored objects, static and spawned.
	Count() int

	// CountSpawned returns the number of stored runtime-spawned objects.
	CountSpawned() int

	// AddLight adds a static light.
	//
	// Parameters:
	//   - l: the light to add
	AddLight(l light.Light)

	// Lights returns the scene's lights.
	Lights() []light.Light
}

type scene struct {
	name   string
	logger *zap.Logger

	players []player.Player

	world    *ecs.World
	objects  *ecs.Map3[identity, transform, mesh]
	filter   *ecs.Filter3[identity, transform, mesh]
	registry map[uint64]ecs.Entity
	nextID   uint64
	spawned  int

	lights []light.Light
}

var _ Scene = &scene{}

// NewScene creates an empty Scene.
//
// Parameters:
//   - name: the scene's identifier
//   - options: functional options to configure the scene
//
// Returns:
//   - Scene: the newly created scene
func NewScene(name string, options ...SceneBuilderOption) Scene {
	w := ecs.NewWorld()
	s := &scene{
		name:     name,
		logger:   zap.NewNop(),
		world:    &w,
		registry: make(map[uint64]ecs.Entity),
		nextID:   1,
	}
	s.objects = ecs.NewMap3[identity, transform, mesh](s.world)
	s.filter = ecs.NewFilter3[identity, transform, mesh](s.world)

	for _, option := range options {
		option(s)
	}
	return s
}

func (s *scene) Name() string {
	return s.name
}

func (s *scene) Player() (player.Player, bool) {
	if len(s.players) != 1 {
		return nil, false
	}
	return s.players[0], true
}

func (s *scene) Players() []player.Player {
	return slices.Clone(s.players)
}

func (s *scene) AddPlayer(p player.Player) {
	if p == nil {
		return
	}
	s.players = append(s.players, p)
	if len(s.players) > 1 {
		s.logger.Warn("scene has more than one player; player controls are disabled",
			zap.String("scene", s.name), zap.Int("players", len(s.players)))
	}
}

func (s *scene) RemovePlayer(p player.Player) {
	s.players = slices.DeleteFunc(s.players, func(other player.Player) bool { return other == p })
}

func (s *scene) Cameras() []camera.Camera {
	p, ok := s.Player()
	if !ok {
		return nil
	}
	return p.Cameras()
}

func (s *scene) Add(obj game_object.GameObject) uint64 {
	return s.store(obj.Tag(), obj.Spawned(), obj.Position(), obj.Rotation(), obj.Shape(), obj.Material(), obj.Layers())
}

func (s *scene) CreateObject(shape game_object.Shape, material game_object.Material, position mgl32.Vec3) game_object.GameObject {
	id := s.store(uuid.New(), true, position, mgl32.QuatIdent(), shape, material, common.Layers(common.DefaultRenderLayer))
	return s.Get(id)
}

func (s *scene) store(tag uuid.UUID, spawned bool, position mgl32.Vec3, rotation mgl32.Quat,
	shape game_object.Shape, material game_object.Material, layers common.RenderLayers) uint64 {
	id := s.nextID
	s.nextID++

	e := s.objects.NewEntity(
		&identity{ID: id, Tag: tag, Spawned: spawned},
		&transform{Position: position, Rotation: rotation},
		&mesh{Shape: shape, Material: material, Layers: layers},
	)
	s.registry[id] = e
	if spawned {
		s.spawned++
	}
	return id
}

func (s *scene) Get(id uint64) game_object.GameObject {
	e, ok := s.registry[id]
	if !ok || !s.world.Alive(e) {
		return nil
	}
	ident, t, m := s.objects.Get(e)
	return toGameObject(ident, t, m)
}

func (s *scene) Remove(id uint64) {
	e, ok := s.registry[id]
	if !ok {
		return
	}
	delete(s.registry, id)
	if !s.world.Alive(e) {
		return
	}
	ident, _, _ := s.objects.Get(e)
	if ident.Spawned {
		s.spawned--
	}
	s.world.RemoveEntity(e)
}

func (s *scene) Objects() []game_object.GameObject {
	out := make([]game_object.GameObject, 0, len(s.registry))
	query := s.filter.Query()
	for query.Next() {
		ident, t, m := query.Get()
		out = append(out, toGameObject(ident, t, m))
	}
	slices.SortFunc(out, func(a, b game_object.GameObject) int {
		switch {
		case a.ID() < b.ID():
			return -1
		case a.ID() > b.ID():
			return 1
		default:
			return 0
		}
	})
	return out
}

func (s *scene) Count() int {
	return len(s.registry)
}

func (s *scene) CountSpawned() int {
	return s.spawned
}

func (s *scene) AddLight(l light.Light) {
	if l == nil {
		return
	}
	s.lights = append(s.lights, l)
}

func (s *scene) Lights() []light.Light {
	return slices.Clone(s.lights)
}
