package scene

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-fps/common"
	"github.com/Carmen-Shannon/oxy-fps/engine/game_object"
	"github.com/Carmen-Shannon/oxy-fps/engine/light"
	"github.com/Carmen-Shannon/oxy-fps/engine/player"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestScene_PlayerRequiresExactlyOne(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	s := NewScene("test", WithLogger(zap.New(core)))

	_, ok := s.Player()
	assert.False(t, ok)
	assert.Nil(t, s.Cameras())

	a := player.NewDefaultPlayer(1)
	s.AddPlayer(a)
	got, ok := s.Player()
	require.True(t, ok)
	assert.Same(t, a, got)
	assert.Len(t, s.Cameras(), 2)

	b := player.NewDefaultPlayer(1)
	s.AddPlayer(b)
	_, ok = s.Player()
	assert.False(t, ok)
	assert.Len(t, s.Players(), 2)
	assert.Equal(t, 1, logs.Len())

	s.RemovePlayer(a)
	got, ok = s.Player()
	require.True(t, ok)
	assert.Same(t, b, got)

	s.AddPlayer(nil)
	assert.Len(t, s.Players(), 1)
}

func TestScene_CreateObject(t *testing.T) {
	s := NewScene("test")

	obj := s.CreateObject(game_object.Box(0.5, 0.5, 0.5), game_object.SRGB8(124, 144, 255), mgl32.Vec3{1, 2, 3})

	require.NotNil(t, obj)
	assert.Equal(t, uint64(1), obj.ID())
	assert.True(t, obj.Spawned())
	assert.NotEqual(t, uuid.Nil, obj.Tag())
	assert.Equal(t, mgl32.Vec3{1, 2, 3}, obj.Position())
	assert.Equal(t, mgl32.QuatIdent(), obj.Rotation())
	assert.Equal(t, common.Layers(common.DefaultRenderLayer), obj.Layers())
	assert.Equal(t, 1, s.Count())
	assert.Equal(t, 1, s.CountSpawned())
}

func TestScene_AddGetRemove(t *testing.T) {
	s := NewScene("test")
	tag := uuid.New()
	decl := game_object.NewGameObject(
		game_object.WithID(99),
		game_object.WithTag(tag),
		game_object.WithShape(game_object.Torus(2, 0.5)),
		game_object.WithPosition(mgl32.Vec3{1, 0.4, 3}),
		game_object.WithLayers(common.Layers(0, 1)),
	)

	id := s.Add(decl)
	assert.Equal(t, uint64(1), id)

	got := s.Get(id)
	require.NotNil(t, got)
	assert.Equal(t, id, got.ID())
	assert.Equal(t, tag, got.Tag())
	assert.False(t, got.Spawned())
	assert.Equal(t, game_object.Torus(2, 0.5), got.Shape())
	assert.Equal(t, common.Layers(0, 1), got.Layers())
	assert.Zero(t, s.CountSpawned())

	assert.Nil(t, s.Get(42))

	s.Remove(id)
	assert.Nil(t, s.Get(id))
	assert.Zero(t, s.Count())
	s.Remove(id)
}

func TestScene_IDsAreMonotonic(t *testing.T) {
	s := NewScene("test")

	a := s.CreateObject(game_object.Box(1, 1, 1), game_object.White, mgl32.Vec3{})
	s.Remove(a.ID())
	b := s.CreateObject(game_object.Box(1, 1, 1), game_object.White, mgl32.Vec3{})
	c := s.Add(game_object.NewGameObject())

	assert.Equal(t, uint64(2), b.ID())
	assert.Equal(t, uint64(3), c)
	assert.Equal(t, 1, s.CountSpawned())
}

func TestScene_ObjectsSortedByID(t *testing.T) {
	s := NewScene("test", WithObjects(
		game_object.NewGameObject(game_object.WithPosition(mgl32.Vec3{0, 0, 0})),
		nil,
		game_object.NewGameObject(game_object.WithPosition(mgl32.Vec3{1, 0, 0})),
	))
	for i := 0; i < 20; i++ {
		s.CreateObject(game_object.Box(1, 1, 1), game_object.White, mgl32.Vec3{float32(i), 1, 0})
	}
	s.Remove(5)

	objs := s.Objects()
	require.Len(t, objs, 21)
	for i := 1; i < len(objs); i++ {
		assert.Less(t, objs[i-1].ID(), objs[i].ID())
	}
	assert.Equal(t, 2, len(objs)-s.CountSpawned())
}

func TestScene_Lights(t *testing.T) {
	l := light.NewLight(light.LightTypePoint)
	s := NewScene("test", WithLights(l, nil))

	require.Len(t, s.Lights(), 1)
	assert.Same(t, l, s.Lights()[0])

	// returned slice is a copy
	s.Lights()[0] = nil
	assert.NotNil(t, s.Lights()[0])
}

func TestScene_Name(t *testing.T) {
	assert.Equal(t, "main", NewScene("main").Name())
}
