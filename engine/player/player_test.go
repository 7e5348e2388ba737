package player

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-fps/common"
	"github.com/Carmen-Shannon/oxy-fps/engine/camera"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultPlayer(t *testing.T) {
	p := NewDefaultPlayer(16.0 / 9.0)

	assert.Equal(t, mgl32.Vec3{0, 1, 0}, p.Position())
	assert.Equal(t, mgl32.QuatIdent(), p.Rotation())
	assert.Equal(t, DefaultSensitivity, p.Sensitivity())

	world := p.WorldModelCamera()
	view := p.ViewModelCamera()
	require.NotNil(t, world)
	require.NotNil(t, view)
	assert.InDelta(t, common.DegToRad(90), world.Projection().(*camera.PerspectiveProjection).Fov, 1e-6)
	assert.InDelta(t, common.DegToRad(70), view.Projection().(*camera.PerspectiveProjection).Fov, 1e-6)
	assert.Greater(t, view.Order(), world.Order())
	assert.False(t, view.Layers().Intersects(world.Layers()))

	cams := p.Cameras()
	require.Len(t, cams, 2)
	assert.Same(t, world, cams[0])
	assert.Same(t, view, cams[1])
}

func TestNewPlayer_RejectsBadLayering(t *testing.T) {
	for _, tc := range []struct {
		name  string
		world camera.Camera
		view  camera.Camera
	}{
		{
			"shared layer",
			camera.NewCamera(camera.WithOrder(0), camera.WithLayers(common.Layers(0))),
			camera.NewCamera(camera.WithOrder(1), camera.WithLayers(common.Layers(0, 1))),
		},
		{
			"view draws first",
			camera.NewCamera(camera.WithOrder(1), camera.WithLayers(common.Layers(0))),
			camera.NewCamera(camera.WithOrder(0), camera.WithLayers(common.Layers(1))),
		},
		{
			"same order",
			camera.NewCamera(camera.WithOrder(0), camera.WithLayers(common.Layers(0))),
			camera.NewCamera(camera.WithOrder(0), camera.WithLayers(common.Layers(1))),
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewPlayer(WithWorldModelCamera(tc.world), WithViewModelCamera(tc.view))
			assert.Error(t, err)
		})
	}
}

func TestPlayer_UpdateCamerasFollowsTransform(t *testing.T) {
	p := NewDefaultPlayer(1)
	p.SetPosition(mgl32.Vec3{5, 2, -1})
	p.SetRotation(common.QuatFromEulerYXZ(0.5, 0.1, 0))

	p.UpdateCameras()

	for _, c := range p.Cameras() {
		assert.Equal(t, mgl32.Vec3{5, 2, -1}, c.Position())
		assert.True(t, c.ViewMatrix().ApproxEqualThreshold(common.ViewMatrix(p.Position(), p.Rotation()), 1e-6))
	}
}

func TestWithYawPitch(t *testing.T) {
	p, err := NewPlayer(WithYawPitch(0.4, -0.2), WithSensitivity(mgl32.Vec2{1, 2}))
	require.NoError(t, err)

	yaw, pitch, roll := common.EulerYXZ(p.Rotation())
	assert.InDelta(t, 0.4, yaw, 1e-5)
	assert.InDelta(t, -0.2, pitch, 1e-5)
	assert.InDelta(t, 0, roll, 1e-5)
	assert.Equal(t, mgl32.Vec2{1, 2}, p.Sensitivity())
	assert.Empty(t, p.Cameras())
}
