package camera

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/Carmen-Shannon/oxy-fps/common"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCamera_Defaults(t *testing.T) {
	c := NewCamera()

	assert.Equal(t, "camera", c.Name())
	assert.Equal(t, 0, c.Order())
	assert.Equal(t, common.Layers(common.DefaultRenderLayer), c.Layers())
	proj, ok := c.Projection().(*PerspectiveProjection)
	require.True(t, ok)
	assert.InDelta(t, common.DegToRad(45), proj.Fov, 1e-6)
	assert.True(t, c.ViewMatrix().ApproxEqual(mgl32.Ident4()))
}

func TestCamera_UpdateFollowsParent(t *testing.T) {
	c := NewCamera(WithOffset(mgl32.Vec3{0, 0.5, 0}))
	rot := common.QuatFromEulerYXZ(math.Pi/2, 0, 0)

	c.Update(mgl32.Vec3{1, 1, 1}, rot)

	assert.True(t, c.Position().ApproxEqual(mgl32.Vec3{1, 1.5, 1}))
	want := c.ProjectionMatrix().Mul4(common.ViewMatrix(c.Position(), rot))
	assert.True(t, c.ViewProjectionMatrix().ApproxEqualThreshold(want, 1e-5))
}

func TestCamera_ProjectionMutationAppliesOnUpdate(t *testing.T) {
	proj := NewPerspectiveProjection(common.DegToRad(90))
	c := NewCamera(WithProjection(proj))
	before := c.ProjectionMatrix()

	proj.Fov = common.DegToRad(60)
	c.Update(mgl32.Vec3{}, mgl32.QuatIdent())

	assert.False(t, before.ApproxEqual(c.ProjectionMatrix()))
	assert.True(t, c.ProjectionMatrix().ApproxEqual(common.Perspective(common.DegToRad(60), 1, 0.1, 1000)))
}

func TestCamera_SetAspect(t *testing.T) {
	c := NewCamera(WithAspect(2))
	assert.Equal(t, float32(2), c.Aspect())

	c.SetAspect(0)
	assert.Equal(t, float32(2), c.Aspect())

	c.SetAspect(1.5)
	assert.Equal(t, float32(1.5), c.Aspect())
	assert.True(t, c.ProjectionMatrix().ApproxEqual(common.Perspective(common.DegToRad(45), 1.5, 0.1, 1000)))
}

func TestSortByOrder(t *testing.T) {
	a := NewCamera(WithName("a"), WithOrder(2))
	b := NewCamera(WithName("b"), WithOrder(-1))
	c := NewCamera(WithName("c"), WithOrder(0))

	sorted := SortByOrder([]Camera{a, nil, b, c})
	require.Len(t, sorted, 3)
	assert.Equal(t, []string{"b", "c", "a"}, []string{sorted[0].Name(), sorted[1].Name(), sorted[2].Name()})
}

func TestValidateLayering(t *testing.T) {
	world := NewCamera(WithName("world"), WithOrder(0), WithLayers(common.Layers(0)))
	view := NewCamera(WithName("view"), WithOrder(1), WithLayers(common.Layers(1)))
	assert.NoError(t, ValidateLayering(world, view, nil))

	sameOrder := NewCamera(WithName("same"), WithOrder(0), WithLayers(common.Layers(2)))
	assert.ErrorContains(t, ValidateLayering(world, sameOrder), "render order")

	sharedLayer := NewCamera(WithName("shared"), WithOrder(3), WithLayers(common.Layers(1, 2)))
	assert.ErrorContains(t, ValidateLayering(world, view, sharedLayer), "render layer 1")
}

func TestGPUCameraUniform_Marshal(t *testing.T) {
	u := GPUCameraUniform{ViewProj: mgl32.Ident4(), CameraPosition: mgl32.Vec3{1, 2, 3}}
	buf := u.Marshal()

	require.Len(t, buf, 80)
	assert.Equal(t, float32(1), math.Float32frombits(binary.LittleEndian.Uint32(buf[0:])))
	assert.Equal(t, float32(0), math.Float32frombits(binary.LittleEndian.Uint32(buf[4:])))
	assert.Equal(t, float32(2), math.Float32frombits(binary.LittleEndian.Uint32(buf[68:])))
	assert.Equal(t, float32(3), math.Float32frombits(binary.LittleEndian.Uint32(buf[72:])))
}
