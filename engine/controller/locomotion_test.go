package controller

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-fps/common"
	"github.com/Carmen-Shannon/oxy-fps/engine/input"
	"github.com/Carmen-Shannon/oxy-fps/engine/scene"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLocomotion_SpeedStartsAtBase(t *testing.T) {
	s, _ := newTestScene(t)
	assert.Equal(t, float32(BaseSpeed), NewLocomotion(s, DefaultBindings(), nil).Speed())
}

func TestLocomotion_SpeedAccumulatesPerHeldDirection(t *testing.T) {
	s, _ := newTestScene(t)
	l := NewLocomotion(s, DefaultBindings(), nil)

	l.Update(input.NewSnapshot(input.WithPressed(common.KeyW, common.KeyD)), 0)
	assert.Equal(t, float32(2.5), l.Speed())

	l.Update(input.NewSnapshot(input.WithPressed(common.KeyW)), 0)
	l.Update(input.NewSnapshot(input.WithPressed(common.KeyW)), 0)
	assert.Equal(t, float32(4.5), l.Speed())
}

func TestLocomotion_HoldingForwardKeepsAccelerating(t *testing.T) {
	s, p := newTestScene(t)
	l := NewLocomotion(s, DefaultBindings(), nil)
	const frames = 8
	const dt = float32(1.0 / 60)

	z := p.Position().Z()
	var travelled float32
	for i := 1; i <= frames; i++ {
		l.Update(input.NewSnapshot(input.WithPressed(common.KeyW)), dt)

		assert.Less(t, p.Position().Z(), z, "frame %d", i)
		z = p.Position().Z()
		travelled += (BaseSpeed + float32(i)) * dt
	}

	assert.Equal(t, float32(BaseSpeed+frames), l.Speed())
	assert.InDelta(t, -travelled, z, 1e-5)
	assert.Equal(t, float32(0), p.Position().X())
	assert.Equal(t, float32(1), p.Position().Y())
}

func TestLocomotion_ReleaseResetsSpeed(t *testing.T) {
	s, _ := newTestScene(t)
	l := NewLocomotion(s, DefaultBindings(), nil)

	for i := 0; i < 5; i++ {
		l.Update(input.NewSnapshot(input.WithPressed(common.KeyA)), 0)
	}
	l.Update(input.NewSnapshot(input.WithJustReleased(common.KeyA)), 0)
	assert.Equal(t, float32(BaseSpeed), l.Speed())
}

func TestLocomotion_TapResetsSpeedWithoutMoving(t *testing.T) {
	s, p := newTestScene(t)
	l := NewLocomotion(s, DefaultBindings(), nil)
	l.Update(input.NewSnapshot(input.WithPressed(common.KeyW)), 0)
	start := p.Position()

	tap := input.NewSnapshot(input.WithJustPressed(common.KeyW), input.WithJustReleased(common.KeyW))
	l.Update(tap, 1)

	assert.Equal(t, float32(BaseSpeed), l.Speed())
	assertVec3(t, start, p.Position())
}

func TestLocomotion_ReleaseLaterInOrderWins(t *testing.T) {
	s, p := newTestScene(t)
	l := NewLocomotion(s, DefaultBindings(), nil)

	// W is checked before S, so the S release resets the increment W just added.
	l.Update(input.NewSnapshot(input.WithPressed(common.KeyW), input.WithJustReleased(common.KeyS)), 1)

	assert.Equal(t, float32(BaseSpeed), l.Speed())
	assertVec3(t, mgl32.Vec3{0, 1, -0.5}, p.Position())
}

func TestLocomotion_MovesAlongWorldAxes(t *testing.T) {
	for _, tc := range []struct {
		key  uint32
		want mgl32.Vec3
	}{
		{common.KeyW, mgl32.Vec3{0, 1, -0.15}},
		{common.KeyS, mgl32.Vec3{0, 1, 0.15}},
		{common.KeyA, mgl32.Vec3{-0.15, 1, 0}},
		{common.KeyD, mgl32.Vec3{0.15, 1, 0}},
		{common.KeySpace, mgl32.Vec3{0, 1.15, 0}},
		{common.KeyLeftShift, mgl32.Vec3{0, 0.85, 0}},
	} {
		s, p := newTestScene(t)
		// looking sideways must not change the direction of travel
		p.SetRotation(common.QuatFromEulerYXZ(1.2, 0.3, 0))
		l := NewLocomotion(s, DefaultBindings(), nil)

		fx := l.Update(input.NewSnapshot(input.WithPressed(tc.key)), 0.1)

		assert.Equal(t, Effects{}, fx)
		assertVec3(t, tc.want, p.Position())
	}
}

func TestLocomotion_DiagonalIsNormalized(t *testing.T) {
	s, p := newTestScene(t)
	l := NewLocomotion(s, DefaultBindings(), nil)

	l.Update(input.NewSnapshot(input.WithPressed(common.KeyW, common.KeyD)), 1)

	moved := p.Position().Sub(mgl32.Vec3{0, 1, 0})
	assert.InDelta(t, 2.5, moved.Len(), 1e-5)
	assert.InDelta(t, moved.X(), -moved.Z(), 1e-5)
}

func TestLocomotion_OpposingKeysCancelButStillAccelerate(t *testing.T) {
	s, p := newTestScene(t)
	l := NewLocomotion(s, DefaultBindings(), nil)

	l.Update(input.NewSnapshot(input.WithPressed(common.KeyW, common.KeyS)), 1)

	assertVec3(t, mgl32.Vec3{0, 1, 0}, p.Position())
	assert.Equal(t, float32(2.5), l.Speed())
}

func TestLocomotion_QuitSuppressesMovement(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	s, p := newTestScene(t)
	l := NewLocomotion(s, DefaultBindings(), zap.New(core))

	fx := l.Update(input.NewSnapshot(input.WithPressed(common.KeyW, common.KeyP)), 1)

	assert.True(t, fx.Exit)
	assertVec3(t, mgl32.Vec3{0, 1, 0}, p.Position())
	assert.Equal(t, float32(1.5), l.Speed())
	assert.Equal(t, 1, logs.FilterMessage("quit requested").Len())
}

func TestLocomotion_CaptureOnJustPressed(t *testing.T) {
	s, _ := newTestScene(t)
	l := NewLocomotion(s, DefaultBindings(), nil)

	fx := l.Update(input.NewSnapshot(input.WithMouseJustPressed(common.MouseButtonLeft)), 0)
	assert.True(t, fx.LockCursor)

	fx = l.Update(input.NewSnapshot(input.WithMouseJustPressed(common.MouseButtonRight)), 0)
	assert.False(t, fx.LockCursor)
}

func TestLocomotion_NoPlayerIsNoOp(t *testing.T) {
	l := NewLocomotion(scene.NewScene("empty"), DefaultBindings(), nil)

	fx := l.Update(input.NewSnapshot(
		input.WithPressed(common.KeyW, common.KeyP),
		input.WithMouseJustPressed(common.MouseButtonLeft),
	), 1)

	assert.Equal(t, Effects{}, fx)
	assert.Equal(t, float32(BaseSpeed), l.Speed())
}

func TestLocomotion_ZeroDeltaTimeDoesNotMove(t *testing.T) {
	s, p := newTestScene(t)
	l := NewLocomotion(s, DefaultBindings(), nil)

	l.Update(input.NewSnapshot(input.WithPressed(common.KeyW)), 0)
	assertVec3(t, mgl32.Vec3{0, 1, 0}, p.Position())
}
