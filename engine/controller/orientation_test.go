package controller

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-fps/common"
	"github.com/Carmen-Shannon/oxy-fps/engine/input"
	"github.com/Carmen-Shannon/oxy-fps/engine/player"
	"github.com/Carmen-Shannon/oxy-fps/engine/scene"
	"github.com/stretchr/testify/assert"
)

func TestOrientation_YawFromHorizontalMotion(t *testing.T) {
	s, p := newTestScene(t)
	o := NewOrientation(s)

	o.Update(input.NewSnapshot(input.WithMouseDelta(100, 0)))

	yaw, pitch, roll := common.EulerYXZ(p.Rotation())
	assert.InDelta(t, -0.3, yaw, 1e-5)
	assert.InDelta(t, 0, pitch, 1e-5)
	assert.InDelta(t, 0, roll, 1e-5)
}

func TestOrientation_PitchFromVerticalMotion(t *testing.T) {
	s, p := newTestScene(t)
	o := NewOrientation(s)

	o.Update(input.NewSnapshot(input.WithMouseDelta(0, 50)))

	_, pitch, _ := common.EulerYXZ(p.Rotation())
	assert.InDelta(t, -0.1, pitch, 1e-5)
}

func TestOrientation_PitchIsClamped(t *testing.T) {
	for _, tc := range []struct {
		name string
		dy   float32
		want float32
	}{
		{"up", -100000, PitchLimit},
		{"down", 100000, -PitchLimit},
	} {
		t.Run(tc.name, func(t *testing.T) {
			s, p := newTestScene(t)
			o := NewOrientation(s)

			o.Update(input.NewSnapshot(input.WithMouseDelta(0, tc.dy)))
			_, pitch, _ := common.EulerYXZ(p.Rotation())
			assert.InDelta(t, tc.want, pitch, 1e-4)

			// further motion in the same direction stays at the limit
			o.Update(input.NewSnapshot(input.WithMouseDelta(0, tc.dy)))
			_, pitch, _ = common.EulerYXZ(p.Rotation())
			assert.InDelta(t, tc.want, pitch, 1e-4)
		})
	}
}

func TestOrientation_YawIsUnbounded(t *testing.T) {
	s, p := newTestScene(t)
	o := NewOrientation(s)

	// 12 frames of -0.3 rad each wraps past -π
	for i := 0; i < 12; i++ {
		o.Update(input.NewSnapshot(input.WithMouseDelta(100, 0)))
	}
	want := common.QuatFromEulerYXZ(-3.6, 0, 0)
	assert.InDelta(t, 1, abs32(p.Rotation().Dot(want)), 1e-4)
}

func TestOrientation_RollIsPreserved(t *testing.T) {
	p, err := player.NewPlayer(player.WithRotation(common.QuatFromEulerYXZ(0.4, 0.1, 0.2)))
	assert.NoError(t, err)
	s := scene.NewScene("test", scene.WithPlayer(p))

	NewOrientation(s).Update(input.NewSnapshot(input.WithMouseDelta(10, 10)))

	yaw, pitch, roll := common.EulerYXZ(p.Rotation())
	assert.InDelta(t, 0.4-0.03, yaw, 1e-4)
	assert.InDelta(t, 0.1-0.02, pitch, 1e-4)
	assert.InDelta(t, 0.2, roll, 1e-4)
}

func TestOrientation_ZeroDeltaLeavesRotationUntouched(t *testing.T) {
	s, p := newTestScene(t)
	start := common.QuatFromEulerYXZ(1, 0.5, 0)
	p.SetRotation(start)

	NewOrientation(s).Update(input.NewSnapshot())

	assert.Equal(t, start, p.Rotation())
}

func TestOrientation_RequiresExactlyOnePlayer(t *testing.T) {
	empty := scene.NewScene("empty")
	assert.NotPanics(t, func() {
		NewOrientation(empty).Update(input.NewSnapshot(input.WithMouseDelta(100, 100)))
	})

	a := player.NewDefaultPlayer(1)
	b := player.NewDefaultPlayer(1)
	s := scene.NewScene("two", scene.WithPlayer(a), scene.WithPlayer(b))
	NewOrientation(s).Update(input.NewSnapshot(input.WithMouseDelta(100, 100)))

	assert.Equal(t, a.Rotation(), b.Rotation())
	yaw, _, _ := common.EulerYXZ(a.Rotation())
	assert.Zero(t, yaw)
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
