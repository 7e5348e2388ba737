package controller

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-fps/engine/player"
	"github.com/Carmen-Shannon/oxy-fps/engine/scene"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func newTestScene(t *testing.T) (scene.Scene, player.Player) {
	t.Helper()
	p := player.NewDefaultPlayer(16.0 / 9.0)
	return scene.NewScene("test", scene.WithPlayer(p)), p
}

func assertVec3(t *testing.T, want, got mgl32.Vec3) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-5, "component %d of %v vs %v", i, want, got)
	}
}
