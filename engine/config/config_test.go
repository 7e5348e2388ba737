package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Carmen-Shannon/oxy-fps/common"
	"github.com/Carmen-Shannon/oxy-fps/engine/camera"
	"github.com/Carmen-Shannon/oxy-fps/engine/controller"
	"github.com/Carmen-Shannon/oxy-fps/engine/game_object"
	"github.com/Carmen-Shannon/oxy-fps/engine/input"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestDefault_IsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestDefault_BindingsMatchController(t *testing.T) {
	b, err := Default().Bindings()
	require.NoError(t, err)
	assert.Equal(t, controller.DefaultBindings(), b)

	limits := Default().FOVLimits()
	want := controller.DefaultFOVLimits()
	assert.InDelta(t, want.Min, limits.Min, 1e-6)
	assert.InDelta(t, want.Max, limits.Max, 1e-6)
	assert.InDelta(t, want.Step, limits.Step, 1e-6)
}

func TestParse_OverlaysDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
window:
  title: custom
player:
  position: [1, 2, 3]
  yaw_degrees: 90
engine:
  frame_limit: 144
  profile_interval: 5s
controls:
  forward: Up
fov:
  step_degrees: 2
`))
	require.NoError(t, err)

	assert.Equal(t, "custom", cfg.Window.Title)
	assert.Equal(t, 1280, cfg.Window.Width)
	assert.Equal(t, []float32{1, 2, 3}, cfg.Player.Position)
	assert.Equal(t, 144.0, cfg.Engine.FrameLimit)
	assert.Equal(t, 5*time.Second, cfg.Engine.ProfileInterval)
	assert.Equal(t, "Up", cfg.Controls.Forward)
	assert.Equal(t, "s", cfg.Controls.Back)
	assert.Len(t, cfg.Scene.Objects, 6)

	b, err := cfg.Bindings()
	require.NoError(t, err)
	assert.Equal(t, uint32(common.KeyUp), b.Forward)
}

func TestParse_Empty(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParse_Errors(t *testing.T) {
	for name, doc := range map[string]string{
		"unknown key":               "window:\n  colour: red\n",
		"malformed":                 "window: [",
		"bad binding":               "controls:\n  quit: hyper\n",
		"bad button":                "controls:\n  spawn: w\n",
		"short vector":              "player:\n  position: [1, 2]\n",
		"fov bounds":                "fov:\n  min_degrees: 120\n  max_degrees: 100\n",
		"camera clip":               "world_camera:\n  near: 10\n  far: 1\n",
		"bad shape":                 "scene:\n  objects:\n    - shape: sphere\n      size: [1, 1, 1]\n      position: [0, 0, 0]\n",
		"bad light":                 "scene:\n  lights:\n    - type: spot\n",
		"spawn color":               "spawn:\n  color: [1, 2]\n",
		"log format":                "logging:\n  format: xml\n",
		"negative limit":            "engine:\n  frame_limit: -1\n",
		"camera no layers":          "view_model_camera:\n  layers: []\n",
		"fov above bounds":          "world_camera:\n  fov_degrees: 170\n",
		"fov below bounds":          "world_camera:\n  fov_degrees: 10\n",
		"fov outside custom bounds": "fov:\n  min_degrees: 30\n  max_degrees: 80\n",
		"pitch at vertical":         "player:\n  pitch_degrees: 90\n",
		"pitch below limit":         "player:\n  pitch_degrees: -89.9\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestParse_AcceptsStartingValuesAtBounds(t *testing.T) {
	limit := common.RadToDeg(controller.PitchLimit)
	cfg := Default()
	cfg.WorldCamera.FOVDegrees = cfg.FOV.MaxDegrees
	cfg.Player.PitchDegrees = -limit
	require.NoError(t, cfg.Validate())

	cfg.WorldCamera.FOVDegrees = cfg.FOV.MinDegrees
	cfg.Player.PitchDegrees = limit
	require.NoError(t, cfg.Validate())
}

func TestValidate_StartingFOVAndPitchWithinControllerLimits(t *testing.T) {
	cfg := Default()
	cfg.WorldCamera.FOVDegrees = 170
	cfg.Player.PitchDegrees = 90

	err := cfg.Validate()
	require.Error(t, err)
	assert.ErrorContains(t, err, "world_camera: fov_degrees 170 outside fov bounds [20, 160]")
	assert.ErrorContains(t, err, "player.pitch_degrees")
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	cfg := Default()
	cfg.Window.Width = 0
	cfg.Controls.Quit = "nope"

	err := cfg.Validate()
	require.Error(t, err)
	assert.ErrorContains(t, err, "window")
	assert.ErrorContains(t, err, "controls")
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "viewer.yaml")
	require.NoError(t, os.WriteFile(path, []byte("scene:\n  name: arena\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "arena", cfg.Scene.Name)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv(EnvPath, "")
	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	path := filepath.Join(t.TempDir(), "viewer.yaml")
	require.NoError(t, os.WriteFile(path, []byte("debug:\n  trace_cursor: true\n"), 0o644))
	t.Setenv(EnvPath, path)
	cfg, err = LoadFromEnv()
	require.NoError(t, err)
	assert.True(t, cfg.Debug.TraceCursor)
}

func TestBuildPlayer(t *testing.T) {
	cfg := Default()
	cfg.Player.YawDegrees = 90
	cfg.WorldCamera.FOVDegrees = 100

	p, err := cfg.BuildPlayer(2)
	require.NoError(t, err)

	assert.Equal(t, mgl32.Vec3{0, 1, 0}, p.Position())
	yaw, _, _ := common.EulerYXZ(p.Rotation())
	assert.InDelta(t, common.DegToRad(90), yaw, 1e-5)
	assert.Equal(t, mgl32.Vec2{0.003, 0.002}, p.Sensitivity())

	world := p.WorldModelCamera()
	assert.Equal(t, "world_model", world.Name())
	assert.InDelta(t, common.DegToRad(100), world.Projection().(*camera.PerspectiveProjection).Fov, 1e-5)
	assert.Equal(t, float32(2), world.Aspect())
	assert.Equal(t, "view_model", p.ViewModelCamera().Name())
}

func TestBuildPlayer_RejectsSharedLayers(t *testing.T) {
	cfg := Default()
	cfg.ViewModelCamera.Layers = []int{0, 1}

	_, err := cfg.BuildPlayer(1)
	assert.Error(t, err)
}

func TestBuildScene_DefaultContent(t *testing.T) {
	cfg := Default()
	p, err := cfg.BuildPlayer(1)
	require.NoError(t, err)

	s, err := cfg.BuildScene(p, zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, "main", s.Name())
	objs := s.Objects()
	require.Len(t, objs, 6)
	assert.Zero(t, s.CountSpawned())
	assert.Equal(t, game_object.ShapePlane, objs[0].Shape().Kind)
	assert.Equal(t, mgl32.Vec3{50, 0, 50}, objs[0].Shape().Size)
	assert.Equal(t, game_object.Box(2, 0.5, 1), objs[1].Shape())
	assert.Equal(t, mgl32.Vec3{0.75, 1.75, 0}, objs[3].Position())
	assert.Equal(t, game_object.Torus(2, 0.5), objs[5].Shape())

	lights := s.Lights()
	require.Len(t, lights, 1)
	assert.True(t, lights[0].CastsShadows())
	assert.Equal(t, common.Layers(0, 1), lights[0].Layers())
	assert.Equal(t, game_object.SRGB8(253, 164, 175).Color.Vec3(), lights[0].Color())

	got, ok := s.Player()
	require.True(t, ok)
	assert.Same(t, p, got)
}

func TestControllerOptions_ApplySpawnSettings(t *testing.T) {
	cfg := Default()
	cfg.Spawn.Size = []float32{1, 2, 3}
	cfg.Spawn.Color = []uint8{255, 0, 0}
	cfg.Controls.Spawn = "mouseright"

	p, err := cfg.BuildPlayer(1)
	require.NoError(t, err)
	cfg.Scene.Objects = nil
	s, err := cfg.BuildScene(p, nil)
	require.NoError(t, err)

	opts, err := cfg.ControllerOptions(nil)
	require.NoError(t, err)
	c := controller.NewController(s, s, opts...)

	c.HandleClick(input.Click{Button: common.MouseButtonRight})
	require.Equal(t, 1, s.Count())
	assert.Equal(t, game_object.Box(1, 2, 3), s.Objects()[0].Shape())
	assert.Equal(t, game_object.SRGB8(255, 0, 0), s.Objects()[0].Material())
}

func TestWindowOptions(t *testing.T) {
	assert.Len(t, Default().WindowOptions(), 8)
}
