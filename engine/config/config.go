package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/Carmen-Shannon/oxy-fps/common"
	"github.com/Carmen-Shannon/oxy-fps/engine/controller"
	"github.com/Carmen-Shannon/oxy-fps/engine/game_object"
	"github.com/Carmen-Shannon/oxy-fps/engine/logger"
	"gopkg.in/yaml.v3"
)

// EnvPath names the environment variable hosts read the config file path from.
const EnvPath = "OXY_FPS_CONFIG"

// Config is the full viewer configuration. Every section has a default; a
// config file only needs the keys it changes.
type Config struct {
	Window          Window        `yaml:"window"`
	Engine          Engine        `yaml:"engine"`
	Logging         logger.Config `yaml:"logging"`
	Debug           Debug         `yaml:"debug"`
	Player          Player        `yaml:"player"`
	WorldCamera     Camera        `yaml:"world_camera"`
	ViewModelCamera Camera        `yaml:"view_model_camera"`
	FOV             FOV           `yaml:"fov"`
	Controls        Controls      `yaml:"controls"`
	Spawn           Spawn         `yaml:"spawn"`
	Scene           Scene         `yaml:"scene"`
}

type Window struct {
	Title          string `yaml:"title"`
	Width          int    `yaml:"width"`
	Height         int    `yaml:"height"`
	MinWidth       int    `yaml:"min_width"`
	MinHeight      int    `yaml:"min_height"`
	MaxWidth       int    `yaml:"max_width"`
	MaxHeight      int    `yaml:"max_height"`
	RawMouseMotion bool   `yaml:"raw_mouse_motion"`
}

type Engine struct {
	// FrameLimit caps frames per second; 0 is uncapped.
	FrameLimit      float64       `yaml:"frame_limit"`
	Profiling       bool          `yaml:"profiling"`
	ProfileInterval time.Duration `yaml:"profile_interval"`
}

type Debug struct {
	TraceCursor bool `yaml:"trace_cursor"`
}

type Player struct {
	Position     []float32 `yaml:"position"`
	YawDegrees   float32   `yaml:"yaw_degrees"`
	PitchDegrees float32   `yaml:"pitch_degrees"`
	// Sensitivity is the (yaw, pitch) gain in radians per unit of mouse motion.
	Sensitivity []float32 `yaml:"sensitivity"`
}

type Camera struct {
	Name       string    `yaml:"name"`
	FOVDegrees float32   `yaml:"fov_degrees"`
	Near       float32   `yaml:"near"`
	Far        float32   `yaml:"far"`
	Order      int       `yaml:"order"`
	Layers     []int     `yaml:"layers"`
	Offset     []float32 `yaml:"offset"`
}

type FOV struct {
	MinDegrees  float32 `yaml:"min_degrees"`
	MaxDegrees  float32 `yaml:"max_degrees"`
	StepDegrees float32 `yaml:"step_degrees"`
}

// Controls holds binding names as accepted by common.ParseKey and common.ParseMouseButton.
type Controls struct {
	Forward     string `yaml:"forward"`
	Back        string `yaml:"back"`
	Left        string `yaml:"left"`
	Right       string `yaml:"right"`
	Up          string `yaml:"up"`
	Down        string `yaml:"down"`
	Quit        string `yaml:"quit"`
	FOVDecrease string `yaml:"fov_decrease"`
	FOVIncrease string `yaml:"fov_increase"`
	Capture     string `yaml:"capture"`
	Spawn       string `yaml:"spawn"`
}

type Spawn struct {
	Shape string    `yaml:"shape"`
	Size  []float32 `yaml:"size"`
	Color []uint8   `yaml:"color"`
}

type Scene struct {
	Name    string   `yaml:"name"`
	Objects []Object `yaml:"objects"`
	Lights  []Light  `yaml:"lights"`
}

// Object declares a static scene object. Size follows game_object.Shape.
type Object struct {
	Shape      string    `yaml:"shape"`
	Size       []float32 `yaml:"size"`
	Position   []float32 `yaml:"position"`
	YawDegrees float32   `yaml:"yaw_degrees"`
	Color      []uint8   `yaml:"color"`
	Layers     []int     `yaml:"layers"`
}

type Light struct {
	Type      string    `yaml:"type"`
	Position  []float32 `yaml:"position"`
	Direction []float32 `yaml:"direction"`
	Color     []uint8   `yaml:"color"`
	Intensity float32   `yaml:"intensity"`
	Range     float32   `yaml:"range"`
	Shadows   bool      `yaml:"shadows"`
	Layers    []int     `yaml:"layers"`
}

// Default returns the built-in configuration: the default player and cameras,
// the standard bindings and the demo scene.
func Default() Config {
	return Config{
		Window: Window{
			Title:          "oxy-fps",
			Width:          1280,
			Height:         720,
			MinWidth:       600,
			MinHeight:      200,
			MaxWidth:       2560,
			MaxHeight:      1440,
			RawMouseMotion: true,
		},
		Engine: Engine{
			ProfileInterval: time.Second,
		},
		Logging: logger.DefaultConfig(),
		Player: Player{
			Position:    []float32{0, 1, 0},
			Sensitivity: []float32{0.003, 0.002},
		},
		WorldCamera: Camera{
			Name:       "world_model",
			FOVDegrees: 90,
			Near:       0.1,
			Far:        1000,
			Order:      0,
			Layers:     []int{common.DefaultRenderLayer},
			Offset:     []float32{0, 0, 0},
		},
		ViewModelCamera: Camera{
			Name:       "view_model",
			FOVDegrees: 70,
			Near:       0.1,
			Far:        1000,
			Order:      1,
			Layers:     []int{common.ViewModelRenderLayer},
			Offset:     []float32{0, 0, 0},
		},
		FOV: FOV{
			MinDegrees:  20,
			MaxDegrees:  160,
			StepDegrees: 1,
		},
		Controls: Controls{
			Forward:     "w",
			Back:        "s",
			Left:        "a",
			Right:       "d",
			Up:          "space",
			Down:        "leftshift",
			Quit:        "p",
			FOVDecrease: "up",
			FOVIncrease: "down",
			Capture:     "mouseleft",
			Spawn:       "mouseleft",
		},
		Spawn: Spawn{
			Shape: "box",
			Size:  []float32{0.5, 0.5, 0.5},
			Color: []uint8{124, 144, 255},
		},
		Scene: Scene{
			Name: "main",
			Objects: []Object{
				{Shape: "plane", Size: []float32{50, 0, 50}, Position: []float32{0, 0, 0}, Color: []uint8{255, 255, 255}},
				{Shape: "box", Size: []float32{2, 0.5, 1}, Position: []float32{0, 0.25, -3}, Color: []uint8{255, 255, 255}},
				{Shape: "box", Size: []float32{2, 0.5, 1}, Position: []float32{0.1, 0.45, -4}, Color: []uint8{255, 255, 255}},
				{Shape: "box", Size: []float32{2, 0.5, 1}, Position: []float32{0.75, 1.75, 0}, Color: []uint8{255, 255, 255}},
				{Shape: "torus", Size: []float32{2, 0.5, 0}, Position: []float32{1, 0.4, 3}, Color: []uint8{255, 255, 255}},
				{Shape: "torus", Size: []float32{2, 0.5, 0}, Position: []float32{2, 1, 5}, Color: []uint8{255, 255, 255}},
			},
			Lights: []Light{
				{
					Type:      "point",
					Position:  []float32{-3, 4, -0.75},
					Color:     []uint8{253, 164, 175},
					Intensity: 1,
					Range:     20,
					Shadows:   true,
					Layers:    []int{common.DefaultRenderLayer, common.ViewModelRenderLayer},
				},
			},
		},
	}
}

// Load reads the YAML file at path over Default and validates the result.
//
// Parameters:
//   - path: the config file path
//
// Returns:
//   - Config: the merged configuration
//   - error: error if the file cannot be read, parsed or validated
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadFromEnv loads the file named by EnvPath, or returns Default when the
// variable is unset.
//
// Returns:
//   - Config: the configuration
//   - error: error from Load
func LoadFromEnv() (Config, error) {
	path := strings.TrimSpace(os.Getenv(EnvPath))
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

// Parse decodes YAML over Default and validates the result. Unknown keys are errors.
//
// Parameters:
//   - data: the YAML document
//
// Returns:
//   - Config: the merged configuration
//   - error: error if the document is malformed or invalid
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every section and reports all problems found.
func (c Config) Validate() error {
	var errs []error
	add := func(section string, err error) {
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", section, err))
		}
	}

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		add("window", fmt.Errorf("size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Engine.FrameLimit < 0 {
		add("engine", fmt.Errorf("frame_limit must not be negative"))
	}
	add("logging", c.Logging.Validate())

	if _, err := common.Vec3FromSlice(c.Player.Position); err != nil {
		add("player.position", err)
	}
	if len(c.Player.Sensitivity) != 2 {
		add("player.sensitivity", fmt.Errorf("expected 2 components, got %d", len(c.Player.Sensitivity)))
	}

	add("world_camera", c.WorldCamera.validate())
	add("view_model_camera", c.ViewModelCamera.validate())

	if c.FOV.MinDegrees <= 0 || c.FOV.MaxDegrees >= 180 || c.FOV.MinDegrees > c.FOV.MaxDegrees {
		add("fov", fmt.Errorf("bounds must satisfy 0 < min <= max < 180, got [%v, %v]", c.FOV.MinDegrees, c.FOV.MaxDegrees))
	}
	if c.FOV.StepDegrees <= 0 {
		add("fov", fmt.Errorf("step_degrees must be positive"))
	}
	if fov := c.WorldCamera.FOVDegrees; fov < c.FOV.MinDegrees || fov > c.FOV.MaxDegrees {
		add("world_camera", fmt.Errorf("fov_degrees %v outside fov bounds [%v, %v]", fov, c.FOV.MinDegrees, c.FOV.MaxDegrees))
	}
	if limit := common.RadToDeg(controller.PitchLimit); c.Player.PitchDegrees < -limit || c.Player.PitchDegrees > limit {
		add("player.pitch_degrees", fmt.Errorf("must be within ±%v, got %v", limit, c.Player.PitchDegrees))
	}

	_, err := c.Bindings()
	add("controls", err)

	_, err = c.SpawnShape()
	add("spawn", err)
	_, err = srgb(c.Spawn.Color)
	add("spawn.color", err)

	for i, o := range c.Scene.Objects {
		_, err := o.build()
		add(fmt.Sprintf("scene.objects[%d]", i), err)
	}
	for i, l := range c.Scene.Lights {
		_, err := l.build()
		add(fmt.Sprintf("scene.lights[%d]", i), err)
	}

	return errors.Join(errs...)
}

func (c Camera) validate() error {
	if c.FOVDegrees <= 0 || c.FOVDegrees >= 180 {
		return fmt.Errorf("fov_degrees must be in (0, 180), got %v", c.FOVDegrees)
	}
	if c.Near <= 0 || c.Far <= c.Near {
		return fmt.Errorf("clip planes must satisfy 0 < near < far, got near=%v far=%v", c.Near, c.Far)
	}
	if len(c.Layers) == 0 {
		return fmt.Errorf("at least one layer is required")
	}
	for _, l := range c.Layers {
		if l < 0 || l >= common.MaxRenderLayers {
			return fmt.Errorf("layer %d out of range [0, %d)", l, common.MaxRenderLayers)
		}
	}
	if _, err := common.Vec3FromSlice(c.Offset); err != nil {
		return fmt.Errorf("offset: %w", err)
	}
	return nil
}

func srgb(c []uint8) (game_object.Material, error) {
	if len(c) != 3 {
		return game_object.Material{}, fmt.Errorf("expected 3 sRGB components, got %d", len(c))
	}
	return game_object.SRGB8(c[0], c[1], c[2]), nil
}

func parseShape(kind string, size []float32) (game_object.Shape, error) {
	k, err := game_object.ParseShapeKind(kind)
	if err != nil {
		return game_object.Shape{}, err
	}
	v, err := common.Vec3FromSlice(size)
	if err != nil {
		return game_object.Shape{}, fmt.Errorf("size: %w", err)
	}
	switch k {
	case game_object.ShapePlane:
		if v[0] <= 0 || v[2] <= 0 {
			return game_object.Shape{}, fmt.Errorf("plane half sizes must be positive")
		}
	case game_object.ShapeTorus:
		if v[0] <= 0 || v[1] <= 0 {
			return game_object.Shape{}, fmt.Errorf("torus radii must be positive")
		}
	default:
		if v[0] <= 0 || v[1] <= 0 || v[2] <= 0 {
			return game_object.Shape{}, fmt.Errorf("box extents must be positive")
		}
	}
	return game_object.Shape{Kind: k, Size: v}, nil
}

func layersOrDefault(layers []int) common.RenderLayers {
	if len(layers) == 0 {
		return common.Layers(common.DefaultRenderLayer)
	}
	return common.Layers(layers...)
}
