package config

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-fps/common"
	"github.com/Carmen-Shannon/oxy-fps/engine/camera"
	"github.com/Carmen-Shannon/oxy-fps/engine/controller"
	"github.com/Carmen-Shannon/oxy-fps/engine/game_object"
	"github.com/Carmen-Shannon/oxy-fps/engine/light"
	"github.com/Carmen-Shannon/oxy-fps/engine/player"
	"github.com/Carmen-Shannon/oxy-fps/engine/scene"
	"github.com/Carmen-Shannon/oxy-fps/engine/window"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// Bindings resolves the control names into key and button codes.
//
// Returns:
//   - controller.Bindings: the bindings
//   - error: error naming the first unknown key or button
func (c Config) Bindings() (controller.Bindings, error) {
	var b controller.Bindings
	keys := []struct {
		name string
		dst  *uint32
	}{
		{c.Controls.Forward, &b.Forward},
		{c.Controls.Back, &b.Back},
		{c.Controls.Left, &b.Left},
		{c.Controls.Right, &b.Right},
		{c.Controls.Up, &b.Up},
		{c.Controls.Down, &b.Down},
		{c.Controls.Quit, &b.Quit},
		{c.Controls.FOVDecrease, &b.FOVDecrease},
		{c.Controls.FOVIncrease, &b.FOVIncrease},
	}
	for _, k := range keys {
		code, err := common.ParseKey(k.name)
		if err != nil {
			return controller.Bindings{}, err
		}
		*k.dst = code
	}

	var err error
	if b.Capture, err = common.ParseMouseButton(c.Controls.Capture); err != nil {
		return controller.Bindings{}, err
	}
	if b.Spawn, err = common.ParseMouseButton(c.Controls.Spawn); err != nil {
		return controller.Bindings{}, err
	}
	return b, nil
}

// FOVLimits converts the fov section to radians.
func (c Config) FOVLimits() controller.FOVLimits {
	return controller.FOVLimits{
		Min:  common.DegToRad(c.FOV.MinDegrees),
		Max:  common.DegToRad(c.FOV.MaxDegrees),
		Step: common.DegToRad(c.FOV.StepDegrees),
	}
}

// SpawnShape returns the shape of spawned objects.
func (c Config) SpawnShape() (game_object.Shape, error) {
	return parseShape(c.Spawn.Shape, c.Spawn.Size)
}

// ControllerOptions returns the controller options described by the config.
//
// Parameters:
//   - logger: the logger passed to the controller
//
// Returns:
//   - []controller.ControllerBuilderOption: the options
//   - error: error if the controls or spawn sections are invalid
func (c Config) ControllerOptions(logger *zap.Logger) ([]controller.ControllerBuilderOption, error) {
	bindings, err := c.Bindings()
	if err != nil {
		return nil, fmt.Errorf("controls: %w", err)
	}
	shape, err := c.SpawnShape()
	if err != nil {
		return nil, fmt.Errorf("spawn: %w", err)
	}
	material, err := srgb(c.Spawn.Color)
	if err != nil {
		return nil, fmt.Errorf("spawn: %w", err)
	}
	return []controller.ControllerBuilderOption{
		controller.WithBindings(bindings),
		controller.WithFOVLimits(c.FOVLimits()),
		controller.WithSpawnShape(shape),
		controller.WithSpawnMaterial(material),
		controller.WithLogger(logger),
	}, nil
}

// WindowOptions returns the window options described by the config.
func (c Config) WindowOptions() []window.WindowBuilderOption {
	return []window.WindowBuilderOption{
		window.WithTitle(c.Window.Title),
		window.WithWidth(c.Window.Width),
		window.WithHeight(c.Window.Height),
		window.WithMinWidth(c.Window.MinWidth),
		window.WithMinHeight(c.Window.MinHeight),
		window.WithMaxWidth(c.Window.MaxWidth),
		window.WithMaxHeight(c.Window.MaxHeight),
		window.WithRawMouseMotion(c.Window.RawMouseMotion),
	}
}

func (c Camera) build(aspect float32) (camera.Camera, error) {
	offset, err := common.Vec3FromSlice(c.Offset)
	if err != nil {
		return nil, fmt.Errorf("offset: %w", err)
	}
	return camera.NewCamera(
		camera.WithName(c.Name),
		camera.WithPerspective(common.DegToRad(c.FOVDegrees), c.Near, c.Far),
		camera.WithAspect(aspect),
		camera.WithOrder(c.Order),
		camera.WithLayers(common.Layers(c.Layers...)),
		camera.WithOffset(offset),
	), nil
}

// BuildPlayer creates the player and its two cameras.
//
// Parameters:
//   - aspect: initial viewport aspect ratio
//
// Returns:
//   - player.Player: the player
//   - error: error if a vector is malformed or the camera layering is invalid
func (c Config) BuildPlayer(aspect float32) (player.Player, error) {
	position, err := common.Vec3FromSlice(c.Player.Position)
	if err != nil {
		return nil, fmt.Errorf("player position: %w", err)
	}
	if len(c.Player.Sensitivity) != 2 {
		return nil, fmt.Errorf("player sensitivity: expected 2 components, got %d", len(c.Player.Sensitivity))
	}
	world, err := c.WorldCamera.build(aspect)
	if err != nil {
		return nil, fmt.Errorf("world camera: %w", err)
	}
	view, err := c.ViewModelCamera.build(aspect)
	if err != nil {
		return nil, fmt.Errorf("view model camera: %w", err)
	}

	return player.NewPlayer(
		player.WithPosition(position),
		player.WithYawPitch(common.DegToRad(c.Player.YawDegrees), common.DegToRad(c.Player.PitchDegrees)),
		player.WithSensitivity(mgl32.Vec2{c.Player.Sensitivity[0], c.Player.Sensitivity[1]}),
		player.WithWorldModelCamera(world),
		player.WithViewModelCamera(view),
	)
}

func (o Object) build() (game_object.GameObject, error) {
	shape, err := parseShape(o.Shape, o.Size)
	if err != nil {
		return nil, err
	}
	position, err := common.Vec3FromSlice(o.Position)
	if err != nil {
		return nil, fmt.Errorf("position: %w", err)
	}
	material := game_object.White
	if len(o.Color) > 0 {
		if material, err = srgb(o.Color); err != nil {
			return nil, err
		}
	}
	return game_object.NewGameObject(
		game_object.WithShape(shape),
		game_object.WithMaterial(material),
		game_object.WithLayers(layersOrDefault(o.Layers)),
		game_object.WithPosition(position),
		game_object.WithRotation(mgl32.QuatRotate(common.DegToRad(o.YawDegrees), common.AxisY)),
	), nil
}

func (l Light) build() (light.Light, error) {
	lt, err := light.ParseLightType(l.Type)
	if err != nil {
		return nil, err
	}
	opts := []light.LightBuilderOption{
		light.WithCastsShadows(l.Shadows),
		light.WithLayers(layersOrDefault(l.Layers)),
	}
	if len(l.Position) > 0 {
		p, err := common.Vec3FromSlice(l.Position)
		if err != nil {
			return nil, fmt.Errorf("position: %w", err)
		}
		opts = append(opts, light.WithPosition(p))
	}
	if len(l.Direction) > 0 {
		d, err := common.Vec3FromSlice(l.Direction)
		if err != nil {
			return nil, fmt.Errorf("direction: %w", err)
		}
		opts = append(opts, light.WithDirection(d))
	}
	if len(l.Color) > 0 {
		m, err := srgb(l.Color)
		if err != nil {
			return nil, err
		}
		opts = append(opts, light.WithColor(m.Color.Vec3()))
	}
	if l.Intensity > 0 {
		opts = append(opts, light.WithIntensity(l.Intensity))
	}
	if l.Range > 0 {
		opts = append(opts, light.WithRange(l.Range))
	}
	return light.NewLight(lt, opts...), nil
}

// BuildScene creates the scene with the given player and the configured static
// objects and lights.
//
// Parameters:
//   - p: the scene's player (nil for a scene without one)
//   - logger: the scene logger
//
// Returns:
//   - scene.Scene: the scene
//   - error: error if an object or light declaration is invalid
func (c Config) BuildScene(p player.Player, logger *zap.Logger) (scene.Scene, error) {
	objects := make([]game_object.GameObject, 0, len(c.Scene.Objects))
	for i, o := range c.Scene.Objects {
		obj, err := o.build()
		if err != nil {
			return nil, fmt.Errorf("scene object %d: %w", i, err)
		}
		objects = append(objects, obj)
	}
	lights := make([]light.Light, 0, len(c.Scene.Lights))
	for i, l := range c.Scene.Lights {
		built, err := l.build()
		if err != nil {
			return nil, fmt.Errorf("scene light %d: %w", i, err)
		}
		lights = append(lights, built)
	}

	return scene.NewScene(c.Scene.Name,
		scene.WithLogger(logger),
		scene.WithPlayer(p),
		scene.WithObjects(objects...),
		scene.WithLights(lights...),
	), nil
}
