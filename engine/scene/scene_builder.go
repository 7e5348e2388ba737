package scene

import (
	"github.com/Carmen-Shannon/oxy-fps/engine/game_object"
	"github.com/Carmen-Shannon/oxy-fps/engine/light"
	"github.com/Carmen-Shannon/oxy-fps/engine/player"
	"go.uber.org/zap"
)

// SceneBuilderOption is a functional option for configuring a Scene.
type SceneBuilderOption func(*scene)

// WithLogger sets the logger used for scene diagnostics.
//
// Parameters:
//   - logger: the logger (nil keeps the no-op logger)
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithLogger(logger *zap.Logger) SceneBuilderOption {
	return func(s *scene) {
		if logger != nil {
			s.logger = logger.Named("scene")
		}
	}
}

// WithPlayer registers the scene's player during construction.
//
// Parameters:
//   - p: the player
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithPlayer(p player.Player) SceneBuilderOption {
	return func(s *scene) {
		s.AddPlayer(p)
	}
}

// WithObjects stores declared static objects during construction.
//
// Parameters:
//   - objs: the objects to store
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithObjects(objs ...game_object.GameObject) SceneBuilderOption {
	return func(s *scene) {
		for _, obj := range objs {
			if obj != nil {
				s.Add(obj)
			}
		}
	}
}

// WithLights adds static lights during construction.
//
// Parameters:
//   - lights: the lights to add
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithLights(lights ...light.Light) SceneBuilderOption {
	return func(s *scene) {
		for _, l := range lights {
			s.AddLight(l)
		}
	}
}
