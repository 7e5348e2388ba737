package controller

import (
	"github.com/Carmen-Shannon/oxy-fps/engine/game_object"
	"go.uber.org/zap"
)

// ControllerBuilderOption is a functional option for configuring a Controller.
type ControllerBuilderOption func(*controllerImpl)

// WithBindings replaces the default key and button bindings.
//
// Parameters:
//   - b: the bindings
//
// Returns:
//   - ControllerBuilderOption: option function to apply
func WithBindings(b Bindings) ControllerBuilderOption {
	return func(c *controllerImpl) {
		c.bindings = b
	}
}

// WithFOVLimits replaces the default field-of-view bounds and step.
//
// Parameters:
//   - limits: bounds and per-frame step, in radians
//
// Returns:
//   - ControllerBuilderOption: option function to apply
func WithFOVLimits(limits FOVLimits) ControllerBuilderOption {
	return func(c *controllerImpl) {
		c.limits = limits
	}
}

// WithSpawnShape sets the shape of spawned objects.
//
// Parameters:
//   - s: the shape
//
// Returns:
//   - ControllerBuilderOption: option function to apply
func WithSpawnShape(s game_object.Shape) ControllerBuilderOption {
	return func(c *controllerImpl) {
		c.spawnShape = s
	}
}

// WithSpawnMaterial sets the material of spawned objects.
//
// Parameters:
//   - m: the material
//
// Returns:
//   - ControllerBuilderOption: option function to apply
func WithSpawnMaterial(m game_object.Material) ControllerBuilderOption {
	return func(c *controllerImpl) {
		c.spawnMaterial = m
	}
}

// WithLogger sets the logger for controller events.
//
// Parameters:
//   - logger: the logger (nil keeps the no-op logger)
//
// Returns:
//   - ControllerBuilderOption: option function to apply
func WithLogger(logger *zap.Logger) ControllerBuilderOption {
	return func(c *controllerImpl) {
		if logger != nil {
			c.logger = logger.Named("controller")
		}
	}
}
