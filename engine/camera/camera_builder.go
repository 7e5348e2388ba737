package camera

import (
	"github.com/Carmen-Shannon/oxy-fps/common"
	"github.com/go-gl/mathgl/mgl32"
)

type CameraBuilderOption func(*cameraImpl)

// WithName sets the camera's identifier used in logs and validation errors.
//
// Parameters:
//   - name: the camera name
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's name
func WithName(name string) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.name = name
	}
}

// WithProjection sets the camera's projection.
//
// Parameters:
//   - p: the projection to use
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's projection
func WithProjection(p Projection) CameraBuilderOption {
	return func(c *cameraImpl) {
		if p != nil {
			c.projection = p
		}
	}
}

// WithPerspective sets a perspective projection with the given field of view and clipping planes.
//
// Parameters:
//   - fov: vertical field of view in radians
//   - near: near plane distance
//   - far: far plane distance
//
// Returns:
//   - CameraBuilderOption: a function that sets a perspective projection
func WithPerspective(fov, near, far float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.projection = &PerspectiveProjection{Fov: fov, Near: near, Far: far}
	}
}

// WithAspect sets the camera's aspect ratio (width / height).
//
// Parameters:
//   - aspect: the aspect ratio to set
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's aspect ratio
func WithAspect(aspect float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		if aspect > 0 {
			c.aspect = aspect
		}
	}
}

// WithOrder sets the render order. Higher orders draw on top.
//
// Parameters:
//   - order: the render order
//
// Returns:
//   - CameraBuilderOption: a function that sets the render order
func WithOrder(order int) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.order = order
	}
}

// WithLayers sets the render partitions the camera draws.
//
// Parameters:
//   - layers: the layer mask
//
// Returns:
//   - CameraBuilderOption: a function that sets the layer mask
func WithLayers(layers common.RenderLayers) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.layers = layers
	}
}

// WithOffset sets the camera's position relative to its parent.
//
// Parameters:
//   - offset: local offset
//
// Returns:
//   - CameraBuilderOption: a function that sets the local offset
func WithOffset(offset mgl32.Vec3) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.offset = offset
	}
}
