package camera

import (
	"github.com/Carmen-Shannon/oxy-fps/common"
	"github.com/go-gl/mathgl/mgl32"
)

// Projection describes how a camera maps view space onto clip space.
// Implementations are held by pointer so controllers can mutate them in place.
type Projection interface {
	// Matrix returns the projection matrix for the given viewport aspect ratio.
	//
	// Parameters:
	//   - aspect: viewport aspect ratio (width / height)
	//
	// Returns:
	//   - mgl32.Mat4: the projection matrix (column-major, WebGPU depth range)
	Matrix(aspect float32) mgl32.Mat4
}

// PerspectiveProjection is a pinhole projection with a mutable vertical field of view.
type PerspectiveProjection struct {
	// Fov is the vertical field of view in radians.
	Fov float32
	// Near is the near clipping plane distance.
	Near float32
	// Far is the far clipping plane distance.
	Far float32
}

// OrthographicProjection is a parallel projection.
type OrthographicProjection struct {
	// HalfHeight is half of the vertical extent of the view volume.
	HalfHeight float32
	// Near is the near clipping plane distance.
	Near float32
	// Far is the far clipping plane distance.
	Far float32
}

var (
	_ Projection = &PerspectiveProjection{}
	_ Projection = &OrthographicProjection{}
)

// NewPerspectiveProjection creates a perspective projection with the given field of view
// and the default clipping planes (0.1, 1000).
//
// Parameters:
//   - fov: vertical field of view in radians
//
// Returns:
//   - *PerspectiveProjection: the projection
func NewPerspectiveProjection(fov float32) *PerspectiveProjection {
	return &PerspectiveProjection{Fov: fov, Near: 0.1, Far: 1000}
}

func (p *PerspectiveProjection) Matrix(aspect float32) mgl32.Mat4 {
	return common.Perspective(p.Fov, aspect, p.Near, p.Far)
}

func (o *OrthographicProjection) Matrix(aspect float32) mgl32.Mat4 {
	return common.Orthographic(o.HalfHeight, aspect, o.Near, o.Far)
}
