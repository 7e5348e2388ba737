package camera

import (
	"fmt"
	"sort"

	"github.com/Carmen-Shannon/oxy-fps/common"
	"github.com/go-gl/mathgl/mgl32"
)

type cameraImpl struct {
	name string

	projection Projection
	aspect     float32

	order  int
	layers common.RenderLayers

	// offset is the camera position relative to its parent.
	offset mgl32.Vec3

	position             mgl32.Vec3
	viewMatrix           mgl32.Mat4
	projectionMatrix     mgl32.Mat4
	viewProjectionMatrix mgl32.Mat4
}

// Camera defines a camera attached to a parent transform (the player).
// The camera holds a projection, a render order and a render layer mask, and
// computes view/projection matrices from its parent's transform via Update().
//
// Cameras are not safe for concurrent use; the frame loop is their only writer.
type Camera interface {
	// Name returns the camera's identifier.
	//
	// Returns:
	//   - string: the camera name
	Name() string

	// Projection returns the camera's projection. Perspective cameras return a
	// *PerspectiveProjection which may be mutated in place.
	//
	// Returns:
	//   - Projection: the projection
	Projection() Projection

	// Aspect returns the aspect ratio (width / height).
	//
	// Returns:
	//   - float32: the aspect ratio
	Aspect() float32

	// Order returns the render order. Cameras with a higher order draw after
	// (on top of) cameras with a lower order.
	//
	// Returns:
	//   - int: the render order
	Order() int

	// Layers returns the render partitions this camera draws.
	//
	// Returns:
	//   - common.RenderLayers: the layer mask
	Layers() common.RenderLayers

	// Offset returns the camera's position relative to its parent.
	//
	// Returns:
	//   - mgl32.Vec3: local offset
	Offset() mgl32.Vec3

	// Position returns the camera's world-space position as of the last Update.
	//
	// Returns:
	//   - mgl32.Vec3: world-space position
	Position() mgl32.Vec3

	// ViewMatrix returns the view matrix computed by the last Update.
	//
	// Returns:
	//   - mgl32.Mat4: the view matrix (column-major)
	ViewMatrix() mgl32.Mat4

	// ProjectionMatrix returns the projection matrix computed by the last Update.
	//
	// Returns:
	//   - mgl32.Mat4: the projection matrix (column-major)
	ProjectionMatrix() mgl32.Mat4

	// ViewProjectionMatrix returns projection * view as computed by the last Update.
	//
	// Returns:
	//   - mgl32.Mat4: the combined matrix (column-major)
	ViewProjectionMatrix() mgl32.Mat4

	// Uniform packs the camera state into its GPU uniform layout.
	//
	// Returns:
	//   - GPUCameraUniform: the uniform data
	Uniform() GPUCameraUniform

	// Update recomputes the camera matrices from its parent's transform.
	// Should be called once per frame after the player has moved.
	//
	// Parameters:
	//   - parentPosition: world-space position of the parent
	//   - parentRotation: world-space rotation of the parent
	Update(parentPosition mgl32.Vec3, parentRotation mgl32.Quat)

	// SetAspect sets the aspect ratio (width / height).
	//
	// Parameters:
	//   - aspect: the aspect ratio
	SetAspect(aspect float32)
}

var _ Camera = &cameraImpl{}

// NewCamera creates a new Camera with a 45° perspective projection, order 0 and
// the default render layer. The matrices are valid once Update has been called.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		name:       "camera",
		projection: NewPerspectiveProjection(common.DegToRad(45)),
		aspect:     1.0,
		layers:     common.Layers(common.DefaultRenderLayer),
	}
	for _, option := range options {
		option(c)
	}
	c.Update(mgl32.Vec3{}, mgl32.QuatIdent())
	return c
}

func (c *cameraImpl) Name() string {
	return c.name
}

func (c *cameraImpl) Projection() Projection {
	return c.projection
}

func (c *cameraImpl) Aspect() float32 {
	return c.aspect
}

func (c *cameraImpl) Order() int {
	return c.order
}

func (c *cameraImpl) Layers() common.RenderLayers {
	return c.layers
}

func (c *cameraImpl) Offset() mgl32.Vec3 {
	return c.offset
}

func (c *cameraImpl) Position() mgl32.Vec3 {
	return c.position
}

func (c *cameraImpl) ViewMatrix() mgl32.Mat4 {
	return c.viewMatrix
}

func (c *cameraImpl) ProjectionMatrix() mgl32.Mat4 {
	return c.projectionMatrix
}

func (c *cameraImpl) ViewProjectionMatrix() mgl32.Mat4 {
	return c.viewProjectionMatrix
}

func (c *cameraImpl) Uniform() GPUCameraUniform {
	return GPUCameraUniform{
		ViewProj:       c.viewProjectionMatrix,
		CameraPosition: c.position,
	}
}

func (c *cameraImpl) Update(parentPosition mgl32.Vec3, parentRotation mgl32.Quat) {
	c.position = parentPosition.Add(parentRotation.Rotate(c.offset))
	c.viewMatrix = common.ViewMatrix(c.position, parentRotation)
	c.projectionMatrix = c.projection.Matrix(c.aspect)
	c.viewProjectionMatrix = c.projectionMatrix.Mul4(c.viewMatrix)
}

func (c *cameraImpl) SetAspect(aspect float32) {
	if aspect <= 0 {
		return
	}
	c.aspect = aspect
	c.projectionMatrix = c.projection.Matrix(c.aspect)
	c.viewProjectionMatrix = c.projectionMatrix.Mul4(c.viewMatrix)
}

// SortByOrder returns the cameras sorted by ascending render order, i.e. in draw order.
//
// Parameters:
//   - cams: the cameras to sort (not modified)
//
// Returns:
//   - []Camera: a sorted copy
func SortByOrder(cams []Camera) []Camera {
	out := make([]Camera, 0, len(cams))
	for _, c := range cams {
		if c != nil {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order() < out[j].Order() })
	return out
}

// ValidateLayering checks that every render layer is drawn by at most one camera
// and that no two cameras share a render order, so the composite order of each
// layer is well defined.
//
// Parameters:
//   - cams: the cameras rendering into the same window
//
// Returns:
//   - error: error describing the first conflict found
func ValidateLayering(cams ...Camera) error {
	owners := make(map[int]string)
	orders := make(map[int]string)
	for _, c := range cams {
		if c == nil {
			continue
		}
		if other, ok := orders[c.Order()]; ok {
			return fmt.Errorf("cameras %q and %q share render order %d", other, c.Name(), c.Order())
		}
		orders[c.Order()] = c.Name()
		for _, l := range c.Layers().Indices() {
			if other, ok := owners[l]; ok {
				return fmt.Errorf("render layer %d is drawn by both %q and %q", l, other, c.Name())
			}
			owners[l] = c.Name()
		}
	}
	return nil
}
