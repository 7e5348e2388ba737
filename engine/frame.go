package engine

import (
	"github.com/Carmen-Shannon/oxy-fps/common"
	"github.com/Carmen-Shannon/oxy-fps/engine/camera"
	"github.com/Carmen-Shannon/oxy-fps/engine/game_object"
	"github.com/Carmen-Shannon/oxy-fps/engine/light"
	"github.com/Carmen-Shannon/oxy-fps/engine/scene"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/mathgl/mgl32"
)

// ObjectInstance is one object's draw data for a frame.
type ObjectInstance struct {
	ID       uint64
	Shape    game_object.Shape
	Material game_object.Material
	Layers   common.RenderLayers
	Model    mgl32.Mat4
}

// CameraPass is one camera's view of the frame. Objects and Lights index into
// the owning Frame's slices and hold only entries sharing a layer with the camera.
type CameraPass struct {
	Name           string
	Order          int
	Layers         common.RenderLayers
	ViewProjection mgl32.Mat4
	// Uniform is the camera's GPU uniform, packed for upload.
	Uniform []byte

	Objects []int
	Lights  []int
}

// Surface is the window's presentation target. Descriptor is nil for a
// headless engine.
type Surface struct {
	Descriptor    *wgpu.SurfaceDescriptor
	Width, Height int
	// Resized is set on the first frame and on the first frame after each
	// window resize, when the renderer must reconfigure the surface.
	Resized bool
}

// Configuration returns the surface configuration for the current size.
//
// Parameters:
//   - format: the swap chain texture format chosen by the renderer
//   - mode: the present mode
//
// Returns:
//   - wgpu.SurfaceConfiguration: render-attachment configuration at Width x Height
func (s Surface) Configuration(format wgpu.TextureFormat, mode wgpu.PresentMode) wgpu.SurfaceConfiguration {
	return wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      format,
		Width:       uint32(max(s.Width, 0)),
		Height:      uint32(max(s.Height, 0)),
		PresentMode: mode,
		AlphaMode:   wgpu.CompositeAlphaModeAuto,
	}
}

// Frame is everything an external renderer needs to draw one frame. Passes are
// in draw order: a later pass composites over earlier ones.
type Frame struct {
	Index     uint64
	DeltaTime float32
	Surface   Surface

	Passes  []CameraPass
	Objects []ObjectInstance
	Lights  []light.Light
}

// BuildFrame snapshots the scene's current state into a Frame. The player's
// cameras must already be updated for this frame.
//
// Parameters:
//   - s: the scene to snapshot
//   - index: the frame number
//   - dt: elapsed frame time in seconds
//
// Returns:
//   - Frame: the frame
func BuildFrame(s scene.Scene, index uint64, dt float32) Frame {
	f := Frame{
		Index:     index,
		DeltaTime: dt,
		Lights:    s.Lights(),
	}

	objects := s.Objects()
	f.Objects = make([]ObjectInstance, len(objects))
	for i, obj := range objects {
		f.Objects[i] = ObjectInstance{
			ID:       obj.ID(),
			Shape:    obj.Shape(),
			Material: obj.Material(),
			Layers:   obj.Layers(),
			Model:    obj.ModelMatrix(),
		}
	}

	for _, c := range camera.SortByOrder(s.Cameras()) {
		uniform := c.Uniform()
		pass := CameraPass{
			Name:           c.Name(),
			Order:          c.Order(),
			Layers:         c.Layers(),
			ViewProjection: c.ViewProjectionMatrix(),
			Uniform:        uniform.Marshal(),
		}
		for i, obj := range f.Objects {
			if obj.Layers.Intersects(pass.Layers) {
				pass.Objects = append(pass.Objects, i)
			}
		}
		for i, l := range f.Lights {
			if l.Layers().Intersects(pass.Layers) {
				pass.Lights = append(pass.Lights, i)
			}
		}
		f.Passes = append(f.Passes, pass)
	}
	return f
}
