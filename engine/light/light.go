package light

import (
	"fmt"
	"strings"

	"github.com/Carmen-Shannon/oxy-fps/common"
	"github.com/go-gl/mathgl/mgl32"
)

// LightType identifies the kind of light source.
type LightType int

const (
	// LightTypeDirectional represents a light with no position, only direction.
	LightTypeDirectional LightType = iota

	// LightTypePoint represents a light that emits in all directions from a position.
	// Attenuates with distance up to a configurable range.
	LightTypePoint
)

// ParseLightType resolves a light type name ("point" or "directional").
//
// Parameters:
//   - name: the type name (case-insensitive)
//
// Returns:
//   - LightType: the light type
//   - error: error if the name is unknown
func ParseLightType(name string) (LightType, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "point", "":
		return LightTypePoint, nil
	case "directional":
		return LightTypeDirectional, nil
	default:
		return 0, fmt.Errorf("unknown light type %q", name)
	}
}

// lightImpl is the implementation of the Light interface.
type lightImpl struct {
	lightType    LightType
	position     mgl32.Vec3
	direction    mgl32.Vec3
	color        mgl32.Vec3
	intensity    float32
	lightRange   float32
	castsShadows bool
	layers       common.RenderLayers
}

// Light defines a static light source declared with the scene.
//
// Lights carry a render layer mask like cameras and objects do: a light
// illuminates only what is drawn by cameras whose layers intersect its own.
// A light on both the default and the view-model layer lights the world and the
// view model alike.
type Light interface {
	// Type returns the kind of light source.
	//
	// Returns:
	//   - LightType: the light type
	Type() LightType

	// Position returns the world-space position of the light.
	// Meaningless for directional lights.
	//
	// Returns:
	//   - mgl32.Vec3: position
	Position() mgl32.Vec3

	// Direction returns the normalized direction of a directional light.
	//
	// Returns:
	//   - mgl32.Vec3: normalized direction
	Direction() mgl32.Vec3

	// Color returns the RGB color of the light.
	//
	// Returns:
	//   - mgl32.Vec3: color as (r, g, b)
	Color() mgl32.Vec3

	// Intensity returns the scalar intensity multiplier for the light.
	Intensity() float32

	// Range returns the maximum attenuation distance for point lights.
	Range() float32

	// CastsShadows returns whether this light is eligible for shadow map generation.
	CastsShadows() bool

	// Layers returns the render partitions this light illuminates.
	Layers() common.RenderLayers
}

var _ Light = &lightImpl{}

// NewLight creates a new Light of the given type. Defaults: white, intensity 1,
// range 20, no shadows, default render layer.
//
// Parameters:
//   - lightType: the kind of light source
//   - opts: variadic list of LightBuilderOption functions to configure the light
//
// Returns:
//   - Light: the configured light
func NewLight(lightType LightType, opts ...LightBuilderOption) Light {
	l := &lightImpl{
		lightType:  lightType,
		direction:  mgl32.Vec3{0, -1, 0},
		color:      mgl32.Vec3{1, 1, 1},
		intensity:  1.0,
		lightRange: 20.0,
		layers:     common.Layers(common.DefaultRenderLayer),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *lightImpl) Type() LightType {
	return l.lightType
}

func (l *lightImpl) Position() mgl32.Vec3 {
	return l.position
}

func (l *lightImpl) Direction() mgl32.Vec3 {
	return l.direction
}

func (l *lightImpl) Color() mgl32.Vec3 {
	return l.color
}

func (l *lightImpl) Intensity() float32 {
	return l.intensity
}

func (l *lightImpl) Range() float32 {
	return l.lightRange
}

func (l *lightImpl) CastsShadows() bool {
	return l.castsShadows
}

func (l *lightImpl) Layers() common.RenderLayers {
	return l.layers
}
