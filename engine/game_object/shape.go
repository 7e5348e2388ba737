package game_object

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// ShapeKind identifies the primitive mesh an object is drawn with.
type ShapeKind int

const (
	// ShapeBox is an axis-aligned cuboid centered on the object position.
	ShapeBox ShapeKind = iota
	// ShapePlane is a horizontal plane through the object position with the +Y normal.
	ShapePlane
	// ShapeTorus is a ring in the XZ plane.
	ShapeTorus
)

// String returns the lower-case name of the shape kind.
func (k ShapeKind) String() string {
	switch k {
	case ShapeBox:
		return "box"
	case ShapePlane:
		return "plane"
	case ShapeTorus:
		return "torus"
	default:
		return fmt.Sprintf("shape(%d)", int(k))
	}
}

// ParseShapeKind resolves a shape name ("box", "cuboid", "plane", "torus").
//
// Parameters:
//   - name: the shape name (case-insensitive)
//
// Returns:
//   - ShapeKind: the shape kind
//   - error: error if the name is unknown
func ParseShapeKind(name string) (ShapeKind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "box", "cuboid", "cube":
		return ShapeBox, nil
	case "plane":
		return ShapePlane, nil
	case "torus":
		return ShapeTorus, nil
	default:
		return 0, fmt.Errorf("unknown shape %q", name)
	}
}

// Shape is a fixed-size primitive mesh description. The renderer owns the
// actual mesh data; objects only carry the dimensions.
type Shape struct {
	Kind ShapeKind
	// Size holds the full extents for boxes, the half-extents (x, _, z) for planes,
	// and (major radius, minor radius, _) for tori.
	Size mgl32.Vec3
}

// Box returns a cuboid shape with the given full extents.
func Box(x, y, z float32) Shape {
	return Shape{Kind: ShapeBox, Size: mgl32.Vec3{x, y, z}}
}

// Plane returns a horizontal plane with the given half-extents.
func Plane(halfX, halfZ float32) Shape {
	return Shape{Kind: ShapePlane, Size: mgl32.Vec3{halfX, 0, halfZ}}
}

// Torus returns a torus with the given major and minor radii.
func Torus(majorRadius, minorRadius float32) Shape {
	return Shape{Kind: ShapeTorus, Size: mgl32.Vec3{majorRadius, minorRadius, 0}}
}

// Material is a flat surface description.
type Material struct {
	// Color is RGBA with components in [0, 1].
	Color mgl32.Vec4
}

// SRGB8 builds an opaque material from 8-bit sRGB components.
func SRGB8(r, g, b uint8) Material {
	return Material{Color: mgl32.Vec4{float32(r) / 255, float32(g) / 255, float32(b) / 255, 1}}
}

// White is the default material.
var White = Material{Color: mgl32.Vec4{1, 1, 1, 1}}
