package common

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Coalesce returns the first non-zero value from the provided values, or the zero value if all are zero.
//
// Parameters:
//   - values: a variadic list of values to check for non-zero status
//
// Returns:
//   - T: the first non-zero value from the input, or the zero value if all are zero
func Coalesce[T comparable](values ...T) T {
	var zero T
	for _, v := range values {
		if v != zero {
			return v
		}
	}
	return zero
}

// Vec3FromSlice converts a three-element slice (as decoded from config) into a vector.
//
// Parameters:
//   - s: the slice to convert
//
// Returns:
//   - mgl32.Vec3: the vector
//   - error: error if s does not have exactly three elements
func Vec3FromSlice(s []float32) (mgl32.Vec3, error) {
	if len(s) != 3 {
		return mgl32.Vec3{}, fmt.Errorf("expected 3 components, got %d", len(s))
	}
	return mgl32.Vec3{s[0], s[1], s[2]}, nil
}
