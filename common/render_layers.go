package common

import "math/bits"

// RenderLayers is a bitmask of render partitions. A camera draws an object only
// when their layer masks intersect.
type RenderLayers uint32

const (
	// DefaultRenderLayer holds world-model content.
	DefaultRenderLayer = 0
	// ViewModelRenderLayer holds view-model content drawn on top of the world.
	ViewModelRenderLayer = 1
	// MaxRenderLayers is the number of addressable layers.
	MaxRenderLayers = 32
)

// Layers builds a mask containing each of the given layer indices.
// Indices outside [0, MaxRenderLayers) are ignored.
//
// Parameters:
//   - layers: layer indices to include
//
// Returns:
//   - RenderLayers: the combined mask
func Layers(layers ...int) RenderLayers {
	var mask RenderLayers
	for _, l := range layers {
		if l < 0 || l >= MaxRenderLayers {
			continue
		}
		mask |= 1 << uint(l)
	}
	return mask
}

// Has reports whether the mask contains layer.
func (r RenderLayers) Has(layer int) bool {
	if layer < 0 || layer >= MaxRenderLayers {
		return false
	}
	return r&(1<<uint(layer)) != 0
}

// Intersects reports whether the two masks share at least one layer.
func (r RenderLayers) Intersects(other RenderLayers) bool {
	return r&other != 0
}

// Indices returns the layer indices contained in the mask in ascending order.
func (r RenderLayers) Indices() []int {
	out := make([]int, 0, bits.OnesCount32(uint32(r)))
	for l := 0; l < MaxRenderLayers; l++ {
		if r.Has(l) {
			out = append(out, l)
		}
	}
	return out
}
