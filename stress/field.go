// Package stress: the hypothetical stress engine.

package stress

import "github.com/tectolab/paleostress/geom"

// Field answers stress queries at a position. The inversion loop talks to
// this interface only, so a spatially varying engine can replace the
// homogeneous one without touching the data model or the search code.
type Field interface {
	// At returns the stress tensor acting at position p, or nil when no
	// hypothesis has been installed yet.
	At(p geom.Vec3) *Tensor
}

// Homogeneous is the production engine: one tensor everywhere.
//
// Not safe for concurrent mutation; parallel searches give each worker its
// own engine (tensors themselves are immutable and safely shared).
type Homogeneous struct {
	cur *Tensor
}

// SetHypothesis installs the tensor under test. Passing nil clears the
// engine.
//
// Complexity: O(1).
func (h *Homogeneous) SetHypothesis(t *Tensor) {
	h.cur = t
}

// At returns the current hypothetical tensor. The position is ignored: the
// field is homogeneous. Returns nil before the first SetHypothesis.
//
// Complexity: O(1).
func (h *Homogeneous) At(_ geom.Vec3) *Tensor {
	return h.cur
}
