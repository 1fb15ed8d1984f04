package fault

import (
	"github.com/tectolab/paleostress/geom"
	"github.com/tectolab/paleostress/stress"
)

// Hypothesis bundles the candidate deformation descriptions a datum may be
// priced against. Inversion drivers fill the fields they search over and
// leave the rest nil; each datum declares through Check which fields it
// needs.
//
// Every kind in this package prices Stress. The displacement and strain
// slots are reserved so that mixed inversions (geodetic vectors alongside
// fracture data) can share one driver without reshaping the interface.
type Hypothesis struct {
	// Displacement is a candidate displacement direction.
	Displacement *geom.Vec3

	// Strain is a candidate reduced strain tensor.
	Strain *stress.Tensor

	// Stress is a candidate reduced stress tensor.
	Stress *stress.Tensor
}
