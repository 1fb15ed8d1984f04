// Package paleostress recovers reduced stress tensors from fault-slip
// observations: the classic inverse problem of brittle tectonics.
//
// 🚀 What is paleostress?
//
//	A library and CLI that turn outcrop measurements into stress states:
//		• Measurement kinds: striated planes & shear bands, fracture and band normals,
//		  fiber & stylolite lineations, conjugate pairs
//		• Reduced tensors: principal frame + stress ratio R, Andersonian regimes
//		• Search: seeded Monte Carlo rotation sampling, Fibonacci-lattice grid refinement
//		• Diagnostics: misfit landscapes, per-datum cost summaries, histograms
//
// ✨ Why choose paleostress?
//
//   - Deterministic: a fixed seed reproduces every solution bit for bit,
//     on one worker or many
//   - Honest errors: every bad input comes back wrapped around a package
//     sentinel you can match with errors.Is
//   - Field-friendly: compass conventions (azimuths clockwise from North,
//     dip octants, rakes) at the API boundary, radians inside
//
// Everything is organized under four subpackages and a command:
//
//	geom/   - vectors, rotations and spherical angles in the East-North-Up frame
//	stress/ - reduced stress tensors, Andersonian regimes, tractions, eigendecomposition
//	fault/  - measurement kinds and the misfit cost each one pays
//	invert/ - the inverse method: Monte Carlo & grid searches, landscapes, summaries
//	cmd/paleostress - the invert, landscape and decompose commands
//
// Quick ASCII example:
//
//	         σ1
//	          │
//	     ╲    │    ╱
//	      ╲   │   ╱      a conjugate pair of normal faults;
//	       ╲  │  ╱       σ1 bisects the acute angle between
//	        ╲ │ ╱        the planes, σ2 rides their intersection
//	  ───────────────── σ3
//
// Dive into the examples/ directory for a full inversion walkthrough and a
// misfit landscape tour.
//
//	go get github.com/tectolab/paleostress
package paleostress
