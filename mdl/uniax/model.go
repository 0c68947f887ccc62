// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package uniax implements uniaxial hysteretic models for structural devices
//  Each model keeps two copies of its internal variables:
//
//    committed -- last converged (accepted) step
//    trial     -- current step; may be discarded by the global solver
//
//  SetTrialStrain always starts from the committed copy, so it may be called
//  many times before CommitState. The tangent is the secant of the current step:
//
//    D = (σ_trial - σ_committed) / (ε_trial - ε_committed)
//
//  References:
//   [1] Ricles JM, Sause R, Garlock MM, Zhao C (2001) Posttensioned seismic-resistant
//       connections for steel frames. Journal of Structural Engineering, 127(2), 113-121
//   [2] Christopoulos C, Tremblay R, Kim HJ, Lacerte M (2008) Self-centering energy
//       dissipative bracing system for the seismic resistance of structures.
//       Journal of Structural Engineering, 134(1), 96-107
package uniax

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// EPS is the smallest strain increment treated as a change of state
const EPS = 0x1p-52

// Model defines the interface for uniaxial models
type Model interface {
	Init(prms dbf.Params) error           // initialises model and validates parameters
	GetPrms(example bool) dbf.Params      // gets (an example) of parameters
	SetTrialStrain(ε, εdot float64) error // computes trial state from committed state
	CommitState() error                   // accepts trial state
	RevertToLastCommit() error            // discards trial state
	RevertToStart() error                 // resets model to its virgin state
	GetStrain() float64                   // returns trial strain
	GetStress() float64                   // returns trial stress
	GetTangent() float64                  // returns trial tangent
	GetInitialTangent() float64           // returns initial tangent
}

// Linker defines models that reference other models in a Registry
type Linker interface {
	Link(reg *Registry) error // connects to referenced models
}

// SetStrain sets trial strain and commits it
func SetStrain(m Model, ε float64) (err error) {
	err = m.SetTrialStrain(ε, 0)
	if err != nil {
		return
	}
	return m.CommitState()
}

// New returns new uniaxial model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'uniax' database", name)
	}
	return allocator(), nil
}

// allocators holds all available models; modelname => allocator
var allocators = map[string]func() Model{}

// secant returns the tangent of a step, keeping the old one for zero increments
func secant(σNew, σOld, Δε, Dold float64) float64 {
	if math.Abs(Δε) <= EPS {
		return Dold
	}
	return (σNew - σOld) / Δε
}
