// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uniax

import (
	"math"

	"github.com/cpmech/gosl/fun/dbf"
)

// Friction implements a rate-independent Coulomb friction element
//  stiffness k0 until |F| reaches F1; then perfectly plastic
type Friction struct {
	F1 float64 // slipping force
	K0 float64 // initial stiffness
}

// Update returns the force after an increment du starting from force F0
func (o Friction) Update(F0, du float64) float64 {
	if du == 0 {
		return F0
	}
	F := F0 + du*o.K0
	if F > o.F1 {
		return o.F1
	}
	if F < -o.F1 {
		return -o.F1
	}
	return F
}

// FrictionMat implements a friction-slip device as a standalone material
type FrictionMat struct {
	Friction
	c, t onedState // committed and trial states
}

// onedState holds the variables of models with no internal variables
type onedState struct {
	Eps float64 // strain
	Sig float64 // stress
	D   float64 // tangent
}

// add model to factory
func init() {
	allocators["friction"] = func() Model { return new(FrictionMat) }
}

// Init initialises model
func (o *FrictionMat) Init(prms dbf.Params) (err error) {
	err = newPrmSet("friction").
		req(&o.F1, "F1").
		req(&o.K0, "k0").
		read(prms)
	if err != nil {
		return
	}
	err = firstErr(
		check(o.F1 >= 0, "friction", "F1 must not be negative (F1=%g)", o.F1),
		check(o.K0 > 0, "friction", "k0 must be positive (k0=%g)", o.K0),
	)
	if err != nil {
		return
	}
	return o.RevertToStart()
}

// GetPrms gets (an example) of parameters
func (o FrictionMat) GetPrms(example bool) dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "F1", V: 20},
		&dbf.P{N: "k0", V: 300},
	}
}

// SetTrialStrain computes the trial state
func (o *FrictionMat) SetTrialStrain(ε, εdot float64) (err error) {
	o.t = o.c
	Δε := ε - o.c.Eps
	if math.Abs(Δε) <= EPS {
		return
	}
	o.t.Eps = ε
	o.t.Sig = o.Update(o.c.Sig, Δε)
	o.t.D = secant(o.t.Sig, o.c.Sig, Δε, o.c.D)
	return
}

// CommitState accepts the trial state
func (o *FrictionMat) CommitState() error {
	o.c = o.t
	return nil
}

// RevertToLastCommit discards the trial state
func (o *FrictionMat) RevertToLastCommit() error {
	o.t = o.c
	return nil
}

// RevertToStart resets internal variables
func (o *FrictionMat) RevertToStart() error {
	o.c = onedState{D: o.K0}
	o.t = o.c
	return nil
}

// GetStrain returns trial strain
func (o *FrictionMat) GetStrain() float64 { return o.t.Eps }

// GetStress returns trial stress
func (o *FrictionMat) GetStress() float64 { return o.t.Sig }

// GetTangent returns trial tangent
func (o *FrictionMat) GetTangent() float64 { return o.t.D }

// GetInitialTangent returns initial tangent
func (o *FrictionMat) GetInitialTangent() float64 { return o.K0 }
