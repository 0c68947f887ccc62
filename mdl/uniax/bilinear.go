// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uniax

import (
	"math"

	"github.com/cpmech/gosl/fun/dbf"
)

// Bilinear implements a bilinear model with kinematic hardening
type Bilinear struct {
	Fy   float64   // yield force
	K    float64   // elastic stiffness
	B    float64   // post-yield stiffness ratio
	c, t onedState // committed and trial
}

// add model to factory
func init() {
	allocators["bilinear"] = func() Model { return new(Bilinear) }
}

// Init initialises model
func (o *Bilinear) Init(prms dbf.Params) (err error) {
	err = newPrmSet("bilinear").
		req(&o.Fy, "Fy").
		req(&o.K, "k").
		req(&o.B, "b").
		read(prms)
	if err != nil {
		return
	}
	err = firstErr(
		check(o.Fy > 0, "bilinear", "Fy must be positive (Fy=%g)", o.Fy),
		check(o.K > 0, "bilinear", "k must be positive (k=%g)", o.K),
		check(o.B >= 0 && o.B < 1, "bilinear", "b must be within [0, 1) (b=%g)", o.B),
	)
	if err != nil {
		return
	}
	return o.RevertToStart()
}

// GetPrms gets (an example) of parameters
func (o Bilinear) GetPrms(example bool) dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "Fy", V: 100},
		&dbf.P{N: "k", V: 50},
		&dbf.P{N: "b", V: 0.02},
	}
}

// SetTrialStrain computes the trial state
func (o *Bilinear) SetTrialStrain(ε, εdot float64) (err error) {
	o.t = o.c
	Δε := ε - o.c.Eps
	if math.Abs(Δε) <= EPS {
		return
	}
	o.t.Eps = ε
	o.t.Sig = bilinear(o.c.Sig, o.c.Eps, Δε, o.Fy, o.K, o.B*o.K)
	o.t.D = secant(o.t.Sig, o.c.Sig, Δε, o.c.D)
	return
}

// CommitState accepts the trial state
func (o *Bilinear) CommitState() error {
	o.c = o.t
	return nil
}

// RevertToLastCommit discards the trial state
func (o *Bilinear) RevertToLastCommit() error {
	o.t = o.c
	return nil
}

// RevertToStart resets internal variables
func (o *Bilinear) RevertToStart() error {
	o.c = onedState{D: o.K}
	o.t = o.c
	return nil
}

// GetStrain returns trial strain
func (o *Bilinear) GetStrain() float64 { return o.t.Eps }

// GetStress returns trial stress
func (o *Bilinear) GetStress() float64 { return o.t.Sig }

// GetTangent returns trial tangent
func (o *Bilinear) GetTangent() float64 { return o.t.D }

// GetInitialTangent returns initial tangent
func (o *Bilinear) GetInitialTangent() float64 { return o.K }
