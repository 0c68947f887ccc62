// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uniax

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Failure wraps another model and zeroes its response once a failure criterion is met
//  Criteria:
//   strain  -- ε < minStrain or ε > maxStrain
//   force   -- σ < minForce or σ > maxForce, with σ from the wrapped model
//   CPD     -- wp > maxCPD uy, with wp the cumulative plastic deformation of a
//              yield face of width 2 uy dragged by the strain
//  Failure is permanent. The wrapped model is shared (not copied) and found in
//  a Registry by its tag ("other") when linked.
type Failure struct {

	// parameters
	Other     int     // tag of wrapped model
	MinStrain float64 // minimum strain
	MaxStrain float64 // maximum strain
	MinForce  float64 // minimum force of wrapped model
	MaxForce  float64 // maximum force of wrapped model
	Uy        float64 // yield displacement for CPD
	MaxCPD    float64 // maximum cumulative plastic deformation divided by uy

	// wrapped model
	mat Model

	// state
	c, t failureState // committed and trial
	fwd  bool         // trial strain has been forwarded to the wrapped model
}

// failureState holds internal variables of Failure
type failureState struct {
	Eps    float64 // strain
	Face   float64 // position of positive yield face
	Wp     float64 // cumulative plastic deformation
	Failed bool    // failure criterion has been met
}

// add model to factory
func init() {
	allocators["failure"] = func() Model { return new(Failure) }
}

// Init initialises model
func (o *Failure) Init(prms dbf.Params) (err error) {
	var other float64
	ps := newPrmSet("failure").
		req(&other, "other").
		opt(&o.MinStrain, "minStrain", -math.MaxFloat64).
		opt(&o.MaxStrain, "maxStrain", math.MaxFloat64).
		opt(&o.MinForce, "minForce", -math.MaxFloat64).
		opt(&o.MaxForce, "maxForce", math.MaxFloat64).
		opt(&o.Uy, "uy", math.MaxFloat64).
		opt(&o.MaxCPD, "maxCPD", math.MaxFloat64)
	err = ps.read(prms)
	if err != nil {
		return
	}
	err = firstErr(
		check(other == math.Floor(other) && other >= 0, "failure", "other must be a non-negative integer tag (other=%g)", other),
		check(!ps.has("maxCPD") || ps.has("uy"), "failure", "uy must be given together with maxCPD"),
		check(o.MinStrain <= 0, "failure", "minStrain must not be positive (minStrain=%g)", o.MinStrain),
		check(o.MaxStrain >= 0, "failure", "maxStrain must not be negative (maxStrain=%g)", o.MaxStrain),
		check(o.MinForce <= 0, "failure", "minForce must not be positive (minForce=%g)", o.MinForce),
		check(o.MaxForce >= 0, "failure", "maxForce must not be negative (maxForce=%g)", o.MaxForce),
		check(o.Uy > 0, "failure", "uy must be positive (uy=%g)", o.Uy),
		check(o.MaxCPD > 0, "failure", "maxCPD must be positive (maxCPD=%g)", o.MaxCPD),
	)
	if err != nil {
		return
	}
	o.Other = int(other)
	o.mat = nil
	return o.RevertToStart()
}

// GetPrms gets (an example) of parameters
func (o Failure) GetPrms(example bool) dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "other", V: 1},
		&dbf.P{N: "maxStrain", V: 60},
		&dbf.P{N: "minStrain", V: -60},
		&dbf.P{N: "uy", V: 2},
		&dbf.P{N: "maxCPD", V: 100},
	}
}

// Link finds the wrapped model in reg
func (o *Failure) Link(reg *Registry) (err error) {
	m, err := reg.Get(o.Other)
	if err != nil {
		return chk.Err("failure: cannot find wrapped model:\n%v", err)
	}
	o.mat = m
	return
}

// Wrapped returns the wrapped model; nil if not linked yet
func (o *Failure) Wrapped() Model { return o.mat }

// SetTrialStrain computes the trial state
func (o *Failure) SetTrialStrain(ε, εdot float64) (err error) {
	if o.mat == nil {
		return chk.Err("failure: wrapped model %d has not been linked", o.Other)
	}
	o.t = o.c
	o.fwd = false
	if math.Abs(ε-o.c.Eps) > EPS {
		o.t.Eps = ε
	}
	if o.c.Failed {
		return
	}
	err = o.mat.SetTrialStrain(ε, εdot)
	if err != nil {
		return
	}
	o.fwd = true

	// cumulative plastic deformation
	if ε > o.t.Face {
		o.t.Wp += ε - o.t.Face
		o.t.Face = ε
	} else if ε < o.t.Face-2*o.Uy {
		o.t.Wp += o.t.Face - 2*o.Uy - ε
		o.t.Face = ε + 2*o.Uy
	}

	// criteria
	σ := o.mat.GetStress()
	if ε < o.MinStrain || ε > o.MaxStrain || σ < o.MinForce || σ > o.MaxForce || o.t.Wp > o.MaxCPD*o.Uy {
		o.t.Failed = true
	}
	return
}

// CommitState accepts the trial state
func (o *Failure) CommitState() (err error) {
	if o.fwd {
		err = o.mat.CommitState()
		if err != nil {
			return
		}
	}
	o.c = o.t
	o.fwd = false
	return
}

// RevertToLastCommit discards the trial state
func (o *Failure) RevertToLastCommit() (err error) {
	if o.fwd {
		err = o.mat.RevertToLastCommit()
		if err != nil {
			return
		}
	}
	o.t = o.c
	o.fwd = false
	return
}

// RevertToStart resets internal variables; the wrapped model is reset too
func (o *Failure) RevertToStart() (err error) {
	if o.mat != nil {
		err = o.mat.RevertToStart()
		if err != nil {
			return
		}
	}
	o.c = failureState{Face: o.Uy}
	o.t = o.c
	o.fwd = false
	return
}

// GetStrain returns trial strain
func (o *Failure) GetStrain() float64 { return o.t.Eps }

// GetStress returns trial stress
func (o *Failure) GetStress() float64 {
	if o.t.Failed || o.mat == nil {
		return 0
	}
	return o.mat.GetStress()
}

// GetTangent returns trial tangent
func (o *Failure) GetTangent() float64 {
	if o.t.Failed || o.mat == nil {
		return 0
	}
	return o.mat.GetTangent()
}

// GetInitialTangent returns initial tangent
func (o *Failure) GetInitialTangent() float64 {
	if o.mat == nil {
		return 0
	}
	return o.mat.GetInitialTangent()
}

// Failed tells whether the failure criterion has been met in the trial state
func (o *Failure) Failed() bool { return o.t.Failed }
