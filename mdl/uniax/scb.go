// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uniax

import (
	"math"

	"github.com/cpmech/gosl/fun/dbf"
)

// SCB implements the basic friction + self-centering brace
//  Same stages as TSSCB; no hardening, no degradation and no fracture
type SCB struct {

	// parameters
	F1   float64 // friction slipping force
	K0   float64 // friction initial stiffness
	Ugap float64 // gap length
	F2   float64 // self-centering activation force
	K1   float64 // first stiffness at stage 2
	K2   float64 // second stiffness at stage 2
	Beta float64 // energy dissipation coefficient

	// derived
	fric Friction
	sc   FlagSC
	geo  gapGeom

	// state
	c, t scbState // committed and trial
}

// scbState holds internal variables of SCB
type scbState struct {
	Eps   float64 // strain
	Stage int     // working stage
	SigI  float64 // ideal stress
	Sig   float64 // stress after corrections
	D     float64 // tangent
}

// add model to factory
func init() {
	allocators["scb"] = func() Model { return new(SCB) }
}

// Init initialises model
func (o *SCB) Init(prms dbf.Params) (err error) {
	err = newPrmSet("scb").
		req(&o.F1, "F1").
		req(&o.K0, "k0").
		req(&o.Ugap, "ugap").
		req(&o.F2, "F2").
		req(&o.K1, "k1").
		req(&o.K2, "k2").
		req(&o.Beta, "beta").
		read(prms)
	if err != nil {
		return
	}
	err = firstErr(
		check(o.F1 >= 0, "scb", "F1 must not be negative (F1=%g)", o.F1),
		check(o.K0 > 0, "scb", "k0 must be positive (k0=%g)", o.K0),
		check(o.Ugap >= 0, "scb", "ugap must not be negative (ugap=%g)", o.Ugap),
		check(o.F2 > 0, "scb", "F2 must be positive (F2=%g)", o.F2),
		check(o.K1 > 0, "scb", "k1 must be positive (k1=%g)", o.K1),
		check(o.K2 > 0, "scb", "k2 must be positive (k2=%g)", o.K2),
		check(o.Beta >= 0 && o.Beta <= 1, "scb", "beta must be within [0, 1] (beta=%g)", o.Beta),
	)
	if err != nil {
		return
	}
	o.fric = Friction{F1: o.F1, K0: o.K0}
	o.sc = FlagSC{F2: o.F2, K1: o.K1, K2: o.K2, Beta: o.Beta}
	o.geo = newGapGeom(o.Ugap, o.F1, o.K1)
	return o.RevertToStart()
}

// GetPrms gets (an example) of parameters
func (o SCB) GetPrms(example bool) dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "F1", V: 20},
		&dbf.P{N: "k0", V: 300},
		&dbf.P{N: "ugap", V: 10},
		&dbf.P{N: "F2", V: 300},
		&dbf.P{N: "k1", V: 120},
		&dbf.P{N: "k2", V: 10},
		&dbf.P{N: "beta", V: 0.4},
	}
}

// SetTrialStrain computes the trial state
func (o *SCB) SetTrialStrain(ε, εdot float64) (err error) {
	c, t := &o.c, &o.t
	*t = *c
	Δε := ε - c.Eps
	if math.Abs(Δε) <= EPS {
		return
	}
	t.Eps = ε
	t.Stage = o.geo.stage(ε)
	switch transition(c.Stage, t.Stage) {
	case slipToSlip:
		t.SigI = o.fric.Update(c.Sig, Δε)
		t.Sig = t.SigI
	case slipToSC:
		du1, du2, usc0 := o.geo.enter(c.Eps, Δε)
		t.SigI = o.sc.Update(usc0, o.fric.Update(c.SigI, du1), du2)
		t.Sig = entryClamp(t.SigI, Δε, o.F1)
	case scToSC:
		t.SigI = o.sc.Update(o.geo.origin(c.Eps, ε), c.SigI, Δε)
		t.Sig = cableClamp(t.SigI, ε, Δε, c.Sig, o.F1, o.Ugap)
	case scToSlip:
		du1, du2, usc0 := o.geo.leave(c.Eps, ε, Δε)
		F := cableClamp(o.sc.Update(usc0, c.SigI, du1), ε, Δε, c.Sig, o.F1, o.Ugap)
		t.SigI = o.fric.Update(F, du2)
		t.Sig = t.SigI
	}
	t.D = secant(t.Sig, c.Sig, Δε, c.D)
	return
}

// CommitState accepts the trial state
func (o *SCB) CommitState() error {
	o.c = o.t
	return nil
}

// RevertToLastCommit discards the trial state
func (o *SCB) RevertToLastCommit() error {
	o.t = o.c
	return nil
}

// RevertToStart resets internal variables
func (o *SCB) RevertToStart() error {
	o.c = scbState{Stage: stageSlip, D: o.K0}
	if o.Ugap == 0 {
		o.c.Stage = stageSC
		o.c.D = o.K1
	}
	o.t = o.c
	return nil
}

// GetStrain returns trial strain
func (o *SCB) GetStrain() float64 { return o.t.Eps }

// GetStress returns trial stress
func (o *SCB) GetStress() float64 { return o.t.Sig }

// GetTangent returns trial tangent
func (o *SCB) GetTangent() float64 { return o.t.D }

// GetInitialTangent returns initial tangent
func (o *SCB) GetInitialTangent() float64 {
	if o.Ugap == 0 {
		return o.K1
	}
	return o.K0
}

// Stage returns the trial working stage
func (o *SCB) Stage() int { return o.t.Stage }
