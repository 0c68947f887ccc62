// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uniax

import (
	"math"

	"github.com/cpmech/gosl/fun/dbf"
)

// bilinear returns the force of a kinematic-hardening bilinear element after an increment du
//  F0 -- previous force
//  u0 -- previous displacement
//  Fy -- yield force
//  k  -- elastic stiffness
//  kp -- post-yield stiffness
func bilinear(F0, u0, du, Fy, k, kp float64) float64 {
	F := F0 + du*k
	u := u0 + du
	Fb := (1 - kp/k) * Fy
	if du > 0 && F > kp*u+Fb {
		return kp*u + Fb
	}
	if du < 0 && F < kp*u-Fb {
		return kp*u - Fb
	}
	return F
}

// TwoStage implements two bilinear elements working in sequence
//  Stage 2 starts when the strain goes beyond a transition surface; the positive
//  and negative surfaces are dragged by the strain and kept 2 ua apart
type TwoStage struct {

	// parameters
	F1  float64 // yield force at stage 1
	K1  float64 // stiffness at stage 1
	Kp1 float64 // post-yield stiffness at stage 1
	F2  float64 // yield force at stage 2
	K2  float64 // stiffness at stage 2
	Kp2 float64 // post-yield stiffness at stage 2
	Ua  float64 // half distance between transition surfaces

	// state
	c, t twoStageState // committed and trial
}

// twoStageState holds internal variables of TwoStage
type twoStageState struct {
	Eps   float64 // strain
	Sig   float64 // stress
	D     float64 // tangent
	Stage int     // working stage
	Upos  float64 // positive transition surface
	Uneg  float64 // negative transition surface
}

// add model to factory
func init() {
	allocators["twostage"] = func() Model { return new(TwoStage) }
}

// Init initialises model
func (o *TwoStage) Init(prms dbf.Params) (err error) {
	err = newPrmSet("twostage").
		req(&o.F1, "F1").
		req(&o.K1, "k1").
		req(&o.Kp1, "kp1").
		req(&o.F2, "F2").
		req(&o.K2, "k2").
		req(&o.Kp2, "kp2").
		req(&o.Ua, "ua").
		read(prms)
	if err != nil {
		return
	}
	err = firstErr(
		check(o.F1 > 0, "twostage", "F1 must be positive (F1=%g)", o.F1),
		check(o.K1 > 0, "twostage", "k1 must be positive (k1=%g)", o.K1),
		check(o.Kp1 >= 0 && o.Kp1 < o.K1, "twostage", "kp1 must be within [0, k1) (kp1=%g)", o.Kp1),
		check(o.F2 > 0, "twostage", "F2 must be positive (F2=%g)", o.F2),
		check(o.K2 > 0, "twostage", "k2 must be positive (k2=%g)", o.K2),
		check(o.Kp2 >= 0 && o.Kp2 < o.K2, "twostage", "kp2 must be within [0, k2) (kp2=%g)", o.Kp2),
		check(o.Ua >= 0, "twostage", "ua must not be negative (ua=%g)", o.Ua),
	)
	if err != nil {
		return
	}
	return o.RevertToStart()
}

// GetPrms gets (an example) of parameters
func (o TwoStage) GetPrms(example bool) dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "F1", V: 50},
		&dbf.P{N: "k1", V: 100},
		&dbf.P{N: "kp1", V: 5},
		&dbf.P{N: "F2", V: 200},
		&dbf.P{N: "k2", V: 400},
		&dbf.P{N: "kp2", V: 10},
		&dbf.P{N: "ua", V: 2},
	}
}

// SetTrialStrain computes the trial state
func (o *TwoStage) SetTrialStrain(ε, εdot float64) (err error) {
	c, t := &o.c, &o.t
	*t = *c
	Δε := ε - c.Eps
	if math.Abs(Δε) <= EPS {
		return
	}
	t.Eps = ε

	// stage
	switch {
	case ε > c.Upos:
		t.Stage = stageSC
		t.Upos = ε
		t.Uneg = ε - 2*o.Ua
	case ε < c.Uneg:
		t.Stage = stageSC
		t.Uneg = ε
		t.Upos = ε + 2*o.Ua
	default:
		t.Stage = stageSlip
	}

	// stress
	switch transition(c.Stage, t.Stage) {
	case slipToSlip:
		t.Sig = bilinear(c.Sig, c.Eps, Δε, o.F1, o.K1, o.Kp1)
	case scToSC:
		t.Sig = bilinear(c.Sig, c.Eps, Δε, o.F2, o.K2, o.Kp2)
	case slipToSC:
		du2 := ε - c.Upos
		if Δε < 0 {
			du2 = ε - c.Uneg
		}
		du1 := Δε - du2
		F := bilinear(c.Sig, c.Eps, du1, o.F1, o.K1, o.Kp1)
		t.Sig = bilinear(F, c.Eps+du1, du2, o.F2, o.K2, o.Kp2)
	case scToSlip:
		du1 := ε - c.Upos
		if Δε > 0 {
			du1 = ε - c.Uneg
		}
		du2 := Δε - du1
		F := bilinear(c.Sig, c.Eps, du2, o.F2, o.K2, o.Kp2)
		t.Sig = bilinear(F, c.Eps+du2, du1, o.F1, o.K1, o.Kp1)
	}
	t.D = secant(t.Sig, c.Sig, Δε, c.D)
	return
}

// CommitState accepts the trial state
func (o *TwoStage) CommitState() error {
	o.c = o.t
	return nil
}

// RevertToLastCommit discards the trial state
func (o *TwoStage) RevertToLastCommit() error {
	o.t = o.c
	return nil
}

// RevertToStart resets internal variables
func (o *TwoStage) RevertToStart() error {
	o.c = twoStageState{D: o.K1, Stage: stageSlip, Upos: o.Ua, Uneg: -o.Ua}
	o.t = o.c
	return nil
}

// GetStrain returns trial strain
func (o *TwoStage) GetStrain() float64 { return o.t.Eps }

// GetStress returns trial stress
func (o *TwoStage) GetStress() float64 { return o.t.Sig }

// GetTangent returns trial tangent
func (o *TwoStage) GetTangent() float64 { return o.t.D }

// GetInitialTangent returns initial tangent
func (o *TwoStage) GetInitialTangent() float64 { return o.K1 }

// Stage returns the trial working stage
func (o *TwoStage) Stage() int { return o.t.Stage }
