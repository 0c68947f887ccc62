// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uniax

import (
	"math"

	"github.com/cpmech/gosl/fun/dbf"
)

// HookGap implements two bilinear elements working in parallel
//  Element A (F1, k1, kp1) is always active. Element B is made of two tension-only
//  hooks; the positive hook engages beyond ua and the negative one beyond -uaneg.
//  Once yielded, a hook is elongated permanently and so its slack grows.
type HookGap struct {

	// parameters
	F1    float64 // yield force of element A
	K1    float64 // stiffness of element A
	Kp1   float64 // post-yield stiffness of element A
	F2    float64 // yield force of hooks
	K2    float64 // stiffness of hooks
	Kp2   float64 // post-yield stiffness of hooks
	Ua    float64 // initial slack on the positive side
	Uaneg float64 // initial slack on the negative side

	// derived
	hk hook

	// state
	c, t hookGapState // committed and trial
}

// hookGapState holds internal variables of HookGap
type hookGapState struct {
	Eps  float64   // strain
	SigA float64   // stress in element A
	Sig  float64   // total stress
	D    float64   // tangent
	P    hookState // positive hook
	N    hookState // negative hook
}

// hook implements a tension-only link with isotropic hardening
type hook struct {
	K  float64 // elastic stiffness
	Fy float64 // initial yield force
	H  float64 // hardening modulus
}

// hookState holds internal variables of a hook
type hookState struct {
	Gap float64 // strain at which the hook engages
	Alp float64 // cumulative plastic elongation
	F   float64 // force; positive means tension
}

// update computes the hook force for strain ε
//  dir -- +1 for hooks pulled by positive strains; -1 otherwise
func (o hook) update(s *hookState, ε, dir float64) {
	e := dir * (ε - s.Gap)
	if e <= 0 {
		s.F = 0
		return
	}
	Ftr := o.K * e
	f := Ftr - (o.Fy + o.H*s.Alp)
	if f <= 0 {
		s.F = Ftr
		return
	}
	Δγ := f / (o.K + o.H)
	s.F = Ftr - o.K*Δγ
	s.Gap += dir * Δγ
	s.Alp += Δγ
}

// add model to factory
func init() {
	allocators["hookgap"] = func() Model { return new(HookGap) }
}

// Init initialises model
func (o *HookGap) Init(prms dbf.Params) (err error) {
	ps := newPrmSet("hookgap").
		req(&o.F1, "F1").
		req(&o.K1, "k1").
		req(&o.Kp1, "kp1").
		req(&o.F2, "F2").
		req(&o.K2, "k2").
		req(&o.Kp2, "kp2").
		req(&o.Ua, "ua").
		opt(&o.Uaneg, "uaneg", 0)
	err = ps.read(prms)
	if err != nil {
		return
	}
	if !ps.has("uaneg") {
		o.Uaneg = o.Ua
	}
	err = firstErr(
		check(o.F1 > 0, "hookgap", "F1 must be positive (F1=%g)", o.F1),
		check(o.K1 > 0, "hookgap", "k1 must be positive (k1=%g)", o.K1),
		check(o.Kp1 >= 0 && o.Kp1 < o.K1, "hookgap", "kp1 must be within [0, k1) (kp1=%g)", o.Kp1),
		check(o.F2 > 0, "hookgap", "F2 must be positive (F2=%g)", o.F2),
		check(o.K2 > 0, "hookgap", "k2 must be positive (k2=%g)", o.K2),
		check(o.Kp2 >= 0 && o.Kp2 < o.K2, "hookgap", "kp2 must be within [0, k2) (kp2=%g)", o.Kp2),
		check(o.Ua >= 0, "hookgap", "ua must not be negative (ua=%g)", o.Ua),
		check(o.Uaneg >= 0, "hookgap", "uaneg must not be negative (uaneg=%g)", o.Uaneg),
	)
	if err != nil {
		return
	}
	o.hk = hook{K: o.K2, Fy: o.F2, H: o.K2 * o.Kp2 / (o.K2 - o.Kp2)}
	return o.RevertToStart()
}

// GetPrms gets (an example) of parameters
func (o HookGap) GetPrms(example bool) dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "F1", V: 50},
		&dbf.P{N: "k1", V: 100},
		&dbf.P{N: "kp1", V: 5},
		&dbf.P{N: "F2", V: 200},
		&dbf.P{N: "k2", V: 400},
		&dbf.P{N: "kp2", V: 10},
		&dbf.P{N: "ua", V: 2},
		&dbf.P{N: "uaneg", V: 3},
	}
}

// SetTrialStrain computes the trial state
func (o *HookGap) SetTrialStrain(ε, εdot float64) (err error) {
	c, t := &o.c, &o.t
	*t = *c
	Δε := ε - c.Eps
	if math.Abs(Δε) <= EPS {
		return
	}
	t.Eps = ε
	t.SigA = bilinear(c.SigA, c.Eps, Δε, o.F1, o.K1, o.Kp1)
	o.hk.update(&t.P, ε, +1)
	o.hk.update(&t.N, ε, -1)
	t.Sig = t.SigA + t.P.F - t.N.F
	t.D = secant(t.Sig, c.Sig, Δε, c.D)
	return
}

// CommitState accepts the trial state
func (o *HookGap) CommitState() error {
	o.c = o.t
	return nil
}

// RevertToLastCommit discards the trial state
func (o *HookGap) RevertToLastCommit() error {
	o.t = o.c
	return nil
}

// RevertToStart resets internal variables
func (o *HookGap) RevertToStart() error {
	o.c = hookGapState{
		D: o.GetInitialTangent(),
		P: hookState{Gap: o.Ua},
		N: hookState{Gap: -o.Uaneg},
	}
	o.t = o.c
	return nil
}

// GetStrain returns trial strain
func (o *HookGap) GetStrain() float64 { return o.t.Eps }

// GetStress returns trial stress
func (o *HookGap) GetStress() float64 { return o.t.Sig }

// GetTangent returns trial tangent
func (o *HookGap) GetTangent() float64 { return o.t.D }

// GetInitialTangent returns initial tangent
//  Note: this is the stiffness for a positive first increment; thus only ua matters
func (o *HookGap) GetInitialTangent() float64 {
	if o.Ua == 0 {
		return o.K1 + o.K2
	}
	return o.K1
}

// Stage returns 2 if any hook is engaged in the trial state; 1 otherwise
func (o *HookGap) Stage() int {
	if o.t.P.F > 0 || o.t.N.F > 0 {
		return stageSC
	}
	return stageSlip
}
