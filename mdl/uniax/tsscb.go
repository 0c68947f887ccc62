// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uniax

import (
	"math"

	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/fun/dbf"
)

// fracture behaviours of TSSCB
const (
	fracHalfPads = 1 // half of the friction pads still slide; dead band between end plates
	fracAllPads  = 2 // all friction pads still slide; end plates are irrelevant
)

// TSSCB implements the two-stage self-centering brace
//  Stage 1 (|ε| ≤ ugap): friction slip only
//  Stage 2 (|ε| > ugap): friction in series with flag-shaped self-centering cables
//  Overlays: strength degradation and hardening beyond uh; cable fracture beyond uf
//
//  Stresses computed at each step (in this order):
//   SigI -- ideal: friction/self-centering without degradation or corrections
//   SigD -- degraded
//   SigM -- modified: boundary and tension-only corrections
//   Sig  -- final: with strength enhancement due to hardening
type TSSCB struct {

	// parameters
	F1   float64 // friction slipping force
	K0   float64 // friction initial stiffness
	Ugap float64 // gap length
	F2   float64 // self-centering activation force at stage 2
	K1   float64 // first stiffness at stage 2
	K2   float64 // second stiffness at stage 2
	Beta float64 // energy dissipation coefficient
	Uh   float64 // displacement where hardening starts
	R1   float64 // degradation at the beginning of stage 2
	R2   float64 // degradation at the end of stage 2
	R3   float64 // stiffness enhancement due to hardening
	Uf   float64 // fracture displacement
	Up   float64 // travel to complete the fracture; 0 means sudden fracture
	Mode int     // fracture behaviour: 1 or 2

	// derived
	fric Friction
	sc   FlagSC
	geo  gapGeom

	// state
	c, t tsscbState // committed and trial
}

// tsscbState holds internal variables of TSSCB
type tsscbState struct {
	Eps     float64 // strain
	Stage   int     // working stage
	SigI    float64 // ideal stress
	SigD    float64 // degraded stress
	SigM    float64 // modified stress
	Sig     float64 // final stress
	D       float64 // tangent
	Hard    bool    // hardening has started
	Cdd     float64 // dimensionless cumulative damage deformation
	Frac    bool    // cables are fractured
	Fracing bool    // fracture in progress
	Ratio   float64 // progress of fracture in [0,1]
	SigF    float64 // stress at fracture onset
	PlateP  float64 // position of end plate on the positive side
	PlateN  float64 // position of end plate on the negative side
}

// add model to factory
func init() {
	allocators["tsscb"] = func() Model { return new(TSSCB) }
}

// Init initialises model
func (o *TSSCB) Init(prms dbf.Params) (err error) {
	var mode float64
	ps := newPrmSet("tsscb").
		req(&o.F1, "F1").
		req(&o.K0, "k0").
		req(&o.Ugap, "ugap").
		req(&o.F2, "F2").
		req(&o.K1, "k1").
		req(&o.K2, "k2").
		req(&o.Beta, "beta").
		opt(&o.Uh, "uh", 1e16).
		opt(&o.R1, "r1", 1).
		opt(&o.R2, "r2", 1).
		opt(&o.R3, "r3", 0).
		opt(&o.Uf, "uf", 1e16).
		opt(&o.Up, "up", 0).
		opt(&mode, "frac", fracHalfPads)
	err = ps.read(prms)
	if err != nil {
		return
	}
	o.Mode = int(mode)
	hardening := ps.has("r1") || ps.has("r2") || ps.has("r3")
	err = firstErr(
		check(o.F1 >= 0, "tsscb", "F1 must not be negative (F1=%g)", o.F1),
		check(o.K0 > 0, "tsscb", "k0 must be positive (k0=%g)", o.K0),
		check(o.Ugap >= 0, "tsscb", "ugap must not be negative (ugap=%g)", o.Ugap),
		check(o.F2 > 0, "tsscb", "F2 must be positive (F2=%g)", o.F2),
		check(o.K1 > 0, "tsscb", "k1 must be positive (k1=%g)", o.K1),
		check(o.K2 > 0, "tsscb", "k2 must be positive (k2=%g)", o.K2),
		check(o.Beta >= 0 && o.Beta <= 1, "tsscb", "beta must be within [0, 1] (beta=%g)", o.Beta),
		check(!hardening || ps.has("uh"), "tsscb", "uh must be given together with r1, r2 and r3"),
		check(o.Uh > 0, "tsscb", "uh must be positive (uh=%g)", o.Uh),
		check(o.Uh > o.Ugap, "tsscb", "uh must be greater than ugap (uh=%g, ugap=%g)", o.Uh, o.Ugap),
		check(o.R1 >= 0, "tsscb", "r1 must not be negative (r1=%g)", o.R1),
		check(o.R2 >= 0, "tsscb", "r2 must not be negative (r2=%g)", o.R2),
		check(o.R3 >= 0, "tsscb", "r3 must not be negative (r3=%g)", o.R3),
		check(o.Uf > 0, "tsscb", "uf must be positive (uf=%g)", o.Uf),
		check(o.Up >= 0, "tsscb", "up must not be negative (up=%g)", o.Up),
		check(mode == fracHalfPads || mode == fracAllPads, "tsscb", "frac must be 1 or 2 (frac=%g)", mode),
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
func (o TSSCB) GetPrms(example bool) dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "F1", V: 20.24},
		&dbf.P{N: "k0", V: 138.58},
		&dbf.P{N: "ugap", V: 20},
		&dbf.P{N: "F2", V: 50.67},
		&dbf.P{N: "k1", V: 64.20},
		&dbf.P{N: "k2", V: 2.34},
		&dbf.P{N: "beta", V: 0.281},
		&dbf.P{N: "uh", V: 41.3},
		&dbf.P{N: "r1", V: 0.013},
		&dbf.P{N: "r2", V: 0.007},
		&dbf.P{N: "r3", V: 0.47},
		&dbf.P{N: "uf", V: 63.01},
	}
}

// SetTrialStrain computes the trial state
func (o *TSSCB) SetTrialStrain(ε, εdot float64) (err error) {
	o.t = o.c
	Δε := ε - o.c.Eps
	if math.Abs(Δε) <= EPS {
		return
	}
	o.t.Eps = ε
	o.t.Stage = o.geo.stage(ε)
	if math.Abs(ε) > o.Uh {
		o.t.Hard = true
	}
	o.updateFracture(Δε)
	if o.t.Frac {
		o.t.Sig = o.fractured(Δε)
		o.t.SigI, o.t.SigD, o.t.SigM = o.t.Sig, o.t.Sig, o.t.Sig
	} else {
		o.intact(Δε)
		if o.t.Fracing {
			o.t.Sig = o.t.SigF + o.t.Ratio*(fun.Sign(ε)*o.F1-o.t.SigF)
		}
	}
	o.updatePlates(Δε)
	o.t.D = secant(o.t.Sig, o.c.Sig, Δε, o.c.D)
	return
}

// intact computes the stresses of a device whose cables are not fractured
func (o *TSSCB) intact(Δε float64) {
	c, t := &o.c, &o.t
	ε := t.Eps
	switch transition(c.Stage, t.Stage) {
	case slipToSlip:
		t.SigI = o.fric.Update(c.SigM, Δε)
		t.SigD, t.SigM = t.SigI, t.SigI
	case slipToSC:
		du1, du2, usc0 := o.geo.enter(c.Eps, Δε)
		o.accumulate(du2)
		t.SigI = o.sc.Update(usc0, o.fric.Update(c.SigI, du1), du2)
		t.SigD = o.degrade(t.SigI, ε)
		t.SigM = entryClamp(t.SigD, Δε, o.F1)
	case scToSC:
		o.accumulate(Δε)
		t.SigI = o.sc.Update(o.geo.origin(c.Eps, ε), c.SigI, Δε)
		t.SigD = o.degrade(t.SigI, ε)
		t.SigM = cableClamp(t.SigD, ε, Δε, c.SigM, o.F1, o.Ugap)
	case scToSlip:
		du1, du2, usc0 := o.geo.leave(c.Eps, ε, Δε)
		o.accumulate(du1)
		F := o.sc.Update(usc0, c.SigI, du1)
		F = cableClamp(o.degrade(F, ε), ε, Δε, c.SigM, o.F1, o.Ugap)
		t.SigI = o.fric.Update(F, du2)
		t.SigD, t.SigM = t.SigI, t.SigI
	}
	t.Sig = o.harden(t.SigM, ε)
}

// accumulate adds the stage-2 travel du to the cumulative damage deformation
func (o *TSSCB) accumulate(du float64) {
	if o.t.Hard {
		o.t.Cdd = o.c.Cdd + math.Abs(du)/(o.Uh-o.Ugap)
	}
}

// degrade reduces the ideal stress F towards zero after hardening has started
func (o *TSSCB) degrade(F, ε float64) float64 {
	if !o.t.Hard {
		return F
	}
	d := (o.F2 - o.F1/2) * o.t.Cdd * (o.R1 - o.R2*(math.Abs(ε)-o.Ugap)/(o.Uh-o.Ugap))
	if ε > 0 {
		return F - d
	}
	if ε < 0 {
		return F + d
	}
	return F
}

// harden adds the strength enhancement beyond uh
func (o *TSSCB) harden(F, ε float64) float64 {
	Fh := math.Max(math.Abs(ε)-o.Uh, 0) * o.K2 * o.R3
	if ε > 0 {
		return F + Fh
	}
	return F - Fh
}

// updateFracture sets the fracture flags; both only switch on
func (o *TSSCB) updateFracture(Δε float64) {
	t := &o.t
	if t.Frac {
		return
	}
	if !t.Fracing {
		if math.Abs(t.Eps) <= o.Uf {
			return
		}
		if o.Up == 0 {
			t.Frac = true
			return
		}
		t.Fracing = true
		t.SigF = o.c.Sig
		t.Ratio = math.Min(1, (math.Abs(t.Eps)-o.Uf)/o.Up)
	} else {
		t.Ratio = math.Min(1, t.Ratio+math.Abs(Δε)/o.Up)
	}
	if t.Ratio >= 1 {
		t.Frac = true
		t.Fracing = false
	}
}

// fractured computes the stress after the cables have fractured
func (o *TSSCB) fractured(Δε float64) float64 {
	ε := o.t.Eps
	F := o.fric.Update(o.c.Sig, Δε)
	if o.Mode == fracAllPads {
		return F
	}
	if o.c.PlateN <= ε && ε <= o.c.PlateP {
		return 0
	}
	if (ε > 0 && F < 0) || (ε < 0 && F > 0) {
		return 0
	}
	return F
}

// updatePlates pushes the end plates in the direction of travel
//  Before fracture the plates follow the brace; afterwards they only move outwards
func (o *TSSCB) updatePlates(Δε float64) {
	t := &o.t
	if Δε > 0 {
		t.PlateP = math.Max(t.PlateP, t.Eps)
		if !t.Frac {
			t.PlateN += Δε
		}
	} else {
		t.PlateN = math.Min(t.PlateN, t.Eps)
		if !t.Frac {
			t.PlateP += Δε
		}
	}
	t.PlateP = math.Max(t.PlateP, o.Ugap)
	t.PlateN = math.Min(t.PlateN, -o.Ugap)
}

// CommitState accepts the trial state
func (o *TSSCB) CommitState() error {
	o.c = o.t
	return nil
}

// RevertToLastCommit discards the trial state
func (o *TSSCB) RevertToLastCommit() error {
	o.t = o.c
	return nil
}

// RevertToStart resets internal variables
func (o *TSSCB) RevertToStart() error {
	o.c = tsscbState{
		Stage:  stageSlip,
		D:      o.K0,
		PlateP: o.Ugap,
		PlateN: -o.Ugap,
	}
	if o.Ugap == 0 {
		o.c.Stage = stageSC
		o.c.D = o.K1
	}
	o.t = o.c
	return nil
}

// GetStrain returns trial strain
func (o *TSSCB) GetStrain() float64 { return o.t.Eps }

// GetStress returns trial stress
func (o *TSSCB) GetStress() float64 { return o.t.Sig }

// GetTangent returns trial tangent
func (o *TSSCB) GetTangent() float64 { return o.t.D }

// GetInitialTangent returns initial tangent
func (o *TSSCB) GetInitialTangent() float64 {
	if o.Ugap == 0 {
		return o.K1
	}
	return o.K0
}

// Stage returns the trial working stage
func (o *TSSCB) Stage() int { return o.t.Stage }

// Fractured tells whether the cables are fractured in the trial state
func (o *TSSCB) Fractured() bool { return o.t.Frac }
