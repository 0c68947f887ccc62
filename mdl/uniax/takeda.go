// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uniax

import (
	"math"

	"github.com/cpmech/gosl/fun/dbf"
)

// ModTakeda implements a modified Takeda model
//  backbone: bilinear with yield force Fy, stiffness k0 and post-yield stiffness r k0
//  unloading: k0 |uy/dm|^α where dm is the peak displacement in the unloading direction
//  reloading: towards the flag point, located β (dm - uy) behind the peak
type ModTakeda struct {

	// parameters
	Fy    float64 // yield force
	K0    float64 // initial stiffness
	R     float64 // post-yield stiffness ratio
	Alpha float64 // unloading stiffness degradation exponent
	Beta  float64 // reloading target coefficient

	// derived
	uy float64 // yield displacement

	// state
	c, t takedaState // committed and trial
}

// takedaState holds internal variables of ModTakeda
type takedaState struct {
	Eps float64 // strain
	Sig float64 // stress
	D   float64 // tangent
	DmP float64 // maximum positive strain
	DmN float64 // minimum negative strain
	FmP float64 // maximum positive stress
	FmN float64 // minimum negative stress
}

// add model to factory
func init() {
	allocators["modtakeda"] = func() Model { return new(ModTakeda) }
}

// Init initialises model
func (o *ModTakeda) Init(prms dbf.Params) (err error) {
	err = newPrmSet("modtakeda").
		req(&o.Fy, "Fy").
		req(&o.K0, "k0").
		req(&o.R, "r").
		req(&o.Alpha, "alpha").
		req(&o.Beta, "beta").
		read(prms)
	if err != nil {
		return
	}
	err = firstErr(
		check(o.Fy > 0, "modtakeda", "Fy must be positive (Fy=%g)", o.Fy),
		check(o.K0 > 0, "modtakeda", "k0 must be positive (k0=%g)", o.K0),
		check(o.R >= 0, "modtakeda", "r must not be negative (r=%g)", o.R),
		check(o.Alpha >= 0, "modtakeda", "alpha must not be negative (alpha=%g)", o.Alpha),
		check(o.Beta >= 0, "modtakeda", "beta must not be negative (beta=%g)", o.Beta),
	)
	if err != nil {
		return
	}
	o.uy = o.Fy / o.K0
	return o.RevertToStart()
}

// GetPrms gets (an example) of parameters
func (o ModTakeda) GetPrms(example bool) dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "Fy", V: 100},
		&dbf.P{N: "k0", V: 50},
		&dbf.P{N: "r", V: 0.05},
		&dbf.P{N: "alpha", V: 0.4},
		&dbf.P{N: "beta", V: 0.2},
	}
}

// SetTrialStrain computes the trial state
func (o *ModTakeda) SetTrialStrain(ε, εdot float64) (err error) {
	c, t := &o.c, &o.t
	*t = *c
	Δε := ε - c.Eps
	if math.Abs(Δε) <= EPS {
		return
	}
	t.Eps = ε
	if Δε > 0 {
		uflag := math.Max(o.uy, c.DmP-o.Beta*(c.DmP-o.uy))
		Fflag := math.Max(o.Fy, c.FmP-o.Beta*(c.DmP-o.uy)*o.R*o.K0)
		t.Sig = o.load(ε, Δε, c.DmN, uflag, Fflag, c.Sig < 0)
		t.DmP = math.Max(t.DmP, ε)
		t.FmP = math.Max(t.FmP, t.Sig)
	} else {
		uflag := math.Min(-o.uy, c.DmN-o.Beta*(c.DmN+o.uy))
		Fflag := math.Min(-o.Fy, c.FmN-o.Beta*(c.DmN+o.uy)*o.R*o.K0)
		t.Sig = o.load(ε, Δε, c.DmP, uflag, Fflag, c.Sig > 0)
		t.DmN = math.Min(t.DmN, ε)
		t.FmN = math.Min(t.FmN, t.Sig)
	}
	t.D = secant(t.Sig, c.Sig, Δε, c.D)
	return
}

// load computes the stress when moving towards the flag point (uflag, Fflag)
//  dm        -- peak strain on the side being unloaded
//  unloading -- the committed stress has the opposite sign of Δε
func (o *ModTakeda) load(ε, Δε, dm, uflag, Fflag float64, unloading bool) float64 {
	c := &o.c
	ahead := func(u float64) bool { // u is before the flag point along the direction of travel
		if Δε > 0 {
			return u < uflag
		}
		return u > uflag
	}
	if unloading {
		ku := o.K0 * math.Pow(math.Abs(o.uy/dm), o.Alpha)
		F := c.Sig + ku*Δε
		if F*c.Sig >= 0 {
			return F
		}

		// stress changes sign: unload to zero then reload towards the flag point
		Δε1 := -c.Sig / ku
		u0 := c.Eps + Δε1
		if !ahead(ε) || !ahead(u0) {
			return o.backbone(ε)
		}
		return Fflag / (uflag - u0) * (Δε - Δε1)
	}
	if ahead(ε) {
		kr := (Fflag - c.Sig) / (uflag - c.Eps)
		return c.Sig + kr*Δε
	}
	return o.backbone(ε)
}

// backbone returns the post-yield branch of the skeleton curve
func (o *ModTakeda) backbone(ε float64) float64 {
	if ε >= 0 {
		return o.Fy + (ε-o.uy)*o.R*o.K0
	}
	return -o.Fy + (ε+o.uy)*o.R*o.K0
}

// CommitState accepts the trial state
func (o *ModTakeda) CommitState() error {
	o.c = o.t
	return nil
}

// RevertToLastCommit discards the trial state
func (o *ModTakeda) RevertToLastCommit() error {
	o.t = o.c
	return nil
}

// RevertToStart resets internal variables
func (o *ModTakeda) RevertToStart() error {
	o.c = takedaState{
		D:   o.K0,
		DmP: o.uy,
		DmN: -o.uy,
		FmP: o.Fy,
		FmN: -o.Fy,
	}
	o.t = o.c
	return nil
}

// GetStrain returns trial strain
func (o *ModTakeda) GetStrain() float64 { return o.t.Eps }

// GetStress returns trial stress
func (o *ModTakeda) GetStress() float64 { return o.t.Sig }

// GetTangent returns trial tangent
func (o *ModTakeda) GetTangent() float64 { return o.t.D }

// GetInitialTangent returns initial tangent
func (o *ModTakeda) GetInitialTangent() float64 { return o.K0 }
