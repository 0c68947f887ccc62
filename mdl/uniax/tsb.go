// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uniax

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
)

// TSBmaxGroups is the maximum number of self-centering groups of TSB
const TSBmaxGroups = 10

// TSB implements a two-stage brace with a friction stage followed by N parallel
// groups of self-centering cables, each with an optional bearing engagement
//  Parameters of group i (i = 1..N) are suffixed by "_i"; e.g. "Fy_1", "k1_1"
//  The friction force is shared among groups in proportion to their first stiffness
type TSB struct {

	// parameters
	Fslip float64   // friction slipping force
	K     float64   // friction initial stiffness
	Ugap  float64   // gap length
	N     int       // number of self-centering groups
	Grps  []*FlagSC // self-centering groups; bearing displacement relative to the origin shift

	// derived
	fric   Friction
	geo    gapGeom
	ktot   float64 // sum of first stiffnesses
	shares []float64

	// state
	c, t   onedState // committed and trial
	cStage int       // committed working stage
	tStage int       // trial working stage
	cF     la.Vector // committed forces in groups
	tF     la.Vector // trial forces in groups
}

// add model to factory
func init() {
	allocators["tsb"] = func() Model { return new(TSB) }
}

// Init initialises model
func (o *TSB) Init(prms dbf.Params) (err error) {

	// number of groups
	var n float64
	for _, p := range prms {
		if p != nil && p.N == "N" {
			n = p.V
		}
	}
	if n < 1 || n > TSBmaxGroups || n != math.Floor(n) {
		return chk.Err("tsb: N must be an integer within [1, %d] (N=%g)", TSBmaxGroups, n)
	}
	o.N = int(n)

	// connect parameters
	fy := make([]float64, o.N)
	k1 := make([]float64, o.N)
	k2 := make([]float64, o.N)
	beta := make([]float64, o.N)
	ubear := make([]float64, o.N)
	kbear := make([]float64, o.N)
	ps := newPrmSet("tsb").
		req(&o.Fslip, "Fslip").
		req(&o.K, "k").
		req(&o.Ugap, "ugap").
		req(&n, "N")
	for i := 0; i < o.N; i++ {
		sfx := io.Sf("_%d", i+1)
		ps.req(&fy[i], "Fy"+sfx).
			req(&k1[i], "k1"+sfx).
			req(&k2[i], "k2"+sfx).
			req(&beta[i], "beta"+sfx).
			opt(&ubear[i], "ubear"+sfx, 1e16).
			opt(&kbear[i], "kbear"+sfx, 0)
	}
	err = ps.read(prms)
	if err != nil {
		return
	}
	err = firstErr(
		check(o.Fslip >= 0, "tsb", "Fslip must not be negative (Fslip=%g)", o.Fslip),
		check(o.K > 0, "tsb", "k must be positive (k=%g)", o.K),
		check(o.Ugap >= 0, "tsb", "ugap must not be negative (ugap=%g)", o.Ugap),
	)
	if err != nil {
		return
	}
	o.ktot = 0
	for i := 0; i < o.N; i++ {
		err = firstErr(
			check(fy[i] > 0, "tsb", "Fy_%d must be positive (Fy=%g)", i+1, fy[i]),
			check(k1[i] > 0, "tsb", "k1_%d must be positive (k1=%g)", i+1, k1[i]),
			check(k2[i] > 0, "tsb", "k2_%d must be positive (k2=%g)", i+1, k2[i]),
			check(beta[i] >= 0 && beta[i] <= 1, "tsb", "beta_%d must be within [0, 1] (beta=%g)", i+1, beta[i]),
			check(kbear[i] >= 0, "tsb", "kbear_%d must not be negative (kbear=%g)", i+1, kbear[i]),
		)
		if err != nil {
			return
		}
		o.ktot += k1[i]
	}

	// derived
	o.fric = Friction{F1: o.Fslip, K0: o.K}
	o.geo = newGapGeom(o.Ugap, o.Fslip, o.ktot)
	o.Grps = make([]*FlagSC, o.N)
	o.shares = make([]float64, o.N)
	for i := 0; i < o.N; i++ {
		if ubear[i] <= o.geo.ua {
			return chk.Err("tsb: ubear_%d must be greater than the origin shift %g (ubear=%g)", i+1, o.geo.ua, ubear[i])
		}
		o.Grps[i] = &FlagSC{F2: fy[i], K1: k1[i], K2: k2[i], Beta: beta[i], Ubear: ubear[i] - o.geo.ua, Kbear: kbear[i]}
		o.shares[i] = k1[i] / o.ktot
	}
	o.cF = la.NewVector(o.N)
	o.tF = la.NewVector(o.N)
	return o.RevertToStart()
}

// GetPrms gets (an example) of parameters
func (o TSB) GetPrms(example bool) dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "Fslip", V: 20},
		&dbf.P{N: "k", V: 300},
		&dbf.P{N: "ugap", V: 10},
		&dbf.P{N: "N", V: 2},
		&dbf.P{N: "Fy_1", V: 150},
		&dbf.P{N: "k1_1", V: 60},
		&dbf.P{N: "k2_1", V: 5},
		&dbf.P{N: "beta_1", V: 0.4},
		&dbf.P{N: "Fy_2", V: 150},
		&dbf.P{N: "k1_2", V: 60},
		&dbf.P{N: "k2_2", V: 5},
		&dbf.P{N: "beta_2", V: 0.4},
		&dbf.P{N: "ubear_2", V: 40},
		&dbf.P{N: "kbear_2", V: 50},
	}
}

// SetTrialStrain computes the trial state
func (o *TSB) SetTrialStrain(ε, εdot float64) (err error) {
	o.t, o.tStage = o.c, o.cStage
	copy(o.tF, o.cF)
	Δε := ε - o.c.Eps
	if math.Abs(Δε) <= EPS {
		return
	}
	o.t.Eps = ε
	o.tStage = o.geo.stage(ε)
	switch transition(o.cStage, o.tStage) {
	case slipToSlip:
		o.t.Sig = o.fric.Update(o.c.Sig, Δε)
	case slipToSC:
		du1, du2, usc0 := o.geo.enter(o.c.Eps, Δε)
		F := o.fric.Update(o.c.Sig, du1)
		for i, g := range o.Grps {
			o.tF[i] = g.Update(usc0, F*o.shares[i], du2)
		}
		o.t.Sig = o.sum()
	case scToSC:
		usc0 := o.geo.origin(o.c.Eps, ε)
		for i, g := range o.Grps {
			o.tF[i] = g.Update(usc0, o.cF[i], Δε)
		}
		o.t.Sig = o.sum()
	case scToSlip:
		du1, du2, usc0 := o.geo.leave(o.c.Eps, ε, Δε)
		for i, g := range o.Grps {
			o.tF[i] = g.Update(usc0, o.cF[i], du1)
		}
		o.t.Sig = o.fric.Update(o.sum(), du2)
		for i := range o.tF {
			o.tF[i] = 0
		}
	}
	o.t.D = secant(o.t.Sig, o.c.Sig, Δε, o.c.D)
	return
}

// sum returns the total trial force of groups
func (o *TSB) sum() (F float64) {
	for _, f := range o.tF {
		F += f
	}
	return
}

// CommitState accepts the trial state
func (o *TSB) CommitState() error {
	o.c, o.cStage = o.t, o.tStage
	copy(o.cF, o.tF)
	return nil
}

// RevertToLastCommit discards the trial state
func (o *TSB) RevertToLastCommit() error {
	o.t, o.tStage = o.c, o.cStage
	copy(o.tF, o.cF)
	return nil
}

// RevertToStart resets internal variables
func (o *TSB) RevertToStart() error {
	o.c = onedState{D: o.K}
	o.cStage = stageSlip
	if o.Ugap == 0 {
		o.c.D = o.ktot
		o.cStage = stageSC
	}
	for i := range o.cF {
		o.cF[i] = 0
	}
	return o.RevertToLastCommit()
}

// GetStrain returns trial strain
func (o *TSB) GetStrain() float64 { return o.t.Eps }

// GetStress returns trial stress
func (o *TSB) GetStress() float64 { return o.t.Sig }

// GetTangent returns trial tangent
func (o *TSB) GetTangent() float64 { return o.t.D }

// GetInitialTangent returns initial tangent
func (o *TSB) GetInitialTangent() float64 {
	if o.Ugap == 0 {
		return o.ktot
	}
	return o.K
}

// Stage returns the trial working stage
func (o *TSB) Stage() int { return o.tStage }

// GroupForces returns a copy of the trial forces in the self-centering groups
func (o *TSB) GroupForces() la.Vector {
	F := la.NewVector(o.N)
	copy(F, o.tF)
	return F
}
