// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uniax

import (
	"math"

	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/ode"
)

// ModBoucWen implements a modified Bouc-Wen model with cyclic strength increase
//
//  σ = α Fy/uy ε + (1-α) Fy z
//
//  dz/dε = [A - (β sgn(dε z) + γ) |z/m|ⁿ] / uy
//
//  m = 1 + Q (1 - b^(-wp/uy))
//
//  where wp is the cumulative plastic deformation measured with a yield face
//  of width 2 uy that is dragged by the strain. The increment is divided into
//  'iter' equal substeps; the face is dragged and m is updated before each one,
//  then z is integrated by one step of the classical Runge-Kutta method.
type ModBoucWen struct {

	// parameters
	Fy    float64 // yield force
	Uy    float64 // yield displacement
	Alpha float64 // post-yield stiffness ratio
	N     float64 // exponent controlling the smoothness of the transition
	Q     float64 // maximum strength increase ratio
	B     float64 // rate of strength increase
	A     float64 // hysteretic amplitude
	Beta  float64 // shape parameter
	Gamma float64 // shape parameter
	Iter  int     // number of substeps
	Cpdf  float64 // failure when wp/uy reaches this value; 0 means none
	Umax  float64 // failure when |ε| reaches this value; 0 means none

	// derived
	k0  float64     // initial stiffness
	sol *ode.Solver // integrator of z over one substep
	y   la.Vector   // y = [z]
	h   float64     // size of substep
	m   float64     // strength increase factor of substep
	sgn float64     // sign of h z at the start of substep

	// state
	c, t bwState // committed and trial
}

// bwState holds internal variables of ModBoucWen
type bwState struct {
	Eps    float64 // strain
	Sig    float64 // stress
	D      float64 // tangent
	Z      float64 // hysteretic variable
	Wp     float64 // cumulative plastic deformation
	Face   float64 // position of positive yield face
	Failed bool    // failure criterion has been met
}

// add model to factory
func init() {
	allocators["modboucwen"] = func() Model { return new(ModBoucWen) }
}

// Init initialises model
func (o *ModBoucWen) Init(prms dbf.Params) (err error) {
	var iter float64
	err = newPrmSet("modboucwen").
		req(&o.Fy, "Fy").
		req(&o.Uy, "uy").
		req(&o.Alpha, "alpha").
		req(&o.N, "n").
		req(&o.Q, "Q").
		req(&o.B, "b").
		req(&o.A, "A").
		req(&o.Beta, "beta").
		req(&o.Gamma, "gamma").
		opt(&iter, "iter", 10).
		opt(&o.Cpdf, "cpdf", 0).
		opt(&o.Umax, "umax", 0).
		read(prms)
	if err != nil {
		return
	}
	err = firstErr(
		check(o.Fy > 0, "modboucwen", "Fy must be positive (Fy=%g)", o.Fy),
		check(o.Uy > 0, "modboucwen", "uy must be positive (uy=%g)", o.Uy),
		check(o.Alpha >= 0, "modboucwen", "alpha must not be negative (alpha=%g)", o.Alpha),
		check(o.N > 0, "modboucwen", "n must be positive (n=%g)", o.N),
		check(o.B > 0, "modboucwen", "b must be positive (b=%g)", o.B),
		check(iter >= 1 && iter == math.Floor(iter), "modboucwen", "iter must be a positive integer (iter=%g)", iter),
		check(o.Cpdf >= 0, "modboucwen", "cpdf must not be negative (cpdf=%g)", o.Cpdf),
		check(o.Umax >= 0, "modboucwen", "umax must not be negative (umax=%g)", o.Umax),
	)
	if err != nil {
		return
	}
	o.Iter = int(iter)
	o.k0 = o.Fy / o.Uy

	// ode solver: x in [0, 1] spans one substep
	conf := ode.NewConfig("rk4", "", nil)
	conf.SetFixedH(1, 1)
	o.sol = ode.NewSolver(1, conf, o.dzdx, nil, nil)
	o.y = la.NewVector(1)
	return o.RevertToStart()
}

// GetPrms gets (an example) of parameters
func (o ModBoucWen) GetPrms(example bool) dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "Fy", V: 100},
		&dbf.P{N: "uy", V: 1},
		&dbf.P{N: "alpha", V: 0.02},
		&dbf.P{N: "n", V: 2},
		&dbf.P{N: "Q", V: 0.3},
		&dbf.P{N: "b", V: 1.05},
		&dbf.P{N: "A", V: 1},
		&dbf.P{N: "beta", V: 0.5},
		&dbf.P{N: "gamma", V: 0.5},
	}
}

// SetTrialStrain computes the trial state
func (o *ModBoucWen) SetTrialStrain(ε, εdot float64) (err error) {
	o.t = o.c
	Δε := ε - o.c.Eps
	if math.Abs(Δε) <= EPS {
		return
	}
	o.t.Eps = ε
	if o.t.Failed {
		o.t.Sig = 0
		o.t.D = secant(o.t.Sig, o.c.Sig, Δε, o.c.D)
		return
	}
	o.h = Δε / float64(o.Iter)
	o.y[0] = o.c.Z
	for i := 1; i <= o.Iter; i++ {
		o.dragFace(o.c.Eps + o.h*float64(i))
		o.m = 1 + o.Q*(1-math.Pow(o.B, -o.t.Wp/o.Uy))
		o.sgn = fun.Sign(o.h * o.y[0])
		o.sol.Solve(o.y, 0, 1)
	}
	o.t.Z = o.y[0]
	o.t.Sig = o.Alpha*o.k0*ε + (1-o.Alpha)*o.Fy*o.t.Z
	if (o.Cpdf > 0 && o.t.Wp/o.Uy >= o.Cpdf) || (o.Umax > 0 && math.Abs(ε) >= o.Umax) {
		o.t.Failed = true
		o.t.Sig = 0
	}
	o.t.D = secant(o.t.Sig, o.c.Sig, Δε, o.c.D)
	return
}

// dragFace moves the yield face to strain ε and accumulates plastic deformation
func (o *ModBoucWen) dragFace(ε float64) {
	if ε > o.t.Face {
		o.t.Wp += ε - o.t.Face
		o.t.Face = ε
	} else if ε < o.t.Face-2*o.Uy {
		o.t.Wp += o.t.Face - 2*o.Uy - ε
		o.t.Face = ε + 2*o.Uy
	}
}

// dzdx computes f = dz/dx = h dz/dε within a substep
func (o *ModBoucWen) dzdx(f la.Vector, dx, x float64, y la.Vector) {
	f[0] = o.h * (o.A - (o.Beta*o.sgn+o.Gamma)*math.Pow(math.Abs(y[0]/o.m), o.N)) / o.Uy
}

// CommitState accepts the trial state
func (o *ModBoucWen) CommitState() error {
	o.c = o.t
	return nil
}

// RevertToLastCommit discards the trial state
func (o *ModBoucWen) RevertToLastCommit() error {
	o.t = o.c
	return nil
}

// RevertToStart resets internal variables
func (o *ModBoucWen) RevertToStart() error {
	o.c = bwState{D: o.k0, Face: o.Uy}
	o.t = o.c
	return nil
}

// GetStrain returns trial strain
func (o *ModBoucWen) GetStrain() float64 { return o.t.Eps }

// GetStress returns trial stress
func (o *ModBoucWen) GetStress() float64 { return o.t.Sig }

// GetTangent returns trial tangent
func (o *ModBoucWen) GetTangent() float64 { return o.t.D }

// GetInitialTangent returns initial tangent
func (o *ModBoucWen) GetInitialTangent() float64 { return o.k0 }

// Failed tells whether the failure criterion has been met in the trial state
func (o *ModBoucWen) Failed() bool { return o.t.Failed }
