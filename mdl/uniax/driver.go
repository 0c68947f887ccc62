// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uniax

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// Result holds the response of a model at one step
type Result struct {
	Eps float64 // strain
	Sig float64 // stress
	D   float64 // tangent
}

// Driver runs simulations with uniaxial models
type Driver struct {

	// input
	Mdl Model // model

	// settings
	Retrial bool    // compute a discarded trial state before each step, as iterative solvers do
	TolD    float64 // tolerance to check D
	VerD    bool    // verbose check of D

	// check D
	TstD *testing.T // if != nil, do check that D is the secant of each step

	// results
	Res []*Result // results
}

// Init initialises driver
func (o *Driver) Init(mdl Model) (err error) {
	o.Mdl = mdl
	o.TolD = 1e-12
	o.VerD = chk.Verbose
	return
}

// Run runs simulation along a strain path; the model is reset first
func (o *Driver) Run(path []float64) (err error) {

	// reset model
	err = o.Mdl.RevertToStart()
	if err != nil {
		return
	}

	// allocate results arrays
	o.Res = make([]*Result, 0, len(path))

	// update states
	var εOld, σOld float64
	for i, ε := range path {

		// discarded trial
		if o.Retrial {
			err = o.Mdl.SetTrialStrain(2*ε-εOld, 0)
			if err != nil {
				return
			}
			err = o.Mdl.RevertToLastCommit()
			if err != nil {
				return
			}
		}

		// update
		err = o.Mdl.SetTrialStrain(ε, 0)
		if err != nil {
			return chk.Err("driver: SetTrialStrain failed at step %d (ε=%g):\n%v", i, ε, err)
		}
		res := &Result{Eps: o.Mdl.GetStrain(), Sig: o.Mdl.GetStress(), D: o.Mdl.GetTangent()}
		err = o.Mdl.CommitState()
		if err != nil {
			return
		}
		o.Res = append(o.Res, res)

		// check secant tangent
		if o.TstD != nil {
			Δε := res.Eps - εOld
			if math.Abs(Δε) > EPS {
				chk.Float64(o.TstD, io.Sf("D @ step %d", i), o.TolD, res.D, (res.Sig-σOld)/Δε)
			}
		}
		if o.VerD {
			io.Pf("%4d : ε = %12.6f  σ = %12.6f  D = %12.6f\n", i, res.Eps, res.Sig, res.D)
		}
		εOld, σOld = res.Eps, res.Sig
	}
	return
}

// Eps returns the strains of all results
func (o *Driver) Eps() []float64 {
	X := make([]float64, len(o.Res))
	for i, r := range o.Res {
		X[i] = r.Eps
	}
	return X
}

// Sig returns the stresses of all results
func (o *Driver) Sig() []float64 {
	Y := make([]float64, len(o.Res))
	for i, r := range o.Res {
		Y[i] = r.Sig
	}
	return Y
}

// GenPath generates a strain path passing through peaks with n steps per segment
//  sf -- scale factor applied to peaks
func GenPath(peaks []float64, n int, sf float64) (path []float64) {
	if len(peaks) == 0 {
		return
	}
	if n < 1 {
		n = 1
	}
	for i := 1; i < len(peaks); i++ {
		seg := utl.LinSpace(sf*peaks[i-1], sf*peaks[i], n+1)
		path = append(path, seg[:n]...)
	}
	path = append(path, sf*peaks[len(peaks)-1])
	return
}
