// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import "math"

// FlagShape computes the flag-shaped loop of self-centering devices
//
//  loading:   F = k1 u                         for 0 ≤ u ≤ uy
//             F = F2 + k2 (u - uy)              for u > uy
//  unloading: F = k1 u                         for 0 ≤ u ≤ ur
//             F = k2 u + Fr (1 - k2/k1)         for u > ur
//
//  with uy = F2/k1, Fr = F2 (1 - β) and ur = Fr/k1. Negative displacements
//  follow by symmetry.
type FlagShape struct {
	F2   float64 // activation force
	K1   float64 // first stiffness
	K2   float64 // second stiffness
	Beta float64 // energy dissipation coefficient
}

// Uy returns the activation displacement
func (o FlagShape) Uy() float64 { return o.F2 / o.K1 }

// Upper returns the force on the loading branch
func (o FlagShape) Upper(u float64) float64 {
	a := math.Abs(u)
	uy := o.Uy()
	F := o.K1 * a
	if a > uy {
		F = o.F2 + o.K2*(a-uy)
	}
	return math.Copysign(F, u)
}

// Lower returns the force on the unloading branch
func (o FlagShape) Lower(u float64) float64 {
	a := math.Abs(u)
	Fr := o.F2 * (1 - o.Beta)
	F := o.K1 * a
	if a > Fr/o.K1 {
		F = o.K2*a + Fr*(1-o.K2/o.K1)
	}
	return math.Copysign(F, u)
}

// Dissipated returns the energy dissipated by one symmetric cycle of amplitude umax
//  Each flag is a parallelogram of height β F2 (1 - k2/k1) between the k2 branches
func (o FlagShape) Dissipated(umax float64) float64 {
	if umax <= o.Uy() {
		return 0
	}
	Fmax := o.Upper(umax)
	return 2 * o.Beta * o.F2 * (umax - Fmax/o.K1)
}

// FrictionLoop computes the rectangular loop of friction devices
type FrictionLoop struct {
	F1 float64 // slipping force
	K0 float64 // initial stiffness
}

// Dissipated returns the energy dissipated by one symmetric cycle of amplitude umax
func (o FrictionLoop) Dissipated(umax float64) float64 {
	us := o.F1 / o.K0
	if umax <= us {
		return 0
	}
	return 4 * o.F1 * (umax - us)
}
