// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uniax

// FlagSC implements the flag-shaped self-centering hysteresis
//
//           F
//           ^          upper: F = F2 + k2 (u - uy)
//           |        ,-'
//       F2 -|----o-'   ,-'
//           |   /    ,-'  lower: F = k2 u + Fr (1 - k2/k1)
//       Fr -|--/---o'
//           | /   /
//           |/   /  k1
//           o----------------> u
//
//  with uy = F2/k1 and Fr = F2 (1 - β). β = 0 gives a nonlinear elastic curve
//  and β = 1 a loop reaching the origin. Optional bearing engagement at ±Ubear
//  switches to the stiffness Kbear beyond the bearing displacement.
type FlagSC struct {
	F2    float64 // self-centering (activation) force
	K1    float64 // first stiffness
	K2    float64 // second stiffness
	Beta  float64 // energy dissipation coefficient
	Ubear float64 // bearing displacement; ≤ 0 means no bearing
	Kbear float64 // bearing stiffness
}

// Uy returns the yield displacement of the upper branch
func (o FlagSC) Uy() float64 {
	return o.F2 / o.K1
}

// Update returns the force after an increment du
//  u0 -- previous non-slip displacement
//  F0 -- previous force
func (o FlagSC) Update(u0, F0, du float64) float64 {
	if du == 0 {
		return F0
	}
	u := u0 + du
	uy := o.F2 / o.K1
	if o.Ubear > 0 {
		Fb := o.F2 + (o.Ubear-uy)*o.K2
		if u >= o.Ubear {
			return o.Kbear*(u-o.Ubear) + Fb
		}
		if u <= -o.Ubear {
			return o.Kbear*(u+o.Ubear) - Fb
		}
	}
	Fr := o.F2 * (1 - o.Beta)
	ur := Fr / o.K1
	c := Fr * (1 - o.K2/o.K1)
	Fup := o.F2 - o.K2*uy
	F := F0 + du*o.K1
	if du > 0 {
		switch {
		case u < -ur && F > o.K2*u-c:
			return o.K2*u - c
		case -ur <= u && u <= uy && F > o.K1*u:
			return o.K1 * u
		case u > ur && F > o.K2*u+Fup:
			return o.K2*u + Fup
		}
		return F
	}
	switch {
	case u > ur && F < o.K2*u+c:
		return o.K2*u + c
	case -uy <= u && u <= ur && F < o.K1*u:
		return o.K1 * u
	case u < -ur && F < o.K2*u-Fup:
		return o.K2*u - Fup
	}
	return F
}
