// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uniax

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// stages of two-stage devices
const (
	stageSlip = 1 // inside the gap: friction only
	stageSC   = 2 // beyond the gap: friction in series with self-centering
)

// gapGeom holds the geometry of friction + self-centering devices
//
//   -ugap        0        ugap
//  ---|----------o----------|---> ε
//   2 |          1          | 2
//
//  The self-centering component starts at the non-slip displacement ±(ugap-ua)
//  so that k1 (ugap - ua) = F1 when the gap closes.
type gapGeom struct {
	ugap float64 // gap length
	ua   float64 // offset of self-centering origin = max(0, ugap - F1/k1)
}

// newGapGeom computes the derived geometry
func newGapGeom(ugap, F1, k1 float64) gapGeom {
	return gapGeom{ugap: ugap, ua: math.Max(0, ugap-F1/k1)}
}

// stage returns the stage corresponding to a strain
func (o gapGeom) stage(ε float64) int {
	if o.ugap == 0 {
		return stageSC
	}
	if -o.ugap <= ε && ε <= o.ugap {
		return stageSlip
	}
	return stageSC
}

// enter splits an increment crossing from stage 1 to stage 2
//  du1  -- part spent in stage 1
//  du2  -- part spent in stage 2
//  usc0 -- non-slip displacement of the self-centering part at the boundary
func (o gapGeom) enter(εold, Δε float64) (du1, du2, usc0 float64) {
	if Δε > 0 {
		du1 = o.ugap - εold
		usc0 = o.ugap - o.ua
	} else {
		du1 = -o.ugap - εold
		usc0 = o.ua - o.ugap
	}
	du2 = Δε - du1
	return
}

// leave splits an increment crossing from stage 2 to stage 1
//  du1  -- part spent in stage 2
//  du2  -- part spent in stage 1
//  usc0 -- non-slip displacement of the self-centering part at the start
func (o gapGeom) leave(εold, εnew, Δε float64) (du1, du2, usc0 float64) {
	if Δε < 0 {
		du1 = o.ugap - εold
		du2 = εnew - o.ugap
		usc0 = εold - o.ua
	} else {
		du1 = -o.ugap - εold
		du2 = εnew + o.ugap
		usc0 = εold + o.ua
	}
	return
}

// origin returns the non-slip displacement at the start of a stage-2 increment
func (o gapGeom) origin(εold, εnew float64) float64 {
	if εnew >= 0 {
		return εold - o.ua
	}
	return εold + o.ua
}

// transition returns the key of a stage pair; panics on invalid pairs
func transition(from, to int) int {
	if from < stageSlip || from > stageSC || to < stageSlip || to > stageSC {
		chk.Panic("invalid stage transition: %d -> %d", from, to)
	}
	return 10*from + to
}

// stage-pair keys
const (
	slipToSlip = 10*stageSlip + stageSlip
	slipToSC   = 10*stageSlip + stageSC
	scToSC     = 10*stageSC + stageSC
	scToSlip   = 10*stageSC + stageSlip
)

// entryClamp keeps the force at the slip bound while entering stage 2
func entryClamp(F, Δε, F1 float64) float64 {
	if Δε > 0 && F < F1 {
		return F1
	}
	if Δε < 0 && F > -F1 {
		return -F1
	}
	return F
}

// cableClamp corrects the stage-2 force
//  1) stays on the slip bound while pushing further with the bound already reached
//  2) tension-only cables cannot push: no force against the sign of ε
//   Fprev -- committed force before hardening
func cableClamp(F, ε, Δε, Fprev, F1, ugap float64) float64 {
	switch {
	case Δε > 0 && ε > 0 && F < F1 && ugap > 0 && Fprev == F1:
		return F1
	case Δε < 0 && ε < 0 && F > -F1 && ugap > 0 && Fprev == -F1:
		return -F1
	case ε > 0 && F < 0:
		return 0
	case ε < 0 && F > 0:
		return 0
	}
	return F
}
