// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uniax

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// runValues drives m through path and compares the stresses with correct values
func runValues(tst *testing.T, m Model, path, correct []float64, tol float64) {
	for i, ε := range path {
		err := SetStrain(m, ε)
		if err != nil {
			tst.Errorf("test failed:\n%v", err)
			return
		}
		chk.Float64(tst, io.Sf("σ(%g)", ε), tol, m.GetStress(), correct[i])
	}
}

func Test_bilinear01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bilinear01")

	m := newModel(tst, "bilinear", Bilinear{}.GetPrms(true))
	runValues(tst, m, []float64{0, 1, 4, 0, -1}, []float64{0, 50, 102, -98, -99}, 1e-13)
	chk.Float64(tst, "D", 1e-13, m.GetTangent(), 1)

	// tangent, re-trials
	path := GenPath([]float64{0, 5, -5, 8, -8}, 17, 1)
	run(tst, m, path)

	// invalid parameters
	for _, prms := range []dbf.Params{
		{&dbf.P{N: "Fy", V: 0}, &dbf.P{N: "k", V: 50}, &dbf.P{N: "b", V: 0.02}},
		{&dbf.P{N: "Fy", V: 100}, &dbf.P{N: "k", V: -50}, &dbf.P{N: "b", V: 0.02}},
		{&dbf.P{N: "Fy", V: 100}, &dbf.P{N: "k", V: 50}, &dbf.P{N: "b", V: 1}},
	} {
		if err := m.Init(prms); err == nil {
			tst.Errorf("test failed: Init must fail\n")
			return
		}
	}
}

func Test_twostage01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("twostage01")

	m := newModel(tst, "twostage", TwoStage{}.GetPrms(true))
	o := m.(*TwoStage)
	path := []float64{0, 0.3, 1, 3, 2.5}
	correct := []float64{0, 30, 52.5, 225, 175}
	stages := []int{1, 1, 1, 2, 1}
	for i, ε := range path {
		SetStrain(m, ε)
		chk.Float64(tst, io.Sf("σ(%g)", ε), 1e-12, m.GetStress(), correct[i])
		chk.Int(tst, io.Sf("stage(%g)", ε), o.Stage(), stages[i])
	}
	chk.Float64(tst, "u+", 1e-15, o.c.Upos, 3)
	chk.Float64(tst, "u-", 1e-15, o.c.Uneg, -1)

	// tangent
	run(tst, m, GenPath([]float64{0, 4, -4, 6, -6, 0}, 23, 1))
}

func Test_hookgap01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("hookgap01")

	m := newModel(tst, "hookgap", HookGap{}.GetPrms(true))
	o := m.(*HookGap)
	H := 400 * 10 / 390.0
	Δγ := 200 / (400 + H)
	path := []float64{0, 1, 2.5, 3, 0, -4}
	correct := []float64{
		0,
		52.5,
		60 + 200,
		62.5 + 400*(1-Δγ),
		-47.5,
		-67.5 - 400*(1-Δγ),
	}
	runValues(tst, m, path, correct, 1e-10)
	chk.Float64(tst, "gap+", 1e-13, o.c.P.Gap, 2+Δγ)
	chk.Float64(tst, "gap-", 1e-13, o.c.N.Gap, -3-Δγ)

	// post-yield stiffness of hooks
	chk.Float64(tst, "kp2", 1e-10, (400*(1-Δγ)-200)/0.5, 10)

	// slack grows after yielding
	SetStrain(m, 2.3)
	chk.Float64(tst, "hook+", 1e-15, o.c.P.F, 0)
	chk.Int(tst, "stage", o.Stage(), 1)
	SetStrain(m, 2.6)
	chk.Float64(tst, "hook+", 1e-10, o.c.P.F, 400*(2.6-2-Δγ))
	chk.Int(tst, "stage", o.Stage(), 2)

	// zero slack
	prms := HookGap{}.GetPrms(true)
	prms[6].V, prms[7].V = 0, 0
	m = newModel(tst, "hookgap", prms)
	chk.Float64(tst, "D0", 1e-15, m.GetInitialTangent(), 500)
	SetStrain(m, 0.01)
	chk.Float64(tst, "σ(0.01)", 1e-12, m.GetStress(), 5)

	// tangent
	run(tst, m, GenPath([]float64{0, 4, -4, 6, -6, 0}, 23, 1))
}

func Test_hookgap02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("hookgap02")

	// one-sided zero slack: committed tangent starts from the initial tangent
	for _, slack := range [][]float64{{0, 3}, {2, 0}, {0, 0}, {2, 3}} {
		prms := HookGap{}.GetPrms(true)
		prms[6].V, prms[7].V = slack[0], slack[1]
		m := newModel(tst, "hookgap", prms)
		D0 := 100.0
		if slack[0] == 0 {
			D0 = 500
		}
		chk.Float64(tst, io.Sf("D0 %v", slack), 1e-15, m.GetInitialTangent(), D0)
		chk.Float64(tst, io.Sf("D  %v", slack), 1e-15, m.GetTangent(), D0)
		SetStrain(m, 0)
		chk.Float64(tst, io.Sf("D(0) %v", slack), 1e-15, m.GetTangent(), D0)
	}

	// negative side engaged from the start
	prms := HookGap{}.GetPrms(true)
	prms[7].V = 0
	m := newModel(tst, "hookgap", prms)
	SetStrain(m, -0.01)
	chk.Float64(tst, "σ(-0.01)", 1e-12, m.GetStress(), -5)
	chk.Float64(tst, "D(-0.01)", 1e-10, m.GetTangent(), 500)
	m.RevertToStart()
	chk.Float64(tst, "D", 1e-15, m.GetTangent(), m.GetInitialTangent())
}

func Test_takeda01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("takeda01")

	m := newModel(tst, "modtakeda", ModTakeda{}.GetPrms(true))
	o := m.(*ModTakeda)

	// virgin loading and unloading
	ku := 50 * math.Pow(2.0/4.0, 0.4)
	σ2 := 105 - 2*ku
	runValues(tst, m, []float64{0, 1, 4, 2}, []float64{0, 50, 105, σ2}, 1e-12)
	chk.Float64(tst, "dm+", 1e-15, o.c.DmP, 4)
	chk.Float64(tst, "Fm+", 1e-15, o.c.FmP, 105)

	// zero crossing: unload to zero, then reload towards the negative flag point
	Δε1 := -σ2 / ku
	u0 := 2 + Δε1
	SetStrain(m, -1)
	chk.Float64(tst, "σ(-1)", 1e-12, m.GetStress(), -100/(-2-u0)*(-3-Δε1))

	// negative backbone
	SetStrain(m, -3)
	chk.Float64(tst, "σ(-3)", 1e-12, m.GetStress(), -100-1*0.05*50)

	// reload towards the positive flag point
	uflag := 4 - 0.2*(4-2)
	Fflag := 105 - 0.2*(4-2)*0.05*50
	SetStrain(m, -2)
	ku = 50 * math.Pow(2.0/3.0, 0.4)
	σ := -102.5 + ku
	chk.Float64(tst, "σ(-2)", 1e-12, m.GetStress(), σ)
	SetStrain(m, 0)
	Δε1 = -σ / ku
	u0 = -2 + Δε1
	chk.Float64(tst, "σ(0)", 1e-12, m.GetStress(), Fflag/(uflag-u0)*(2-Δε1))

	// tangent
	run(tst, m, GenPath([]float64{0, 3, -3, 6, -6, 8, 0}, 31, 1))
}

func Test_boucwen01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("boucwen01")

	m := newModel(tst, "modboucwen", ModBoucWen{}.GetPrms(true))
	o := m.(*ModBoucWen)
	chk.Float64(tst, "D0", 1e-15, m.GetInitialTangent(), 100)

	// elastic start
	SetStrain(m, 1e-3)
	chk.Float64(tst, "σ(1e-3)", 1e-6, m.GetStress(), 0.1)

	// yielding
	SetStrain(m, 10)
	m10 := 1 + 0.3*(1-math.Pow(1.05, -9))
	chk.Float64(tst, "wp", 1e-12, o.c.Wp, 9)
	chk.Float64(tst, "face", 1e-12, o.c.Face, 10)
	lo := 0.02*100*10 + 0.98*100*0.9
	hi := 0.02*100*10 + 0.98*100*m10
	io.Pforan("σ(10) = %v  in [%v, %v]\n", m.GetStress(), lo, hi)
	if m.GetStress() < lo || m.GetStress() > hi {
		tst.Errorf("test failed: σ(10) = %g is outside [%g, %g]\n", m.GetStress(), lo, hi)
		return
	}

	// negative yielding
	SetStrain(m, 5)
	chk.Float64(tst, "wp", 1e-12, o.c.Wp, 9+3)
	chk.Float64(tst, "face", 1e-12, o.c.Face, 7)
	SetStrain(m, 0)
	chk.Float64(tst, "wp", 1e-12, o.c.Wp, 9+3+5)
	chk.Float64(tst, "face", 1e-12, o.c.Face, 2)

	// symmetric response
	path := GenPath([]float64{0, 3, -3, 3}, 30, 1)
	Y := run(tst, newModel(tst, "modboucwen", ModBoucWen{}.GetPrms(true)), path)
	neg := make([]float64, len(path))
	for i, ε := range path {
		neg[i] = -ε
	}
	Yneg := run(tst, newModel(tst, "modboucwen", ModBoucWen{}.GetPrms(true)), neg)
	for i := range Yneg {
		Yneg[i] = -Yneg[i]
	}
	chk.Array(tst, "σ(-ε) = -σ(ε)", 1e-10, Y, Yneg)
}

func Test_boucwen02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("boucwen02")

	// failure due to cumulative plastic deformation
	m := newModel(tst, "modboucwen", append(ModBoucWen{}.GetPrms(true), &dbf.P{N: "cpdf", V: 5}))
	o := m.(*ModBoucWen)
	SetStrain(m, 5)
	if o.Failed() {
		tst.Errorf("test failed: wp/uy = 4 must not fail\n")
		return
	}
	SetStrain(m, 7)
	if !o.Failed() {
		tst.Errorf("test failed: wp/uy = 6 must fail\n")
		return
	}
	chk.Float64(tst, "σ(7)", 1e-15, m.GetStress(), 0)
	SetStrain(m, 0)
	chk.Float64(tst, "σ(0)", 1e-15, m.GetStress(), 0)

	// failure due to maximum displacement
	m = newModel(tst, "modboucwen", append(ModBoucWen{}.GetPrms(true), &dbf.P{N: "umax", V: 4}))
	SetStrain(m, -3.9)
	if m.GetStress() == 0 {
		tst.Errorf("test failed: stress must not be zero before umax\n")
		return
	}
	SetStrain(m, -4)
	chk.Float64(tst, "σ(-4)", 1e-15, m.GetStress(), 0)

	// number of substeps
	var drv1, drv2 Driver
	prms := append(ModBoucWen{}.GetPrms(true), &dbf.P{N: "iter", V: 200})
	drv1.Init(newModel(tst, "modboucwen", ModBoucWen{}.GetPrms(true)))
	drv2.Init(newModel(tst, "modboucwen", prms))
	path := GenPath([]float64{0, 3, -3, 3}, 30, 1)
	drv1.Run(path)
	drv2.Run(path)
	chk.Array(tst, "σ(iter=10) ≈ σ(iter=200)", 0.1, drv1.Sig(), drv2.Sig())

	// invalid parameters
	for _, extra := range []*dbf.P{
		&dbf.P{N: "iter", V: 0},
		&dbf.P{N: "iter", V: 2.5},
		&dbf.P{N: "cpdf", V: -1},
	} {
		if err := m.Init(append(ModBoucWen{}.GetPrms(true), extra)); err == nil {
			tst.Errorf("test failed: Init must fail with %s = %g\n", extra.N, extra.V)
			return
		}
	}
}

func Test_boucwen03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("boucwen03")

	// with Q=0, n=1, β=0 and γ=1: dz/dε = (1 - z)/uy for z ≥ 0
	//  thus z = 1 - exp(-ε/uy) on loading and the curve is retraced on unloading
	prms := dbf.Params{
		&dbf.P{N: "Fy", V: 100},
		&dbf.P{N: "uy", V: 1},
		&dbf.P{N: "alpha", V: 0.02},
		&dbf.P{N: "n", V: 1},
		&dbf.P{N: "Q", V: 0},
		&dbf.P{N: "b", V: 1.05},
		&dbf.P{N: "A", V: 1},
		&dbf.P{N: "beta", V: 0},
		&dbf.P{N: "gamma", V: 1},
	}
	m := newModel(tst, "modboucwen", prms)
	σ := func(ε float64) float64 { return 2*ε + 98*(1-math.Exp(-ε)) }
	path := []float64{0, 0.5, 1, 2, 3, 2, 1}
	correct := make([]float64, len(path))
	for i, ε := range path {
		correct[i] = σ(ε)
	}
	runValues(tst, m, path, correct, 1e-4)

	// one substep per increment is less accurate
	m = newModel(tst, "modboucwen", append(prms, &dbf.P{N: "iter", V: 1}))
	SetStrain(m, 0.5)
	e1 := math.Abs(m.GetStress() - σ(0.5))
	io.Pforan("error(iter=1) = %v\n", e1)
	if e1 < 1e-4 {
		tst.Errorf("test failed: a single coarse substep must be less accurate\n")
		return
	}
	chk.Float64(tst, "σ(0.5) iter=1", 0.1, m.GetStress(), σ(0.5))
}

func Test_tsb01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("tsb01")

	// one group behaves as the basic brace when no corrections are needed
	prms := dbf.Params{
		&dbf.P{N: "Fslip", V: 20},
		&dbf.P{N: "k", V: 300},
		&dbf.P{N: "ugap", V: 10},
		&dbf.P{N: "N", V: 1},
		&dbf.P{N: "Fy_1", V: 300},
		&dbf.P{N: "k1_1", V: 120},
		&dbf.P{N: "k2_1", V: 10},
		&dbf.P{N: "beta_1", V: 0.4},
	}
	path := []float64{0, 10, 12, 20, 15, 5, -12}
	ua := 10 - 20.0/120.0
	correct := []float64{0, 20, 120 * (12 - ua), 275 + 10*(20-ua), 165 + 10*(15-ua), -20, -120 * (12 - ua)}
	m := newModel(tst, "tsb", prms)
	runValues(tst, m, path, correct, 1e-10)

	// two identical halves
	half := dbf.Params{
		&dbf.P{N: "Fslip", V: 20},
		&dbf.P{N: "k", V: 300},
		&dbf.P{N: "ugap", V: 10},
		&dbf.P{N: "N", V: 2},
	}
	for i := 1; i <= 2; i++ {
		half = append(half,
			&dbf.P{N: io.Sf("Fy_%d", i), V: 150},
			&dbf.P{N: io.Sf("k1_%d", i), V: 60},
			&dbf.P{N: io.Sf("k2_%d", i), V: 5},
			&dbf.P{N: io.Sf("beta_%d", i), V: 0.4},
		)
	}
	m2 := newModel(tst, "tsb", half)
	runValues(tst, m2, path, correct, 1e-10)
	F := m2.(*TSB).GroupForces()
	chk.Float64(tst, "F1 = F2", 1e-10, F[0], F[1])

	// tangent
	path = GenPath([]float64{0, 15, -15, 25, -25, 0}, 40, 1)
	chk.Array(tst, "σ", 1e-9, run(tst, m, path), run(tst, m2, path))
}

func Test_tsb02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("tsb02")

	// bearing
	prms := dbf.Params{
		&dbf.P{N: "Fslip", V: 20},
		&dbf.P{N: "k", V: 300},
		&dbf.P{N: "ugap", V: 10},
		&dbf.P{N: "N", V: 1},
		&dbf.P{N: "Fy_1", V: 300},
		&dbf.P{N: "k1_1", V: 120},
		&dbf.P{N: "k2_1", V: 10},
		&dbf.P{N: "beta_1", V: 0.4},
		&dbf.P{N: "ubear_1", V: 15},
		&dbf.P{N: "kbear_1", V: 100},
	}
	ua := 10 - 20.0/120.0
	m := newModel(tst, "tsb", prms)
	runValues(tst, m, []float64{0, 10, 12, 20}, []float64{0, 20, 120 * (12 - ua), 100*(20-15) + 300 + 10*(15-ua-2.5)}, 1e-10)

	// example and invalid parameters
	newModel(tst, "tsb", TSB{}.GetPrms(true))
	for _, prms := range []dbf.Params{
		{&dbf.P{N: "N", V: 0}},
		{&dbf.P{N: "N", V: 11}},
		{&dbf.P{N: "N", V: 1.5}},
		prms[:7],
		append(prms[:4:4], &dbf.P{N: "Fy_1", V: 300}, &dbf.P{N: "k1_1", V: 120}, &dbf.P{N: "k2_1", V: 10}, &dbf.P{N: "beta_1", V: 0.4}, &dbf.P{N: "ubear_1", V: 5}),
		append(prms[:4:4], &dbf.P{N: "Fy_2", V: 300}),
	} {
		m, _ := New("tsb")
		err := m.Init(prms)
		if err == nil {
			tst.Errorf("test failed: Init must fail\n")
			return
		}
		io.Pforan("%v\n", err)
	}
}
