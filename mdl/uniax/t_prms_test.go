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

func Test_prms01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("prms01")

	var a, b, c float64
	newSet := func() *prmSet {
		return newPrmSet("test").
			req(&a, "a").
			opt(&b, "b", 2).
			opt(&c, "c", 3)
	}

	// required and optional
	ps := newSet()
	err := ps.read(dbf.Params{&dbf.P{N: "a", V: 10}, nil, &dbf.P{N: "c", V: 30}})
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.Float64(tst, "a", 1e-15, a, 10)
	chk.Float64(tst, "b", 1e-15, b, 2)
	chk.Float64(tst, "c", 1e-15, c, 30)
	if !ps.has("a") || ps.has("b") || !ps.has("c") {
		tst.Errorf("test failed: wrong given flags\n")
		return
	}

	// defaults are restored by a new set
	ps = newSet()
	err = ps.read(dbf.Params{&dbf.P{N: "a", V: 1}})
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.Float64(tst, "c", 1e-15, c, 3)
	if ps.has("c") {
		tst.Errorf("test failed: flags must be reset by read\n")
		return
	}

	// errors
	for _, prms := range []dbf.Params{
		{&dbf.P{N: "b", V: 1}},
		{&dbf.P{N: "a", V: 1}, &dbf.P{N: "A", V: 1}},
		{&dbf.P{N: "a", V: 1}, &dbf.P{N: "a", V: 2}},
		{&dbf.P{N: "a", V: math.NaN()}},
	} {
		err = newSet().read(prms)
		if err == nil {
			tst.Errorf("test failed: read must fail with %v\n", prms)
			return
		}
		io.Pforan("%v\n", err)
	}
}
