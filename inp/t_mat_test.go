// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"testing"

	"github.com/WenchenLie/MyOpenSees/mdl/uniax"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_mat01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mat01")

	mdb, err := ReadMat("data", "braces.mat")
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.Int(tst, "number of materials", len(mdb.Materials), 4)

	m := mdb.Get("brace")
	if m == nil {
		tst.Errorf("test failed: cannot find brace\n")
		return
	}
	chk.Int(tst, "tag of brace", m.Tag, 1)
	chk.String(tst, m.Model, "tsscb")
	chk.Int(tst, "number of prms", len(m.Prms), 12)
	if mdb.GetTag(4) == nil || mdb.GetTag(4).Name != "brace-fail-twice" {
		tst.Errorf("test failed: cannot find material with tag 4\n")
		return
	}
	if mdb.Get("nothing") != nil || mdb.GetTag(123) != nil {
		tst.Errorf("test failed: Get must return nil for unknown materials\n")
		return
	}

	// register: wrappers come after wrapped models, even when given before
	reg := uniax.NewRegistry()
	reg.Verbose = chk.Verbose
	err = mdb.Register(reg)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.Ints(tst, "tags", reg.Tags(), []int{1, 2, 3, 4})
	chk.String(tst, reg.Name(3), "failure")

	// shared reference
	f3 := mdb.GetTag(3).Mdl.(*uniax.Failure)
	f4 := mdb.GetTag(4).Mdl.(*uniax.Failure)
	if f3.Wrapped() != mdb.GetTag(1).Mdl {
		tst.Errorf("test failed: failure must wrap the registered brace\n")
		return
	}
	if f4.Wrapped() != uniax.Model(f3) {
		tst.Errorf("test failed: failure 4 must wrap failure 3\n")
		return
	}

	// run through the outer wrapper
	for _, ε := range []float64{10, 30, 50} {
		err = uniax.SetStrain(f4, ε)
		if err != nil {
			tst.Errorf("test failed:\n%v", err)
			return
		}
	}
	chk.Float64(tst, "σ(outer)", 1e-15, f4.GetStress(), mdb.GetTag(1).Mdl.GetStress())
	err = uniax.SetStrain(f4, 61)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.Float64(tst, "σ(failed)", 1e-15, f4.GetStress(), 0)
	io.Pforan("brace stress = %v\n", mdb.GetTag(1).Mdl.GetStress())
}

func Test_mat02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mat02")

	// repeated tag
	_, err := ParseMat([]byte(`{"materials":[
		{"tag":1, "name":"a", "model":"bilinear", "prms":[{"n":"Fy","v":1},{"n":"k","v":1},{"n":"b","v":0}]},
		{"tag":1, "name":"b", "model":"bilinear", "prms":[{"n":"Fy","v":1},{"n":"k","v":1},{"n":"b","v":0}]}
	]}`))
	if err == nil {
		tst.Errorf("test failed: repeated tags must be rejected\n")
		return
	}
	io.Pforan("%v\n", err)

	// missing wrapped model
	mdb, err := ParseMat([]byte(`{"materials":[
		{"tag":2, "name":"w", "model":"failure", "prms":[{"n":"other","v":7}]}
	]}`))
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	err = mdb.Register(uniax.NewRegistry())
	if err == nil {
		tst.Errorf("test failed: missing wrapped model must be reported\n")
		return
	}
	io.Pforan("%v\n", err)

	// invalid json
	_, err = ParseMat([]byte(`{"materials":[`))
	if err == nil {
		tst.Errorf("test failed: invalid json must be rejected\n")
		return
	}
}
