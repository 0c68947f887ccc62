// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uniax

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// prmSet connects parameter names to model fields through dbf.Params.ConnectSetOpt
//  Note: names are case sensitive; e.g. "k0" and "K0" are different parameters
type prmSet struct {
	model    string          // name of model for error messages
	vals     []*float64      // fields
	names    []string        // parameter names
	optional []bool          // optional flags
	index    map[string]int  // name => position in names
	given    map[string]bool // names found in the last call to read
}

// newPrmSet returns a new parameter connector for model
func newPrmSet(model string) *prmSet {
	return &prmSet{
		model: model,
		index: make(map[string]int),
		given: make(map[string]bool),
	}
}

// add connects a field
func (o *prmSet) add(v *float64, name string, optional bool) *prmSet {
	o.index[name] = len(o.names)
	o.vals = append(o.vals, v)
	o.names = append(o.names, name)
	o.optional = append(o.optional, optional)
	return o
}

// req connects a required parameter
func (o *prmSet) req(v *float64, name string) *prmSet {
	return o.add(v, name, false)
}

// opt connects an optional parameter and sets its default value
func (o *prmSet) opt(v *float64, name string, dflt float64) *prmSet {
	*v = dflt
	return o.add(v, name, true)
}

// read checks prms and copies their values into the connected fields
//  Unknown, repeated and NaN parameters are rejected; missing required ones are
//  reported by ConnectSetOpt
func (o *prmSet) read(prms dbf.Params) (err error) {
	var given dbf.Params
	o.given = make(map[string]bool)
	for _, p := range prms {
		if p == nil {
			continue
		}
		if _, ok := o.index[p.N]; !ok {
			return chk.Err("%s: parameter named %q is incorrect", o.model, p.N)
		}
		if o.given[p.N] {
			return chk.Err("%s: parameter named %q is given more than once", o.model, p.N)
		}
		if math.IsNaN(p.V) {
			return chk.Err("%s: parameter %q must be a number", o.model, p.N)
		}
		o.given[p.N] = true
		given = append(given, p)
	}
	errorMessage := given.ConnectSetOpt(o.vals, o.names, o.optional, o.model)
	if errorMessage != "" {
		return chk.Err("%s: %s", o.model, errorMessage)
	}
	return
}

// has tells whether a parameter was given in the last call to read
func (o *prmSet) has(name string) bool {
	return o.given[name]
}

// check returns an error if cond is false
func check(cond bool, model, msg string, args ...interface{}) error {
	if cond {
		return nil
	}
	return chk.Err(model+": "+msg, args...)
}

// firstErr returns the first non-nil error
func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
