// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input of material data
package inp

import (
	"encoding/json"
	"path/filepath"
	"sort"

	"github.com/WenchenLie/MyOpenSees/mdl/uniax"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// Material holds material data
type Material struct {

	// input
	Tag   int        `json:"tag"`   // tag of material; unique
	Name  string     `json:"name"`  // name of material
	Model string     `json:"model"` // name of model; e.g. "tsscb", "modboucwen", "failure"
	Extra string     `json:"extra"` // extra information about this material
	Prms  dbf.Params `json:"prms"`  // prms holds all model parameters for this material

	// derived
	Mdl uniax.Model // pointer to actual model; set by Register
}

// MatsData holds materials
type MatsData []*Material

// MatDb implements a database of materials
type MatDb struct {
	Materials MatsData `json:"materials"` // all materials
}

// ReadMat reads all materials data from a .mat JSON file
func ReadMat(dir, fn string) (mdb *MatDb, err error) {
	b, err := io.ReadFile(filepath.Join(dir, fn))
	if err != nil {
		return nil, err
	}
	return ParseMat(b)
}

// ParseMat decodes materials data and checks tags and names
func ParseMat(b []byte) (mdb *MatDb, err error) {
	mdb = new(MatDb)
	err = json.Unmarshal(b, mdb)
	if err != nil {
		return nil, chk.Err("cannot decode materials data:\n%v", err)
	}
	tags := make(map[int]bool)
	names := make(map[string]bool)
	for _, m := range mdb.Materials {
		if m == nil {
			return nil, chk.Err("materials data must not contain null entries")
		}
		if tags[m.Tag] {
			return nil, chk.Err("material tag %d is repeated", m.Tag)
		}
		if m.Name != "" && names[m.Name] {
			return nil, chk.Err("material name %q is repeated", m.Name)
		}
		tags[m.Tag] = true
		names[m.Name] = true
	}
	return
}

// Register allocates all models and adds them to reg
//  Models without references are created first, in increasing order of tags.
//  Then, models referring to other models through the "other" parameter are
//  created as soon as the referenced model is available.
func (o *MatDb) Register(reg *uniax.Registry) (err error) {

	// split materials
	var plain, wrappers MatsData
	for _, m := range o.Materials {
		if _, ok := m.other(); ok {
			wrappers = append(wrappers, m)
		} else {
			plain = append(plain, m)
		}
	}
	sort.Slice(plain, func(i, j int) bool { return plain[i].Tag < plain[j].Tag })
	sort.Slice(wrappers, func(i, j int) bool { return wrappers[i].Tag < wrappers[j].Tag })

	// plain models
	for _, m := range plain {
		m.Mdl, err = reg.New(m.Model, m.Tag, m.Prms)
		if err != nil {
			return chk.Err("material %q:\n%v", m.Name, err)
		}
	}

	// wrappers; wrappers of wrappers are resolved in later passes
	for len(wrappers) > 0 {
		var pending MatsData
		for _, m := range wrappers {
			other, _ := m.other()
			if _, e := reg.Get(other); e != nil {
				pending = append(pending, m)
				continue
			}
			m.Mdl, err = reg.New(m.Model, m.Tag, m.Prms)
			if err != nil {
				return chk.Err("material %q:\n%v", m.Name, err)
			}
		}
		if len(pending) == len(wrappers) {
			other, _ := pending[0].other()
			return chk.Err("material %q refers to material with tag %d, which cannot be created", pending[0].Name, other)
		}
		wrappers = pending
	}
	return
}

// Get returns a material
//  Note: returns nil if not found
func (o MatDb) Get(name string) *Material {
	for _, mat := range o.Materials {
		if mat.Name == name {
			return mat
		}
	}
	return nil
}

// GetTag returns a material by tag
//  Note: returns nil if not found
func (o MatDb) GetTag(tag int) *Material {
	for _, mat := range o.Materials {
		if mat.Tag == tag {
			return mat
		}
	}
	return nil
}

// other returns the tag of the referenced material, if any
func (o *Material) other() (tag int, ok bool) {
	for _, p := range o.Prms {
		if p != nil && p.N == "other" {
			return int(p.V), true
		}
	}
	return
}
