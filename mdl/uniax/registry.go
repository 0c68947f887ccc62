// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uniax

import (
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// Registry holds the models of one analysis, identified by integer tags
//  Models that reference other models (e.g. Failure) are linked when added.
//  Note: not safe for concurrent use; parallel analyses must use one Registry each
type Registry struct {
	Verbose bool          // show messages
	models  map[int]Model // tag => model
	names   map[int]string
}

// NewRegistry returns a new empty registry
func NewRegistry() *Registry {
	return &Registry{
		models: make(map[int]Model),
		names:  make(map[int]string),
	}
}

// New allocates and initialises a model and adds it to the registry
//  The tag is checked before allocating, so nothing changes on errors
func (o *Registry) New(model string, tag int, prms dbf.Params) (m Model, err error) {
	if _, ok := o.models[tag]; ok {
		return nil, chk.Err("registry: tag %d is already used by a %q model", tag, o.names[tag])
	}
	m, err = New(model)
	if err != nil {
		return
	}
	err = m.Init(prms)
	if err != nil {
		return nil, chk.Err("registry: cannot initialise %q model with tag %d:\n%v", model, tag, err)
	}
	err = o.add(model, tag, m)
	if err != nil {
		return nil, err
	}
	return
}

// Add adds an initialised model to the registry
func (o *Registry) Add(tag int, m Model) (err error) {
	if m == nil {
		return chk.Err("registry: cannot add nil model with tag %d", tag)
	}
	if _, ok := o.models[tag]; ok {
		return chk.Err("registry: tag %d is already used by a %q model", tag, o.names[tag])
	}
	return o.add(io.Sf("%T", m), tag, m)
}

// add links and stores m
func (o *Registry) add(name string, tag int, m Model) (err error) {
	if lnk, ok := m.(Linker); ok {
		err = lnk.Link(o)
		if err != nil {
			return chk.Err("registry: cannot link %q model with tag %d:\n%v", name, tag, err)
		}
	}
	o.models[tag] = m
	o.names[tag] = name
	if o.Verbose {
		io.Pf("registry: %q model added with tag %d\n", name, tag)
	}
	return
}

// Get returns the model with a given tag
func (o *Registry) Get(tag int) (m Model, err error) {
	m, ok := o.models[tag]
	if !ok {
		return nil, chk.Err("registry: cannot find model with tag %d", tag)
	}
	return
}

// Name returns the name of the model with a given tag; empty if not found
func (o *Registry) Name(tag int) string { return o.names[tag] }

// Tags returns all tags in increasing order
func (o *Registry) Tags() (tags []int) {
	tags = make([]int, 0, len(o.models))
	for tag := range o.models {
		tags = append(tags, tag)
	}
	sort.Ints(tags)
	return
}

// Len returns the number of models
func (o *Registry) Len() int { return len(o.models) }
