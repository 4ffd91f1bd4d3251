// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package capillary

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Washburn implements the entry pressure of a straight cylindrical throat: pc = -2σ・cos(θ)/r
type Washburn struct{}

// add model to factory
func init() {
	allocators["washburn"] = func() Model { return new(Washburn) }
}

// Init initialises model
func (o *Washburn) Init(prms dbf.Params) (err error) {
	if len(prms) > 0 {
		return chk.Err("washburn: model has no parameters; %q is incorrect\n", prms[0].N)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Washburn) GetPrms(example bool) dbf.Params {
	return dbf.Params{}
}

// Entry computes the entry pressure
func (o Washburn) Entry(g *Geometry) (pc float64, err error) {
	if err = g.Check(); err != nil {
		return
	}
	return -2.0 * g.Sigma * math.Cos(g.Theta*math.Pi/180.0) / g.R, nil
}
