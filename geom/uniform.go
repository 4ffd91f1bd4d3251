// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/gopnm/gopnm/network"
)

// Uniform assigns the same sizes to all pores and throats
type Uniform struct {
	Dpore   float64 // pore diameter
	Dthroat float64 // throat diameter
	Rcurv   float64 // curvature radius of throats; NaN means model default
	Theta   float64 // contact angle assigned to all pores; NaN means phase default
}

// add provider to factory
func init() {
	allocators["uniform"] = func() Provider { return new(Uniform) }
}

// Init initialises provider
func (o *Uniform) Init(prms dbf.Params) (err error) {
	o.Rcurv, o.Theta = math.NaN(), math.NaN()
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "dpore":
			o.Dpore = p.V
		case "dthroat":
			o.Dthroat = p.V
		case "rcurv":
			o.Rcurv = p.V
		case "theta":
			o.Theta = p.V
		default:
			return chk.Err("uniform: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.Dpore < 0 || o.Dthroat <= 0 || o.Rcurv < 0 {
		return chk.Err("uniform: sizes must be positive; dpore=%g, dthroat=%g, rcurv=%g\n", o.Dpore, o.Dthroat, o.Rcurv)
	}
	if o.Theta < 0 || o.Theta > 180 {
		return chk.Err("uniform: contact angle must be in [0, 180]; theta=%g is incorrect\n", o.Theta)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Uniform) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "dpore", V: 5e-5},
			&dbf.P{N: "dthroat", V: 2e-5},
			&dbf.P{N: "rcurv", V: 5e-6},
		}
	}
	prms := dbf.Params{
		&dbf.P{N: "dpore", V: o.Dpore},
		&dbf.P{N: "dthroat", V: o.Dthroat},
	}
	return optional(prms, o.Rcurv, o.Theta)
}

// Assign assigns properties to all pores and throats
func (o Uniform) Assign(d *network.Data) (err error) {
	for i := range d.Pores {
		d.Pores[i].Diam = o.Dpore
		if !math.IsNaN(o.Theta) {
			d.Pores[i].Theta = network.Float(o.Theta)
		}
	}
	lmin := o.Dthroat
	for i := range d.Throats {
		d.Throats[i].Diam = o.Dthroat
		if !math.IsNaN(o.Rcurv) {
			d.Throats[i].Rcurv = network.Float(o.Rcurv)
		}
		if d.Throats[i].Len <= 0 {
			d.Throats[i].Len = o.Dpore + lmin
		}
	}
	finish(d, 1e-3*lmin)
	return
}
