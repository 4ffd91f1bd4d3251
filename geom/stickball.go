// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/rnd"
	"github.com/gopnm/gopnm/network"
)

// StickAndBall assigns spherical pores with random diameters connected by cylindrical throats
//  dpore   = spacing・(Dmin + (Dmax - Dmin)・u)   with u uniform in [0, 1)
//  dthroat = Tfrac・min(dpore_a, dpore_b)
//  lthroat = spacing - (dpore_a + dpore_b)/2
//  Note: the random generator of gosl/rnd is global; Assign must not run concurrently
type StickAndBall struct {

	// parameters
	Spacing float64 // lattice spacing
	Dmin    float64 // smallest pore diameter as fraction of spacing
	Dmax    float64 // largest pore diameter as fraction of spacing
	Tfrac   float64 // throat to pore diameter ratio
	Rcurv   float64 // curvature radius of throats as fraction of throat radius; NaN means model default
	Theta   float64 // contact angle assigned to all pores; NaN means phase default
	Seed    int     // seed of random numbers
}

// add provider to factory
func init() {
	allocators["stickball"] = func() Provider { return new(StickAndBall) }
}

// Init initialises provider
func (o *StickAndBall) Init(prms dbf.Params) (err error) {
	o.Dmin, o.Dmax, o.Tfrac = 0.1, 0.9, 0.5
	o.Rcurv, o.Theta = math.NaN(), math.NaN()
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "spacing":
			o.Spacing = p.V
		case "dmin":
			o.Dmin = p.V
		case "dmax":
			o.Dmax = p.V
		case "tfrac":
			o.Tfrac = p.V
		case "rcurv":
			o.Rcurv = p.V
		case "theta":
			o.Theta = p.V
		case "seed":
			o.Seed = int(p.V)
		default:
			return chk.Err("stickball: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.Spacing <= 0 {
		return chk.Err("stickball: spacing must be positive; spacing=%g is incorrect\n", o.Spacing)
	}
	if o.Dmin <= 0 || o.Dmax > 1 || o.Dmin > o.Dmax {
		return chk.Err("stickball: diameter fractions must satisfy 0 < dmin ≤ dmax ≤ 1; [%g, %g] is incorrect\n", o.Dmin, o.Dmax)
	}
	if o.Tfrac <= 0 || o.Tfrac > 1 {
		return chk.Err("stickball: throat ratio must be in (0, 1]; tfrac=%g is incorrect\n", o.Tfrac)
	}
	if o.Rcurv < 0 {
		return chk.Err("stickball: curvature fraction must not be negative; rcurv=%g is incorrect\n", o.Rcurv)
	}
	if o.Theta < 0 || o.Theta > 180 {
		return chk.Err("stickball: contact angle must be in [0, 180]; theta=%g is incorrect\n", o.Theta)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o StickAndBall) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "spacing", V: 1e-4},
			&dbf.P{N: "dmin", V: 0.1},
			&dbf.P{N: "dmax", V: 0.9},
			&dbf.P{N: "tfrac", V: 0.5},
			&dbf.P{N: "rcurv", V: 0.25},
			&dbf.P{N: "seed", V: 1234},
		}
	}
	prms := dbf.Params{
		&dbf.P{N: "spacing", V: o.Spacing},
		&dbf.P{N: "dmin", V: o.Dmin},
		&dbf.P{N: "dmax", V: o.Dmax},
		&dbf.P{N: "tfrac", V: o.Tfrac},
		&dbf.P{N: "seed", V: float64(o.Seed)},
	}
	return optional(prms, o.Rcurv, o.Theta)
}

// Assign assigns properties to all pores and throats
func (o StickAndBall) Assign(d *network.Data) (err error) {
	rnd.Init(o.Seed)
	for i := range d.Pores {
		d.Pores[i].Diam = o.Spacing * rnd.Float64(o.Dmin, o.Dmax)
		if !math.IsNaN(o.Theta) {
			d.Pores[i].Theta = network.Float(o.Theta)
		}
	}
	for i, t := range d.Throats {
		da, db := d.Pores[t.Conn[0]].Diam, d.Pores[t.Conn[1]].Diam
		if db < da {
			da = db
		}
		d.Throats[i].Diam = o.Tfrac * da
		if !math.IsNaN(o.Rcurv) {
			d.Throats[i].Rcurv = network.Float(o.Rcurv * d.Throats[i].Diam / 2.0)
		}
		if t.Len <= 0 {
			d.Throats[i].Len = o.Spacing
		}
	}
	finish(d, 1e-3*o.Spacing)
	return
}
