// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package retention

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/num"
	"github.com/cpmech/gosl/utl"
)

// BrooksCorey implements Brooks and Corey's model
//  sl = slmin + (slmax - slmin)・(pcae/pc)^λ   for pc > pcae
type BrooksCorey struct {

	// parameters
	λ     float64 // slope coefficient (pore size distribution index)
	pcae  float64 // air-entry pressure
	slmin float64 // residual (minimum) saturation
	slmax float64 // maximum saturation
}

// add model to factory
func init() {
	allocators["bc"] = func() Model { return new(BrooksCorey) }
}

// Init initialises model
func (o *BrooksCorey) Init(prms dbf.Params) (err error) {
	o.slmax = 1.0
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "lam":
			o.λ = p.V
		case "pcae":
			o.pcae = p.V
		case "slmin":
			o.slmin = p.V
		case "slmax":
			o.slmax = p.V
		default:
			return chk.Err("bc: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.λ <= 0 || o.pcae <= 0 {
		return chk.Err("bc: lam and pcae must be positive; lam=%g, pcae=%g\n", o.λ, o.pcae)
	}
	if o.slmin < 0 || o.slmin >= o.slmax || o.slmax > 1 {
		return chk.Err("bc: saturations must satisfy 0 ≤ slmin < slmax ≤ 1; [%g, %g] is incorrect\n", o.slmin, o.slmax)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o BrooksCorey) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "lam", V: 0.5},
			&dbf.P{N: "pcae", V: 2e4},
			&dbf.P{N: "slmin", V: 0.1},
			&dbf.P{N: "slmax", V: 1.0},
		}
	}
	return dbf.Params{
		&dbf.P{N: "lam", V: o.λ},
		&dbf.P{N: "pcae", V: o.pcae},
		&dbf.P{N: "slmin", V: o.slmin},
		&dbf.P{N: "slmax", V: o.slmax},
	}
}

// SlMin returns sl_min
func (o BrooksCorey) SlMin() float64 {
	return o.slmin
}

// SlMax returns sl_max
func (o BrooksCorey) SlMax() float64 {
	return o.slmax
}

// Sl computes sl directly from pc
func (o BrooksCorey) Sl(pc float64) float64 {
	if pc <= o.pcae {
		return o.slmax
	}
	return o.slmin + (o.slmax-o.slmin)*math.Pow(o.pcae/pc, o.λ)
}

// Cc computes Cc(pc) := dsl/dpc
func (o BrooksCorey) Cc(pc float64) float64 {
	if pc <= o.pcae {
		return 0
	}
	return -o.λ * (o.slmax - o.slmin) * math.Pow(o.pcae/pc, o.λ) / pc
}

// FitBC fits Brooks and Corey's parameters λ and pcae to retention data with given slmin and slmax
//  Only points with pc > 0 and slmin < sl < slmax are used, with a least-squares line on
//   log((sl - slmin)/(slmax - slmin)) = λ・log(pcae) - λ・log(pc)
func FitBC(Pc, Sl []float64, slmin, slmax float64) (o *BrooksCorey, err error) {
	x, y, err := logData(Pc, Sl, slmin, slmax, func(se float64) float64 { return math.Log(se) })
	if err != nil {
		return nil, chk.Err("bc: %v", err)
	}
	a, b := num.LinFit(x, y) // y = a + b・x
	if !(b < 0) {
		return nil, chk.Err("bc: saturation must decrease with pressure; fitted slope=%g", b)
	}
	o = new(BrooksCorey)
	err = o.Init(dbf.Params{
		&dbf.P{N: "lam", V: -b},
		&dbf.P{N: "pcae", V: math.Exp(a / -b)},
		&dbf.P{N: "slmin", V: slmin},
		&dbf.P{N: "slmax", V: slmax},
	})
	return
}

// logData selects points with pc > 0 and slmin < sl < slmax and returns x = log(pc) and y = f(se),
// where se = (sl - slmin)/(slmax - slmin) is the effective saturation
func logData(Pc, Sl []float64, slmin, slmax float64, f func(se float64) float64) (x, y []float64, err error) {
	if len(Pc) != len(Sl) {
		return nil, nil, chk.Err("fitting data has %d pressures but %d saturations", len(Pc), len(Sl))
	}
	for i, pc := range Pc {
		if pc <= 0 || Sl[i] <= slmin || Sl[i] >= slmax {
			continue
		}
		x = append(x, math.Log(pc))
		y = append(y, f((Sl[i]-slmin)/(slmax-slmin)))
	}
	if len(x) < 2 {
		return nil, nil, chk.Err("at least 2 points inside (slmin, slmax) are needed for fitting; got %d", len(x))
	}
	if xmin, xmax := utl.MinMax(x); xmin == xmax {
		return nil, nil, chk.Err("fitting data must have distinct pressures")
	}
	return
}
