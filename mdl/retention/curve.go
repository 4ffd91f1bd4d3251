// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package retention

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/num"
)

// Curve implements a tabulated retention curve with linear interpolation
//  Note: values beyond the table are held constant; not safe for concurrent use
type Curve struct {
	Pcs []float64 // capillary pressures (ascending)
	Sls []float64 // liquid saturations (non-increasing)

	// derived
	interp *fun.DataInterp // sl(pc) within the table; nil for fewer than two points
	h      float64         // stepsize for Cc
}

// add model to factory
func init() {
	allocators["curve"] = func() Model { return new(Curve) }
}

// NewCurve returns a tabulated curve after checking the data
func NewCurve(Pc, Sl []float64) (o *Curve, err error) {
	o = new(Curve)
	err = o.Set(Pc, Sl)
	return
}

// Set sets the table. Data is copied.
func (o *Curve) Set(Pc, Sl []float64) (err error) {
	if len(Pc) == 0 || len(Pc) != len(Sl) {
		return chk.Err("curve: table must have the same non-zero number of pressures and saturations; got %d and %d", len(Pc), len(Sl))
	}
	wmin := math.Inf(1)
	for i := 1; i < len(Pc); i++ {
		if Pc[i] <= Pc[i-1] {
			return chk.Err("curve: pressures must be strictly ascending; pc[%d]=%g ≤ pc[%d]=%g", i, Pc[i], i-1, Pc[i-1])
		}
		if Sl[i] > Sl[i-1] {
			return chk.Err("curve: saturations must not increase; sl[%d]=%g > sl[%d]=%g", i, Sl[i], i-1, Sl[i-1])
		}
		wmin = math.Min(wmin, Pc[i]-Pc[i-1])
	}
	o.Pcs = append([]float64(nil), Pc...)
	o.Sls = append([]float64(nil), Sl...)
	o.interp = nil
	if len(Pc) > 1 {
		o.interp = fun.NewDataInterp("lin", 1, o.Pcs, o.Sls)
		o.h = 1e-3 * wmin
	}
	return
}

// Init initialises model
func (o *Curve) Init(prms dbf.Params) (err error) {
	if len(prms) > 0 {
		return chk.Err("curve: model is defined by a table; parameter %q is incorrect\n", prms[0].N)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Curve) GetPrms(example bool) dbf.Params {
	return dbf.Params{}
}

// SlMin returns sl_min
func (o Curve) SlMin() float64 {
	if len(o.Sls) == 0 {
		return 1
	}
	return o.Sls[len(o.Sls)-1]
}

// SlMax returns sl_max
func (o Curve) SlMax() float64 {
	if len(o.Sls) == 0 {
		return 1
	}
	return o.Sls[0]
}

// Sl computes sl directly from pc
func (o Curve) Sl(pc float64) float64 {
	if o.interp == nil || pc <= o.Pcs[0] {
		return o.SlMax()
	}
	if pc >= o.Pcs[len(o.Pcs)-1] {
		return o.SlMin()
	}
	return o.interp.P(pc)
}

// Cc computes Cc(pc) := dsl/dpc
//  Note: the slope to the right of pc is returned at table points
func (o Curve) Cc(pc float64) float64 {
	if o.interp == nil || pc < o.Pcs[0] || pc >= o.Pcs[len(o.Pcs)-1] {
		return 0
	}
	return num.DerivFwd4(pc, o.h, o.interp.P)
}
