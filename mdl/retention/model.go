// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package retention implements liquid retention models (sl versus pc) built from intrusion curves
//  The defending (wetting) phase saturation is sl = 1 - s, where s is the invaded fraction.
//  References:
//   [1] Brooks RH and Corey AT (1964) Hydraulic properties of porous media. Hydrology Papers 3,
//       Colorado State University
//   [2] van Genuchten MTh (1980) A closed-form equation for predicting the hydraulic conductivity
//       of unsaturated soils. Soil Science Society of America Journal, 44, 892-898
package retention

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Model implements a liquid retention model (LRM)
type Model interface {
	Init(prms dbf.Params) error      // initialises retention model
	GetPrms(example bool) dbf.Params // gets (an example) of parameters
	SlMin() float64                  // returns sl_min
	SlMax() float64                  // returns sl_max
	Sl(pc float64) float64           // computes sl directly from pc
	Cc(pc float64) float64           // computes Cc = ∂sl/∂pc
}

// New returns new liquid retention model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'retention' database", name)
	}
	return allocator(), nil
}

// allocators holds all available models
var allocators = map[string]func() Model{}

// FromIntrusion converts an intrusion curve (pc, invaded fraction) into retention data (pc, sl)
func FromIntrusion(pc, s []float64) (Pc, Sl []float64, err error) {
	if len(pc) != len(s) {
		return nil, nil, chk.Err("retention: intrusion curve has %d pressures but %d saturations", len(pc), len(s))
	}
	Pc = make([]float64, len(pc))
	Sl = make([]float64, len(s))
	for i := range pc {
		Pc[i], Sl[i] = pc[i], 1.0-s[i]
	}
	return
}
