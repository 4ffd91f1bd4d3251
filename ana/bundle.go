// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import "math"

// Bundle computes the drainage of a bundle of parallel tubes connecting an inlet to an outlet
//  Each tube invades independently when the pressure reaches its entry pressure.
type Bundle struct {
	Pe  []float64 // entry pressure of each tube
	Vol []float64 // volume of each tube
}

// Saturation computes the invaded volume fraction at pressure pc
func (o Bundle) Saturation(pc float64) float64 {
	var vinv, vtot float64
	for i, pe := range o.Pe {
		vtot += o.Vol[i]
		if pe <= pc {
			vinv += o.Vol[i]
		}
	}
	if vtot == 0 {
		return 0
	}
	return vinv / vtot
}

// Threshold computes the percolation threshold; i.e. the smallest entry pressure
func (o Bundle) Threshold() float64 {
	pmin := math.Inf(1)
	for _, pe := range o.Pe {
		pmin = math.Min(pmin, pe)
	}
	return pmin
}

// ChainThreshold computes the percolation threshold of tubes in series; i.e. the largest entry pressure
func ChainThreshold(pe []float64) float64 {
	pmax := math.Inf(-1)
	for _, p := range pe {
		pmax = math.Max(pmax, p)
	}
	return pmax
}
