// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package perc

import (
	"math"
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// Settings holds the control pressure sequence and limits of one sweep
type Settings struct {
	Points    int       `json:"points"    yaml:"points"    validate:"gte=0"` // number of pressures between the smallest and largest entry pressures
	Pressures []float64 `json:"pressures" yaml:"pressures"`                  // explicit pressures; take precedence over Points
	LogSpace  bool      `json:"logspace"  yaml:"logspace"`                   // space Points logarithmically (needs positive entry pressures)
	MaxSteps  int       `json:"maxsteps"  yaml:"maxsteps"  validate:"gte=0"` // largest number of sweep steps; 0 means no limit
	Verbose   bool      `json:"verbose"   yaml:"verbose"`                    // show messages
}

// SetDefault sets default values
func (o *Settings) SetDefault() {
	if o.Points == 0 && len(o.Pressures) == 0 {
		o.Points = 25
	}
}

// Sequence returns the ascending, repetition-free control pressures for the given entry pressures
//  Note: non-finite values are ignored
func (o Settings) Sequence(pe []float64) (P []float64, err error) {

	// explicit values
	if len(o.Pressures) > 0 {
		for _, p := range o.Pressures {
			if !math.IsInf(p, 0) && !math.IsNaN(p) {
				P = append(P, p)
			}
		}
		if len(P) == 0 {
			return nil, chk.Err("perc: all %d given pressures are non-finite", len(o.Pressures))
		}
		sort.Float64s(P)
		return unique(P), nil
	}

	// range of entry pressures
	pmin, pmax := math.Inf(1), math.Inf(-1)
	for _, p := range pe {
		if math.IsInf(p, 0) || math.IsNaN(p) {
			continue
		}
		pmin, pmax = math.Min(pmin, p), math.Max(pmax, p)
	}
	if pmin > pmax {
		return nil, chk.Err("perc: no throat has a finite entry pressure; pressures must be given explicitly")
	}
	n := o.Points
	if n < 1 {
		n = 25
	}
	if n == 1 || pmin == pmax {
		return []float64{pmax}, nil
	}
	if o.LogSpace && pmin > 0 {
		P = utl.LinSpace(math.Log10(pmin), math.Log10(pmax), n)
		for i := range P {
			P[i] = math.Pow(10, P[i])
		}
	} else {
		P = utl.LinSpace(pmin, pmax, n)
	}
	P[0], P[n-1] = pmin, pmax
	return unique(P), nil
}

// unique removes repeated values from a sorted slice
func unique(v []float64) []float64 {
	k := 1
	for i := 1; i < len(v); i++ {
		if v[i] != v[k-1] {
			v[k] = v[i]
			k++
		}
	}
	return v[:k]
}
