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

// VanGen implements van Genuchten's model
//  sl = slmin + (slmax - slmin)・(1 + (α・pc)^n)^(-m)
type VanGen struct {

	// parameters
	α, m, n float64 // parameters
	slmin   float64 // minimum sl
	slmax   float64 // maximum sl
	pcmin   float64 // pc limit to consider zero slope
}

// add model to factory
func init() {
	allocators["vg"] = func() Model { return new(VanGen) }
}

// Init initialises model
func (o *VanGen) Init(prms dbf.Params) (err error) {
	o.pcmin, o.slmax = 1e-3, 1.0
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "alp":
			o.α = p.V
		case "m":
			o.m = p.V
		case "n":
			o.n = p.V
		case "slmin":
			o.slmin = p.V
		case "slmax":
			o.slmax = p.V
		case "pcmin":
			o.pcmin = p.V
		default:
			return chk.Err("vg: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.α <= 0 || o.m <= 0 || o.n <= 0 {
		return chk.Err("vg: alp, m and n must be positive; alp=%g, m=%g, n=%g\n", o.α, o.m, o.n)
	}
	if o.slmin < 0 || o.slmin >= o.slmax || o.slmax > 1 {
		return chk.Err("vg: saturations must satisfy 0 ≤ slmin < slmax ≤ 1; [%g, %g] is incorrect\n", o.slmin, o.slmax)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o VanGen) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "alp", V: 5e-5},
			&dbf.P{N: "m", V: 0.5},
			&dbf.P{N: "n", V: 2},
			&dbf.P{N: "slmin", V: 0.05},
			&dbf.P{N: "slmax", V: 1.0},
			&dbf.P{N: "pcmin", V: 1e-3},
		}
	}
	return dbf.Params{
		&dbf.P{N: "alp", V: o.α},
		&dbf.P{N: "m", V: o.m},
		&dbf.P{N: "n", V: o.n},
		&dbf.P{N: "slmin", V: o.slmin},
		&dbf.P{N: "slmax", V: o.slmax},
		&dbf.P{N: "pcmin", V: o.pcmin},
	}
}

// SlMin returns sl_min
func (o VanGen) SlMin() float64 {
	return o.slmin
}

// SlMax returns sl_max
func (o VanGen) SlMax() float64 {
	return o.slmax
}

// Sl computes sl directly from pc
func (o VanGen) Sl(pc float64) float64 {
	if pc <= o.pcmin {
		return o.slmax
	}
	c := math.Pow(o.α*pc, o.n)
	return o.slmin + (o.slmax-o.slmin)*math.Pow(1+c, -o.m)
}

// Cc computes Cc(pc) := dsl/dpc
func (o VanGen) Cc(pc float64) float64 {
	if pc <= o.pcmin {
		return 0
	}
	c := math.Pow(o.α*pc, o.n)
	fac := o.slmax - o.slmin
	return -fac * c * math.Pow(c+1.0, -o.m-1.0) * o.m * o.n / pc
}

// FitVG fits van Genuchten's parameters α and n, with m = 1 - 1/n, to retention data with given
// slmin and slmax
//  Only points with pc > 0 and slmin < sl < slmax are used. For a trial n, α comes from a
//  least-squares line on
//   log(se^(-1/m) - 1) = n・log(α) + n・log(pc)
//  and n is selected by minimising the squared saturation residuals over [nmin, nmax]: the best of
//  a coarse scan is refined with Brent's method
func FitVG(Pc, Sl []float64, slmin, slmax float64) (o *VanGen, err error) {
	if _, _, err = logData(Pc, Sl, slmin, slmax, math.Log); err != nil {
		return nil, chk.Err("vg: %v", err)
	}
	const nmin, nmax = 1.01, 20.0
	trial := func(n float64) (mdl *VanGen, ok bool) {
		m := 1.0 - 1.0/n
		x, y, _ := logData(Pc, Sl, slmin, slmax, func(se float64) float64 { return math.Log(math.Pow(se, -1.0/m) - 1.0) })
		a, b := num.LinFit(x, y) // y = a + b・x
		if !(b > 0) {
			return nil, false
		}
		mdl = &VanGen{α: math.Exp(a / b), m: m, n: n, slmin: slmin, slmax: slmax, pcmin: 1e-3}
		return mdl, !math.IsInf(mdl.α, 0) && mdl.α > 0
	}
	residual := func(n float64) (res float64) {
		mdl, ok := trial(n)
		if !ok {
			return float64(len(Pc) + 1) // above any admissible residual
		}
		for i, pc := range Pc {
			d := mdl.Sl(pc) - Sl[i]
			res += d * d
		}
		return
	}
	N := utl.LinSpace(nmin, nmax, 80)
	ibest, best := 0, math.Inf(1)
	for i, n := range N {
		if r := residual(n); r < best {
			ibest, best = i, r
		}
	}
	lo, hi := N[utl.Imax(ibest-1, 0)], N[utl.Imin(ibest+1, len(N)-1)]
	sol := num.NewBrent(residual, nil)
	nbest := sol.Min(lo, hi)
	if residual(nbest) > best {
		nbest = N[ibest]
	}
	mdl, ok := trial(nbest)
	if !ok {
		return nil, chk.Err("vg: cannot fit data; saturation must decrease with pressure")
	}
	o = new(VanGen)
	err = o.Init(mdl.GetPrms(false))
	return
}
