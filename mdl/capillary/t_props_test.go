// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package capillary

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func Test_props01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("props01")

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)

	mdl := newPurcell(tst, nil)

	properties.Property("burst dominates every station", prop.ForAll(
		func(θ, r, R float64) bool {
			g := &Geometry{R: r, Rcurv: R, Theta: θ, Sigma: 0.48}
			res, err := mdl.Max(g)
			if err != nil {
				return false
			}
			for _, α := range mdl.stations() {
				pc, _ := mdl.Pc(g, α)
				if math.Abs(pc) > math.Abs(res.Pc)*(1+1e-12) {
					return false
				}
			}
			return true
		},
		gen.Float64Range(0, 180),
		gen.Float64Range(1e-6, 5e-5),
		gen.Float64Range(1e-6, 2e-5),
	))

	properties.Property("burst of non-wetting fluid matches closed form", prop.ForAll(
		func(θ, r, R float64) bool {
			g := &Geometry{R: r, Rcurv: R, Theta: θ, Sigma: 0.48}
			res, err := mdl.Max(g)
			if err != nil {
				return false
			}
			αs := alphaStar(θ, r, R)
			pc, _ := mdl.Pc(g, αs)
			return math.Abs(res.Alpha-αs) < 2e-3 && math.Abs(res.Pc-pc) <= 1e-4*math.Abs(pc)
		},
		gen.Float64Range(91, 179),
		gen.Float64Range(1e-6, 5e-5),
		gen.Float64Range(1e-6, 2e-5),
	))

	properties.Property("men inverts pc", prop.ForAll(
		func(θ, f float64) bool {
			g := &Geometry{R: 2e-5, Rcurv: 5e-6, Theta: θ, Sigma: 0.48}
			burst, err := mdl.Max(g)
			if err != nil {
				return false
			}
			entrance, _ := mdl.Pc(g, -math.Pi/2)
			target := entrance + f*(burst.Pc-entrance)
			res, err := mdl.Men(g, target)
			if err != nil {
				return false
			}
			pc, _ := mdl.Pc(g, res.Alpha)
			return res.Alpha <= burst.Alpha && math.Abs(pc-target) <= 1e-6*math.Abs(burst.Pc)
		},
		gen.Float64Range(0, 180),
		gen.Float64Range(0.05, 0.95),
	))

	properties.Property("washburn is odd about neutral wetting", prop.ForAll(
		func(θ, r float64) bool {
			var wb Washburn
			a, _ := wb.Entry(&Geometry{R: r, Theta: θ, Sigma: 0.48})
			b, _ := wb.Entry(&Geometry{R: r, Theta: 180 - θ, Sigma: 0.48})
			return math.Abs(a+b) <= 1e-9*2*0.48/r
		},
		gen.Float64Range(0, 180),
		gen.Float64Range(1e-6, 5e-5),
	))

	properties.TestingRun(tst)
}
