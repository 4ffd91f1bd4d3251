// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package retention

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// checkCc checks Cc = ∂sl/∂pc numerically and that sl stays within [slmin, slmax] and never increases
func checkCc(tst *testing.T, mdl Model, pc0, pcf float64, npts int, tolCc float64, verbose bool) {
	Pc := utl.LinSpace(pc0, pcf, npts)
	slPrev := mdl.SlMax()
	for _, pc := range Pc {
		sl := mdl.Sl(pc)
		io.Pforan("pc=%g, sl=%g\n", pc, sl)
		if sl < mdl.SlMin()-1e-15 || sl > mdl.SlMax()+1e-15 {
			tst.Errorf("sl=%g is outside [%g, %g]\n", sl, mdl.SlMin(), mdl.SlMax())
			return
		}
		if sl > slPrev+1e-15 {
			tst.Errorf("sl must not increase with pc; sl(%g)=%g > %g\n", pc, sl, slPrev)
			return
		}
		slPrev = sl
		h := 1e-3 * (pcf - pc0) / float64(npts)
		chk.DerivScaSca(tst, "Cc = ∂sl/∂pc", tolCc, mdl.Cc(pc), pc, h, verbose, func(x float64) float64 {
			return mdl.Sl(x)
		})
	}
}
