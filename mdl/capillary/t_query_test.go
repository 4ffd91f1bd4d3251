// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package capillary

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_query01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("query01")

	mdl := newPurcell(tst, nil)
	g := &Geometry{R: 2e-5, Rcurv: 5e-6, Theta: 90, Sigma: 0.48}

	for _, q := range []Query{MaxQuery{}, TouchQuery{Length: 1e-5}, MenQuery{Pc: 3.9e4}} {
		res, err := Solve(mdl, g, q)
		if err != nil {
			tst.Errorf("Solve(%v) failed: %v\n", q.Mode(), err)
			return
		}
		if res.Mode() != q.Mode() {
			tst.Errorf("mode of result %v differs from mode of query %v\n", res.Mode(), q.Mode())
		}
		switch r := res.(type) {
		case *MaxResult:
			chk.Float64(tst, "max", 1e-2, r.Pressure(), 39191.83588453085)
		case *TouchResult:
			chk.Float64(tst, "touch", 1e-17, r.FillingAngle(), -math.Pi/2)
		case *MenResult:
			chk.Float64(tst, "men", 1e-17, r.Pressure(), 3.9e4)
			chk.Float64(tst, "rm", 1e-17, r.Radius, 0.96/3.9e4)
			if r.FillingAngle() > -1.3694384060045657+1e-5 {
				tst.Errorf("meniscus lies beyond burst: α=%g\n", r.FillingAngle())
			}
		}
	}

	// failures must not return typed nil
	res, err := Solve(mdl, g, MenQuery{Pc: 1e6})
	if !errors.Is(err, ErrNoSolution) {
		tst.Errorf("ErrNoSolution expected; got %v\n", err)
	}
	if res != nil {
		tst.Errorf("result should be nil on failure\n")
	}

	// modes
	for _, m := range []Mode{ModeMax, ModeTouch, ModeMen} {
		p, err := ParseMode(m.String())
		if err != nil {
			tst.Errorf("ParseMode failed: %v\n", err)
		}
		if p != m {
			tst.Errorf("ParseMode(%q) = %v\n", m.String(), p)
		}
	}
	if _, err = ParseMode("burst"); err == nil {
		tst.Errorf("ParseMode with unknown mode should fail\n")
	}
	chk.String(tst, Mode(7).String(), "unknown")
}

func Test_batch01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("batch01")

	mdl := newPurcell(tst, nil)
	n := 3*chunkSize + 17
	geos := make([]*Geometry, n)
	for i := range geos {
		geos[i] = &Geometry{R: 1e-6 * float64(1+i%50), Rcurv: 5e-6, Theta: 100 + float64(i%70), Sigma: 0.48}
	}
	geos[n-2] = &Geometry{R: -1, Theta: 140, Sigma: 0.48}

	pe, errs, err := EntryPressures(context.Background(), mdl, geos, 4)
	if err != nil {
		tst.Errorf("EntryPressures failed: %v\n", err)
		return
	}
	for i, g := range geos {
		if i == n-2 {
			if !errors.Is(errs[i], ErrInvalidGeometry) || !math.IsInf(pe[i], 1) {
				tst.Errorf("throat %d should fail with +Inf entry pressure; pe=%g err=%v\n", i, pe[i], errs[i])
			}
			continue
		}
		if errs[i] != nil {
			tst.Errorf("throat %d failed: %v\n", i, errs[i])
			continue
		}
		p, _ := mdl.Entry(g)
		chk.Float64(tst, "pe", 1e-17, pe[i], p)
	}

	// menisci at a common pressure
	res, errs, err := Menisci(context.Background(), mdl, geos[:10], 2e4, 0)
	if err != nil {
		tst.Errorf("Menisci failed: %v\n", err)
		return
	}
	for i := range res {
		if (res[i] == nil) == (errs[i] == nil) {
			tst.Errorf("throat %d: exactly one of result or error expected\n", i)
		}
	}

	// burst configurations through the query dispatch
	all, errs, err := Queries(context.Background(), mdl, geos, MaxQuery{}, 3)
	if err != nil {
		tst.Errorf("Queries failed: %v\n", err)
		return
	}
	for i, r := range all {
		if i == n-2 {
			if r != nil || !errors.Is(errs[i], ErrInvalidGeometry) {
				tst.Errorf("throat %d should fail with ErrInvalidGeometry; got %v\n", i, errs[i])
			}
			continue
		}
		if r == nil || r.Mode() != ModeMax {
			tst.Errorf("throat %d: burst configuration expected; err=%v\n", i, errs[i])
			continue
		}
		chk.Float64(tst, "burst", 1e-17, r.Pressure(), pe[i])
	}

	// cancelled
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, _, err = EntryPressures(ctx, mdl, geos, 2); !errors.Is(err, context.Canceled) {
		tst.Errorf("context.Canceled expected; got %v\n", err)
	}
}
