// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package capillary

import (
	"context"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// chunkSize is the number of throats evaluated by one worker task
const chunkSize = 256

var inf = math.Inf(1)

// EntryPressures computes the entry pressure of many throats concurrently
//  Input:
//   nworkers -- maximum number of goroutines; ≤ 0 means GOMAXPROCS
//  Output:
//   pe   -- entry pressures; +Inf where the evaluation failed
//   errs -- per-throat errors; nil entries where the evaluation succeeded
func EntryPressures(ctx context.Context, mdl Model, geos []*Geometry, nworkers int) (pe []float64, errs []error, err error) {
	pe = make([]float64, len(geos))
	errs = make([]error, len(geos))
	err = forChunks(ctx, len(geos), nworkers, func(i int) {
		pe[i], errs[i] = mdl.Entry(geos[i])
		if errs[i] != nil {
			pe[i] = inf
		}
	})
	return
}

// Queries runs the same meniscus query on many throats concurrently
//  Note: results are nil where the configuration is not admissible; errs holds the reason
func Queries(ctx context.Context, mdl Meniscus, geos []*Geometry, q Query, nworkers int) (res []Result, errs []error, err error) {
	res = make([]Result, len(geos))
	errs = make([]error, len(geos))
	err = forChunks(ctx, len(geos), nworkers, func(i int) {
		res[i], errs[i] = Solve(mdl, geos[i], q)
	})
	return
}

// Menisci resolves the meniscus configuration of many throats at one pressure concurrently
//  Note: results are nil where the configuration is not admissible; errs holds the reason
func Menisci(ctx context.Context, mdl Meniscus, geos []*Geometry, pc float64, nworkers int) (res []*MenResult, errs []error, err error) {
	all, errs, err := Queries(ctx, mdl, geos, MenQuery{Pc: pc}, nworkers)
	if err != nil {
		return
	}
	res = make([]*MenResult, len(all))
	for i, r := range all {
		if r != nil {
			res[i] = r.(*MenResult)
		}
	}
	return
}

// forChunks calls fcn for every index in [0, n) using a bounded group of goroutines
func forChunks(ctx context.Context, n, nworkers int, fcn func(i int)) error {
	if nworkers <= 0 {
		nworkers = runtime.GOMAXPROCS(0)
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(nworkers)
	for start := 0; start < n; start += chunkSize {
		if gctx.Err() != nil {
			break
		}
		lo, hi := start, start+chunkSize
		if hi > n {
			hi = n
		}
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				if err := gctx.Err(); err != nil {
					return err
				}
				fcn(i)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}
