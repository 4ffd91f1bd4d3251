// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package phys binds a pore network, an invading fluid and a capillary model to produce
// per-throat entry pressures and meniscus configurations
package phys

import (
	"context"
	"fmt"
	"math"
	"sync"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/gopnm/gopnm/mdl/capillary"
	"github.com/gopnm/gopnm/mdl/fluid"
	"github.com/gopnm/gopnm/network"
)

// Physics holds the pore-scale physics of one network
//  Note: entry pressures are only recomputed by Regenerate; changing inputs has no effect until then
type Physics struct {

	// input
	Net      *network.Network // network
	Fluid    *fluid.Model     // invading fluid
	Model    capillary.Model  // entry pressure model
	Touch    bool             // limit entry pressures by meniscus contact at half throat length
	Nworkers int              // number of concurrent workers; ≤ 0 means GOMAXPROCS
	Verbose  bool             // show messages

	// derived
	Pe   []float64 // entry pressure of each throat; +Inf where evaluation failed
	Errs []error   // evaluation error of each throat; nil if successful

	// meniscus cache
	mu    sync.Mutex
	cache map[menKey]menVal
}

// menKey identifies one meniscus query
type menKey struct {
	t  int
	pc float64
}

// menVal holds the outcome of one meniscus query
type menVal struct {
	res *capillary.MenResult
	err error
}

// New allocates a new Physics and computes entry pressures
func New(ctx context.Context, net *network.Network, fld *fluid.Model, mdl capillary.Model, touch bool) (o *Physics, err error) {
	if net == nil || fld == nil || mdl == nil {
		return nil, chk.Err("phys: network, fluid and model must be given")
	}
	if touch {
		if _, ok := mdl.(capillary.Meniscus); !ok {
			return nil, chk.Err("phys: touch-limited entry pressures need a model able to compute menisci; %T is not", mdl)
		}
	}
	o = &Physics{Net: net, Fluid: fld, Model: mdl, Touch: touch}
	err = o.Regenerate(ctx)
	return
}

// Geometry returns the capillary geometry of throat t
func (o *Physics) Geometry(t int) *capillary.Geometry {
	thr := o.Net.Throats[t]
	a, b := o.Net.Conns(t)
	g := &capillary.Geometry{
		R:     thr.Diam / 2.0,
		Rcurv: thr.Curvature(),
		Theta: o.Fluid.ThroatTheta(o.Net.Pores[a].ContactAngle(), o.Net.Pores[b].ContactAngle()),
		Sigma: o.Fluid.Sigma,
	}
	if o.Touch {
		g.Touch = thr.Len / 2.0
	}
	return g
}

// Regenerate recomputes all entry pressures and clears the meniscus cache
func (o *Physics) Regenerate(ctx context.Context) (err error) {
	geos := make([]*capillary.Geometry, o.Net.Nt())
	for t := range geos {
		geos[t] = o.Geometry(t)
	}
	mdl := o.Model
	if o.Touch {
		men, ok := mdl.(capillary.Meniscus)
		if !ok {
			return chk.Err("phys: touch-limited entry pressures need a model able to compute menisci; %T is not", mdl)
		}
		mdl = capillary.TouchLimited{Meniscus: men}
	}
	pe, errs, err := capillary.EntryPressures(ctx, mdl, geos, o.Nworkers)
	if err != nil {
		return
	}
	o.Pe, o.Errs = pe, errs
	o.mu.Lock()
	o.cache = nil
	o.mu.Unlock()
	if o.Verbose {
		nf := len(o.Failed())
		io.Pf("> %d entry pressures computed", len(pe))
		if nf > 0 {
			io.Pfyel("; %d throats will never invade", nf)
		}
		io.Pf("\n")
	}
	return
}

// Failed returns the throats whose entry pressure could not be computed
func (o *Physics) Failed() (tids []int) {
	for t, err := range o.Errs {
		if err != nil {
			tids = append(tids, t)
		}
	}
	return
}

// Range returns the smallest and largest finite entry pressures
//  Note: ok is false if no throat has a finite entry pressure
func (o *Physics) Range() (pmin, pmax float64, ok bool) {
	pmin, pmax = math.Inf(1), math.Inf(-1)
	for _, pe := range o.Pe {
		if math.IsInf(pe, 0) || math.IsNaN(pe) {
			continue
		}
		pmin, pmax, ok = math.Min(pmin, pe), math.Max(pmax, pe), true
	}
	return
}

// Meniscus returns the meniscus configuration of throat t at pressure pc
//  Note: results are cached per (throat, pressure) until the next Regenerate; safe for concurrent use
func (o *Physics) Meniscus(t int, pc float64) (res *capillary.MenResult, err error) {
	men, ok := o.Model.(capillary.Meniscus)
	if !ok {
		return nil, chk.Err("phys: model %T cannot compute menisci", o.Model)
	}
	if t < 0 || t >= o.Net.Nt() {
		return nil, fmt.Errorf("%w: throat %d does not exist", network.ErrInvalidNetwork, t)
	}
	key := menKey{t, pc}
	o.mu.Lock()
	if v, found := o.cache[key]; found {
		o.mu.Unlock()
		return v.res, v.err
	}
	o.mu.Unlock()
	res, err = query(men, o.Geometry(t), pc)
	o.mu.Lock()
	if o.cache == nil {
		o.cache = make(map[menKey]menVal)
	}
	o.cache[key] = menVal{res, err}
	o.mu.Unlock()
	return
}

// Menisci returns the meniscus configuration of all throats at pressure pc
//  Note: entries are nil for throats where the configuration is not admissible
func (o *Physics) Menisci(ctx context.Context, pc float64) (res []*capillary.MenResult, errs []error, err error) {
	men, ok := o.Model.(capillary.Meniscus)
	if !ok {
		return nil, nil, chk.Err("phys: model %T cannot compute menisci", o.Model)
	}
	geos := make([]*capillary.Geometry, o.Net.Nt())
	for t := range geos {
		geos[t] = o.Geometry(t)
	}
	return capillary.Menisci(ctx, men, geos, pc, o.Nworkers)
}

// query solves the meniscus configuration of one throat at pressure pc
func query(men capillary.Meniscus, g *capillary.Geometry, pc float64) (*capillary.MenResult, error) {
	res, err := capillary.Solve(men, g, capillary.MenQuery{Pc: pc})
	if err != nil {
		return nil, err
	}
	return res.(*capillary.MenResult), nil
}
