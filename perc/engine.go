// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package perc implements quasi-static invasion percolation (drainage) driven by a sequence of
// increasing control pressures
package perc

import (
	"fmt"
	"math"
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/gopnm/gopnm/cluster"
	"github.com/gopnm/gopnm/network"
	"github.com/gopnm/gopnm/phys"
)

// Engine runs one invasion sweep over an immutable network
//  Note: an Engine is owned by one goroutine; Run may be called again and always restarts
type Engine struct {
	Net      *network.Network // network
	Pe       []float64        // entry pressure of each throat; non-finite values never invade
	Inlets   []int            // inlet pores (sorted, unique)
	Outlets  []int            // outlet pores (sorted, unique)
	Settings Settings         // control pressures and limits
}

// New allocates a new engine
//  Input:
//   net     -- network
//   pe      -- entry pressures [nt]
//   inlets  -- inlet pores
//   outlets -- outlet pores
//   s       -- settings; may be nil
func New(net *network.Network, pe []float64, inlets, outlets []int, s *Settings) (o *Engine, err error) {
	if net == nil {
		return nil, chk.Err("perc: network must be given")
	}
	if len(pe) != net.Nt() {
		return nil, chk.Err("perc: number of entry pressures (%d) must equal the number of throats (%d)", len(pe), net.Nt())
	}
	if len(inlets) == 0 {
		return nil, fmt.Errorf("%w: no inlet pores", ErrEmptyBoundary)
	}
	if len(outlets) == 0 {
		return nil, fmt.Errorf("%w: no outlet pores", ErrEmptyBoundary)
	}
	o = &Engine{Net: net, Pe: pe}
	if o.Inlets, err = checkPores(net, inlets, "inlet"); err != nil {
		return nil, err
	}
	if o.Outlets, err = checkPores(net, outlets, "outlet"); err != nil {
		return nil, err
	}
	if s != nil {
		o.Settings = *s
	}
	o.Settings.SetDefault()
	return
}

// FromPhysics allocates a new engine using the entry pressures of phy and the boundary flags of
// its network
func FromPhysics(phy *phys.Physics, s *Settings) (o *Engine, err error) {
	inlets, _ := phy.Net.Labelled("inlet")
	outlets, _ := phy.Net.Labelled("outlet")
	return New(phy.Net, phy.Pe, inlets, outlets, s)
}

// Run runs the sweep
func (o *Engine) Run() (res *Results, err error) {

	// boundary
	if len(o.Inlets) == 0 || len(o.Outlets) == 0 {
		return nil, fmt.Errorf("%w: %d inlets and %d outlets", ErrEmptyBoundary, len(o.Inlets), len(o.Outlets))
	}

	// control pressures
	P, err := o.Settings.Sequence(o.Pe)
	if err != nil {
		return
	}

	// throats sorted by entry pressure; ties by index
	order := make([]int, 0, len(o.Pe))
	for t, pe := range o.Pe {
		if !math.IsInf(pe, 0) && !math.IsNaN(pe) {
			order = append(order, t)
		}
	}
	sort.SliceStable(order, func(i, j int) bool { return o.Pe[order[i]] < o.Pe[order[j]] })

	// results
	res = newResults(o.Net, o.Inlets, o.Outlets)
	var vin float64
	for _, p := range o.Inlets {
		vin += o.Net.Pores[p].Vol
	}
	if vin > 0 {
		w := fmt.Errorf("%w: inlet pores hold %g of %g total volume", ErrDisconnectedInput, vin, res.vtot)
		res.Warnings = append(res.Warnings, w)
		if o.Settings.Verbose {
			io.Pfyel("> warning: %v\n", w)
		}
	}

	// tracker
	tr := cluster.NewTracker(o.Net.Np())
	for _, p := range o.Inlets {
		tr.SetInlet(p)
	}
	for _, p := range o.Outlets {
		tr.SetOutlet(p)
	}

	// sweep
	var queue, newP, newT []int
	var vinv float64
	seq, ptr := 0, 0
	for step, p := range P {
		if o.Settings.MaxSteps > 0 && step >= o.Settings.MaxSteps {
			res.Truncated = true
			break
		}
		queue, newP, newT = queue[:0], newP[:0], newT[:0]

		// seed with inlet pores
		if step == 0 {
			for _, q := range o.Inlets {
				res.PorePc[q] = p
				newP = append(newP, q)
				queue = append(queue, q)
			}
		}

		// breach throats and seed with their invaded ends
		for ptr < len(order) && o.Pe[order[ptr]] <= p {
			t := order[ptr]
			a, b := o.Net.Conns(t)
			tr.Union(a, b)
			if res.PoreSeq[a] >= 0 {
				queue = append(queue, a)
			}
			if res.PoreSeq[b] >= 0 {
				queue = append(queue, b)
			}
			ptr++
		}

		// expand to fixed point
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			for _, t := range o.Net.Neighbours(u) {
				if !math.IsInf(res.ThroatPc[t], 1) || !(o.Pe[t] <= p) {
					continue
				}
				res.ThroatPc[t] = p
				newT = append(newT, t)
				v := o.Net.Other(t, u)
				if math.IsInf(res.PorePc[v], 1) {
					res.PorePc[v] = p
					newP = append(newP, v)
					queue = append(queue, v)
				}
			}
		}

		// sequence numbers: pores then throats, ascending indices
		sort.Ints(newP)
		sort.Ints(newT)
		for _, q := range newP {
			res.PoreSeq[q] = seq
			vinv += o.Net.Pores[q].Vol
			seq++
		}
		for _, t := range newT {
			res.ThroatSeq[t] = seq
			vinv += o.Net.Throats[t].Vol
			seq++
		}
		res.ninv += len(newP) + len(newT)

		// curve and threshold
		res.Pressures = append(res.Pressures, p)
		res.Saturation = append(res.Saturation, res.fraction(vinv, res.ninv))
		if !res.percolates && tr.Spanning() {
			res.percolates, res.threshold = true, p
		}
		if o.Settings.Verbose {
			io.Pf("> P = %13.6e : %4d pores %4d throats invaded : S = %.6f", p, len(newP), len(newT), res.Saturation[len(res.Saturation)-1])
			if res.percolates && res.threshold == p {
				io.Pfgreen(" : percolating")
			}
			io.Pf("\n")
		}
	}

	// final clusters of invaded pores
	res.Labels = tr.Labels()
	remap := make(map[int]int)
	for q, l := range res.Labels {
		if res.PoreSeq[q] < 0 {
			res.Labels[q] = -1
			continue
		}
		id, ok := remap[l]
		if !ok {
			id = len(remap)
			remap[l] = id
		}
		res.Labels[q] = id
	}
	return
}

// checkPores returns sorted unique pores after checking their range
func checkPores(net *network.Network, pids []int, kind string) (set []int, err error) {
	set = make([]int, 0, len(pids))
	seen := make(map[int]bool, len(pids))
	for _, p := range pids {
		if p < 0 || p >= net.Np() {
			return nil, fmt.Errorf("%w: %s pore %d does not exist", network.ErrInvalidNetwork, kind, p)
		}
		if !seen[p] {
			seen[p] = true
			set = append(set, p)
		}
	}
	sort.Ints(set)
	return
}
