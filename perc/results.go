// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package perc

import (
	"math"

	"github.com/gopnm/gopnm/cluster"
	"github.com/gopnm/gopnm/network"
)

// Results holds the invasion state after a sweep
//  Note: invasion pressures are +Inf and sequence numbers are -1 for elements never invaded
type Results struct {
	PorePc     []float64 // invasion pressure of each pore
	ThroatPc   []float64 // invasion pressure of each throat
	PoreSeq    []int     // invasion order of each pore
	ThroatSeq  []int     // invasion order of each throat
	Labels     []int     // cluster of each invaded pore (0, 1, ... by smallest member); -1 if not invaded
	Pressures  []float64 // swept control pressures
	Saturation []float64 // invaded volume fraction at each swept pressure
	Truncated  bool      // sweep stopped by the maximum number of steps
	Warnings   []error   // non-fatal conditions

	// internal
	net        *network.Network
	inlets     []int
	outlets    []int
	vtot       float64 // total volume
	ninv       int     // number of invaded elements
	percolates bool    // an inlet cluster reached an outlet
	threshold  float64 // smallest swept pressure with percolation
}

// newResults allocates results with nothing invaded
func newResults(net *network.Network, inlets, outlets []int) (o *Results) {
	o = &Results{net: net, inlets: inlets, outlets: outlets, vtot: net.TotalVolume()}
	o.PorePc = make([]float64, net.Np())
	o.PoreSeq = make([]int, net.Np())
	for i := range o.PorePc {
		o.PorePc[i], o.PoreSeq[i] = math.Inf(1), -1
	}
	o.ThroatPc = make([]float64, net.Nt())
	o.ThroatSeq = make([]int, net.Nt())
	for i := range o.ThroatPc {
		o.ThroatPc[i], o.ThroatSeq[i] = math.Inf(1), -1
	}
	return
}

// Threshold returns the percolation threshold pressure
//  Note: ok is false if the network never percolated during the sweep
func (o *Results) Threshold() (pc float64, ok bool) {
	if !o.percolates {
		return math.Inf(1), false
	}
	return o.threshold, true
}

// Curve returns the intrusion curve
func (o *Results) Curve() (pc, sat []float64) {
	return o.Pressures, o.Saturation
}

// Invaded returns which pores and throats are invaded at pressure pc
func (o *Results) Invaded(pc float64) (pores, throats []bool) {
	pores = make([]bool, len(o.PorePc))
	for i, p := range o.PorePc {
		pores[i] = reached(p, pc)
	}
	throats = make([]bool, len(o.ThroatPc))
	for i, p := range o.ThroatPc {
		throats[i] = reached(p, pc)
	}
	return
}

// SaturationAt returns the invaded volume fraction at pressure pc
//  Note: element counts replace volumes when the network has no volume
func (o *Results) SaturationAt(pc float64) float64 {
	var vol float64
	n := 0
	for i, p := range o.PorePc {
		if reached(p, pc) {
			vol += o.net.Pores[i].Vol
			n++
		}
	}
	for i, p := range o.ThroatPc {
		if reached(p, pc) {
			vol += o.net.Throats[i].Vol
			n++
		}
	}
	return o.fraction(vol, n)
}

// IsPercolating tells whether invaded elements at pressure pc connect an inlet to an outlet
//  Note: connectivity is rebuilt from the recorded invasion pressures; the sweep is not re-run
func (o *Results) IsPercolating(pc float64) bool {
	tr := cluster.NewTracker(len(o.PorePc))
	for _, p := range o.inlets {
		if reached(o.PorePc[p], pc) {
			tr.SetInlet(p)
		}
	}
	for _, p := range o.outlets {
		if reached(o.PorePc[p], pc) {
			tr.SetOutlet(p)
		}
	}
	for t, p := range o.ThroatPc {
		if reached(p, pc) {
			a, b := o.net.Conns(t)
			tr.Union(a, b)
		}
	}
	return tr.Spanning()
}

// fraction returns the invaded fraction given invaded volume and number of elements
func (o *Results) fraction(vol float64, n int) float64 {
	if o.vtot > 0 {
		return vol / o.vtot
	}
	nel := len(o.PorePc) + len(o.ThroatPc)
	return float64(n) / float64(nel)
}

// reached tells whether an element invaded at pressure p is invaded at pressure pc
func reached(p, pc float64) bool { return !math.IsInf(p, 1) && p <= pc }
