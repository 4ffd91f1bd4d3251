// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package network implements the pore network graph: pores (nodes) connected by throats (edges)
package network

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// ErrInvalidNetwork is returned when network data violates topology rules
var ErrInvalidNetwork = errors.New("network: invalid network data")

// Pore holds pore (node) data
type Pore struct {
	Diam   float64  `json:"diam"   yaml:"diam"`                      // diameter
	Vol    float64  `json:"vol"    yaml:"vol"`                       // volume
	Theta  *float64 `json:"theta,omitempty"  yaml:"theta,omitempty"` // contact angle [deg]; nil means "use phase default"
	Inlet  bool     `json:"inlet"  yaml:"inlet"`                     // boundary role: inlet
	Outlet bool     `json:"outlet" yaml:"outlet"`                    // boundary role: outlet
}

// Throat holds throat (edge) data
type Throat struct {
	Conn  [2]int   `json:"conn"  yaml:"conn"`                      // pores connected by this throat
	Diam  float64  `json:"diam"  yaml:"diam"`                      // diameter
	Len   float64  `json:"len"   yaml:"len"`                       // length
	Vol   float64  `json:"vol"   yaml:"vol"`                       // volume
	Rcurv *float64 `json:"rcurv,omitempty" yaml:"rcurv,omitempty"` // curvature radius of the bounding solid (toroid/fibre); nil means model default
}

// Float returns a pointer to a copy of v; used to set optional properties
func Float(v float64) *float64 { return &v }

// ContactAngle returns the contact angle of this pore or NaN if unset
func (o Pore) ContactAngle() float64 { return value(o.Theta) }

// Curvature returns the curvature radius of this throat or NaN if unset
func (o Throat) Curvature() float64 { return value(o.Rcurv) }

// Data holds network data as produced by collaborators (builders, geometry providers, input files)
type Data struct {
	Pores   []Pore           `json:"pores"   yaml:"pores"`
	Throats []Throat         `json:"throats" yaml:"throats"`
	Labels  map[string][]int `json:"labels"  yaml:"labels"` // named pore sets; e.g. "top", "bottom"
}

// Network implements an immutable pore network
//  Note: pores and throats are referenced by their indices in Pores and Throats
type Network struct {
	Pores   []Pore           // all pores
	Throats []Throat         // all throats
	Labels  map[string][]int // named (sorted) pore sets

	// incidence (CSR): throats touching pore p are adj[ptr[p]:ptr[p+1]]
	ptr []int
	adj []int
}

// New validates data and allocates a new network. Data is copied.
func New(d *Data) (o *Network, err error) {

	// check pores
	if d == nil || len(d.Pores) == 0 {
		return nil, fmt.Errorf("%w: at least one pore is required", ErrInvalidNetwork)
	}
	np := len(d.Pores)
	for i, p := range d.Pores {
		if p.Diam < 0 || p.Vol < 0 {
			return nil, fmt.Errorf("%w: pore %d has negative size (diam=%g, vol=%g)", ErrInvalidNetwork, i, p.Diam, p.Vol)
		}
		if p.Theta != nil && !(*p.Theta >= 0 && *p.Theta <= 180) {
			return nil, fmt.Errorf("%w: pore %d has contact angle %g outside [0, 180]", ErrInvalidNetwork, i, *p.Theta)
		}
	}

	// check throats
	for i, t := range d.Throats {
		a, b := t.Conn[0], t.Conn[1]
		if a < 0 || a >= np || b < 0 || b >= np {
			return nil, fmt.Errorf("%w: throat %d references pores (%d,%d) but np=%d", ErrInvalidNetwork, i, a, b, np)
		}
		if a == b {
			return nil, fmt.Errorf("%w: throat %d is a self-loop at pore %d", ErrInvalidNetwork, i, a)
		}
		if t.Diam < 0 || t.Len < 0 || t.Vol < 0 || (t.Rcurv != nil && !(*t.Rcurv >= 0)) {
			return nil, fmt.Errorf("%w: throat %d has negative size", ErrInvalidNetwork, i)
		}
	}

	// copy data
	o = new(Network)
	o.Pores = clonePores(d.Pores)
	o.Throats = cloneThroats(d.Throats)

	// labels
	o.Labels = make(map[string][]int, len(d.Labels))
	for key, pids := range d.Labels {
		set := make([]int, 0, len(pids))
		for _, p := range pids {
			if p < 0 || p >= np {
				return nil, fmt.Errorf("%w: label %q references pore %d but np=%d", ErrInvalidNetwork, key, p, np)
			}
			set = append(set, p)
		}
		o.Labels[key] = uniqueSorted(set)
	}

	// incidence
	o.ptr = make([]int, np+1)
	for _, t := range o.Throats {
		o.ptr[t.Conn[0]+1]++
		o.ptr[t.Conn[1]+1]++
	}
	for p := 0; p < np; p++ {
		o.ptr[p+1] += o.ptr[p]
	}
	o.adj = make([]int, o.ptr[np])
	next := make([]int, np)
	copy(next, o.ptr[:np])
	for i, t := range o.Throats {
		for _, p := range t.Conn {
			o.adj[next[p]] = i
			next[p]++
		}
	}
	return
}

// Np returns the number of pores
func (o *Network) Np() int { return len(o.Pores) }

// Nt returns the number of throats
func (o *Network) Nt() int { return len(o.Throats) }

// Conns returns the two pores connected by throat t
func (o *Network) Conns(t int) (a, b int) {
	return o.Throats[t].Conn[0], o.Throats[t].Conn[1]
}

// Neighbours returns the throats incident to pore p in ascending order
//  Note: the returned slice must not be modified
func (o *Network) Neighbours(p int) []int {
	return o.adj[o.ptr[p]:o.ptr[p+1]]
}

// Other returns the pore across throat t as seen from pore p
func (o *Network) Other(t, p int) int {
	a, b := o.Conns(t)
	if a == p {
		return b
	}
	return a
}

// Labelled returns the sorted union of pores carrying any of the given labels
//  Note: the special labels "inlet" and "outlet" select pores by their boundary flags
func (o *Network) Labelled(labels ...string) (pids []int, err error) {
	for _, key := range labels {
		switch key {
		case "inlet":
			for i, p := range o.Pores {
				if p.Inlet {
					pids = append(pids, i)
				}
			}
		case "outlet":
			for i, p := range o.Pores {
				if p.Outlet {
					pids = append(pids, i)
				}
			}
		default:
			set, ok := o.Labels[key]
			if !ok {
				return nil, fmt.Errorf("%w: label %q does not exist", ErrInvalidNetwork, key)
			}
			pids = append(pids, set...)
		}
	}
	return uniqueSorted(pids), nil
}

// TotalVolume returns the sum of all pore and throat volumes
func (o *Network) TotalVolume() (vol float64) {
	for _, p := range o.Pores {
		vol += p.Vol
	}
	for _, t := range o.Throats {
		vol += t.Vol
	}
	return
}

// Data returns a copy of the network data
func (o *Network) Data() *Data {
	d := &Data{
		Pores:   clonePores(o.Pores),
		Throats: cloneThroats(o.Throats),
		Labels:  make(map[string][]int, len(o.Labels)),
	}
	for key, set := range o.Labels {
		d.Labels[key] = append([]int(nil), set...)
	}
	return d
}

// uniqueSorted sorts ids in place and removes repeated values
func uniqueSorted(ids []int) []int {
	if len(ids) == 0 {
		return ids
	}
	sort.Ints(ids)
	k := 1
	for i := 1; i < len(ids); i++ {
		if ids[i] != ids[k-1] {
			ids[k] = ids[i]
			k++
		}
	}
	return ids[:k]
}

// clonePores returns a deep copy of pores
func clonePores(pores []Pore) []Pore {
	res := make([]Pore, len(pores))
	for i, p := range pores {
		if p.Theta != nil {
			p.Theta = Float(*p.Theta)
		}
		res[i] = p
	}
	return res
}

// cloneThroats returns a deep copy of throats
func cloneThroats(throats []Throat) []Throat {
	res := make([]Throat, len(throats))
	for i, t := range throats {
		if t.Rcurv != nil {
			t.Rcurv = Float(*t.Rcurv)
		}
		res[i] = t
	}
	return res
}

func value(v *float64) float64 {
	if v == nil {
		return math.NaN()
	}
	return *v
}
