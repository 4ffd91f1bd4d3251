// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package geom implements geometry and wettability providers that assign pore and throat sizes
// to network data
package geom

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/gopnm/gopnm/network"
)

// Provider assigns sizes (diameters, volumes, lengths, curvature radii) and contact angles
//  Note: providers only modify data before a network is constructed; recomputation is explicit
type Provider interface {
	Init(prms dbf.Params) error      // initialises provider
	GetPrms(example bool) dbf.Params // gets (an example) of parameters
	Assign(d *network.Data) error    // assigns properties to all pores and throats
}

// New returns new geometry provider
func New(name string) (p Provider, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("provider %q is not available in 'geom' database", name)
	}
	return allocator(), nil
}

// allocators holds all available providers
var allocators = map[string]func() Provider{}

// SphereVolume returns the volume of a sphere with diameter d
func SphereVolume(d float64) float64 { return math.Pi * d * d * d / 6.0 }

// CylinderVolume returns the volume of a cylinder with diameter d and length l
func CylinderVolume(d, l float64) float64 { return math.Pi * d * d * l / 4.0 }

// finish computes throat lengths and volumes from pore diameters and centre-to-centre distances
//  Note: the throat length stored by the topology builder is taken as the centre-to-centre distance
func finish(d *network.Data, lmin float64) {
	for i, t := range d.Throats {
		a, b := d.Pores[t.Conn[0]], d.Pores[t.Conn[1]]
		l := t.Len - (a.Diam+b.Diam)/2.0
		if l < lmin {
			l = lmin
		}
		d.Throats[i].Len = l
		d.Throats[i].Vol = CylinderVolume(t.Diam, l)
	}
	for i, p := range d.Pores {
		d.Pores[i].Vol = SphereVolume(p.Diam)
	}
}

// optional appends the curvature and contact angle parameters when they are set
func optional(prms dbf.Params, rcurv, theta float64) dbf.Params {
	if !math.IsNaN(rcurv) {
		prms = append(prms, &dbf.P{N: "rcurv", V: rcurv})
	}
	if !math.IsNaN(theta) {
		prms = append(prms, &dbf.P{N: "theta", V: theta})
	}
	return prms
}
