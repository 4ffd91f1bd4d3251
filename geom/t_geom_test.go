// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/gopnm/gopnm/network"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_stickball01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("stickball01")

	prv, err := New("stickball")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	if err = prv.Init(prv.GetPrms(true)); err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}

	a, _ := network.Cubic(4, 3, 2, 1e-4)
	b, _ := network.Cubic(4, 3, 2, 1e-4)
	if err = prv.Assign(a); err != nil {
		tst.Errorf("Assign failed: %v\n", err)
		return
	}
	prv.Assign(b)

	for i, p := range a.Pores {
		if p.Diam < 1e-5 || p.Diam > 9e-5 {
			tst.Errorf("pore %d: diameter %g is out of range\n", i, p.Diam)
		}
		chk.Float64(tst, "same seed", 1e-17, p.Diam, b.Pores[i].Diam)
		chk.Float64(tst, "pore vol", 1e-25, p.Vol, math.Pi*p.Diam*p.Diam*p.Diam/6)
	}
	for i, t := range a.Throats {
		pa, pb := a.Pores[t.Conn[0]], a.Pores[t.Conn[1]]
		chk.Float64(tst, "throat diam", 1e-17, t.Diam, 0.5*math.Min(pa.Diam, pb.Diam))
		chk.Float64(tst, "throat rcurv", 1e-17, t.Curvature(), 0.25*t.Diam/2)
		if t.Len < 1e-7 {
			tst.Errorf("throat %d: length %g is too small\n", i, t.Len)
		}
		chk.Float64(tst, "throat vol", 1e-25, t.Vol, CylinderVolume(t.Diam, t.Len))
	}

	// the assigned data makes a valid network
	if _, err = network.New(a); err != nil {
		tst.Errorf("network.New failed: %v\n", err)
	}
}

func Test_stickball02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("stickball02")

	var o StickAndBall
	for _, prms := range []dbf.Params{
		{&dbf.P{N: "dmin", V: 0.1}},
		{&dbf.P{N: "spacing", V: 1}, &dbf.P{N: "dmin", V: 0.9}, &dbf.P{N: "dmax", V: 0.1}},
		{&dbf.P{N: "spacing", V: 1}, &dbf.P{N: "tfrac", V: 2}},
		{&dbf.P{N: "spacing", V: 1}, &dbf.P{N: "theta", V: 181}},
		{&dbf.P{N: "spacing", V: 1}, &dbf.P{N: "porosity", V: 0.3}},
	} {
		if err := o.Init(prms); err == nil {
			tst.Errorf("Init with %v should fail\n", prms[len(prms)-1].N)
		}
	}
}

func Test_uniform01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("uniform01")

	prv, err := New("uniform")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	err = prv.Init(dbf.Params{
		&dbf.P{N: "dpore", V: 4e-5},
		&dbf.P{N: "dthroat", V: 2e-5},
		&dbf.P{N: "rcurv", V: 5e-6},
		&dbf.P{N: "theta", V: 130},
	})
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}

	// explicit two-pore network without lengths
	d := &network.Data{
		Pores:   make([]network.Pore, 2),
		Throats: []network.Throat{{Conn: [2]int{0, 1}}},
	}
	prv.Assign(d)
	chk.Float64(tst, "theta", 1e-17, d.Pores[1].ContactAngle(), 130)
	chk.Float64(tst, "len", 1e-17, d.Throats[0].Len, 2e-5)
	chk.Float64(tst, "rcurv", 1e-17, d.Throats[0].Curvature(), 5e-6)
	chk.Float64(tst, "vol", 1e-25, d.Throats[0].Vol, math.Pi*4e-10*2e-5/4)

	// zero is a real value; absent parameters leave properties unset
	prv.Init(dbf.Params{&dbf.P{N: "dthroat", V: 2e-5}, &dbf.P{N: "theta", V: 0}})
	d = &network.Data{
		Pores:   make([]network.Pore, 2),
		Throats: []network.Throat{{Conn: [2]int{0, 1}}},
	}
	prv.Assign(d)
	chk.Float64(tst, "theta(0)", 1e-17, d.Pores[0].ContactAngle(), 0)
	if d.Throats[0].Rcurv != nil {
		tst.Errorf("curvature radius should be unset; got %g\n", *d.Throats[0].Rcurv)
	}
	chk.Int(tst, "number of prms", len(prv.GetPrms(false)), 3)

	if _, err = New("voronoi"); err == nil {
		tst.Errorf("New with unknown provider should fail\n")
	}
}
