// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package network

import (
	"errors"
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_net01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("net01")

	//   0 ---(0)--- 1 ---(1)--- 2
	//   |                       |
	//  (3)                     (2)
	//   |                       |
	//   4 ----------(4)-------- 3
	d := &Data{
		Pores: make([]Pore, 5),
		Throats: []Throat{
			{Conn: [2]int{0, 1}},
			{Conn: [2]int{1, 2}},
			{Conn: [2]int{2, 3}},
			{Conn: [2]int{4, 0}},
			{Conn: [2]int{3, 4}},
		},
		Labels: map[string][]int{"a": {3, 0, 3}, "b": {1}},
	}
	net, err := New(d)
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	chk.Int(tst, "Np", net.Np(), 5)
	chk.Int(tst, "Nt", net.Nt(), 5)
	chk.Ints(tst, "neigh(0)", net.Neighbours(0), []int{0, 3})
	chk.Ints(tst, "neigh(1)", net.Neighbours(1), []int{0, 1})
	chk.Ints(tst, "neigh(3)", net.Neighbours(3), []int{2, 4})
	chk.Ints(tst, "neigh(4)", net.Neighbours(4), []int{3, 4})
	chk.Int(tst, "other(3,0)", net.Other(3, 0), 4)
	chk.Int(tst, "other(3,4)", net.Other(3, 4), 0)

	// incidence is symmetric
	for t := 0; t < net.Nt(); t++ {
		a, b := net.Conns(t)
		for _, p := range []int{a, b} {
			found := false
			for _, s := range net.Neighbours(p) {
				if s == t {
					found = true
				}
			}
			if !found {
				tst.Errorf("throat %d is missing from incidence of pore %d\n", t, p)
			}
		}
	}

	pids, err := net.Labelled("a", "b")
	if err != nil {
		tst.Errorf("Labelled failed: %v\n", err)
		return
	}
	chk.Ints(tst, "a ∪ b", pids, []int{0, 1, 3})

	_, err = net.Labelled("nope")
	if !errors.Is(err, ErrInvalidNetwork) {
		tst.Errorf("missing label should fail with ErrInvalidNetwork; got %v\n", err)
	}
}

func Test_net02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("net02")

	bad := []*Data{
		nil,
		{},
		{Pores: make([]Pore, 2), Throats: []Throat{{Conn: [2]int{0, 2}}}},
		{Pores: make([]Pore, 2), Throats: []Throat{{Conn: [2]int{1, 1}}}},
		{Pores: make([]Pore, 2), Throats: []Throat{{Conn: [2]int{0, 1}, Diam: -1}}},
		{Pores: []Pore{{Theta: Float(190)}}},
		{Pores: []Pore{{Theta: Float(math.NaN())}}},
		{Pores: make([]Pore, 2), Throats: []Throat{{Conn: [2]int{0, 1}, Rcurv: Float(-1)}}},
		{Pores: make([]Pore, 1), Labels: map[string][]int{"x": {3}}},
	}
	for i, d := range bad {
		_, err := New(d)
		if !errors.Is(err, ErrInvalidNetwork) {
			tst.Errorf("case %d: expected ErrInvalidNetwork; got %v\n", i, err)
		}
	}
}

func Test_net03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("net03")

	d := &Data{
		Pores:   []Pore{{Vol: 1, Inlet: true}, {Vol: 2}, {Vol: 3, Outlet: true}},
		Throats: []Throat{{Conn: [2]int{0, 1}, Vol: 0.5}, {Conn: [2]int{1, 2}, Vol: 0.25}},
	}
	net, err := New(d)
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	chk.Float64(tst, "total volume", 1e-15, net.TotalVolume(), 6.75)

	ins, _ := net.Labelled("inlet")
	outs, _ := net.Labelled("outlet")
	chk.Ints(tst, "inlets", ins, []int{0})
	chk.Ints(tst, "outlets", outs, []int{2})

	// network owns a copy
	d.Pores[0].Vol = 100
	chk.Float64(tst, "pore 0 volume", 1e-15, net.Pores[0].Vol, 1)
	cpy := net.Data()
	cpy.Pores[1].Vol = 100
	chk.Float64(tst, "pore 1 volume", 1e-15, net.Pores[1].Vol, 2)

	// optional properties: zero is a real value and copies do not share storage
	d.Pores[0].Theta = Float(0)
	d.Throats[0].Rcurv = Float(5e-6)
	net, err = New(d)
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	chk.Float64(tst, "theta(0)", 1e-17, net.Pores[0].ContactAngle(), 0)
	if !math.IsNaN(net.Pores[1].ContactAngle()) || !math.IsNaN(net.Throats[1].Curvature()) {
		tst.Errorf("unset properties should be NaN\n")
	}
	*d.Pores[0].Theta = 90
	cpy = net.Data()
	*cpy.Throats[0].Rcurv = 1
	chk.Float64(tst, "theta(0) after change", 1e-17, net.Pores[0].ContactAngle(), 0)
	chk.Float64(tst, "rcurv after change", 1e-17, net.Throats[0].Curvature(), 5e-6)
}
