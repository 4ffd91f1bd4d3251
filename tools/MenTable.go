// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// +build ignore

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"math"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
	"github.com/gopnm/gopnm/inp"
	"github.com/gopnm/gopnm/mdl/capillary"
	"github.com/gopnm/gopnm/phys"
)

type Input struct {
	Dir    string  // directory with .sim file
	SimFn  string  // simulation filename
	Throat int     // throat index
	Mode   string  // "men" (default): pressures in [Pmin, Pmax]; "touch": lengths in [Lmin, Lmax]; "max"
	Pmin   float64 // smallest pressure; 0 means 10% of entry pressure
	Pmax   float64 // largest pressure; 0 means entry pressure
	Lmin   float64 // smallest touch length; 0 means 10% of Lmax
	Lmax   float64 // largest touch length; 0 means throat diameter
	Npts   int     // number of pressures or lengths
	DirOut string  // output directory

	// derived
	inpfn string
	mode  capillary.Mode
}

func (o *Input) PostProcess() (err error) {
	if o.Npts < 2 {
		o.Npts = 11
	}
	if o.DirOut == "" {
		o.DirOut = "/tmp/gopnm"
	}
	if o.Mode == "" {
		o.Mode = "men"
	}
	o.mode, err = capillary.ParseMode(o.Mode)
	return
}

func (o Input) String() (l string) {
	l = io.ArgsTable("INPUT ARGUMENTS",
		"input filename", "inpfn", o.inpfn,
		"directory with .sim file", "Dir", o.Dir,
		"simulation filename", "SimFn", o.SimFn,
		"throat index", "Throat", o.Throat,
		"query mode", "Mode", o.Mode,
		"smallest pressure", "Pmin", o.Pmin,
		"largest pressure", "Pmax", o.Pmax,
		"smallest touch length", "Lmin", o.Lmin,
		"largest touch length", "Lmax", o.Lmax,
		"number of pressures or lengths", "Npts", o.Npts,
		"output directory", "DirOut", o.DirOut,
	)
	return
}

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	// input data file
	var in Input
	in.inpfn, _ = io.ArgToFilename(0, "data/mentable", ".inp", true)

	// read and parse input data
	b, err := os.ReadFile(in.inpfn)
	if err != nil {
		io.PfRed("cannot read %s\n", in.inpfn)
		return
	}
	err = json.Unmarshal(b, &in)
	if err != nil {
		io.PfRed("cannot parse %s\n", in.inpfn)
		return
	}
	if err = in.PostProcess(); err != nil {
		io.PfRed("%v\n", err)
		return
	}

	// print input table
	io.Pf("%v\n", in)

	// load simulation
	sim, err := inp.ReadSim(filepath.Join(in.Dir, in.SimFn), "", false, false)
	if err != nil {
		io.PfRed("cannot load simulation:\n%v\n", err)
		return
	}
	net, err := sim.Network()
	if err != nil {
		io.PfRed("cannot build network:\n%v\n", err)
		return
	}
	if in.Throat < 0 || in.Throat >= net.Nt() {
		io.PfRed("throat %d does not exist; network has %d throats\n", in.Throat, net.Nt())
		return
	}
	fld, err := sim.Fluid()
	if err != nil {
		io.PfRed("cannot get fluid:\n%v\n", err)
		return
	}
	mdl, err := sim.CapModel()
	if err != nil {
		io.PfRed("cannot get capillary model:\n%v\n", err)
		return
	}

	men, ok := mdl.(capillary.Meniscus)
	if !ok {
		io.PfRed("capillary model %q cannot compute menisci\n", sim.Capillary.Model)
		return
	}

	// entry pressure
	phy, err := phys.New(context.Background(), net, fld, mdl, sim.Capillary.Touch)
	if err != nil {
		io.PfRed("cannot compute entry pressures:\n%v\n", err)
		return
	}
	pe := phy.Pe[in.Throat]
	g := phy.Geometry(in.Throat)
	io.Pforan("throat %d: r = %g  R = %g  θ = %g  pe = %g\n", in.Throat, g.R, g.Rcurv, g.Theta, pe)

	// queries
	var queries []capillary.Query
	switch in.mode {
	case capillary.ModeMax:
		queries = append(queries, capillary.MaxQuery{})
	case capillary.ModeTouch:
		if in.Lmax == 0 {
			in.Lmax = 2.0 * g.R
		}
		if in.Lmin == 0 {
			in.Lmin = 0.1 * in.Lmax
		}
		for _, l := range utl.LinSpace(in.Lmin, in.Lmax, in.Npts) {
			queries = append(queries, capillary.TouchQuery{Length: l})
		}
	case capillary.ModeMen:
		if in.Pmax == 0 {
			in.Pmax = pe
		}
		if in.Pmin == 0 {
			in.Pmin = 0.1 * in.Pmax
		}
		for _, pc := range utl.LinSpace(in.Pmin, in.Pmax, in.Npts) {
			queries = append(queries, capillary.MenQuery{Pc: pc})
		}
	}

	// table
	var buf bytes.Buffer
	io.Ff(&buf, "%23s %23s %23s %23s %23s %23s %23s\n", "length", "pc", "alpha", "radius", "center", "arc", "apex")
	for _, q := range queries {
		res, err := capillary.Solve(men, g, q)
		if errors.Is(err, capillary.ErrNoSolution) {
			io.Pfyel("%v\n", err)
			continue
		}
		if err != nil {
			io.PfRed("%v query failed:\n%v\n", q.Mode(), err)
			return
		}
		l, r, c, arc, apex := math.NaN(), math.NaN(), math.NaN(), math.NaN(), math.NaN()
		switch res := res.(type) {
		case *capillary.TouchResult:
			l = res.Length
		case *capillary.MenResult:
			r, c, arc, apex = res.Radius, res.Center, res.Arc, res.Apex
		}
		io.Ff(&buf, "%23.15e %23.15e %23.15e %23.15e %23.15e %23.15e %23.15e\n", l, res.Pressure(), res.FillingAngle(), r, c, arc, apex)
	}
	io.WriteFileVD(in.DirOut, io.Sf("%s_t%d_%s.dat", sim.Key, in.Throat, in.mode), &buf)
}
