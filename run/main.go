// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package run implements the driver of invasion simulations
package run

import (
	"context"
	"time"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/gopnm/gopnm/inp"
	"github.com/gopnm/gopnm/mdl/retention"
	"github.com/gopnm/gopnm/network"
	"github.com/gopnm/gopnm/out"
	"github.com/gopnm/gopnm/perc"
	"github.com/gopnm/gopnm/phys"
)

// Main holds all data for one invasion simulation
type Main struct {
	Sim       *inp.Simulation  // simulation data
	Net       *network.Network // network
	Phys      *phys.Physics    // entry pressures
	Results   *perc.Results    // invasion results
	Summary   *out.Summary     // summary structure
	Reten     retention.Model  // retention model fitted to the intrusion curve; nil if not requested
	Save      bool             // save summary (and table) files
	ShowMsg   bool             // show messages
	cputime   time.Time        // start time of Run
	completed bool             // Run completed
}

// NewMain returns a new Main structure
//  Input:
//   simfilepath -- simulation (.sim, .yaml or .yml) filename including full path
//   alias       -- word to be appended to simulation key; e.g. when running multiple simulations
//   erasePrev   -- erase previous results files
//   saveSummary -- save summary
//   verbose     -- show messages
func NewMain(simfilepath, alias string, erasePrev, saveSummary, verbose bool) (o *Main, err error) {
	o = &Main{Save: saveSummary}
	o.Sim, err = inp.ReadSim(simfilepath, alias, erasePrev, saveSummary)
	if err != nil {
		return nil, err
	}
	o.ShowMsg = verbose || o.Sim.Data.Verbose
	if o.ShowMsg {
		io.Pf("> Simulation file read\n")
	}
	o.Net, err = o.Sim.Network()
	if err != nil {
		return nil, err
	}
	if o.ShowMsg {
		io.Pf("> Network with %d pores and %d throats built\n", o.Net.Np(), o.Net.Nt())
	}
	return
}

// Run runs the invasion simulation
func (o *Main) Run(ctx context.Context) (err error) {

	// exit commands
	o.cputime = time.Now()
	defer func() { err = o.onexit(err) }()

	// entry pressures
	fld, err := o.Sim.Fluid()
	if err != nil {
		return
	}
	mdl, err := o.Sim.CapModel()
	if err != nil {
		return
	}
	o.Phys = &phys.Physics{
		Net:      o.Net,
		Fluid:    fld,
		Model:    mdl,
		Touch:    o.Sim.Capillary.Touch,
		Nworkers: o.Sim.Data.Nworkers,
		Verbose:  o.ShowMsg,
	}
	if err = o.Phys.Regenerate(ctx); err != nil {
		return
	}

	// invasion
	settings := o.Sim.Percolation
	settings.Verbose = settings.Verbose || o.ShowMsg
	eng, err := perc.FromPhysics(o.Phys, &settings)
	if err != nil {
		return
	}
	o.Results, err = eng.Run()
	if err != nil {
		return
	}

	// summary
	o.Summary = out.NewSummary(o.Sim.Key, o.Sim.Data.Desc, len(o.Phys.Failed()), o.Results)
	if o.Sim.Data.Fit != "" {
		o.Reten, o.Summary.FitPrms, err = FitRetention(o.Sim.Data.Fit, o.Results.Pressures, o.Results.Saturation)
		if err != nil {
			return
		}
		o.Summary.Fit = o.Sim.Data.Fit
	}
	if o.Save {
		if err = o.Summary.Save(o.Sim.DirOut, o.Sim.EncType, o.Sim.Data.Snappy, o.ShowMsg); err != nil {
			return
		}
		if o.Sim.Data.Table {
			err = o.Summary.SaveTable(o.Sim.DirOut, o.ShowMsg)
		}
	}
	o.completed = err == nil
	return
}

// FitRetention builds a retention model from an intrusion curve
//  Input:
//   name -- "bc" (Brooks and Corey), "vg" (van Genuchten with m = 1 - 1/n); both with sl in [0, 1];
//           or "curve" (tabulated)
//   pc   -- capillary pressures
//   s    -- invaded fractions
//  Output:
//   mdl  -- retention model
//   prms -- model parameters; "slmin" and "slmax" for the tabulated model
func FitRetention(name string, pc, s []float64) (mdl retention.Model, prms map[string]float64, err error) {
	Pc, Sl, err := retention.FromIntrusion(pc, s)
	if err != nil {
		return
	}
	switch name {
	case "bc":
		mdl, err = retention.FitBC(Pc, Sl, 0, 1)
	case "vg":
		mdl, err = retention.FitVG(Pc, Sl, 0, 1)
	case "curve":
		mdl, err = retention.NewCurve(Pc, Sl)
	default:
		err = chk.Err("retention model %q cannot be fitted", name)
	}
	if err != nil {
		return nil, nil, err
	}
	prms = map[string]float64{"slmin": mdl.SlMin(), "slmax": mdl.SlMax()}
	for _, p := range mdl.GetPrms(false) {
		prms[p.N] = p.V
	}
	return
}

// onexit prints the final message
func (o *Main) onexit(prevErr error) (err error) {
	err = prevErr
	if !o.ShowMsg {
		return
	}
	if err != nil {
		io.PfRed("> Run failed: %v\n", err)
		return
	}
	if o.completed {
		if pc, ok := o.Results.Threshold(); ok {
			io.Pfgreen("> Percolation threshold = %g\n", pc)
		} else {
			io.Pfyel("> Network did not percolate\n")
		}
		if o.Reten != nil {
			io.Pf("> Retention model %q fitted: %v\n", o.Summary.Fit, o.Summary.FitPrms)
		}
	}
	io.Pfblue2("cpu time   = %v\n", time.Since(o.cputime))
	return
}
