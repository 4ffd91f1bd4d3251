// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fluid

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

func Test_fld01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fld01")

	var hg Model
	err := hg.Init(hg.GetPrms(true))
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	chk.Float64(tst, "sigma", 1e-17, hg.Sigma, 0.48)
	chk.Float64(tst, "theta", 1e-17, hg.Theta, 140)

	water := Model{Name: "water"}
	err = water.Init(water.GetPrms(true))
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	chk.Float64(tst, "sigma", 1e-17, water.Sigma, 0.072)

	prms := water.GetPrms(false)
	chk.Float64(tst, "current theta", 1e-17, prms[1].V, 110)
}

func Test_fld02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fld02")

	var o Model
	if err := o.Init(dbf.Params{&dbf.P{N: "sigma", V: 0.48}, &dbf.P{N: "visc", V: 1}}); err == nil {
		tst.Errorf("unknown parameter should fail\n")
	}
	o = Model{}
	if err := o.Init(dbf.Params{&dbf.P{N: "theta", V: 140}}); err == nil {
		tst.Errorf("missing surface tension should fail\n")
	}
	o = Model{}
	if err := o.Init(dbf.Params{&dbf.P{N: "sigma", V: 0.48}, &dbf.P{N: "theta", V: 200}}); err == nil {
		tst.Errorf("contact angle above 180 should fail\n")
	}

	o = Model{Sigma: 0.48, Theta: 140}
	unset := math.NaN()
	chk.Float64(tst, "default/default", 1e-15, o.ThroatTheta(unset, unset), 140)
	chk.Float64(tst, "override/default", 1e-15, o.ThroatTheta(120, unset), 130)
	chk.Float64(tst, "wetting/default", 1e-15, o.ThroatTheta(0, unset), 70)
	chk.Float64(tst, "wetting/wetting", 1e-15, o.ThroatTheta(0, 0), 0)
	chk.Float64(tst, "override/override", 1e-15, o.ThroatTheta(100, 120), 110)
}
