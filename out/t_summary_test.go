// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/gopnm/gopnm/network"
	"github.com/gopnm/gopnm/perc"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// chainResults runs a sweep over 0 --(0)-- 1 --(1)-- 2 --(2)-- 3 with a failed last throat
func chainResults(tst *testing.T) *perc.Results {
	d := &network.Data{Pores: []network.Pore{{Vol: 1}, {Vol: 1}, {Vol: 1}, {Vol: 1}}}
	for i := 0; i < 3; i++ {
		d.Throats = append(d.Throats, network.Throat{Conn: [2]int{i, i + 1}})
	}
	net, err := network.New(d)
	if err != nil {
		tst.Fatalf("network.New failed: %v\n", err)
	}
	eng, err := perc.New(net, []float64{10, 20, math.Inf(1)}, []int{0}, []int{3}, &perc.Settings{Pressures: []float64{5, 10, 20, 30}})
	if err != nil {
		tst.Fatalf("perc.New failed: %v\n", err)
	}
	res, err := eng.Run()
	if err != nil {
		tst.Fatalf("Run failed: %v\n", err)
	}
	return res
}

func Test_summary01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("summary01")

	res := chainResults(tst)
	sum := NewSummary("chain", "three throats", 1, res)
	chk.Int(tst, "np", sum.Np, 4)
	chk.Int(tst, "nt", sum.Nt, 3)
	chk.Ints(tst, "pore step", sum.PoreStep, []int{0, 1, 2, -1})
	chk.Ints(tst, "throat step", sum.ThroatStep, []int{1, 2, -1})
	chk.Array(tst, "pore pc", 1e-17, sum.PorePc()[:3], []float64{5, 10, 20})
	if !math.IsInf(sum.PorePc()[3], 1) || !math.IsInf(sum.ThroatPc()[2], 1) {
		tst.Errorf("uninvaded elements should have infinite pressure\n")
	}
	if sum.Percolates || sum.Threshold != 0 {
		tst.Errorf("chain with failed throat should not percolate\n")
	}
	if len(sum.Warnings) != 1 {
		tst.Errorf("one warning expected; got %v\n", sum.Warnings)
	}
	if len(sum.RunID) != 36 {
		tst.Errorf("run id should be a uuid; got %q\n", sum.RunID)
	}
	sum.Fit = "bc"
	sum.FitPrms = map[string]float64{"lam": 2, "pcae": 10}

	// round trips
	dir := tst.TempDir()
	for _, enctype := range []string{"gob", "json"} {
		for _, compress := range []bool{false, true} {
			if err := sum.Save(dir, enctype, compress, chk.Verbose); err != nil {
				tst.Errorf("Save failed: %v\n", err)
				return
			}
			s, err := ReadSummary(dir, "chain", enctype, compress)
			if err != nil {
				tst.Errorf("ReadSummary failed: %v\n", err)
				return
			}
			msg := io.Sf("%s(compress=%v): ", enctype, compress)
			chk.String(tst, s.RunID, sum.RunID)
			chk.String(tst, s.Desc, "three throats")
			chk.Int(tst, msg+"nfailed", s.Nfailed, 1)
			chk.Array(tst, msg+"pressures", 1e-17, s.Pressures, sum.Pressures)
			chk.Array(tst, msg+"saturation", 1e-17, s.Saturation, sum.Saturation)
			chk.Ints(tst, msg+"pore step", s.PoreStep, sum.PoreStep)
			chk.Ints(tst, msg+"labels", s.Labels, sum.Labels)
			chk.Float64(tst, msg+"lam", 1e-17, s.FitPrms["lam"], 2)
			if !s.Date.Equal(sum.Date) {
				tst.Errorf("%sdate differs: %v != %v\n", msg, s.Date, sum.Date)
			}
		}
	}

	// plain and compressed files coexist
	if _, err := ReadSummary(dir, "chain", "json", false); err != nil {
		tst.Errorf("plain file should be read: %v\n", err)
	}
	if _, err := ReadSummary(dir, "missing", "gob", false); err == nil {
		tst.Errorf("missing file should fail\n")
	}
}

func Test_summary02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("summary02. intrusion curve table")

	sum := NewSummary("chain", "", 0, chainResults(tst))
	dir := tst.TempDir()
	if err := sum.SaveTable(dir, chk.Verbose); err != nil {
		tst.Errorf("SaveTable failed: %v\n", err)
		return
	}
	keys, tbl := io.ReadTable(TablePath(dir, "chain"))
	chk.Strings(tst, "keys", keys, []string{"pc", "sat"})
	chk.Array(tst, "pc", 1e-14, tbl["pc"], sum.Pressures)
	chk.Array(tst, "sat", 1e-14, tbl["sat"], sum.Saturation)
}
