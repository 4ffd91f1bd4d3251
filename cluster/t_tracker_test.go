// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cluster

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_tracker01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("tracker01")

	o := NewTracker(6)
	chk.Int(tst, "nclusters", o.Nclusters(), 6)
	for i := 0; i < 6; i++ {
		chk.Int(tst, "find", o.Find(i), i)
		chk.Int(tst, "size", o.Size(i), 1)
	}

	r := o.Union(0, 1)
	chk.Int(tst, "root(0,1)", r, 0)
	chk.Int(tst, "find(1)", o.Find(1), 0)
	chk.Int(tst, "size(1)", o.Size(1), 2)

	// larger cluster absorbs smaller one
	r = o.Union(5, 1)
	chk.Int(tst, "root(5,1)", r, 0)
	chk.Int(tst, "size(5)", o.Size(5), 3)
	chk.Int(tst, "nclusters", o.Nclusters(), 4)

	// repeated union is a no-op
	r = o.Union(1, 5)
	chk.Int(tst, "root(1,5)", r, 0)
	chk.Int(tst, "nclusters", o.Nclusters(), 4)

	o.Union(3, 4)
	chk.Ints(tst, "labels", o.Labels(), []int{0, 0, 1, 2, 2, 0})
}

func Test_tracker02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("tracker02")

	o := NewTracker(5)
	o.SetInlet(0)
	o.SetOutlet(4)
	if o.Spanning() {
		tst.Errorf("should not span yet\n")
	}

	o.Union(0, 1)
	o.Union(3, 4)
	if !o.IsInletConnected(1) || o.IsInletConnected(3) {
		tst.Errorf("inlet flags are wrong\n")
	}
	if !o.IsOutletConnected(3) || o.IsOutletConnected(1) {
		tst.Errorf("outlet flags are wrong\n")
	}
	if o.Spanning() {
		tst.Errorf("should not span yet\n")
	}

	o.Union(1, 2)
	o.Union(2, 3)
	if !o.Spanning() {
		tst.Errorf("should span\n")
	}
	for i := 0; i < 5; i++ {
		if !o.IsInletConnected(i) || !o.IsOutletConnected(i) {
			tst.Errorf("flags must propagate to every member (i=%d)\n", i)
		}
	}
	chk.Int(tst, "nclusters", o.Nclusters(), 1)
	chk.Int(tst, "size", o.Size(2), 5)

	// flags are monotone
	o.SetInlet(2)
	if !o.Spanning() {
		tst.Errorf("should still span\n")
	}
}

func Test_tracker03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("tracker03")

	// long chain: path halving keeps finds correct
	n := 1000
	o := NewTracker(n)
	for i := 1; i < n; i++ {
		o.Union(i-1, i)
	}
	root := o.Find(0)
	for i := 0; i < n; i++ {
		if o.Find(i) != root {
			tst.Errorf("element %d has root %d; expected %d\n", i, o.Find(i), root)
			return
		}
	}
	chk.Int(tst, "size", o.Size(n-1), n)

	// a cluster flagged on both sides spans even when flags come after the merge
	o2 := NewTracker(2)
	o2.Union(0, 1)
	o2.SetOutlet(1)
	o2.SetInlet(0)
	if !o2.Spanning() {
		tst.Errorf("should span\n")
	}
}
