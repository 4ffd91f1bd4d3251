// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package cluster implements an incremental union-find tracker of connected pore clusters
package cluster

// Tracker implements a disjoint-set forest over pores with path halving and union by size.
// Each cluster carries inlet/outlet flags that, once set, remain set after every merge.
//  Note: a Tracker is owned by one goroutine; merges are not synchronised
type Tracker struct {
	parent []int  // parent[i] == i for roots
	size   []int  // number of members; valid at roots
	inlet  []bool // cluster touches an inlet; valid at roots
	outlet []bool // cluster touches an outlet; valid at roots
	ncl    int    // number of clusters
	nspan  int    // number of clusters with both flags set
}

// NewTracker returns a tracker with n singleton clusters
func NewTracker(n int) (o *Tracker) {
	o = new(Tracker)
	o.parent = make([]int, n)
	o.size = make([]int, n)
	o.inlet = make([]bool, n)
	o.outlet = make([]bool, n)
	for i := 0; i < n; i++ {
		o.parent[i] = i
		o.size[i] = 1
	}
	o.ncl = n
	return
}

// Len returns the number of elements
func (o *Tracker) Len() int { return len(o.parent) }

// Find returns the cluster id (root) of element i
func (o *Tracker) Find(i int) int {
	for o.parent[i] != i {
		o.parent[i] = o.parent[o.parent[i]]
		i = o.parent[i]
	}
	return i
}

// Union merges the clusters of a and b and returns the id of the merged cluster
func (o *Tracker) Union(a, b int) int {
	ra, rb := o.Find(a), o.Find(b)
	if ra == rb {
		return ra
	}
	if o.size[ra] < o.size[rb] || (o.size[ra] == o.size[rb] && rb < ra) {
		ra, rb = rb, ra
	}
	if o.spans(ra) {
		o.nspan--
	}
	if o.spans(rb) {
		o.nspan--
	}
	o.parent[rb] = ra
	o.size[ra] += o.size[rb]
	o.inlet[ra] = o.inlet[ra] || o.inlet[rb]
	o.outlet[ra] = o.outlet[ra] || o.outlet[rb]
	if o.spans(ra) {
		o.nspan++
	}
	o.ncl--
	return ra
}

// SetInlet flags the cluster of element i as connected to an inlet
func (o *Tracker) SetInlet(i int) {
	r := o.Find(i)
	was := o.spans(r)
	o.inlet[r] = true
	if !was && o.spans(r) {
		o.nspan++
	}
}

// SetOutlet flags the cluster of element i as connected to an outlet
func (o *Tracker) SetOutlet(i int) {
	r := o.Find(i)
	was := o.spans(r)
	o.outlet[r] = true
	if !was && o.spans(r) {
		o.nspan++
	}
}

// IsInletConnected tells whether the cluster containing element i touches an inlet
func (o *Tracker) IsInletConnected(i int) bool { return o.inlet[o.Find(i)] }

// IsOutletConnected tells whether the cluster containing element i touches an outlet
func (o *Tracker) IsOutletConnected(i int) bool { return o.outlet[o.Find(i)] }

// Size returns the number of members in the cluster containing element i
func (o *Tracker) Size(i int) int { return o.size[o.Find(i)] }

// Nclusters returns the current number of clusters
func (o *Tracker) Nclusters() int { return o.ncl }

// Spanning tells whether any cluster touches both an inlet and an outlet
func (o *Tracker) Spanning() bool { return o.nspan > 0 }

// Labels returns compact cluster labels 0,1,2... numbered by the smallest member of each cluster
func (o *Tracker) Labels() (labels []int) {
	n := len(o.parent)
	labels = make([]int, n)
	byroot := make(map[int]int)
	for i := 0; i < n; i++ {
		r := o.Find(i)
		id, ok := byroot[r]
		if !ok {
			id = len(byroot)
			byroot[r] = id
		}
		labels[i] = id
	}
	return
}

func (o *Tracker) spans(root int) bool { return o.inlet[root] && o.outlet[root] }
