// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements the output of invasion results: summaries and intrusion curves
package out

import (
	"bytes"
	"math"
	"sort"
	"time"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/google/uuid"
	"github.com/gopnm/gopnm/perc"
)

// Summary records the outcome of one invasion run
//  Note: invasion pressures are stored as indices into Pressures (-1 means never invaded) so that
//        summaries hold only finite numbers and can be encoded as JSON
type Summary struct {
	RunID      string             `json:"runid"`      // identifier of this run
	Key        string             `json:"key"`        // simulation key
	Desc       string             `json:"desc"`       // description of simulation
	Date       time.Time          `json:"date"`       // time of run
	Np         int                `json:"np"`         // number of pores
	Nt         int                `json:"nt"`         // number of throats
	Nfailed    int                `json:"nfailed"`    // number of throats without entry pressure
	Pressures  []float64          `json:"pressures"`  // swept control pressures
	Saturation []float64          `json:"saturation"` // invaded volume fraction at each pressure
	Percolates bool               `json:"percolates"` // inlets and outlets got connected
	Threshold  float64            `json:"threshold"`  // percolation threshold; valid if Percolates
	Truncated  bool               `json:"truncated"`  // sweep stopped by the maximum number of steps
	PoreStep   []int              `json:"porestep"`   // step at which each pore was invaded
	ThroatStep []int              `json:"throatstep"` // step at which each throat was invaded
	Labels     []int              `json:"labels"`     // final cluster of each pore; -1 if not invaded
	Warnings   []string           `json:"warnings"`   // non-fatal conditions
	Fit        string             `json:"fit"`        // retention model fitted to the curve; "" if none
	FitPrms    map[string]float64 `json:"fitprms"`    // parameters of fitted retention model
}

// NewSummary returns a new summary of results
func NewSummary(key, desc string, nfailed int, res *perc.Results) (o *Summary) {
	o = &Summary{
		RunID:      uuid.New().String(),
		Key:        key,
		Desc:       desc,
		Date:       time.Now(),
		Np:         len(res.PorePc),
		Nt:         len(res.ThroatPc),
		Nfailed:    nfailed,
		Pressures:  append([]float64(nil), res.Pressures...),
		Saturation: append([]float64(nil), res.Saturation...),
		Truncated:  res.Truncated,
		Labels:     append([]int(nil), res.Labels...),
	}
	o.Threshold, o.Percolates = res.Threshold()
	if !o.Percolates {
		o.Threshold = 0
	}
	o.PoreStep = o.steps(res.PorePc)
	o.ThroatStep = o.steps(res.ThroatPc)
	for _, w := range res.Warnings {
		o.Warnings = append(o.Warnings, w.Error())
	}
	return
}

// PorePc returns the invasion pressure of each pore; +Inf if never invaded
func (o *Summary) PorePc() []float64 { return o.pressures(o.PoreStep) }

// ThroatPc returns the invasion pressure of each throat; +Inf if never invaded
func (o *Summary) ThroatPc() []float64 { return o.pressures(o.ThroatStep) }

// Save saves summary to a file in dir
func (o *Summary) Save(dir, enctype string, compress, verbose bool) (err error) {
	var buf bytes.Buffer
	enc := GetEncoder(&buf, enctype)
	if err = enc.Encode(o); err != nil {
		return chk.Err("cannot encode summary\n%v", err)
	}
	return saveFile(SumPath(dir, o.Key, enctype, compress), &buf, compress, verbose)
}

// ReadSummary reads a summary saved by Save
func ReadSummary(dir, fnkey, enctype string, compress bool) (o *Summary, err error) {
	b, err := readFile(SumPath(dir, fnkey, enctype, compress), compress)
	if err != nil {
		return
	}
	o = new(Summary)
	dec := GetDecoder(bytes.NewReader(b), enctype)
	if err = dec.Decode(o); err != nil {
		return nil, chk.Err("cannot decode summary\n%v", err)
	}
	return
}

// Table returns the intrusion curve as a text table with header "pc sat"
func (o *Summary) Table() (buf *bytes.Buffer) {
	buf = new(bytes.Buffer)
	io.Ff(buf, "%23s %23s\n", "pc", "sat")
	for i, p := range o.Pressures {
		io.Ff(buf, "%23.15e %23.15e\n", p, o.Saturation[i])
	}
	return
}

// SaveTable writes the intrusion curve table to a file in dir
func (o *Summary) SaveTable(dir string, verbose bool) (err error) {
	return saveFile(TablePath(dir, o.Key), o.Table(), false, verbose)
}

// steps converts invasion pressures into indices of swept pressures
func (o *Summary) steps(pcs []float64) (steps []int) {
	steps = make([]int, len(pcs))
	for i, p := range pcs {
		steps[i] = -1
		if math.IsInf(p, 1) {
			continue
		}
		k := sort.SearchFloat64s(o.Pressures, p)
		if k < len(o.Pressures) && o.Pressures[k] == p {
			steps[i] = k
		}
	}
	return
}

// pressures converts indices of swept pressures into invasion pressures
func (o *Summary) pressures(steps []int) (pcs []float64) {
	pcs = make([]float64, len(steps))
	for i, k := range steps {
		if k < 0 || k >= len(o.Pressures) {
			pcs[i] = math.Inf(1)
			continue
		}
		pcs[i] = o.Pressures[k]
	}
	return
}
