// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/gopnm/gopnm/geom"
	"github.com/gopnm/gopnm/network"
)

// ReadNetwork reads network data from a JSON or YAML file
func ReadNetwork(path string) (d *network.Data, err error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, chk.Err("cannot read network file %q:\n%v", path, err)
	}
	d = new(network.Data)
	if err = decode(path, b, d); err != nil {
		return nil, chk.Err("cannot unmarshal network file %q:\n%v", path, err)
	}
	return
}

// NetworkData builds the network data: topology, sizes from the geometry provider and boundary flags
func (o *Simulation) NetworkData() (d *network.Data, err error) {

	// topology
	nd := o.NetData
	switch nd.Type {
	case "cubic":
		if len(nd.Shape) != 3 {
			return nil, chk.Err("cubic network requires shape = [nx, ny, nz]")
		}
		d, err = network.Cubic(nd.Shape[0], nd.Shape[1], nd.Shape[2], nd.Spacing)
	case "file":
		path := nd.File
		if !nd.AbsPath {
			path = filepath.Join(o.Dir, path)
		}
		d, err = ReadNetwork(path)
	case "explicit":
		d = &network.Data{
			Pores:   append([]network.Pore(nil), nd.Pores...),
			Throats: append([]network.Throat(nil), nd.Throats...),
			Labels:  make(map[string][]int, len(nd.Labels)),
		}
		for key, set := range nd.Labels {
			d.Labels[key] = append([]int(nil), set...)
		}
	default:
		return nil, chk.Err("network type %q is not available", nd.Type)
	}
	if err != nil {
		return
	}

	// sizes
	if o.Geometry.Name != "" {
		var prov geom.Provider
		prov, err = geom.New(strings.ToLower(o.Geometry.Name))
		if err != nil {
			return
		}
		if err = prov.Init(o.Geometry.Prms); err != nil {
			return
		}
		if err = prov.Assign(d); err != nil {
			return
		}
	}

	// boundary
	err = d.SetBoundary(nd.Inlets, nd.Outlets)
	return
}

// Network builds the network
func (o *Simulation) Network() (net *network.Network, err error) {
	d, err := o.NetworkData()
	if err != nil {
		return
	}
	return network.New(d)
}
