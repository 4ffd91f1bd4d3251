// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package network

import (
	"fmt"

	"github.com/cpmech/gosl/chk"
)

// Cubic returns the topology of a simple cubic lattice with nx×ny×nz pores
//  Pores are numbered with x running fastest: p = i + nx*(j + ny*k).
//  Throats are emitted per pore in the order +x, +y, +z.
//  Labels: "left"/"right" (x faces), "front"/"back" (y faces), "bottom"/"top" (z faces),
//  "internal" (pores not on any face) and "surface".
//  Throat lengths are set to the spacing; sizes must be assigned by a geometry provider.
func Cubic(nx, ny, nz int, spacing float64) (d *Data, err error) {
	if nx < 1 || ny < 1 || nz < 1 {
		return nil, fmt.Errorf("%w: cubic shape must be positive; got [%d,%d,%d]", ErrInvalidNetwork, nx, ny, nz)
	}
	if spacing <= 0 {
		return nil, chk.Err("cubic spacing must be positive; got %g", spacing)
	}

	// pores
	np := nx * ny * nz
	d = &Data{
		Pores:  make([]Pore, np),
		Labels: make(map[string][]int),
	}
	idx := func(i, j, k int) int { return i + nx*(j+ny*k) }
	for k := 0; k < nz; k++ {
		for j := 0; j < ny; j++ {
			for i := 0; i < nx; i++ {
				p := idx(i, j, k)
				onface := false
				add := func(key string) {
					d.Labels[key] = append(d.Labels[key], p)
					onface = true
				}
				if i == 0 {
					add("left")
				}
				if i == nx-1 {
					add("right")
				}
				if j == 0 {
					add("front")
				}
				if j == ny-1 {
					add("back")
				}
				if k == 0 {
					add("bottom")
				}
				if k == nz-1 {
					add("top")
				}
				if onface {
					d.Labels["surface"] = append(d.Labels["surface"], p)
				} else {
					d.Labels["internal"] = append(d.Labels["internal"], p)
				}
			}
		}
	}

	// throats
	for k := 0; k < nz; k++ {
		for j := 0; j < ny; j++ {
			for i := 0; i < nx; i++ {
				p := idx(i, j, k)
				if i+1 < nx {
					d.Throats = append(d.Throats, Throat{Conn: [2]int{p, idx(i+1, j, k)}, Len: spacing})
				}
				if j+1 < ny {
					d.Throats = append(d.Throats, Throat{Conn: [2]int{p, idx(i, j+1, k)}, Len: spacing})
				}
				if k+1 < nz {
					d.Throats = append(d.Throats, Throat{Conn: [2]int{p, idx(i, j, k+1)}, Len: spacing})
				}
			}
		}
	}
	return
}

// SetBoundary flags the pores carrying the inlet labels as inlets and those carrying the
// outlet labels as outlets
func (o *Data) SetBoundary(inlets, outlets []string) (err error) {
	mark := func(keys []string, inlet bool) error {
		for _, key := range keys {
			set, ok := o.Labels[key]
			if !ok {
				return fmt.Errorf("%w: label %q does not exist", ErrInvalidNetwork, key)
			}
			for _, p := range set {
				if p < 0 || p >= len(o.Pores) {
					return fmt.Errorf("%w: label %q references pore %d", ErrInvalidNetwork, key, p)
				}
				if inlet {
					o.Pores[p].Inlet = true
				} else {
					o.Pores[p].Outlet = true
				}
			}
		}
		return nil
	}
	if err = mark(inlets, true); err != nil {
		return
	}
	return mark(outlets, false)
}
