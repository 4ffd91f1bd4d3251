// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package capillary implements models for the capillary entry pressure of throats
//  References:
//   [1] Purcell WR (1949) Capillary pressures - their measurement using mercury and the
//       calculation of permeability therefrom. Trans AIME 186, 39-48
//   [2] Mason G and Morrow NR (1994) Effect of contact angle on capillary displacement
//       curvatures in pore throats formed by spheres. J Colloid Interface Sci 168, 130-141
//   [3] Washburn EW (1921) The dynamics of capillary flow. Phys Rev 17, 273-283
package capillary

import (
	"errors"
	"fmt"
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

var (
	// ErrInvalidGeometry indicates non-physical radius, tension or angle inputs
	ErrInvalidGeometry = errors.New("capillary: invalid geometry")

	// ErrNoSolution indicates that a requested configuration is not admissible for a throat
	ErrNoSolution = errors.New("capillary: no admissible solution")
)

// Geometry holds the data of one throat needed by capillary models
type Geometry struct {
	R     float64 // throat (channel) radius
	Rcurv float64 // curvature radius of the bounding solid; NaN means model default
	Theta float64 // contact angle [deg]
	Sigma float64 // interfacial tension
	Touch float64 // touch length for touch-limited entry pressures; 0 means none
}

// Check checks whether geometry is physically admissible
func (o Geometry) Check() error {
	if o.R <= 0 {
		return fmt.Errorf("%w: throat radius must be positive; r=%g", ErrInvalidGeometry, o.R)
	}
	if o.Rcurv < 0 {
		return fmt.Errorf("%w: curvature radius must not be negative; R=%g", ErrInvalidGeometry, o.Rcurv)
	}
	if o.Sigma <= 0 {
		return fmt.Errorf("%w: interfacial tension must be positive; σ=%g", ErrInvalidGeometry, o.Sigma)
	}
	if !(o.Theta >= 0 && o.Theta <= 180) {
		return fmt.Errorf("%w: contact angle must be in [0, 180]; θ=%g", ErrInvalidGeometry, o.Theta)
	}
	if o.Touch < 0 {
		return fmt.Errorf("%w: touch length must not be negative; L=%g", ErrInvalidGeometry, o.Touch)
	}
	return nil
}

// Model implements a capillary entry pressure model
//  Note: models must be safe for concurrent use after Init
type Model interface {
	Init(prms dbf.Params) error                // initialises model
	GetPrms(example bool) dbf.Params           // gets (an example) of parameters
	Entry(g *Geometry) (pc float64, err error) // computes the entry (burst) pressure of a throat
}

// Meniscus is implemented by models that resolve the interface configuration inside the throat
type Meniscus interface {
	Model
	Max(g *Geometry) (*MaxResult, error)                     // burst configuration
	Touch(g *Geometry, length float64) (*TouchResult, error) // configuration touching at given protrusion
	Men(g *Geometry, pc float64) (*MenResult, error)         // configuration at given pressure
}

// New returns new capillary model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'capillary' database", name)
	}
	return allocator(), nil
}

// allocators holds all available models
var allocators = map[string]func() Model{}

// TouchLimited computes entry pressures as the smallest (in magnitude) of the burst pressure
// and the pressure at which the meniscus apex touches at Geometry.Touch
//  Note: throats that never touch keep the burst pressure
type TouchLimited struct {
	Meniscus
}

// Entry computes the touch-limited entry pressure
func (o TouchLimited) Entry(g *Geometry) (pc float64, err error) {
	res, err := o.Max(g)
	if err != nil {
		return 0, err
	}
	pc = res.Pc
	if g.Touch > 0 {
		tr, e := o.Touch(g, g.Touch)
		if e == nil && math.Abs(tr.Pc) < math.Abs(pc) {
			pc = tr.Pc
		}
	}
	return
}
