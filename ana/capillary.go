// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements closed-form solutions for capillary entry and invasion
package ana

import "math"

// ToroidalThroat computes the burst configuration of a toroidal throat in closed form
//
//    pc(α) = -2σ・cos(θ - α) / (r + R・(1 - cos α))
//
//   dpc/dα = 0  ⇒  (r + R)・sin(θ - α) = R・sin θ
//
//    α*    = θ - π + asin(sin θ / (1 + r/R))
//
//  Note: α* lies in [-π/2, π/2] for non-wetting fluids (θ > 90°)
type ToroidalThroat struct {
	R     float64 // throat radius
	Rtor  float64 // curvature radius of the solid
	Theta float64 // contact angle [deg]
	Sigma float64 // interfacial tension
}

// Init initialises this structure
func (o *ToroidalThroat) Init(r, R, θdeg, σ float64) {
	o.R, o.Rtor, o.Theta, o.Sigma = r, R, θdeg, σ
}

// Pc computes the capillary pressure at filling angle α
func (o ToroidalThroat) Pc(α float64) float64 {
	θ := o.Theta * math.Pi / 180.0
	return -2.0 * o.Sigma * math.Cos(θ-α) / (o.R + o.Rtor*(1.0-math.Cos(α)))
}

// Burst computes the filling angle and pressure of the burst configuration
func (o ToroidalThroat) Burst() (α, pc float64) {
	θ := o.Theta * math.Pi / 180.0
	α = θ - math.Pi + math.Asin(math.Sin(θ)/(1.0+o.R/o.Rtor))
	return α, o.Pc(α)
}

// Washburn computes the entry pressure of a cylindrical tube with radius r
func Washburn(r, θdeg, σ float64) float64 {
	return -2.0 * σ * math.Cos(θdeg*math.Pi/180.0) / r
}

// TubeMeniscusRadius computes the radius of a spherical meniscus in a cylindrical tube
func TubeMeniscusRadius(r, θdeg float64) float64 {
	return r / math.Abs(math.Cos(θdeg*math.Pi/180.0))
}
