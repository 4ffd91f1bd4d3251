// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fluid implements the properties of the invading fluid phase
package fluid

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Model holds the interfacial properties of an invading fluid against the defending phase
//  The contact angle is the default value for all pores; pores may override it.
type Model struct {
	Name  string  // name of fluid; e.g. "mercury"
	Sigma float64 // interfacial (surface) tension [N/m]
	Theta float64 // default contact angle [deg]
}

// Init initialises this structure
func (o *Model) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "sigma", "surften":
			o.Sigma = p.V
		case "theta", "contact_angle":
			o.Theta = p.V
		default:
			return chk.Err("fluid: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.Sigma <= 0 {
		return chk.Err("fluid: surface tension must be positive; sigma=%g is incorrect\n", o.Sigma)
	}
	if o.Theta < 0 || o.Theta > 180 {
		return chk.Err("fluid: contact angle must be in [0, 180]; theta=%g is incorrect\n", o.Theta)
	}
	return
}

// GetPrms gets (an example of) parameters
//  Input:
//   example -- returns example of parameters; othewise returs current parameters
//  Note:
//   Name is used to select the example: "water" or "mercury" (default)
func (o Model) GetPrms(example bool) dbf.Params {
	if example {
		if o.Name == "water" {
			return dbf.Params{
				&dbf.P{N: "sigma", V: 0.072}, // [N/m]
				&dbf.P{N: "theta", V: 110},   // [deg] hydrophobic media
			}
		}
		return dbf.Params{ // mercury
			&dbf.P{N: "sigma", V: 0.48}, // [N/m]
			&dbf.P{N: "theta", V: 140},  // [deg]
		}
	}
	return dbf.Params{
		&dbf.P{N: "sigma", V: o.Sigma},
		&dbf.P{N: "theta", V: o.Theta},
	}
}

// ThroatTheta returns the contact angle of a throat from the angles of its two pores
//  NaN (unset) pore angles select the default angle; the throat angle is the average of its pores.
func (o Model) ThroatTheta(thetaA, thetaB float64) float64 {
	if math.IsNaN(thetaA) {
		thetaA = o.Theta
	}
	if math.IsNaN(thetaB) {
		thetaB = o.Theta
	}
	return (thetaA + thetaB) / 2.0
}
