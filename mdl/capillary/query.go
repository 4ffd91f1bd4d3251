// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package capillary

import "github.com/cpmech/gosl/chk"

// Mode defines the kind of meniscus query
type Mode int

const (
	ModeMax   Mode = iota // burst configuration
	ModeTouch             // configuration touching a given protrusion
	ModeMen               // configuration at a given pressure
)

// String returns the name of mode
func (o Mode) String() string {
	switch o {
	case ModeMax:
		return "max"
	case ModeTouch:
		return "touch"
	case ModeMen:
		return "men"
	}
	return "unknown"
}

// ParseMode returns the mode corresponding to a name
func ParseMode(name string) (mode Mode, err error) {
	switch name {
	case "max":
		return ModeMax, nil
	case "touch":
		return ModeTouch, nil
	case "men":
		return ModeMen, nil
	}
	return 0, chk.Err("capillary: mode %q is not available. options are \"max\", \"touch\" or \"men\"", name)
}

// Query defines a meniscus query; one of MaxQuery, TouchQuery or MenQuery
type Query interface {
	Mode() Mode
}

// MaxQuery requests the burst configuration
type MaxQuery struct{}

// TouchQuery requests the configuration whose apex reaches Length
type TouchQuery struct {
	Length float64
}

// MenQuery requests the configuration at pressure Pc
type MenQuery struct {
	Pc float64
}

func (MaxQuery) Mode() Mode   { return ModeMax }
func (TouchQuery) Mode() Mode { return ModeTouch }
func (MenQuery) Mode() Mode   { return ModeMen }

// Result holds the result of a meniscus query; one of *MaxResult, *TouchResult or *MenResult
type Result interface {
	Mode() Mode
	Pressure() float64
	FillingAngle() float64
}

// MaxResult holds the burst configuration
type MaxResult struct {
	Pc    float64 // maximum capillary pressure (signed)
	Alpha float64 // filling angle at maximum [rad]
}

// TouchResult holds the configuration touching a given protrusion
type TouchResult struct {
	Pc     float64 // capillary pressure at contact
	Alpha  float64 // filling angle at contact [rad]
	Length float64 // requested protrusion
}

// MenResult holds the full meniscus configuration at a given pressure
type MenResult struct {
	Pc     float64 // capillary pressure
	Alpha  float64 // filling angle [rad]
	Radius float64 // meniscus radius of curvature; infinite if flat
	Center float64 // axial position of the meniscus centre
	Arc    float64 // half-angle of the meniscus arc [rad]
	Apex   float64 // axial position of the meniscus apex
}

func (o *MaxResult) Mode() Mode   { return ModeMax }
func (o *TouchResult) Mode() Mode { return ModeTouch }
func (o *MenResult) Mode() Mode   { return ModeMen }

func (o *MaxResult) Pressure() float64   { return o.Pc }
func (o *TouchResult) Pressure() float64 { return o.Pc }
func (o *MenResult) Pressure() float64   { return o.Pc }

func (o *MaxResult) FillingAngle() float64   { return o.Alpha }
func (o *TouchResult) FillingAngle() float64 { return o.Alpha }
func (o *MenResult) FillingAngle() float64   { return o.Alpha }

// Solve runs a meniscus query on one throat
func Solve(mdl Meniscus, g *Geometry, q Query) (Result, error) {
	switch q := q.(type) {
	case MaxQuery:
		res, err := mdl.Max(g)
		if err != nil {
			return nil, err
		}
		return res, nil
	case TouchQuery:
		res, err := mdl.Touch(g, q.Length)
		if err != nil {
			return nil, err
		}
		return res, nil
	case MenQuery:
		res, err := mdl.Men(g, q.Pc)
		if err != nil {
			return nil, err
		}
		return res, nil
	}
	return nil, chk.Err("capillary: query %T is not supported", q)
}
