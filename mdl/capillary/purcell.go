// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package capillary

import (
	"fmt"
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/num"
	"github.com/cpmech/gosl/utl"
)

// Purcell implements the toroidal throat model of Purcell [1] and Mason-Morrow [2]:
//   pc(α) = -2σ・cos(θ - α) / (r + R・(1 - cos α))    with   -π/2 ≤ α ≤ π/2
//  where α is the filling angle, r the throat radius and R the curvature radius of the solid.
//  For a filling angle α:
//   y   = r + R・(1 - cos α)   wall radius at the contact line
//   x   = R・sin α             axial position of the contact line (throat mid-plane at x=0)
//   φ   = θ - α - π/2          half-angle of the meniscus arc
//   rm  = 2σ / pc             meniscus radius of curvature
//   xc  = x - rm・cos φ        axial position of the meniscus centre
//   xa  = x + y・tan(φ/2)      axial position of the meniscus apex (protrusion)
type Purcell struct {

	// parameters
	Rtor float64 // default curvature radius used when a throat has none
	Npts int     // number of stations along α used to bracket extrema and roots
}

// add model to factory
func init() {
	allocators["purcell"] = func() Model { return new(Purcell) }
}

// Init initialises model
func (o *Purcell) Init(prms dbf.Params) (err error) {
	o.Rtor, o.Npts = 5e-6, 1000
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "rtor":
			o.Rtor = p.V
		case "npts":
			o.Npts = int(p.V)
		default:
			return chk.Err("purcell: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.Npts < 3 {
		return chk.Err("purcell: number of stations must be at least 3; npts=%d is incorrect\n", o.Npts)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Purcell) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "rtor", V: 5e-6},
			&dbf.P{N: "npts", V: 1000},
		}
	}
	return dbf.Params{
		&dbf.P{N: "rtor", V: o.Rtor},
		&dbf.P{N: "npts", V: float64(o.Npts)},
	}
}

// Entry computes the entry pressure; i.e. the burst pressure from Max
func (o Purcell) Entry(g *Geometry) (pc float64, err error) {
	res, err := o.Max(g)
	if err != nil {
		return 0, err
	}
	return res.Pc, nil
}

// Pc computes the capillary pressure corresponding to a filling angle α [rad]
func (o Purcell) Pc(g *Geometry, α float64) (pc float64, err error) {
	t, err := o.torus(g)
	if err != nil {
		return
	}
	return t.pc(α), nil
}

// Max finds the filling angle with the largest |pc| along the throat; i.e. the burst configuration
//  Note: the largest |pc| closest to the throat entrance (smallest α) is selected for ties
func (o Purcell) Max(g *Geometry) (res *MaxResult, err error) {
	t, err := o.torus(g)
	if err != nil {
		return
	}
	A := o.stations()
	imax, best := 0, -1.0
	for i, α := range A {
		v := math.Abs(t.pc(α))
		if v > best*(1.0+1e-12) {
			imax, best = i, v
		}
	}
	αmax := A[imax]
	lo, hi := A[imax], A[imax]
	if imax > 0 {
		lo = A[imax-1]
	}
	if imax < len(A)-1 {
		hi = A[imax+1]
	}
	sol := num.NewBrent(func(α float64) float64 { return -math.Abs(t.pc(α)) }, nil)
	αref := sol.Min(lo, hi)
	if math.Abs(t.pc(αref)) > best {
		αmax = αref
	}
	return &MaxResult{Pc: t.pc(αmax), Alpha: αmax}, nil
}

// Touch finds the first configuration of an advancing meniscus whose apex reaches the given
// axial position (measured from the throat mid-plane)
//  Note: only configurations up to the burst angle are considered; the entrance itself counts
func (o Purcell) Touch(g *Geometry, length float64) (res *TouchResult, err error) {
	t, err := o.torus(g)
	if err != nil {
		return
	}
	burst, err := o.Max(g)
	if err != nil {
		return
	}
	A := o.branch(burst.Alpha)
	f := func(α float64) float64 { return (t.apex(α) - length) / t.r }
	for i, α := range A {
		fb := f(α)
		if fb < 0 {
			continue
		}
		if i > 0 && fb > 0 {
			α = refine(f, A[i-1], α, f(A[i-1]), fb)
		}
		return &TouchResult{Pc: t.pc(α), Alpha: α, Length: length}, nil
	}
	return nil, fmt.Errorf("%w: meniscus apex does not reach length %g before burst at α=%g",
		ErrNoSolution, length, burst.Alpha)
}

// Bulge returns the largest axial position reached by the meniscus apex along the throat
func (o Purcell) Bulge(g *Geometry) (xa float64, err error) {
	t, err := o.torus(g)
	if err != nil {
		return
	}
	xa = math.Inf(-1)
	for _, α := range o.stations() {
		xa = utl.Max(xa, t.apex(α))
	}
	return
}

// Men finds the meniscus configuration at a target capillary pressure
//  Note: the root with the smallest filling angle up to the burst angle is selected; i.e. the
//        configuration reached by an advancing (drainage) meniscus
func (o Purcell) Men(g *Geometry, pc float64) (res *MenResult, err error) {
	t, err := o.torus(g)
	if err != nil {
		return
	}
	burst, err := o.Max(g)
	if err != nil {
		return
	}
	if math.Abs(pc) > math.Abs(burst.Pc) {
		return nil, fmt.Errorf("%w: target pressure %g exceeds burst pressure %g", ErrNoSolution, pc, burst.Pc)
	}
	scale := math.Abs(burst.Pc)
	α, found := o.firstRoot(burst.Alpha, func(α float64) float64 { return (t.pc(α) - pc) / scale })
	if !found {
		return nil, fmt.Errorf("%w: target pressure %g is not reached before burst at α=%g",
			ErrNoSolution, pc, burst.Alpha)
	}
	res = &MenResult{Pc: pc, Alpha: α}
	x, y := t.R*math.Sin(α), t.wall(α)
	res.Arc = t.arc(α)
	res.Apex = x + y*math.Tan(res.Arc/2.0)
	if pc == 0 {
		res.Radius = math.Inf(1)
		res.Center = math.Inf(-1)
		return
	}
	res.Radius = 2.0 * t.σ / pc
	res.Center = x - res.Radius*math.Cos(res.Arc)
	return
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

// stations returns Npts filling angles spanning the admissible range
func (o Purcell) stations() []float64 {
	n := o.Npts
	if n < 3 {
		n = 1000
	}
	return utl.LinSpace(-math.Pi/2.0, math.Pi/2.0, n)
}

// branch returns the stations from the throat entrance up to (and including) αmax
func (o Purcell) branch(αmax float64) (A []float64) {
	for _, α := range o.stations() {
		if α >= αmax {
			break
		}
		A = append(A, α)
	}
	return append(A, αmax)
}

// firstRoot returns the smallest α ≤ αmax with f(α) = 0 by scanning stations and refining with
// Brent's method
func (o Purcell) firstRoot(αmax float64, f func(α float64) float64) (α float64, found bool) {
	A := o.branch(αmax)
	fa := f(A[0])
	if fa == 0 {
		return A[0], true
	}
	for i := 1; i < len(A); i++ {
		fb := f(A[i])
		if fb == 0 {
			return A[i], true
		}
		if fa*fb < 0 {
			return refine(f, A[i-1], A[i], fa, fb), true
		}
		fa = fb
	}
	return 0, false
}

// refine returns the root of f bracketed by [a, b] with f(a)・f(b) < 0
//  Note: the closest end is returned when the bracket is too tight for Brent's method
func refine(f func(α float64) float64, a, b, fa, fb float64) float64 {
	if fa*fb > -1e-15 {
		if math.Abs(fa) < math.Abs(fb) {
			return a
		}
		return b
	}
	sol := num.NewBrent(f, nil)
	return sol.Root(a, b)
}

// torus holds the resolved geometry of one throat
type torus struct {
	r, R, θ, σ float64
}

// torus resolves and checks throat geometry
func (o Purcell) torus(g *Geometry) (t torus, err error) {
	if err = g.Check(); err != nil {
		return
	}
	t = torus{r: g.R, R: g.Rcurv, θ: g.Theta * math.Pi / 180.0, σ: g.Sigma}
	if math.IsNaN(t.R) {
		t.R = o.Rtor
	}
	if !(t.R > 0) {
		err = fmt.Errorf("%w: curvature radius must be positive; R=%g", ErrInvalidGeometry, t.R)
	}
	return
}

func (t torus) wall(α float64) float64 { return t.r + t.R*(1.0-math.Cos(α)) }
func (t torus) pc(α float64) float64   { return -2.0 * t.σ * math.Cos(t.θ-α) / t.wall(α) }
func (t torus) arc(α float64) float64  { return t.θ - α - math.Pi/2.0 }
func (t torus) apex(α float64) float64 { return t.R*math.Sin(α) + t.wall(α)*math.Tan(t.arc(α)/2.0) }
