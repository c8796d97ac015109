// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fault

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"

	"github.com/fcdiass/damagezone/errs"
)

// Distribution defines the lateral distribution of the damage zone along a fault
//  Width maps the normalised position along the fault t ∈ [0,1] to the half-width of
//  the damage zone; results must be non-negative. Copy returns an independent copy: later
//  changes to the receiver must not affect the copy
type Distribution interface {
	Width(t float64) float64 // half-width @ t
	Name() string            // name of distribution; e.g. "uniform", "parabolic"
	Copy() Distribution      // deep copy
}

// Uniform implements a constant half-width
type Uniform struct {
	W float64 // half-width
}

// UniformZeroWidth is the default distribution: no damage zone
var UniformZeroWidth = Uniform{W: 0}

// NewUniform returns a new uniform distribution
func NewUniform(width float64) (*Uniform, error) {
	if width < 0 || math.IsNaN(width) || math.IsInf(width, 0) {
		return nil, errs.New(errs.ErrInvalidParameter, "distribution", "uniform width must be finite and non-negative; width=%g", width)
	}
	return &Uniform{width}, nil
}

// Width returns the half-width
func (o Uniform) Width(t float64) float64 { return o.W }

// Name returns "uniform"
func (o Uniform) Name() string { return "uniform" }

// Copy returns a new *Uniform
func (o Uniform) Copy() Distribution { return &Uniform{o.W} }

// Parabolic implements a distribution that peaks at the fault midpoint and tapers to zero at
// both tips
//
//   width(t) = MaxWidth・4・t・(1 - t)
//
type Parabolic struct {
	MaxWidth float64 // half-width @ midpoint
}

// NewParabolic returns a new parabolic distribution
func NewParabolic(maxWidth float64) (*Parabolic, error) {
	if maxWidth < 0 || math.IsNaN(maxWidth) || math.IsInf(maxWidth, 0) {
		return nil, errs.New(errs.ErrInvalidParameter, "distribution", "parabolic max width must be finite and non-negative; maxWidth=%g", maxWidth)
	}
	return &Parabolic{maxWidth}, nil
}

// Width returns the half-width
func (o Parabolic) Width(t float64) float64 { return o.MaxWidth * 4.0 * t * (1.0 - t) }

// Name returns "parabolic"
func (o Parabolic) Name() string { return "parabolic" }

// Copy returns a new *Parabolic
func (o Parabolic) Copy() Distribution { return &Parabolic{o.MaxWidth} }

// Func adapts a function from the functions database. The position t is passed as the time
// argument; the space argument is nil
type Func struct {
	Type string     // type of function; e.g. "cte", "lin", "pts"
	Prms dbf.Params // parameters
	Fcn  dbf.T      // the function
}

// NewFunc allocates a function from the database and wraps it as a distribution. The
// parameters are copied
func NewFunc(typ string, prms dbf.Params) (*Func, error) {
	prms = cloneParams(prms)
	fcn, err := allocFunc(typ, prms)
	if err != nil {
		return nil, err
	}
	return &Func{typ, prms, fcn}, nil
}

// Width returns the half-width
func (o Func) Width(t float64) float64 { return o.Fcn.F(t, nil) }

// Name returns the type of function
func (o Func) Name() string { return "func:" + o.Type }

// Copy returns a new *Func with its own parameters and function
func (o Func) Copy() Distribution {
	prms := cloneParams(o.Prms)
	fcn, err := allocFunc(o.Type, prms)
	if err != nil {
		return &Func{o.Type, prms, o.Fcn}
	}
	return &Func{o.Type, prms, fcn}
}

// allocFunc calls dbf.New, which panics on unknown names or parameters
func allocFunc(typ string, prms dbf.Params) (fcn dbf.T, err error) {
	defer func() {
		if r := recover(); r != nil {
			fcn = nil
			err = errs.New(errs.ErrInvalidParameter, "distribution", "cannot allocate function %q: %s", typ, strings.TrimSpace(io.Sf("%v", r)))
		}
	}()
	fcn = dbf.New(typ, prms)
	return
}

// cloneParams returns new parameters with the same names and values
func cloneParams(prms dbf.Params) (res dbf.Params) {
	for _, p := range prms {
		if p != nil {
			res = append(res, &dbf.P{N: p.N, V: p.V})
		}
	}
	return
}

// CheckDistribution samples the distribution at npts points in [0,1] and checks that all widths
// are finite and non-negative
func CheckDistribution(dist Distribution, npts int) error {
	if dist == nil {
		return errs.New(errs.ErrInvalidParameter, "distribution", "distribution must not be nil")
	}
	if npts < 2 {
		npts = 2
	}
	for _, t := range utl.LinSpace(0, 1, npts) {
		w := dist.Width(t)
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return errs.New(errs.ErrInvalidParameter, "distribution", "%s width is not finite at t=%g", dist.Name(), t)
		}
		if w < 0 {
			return errs.New(errs.ErrInvalidParameter, "distribution", "%s width must be non-negative; width(%g)=%g", dist.Name(), t, w)
		}
	}
	return nil
}
