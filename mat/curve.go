// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mat

import (
	"math"

	"github.com/cpmech/gosl/io"

	"github.com/fcdiass/damagezone/errs"
)

// CurvePoint holds one (stress-like, strain-like) pair of a tabulated curve
type CurvePoint struct {
	X float64 `json:"x" yaml:"x" toml:"x"` // stress-like coordinate
	Y float64 `json:"y" yaml:"y" toml:"y"` // strain-like coordinate
}

// Curve holds a tabulated hardening or softening curve
//  Rule: the curve is non-empty; all X share the same sign and |X| is strictly increasing:
//   X > 0  =>  X strictly increasing; e.g. 1, 2, 4
//   X < 0  =>  X strictly decreasing; e.g. -1, -2, -4 (tension curves such as "pt")
type Curve []CurvePoint

// NewCurve returns a curve from pairs [npts][2] after checking it
func NewCurve(entity string, pairs [][2]float64) (Curve, error) {
	c := make(Curve, len(pairs))
	for i, p := range pairs {
		c[i] = CurvePoint{p[0], p[1]}
	}
	if err := c.Check(entity); err != nil {
		return nil, err
	}
	return c, nil
}

// Check checks the curve
func (o Curve) Check(entity string) error {
	if len(o) == 0 {
		return errs.New(errs.ErrInvalidParameter, entity, "curve must not be empty")
	}
	sign := o.sign()
	for i, p := range o {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
			return errs.New(errs.ErrInvalidParameter, entity, "point %d is not finite: (%g, %g)", i, p.X, p.Y)
		}
		if p.X*sign < 0 {
			return errs.New(errs.ErrInvalidParameter, entity, "point %d changes the sign of the first coordinate: x=%g", i, p.X)
		}
		if i == 0 {
			continue
		}
		if math.Abs(p.X) <= math.Abs(o[i-1].X) {
			return errs.New(errs.ErrInvalidParameter, entity, "first coordinate must be strictly monotonic; x[%d]=%g, x[%d]=%g", i-1, o[i-1].X, i, p.X)
		}
	}
	return nil
}

// First returns the first point; e.g. initial yield stress of hardening curves
func (o Curve) First() CurvePoint { return o[0] }

// Peak returns the point with largest |X|
func (o Curve) Peak() CurvePoint { return o[len(o)-1] }

// Xs returns the first coordinates
func (o Curve) Xs() []float64 {
	res := make([]float64, len(o))
	for i, p := range o {
		res[i] = p.X
	}
	return res
}

// Ys returns the second coordinates
func (o Curve) Ys() []float64 {
	res := make([]float64, len(o))
	for i, p := range o {
		res[i] = p.Y
	}
	return res
}

// Copy returns a copy of the curve
func (o Curve) Copy() Curve {
	if o == nil {
		return nil
	}
	res := make(Curve, len(o))
	copy(res, o)
	return res
}

// String returns a JSON representation of Curve
func (o Curve) String() string {
	l := "["
	for i, p := range o {
		if i > 0 {
			l += ", "
		}
		l += io.Sf("[%g, %g]", p.X, p.Y)
	}
	return l + "]"
}

// sign returns the sign of the first non-zero X; +1 if all X are zero
func (o Curve) sign() float64 {
	for _, p := range o {
		if p.X < 0 {
			return -1
		}
		if p.X > 0 {
			return 1
		}
	}
	return 1
}
