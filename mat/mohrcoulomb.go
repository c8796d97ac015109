// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mat

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"

	"github.com/fcdiass/damagezone/errs"
)

// MohrCoulomb implements the linear-elastic / Mohr-Coulomb perfectly plastic law
//  Angles are given in degrees
type MohrCoulomb struct {
	e   float64 // Young's modulus
	ν   float64 // Poisson's coefficient
	φ   float64 // friction angle
	ψ   float64 // dilation angle
	c   float64 // cohesion
	k   float64 // bulk modulus
	g   float64 // shear modulus
	ten float64 // tensile cutoff c/tan(φ) (Inf if φ == 0)
}

// add model to factory
func init() {
	allocators["mc"] = allocMohrCoulomb
	allocators["mohr-coulomb"] = allocMohrCoulomb
}

// NewMohrCoulomb returns a new Mohr-Coulomb law
//  E   -- Young's modulus (> 0)
//  nu  -- Poisson's coefficient in (0, 0.5)
//  phi -- friction angle in [0°, 90°)
//  psi -- dilation angle in [0°, 90°)
//  c   -- cohesion (≥ 0)
func NewMohrCoulomb(E, nu, phi, psi, c float64) (*MohrCoulomb, error) {
	entity := "mohr-coulomb"
	if err := checkElastic(entity, E, nu); err != nil {
		return nil, err
	}
	if err := checkAngle(entity, "friction angle", phi); err != nil {
		return nil, err
	}
	if err := checkAngle(entity, "dilation angle", psi); err != nil {
		return nil, err
	}
	if !(c >= 0) || math.IsInf(c, 0) {
		return nil, errs.New(errs.ErrInvalidParameter, entity, "cohesion must be non-negative; c=%g", c)
	}
	o := &MohrCoulomb{e: E, ν: nu, φ: phi, ψ: psi, c: c}
	o.k, o.g = elasticModuli(E, nu)
	o.ten = math.Inf(1)
	if phi > 0 {
		o.ten = c / math.Tan(phi*math.Pi/180.0)
	}
	return o, nil
}

// Name returns "mc"
func (o *MohrCoulomb) Name() string { return "mc" }

// Young returns E
func (o *MohrCoulomb) Young() float64 { return o.e }

// Poisson returns ν
func (o *MohrCoulomb) Poisson() float64 { return o.ν }

// Bulk returns K
func (o *MohrCoulomb) Bulk() float64 { return o.k }

// Shear returns G
func (o *MohrCoulomb) Shear() float64 { return o.g }

// Phi returns the friction angle in degrees
func (o *MohrCoulomb) Phi() float64 { return o.φ }

// Psi returns the dilation angle in degrees
func (o *MohrCoulomb) Psi() float64 { return o.ψ }

// Cohesion returns c
func (o *MohrCoulomb) Cohesion() float64 { return o.c }

// TensileCutoff returns the isotropic tensile strength c/tan(φ)
func (o *MohrCoulomb) TensileCutoff() float64 { return o.ten }

// Params returns the parameters
func (o *MohrCoulomb) Params() dbf.Params {
	return dbf.Params{
		&dbf.P{N: "E", V: o.e},
		&dbf.P{N: "nu", V: o.ν},
		&dbf.P{N: "phi", V: o.φ},
		&dbf.P{N: "psi", V: o.ψ},
		&dbf.P{N: "c", V: o.c},
	}
}

// YieldFunc computes the Mohr-Coulomb yield function for principal stresses σ1 ≥ σ3
// (compression positive). Negative values are inside the elastic region
//
//   f = (σ1 - σ3) - (σ1 + σ3)・sin(φ) - 2・c・cos(φ)
//
func (o *MohrCoulomb) YieldFunc(σ1, σ3 float64) float64 {
	if σ3 > σ1 {
		σ1, σ3 = σ3, σ1
	}
	φr := o.φ * math.Pi / 180.0
	return (σ1 - σ3) - (σ1+σ3)*math.Sin(φr) - 2.0*o.c*math.Cos(φr)
}

// DruckerPrager computes M=q/p and qy0 from c and φ corresponding to the strength that would
// be modelled by a Drucker-Prager cone matching the Mohr-Coulomb envelope:
//  typ == 0 : compression cone (outer)
//      == 1 : extension cone (inner)
//      == 2 : plane-strain
func (o *MohrCoulomb) DruckerPrager(typ int) (M, qy0 float64, err error) {
	φr := o.φ * math.Pi / 180.0
	si := math.Sin(φr)
	co := math.Cos(φr)
	var ξ float64
	switch typ {
	case 0: // compression cone (outer)
		M = 6.0 * si / (3.0 - si)
		ξ = 6.0 * co / (3.0 - si)
	case 1: // extension cone (inner)
		M = 6.0 * si / (3.0 + si)
		ξ = 6.0 * co / (3.0 + si)
	case 2: // plane-strain
		t := si / co
		d := math.Sqrt(3.0 + 4.0*t*t)
		M = 3.0 * t / d
		ξ = 3.0 / d
	default:
		return 0, 0, chk.Err("typ=%d is invalid", typ)
	}
	qy0 = ξ * o.c
	return
}

// String returns a JSON representation of MohrCoulomb
func (o *MohrCoulomb) String() string {
	return io.Sf("{\"model\":\"mc\", \"E\":%g, \"nu\":%g, \"phi\":%g, \"psi\":%g, \"c\":%g}", o.e, o.ν, o.φ, o.ψ, o.c)
}

func (o *MohrCoulomb) law() {}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

func allocMohrCoulomb(prms dbf.Params, curves Curves) (Law, error) {
	var E, ν, φ, ψ, c float64
	for _, p := range prms {
		switch p.N {
		case "E":
			E = p.V
		case "nu":
			ν = p.V
		case "phi":
			φ = p.V
		case "psi":
			ψ = p.V
		case "c":
			c = p.V
		default:
			return nil, unknownParam("mc", p.N)
		}
	}
	if len(curves) > 0 {
		return nil, unknownParam("mc", "curves")
	}
	m, err := NewMohrCoulomb(E, ν, φ, ψ, c)
	if err != nil {
		return nil, err
	}
	return m, nil
}
