// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mat

import (
	"math"

	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"

	"github.com/fcdiass/damagezone/errs"
)

// HardeningData holds the parameters of the nonlinear hardening plasticity law (soft rock)
type HardeningData struct {
	E         float64 `json:"E" yaml:"E" toml:"E"`                         // Young's modulus
	Nu        float64 `json:"nu" yaml:"nu" toml:"nu"`                      // Poisson's coefficient
	Beta      float64 `json:"beta" yaml:"beta" toml:"beta"`                // friction-like angle of the yield surface [deg]
	Psi       float64 `json:"psi" yaml:"psi" toml:"psi"`                   // dilation-like angle of the plastic potential [deg]
	Ny        float64 `json:"Ny" yaml:"Ny" toml:"Ny"`                      // shape exponent of the yield surface
	F0        float64 `json:"f0" yaml:"f0" toml:"f0"`                      // shape coefficient
	F1        float64 `json:"f1" yaml:"f1" toml:"f1"`                      // shape coefficient
	Alpha     float64 `json:"alpha" yaml:"alpha" toml:"alpha"`             // shape coefficient of the plastic potential
	EpsPlVol0 float64 `json:"epsPlVol0" yaml:"epsPlVol0" toml:"epsPlVol0"` // initial plastic volumetric strain
	Pc        Curve   `json:"pc" yaml:"pc" toml:"pc"`                      // hardening curve: (pc, εpv)
	Pt        Curve   `json:"pt" yaml:"pt" toml:"pt"`                      // softening curve: (pt, εpv)
	E0        float64 `json:"e0" yaml:"e0" toml:"e0"`                      // initial void-ratio-like state variable
}

// Hardening implements the nonlinear hardening/softening plasticity law with tabulated curves
//  The first point of Pc anchors the initial yield stress; the first point of Pt anchors the
//  post-peak transition. The evaluation of the law itself belongs to the solver.
type Hardening struct {
	d HardeningData
	k float64 // bulk modulus
	g float64 // shear modulus
}

// add model to factory
func init() {
	allocators["hardening"] = allocHardening
	allocators["srp"] = allocHardening
}

// NewHardening returns a new hardening plasticity law. The curves are copied
func NewHardening(d HardeningData) (*Hardening, error) {
	entity := "hardening"
	if err := checkElastic(entity, d.E, d.Nu); err != nil {
		return nil, err
	}
	if err := checkAngle(entity, "beta", d.Beta); err != nil {
		return nil, err
	}
	if err := checkAngle(entity, "psi", d.Psi); err != nil {
		return nil, err
	}
	if !(d.Ny > 0) || math.IsInf(d.Ny, 0) {
		return nil, errs.New(errs.ErrInvalidParameter, entity, "Ny must be positive; Ny=%g", d.Ny)
	}
	if !(d.E0 >= 0) || math.IsInf(d.E0, 0) {
		return nil, errs.New(errs.ErrInvalidParameter, entity, "e0 must be non-negative; e0=%g", d.E0)
	}
	for _, v := range []float64{d.F0, d.F1, d.Alpha, d.EpsPlVol0} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, errs.New(errs.ErrInvalidParameter, entity, "f0, f1, alpha and epsPlVol0 must be finite")
		}
	}
	if err := d.Pc.Check(entity + ": hardening curve"); err != nil {
		return nil, err
	}
	if err := d.Pt.Check(entity + ": softening curve"); err != nil {
		return nil, err
	}
	o := &Hardening{d: d}
	o.d.Pc = d.Pc.Copy()
	o.d.Pt = d.Pt.Copy()
	o.k, o.g = elasticModuli(d.E, d.Nu)
	return o, nil
}

// Name returns "hardening"
func (o *Hardening) Name() string { return "hardening" }

// Young returns E
func (o *Hardening) Young() float64 { return o.d.E }

// Poisson returns ν
func (o *Hardening) Poisson() float64 { return o.d.Nu }

// Bulk returns K
func (o *Hardening) Bulk() float64 { return o.k }

// Shear returns G
func (o *Hardening) Shear() float64 { return o.g }

// Data returns a copy of the parameters
func (o *Hardening) Data() HardeningData {
	d := o.d
	d.Pc = o.d.Pc.Copy()
	d.Pt = o.d.Pt.Copy()
	return d
}

// HardeningCurve returns a copy of the hardening curve
func (o *Hardening) HardeningCurve() Curve { return o.d.Pc.Copy() }

// SofteningCurve returns a copy of the softening curve
func (o *Hardening) SofteningCurve() Curve { return o.d.Pt.Copy() }

// YieldStress returns the initial yield (preconsolidation) stress: first X of the hardening curve
func (o *Hardening) YieldStress() float64 { return o.d.Pc.First().X }

// TransitionStress returns the post-peak transition stress: first X of the softening curve
func (o *Hardening) TransitionStress() float64 { return o.d.Pt.First().X }

// Params returns the scalar parameters
func (o *Hardening) Params() dbf.Params {
	return dbf.Params{
		&dbf.P{N: "E", V: o.d.E},
		&dbf.P{N: "nu", V: o.d.Nu},
		&dbf.P{N: "beta", V: o.d.Beta},
		&dbf.P{N: "psi", V: o.d.Psi},
		&dbf.P{N: "Ny", V: o.d.Ny},
		&dbf.P{N: "f0", V: o.d.F0},
		&dbf.P{N: "f1", V: o.d.F1},
		&dbf.P{N: "alpha", V: o.d.Alpha},
		&dbf.P{N: "epsPlVol0", V: o.d.EpsPlVol0},
		&dbf.P{N: "e0", V: o.d.E0},
	}
}

// String returns a JSON representation of Hardening
func (o *Hardening) String() string {
	return io.Sf("{\"model\":\"hardening\", \"E\":%g, \"nu\":%g, \"beta\":%g, \"psi\":%g, \"Ny\":%g, \"f0\":%g, \"f1\":%g, \"alpha\":%g, \"epsPlVol0\":%g, \"e0\":%g, \"pc\":%v, \"pt\":%v}",
		o.d.E, o.d.Nu, o.d.Beta, o.d.Psi, o.d.Ny, o.d.F0, o.d.F1, o.d.Alpha, o.d.EpsPlVol0, o.d.E0, o.d.Pc, o.d.Pt)
}

func (o *Hardening) law() {}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

func allocHardening(prms dbf.Params, curves Curves) (Law, error) {
	var d HardeningData
	for _, p := range prms {
		switch p.N {
		case "E":
			d.E = p.V
		case "nu":
			d.Nu = p.V
		case "beta":
			d.Beta = p.V
		case "psi":
			d.Psi = p.V
		case "Ny":
			d.Ny = p.V
		case "f0":
			d.F0 = p.V
		case "f1":
			d.F1 = p.V
		case "alpha":
			d.Alpha = p.V
		case "epsPlVol0", "epsilon_pl_vol":
			d.EpsPlVol0 = p.V
		case "e0":
			d.E0 = p.V
		default:
			return nil, unknownParam("hardening", p.N)
		}
	}
	for name, c := range curves {
		switch name {
		case "pc", "hardening":
			d.Pc = c
		case "pt", "softening":
			d.Pt = c
		default:
			return nil, unknownParam("hardening", name)
		}
	}
	m, err := NewHardening(d)
	if err != nil {
		return nil, err
	}
	return m, nil
}
