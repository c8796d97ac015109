// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data of a damage-zone model read from JSON (.dzm), YAML or
// TOML files
package inp

import (
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"

	"github.com/fcdiass/damagezone/dzone"
	"github.com/fcdiass/damagezone/errs"
	"github.com/fcdiass/damagezone/fault"
	"github.com/fcdiass/damagezone/geo"
	"github.com/fcdiass/damagezone/inicond"
	"github.com/fcdiass/damagezone/layers"
	"github.com/fcdiass/damagezone/mat"
)

// PrmData holds one named parameter
type PrmData struct {
	N string  `json:"n" yaml:"n" toml:"n"` // name
	V float64 `json:"v" yaml:"v" toml:"v"` // value
}

// DistData holds the data of a damage-zone distribution
type DistData struct {
	Type  string     `json:"type" yaml:"type" toml:"type"`                               // "uniform", "parabolic" or a function type from dbf; e.g. "lin", "pts"
	Width float64    `json:"width" yaml:"width" toml:"width"`                            // half-width (uniform) or max half-width (parabolic)
	Prms  []*PrmData `json:"prms,omitempty" yaml:"prms,omitempty" toml:"prms,omitempty"` // parameters of function
}

// FaultData holds the data of the fault
//  Either Tips or (Length, Angle, Center) must be given
type FaultData struct {
	Length float64     `json:"length" yaml:"length" toml:"length"`                         // length
	Angle  float64     `json:"angle" yaml:"angle" toml:"angle"`                            // inclination
	Unit   string      `json:"unit" yaml:"unit" toml:"unit"`                               // unit of angle; "" => "deg"
	Center geo.Point   `json:"center" yaml:"center" toml:"center"`                         // center
	Tips   []geo.Point `json:"tips,omitempty" yaml:"tips,omitempty" toml:"tips,omitempty"` // the two tips
	Dist   *DistData   `json:"dist,omitempty" yaml:"dist,omitempty" toml:"dist,omitempty"` // distribution; nil => zero width
}

// MaterialData holds the data of one material
type MaterialData struct {
	Name   string               `json:"name" yaml:"name" toml:"name"`                                     // name of material
	Model  string               `json:"model" yaml:"model" toml:"model"`                                  // model name; e.g. "mc", "hardening"
	Prms   []*PrmData           `json:"prms" yaml:"prms" toml:"prms"`                                     // parameters
	Curves map[string]mat.Curve `json:"curves,omitempty" yaml:"curves,omitempty" toml:"curves,omitempty"` // tabulated curves; e.g. "pc", "pt"
}

// FixData holds the fixed degrees of freedom of one border
type FixData struct {
	Border int   `json:"border" yaml:"border" toml:"border"` // index of border
	Dofs   []int `json:"dofs" yaml:"dofs" toml:"dofs"`       // 1 => ux, 2 => uy
}

// LayersData holds the data of the stack of layers
type LayersData struct {
	Materials []string    `json:"materials" yaml:"materials" toml:"materials"`                      // names of materials (top to bottom)
	Divisions []int       `json:"divisions" yaml:"divisions" toml:"divisions"`                      // subdivisions of each layer
	Border    []geo.Point `json:"border,omitempty" yaml:"border,omitempty" toml:"border,omitempty"` // border; nil => default border
	FixAll    []int       `json:"fixall,omitempty" yaml:"fixall,omitempty" toml:"fixall,omitempty"` // dofs fixed on all borders
	Fix       []*FixData  `json:"fix,omitempty" yaml:"fix,omitempty" toml:"fix,omitempty"`          // dofs fixed on some borders
}

// StressData holds the data of the initial stress field
type StressData struct {
	Type      string    `json:"type" yaml:"type" toml:"type"`                                              // "constant" or "linear"
	Sv        float64   `json:"sv" yaml:"sv" toml:"sv"`                                                    // constant: vertical stress
	K0        float64   `json:"k0" yaml:"k0" toml:"k0"`                                                    // constant: lateral earth pressure coefficient
	Surface   float64   `json:"surface" yaml:"surface" toml:"surface"`                                     // linear: vertical stress at top
	Gradients []float64 `json:"gradients,omitempty" yaml:"gradients,omitempty" toml:"gradients,omitempty"` // linear: gradient of each layer
	K0s       []float64 `json:"k0s,omitempty" yaml:"k0s,omitempty" toml:"k0s,omitempty"`                   // linear: K0 of each layer; -1 => ν/(1-ν)
	Verify    *bool     `json:"verify,omitempty" yaml:"verify,omitempty" toml:"verify,omitempty"`          // check compatibility; nil => true
	Tol       float64   `json:"tol" yaml:"tol" toml:"tol"`                                                 // tolerance of default policy
}

// OutputData holds the data for mesh generation and export
type OutputData struct {
	Dir        string    `json:"dir" yaml:"dir" toml:"dir"`                                                    // output directory
	Enc        string    `json:"enc" yaml:"enc" toml:"enc"`                                                    // encoding type; "" => "json"
	Key        string    `json:"key" yaml:"key" toml:"key"`                                                    // filename key; "" => key of input file
	Recombine  bool      `json:"recombine" yaml:"recombine" toml:"recombine"`                                  // recombine triangles into quadrilaterals
	Npts       int       `json:"npts" yaml:"npts" toml:"npts"`                                                 // points along envelopes; 0 => default
	TimePoints []float64 `json:"timepoints,omitempty" yaml:"timepoints,omitempty" toml:"timepoints,omitempty"` // nil => default stepping
}

// Model holds all input data of a damage-zone model
type Model struct {

	// input data
	Desc      string          `json:"desc" yaml:"desc" toml:"desc"`                // description of model
	Debug     bool            `json:"debug" yaml:"debug" toml:"debug"`             // debug flag for collaborators
	Border    []geo.Point     `json:"border" yaml:"border" toml:"border"`          // default border
	Fault     *FaultData      `json:"fault" yaml:"fault" toml:"fault"`             // fault; nil => no fault
	Materials []*MaterialData `json:"materials" yaml:"materials" toml:"materials"` // materials database
	Layers    *LayersData     `json:"layers" yaml:"layers" toml:"layers"`          // layers
	Stress    *StressData     `json:"stress" yaml:"stress" toml:"stress"`          // initial stresses
	Output    OutputData      `json:"output" yaml:"output" toml:"output"`          // output

	// derived
	Key string `json:"-" yaml:"-" toml:"-"` // key of input file; e.g. "ex01" for "ex01.dzm"
}

// GetMaterial returns the material data by name; nil if not found
func (o *Model) GetMaterial(name string) *MaterialData {
	for _, m := range o.Materials {
		if m.Name == name {
			return m
		}
	}
	return nil
}

// Law allocates the law of one material
func (o *MaterialData) Law() (mat.Law, error) {
	return mat.New(o.Model, params(o.Prms), mat.Curves(o.Curves))
}

// Distribution allocates the distribution; nil data => nil (zero width)
func (o *DistData) Distribution() (fault.Distribution, error) {
	if o == nil {
		return nil, nil
	}
	switch o.Type {
	case "", "uniform":
		return fault.NewUniform(o.Width)
	case "parabolic":
		return fault.NewParabolic(o.Width)
	}
	return fault.NewFunc(o.Type, params(o.Prms))
}

// Descriptor returns the fault descriptor
func (o *FaultData) Descriptor() (*fault.Descriptor, error) {
	dist, err := o.Dist.Distribution()
	if err != nil {
		return nil, err
	}
	if len(o.Tips) > 0 {
		if len(o.Tips) != 2 {
			return nil, errs.New(errs.ErrInvalidGeometry, "fault", "two tips must be given; ntips=%d", len(o.Tips))
		}
		return fault.NewByPoints(o.Tips[0], o.Tips[1], dist)
	}
	unit := o.Unit
	if unit == "" {
		unit = geo.Deg
	}
	α, err := geo.NewAngle(o.Angle, unit)
	if err != nil {
		return nil, err
	}
	return fault.NewByLenAng(o.Length, α, o.Center, dist)
}

// Field returns the initial stress field
func (o *StressData) Field() (inicond.Field, error) {
	switch o.Type {
	case "constant":
		return inicond.NewConstant(o.Sv, o.K0)
	case "linear":
		return inicond.NewLinear(o.Surface, o.Gradients, o.K0s)
	}
	return nil, errs.New(errs.ErrInvalidStressProfile, "stress", "type %q is invalid; options are \"constant\" and \"linear\"", o.Type)
}

// VerifyCompatibility returns whether compatibility must be checked
func (o *StressData) VerifyCompatibility() bool {
	return o.Verify == nil || *o.Verify
}

// Apply replays the input data onto builder
//  Order: debug flag, default border, fault, layers, fixed dofs, stress
func (o *Model) Apply(b *dzone.Builder) (err error) {

	// global
	b.SetDebug(o.Debug)
	if len(o.Border) > 0 {
		if err = b.SetDefaultBorder(o.Border); err != nil {
			return
		}
	}

	// fault
	if o.Fault != nil {
		f, err := o.Fault.Descriptor()
		if err != nil {
			return err
		}
		if err = b.AddFault(f); err != nil {
			return err
		}
	}

	// layers
	if o.Layers != nil {
		laws := make([]mat.Law, len(o.Layers.Materials))
		for i, name := range o.Layers.Materials {
			m := o.GetMaterial(name)
			if m == nil {
				return errs.New(errs.ErrInvalidParameter, io.Sf("layer[%d]", i), "material %q is not in the materials database", name)
			}
			if laws[i], err = m.Law(); err != nil {
				return
			}
		}
		if err = b.SetLayers(laws, o.Layers.Divisions, o.Layers.Border); err != nil {
			return
		}
		if len(o.Layers.FixAll) > 0 {
			if err = b.FixAllDofs(dofs(o.Layers.FixAll)...); err != nil {
				return
			}
		}
		for _, fix := range o.Layers.Fix {
			if err = b.FixDofs(fix.Border, dofs(fix.Dofs)...); err != nil {
				return
			}
		}
	}

	// stress
	if o.Stress != nil {
		if o.Stress.Tol > 0 {
			b.SetPolicy(inicond.DefaultPolicy{Tol: o.Stress.Tol})
		}
		field, err := o.Stress.Field()
		if err != nil {
			return err
		}
		if err = b.SetStress(field, o.Stress.VerifyCompatibility()); err != nil {
			return err
		}
	}
	return
}

// Build applies the input data to a new builder and builds the specification
func (o *Model) Build() (*dzone.Specification, error) {
	b := dzone.NewBuilder()
	if err := o.Apply(b); err != nil {
		return nil, err
	}
	return b.Build()
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

func params(prms []*PrmData) (res dbf.Params) {
	for _, p := range prms {
		res = append(res, &dbf.P{N: p.N, V: p.V})
	}
	return
}

func dofs(vals []int) (res []layers.Dof) {
	for _, v := range vals {
		res = append(res, layers.Dof(v))
	}
	return
}
