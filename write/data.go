// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package write

import (
	"github.com/fcdiass/damagezone/dzone"
	"github.com/fcdiass/damagezone/inicond"
	"github.com/fcdiass/damagezone/mat"
)

// PointData holds coordinates
type PointData struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// FaultData holds the fault
type FaultData struct {
	Length       float64   `json:"length" yaml:"length"`
	Angle        float64   `json:"angle" yaml:"angle"` // in degrees
	Center       PointData `json:"center" yaml:"center"`
	Tip0         PointData `json:"tip0" yaml:"tip0"`
	Tip1         PointData `json:"tip1" yaml:"tip1"`
	Distribution string    `json:"distribution" yaml:"distribution"`
	Widths       []float64 `json:"widths" yaml:"widths"` // half-widths sampled at t = 0, 0.1, … 1
}

// ParamData holds one parameter
type ParamData struct {
	N string  `json:"n" yaml:"n"`
	V float64 `json:"v" yaml:"v"`
}

// MaterialData holds a material law
type MaterialData struct {
	Model  string               `json:"model" yaml:"model"`
	Prms   []ParamData          `json:"prms" yaml:"prms"`
	Curves map[string]mat.Curve `json:"curves,omitempty" yaml:"curves,omitempty"`
}

// LayerData holds one layer
type LayerData struct {
	Material     MaterialData `json:"material" yaml:"material"`
	Subdivisions int          `json:"subdivisions" yaml:"subdivisions"`
	Top          float64      `json:"top" yaml:"top"`
	Bottom       float64      `json:"bottom" yaml:"bottom"`
}

// BorderData holds one border
type BorderData struct {
	Tag  int       `json:"tag" yaml:"tag"`
	A    PointData `json:"a" yaml:"a"`
	B    PointData `json:"b" yaml:"b"`
	Dofs []int     `json:"dofs" yaml:"dofs"`
}

// StressData holds the initial stress field
type StressData struct {
	Type      string    `json:"type" yaml:"type"` // "constant" or "linear"
	Sv        float64   `json:"sv,omitempty" yaml:"sv,omitempty"`
	K0        float64   `json:"k0,omitempty" yaml:"k0,omitempty"`
	Surface   float64   `json:"surface,omitempty" yaml:"surface,omitempty"`
	Gradients []float64 `json:"gradients,omitempty" yaml:"gradients,omitempty"`
	K0s       []float64 `json:"k0s,omitempty" yaml:"k0s,omitempty"`
}

// SpecData holds the exported data of a specification
type SpecData struct {
	Id      string       `json:"id" yaml:"id"`
	Debug   bool         `json:"debug" yaml:"debug"`
	Verify  bool         `json:"verify" yaml:"verify"`
	Fault   *FaultData   `json:"fault,omitempty" yaml:"fault,omitempty"`
	Layers  []LayerData  `json:"layers" yaml:"layers"`
	Borders []BorderData `json:"borders" yaml:"borders"`
	Stress  StressData   `json:"stress" yaml:"stress"`
}

// NewSpecData collects the data of spec
func NewSpecData(spec *dzone.Specification) *SpecData {
	o := &SpecData{Id: spec.ID(), Debug: spec.Debug(), Verify: spec.VerifyCompatibility()}

	// fault
	if spec.HasFault() {
		f := spec.Fault()
		tip0, tip1 := f.Tips()
		o.Fault = &FaultData{
			Length:       f.Length,
			Angle:        f.Angle.Deg(),
			Center:       PointData{f.Center.X, f.Center.Y},
			Tip0:         PointData{tip0.X, tip0.Y},
			Tip1:         PointData{tip1.X, tip1.Y},
			Distribution: f.Distribution.Name(),
		}
		for i := 0; i <= 10; i++ {
			o.Fault.Widths = append(o.Fault.Widths, f.Width(float64(i)/10.0))
		}
	}

	// layers
	stack := spec.Layers()
	for _, lay := range stack.Layers {
		o.Layers = append(o.Layers, LayerData{
			Material:     newMaterialData(lay.Material),
			Subdivisions: lay.Subdivisions,
			Top:          lay.Top,
			Bottom:       lay.Bottom,
		})
	}
	for _, b := range stack.Borders {
		dofs := make([]int, len(b.DofsFixed))
		for i, d := range b.DofsFixed {
			dofs[i] = int(d)
		}
		o.Borders = append(o.Borders, BorderData{b.Tag, PointData{b.A.X, b.A.Y}, PointData{b.B.X, b.B.Y}, dofs})
	}

	// stress
	switch f := spec.Stress().(type) {
	case *inicond.Constant:
		o.Stress = StressData{Type: f.Name(), Sv: f.Sv, K0: f.K0}
	case *inicond.Linear:
		o.Stress = StressData{Type: f.Name(), Surface: f.Surface, Gradients: f.Gradients, K0s: f.K0s}
	}
	return o
}

// newMaterialData collects the data of a law
func newMaterialData(law mat.Law) (o MaterialData) {
	o.Model = law.Name()
	for _, p := range law.Params() {
		o.Prms = append(o.Prms, ParamData{p.N, p.V})
	}
	mat.Switch(law, func(m *mat.MohrCoulomb) error {
		return nil
	}, func(m *mat.Hardening) error {
		o.Curves = map[string]mat.Curve{"pc": m.HardeningCurve(), "pt": m.SofteningCurve()}
		return nil
	})
	return
}
