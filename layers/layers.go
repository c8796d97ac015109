// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package layers implements the stack of material layers bounded by a polygon
package layers

import (
	"github.com/cpmech/gosl/io"

	"github.com/fcdiass/damagezone/errs"
	"github.com/fcdiass/damagezone/geo"
	"github.com/fcdiass/damagezone/mat"
)

// Layer holds one horizontal band of the medium
//  The law is shared with other layers (laws are immutable)
type Layer struct {
	Material     mat.Law // constitutive law
	Subdivisions int     // number of subdivisions requested for the mesh (≥ 0)
	Top          float64 // elevation at top of layer
	Bottom       float64 // elevation at bottom of layer
}

// Thickness returns Top - Bottom
func (o *Layer) Thickness() float64 { return o.Top - o.Bottom }

// Stack holds the layers, sorted from top to bottom, and the bounding polygon
//
//   ymax  +-------------------+   layer 0
//         |                   |
//         +-------------------+   layer 1
//         |                   |
//   ymin  +-------------------+   layer n-1
//
type Stack struct {
	Layers  []*Layer    // layers from top to bottom
	Border  geo.Polygon // bounding polygon
	Borders []*Border   // one border per edge of the polygon
}

// New returns a new stack of layers
//  materials -- one law per layer; or a single law broadcast to all divisions
//  divisions -- subdivision count of each layer; may be empty
//  border    -- bounding polygon
//
//  Rules:
//   * no divisions and one material: one layer spanning the whole polygon
//   * no divisions and many materials: InvalidLayerCount
//   * one material and k divisions: k layers sharing the material
//   * otherwise len(divisions) == len(materials); else InvalidLayerCount
func New(materials []mat.Law, divisions []int, border geo.Polygon) (*Stack, error) {

	// check materials
	nmat := len(materials)
	if nmat == 0 {
		return nil, errs.New(errs.ErrInvalidLayerCount, "layers", "at least one material must be given")
	}
	for i, m := range materials {
		if m == nil {
			return nil, errs.New(errs.ErrInvalidParameter, io.Sf("material[%d]", i), "material must not be nil")
		}
	}
	for i, d := range divisions {
		if d < 0 {
			return nil, errs.New(errs.ErrInvalidParameter, io.Sf("division[%d]", i), "subdivision count must be non-negative; division=%d", d)
		}
	}

	// resolve number of layers
	nlay := nmat
	switch {
	case len(divisions) == 0:
		if nmat != 1 {
			return nil, errs.New(errs.ErrInvalidLayerCount, "layers", "divisions must be given for %d materials", nmat)
		}
	case nmat == 1:
		nlay = len(divisions)
	case len(divisions) != nmat:
		return nil, errs.New(errs.ErrInvalidLayerCount, "layers", "number of divisions (%d) must match number of materials (%d)", len(divisions), nmat)
	}

	// check border
	poly, err := geo.NewPolygon(border)
	if err != nil {
		return nil, err
	}

	// layers from top to bottom
	_, _, ymin, ymax := poly.Bounds()
	h := (ymax - ymin) / float64(nlay)
	o := &Stack{Border: poly, Layers: make([]*Layer, nlay)}
	for i := 0; i < nlay; i++ {
		m := materials[0]
		if nmat > 1 {
			m = materials[i]
		}
		ndiv := 0
		if len(divisions) > 0 {
			ndiv = divisions[i]
		}
		top := ymax - float64(i)*h
		bot := ymax - float64(i+1)*h
		if i == nlay-1 {
			bot = ymin
		}
		o.Layers[i] = &Layer{Material: m, Subdivisions: ndiv, Top: top, Bottom: bot}
	}

	// borders
	o.Borders = NewBorders(poly)
	return o, nil
}

// NumLayers returns the number of layers
func (o *Stack) NumLayers() int { return len(o.Layers) }

// Top returns the elevation at the top of the stack
func (o *Stack) Top() float64 { return o.Layers[0].Top }

// Bottom returns the elevation at the bottom of the stack
func (o *Stack) Bottom() float64 { return o.Layers[len(o.Layers)-1].Bottom }

// LayerAt returns the index of the layer containing elevation z or -1 if z is outside
// the stack. Interfaces belong to the layer above
func (o *Stack) LayerAt(z float64) int {
	for i, lay := range o.Layers {
		if z <= lay.Top && z >= lay.Bottom {
			return i
		}
	}
	return -1
}

// Materials returns the law of each layer
func (o *Stack) Materials() []mat.Law {
	res := make([]mat.Law, len(o.Layers))
	for i, lay := range o.Layers {
		res[i] = lay.Material
	}
	return res
}

// Divisions returns the subdivision count of each layer
func (o *Stack) Divisions() []int {
	res := make([]int, len(o.Layers))
	for i, lay := range o.Layers {
		res[i] = lay.Subdivisions
	}
	return res
}

// SetDofsFixed sets the fixed degrees of freedom of border idx (last write wins)
func (o *Stack) SetDofsFixed(idx int, dofs ...Dof) error {
	if idx < 0 || idx >= len(o.Borders) {
		return errs.New(errs.ErrInvalidGeometry, "border", "index %d is out of range [0, %d)", idx, len(o.Borders))
	}
	return o.Borders[idx].SetDofsFixed(dofs...)
}

// FixAll sets the fixed degrees of freedom of all borders
func (o *Stack) FixAll(dofs ...Dof) error {
	if err := CheckDofs(dofs); err != nil {
		return err
	}
	for _, b := range o.Borders {
		b.SetDofsFixed(dofs...)
	}
	return nil
}

// Copy returns a deep copy of the stack. Laws are shared
func (o *Stack) Copy() *Stack {
	if o == nil {
		return nil
	}
	res := &Stack{Border: o.Border.Copy()}
	res.Layers = make([]*Layer, len(o.Layers))
	for i, lay := range o.Layers {
		l := *lay
		res.Layers[i] = &l
	}
	res.Borders = make([]*Border, len(o.Borders))
	for i, b := range o.Borders {
		res.Borders[i] = b.Copy()
	}
	return res
}

// String returns a JSON representation of Stack
func (o *Stack) String() string {
	l := "{\"layers\":["
	for i, lay := range o.Layers {
		if i > 0 {
			l += ", "
		}
		l += io.Sf("{\"model\":%q, \"subdivisions\":%d, \"top\":%g, \"bottom\":%g}", lay.Material.Name(), lay.Subdivisions, lay.Top, lay.Bottom)
	}
	l += "], \"borders\":["
	for i, b := range o.Borders {
		if i > 0 {
			l += ", "
		}
		l += b.String()
	}
	return l + "]}"
}
