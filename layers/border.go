// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layers

import (
	"sort"

	"github.com/cpmech/gosl/io"

	"github.com/fcdiass/damagezone/errs"
	"github.com/fcdiass/damagezone/geo"
)

// Dof is a displacement degree of freedom that can be fixed on a border
type Dof int

// degrees of freedom
const (
	DofX Dof = 1 // horizontal displacement
	DofY Dof = 2 // vertical displacement
)

// String returns "ux" or "uy"
func (o Dof) String() string {
	switch o {
	case DofX:
		return "ux"
	case DofY:
		return "uy"
	}
	return io.Sf("dof(%d)", int(o))
}

// Border holds one edge of the bounding polygon and its constraints. Example:
//
//             -3
//    (3)--------------(2)
//     |                |      border id => tag => dofs
//     |                |              0 => -1  => {}
//   -4|                |-2            1 => -2  => {ux}
//     |                |              2 => -3  => {}
//     |                |              3 => -4  => {ux}
//    (0)--------------(1)
//             -1
//
type Border struct {
	Index     int       // index of edge in polygon
	Tag       int       // edge tag: -1, -2, ... -n
	A, B      geo.Point // end points
	DofsFixed []Dof     // fixed degrees of freedom (sorted, unique)
}

// NewBorders returns one border per edge of polygon, with no fixed dofs
func NewBorders(poly geo.Polygon) (borders []*Border) {
	for i, e := range poly.Edges() {
		borders = append(borders, &Border{Index: i, Tag: -(i + 1), A: e.A, B: e.B})
	}
	return
}

// CheckDofs checks degrees of freedom
func CheckDofs(dofs []Dof) error {
	for _, d := range dofs {
		if d != DofX && d != DofY {
			return errs.New(errs.ErrInvalidParameter, "border", "dof %d is invalid; options are %d (ux) and %d (uy)", int(d), DofX, DofY)
		}
	}
	return nil
}

// SetDofsFixed replaces the fixed degrees of freedom. Repeated dofs are merged
func (o *Border) SetDofsFixed(dofs ...Dof) error {
	if err := CheckDofs(dofs); err != nil {
		return err
	}
	o.DofsFixed = make([]Dof, 0, len(dofs))
	for _, d := range dofs {
		if !o.IsFixed(d) {
			o.DofsFixed = append(o.DofsFixed, d)
		}
	}
	sort.Slice(o.DofsFixed, func(i, j int) bool { return o.DofsFixed[i] < o.DofsFixed[j] })
	return nil
}

// IsFixed tells whether dof is fixed
func (o *Border) IsFixed(dof Dof) bool {
	for _, d := range o.DofsFixed {
		if d == dof {
			return true
		}
	}
	return false
}

// Length returns the length of the border
func (o *Border) Length() float64 { return o.A.Dist(o.B) }

// Copy returns a copy of border
func (o *Border) Copy() *Border {
	res := *o
	res.DofsFixed = append([]Dof{}, o.DofsFixed...)
	return &res
}

// String returns a JSON representation of Border
func (o *Border) String() string {
	return io.Sf("{\"index\":%d, \"tag\":%d, \"a\":%v, \"b\":%v, \"dofs\":%v}", o.Index, o.Tag, o.A, o.B, o.DofsFixed)
}
