// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inicond

import (
	"math"
	"sort"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"

	"github.com/fcdiass/damagezone/errs"
	"github.com/fcdiass/damagezone/layers"
)

// StressState holds the in-situ stresses at one point (compression negative)
type StressState struct {
	Sv float64 // vertical stress
	Sh float64 // horizontal stress
}

// Mean returns the mean compressive stress p = -(σv + 2σh)/3 (compression positive)
func (o StressState) Mean() float64 { return -(o.Sv + 2.0*o.Sh) / 3.0 }

// Deviatoric returns q = |σv - σh|
func (o StressState) Deviatoric() float64 {
	if o.Sv > o.Sh {
		return o.Sv - o.Sh
	}
	return o.Sh - o.Sv
}

// Principal returns the principal stresses with compression positive, σ1 ≥ σ3
func (o StressState) Principal() (σ1, σ3 float64) {
	σ1, σ3 = -o.Sv, -o.Sh
	if σ3 > σ1 {
		σ1, σ3 = σ3, σ1
	}
	return
}

// String returns a JSON representation of StressState
func (o StressState) String() string {
	return io.Sf("{\"sv\":%g, \"sh\":%g}", o.Sv, o.Sh)
}

// LayerState holds the stress states at the top and bottom of one layer
type LayerState struct {
	Index  int         // index of layer in stack
	Zmax   float64     // elevation at top of layer
	Zmin   float64     // elevation at bottom of layer
	K0     float64     // earth-pressure coefficient
	DsigV  float64     // vertical stress increment added by this layer
	Top    StressState // state @ top of layer
	Bottom StressState // state @ bottom of layer
}

// Calc computes state @ elevation z within the layer
func (o *LayerState) Calc(z float64) StressState {
	h := o.Zmax - o.Zmin
	if h <= 0 {
		return o.Top
	}
	t := (o.Zmax - z) / h
	sv := o.Top.Sv + t*(o.Bottom.Sv-o.Top.Sv)
	return StressState{sv, o.K0 * sv}
}

// LayerStates is a set of LayerState
type LayerStates []*LayerState

// Len the length of LayerStates
func (o LayerStates) Len() int {
	return len(o)
}

// Swap swaps two LayerStates
func (o LayerStates) Swap(i, j int) {
	o[i], o[j] = o[j], o[i]
}

// Less compares LayerStates: sort from top to bottom
func (o LayerStates) Less(i, j int) bool {
	return o[i].Zmin > o[j].Zmin
}

// String prints a json formatted string with LayerStates' content
func (o LayerStates) String() string {
	if len(o) == 0 {
		return "[]"
	}
	l := "[\n"
	for i, lay := range o {
		if i > 0 {
			l += ",\n"
		}
		l += io.Sf("  { \"index\":%d, \"zmax\":%g, \"zmin\":%g, \"K0\":%g, \"dsigV\":%g, \"top\":%v, \"bottom\":%v }",
			lay.Index, lay.Zmax, lay.Zmin, lay.K0, lay.DsigV, lay.Top, lay.Bottom)
	}
	l += "\n]"
	return l
}

// Profile holds the initial stresses along the vertical direction of a stack
type Profile struct {
	Field  Field       // field
	Layers LayerStates // states sorted from top to bottom
}

// NewProfile computes the stress states at the top and bottom of each layer
func NewProfile(field Field, stack *layers.Stack) (*Profile, error) {

	// check
	if stack == nil || len(stack.Layers) == 0 {
		return nil, errs.New(errs.ErrIncompleteModel, "stress", "layers must be set before computing the stress profile")
	}
	nlayers := len(stack.Layers)
	if err := Resolve(field, nlayers); err != nil {
		return nil, err
	}

	// initialise layers
	L := make(LayerStates, nlayers)
	for i, lay := range stack.Layers {
		L[i] = &LayerState{Index: i, Zmax: lay.Top, Zmin: lay.Bottom}
	}

	// sort layers from top to bottom
	sort.Sort(L)

	// set states
	switch f := field.(type) {
	case *Constant:
		st := StressState{f.Sv, f.K0 * f.Sv}
		for _, lay := range L {
			lay.K0 = f.K0
			lay.Top, lay.Bottom = st, st
		}

	case *Linear:
		gradients, k0s, _ := f.Resolve(nlayers)
		σV := f.Surface
		for _, lay := range L {
			k0 := k0s[lay.Index]
			if k0 == K0Auto {
				ν := stack.Layers[lay.Index].Material.Poisson()
				k0 = ν / (1.0 - ν)
			}
			lay.K0 = k0
			lay.DsigV = gradients[lay.Index] * (lay.Zmax - lay.Zmin)
			lay.Top = StressState{σV, k0 * σV}
			σV -= lay.DsigV
			lay.Bottom = StressState{σV, k0 * σV}
		}
	}
	return &Profile{Field: field, Layers: L}, nil
}

// Zmax returns the elevation at the top of the profile
func (o *Profile) Zmax() float64 { return o.Layers[0].Zmax }

// Zmin returns the elevation at the bottom of the profile
func (o *Profile) Zmin() float64 { return o.Layers[len(o.Layers)-1].Zmin }

// StressAt returns the state at given depth below the top of the stack. Interfaces take the
// state of the layer above
func (o *Profile) StressAt(depth float64) (StressState, error) {
	z := o.Zmax() - depth
	tol := 1e-10 * math.Max(1, o.Zmax()-o.Zmin())
	if z < o.Zmin() && z >= o.Zmin()-tol {
		z = o.Zmin()
	}
	if z > o.Zmax() && z <= o.Zmax()+tol {
		z = o.Zmax()
	}
	for _, lay := range o.Layers {
		if z <= lay.Zmax && z >= lay.Zmin {
			return lay.Calc(z), nil
		}
	}
	return StressState{}, errs.New(errs.ErrInvalidGeometry, "stress", "depth %g is outside the stack [0, %g]", depth, o.Zmax()-o.Zmin())
}

// Sample returns npts states from the top to the bottom of the profile
func (o *Profile) Sample(npts int) (depth []float64, states []StressState) {
	if npts < 2 {
		npts = 2
	}
	depth = utl.LinSpace(0, o.Zmax()-o.Zmin(), npts)
	states = make([]StressState, npts)
	for i, d := range depth {
		states[i], _ = o.StressAt(d)
	}
	return
}
