// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msh

import (
	"github.com/cpmech/gosl/chk"

	"github.com/fcdiass/damagezone/dzone"
	"github.com/fcdiass/damagezone/geo"
)

// Outliner generates outlines from specifications; it implements dzone.Mesher
type Outliner struct {
	Npts int // number of points along each envelope of the damage zone; 0 => 21
}

// Generate returns the *Outline of spec
func (o Outliner) Generate(spec *dzone.Specification, recombine bool) (dzone.Mesh, error) {
	return o.Outline(spec, recombine)
}

// Outline returns the outline of spec
func (o Outliner) Outline(spec *dzone.Specification, recombine bool) (*Outline, error) {

	// check
	if spec == nil {
		return nil, chk.Err("specification must not be nil")
	}
	npts := o.Npts
	if npts == 0 {
		npts = 21
	}
	if npts < 2 {
		return nil, chk.Err("number of points along the envelopes must be at least 2; Npts=%d", npts)
	}

	// new outline
	out := &Outline{Id: spec.ID(), Recombine: recombine, Debug: spec.Debug()}
	addVert := func(tag int, p geo.Point) int {
		id := len(out.Verts)
		out.Verts = append(out.Verts, &Vert{Id: id, Tag: tag, C: []float64{p.X, p.Y}})
		return id
	}
	addEdge := func(tag, a, b int, kind string, dofs []int) {
		out.Edges = append(out.Edges, &Edge{Id: len(out.Edges), Tag: tag, Verts: [2]int{a, b}, Kind: kind, Dofs: dofs})
	}

	// border
	stack := spec.Layers()
	nb := len(stack.Borders)
	first := len(out.Verts)
	for _, b := range stack.Borders {
		addVert(TagBorderVtx, b.A)
	}
	for i, b := range stack.Borders {
		dofs := make([]int, len(b.DofsFixed))
		for j, d := range b.DofsFixed {
			dofs[j] = int(d)
		}
		addEdge(b.Tag, first+i, first+(i+1)%nb, KindBorder, dofs)
	}

	// regions
	for i, lay := range stack.Layers {
		out.Regions = append(out.Regions, &Region{
			Tag:   -(i + 1),
			Ymax:  lay.Top,
			Ymin:  lay.Bottom,
			Ndiv:  lay.Subdivisions,
			Model: lay.Material.Name(),
		})
	}

	// fault
	if spec.HasFault() {
		f := spec.Fault()
		tip0, tip1 := f.Tips()
		a := addVert(TagFaultTip, tip0)
		b := addVert(TagFaultTip, tip1)
		addEdge(TagFault, a, b, KindFault, nil)

		// envelopes of damage zone
		hanging, foot := f.Envelope(npts)
		if width(f.Width, npts) > 0 {
			for k, polyline := range [][]geo.Point{hanging, foot} {
				tag := TagHanging
				if k == 1 {
					tag = TagFoot
				}
				prev := a
				for i := 1; i < len(polyline)-1; i++ {
					if !stack.Border.Contains(polyline[i]) {
						return nil, chk.Err("damage zone crosses the border at %v", polyline[i])
					}
					curr := addVert(tag, polyline[i])
					addEdge(tag, prev, curr, KindEnvelope, nil)
					prev = curr
				}
				addEdge(tag, prev, b, KindEnvelope, nil)
			}
		}
	}

	// derived data
	if err := out.Init(); err != nil {
		return nil, err
	}
	return out, nil
}

// width returns the maximum width sampled at npts points
func width(fcn func(t float64) float64, npts int) (wmax float64) {
	for i := 0; i < npts; i++ {
		t := float64(i) / float64(npts-1)
		if w := fcn(t); w > wmax {
			wmax = w
		}
	}
	return
}
