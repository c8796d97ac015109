// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package msh implements the tagged outline of a model handed over to external meshers
//  The outline holds the geometry only: vertices, edges and the horizontal regions of the
//  layers. Tags are negative, following the convention of the mesh files:
//
//     -1 … -n   border edges (same tags as the borders of the layer stack)
//     -100      fault edge
//     -101      fault tips
//     -200      hanging-wall envelope of the damage zone
//     -201      foot-wall envelope of the damage zone
//     -1 … -m   regions (layers), from top to bottom
package msh

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// tags
const (
	TagFault     = -100 // fault edge
	TagFaultTip  = -101 // vertices at the tips of the fault
	TagHanging   = -200 // hanging-wall envelope
	TagFoot      = -201 // foot-wall envelope
	TagBorderVtx = -300 // vertices of the border
)

// kinds of edges
const (
	KindBorder   = "border"
	KindFault    = "fault"
	KindEnvelope = "envelope"
)

// Vert holds vertex data
type Vert struct {
	Id  int       `json:"id" yaml:"id"`   // id
	Tag int       `json:"tag" yaml:"tag"` // tag
	C   []float64 `json:"c" yaml:"c"`     // coordinates (size==2)
}

// Edge holds a straight segment between two vertices
type Edge struct {
	Id    int    `json:"id" yaml:"id"`       // id
	Tag   int    `json:"tag" yaml:"tag"`     // tag
	Verts [2]int `json:"verts" yaml:"verts"` // vertices
	Kind  string `json:"kind" yaml:"kind"`   // "border", "fault" or "envelope"
	Dofs  []int  `json:"dofs" yaml:"dofs"`   // fixed degrees of freedom (border edges only)
}

// Region holds the horizontal band corresponding to one layer
type Region struct {
	Tag   int     `json:"tag" yaml:"tag"`     // cell tag of the layer
	Ymax  float64 `json:"ymax" yaml:"ymax"`   // elevation at top
	Ymin  float64 `json:"ymin" yaml:"ymin"`   // elevation at bottom
	Ndiv  int     `json:"ndiv" yaml:"ndiv"`   // number of subdivisions
	Model string  `json:"model" yaml:"model"` // material model name
}

// Outline holds the geometry of a model
type Outline struct {

	// from JSON
	Id        string    `json:"id" yaml:"id"`               // id of the specification
	Recombine bool      `json:"recombine" yaml:"recombine"` // recombine triangles into quadrilaterals
	Debug     bool      `json:"debug" yaml:"debug"`         // debug flag of the specification
	Verts     []*Vert   `json:"verts" yaml:"verts"`         // vertices
	Edges     []*Edge   `json:"edges" yaml:"edges"`         // edges
	Regions   []*Region `json:"regions" yaml:"regions"`     // layers

	// derived
	Xmin, Xmax    float64         `json:"-" yaml:"-"` // limits
	Ymin, Ymax    float64         `json:"-" yaml:"-"` // limits
	VertTag2verts map[int][]*Vert `json:"-" yaml:"-"` // vertex tag => set of vertices
	EdgeTag2edges map[int][]*Edge `json:"-" yaml:"-"` // edge tag => set of edges
}

// ReadOutline reads an outline written in JSON format
func ReadOutline(dir, fn string) (*Outline, error) {
	b, err := os.ReadFile(filepath.Join(dir, fn))
	if err != nil {
		return nil, chk.Err("cannot read outline %q:\n%v", fn, err)
	}
	var o Outline
	err = json.Unmarshal(b, &o)
	if err != nil {
		return nil, chk.Err("cannot decode outline %q:\n%v", fn, err)
	}
	err = o.Init()
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// Init checks ids and tags and computes derived data
func (o *Outline) Init() error {

	// vertices
	if len(o.Verts) < 3 {
		return chk.Err("outline must have at least 3 vertices; nverts=%d", len(o.Verts))
	}
	o.Xmin, o.Ymin = o.Verts[0].C[0], o.Verts[0].C[1]
	o.Xmax, o.Ymax = o.Xmin, o.Ymin
	o.VertTag2verts = make(map[int][]*Vert)
	for i, v := range o.Verts {
		if v.Id != i {
			return chk.Err("vertex ids must be sequential; vertex %d has id %d", i, v.Id)
		}
		if len(v.C) != 2 {
			return chk.Err("vertex %d must have 2 coordinates; C=%v", i, v.C)
		}
		if v.Tag < 0 {
			o.VertTag2verts[v.Tag] = append(o.VertTag2verts[v.Tag], v)
		}
		o.Xmin = utl.Min(o.Xmin, v.C[0])
		o.Xmax = utl.Max(o.Xmax, v.C[0])
		o.Ymin = utl.Min(o.Ymin, v.C[1])
		o.Ymax = utl.Max(o.Ymax, v.C[1])
	}

	// edges
	o.EdgeTag2edges = make(map[int][]*Edge)
	for i, e := range o.Edges {
		if e.Id != i {
			return chk.Err("edge ids must be sequential; edge %d has id %d", i, e.Id)
		}
		if e.Tag >= 0 {
			return chk.Err("edge %d must have a negative tag; tag=%d", i, e.Tag)
		}
		for _, v := range e.Verts {
			if v < 0 || v >= len(o.Verts) {
				return chk.Err("edge %d refers to vertex %d which does not exist", i, v)
			}
		}
		o.EdgeTag2edges[e.Tag] = append(o.EdgeTag2edges[e.Tag], e)
	}
	return nil
}

// Border returns the border edges
func (o *Outline) Border() (edges []*Edge) {
	for _, e := range o.Edges {
		if e.Kind == KindBorder {
			edges = append(edges, e)
		}
	}
	return
}

// String returns a JSON representation of *Vert
func (o *Vert) String() string {
	l := io.Sf("{\"id\":%4d, \"tag\":%6d, \"c\":[", o.Id, o.Tag)
	for i, x := range o.C {
		if i > 0 {
			l += ", "
		}
		l += io.Sf("%23.15e", x)
	}
	l += "] }"
	return l
}

// String returns a JSON representation of *Edge
func (o *Edge) String() string {
	return io.Sf("{\"id\":%d, \"tag\":%d, \"verts\":[%d, %d], \"kind\":%q, \"dofs\":%v}", o.Id, o.Tag, o.Verts[0], o.Verts[1], o.Kind, o.Dofs)
}

// String returns a JSON representation of Outline
func (o *Outline) String() string {
	l := io.Sf("{\n  \"id\" : %q,\n  \"recombine\" : %v,\n  \"verts\" : [\n", o.Id, o.Recombine)
	for i, v := range o.Verts {
		if i > 0 {
			l += ",\n"
		}
		l += "    " + v.String()
	}
	l += "\n  ],\n  \"edges\" : [\n"
	for i, e := range o.Edges {
		if i > 0 {
			l += ",\n"
		}
		l += "    " + e.String()
	}
	l += "\n  ]\n}"
	return l
}
