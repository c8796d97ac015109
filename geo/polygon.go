// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geo

import (
	"math"

	"github.com/fcdiass/damagezone/errs"
)

// Polygon holds the vertices of a simple polygon. The last vertex connects to the first one
type Polygon []Point

// Edge holds the end points of one polygon edge
type Edge struct {
	A, B Point
}

// NewPolygon returns a copy of points as a polygon after checking it
func NewPolygon(points []Point) (Polygon, error) {
	if len(points) < 3 {
		return nil, errs.New(errs.ErrInvalidGeometry, "polygon", "at least 3 points are required; npoints=%d", len(points))
	}
	n := len(points)
	for i := 0; i < n; i++ {
		p := points[i]
		if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
			return nil, errs.New(errs.ErrInvalidGeometry, "polygon", "point %d has non-finite coordinates: %v", i, p)
		}
		if p.Equal(points[(i+1)%n]) {
			return nil, errs.New(errs.ErrInvalidGeometry, "polygon", "points %d and %d coincide: %v", i, (i+1)%n, p)
		}
	}
	poly := make(Polygon, n)
	copy(poly, points)
	if math.Abs(poly.Area()) == 0 {
		return nil, errs.New(errs.ErrInvalidGeometry, "polygon", "area must not be zero")
	}
	return poly, nil
}

// Box returns the axis-aligned rectangle spanned by two opposite corners (counter-clockwise,
// starting at the bottom-left corner)
//
//   (3)----------(2)
//    |            |
//   (0)----------(1)
//
func Box(a, b Point) []Point {
	xmin, xmax := math.Min(a.X, b.X), math.Max(a.X, b.X)
	ymin, ymax := math.Min(a.Y, b.Y), math.Max(a.Y, b.Y)
	return []Point{{xmin, ymin}, {xmax, ymin}, {xmax, ymax}, {xmin, ymax}}
}

// Edges returns the edges of the polygon; edge i goes from vertex i to vertex i+1
func (o Polygon) Edges() []Edge {
	n := len(o)
	edges := make([]Edge, n)
	for i := 0; i < n; i++ {
		edges[i] = Edge{o[i], o[(i+1)%n]}
	}
	return edges
}

// Bounds returns the limits of the polygon
func (o Polygon) Bounds() (xmin, xmax, ymin, ymax float64) {
	if len(o) == 0 {
		return
	}
	xmin, xmax = o[0].X, o[0].X
	ymin, ymax = o[0].Y, o[0].Y
	for _, p := range o[1:] {
		xmin = math.Min(xmin, p.X)
		xmax = math.Max(xmax, p.X)
		ymin = math.Min(ymin, p.Y)
		ymax = math.Max(ymax, p.Y)
	}
	return
}

// Area returns the signed area (positive if counter-clockwise)
func (o Polygon) Area() (a float64) {
	n := len(o)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		a += o[i].X*o[j].Y - o[j].X*o[i].Y
	}
	return a / 2.0
}

// Contains tells whether p is inside the polygon or on its boundary
func (o Polygon) Contains(p Point) bool {
	n := len(o)
	if n < 3 {
		return false
	}
	for _, e := range o.Edges() {
		if onSegment(p, e.A, e.B) {
			return true
		}
	}
	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := o[i], o[j]
		if (a.Y > p.Y) != (b.Y > p.Y) {
			x := a.X + (p.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
			if p.X < x {
				inside = !inside
			}
		}
	}
	return inside
}

// Copy returns a copy of the polygon
func (o Polygon) Copy() Polygon {
	if o == nil {
		return nil
	}
	res := make(Polygon, len(o))
	copy(res, o)
	return res
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

// onSegment tells whether p lies on segment ab
func onSegment(p, a, b Point) bool {
	cross := (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
	scale := math.Max(1.0, math.Max(a.Dist(b), p.Dist(a)))
	if math.Abs(cross) > 1e-12*scale*scale {
		return false
	}
	return p.X >= math.Min(a.X, b.X) && p.X <= math.Max(a.X, b.X) &&
		p.Y >= math.Min(a.Y, b.Y) && p.Y <= math.Max(a.Y, b.Y)
}
