// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geo

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/fcdiass/damagezone/errs"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_angle01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("angle01")

	a, err := NewAngle(-60, "deg")
	if err != nil {
		tst.Errorf("NewAngle failed: %v\n", err)
		return
	}
	io.Pforan("a = %v\n", a)
	chk.Float64(tst, "sin(-60°)", 1e-15, a.Sin(), -math.Sqrt(3)/2)
	chk.Float64(tst, "cos(-60°)", 1e-15, a.Cos(), 0.5)
	chk.Float64(tst, "rad(-60°)", 1e-15, a.Rad(), -math.Pi/3)
	chk.Float64(tst, "deg(-60°)", 1e-15, a.Deg(), -60)
	chk.String(tst, a.Unit(), Deg)

	b, err := NewAngle(math.Pi/6, "radians")
	if err != nil {
		tst.Errorf("NewAngle failed: %v\n", err)
		return
	}
	chk.Float64(tst, "sin(π/6)", 1e-15, b.Sin(), 0.5)
	chk.Float64(tst, "deg(π/6)", 1e-13, b.Deg(), 30)
	chk.Float64(tst, "tan(π/6)", 1e-15, b.Tan(), 1.0/math.Sqrt(3))
	chk.String(tst, b.Unit(), Rad)

	if Degrees(30) != Degrees(30) {
		tst.Errorf("angles should be comparable\n")
	}
}

func Test_angle02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("angle02. invalid unit")

	for _, unit := range []string{"grad", "", "turns"} {
		_, err := NewAngle(10, unit)
		if !errs.Is(err, errs.ErrInvalidUnit) {
			tst.Errorf("unit %q should give InvalidUnit; err = %v\n", unit, err)
			return
		}
		io.Pforan("%v\n", err)
	}
}

func Test_point01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("point01")

	p := P(1, 2)
	q := p.Add(3, 4)
	chk.Float64(tst, "p.X unchanged", 1e-17, p.X, 1)
	chk.Float64(tst, "q.X", 1e-17, q.X, 4)
	chk.Float64(tst, "dist", 1e-15, p.Dist(q), 5)
	if !p.Equal(Point{1, 2}) {
		tst.Errorf("points should be equal\n")
	}
	if p.Equal(Point{1, 2 + 1e-15}) {
		tst.Errorf("equality must be exact\n")
	}
}

func Test_polygon01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("polygon01")

	cos60 := 0.5
	poly, err := NewPolygon(Box(P(-1750, -3000*cos60), P(1750, 0)))
	if err != nil {
		tst.Errorf("NewPolygon failed: %v\n", err)
		return
	}
	chk.Int(tst, "nverts", len(poly), 4)
	chk.Int(tst, "nedges", len(poly.Edges()), 4)
	xmin, xmax, ymin, ymax := poly.Bounds()
	chk.Array(tst, "bounds", 1e-17, []float64{xmin, xmax, ymin, ymax}, []float64{-1750, 1750, -1500, 0})
	chk.Float64(tst, "area", 1e-10, poly.Area(), 3500*1500)

	if !poly.Contains(P(0, -750)) {
		tst.Errorf("centre should be inside\n")
	}
	if !poly.Contains(P(1750, -100)) {
		tst.Errorf("boundary point should be inside\n")
	}
	if poly.Contains(P(2000, -100)) {
		tst.Errorf("point should be outside\n")
	}

	e := poly.Edges()[3]
	if !e.A.Equal(P(-1750, 0)) || !e.B.Equal(P(-1750, -1500)) {
		tst.Errorf("last edge must close the polygon: %v\n", e)
	}
}

func Test_polygon02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("polygon02. invalid polygons")

	cases := [][]Point{
		nil,
		{P(0, 0), P(1, 0)},
		{P(0, 0), P(1, 0), P(1, 0)},
		{P(0, 0), P(1, 0), P(2, 0)},
	}
	for i, pts := range cases {
		_, err := NewPolygon(pts)
		if !errs.Is(err, errs.ErrInvalidGeometry) {
			tst.Errorf("case %d should fail with InvalidGeometry; err = %v\n", i, err)
			return
		}
	}

	tri := []Point{P(0, 0), P(2, 0), P(0, 2)}
	poly, err := NewPolygon(tri)
	if err != nil {
		tst.Errorf("NewPolygon failed: %v\n", err)
		return
	}
	tri[0] = P(-5, -5)
	if !poly[0].Equal(P(0, 0)) {
		tst.Errorf("polygon must hold a copy of the points\n")
	}
	if poly.Contains(P(1.5, 1.5)) {
		tst.Errorf("point beyond hypotenuse should be outside\n")
	}
}
