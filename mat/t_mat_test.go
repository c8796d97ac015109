// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mat

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
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

func Test_mc01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mc01")

	m, err := NewMohrCoulomb(ExampleMohrCoulomb())
	if err != nil {
		tst.Errorf("NewMohrCoulomb failed: %v\n", err)
		return
	}
	io.Pforan("m = %v\n", m)
	chk.String(tst, m.Name(), "mc")
	chk.Float64(tst, "E", 1e-17, m.Young(), 17000)
	chk.Float64(tst, "nu", 1e-17, m.Poisson(), 0.3)
	chk.Float64(tst, "phi", 1e-17, m.Phi(), 34)
	chk.Float64(tst, "psi", 1e-17, m.Psi(), 24)
	chk.Float64(tst, "c", 1e-17, m.Cohesion(), 6)
	chk.Float64(tst, "K", 1e-10, m.Bulk(), 14166.666666666664)
	chk.Float64(tst, "G", 1e-10, m.Shear(), 6538.461538461538)
	chk.Float64(tst, "ten", 1e-12, m.TensileCutoff(), 8.89536581107644)

	M, qy0, err := m.DruckerPrager(0)
	if err != nil {
		tst.Errorf("DruckerPrager failed: %v\n", err)
		return
	}
	chk.Float64(tst, "M (compression)", 1e-14, M, 1.3746098270508162)
	chk.Float64(tst, "qy0 (compression)", 1e-12, qy0, 12.227657259117528)
	M, qy0, _ = m.DruckerPrager(1)
	chk.Float64(tst, "M (extension)", 1e-14, M, 0.9426736655809522)
	chk.Float64(tst, "qy0 (extension)", 1e-12, qy0, 8.385427095810908)
	M, qy0, _ = m.DruckerPrager(2)
	chk.Float64(tst, "M (plane-strain)", 1e-14, M, 0.921705264919374)
	chk.Float64(tst, "qy0 (plane-strain)", 1e-12, qy0, 8.198905501452952)
	_, _, err = m.DruckerPrager(3)
	if err == nil {
		tst.Errorf("typ=3 should fail\n")
	}

	// isotropic compression is inside; pure shear with no confinement is outside
	if m.YieldFunc(10, 10) >= 0 {
		tst.Errorf("isotropic state should be elastic\n")
	}
	if m.YieldFunc(100, 0) <= 0 {
		tst.Errorf("unconfined state beyond the strength should yield\n")
	}
	chk.Float64(tst, "f symmetric", 1e-15, m.YieldFunc(3, 1), m.YieldFunc(1, 3))
}

func Test_mc02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mc02. invalid parameters")

	cases := [][5]float64{
		{0, 0.3, 34, 24, 6},
		{-1, 0.3, 34, 24, 6},
		{17000, 0, 34, 24, 6},
		{17000, 0.5, 34, 24, 6},
		{17000, -0.1, 34, 24, 6},
		{17000, 0.3, 90, 24, 6},
		{17000, 0.3, -1, 24, 6},
		{17000, 0.3, 34, 90, 6},
		{17000, 0.3, 34, -5, 6},
		{17000, 0.3, 34, 24, -0.1},
	}
	for i, c := range cases {
		_, err := NewMohrCoulomb(c[0], c[1], c[2], c[3], c[4])
		if !errs.Is(err, errs.ErrInvalidParameter) {
			tst.Errorf("case %d should fail with InvalidParameter; err = %v\n", i, err)
			return
		}
		io.Pforan("%v\n", err)
	}

	// boundaries that are valid
	if _, err := NewMohrCoulomb(1, 0.49, 0, 0, 0); err != nil {
		tst.Errorf("zero angles and cohesion should be valid: %v\n", err)
	}
}

func Test_curve01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("curve01. compression curves: x strictly increasing")

	c, err := NewCurve("pc", [][2]float64{{1, 0}, {2, 0.1}, {4, 0.2}})
	if err != nil {
		tst.Errorf("NewCurve failed: %v\n", err)
		return
	}
	chk.Array(tst, "xs", 1e-17, c.Xs(), []float64{1, 2, 4})
	chk.Array(tst, "ys", 1e-17, c.Ys(), []float64{0, 0.1, 0.2})
	chk.Float64(tst, "first", 1e-17, c.First().X, 1)
	chk.Float64(tst, "peak", 1e-17, c.Peak().X, 4)
	if err := examplePc().Check("pc"); err != nil {
		tst.Errorf("hardening curve of SR3 should be valid: %v\n", err)
		return
	}

	bad := []Curve{
		nil,
		{},
		{{1, 0}, {1, 0.1}},
		{{1, 0}, {2, 0.1}, {1.5, 0.2}},
		{{3, 0}, {2, 0.1}},
		{{1, 0}, {-2, 0.1}},
	}
	for i, b := range bad {
		err := b.Check("curve")
		if !errs.Is(err, errs.ErrInvalidParameter) {
			tst.Errorf("curve %d should fail with InvalidParameter; err = %v\n", i, err)
			return
		}
	}
}

func Test_curve02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("curve02. tension curves: x strictly decreasing (|x| increasing)")

	c, err := NewCurve("pt", [][2]float64{{-1, 0}, {-2, 0.1}})
	if err != nil {
		tst.Errorf("negative curve moving away from the origin should be valid: %v\n", err)
		return
	}
	chk.Float64(tst, "peak", 1e-17, c.Peak().X, -2)
	if err := examplePt().Check("pt"); err != nil {
		tst.Errorf("softening curve of SR3 should be valid: %v\n", err)
		return
	}

	bad := []Curve{
		{{-1, 0}, {-1, 0.1}},
		{{-1, 0}, {-0.5, 0.1}},
		{{-1, 0}, {2, 0.1}},
	}
	for i, b := range bad {
		err := b.Check("curve")
		if !errs.Is(err, errs.ErrInvalidParameter) {
			tst.Errorf("curve %d should fail with InvalidParameter; err = %v\n", i, err)
			return
		}
	}
}

func Test_hard01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("hard01")

	d := ExampleHardening()
	m, err := NewHardening(d)
	if err != nil {
		tst.Errorf("NewHardening failed: %v\n", err)
		return
	}
	io.Pforan("m = %v\n", m)
	chk.String(tst, m.Name(), "hardening")
	chk.Float64(tst, "E", 1e-17, m.Young(), 17000)
	chk.Float64(tst, "yield stress", 1e-17, m.YieldStress(), 1)
	chk.Float64(tst, "transition stress", 1e-17, m.TransitionStress(), -0.085)
	chk.Int(tst, "npc", len(m.HardeningCurve()), 34)
	chk.Int(tst, "npt", len(m.SofteningCurve()), 18)
	chk.Int(tst, "nprms", len(m.Params()), 10)

	// value object: changing the input or the returned data does not change the law
	d.Pc[0].X = 1000
	got := m.Data()
	got.Pt[0].X = -1000
	chk.Float64(tst, "yield stress", 1e-17, m.YieldStress(), 1)
	chk.Float64(tst, "transition stress", 1e-17, m.TransitionStress(), -0.085)
}

func Test_hard02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("hard02. invalid parameters")

	modify := []func(d *HardeningData){
		func(d *HardeningData) { d.Pc = nil },
		func(d *HardeningData) { d.Pt = Curve{} },
		func(d *HardeningData) { d.Pc = Curve{{1, 0}, {1, 0.1}} },
		func(d *HardeningData) { d.Pc = Curve{{2, 0}, {1, 0.1}} },
		func(d *HardeningData) { d.E0 = -0.01 },
		func(d *HardeningData) { d.Ny = 0 },
		func(d *HardeningData) { d.E = 0 },
		func(d *HardeningData) { d.Nu = 0.5 },
		func(d *HardeningData) { d.Beta = 95 },
	}
	for i, f := range modify {
		d := ExampleHardening()
		f(&d)
		_, err := NewHardening(d)
		if !errs.Is(err, errs.ErrInvalidParameter) {
			tst.Errorf("case %d should fail with InvalidParameter; err = %v\n", i, err)
			return
		}
		io.Pforan("%v\n", err)
	}
}

func Test_factory01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("factory01")

	chk.Strings(tst, "models", Models(), []string{"hardening", "mc", "mohr-coulomb", "srp"})

	law, err := New("mc", dbf.Params{
		&dbf.P{N: "E", V: 17000},
		&dbf.P{N: "nu", V: 0.3},
		&dbf.P{N: "phi", V: 34},
		&dbf.P{N: "psi", V: 24},
		&dbf.P{N: "c", V: 6},
	}, nil)
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	var name string
	err = Switch(law, func(m *MohrCoulomb) error {
		name = "mc"
		chk.Float64(tst, "c", 1e-17, m.Cohesion(), 6)
		return nil
	}, func(m *Hardening) error {
		name = "hardening"
		return nil
	})
	if err != nil {
		tst.Errorf("Switch failed: %v\n", err)
		return
	}
	chk.String(tst, name, "mc")

	d := ExampleHardening()
	m, _ := NewHardening(d)
	law, err = New("srp", m.Params(), Curves{"pc": d.Pc, "pt": d.Pt})
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	chk.String(tst, law.String(), m.String())

	_, err = New("dp", nil, nil)
	if !errs.Is(err, errs.ErrInvalidParameter) {
		tst.Errorf("unknown model should fail with InvalidParameter; err = %v\n", err)
	}
	_, err = New("mc", dbf.Params{&dbf.P{N: "K", V: 1}}, nil)
	if !errs.Is(err, errs.ErrInvalidParameter) {
		tst.Errorf("unknown parameter should fail with InvalidParameter; err = %v\n", err)
	}
	_, err = New("hardening", m.Params(), Curves{"pc": d.Pc})
	if !errs.Is(err, errs.ErrInvalidParameter) {
		tst.Errorf("missing softening curve should fail with InvalidParameter; err = %v\n", err)
	}
}
