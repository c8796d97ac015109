// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements previews of models: figures of the geometry, material curves and
// initial stresses (PNG, SVG or PDF) and terminal charts
package out

import (
	"image/color"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"

	"github.com/fcdiass/damagezone/dzone"
	"github.com/fcdiass/damagezone/geo"
	"github.com/fcdiass/damagezone/inicond"
	"github.com/fcdiass/damagezone/mat"
)

// colors
var (
	ClrBorder   = color.Black
	ClrLayer    = color.Gray{Y: 150}
	ClrFault    = color.RGBA{R: 200, A: 255}
	ClrEnvelope = color.RGBA{R: 30, G: 100, B: 220, A: 255}
)

// Geometry returns the subplot with the border, the interfaces between layers, the fault and
// the envelopes of the damage zone
//  npts -- number of points along envelopes
func Geometry(spec *dzone.Specification, npts int) *SplotDat {
	s := &SplotDat{Title: "model", Xlbl: "x", Ylbl: "y"}
	stack := spec.Layers()

	// border
	x, y := coords(append(stack.Border.Copy(), stack.Border[0]))
	s.Plot(x, y, "border", Fmt{C: ClrBorder, Lw: 1.5})

	// interfaces
	xmin, xmax, _, _ := stack.Border.Bounds()
	for i, lay := range stack.Layers {
		if i == 0 {
			continue
		}
		s.Plot([]float64{xmin, xmax}, []float64{lay.Top, lay.Top}, io.Sf("interface %d", i), Fmt{C: ClrLayer, Dashed: true})
	}

	// fault
	if spec.HasFault() {
		f := spec.Fault()
		tip0, tip1 := f.Tips()
		s.Plot([]float64{tip0.X, tip1.X}, []float64{tip0.Y, tip1.Y}, "fault", Fmt{C: ClrFault, Lw: 2, M: true})
		hanging, foot := f.Envelope(npts)
		x, y = coords(hanging)
		s.Plot(x, y, "hanging wall", Fmt{C: ClrEnvelope})
		x, y = coords(foot)
		s.Plot(x, y, "foot wall", Fmt{C: ClrEnvelope, Dashed: true})
	}
	return s
}

// Profile returns the subplot with the initial vertical and horizontal stresses versus depth
func Profile(prof *inicond.Profile, npts int) *SplotDat {
	s := &SplotDat{Title: "initial stresses", Xlbl: "depth", Ylbl: "stress"}
	depth, states := prof.Sample(npts)
	sv := make([]float64, len(states))
	sh := make([]float64, len(states))
	for i, st := range states {
		sv[i], sh[i] = st.Sv, st.Sh
	}
	s.Plot(depth, sv, "sv", Fmt{})
	s.Plot(depth, sh, "sh", Fmt{Dashed: true})
	return s
}

// Curves returns the subplots of a material law
//  MohrCoulomb: matching Drucker-Prager cones in the p-q plane up to pmax (0 => 10・c)
//  Hardening:   hardening (pc) and softening (pt) curves versus plastic volumetric strain
func Curves(law mat.Law, pmax float64) (splots []*SplotDat, err error) {
	err = mat.Switch(law, func(m *mat.MohrCoulomb) error {
		if pmax <= 0 {
			pmax = utl.Max(1, 10*m.Cohesion())
		}
		s := &SplotDat{Title: io.Sf("%s: Drucker-Prager cones", m.Name()), Xlbl: "p", Ylbl: "q"}
		p := utl.LinSpace(0, pmax, 11)
		for typ, name := range []string{"compression", "extension", "plane-strain"} {
			M, qy0, err := m.DruckerPrager(typ)
			if err != nil {
				return err
			}
			q := make([]float64, len(p))
			for i := range p {
				q[i] = qy0 + M*p[i]
			}
			s.Plot(p, q, name, Fmt{})
		}
		splots = append(splots, s)
		return nil
	}, func(m *mat.Hardening) error {
		for _, c := range []struct {
			name  string
			curve mat.Curve
		}{
			{"pc", m.HardeningCurve()},
			{"pt", m.SofteningCurve()},
		} {
			s := &SplotDat{Title: io.Sf("%s: %s", m.Name(), c.name), Xlbl: "epsPlVol", Ylbl: c.name}
			s.Plot(c.curve.Ys(), c.curve.Xs(), c.name, Fmt{M: true})
			splots = append(splots, s)
		}
		return nil
	})
	return
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

func coords(pts []geo.Point) (x, y []float64) {
	x = make([]float64, len(pts))
	y = make([]float64, len(pts))
	for i, p := range pts {
		x[i], y[i] = p.X, p.Y
	}
	return
}
