// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"image/color"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
	"github.com/guptarohit/asciigraph"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Fmt holds the style of a plot entity
type Fmt struct {
	C      color.Color // color; nil => from palette
	Lw     float64     // line width in points; 0 => 1
	Dashed bool        // dashed line
	M      bool        // draw markers at points
	L      string      // label; "" => alias
}

// PltEntity stores all data for a plot entity (X vs Y)
type PltEntity struct {
	Alias string    // alias
	X     []float64 // x-values
	Y     []float64 // y-values
	Style Fmt       // style
}

// SplotDat stores all data for one subplot
type SplotDat struct {
	Title string       // title of subplot
	Xlbl  string       // x-axis label
	Ylbl  string       // y-axis label
	Data  []*PltEntity // data and styles to be plotted
}

// Figure holds subplots drawn side by side
type Figure struct {
	Splots  []*SplotDat // all subplots
	Csplot  *SplotDat   // current subplot
	Width   vg.Length   // width of each subplot; 0 => 12cm
	Height  vg.Length   // height of each subplot; 0 => 9cm
	Verbose bool        // show messages
}

// Splot activates a new subplot
func (o *Figure) Splot(title, xlbl, ylbl string) *SplotDat {
	s := &SplotDat{Title: title, Xlbl: xlbl, Ylbl: ylbl}
	o.Add(s)
	return s
}

// Add adds subplot and makes it current
func (o *Figure) Add(s *SplotDat) {
	o.Splots = append(o.Splots, s)
	o.Csplot = s
}

// Plot adds data to the current subplot
func (o *Figure) Plot(x, y []float64, alias string, fm Fmt) {
	if o.Csplot == nil {
		o.Splot("", "", "")
	}
	o.Csplot.Plot(x, y, alias, fm)
}

// Plot adds data to subplot
func (o *SplotDat) Plot(x, y []float64, alias string, fm Fmt) {
	o.Data = append(o.Data, &PltEntity{Alias: alias, X: x, Y: y, Style: fm})
}

// Build builds the plot of subplot
func (o *SplotDat) Build() (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = o.Title
	p.X.Label.Text = o.Xlbl
	p.Y.Label.Text = o.Ylbl
	p.Add(plotter.NewGrid())
	for i, d := range o.Data {
		if len(d.X) != len(d.Y) {
			return nil, chk.Err("lengths of x- and y-series of %q are different. len(x)=%d, len(y)=%d", d.Alias, len(d.X), len(d.Y))
		}
		if len(d.X) == 0 {
			continue
		}
		clr := d.Style.C
		if clr == nil {
			clr = plotutil.Color(i)
		}
		lw := d.Style.Lw
		if lw <= 0 {
			lw = 1
		}
		pts := xys(d.X, d.Y)
		l, err := plotter.NewLine(pts)
		if err != nil {
			return nil, err
		}
		l.LineStyle.Color = clr
		l.LineStyle.Width = vg.Points(lw)
		if d.Style.Dashed {
			l.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
		}
		p.Add(l)
		if d.Style.M {
			s, err := plotter.NewScatter(pts)
			if err != nil {
				return nil, err
			}
			s.GlyphStyle.Color = clr
			s.GlyphStyle.Radius = vg.Points(2)
			s.GlyphStyle.Shape = draw.CircleGlyph{}
			p.Add(s)
		}
		lbl := d.Style.L
		if lbl == "" {
			lbl = d.Alias
		}
		if lbl != "" {
			p.Legend.Add(lbl, l)
		}
	}
	return p, nil
}

// Ascii returns a terminal chart of subplot
//  The series are resampled over a common x-grid with width points
func (o *SplotDat) Ascii(width, height int) string {
	if width < 2 {
		width = 60
	}
	if height < 2 {
		height = 15
	}
	xmin, xmax := math.Inf(1), math.Inf(-1)
	for _, d := range o.Data {
		for _, x := range d.X {
			xmin = utl.Min(xmin, x)
			xmax = utl.Max(xmax, x)
		}
	}
	if xmin > xmax {
		return ""
	}
	var series [][]float64
	var names []string
	for _, d := range o.Data {
		if len(d.X) == 0 || len(d.X) != len(d.Y) {
			continue
		}
		series = append(series, Resample(d.X, d.Y, xmin, xmax, width))
		names = append(names, d.Alias)
	}
	if len(series) == 0 {
		return ""
	}
	caption := io.Sf("%s: %s; %s from %g to %g", o.Title, strings.Join(names, ", "), o.Xlbl, xmin, xmax)
	return asciigraph.PlotMany(series, asciigraph.Height(height), asciigraph.Caption(caption))
}

// Draw draws all subplots into one file
//  dirout -- directory to save figure
//  fname  -- file name with extension; e.g. model.png, model.svg or model.pdf
func (o *Figure) Draw(dirout, fname string) (err error) {

	// plots
	nplots := len(o.Splots)
	if nplots == 0 {
		return chk.Err("there are no subplots to draw")
	}
	nr, nc := utl.BestSquare(nplots)
	plots := make([][]*plot.Plot, nr)
	var k int
	for i := 0; i < nr; i++ {
		plots[i] = make([]*plot.Plot, nc)
		for j := 0; j < nc; j++ {
			if k < nplots {
				plots[i][j], err = o.Splots[k].Build()
				if err != nil {
					return
				}
			} else {
				plots[i][j] = plot.New()
				plots[i][j].HideAxes()
			}
			k += 1
		}
	}

	// canvas
	w, h := o.Width, o.Height
	if w <= 0 {
		w = 12 * vg.Centimeter
	}
	if h <= 0 {
		h = 9 * vg.Centimeter
	}
	format := strings.ToLower(strings.TrimPrefix(filepath.Ext(fname), "."))
	c, err := draw.NewFormattedCanvas(vg.Length(nc)*w, vg.Length(nr)*h, format)
	if err != nil {
		return chk.Err("cannot draw figure %q:\n%v", fname, err)
	}
	tiles := draw.Tiles{Rows: nr, Cols: nc, PadX: vg.Millimeter, PadY: vg.Millimeter}
	canvases := plot.Align(plots, tiles, draw.New(c))
	for i := 0; i < nr; i++ {
		for j := 0; j < nc; j++ {
			plots[i][j].Draw(canvases[i][j])
		}
	}

	// save
	if err = os.MkdirAll(dirout, 0777); err != nil {
		return chk.Err("cannot create directory %q:\n%v", dirout, err)
	}
	fn := filepath.Join(dirout, fname)
	fil, err := os.Create(fn)
	if err != nil {
		return
	}
	defer func() {
		if e := fil.Close(); err == nil {
			err = e
		}
	}()
	if _, err = c.WriteTo(fil); err != nil {
		return
	}
	if o.Verbose {
		io.Pfblue2("file <%s> written\n", fn)
	}
	return
}

// Resample interpolates y(x) linearly at n points evenly spaced in [xmin, xmax]
//  Points outside the range of x are NaN. x needs not be sorted
func Resample(x, y []float64, xmin, xmax float64, n int) (res []float64) {
	res = make([]float64, n)
	idx := make([]int, len(x))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return x[idx[a]] < x[idx[b]] })
	for k, xk := range utl.LinSpace(xmin, xmax, n) {
		res[k] = math.NaN()
		for m := 0; m < len(idx); m++ {
			i := idx[m]
			if xk == x[i] {
				res[k] = y[i]
				break
			}
			if m+1 < len(idx) {
				j := idx[m+1]
				if xk > x[i] && xk < x[j] {
					res[k] = y[i] + (y[j]-y[i])*(xk-x[i])/(x[j]-x[i])
					break
				}
			}
		}
	}
	return
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

func xys(x, y []float64) plotter.XYs {
	pts := make(plotter.XYs, len(x))
	for i := range x {
		pts[i].X, pts[i].Y = x[i], y[i]
	}
	return pts
}
