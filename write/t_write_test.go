// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package write

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fcdiass/damagezone/dzone"
	"github.com/fcdiass/damagezone/fault"
	"github.com/fcdiass/damagezone/geo"
	"github.com/fcdiass/damagezone/inicond"
	"github.com/fcdiass/damagezone/layers"
	"github.com/fcdiass/damagezone/mat"
	"github.com/fcdiass/damagezone/msh"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// model returns the model with one Mohr-Coulomb layer and a parabolic damage zone
func model(tst *testing.T) *dzone.Specification {
	m, err := mat.NewMohrCoulomb(mat.ExampleMohrCoulomb())
	require.NoError(tst, err)
	dist, err := fault.NewParabolic(0.1)
	require.NoError(tst, err)
	lin, err := inicond.NewLinear(0, []float64{0.012}, []float64{1})
	require.NoError(tst, err)
	b := dzone.NewBuilder()
	require.NoError(tst, b.AddFaultByLengthAngle(1000, geo.Degrees(-60), geo.P(0, -750), dist))
	require.NoError(tst, b.SetLayers([]mat.Law{m}, []int{1}, []geo.Point{{X: -1750, Y: -2600}, {X: 1750, Y: 0}}))
	require.NoError(tst, b.FixAllDofs(layers.DofX, layers.DofY))
	require.NoError(tst, b.SetStress(lin, true))
	spec, err := b.Build()
	require.NoError(tst, err)
	return spec
}

func Test_write01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("write01. json, yaml and gob")

	spec := model(tst)
	mesh, err := msh.Outliner{Npts: 11}.Outline(spec, true)
	require.NoError(tst, err)

	for _, enc := range []string{"json", "yaml", "gob"} {
		dir := tst.TempDir()
		w := Writer{Enc: enc, Key: "ex01"}
		out := dzone.Output{Dir: filepath.Join(dir, "results"), TimePoints: []float64{0, 0.5, 1}}
		require.NoError(tst, w.Export(mesh, spec, out), enc)

		sum, err := ReadSummary(out.Dir, "ex01", enc)
		require.NoError(tst, err, enc)
		assert.Equal(tst, spec.ID(), sum.Id)
		assert.Equal(tst, enc, sum.Enc)
		assert.Equal(tst, 1, sum.Nlayers)
		assert.True(tst, sum.HasFault)
		assert.Equal(tst, []float64{0, 0.5, 1}, sum.TimePoints)
		assert.Equal(tst, []string{
			"ex01-spec." + enc,
			"ex01-outline." + enc,
			"ex01-stress.dat",
			"ex01-summary." + enc,
		}, sum.Files)
		for _, fn := range sum.Files {
			assert.FileExists(tst, filepath.Join(out.Dir, fn))
		}

		dat, err := ReadSpecData(out.Dir, "ex01", enc)
		require.NoError(tst, err, enc)
		require.NotNil(tst, dat.Fault)
		assert.InDelta(tst, 1000, dat.Fault.Length, 1e-12)
		assert.InDelta(tst, -60, dat.Fault.Angle, 1e-12)
		assert.Equal(tst, "parabolic", dat.Fault.Distribution)
		require.Len(tst, dat.Fault.Widths, 11)
		assert.InDelta(tst, 0, dat.Fault.Widths[0], 1e-15)
		assert.InDelta(tst, 0.1, dat.Fault.Widths[5], 1e-15)
		require.Len(tst, dat.Layers, 1)
		assert.Equal(tst, "mc", dat.Layers[0].Material.Model)
		assert.InDelta(tst, 0, dat.Layers[0].Top, 1e-12)
		assert.InDelta(tst, -2600, dat.Layers[0].Bottom, 1e-12)
		require.Len(tst, dat.Borders, 4)
		for _, b := range dat.Borders {
			assert.Equal(tst, []int{1, 2}, b.Dofs)
		}
		assert.Equal(tst, "linear", dat.Stress.Type)
		assert.Equal(tst, []float64{0.012}, dat.Stress.Gradients)
	}
}

func Test_write02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("write02. defaults and stress table")

	spec := model(tst)
	dir := tst.TempDir()
	require.NoError(tst, Writer{}.Export(nil, spec, dzone.Output{Dir: dir}))

	sum, err := ReadSummary(dir, "model", "json")
	require.NoError(tst, err)
	assert.Nil(tst, sum.TimePoints)
	assert.Equal(tst, []string{"model-spec.json", "model-stress.dat", "model-summary.json"}, sum.Files)
	assert.NoFileExists(tst, filepath.Join(dir, "model-outline.json"))

	b, err := os.ReadFile(filepath.Join(dir, "model-stress.dat"))
	require.NoError(tst, err)
	lines := strings.Split(strings.TrimSpace(string(b)), "\n")
	require.Len(tst, lines, 2)
	assert.Contains(tst, lines[0], "svBot")
	fields := strings.Fields(lines[1])
	require.Len(tst, fields, 8)
	assert.Equal(tst, "0", fields[0])
}

func Test_write03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("write03. errors")

	spec := model(tst)
	dir := tst.TempDir()

	assert.Error(tst, Writer{Enc: "xml"}.Export(nil, spec, dzone.Output{Dir: dir}))
	assert.Error(tst, Writer{}.Export(nil, nil, dzone.Output{Dir: dir}))
	assert.Error(tst, Writer{}.Export(nil, spec, dzone.Output{}))
	assert.Error(tst, CheckEnc("toml"))
	assert.NoError(tst, CheckEnc("gob"))

	// output directory is a file
	fn := filepath.Join(dir, "afile")
	require.NoError(tst, os.WriteFile(fn, []byte("x"), 0644))
	assert.Error(tst, Writer{}.Export(nil, spec, dzone.Output{Dir: fn}))

	// summary name taken by a directory: nothing is left behind
	sub := filepath.Join(dir, "sub")
	require.NoError(tst, os.MkdirAll(filepath.Join(sub, "model-summary.json"), 0777))
	notes := filepath.Join(sub, "notes.txt")
	require.NoError(tst, os.WriteFile(notes, []byte("x"), 0644))
	assert.Error(tst, Writer{}.Export(nil, spec, dzone.Output{Dir: sub}))
	assert.FileExists(tst, notes)
	assert.NoFileExists(tst, filepath.Join(sub, "model-spec.json"))
	assert.NoFileExists(tst, filepath.Join(sub, "model-stress.dat"))
	assert.DirExists(tst, filepath.Join(sub, "model-summary.json"))

	// missing files
	_, err := ReadSummary(dir, "nokey", "json")
	assert.Error(tst, err)
}
