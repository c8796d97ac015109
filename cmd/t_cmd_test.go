// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fcdiass/damagezone/errs"
	"github.com/fcdiass/damagezone/write"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// run runs the root command with args and returns its output
func run(args ...string) (string, error) {
	var buf bytes.Buffer
	root := NewRoot()
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func Test_check01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("check01")

	res, err := run("check", "../inp/data/ex01.dzm")
	require.NoError(tst, err)
	io.Pf("%s", res)
	assert.Contains(tst, res, "model is consistent")
	assert.Contains(tst, res, "mc[0]")
	assert.Contains(tst, res, "parabolic")

	res, err = run("check", "../inp/data/ex02.yaml")
	require.NoError(tst, err)
	assert.Contains(tst, res, "hardening[0]")
	assert.Contains(tst, res, "constant")

	res, err = run("check", "../inp/data/ex01.toml")
	require.NoError(tst, err)
	assert.Contains(tst, res, "mc[4] mc[6]")

	_, err = run("check")
	assert.Error(tst, err)
	_, err = run("check", "missing.dzm")
	assert.Error(tst, err)

	// inconsistent model
	dir := tst.TempDir()
	fn := filepath.Join(dir, "bad.yaml")
	b, err := os.ReadFile("../inp/data/ex02.yaml")
	require.NoError(tst, err)
	require.NoError(tst, os.WriteFile(fn, bytes.Replace(b, []byte("verify: false"), []byte("verify: true"), 1), 0644))
	_, err = run("check", fn)
	assert.True(tst, errs.Is(err, errs.ErrIncompatibleInitialState), "%v", err)
}

func Test_write01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("write01")

	dir := tst.TempDir()
	res, err := run("write", "../inp/data/ex01.toml", "--dir", dir, "--enc", "yaml")
	require.NoError(tst, err)
	assert.Contains(tst, res, "ex01-summary.yaml")

	sum, err := write.ReadSummary(dir, "ex01", "yaml")
	require.NoError(tst, err)
	assert.Equal(tst, 2, sum.Nlayers)
	assert.True(tst, sum.Debug)
	assert.Equal(tst, []float64{0, 0.5, 1}, sum.TimePoints)
	assert.FileExists(tst, filepath.Join(dir, "ex01-outline.yaml"))

	// key and bad encoding
	_, err = run("write", "../inp/data/ex01.dzm", "-d", dir, "-k", "other")
	require.NoError(tst, err)
	assert.FileExists(tst, filepath.Join(dir, "other-spec.json"))
	_, err = run("write", "../inp/data/ex01.dzm", "-d", dir, "-e", "xml")
	assert.Error(tst, err)
}

func Test_profile01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("profile01")

	res, err := run("profile", "../inp/data/ex01.toml", "--depth", "0,1299.038105676658", "--chart", "--width", "30", "--height", "8")
	require.NoError(tst, err)
	io.Pf("%s", res)
	assert.Contains(tst, res, "svBot")
	assert.Contains(tst, res, "depth=0: sv=0 sh=0")
	assert.Contains(tst, res, "initial stresses")

	_, err = run("profile", "../inp/data/ex01.toml", "--depth", "5000")
	assert.True(tst, errs.Is(err, errs.ErrInvalidGeometry), "%v", err)
}

func Test_plot01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("plot01")

	dir := tst.TempDir()
	res, err := run("plot", "../inp/data/ex02.yaml", "--dir", dir, "--npts", "11")
	require.NoError(tst, err)
	assert.Contains(tst, res, "ex02.png")
	assert.FileExists(tst, filepath.Join(dir, "ex02.png"))

	_, err = run("plot", "../inp/data/ex01.dzm", "-d", dir, "-f", "ex01.svg")
	require.NoError(tst, err)
	assert.FileExists(tst, filepath.Join(dir, "ex01.svg"))

	res, err = run("curves", "../inp/data/ex02.yaml", "--width", "30", "--height", "8")
	require.NoError(tst, err)
	assert.Contains(tst, res, `material "softrock" (hardening)`)
	assert.Contains(tst, res, "hardening: pt")

	res, err = run("curves", "../inp/data/ex01.toml")
	require.NoError(tst, err)
	assert.Contains(tst, res, `material "lower" (mc)`)
	assert.Contains(tst, res, "Drucker-Prager")
}

func Test_version01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("version01")

	res, err := run("version")
	require.NoError(tst, err)
	assert.Equal(tst, "damagezone v"+Version+"\n", res)
}

func Test_watch01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("watch01")

	dir := tst.TempDir()
	fn := filepath.Join(dir, "model.dzm")
	b, err := os.ReadFile("../inp/data/ex01.dzm")
	require.NoError(tst, err)
	require.NoError(tst, os.WriteFile(fn, b, 0644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	changed := make(chan struct{}, 16)
	done := make(chan error, 1)
	go func() {
		done <- watchFile(ctx, fn, func() { changed <- struct{}{} })
	}()

	// other files are ignored
	go func() {
		time.Sleep(100 * time.Millisecond)
		os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0644)
		os.WriteFile(fn, b, 0644)
	}()

	select {
	case <-changed:
	case <-time.After(2 * time.Second):
		tst.Fatal("timeout waiting for file change event")
	}
	cancel()
	select {
	case err = <-done:
		assert.NoError(tst, err)
	case <-time.After(2 * time.Second):
		tst.Fatal("watch did not stop")
	}
}
