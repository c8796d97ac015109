// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package write

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/fcdiass/damagezone/dzone"
	"github.com/fcdiass/damagezone/inicond"
)

// Writer writes the files of a model; it implements dzone.Exporter
//
//   <dir>/<key>-spec.<enc>      specification
//   <dir>/<key>-outline.<enc>   mesh handle (if any)
//   <dir>/<key>-stress.dat      initial stresses at top and bottom of layers
//   <dir>/<key>-summary.<enc>   summary
//
//  All contents are encoded before any file is written; if writing fails, the files
//  already written are removed
type Writer struct {
	Enc     string // encoding type: "json", "yaml" or "gob"; "" => "json"
	Key     string // filename key; "" => "model"
	Verbose bool   // print messages
}

// Summary records the files written
type Summary struct {
	Id         string    `json:"id" yaml:"id"`                 // id of the specification
	Key        string    `json:"key" yaml:"key"`               // filename key
	Enc        string    `json:"enc" yaml:"enc"`               // encoding type
	Nlayers    int       `json:"nlayers" yaml:"nlayers"`       // number of layers
	HasFault   bool      `json:"hasFault" yaml:"hasFault"`     // the model has a fault
	Debug      bool      `json:"debug" yaml:"debug"`           // debug flag of the specification
	TimePoints []float64 `json:"timePoints" yaml:"timePoints"` // time points; nil => default stepping
	Files      []string  `json:"files" yaml:"files"`           // files written (without directory)
}

// Export writes the files into out.Dir
func (o Writer) Export(mesh dzone.Mesh, spec *dzone.Specification, out dzone.Output) (err error) {

	// check
	if spec == nil {
		return chk.Err("specification must not be nil")
	}
	enc, key := o.enc(), o.key()
	if err = CheckEnc(enc); err != nil {
		return
	}
	if out.Dir == "" {
		return chk.Err("output directory must be given")
	}

	// encode all contents
	sum := Summary{
		Id:         spec.ID(),
		Key:        key,
		Enc:        enc,
		Nlayers:    spec.NumLayers(),
		HasFault:   spec.HasFault(),
		Debug:      spec.Debug(),
		TimePoints: out.TimePoints,
	}
	var names []string
	var bufs []*bytes.Buffer
	add := func(suffix string, buf *bytes.Buffer) {
		names = append(names, io.Sf("%s-%s", key, suffix))
		bufs = append(bufs, buf)
	}
	buf, err := Encode(NewSpecData(spec), enc)
	if err != nil {
		return chk.Err("cannot encode specification:\n%v", err)
	}
	add("spec."+enc, buf)
	if mesh != nil {
		buf, err = Encode(mesh, enc)
		if err != nil {
			return chk.Err("cannot encode mesh:\n%v", err)
		}
		add("outline."+enc, buf)
	}
	prof, err := spec.Profile()
	if err != nil {
		return
	}
	add("stress.dat", StressTable(prof))
	sum.Files = append(append([]string{}, names...), io.Sf("%s-summary.%s", key, enc))
	buf, err = Encode(sum, enc)
	if err != nil {
		return chk.Err("cannot encode summary:\n%v", err)
	}
	add("summary."+enc, buf)

	// save files
	if err = os.MkdirAll(out.Dir, 0777); err != nil {
		return chk.Err("cannot create output directory:\n%v", err)
	}
	var written []string
	for i, name := range names {
		fn := filepath.Join(out.Dir, name)
		if err = save_file(fn, bufs[i], o.Verbose); err != nil {
			for _, w := range written {
				os.Remove(w)
			}
			return chk.Err("cannot write file <%s>:\n%v", fn, err)
		}
		written = append(written, fn)
	}
	return
}

// ReadSummary reads the summary written by Export
func ReadSummary(dir, key, enctype string) (*Summary, error) {
	var sum Summary
	if err := ReadFile(&sum, dir, io.Sf("%s-summary.%s", key, enctype), enctype); err != nil {
		return nil, err
	}
	return &sum, nil
}

// ReadSpecData reads the specification written by Export
func ReadSpecData(dir, key, enctype string) (*SpecData, error) {
	var dat SpecData
	if err := ReadFile(&dat, dir, io.Sf("%s-spec.%s", key, enctype), enctype); err != nil {
		return nil, err
	}
	return &dat, nil
}

// StressTable returns a table with the stresses at the top and bottom of each layer
func StressTable(prof *inicond.Profile) *bytes.Buffer {
	var buf bytes.Buffer
	io.Ff(&buf, "%6s%16s%16s%16s%16s%16s%16s%16s\n", "layer", "zmax", "zmin", "K0", "svTop", "shTop", "svBot", "shBot")
	for _, lay := range prof.Layers {
		io.Ff(&buf, "%6d%16.8e%16.8e%16.8e%16.8e%16.8e%16.8e%16.8e\n", lay.Index, lay.Zmax, lay.Zmin, lay.K0,
			lay.Top.Sv, lay.Top.Sh, lay.Bottom.Sv, lay.Bottom.Sh)
	}
	return &buf
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

func (o Writer) enc() string {
	if o.Enc == "" {
		return "json"
	}
	return o.Enc
}

func (o Writer) key() string {
	if o.Key == "" {
		return "model"
	}
	return o.Key
}

func save_file(filename string, buf *bytes.Buffer, verbose bool) (err error) {
	fil, err := os.Create(filename)
	if err != nil {
		return
	}
	_, err = fil.Write(buf.Bytes())
	if e := fil.Close(); err == nil {
		err = e
	}
	if err != nil {
		os.Remove(filename)
		return
	}
	if verbose {
		io.Pfblue2("file <%s> written\n", filename)
	}
	return
}
