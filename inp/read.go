// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Formats holds the input formats; file extension => format
var Formats = map[string]string{
	".dzm":  "json",
	".json": "json",
	".yaml": "yaml",
	".yml":  "yaml",
	".toml": "toml",
}

// Read reads a model input file; the format is selected by the file extension
//  Input:
//   path -- file path; e.g. "data/ex01.dzm". a path without extension is taken as .dzm
func Read(path string) (*Model, error) {
	if io.FnExt(path) == "" {
		path += ".dzm"
	}
	format, ok := Formats[strings.ToLower(io.FnExt(path))]
	if !ok {
		return nil, chk.Err("extension of file %q is not supported; options are .dzm, .json, .yaml, .yml and .toml", path)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, chk.Err("cannot read model file %q:\n%v", path, err)
	}
	o, err := Decode(b, format)
	if err != nil {
		return nil, chk.Err("cannot decode model file %q:\n%v", path, err)
	}
	o.Key = io.FnKey(path)
	return o, nil
}

// Decode decodes model data
//  format -- "json", "yaml" or "toml"
func Decode(b []byte, format string) (o *Model, err error) {
	o = new(Model)
	switch format {
	case "json":
		dec := json.NewDecoder(bytes.NewReader(b))
		dec.DisallowUnknownFields()
		err = dec.Decode(o)
	case "yaml":
		dec := yaml.NewDecoder(bytes.NewReader(b))
		dec.KnownFields(true)
		err = dec.Decode(o)
	case "toml":
		dec := toml.NewDecoder(bytes.NewReader(b))
		dec.DisallowUnknownFields()
		err = dec.Decode(o)
	default:
		return nil, chk.Err("format %q is invalid; options are \"json\", \"yaml\" and \"toml\"", format)
	}
	if err != nil {
		return nil, err
	}
	return
}
