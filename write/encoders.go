// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package write implements the export of model specifications to files
package write

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
	goio "io"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"gopkg.in/yaml.v3"
)

// encoding types
var encTypes = []string{"json", "yaml", "gob"}

// Encoder defines encoders; e.g. gob, json or yaml
type Encoder interface {
	Encode(e interface{}) error
}

// Decoder defines decoders; e.g. gob, json or yaml
type Decoder interface {
	Decode(e interface{}) error
}

// GetEncoder returns a new encoder
func GetEncoder(w goio.Writer, enctype string) Encoder {
	switch enctype {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc
	case "yaml":
		return yaml.NewEncoder(w)
	}
	return gob.NewEncoder(w)
}

// GetDecoder returns a new decoder
func GetDecoder(r goio.Reader, enctype string) Decoder {
	switch enctype {
	case "json":
		return json.NewDecoder(r)
	case "yaml":
		return yaml.NewDecoder(r)
	}
	return gob.NewDecoder(r)
}

// CheckEnc checks the encoding type
func CheckEnc(enctype string) error {
	for _, e := range encTypes {
		if e == enctype {
			return nil
		}
	}
	return chk.Err("encoding type %q is invalid; options are %v", enctype, encTypes)
}

// Encode encodes v into a new buffer
func Encode(v interface{}, enctype string) (*bytes.Buffer, error) {
	var buf bytes.Buffer
	enc := GetEncoder(&buf, enctype)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	if c, ok := enc.(goio.Closer); ok {
		if err := c.Close(); err != nil {
			return nil, err
		}
	}
	return &buf, nil
}

// ReadFile decodes the file dir/fn into v
func ReadFile(v interface{}, dir, fn, enctype string) (err error) {
	fil, err := os.Open(filepath.Join(dir, fn))
	if err != nil {
		return
	}
	defer func() {
		if e := fil.Close(); err == nil {
			err = e
		}
	}()
	err = GetDecoder(fil, enctype).Decode(v)
	if err != nil {
		return chk.Err("cannot decode file %q:\n%v", fn, err)
	}
	return
}
