// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dzone

import (
	"github.com/fcdiass/damagezone/errs"
)

// Mesh is the handle returned by a Mesher and consumed by an Exporter
type Mesh interface{}

// Mesher generates the mesh of a model
type Mesher interface {
	Generate(spec *Specification, recombine bool) (Mesh, error)
}

// Exporter writes the solver input files of a model
type Exporter interface {
	Export(mesh Mesh, spec *Specification, out Output) error
}

// Output holds the settings of the export
type Output struct {
	Dir        string    // output directory
	TimePoints []float64 // time points; nil => default stepping of the solver
}

// Run generates the mesh of spec and exports it
//  Mesher failures are returned with kind errs.ErrMeshGeneration; the original error
//  remains available to errors.Is and errors.As
func Run(spec *Specification, mesher Mesher, exporter Exporter, recombine bool, out Output) error {
	if spec == nil {
		return errs.New(errs.ErrIncompleteModel, "run", "specification must not be nil")
	}
	if mesher == nil || exporter == nil {
		return errs.New(errs.ErrIncompleteModel, "run", "mesher and exporter must be given")
	}
	mesh, err := mesher.Generate(spec, recombine)
	if err != nil {
		if errs.Is(err, errs.ErrMeshGeneration) {
			return err
		}
		return errs.Wrap(errs.ErrMeshGeneration, "mesh", err)
	}
	return exporter.Export(mesh, spec, out)
}
