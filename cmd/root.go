// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package cmd implements the command line interface
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/fcdiass/damagezone/dzone"
	"github.com/fcdiass/damagezone/inp"
)

// NewRoot returns the root command with all subcommands
func NewRoot() *cobra.Command {
	root := &cobra.Command{
		Use:   "damagezone",
		Short: "Parametric damage-zone model builder",
		Long: `damagezone -- parametric damage-zone models

Builds and validates models made of a fault with its damage zone embedded in a
stack of layers, each layer with a constitutive law, an initial stress field
and boundary conditions. Consistent models are exported for meshing and
analysis.

Model files: .dzm or .json (JSON), .yaml or .yml (YAML) and .toml (TOML).`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.AddCommand(
		newCheckCmd(),
		newWriteCmd(),
		newProfileCmd(),
		newPlotCmd(),
		newCurvesCmd(),
		newWatchCmd(),
		newVersionCmd(),
	)
	return root
}

// Execute runs the root command
func Execute() error {
	return NewRoot().Execute()
}

// load reads the model file and builds the specification
func load(path string) (*inp.Model, *dzone.Specification, error) {
	model, err := inp.Read(path)
	if err != nil {
		return nil, nil, err
	}
	spec, err := model.Build()
	if err != nil {
		return model, nil, err
	}
	return model, spec, nil
}
