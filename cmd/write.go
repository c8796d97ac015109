// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/spf13/cobra"

	"github.com/fcdiass/damagezone/dzone"
	"github.com/fcdiass/damagezone/msh"
	"github.com/fcdiass/damagezone/write"
)

func newWriteCmd() *cobra.Command {
	var dir, enc, key string
	var recombine, verbose bool
	var npts int
	cmd := &cobra.Command{
		Use:   "write <model-file>",
		Short: "Build a model and write its files",
		Long: `Build the model, generate its outline for meshing and write the files:
specification, outline, initial stresses and summary. Flags override the
output section of the model file.

Examples:
  damagezone write ex01.dzm
  damagezone write ex02.yaml --dir /tmp/ex02 --enc gob`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			model, spec, err := load(args[0])
			if err != nil {
				return err
			}
			o := model.Output
			if cmd.Flags().Changed("dir") {
				o.Dir = dir
			}
			if cmd.Flags().Changed("enc") {
				o.Enc = enc
			}
			if cmd.Flags().Changed("key") {
				o.Key = key
			}
			if cmd.Flags().Changed("recombine") {
				o.Recombine = recombine
			}
			if cmd.Flags().Changed("npts") {
				o.Npts = npts
			}
			if o.Dir == "" {
				return chk.Err("output directory must be given in the model file or with --dir")
			}
			if o.Enc == "" {
				o.Enc = "json"
			}
			if o.Key == "" {
				o.Key = model.Key
			}
			w := write.Writer{Enc: o.Enc, Key: o.Key, Verbose: verbose}
			err = dzone.Run(spec, msh.Outliner{Npts: o.Npts}, w, o.Recombine, dzone.Output{Dir: o.Dir, TimePoints: o.TimePoints})
			if err != nil {
				return err
			}
			sum, err := write.ReadSummary(o.Dir, o.Key, o.Enc)
			if err != nil {
				return err
			}
			for _, fn := range sum.Files {
				fmt.Fprintf(cmd.OutOrStdout(), "file <%s> written\n", filepath.Join(o.Dir, fn))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&dir, "dir", "d", "", "Output directory")
	cmd.Flags().StringVarP(&enc, "enc", "e", "json", "Encoding type: json, yaml or gob")
	cmd.Flags().StringVarP(&key, "key", "k", "", "Filename key; default: key of model file")
	cmd.Flags().BoolVar(&recombine, "recombine", false, "Recombine triangles into quadrilaterals")
	cmd.Flags().IntVar(&npts, "npts", 0, "Number of points along the envelopes of the damage zone")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show messages")
	return cmd
}
