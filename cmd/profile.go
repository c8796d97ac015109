// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fcdiass/damagezone/out"
	"github.com/fcdiass/damagezone/write"
)

func newProfileCmd() *cobra.Command {
	var npts, width, height int
	var chart bool
	var depths []float64
	cmd := &cobra.Command{
		Use:   "profile <model-file>",
		Short: "Print the initial stresses of a model",
		Long: `Print the initial vertical and horizontal stresses at the top and bottom of
each layer. Compression is negative. Optionally, print the stresses at given
depths below the top of the stack and a chart of the profile.

Examples:
  damagezone profile ex01.dzm
  damagezone profile ex01.dzm --depth 100,1500 --chart`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, spec, err := load(args[0])
			if err != nil {
				return err
			}
			prof, err := spec.Profile()
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprint(w, write.StressTable(prof).String())
			for _, d := range depths {
				st, err := prof.StressAt(d)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "depth=%g: sv=%g sh=%g p=%g q=%g\n", d, st.Sv, st.Sh, st.Mean(), st.Deviatoric())
			}
			if chart {
				fmt.Fprintln(w, out.Profile(prof, npts).Ascii(width, height))
			}
			return nil
		},
	}
	cmd.Flags().Float64SliceVar(&depths, "depth", nil, "Depths below the top of the stack")
	cmd.Flags().BoolVar(&chart, "chart", false, "Print a chart of the profile")
	cmd.Flags().IntVar(&npts, "npts", 21, "Number of points along the profile")
	cmd.Flags().IntVar(&width, "width", 60, "Width of chart")
	cmd.Flags().IntVar(&height, "height", 15, "Height of chart")
	return cmd
}
