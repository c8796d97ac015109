// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/spf13/cobra"

	"github.com/fcdiass/damagezone/inp"
	"github.com/fcdiass/damagezone/mat"
	"github.com/fcdiass/damagezone/out"
)

func newPlotCmd() *cobra.Command {
	var dir, fig string
	var npts int
	cmd := &cobra.Command{
		Use:   "plot <model-file>",
		Short: "Draw a figure with the geometry, stresses and material curves of a model",
		Long: `Draw a figure with the border, the interfaces between layers, the fault and
the envelopes of its damage zone, the initial stress profile and the curves of
each material law in use. The format is given by the extension of the figure
file: png, svg or pdf.

Examples:
  damagezone plot ex01.dzm
  damagezone plot ex02.yaml --dir /tmp --fig ex02.svg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			model, spec, err := load(args[0])
			if err != nil {
				return err
			}
			if fig == "" {
				fig = model.Key + ".png"
			}
			var f out.Figure
			f.Add(out.Geometry(spec, npts))
			prof, err := spec.Profile()
			if err != nil {
				return err
			}
			f.Add(out.Profile(prof, npts))
			seen := make(map[mat.Law]bool)
			for _, law := range spec.Layers().Materials() {
				if seen[law] {
					continue
				}
				seen[law] = true
				splots, err := out.Curves(law, 0)
				if err != nil {
					return err
				}
				for _, s := range splots {
					f.Add(s)
				}
			}
			if err = f.Draw(dir, fig); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "file <%s> written\n", filepath.Join(dir, fig))
			return nil
		},
	}
	cmd.Flags().StringVarP(&dir, "dir", "d", ".", "Output directory")
	cmd.Flags().StringVarP(&fig, "fig", "f", "", "Figure file; default: <key>.png")
	cmd.Flags().IntVar(&npts, "npts", 21, "Number of points along envelopes and profile")
	return cmd
}

func newCurvesCmd() *cobra.Command {
	var width, height int
	var pmax float64
	cmd := &cobra.Command{
		Use:   "curves <model-file>",
		Short: "Print charts of the material laws of a model",
		Long: `Print terminal charts of every material in the model file: the hardening and
softening curves of hardening laws and the matching Drucker-Prager cones of
Mohr-Coulomb laws.

Examples:
  damagezone curves ex02.yaml
  damagezone curves ex01.dzm --pmax 100`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			model, err := inp.Read(args[0])
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for _, m := range model.Materials {
				law, err := m.Law()
				if err != nil {
					return err
				}
				splots, err := out.Curves(law, pmax)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "material %q (%s)\n", m.Name, law.Name())
				for _, s := range splots {
					fmt.Fprintln(w, s.Ascii(width, height))
					fmt.Fprintln(w)
				}
			}
			if len(model.Materials) == 0 {
				return chk.Err("model %q has no materials", model.Key)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&width, "width", 60, "Width of charts")
	cmd.Flags().IntVar(&height, "height", 15, "Height of charts")
	cmd.Flags().Float64Var(&pmax, "pmax", 0, "Max mean stress for Drucker-Prager cones; 0 => 10・c")
	return cmd
}
