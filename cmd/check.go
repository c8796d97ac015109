// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	goio "io"
	"strings"
	"text/tabwriter"

	"github.com/cpmech/gosl/io"
	"github.com/spf13/cobra"

	"github.com/fcdiass/damagezone/dzone"
	"github.com/fcdiass/damagezone/inp"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <model-file>",
		Short: "Build and validate a model",
		Long: `Read a model file, apply it to a new builder and build the specification.
All geometric, material and stress checks are carried out; the command fails
with the first violated constraint.

Examples:
  damagezone check ex01.dzm
  damagezone check ex02.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			model, spec, err := load(args[0])
			if err != nil {
				return err
			}
			report(cmd.OutOrStdout(), model, spec)
			return nil
		},
	}
}

// report prints the summary of a model
func report(w goio.Writer, model *inp.Model, spec *dzone.Specification) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	line := func(key, format string, prm ...interface{}) {
		tw.Write([]byte(key + "\t" + io.Sf(format, prm...) + "\n"))
	}
	line("model", "%s", model.Key)
	if model.Desc != "" {
		line("description", "%s", model.Desc)
	}
	line("id", "%s", spec.ID())
	if spec.HasFault() {
		f := spec.Fault()
		tip0, tip1 := f.Tips()
		line("fault", "length=%g angle=%g° tips=%v %v", f.Length, f.Angle.Deg(), tip0, tip1)
		line("damage zone", "%s (max half-width sampled: %g)", f.Distribution.Name(), maxWidth(spec))
	} else {
		line("fault", "none")
	}
	stack := spec.Layers()
	models := make([]string, stack.NumLayers())
	for i, lay := range stack.Layers {
		models[i] = io.Sf("%s[%d]", lay.Material.Name(), lay.Subdivisions)
	}
	line("layers", "%d: %s", stack.NumLayers(), strings.Join(models, " "))
	xmin, xmax, ymin, ymax := stack.Border.Bounds()
	line("border", "%d edges; x in [%g, %g], y in [%g, %g]", len(stack.Borders), xmin, xmax, ymin, ymax)
	line("stress", "%v", spec.Stress())
	line("verify", "%v", spec.VerifyCompatibility())
	line("debug", "%v", spec.Debug())
	tw.Flush()
	goio.WriteString(w, "model is consistent\n")
}

func maxWidth(spec *dzone.Specification) (w float64) {
	f := spec.Fault()
	for i := 0; i <= 100; i++ {
		if v := f.Width(float64(i) / 100.0); v > w {
			w = v
		}
	}
	return
}
