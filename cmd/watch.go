// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

func newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch <model-file>",
		Short: "Check a model whenever its file changes",
		Long: `Check the model once and then again whenever the model file is written,
until interrupted (Ctrl+C).

Example:
  damagezone watch ex01.dzm`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			w := cmd.OutOrStdout()
			check := func() {
				model, spec, err := load(args[0])
				if err != nil {
					fmt.Fprintf(w, "ERROR: %v\n", err)
					return
				}
				report(w, model, spec)
			}
			check()
			return watchFile(ctx, args[0], check)
		},
	}
	return cmd
}

// watchFile calls fcn whenever the file at path is written or re-created, until ctx is done
func watchFile(ctx context.Context, path string, fcn func()) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	// watch the directory: the file may be replaced
	if err = watcher.Add(filepath.Dir(abs)); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				fcn()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return err
		}
	}
}
