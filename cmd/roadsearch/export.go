// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/roadsearch/loader"
)

func newExportCommand(in *input, stdout, stderr io.Writer) *cobra.Command {
	var output, name string
	exportCmd := &cobra.Command{
		Use:          "export [data-file]",
		Short:        "Convert a road network to the YAML format.",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := in.resolve(cmd.Flags(), args)
			if err != nil {
				return err
			}
			log := newLogger(cfg, stderr)

			g, _, err := loader.LoadFile(cfg.Data, cfg.LoaderOptions(log)...)
			if err != nil {
				return err
			}
			if name == "" {
				name = strings.TrimSuffix(filepath.Base(cfg.Data), filepath.Ext(cfg.Data))
			}

			w := stdout
			if output != "" && output != "-" {
				f, err := os.Create(output)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}
			if err = loader.WriteYAML(w, loader.Export(g, name)); err != nil {
				return fmt.Errorf("export: %w", err)
			}
			log.WithField("output", output).Debug("exported")

			return nil
		},
	}
	exportCmd.Flags().StringVarP(&output, "output", "o", "-", "destination file, - for stdout")
	exportCmd.Flags().StringVar(&name, "name", "", "document name (default: data file base name)")

	return exportCmd
}
