// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/cld/sim"
)

func newSimulateCmd(a *app) *cobra.Command {
	var (
		configPath string
		steps      int
		bins       int
	)

	cmd := &cobra.Command{
		Use:   "simulate [file...]",
		Short: "Run the numeric simulation and print every node's history",
		Long: `Builds a simulation over the merged descriptions and prints one line per
node: its name followed by the value history (initial value first). With
--bins the history is averaged into that many buckets.

Settings may come from a YAML file (--config); --steps and --bins override it.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := &sim.Config{}
			if configPath != "" {
				loaded, err := sim.LoadConfigFile(configPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}
			if cmd.Flags().Changed("steps") {
				cfg.Steps = &steps
			}
			if cmd.Flags().Changed("bins") {
				cfg.Bins = bins
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			g, err := a.loadGraph(cmd, args)
			if err != nil {
				return err
			}
			s, err := sim.New(g, append(cfg.Options(), sim.WithLogger(a.log))...)
			if err != nil {
				return err
			}
			if err := s.Run(cfg.StepCount()); err != nil {
				return err
			}
			a.log.Debug("simulation finished", zap.Int("steps", s.Steps()), zap.Int("bins", cfg.Bins))

			out := cmd.OutOrStdout()
			for _, name := range s.Nodes() {
				series, err := s.History(name)
				if cfg.Bins > 0 {
					series, err = s.Downsample(name, cfg.Bins)
				}
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s %s\n", styles.Title.Render(name+":"), joinValues(series))
			}

			return nil
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML simulation settings")
	cmd.Flags().IntVarP(&steps, "steps", "n", sim.DefaultSteps, "number of synchronous steps")
	cmd.Flags().IntVarP(&bins, "bins", "b", 0, "downsample each history into this many buckets (0 keeps raw values)")

	return cmd
}

func joinValues(series []float64) string {
	parts := make([]string, len(series))
	for i, v := range series {
		parts[i] = strconv.FormatFloat(v, 'f', 2, 64)
	}

	return strings.Join(parts, " ")
}
