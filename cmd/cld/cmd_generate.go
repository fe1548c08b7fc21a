// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/cld/builder"
	"github.com/katalvlaran/cld/parser"
)

func newGenerateCmd(a *app) *cobra.Command {
	var (
		prefix       string
		seed         int64
		density      float64
		oppositeProb float64
	)

	cmd := &cobra.Command{
		Use:       "generate <ring|chain|complete|random> <n>",
		Short:     "Print a synthetic description",
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{"ring", "chain", "complete", "random"},
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("node count %q: %w", args[1], err)
			}

			var ctor builder.Constructor
			switch args[0] {
			case "ring":
				ctor = builder.Ring(n)
			case "chain":
				ctor = builder.Chain(n)
			case "complete":
				ctor = builder.Complete(n)
			case "random":
				ctor = builder.RandomSparse(n, density)
			default:
				return fmt.Errorf("unknown topology %q", args[0])
			}

			opts := []builder.BuilderOption{builder.WithSymbNumb(prefix), builder.WithSeed(seed)}
			if oppositeProb < 0 || oppositeProb > 1 {
				return fmt.Errorf("--opposite-prob %g outside [0,1]", oppositeProb)
			}
			opts = append(opts, builder.WithOppositeProb(oppositeProb))

			g, err := builder.BuildGraph(nil, opts, ctor)
			if err != nil {
				return err
			}
			a.log.Debug("graph generated",
				zap.String("topology", args[0]),
				zap.Int("nodes", g.Len()),
				zap.Int("edges", g.EdgeCount()),
			)
			_, err = fmt.Fprint(cmd.OutOrStdout(), parser.Format(g))

			return err
		},
	}
	cmd.Flags().StringVar(&prefix, "prefix", "N", "node name prefix")
	cmd.Flags().Int64Var(&seed, "seed", 1, "random seed")
	cmd.Flags().Float64Var(&density, "p", 0.3, "edge probability for random graphs")
	cmd.Flags().Float64Var(&oppositeProb, "opposite-prob", 0, "probability that an edge is opposite")

	return cmd
}
