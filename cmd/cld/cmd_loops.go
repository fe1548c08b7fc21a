// SPDX-License-Identifier: MIT
package main

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/cld/loops"
)

func newLoopsCmd(a *app) *cobra.Command {
	var shared bool

	cmd := &cobra.Command{
		Use:   "loops [file...]",
		Short: "List the feedback loops of one or more descriptions",
		Long: `Parses and merges the given descriptions (standard input when none) and
prints every elementary feedback loop with its polarity. Loops are named
R1, R2, ... (reinforcing) and B1, B2, ... (balancing).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadGraph(cmd, args)
			if err != nil {
				return err
			}
			found, err := loops.Find(g)
			if err != nil {
				return err
			}
			a.log.Debug("loops found", zap.Int("count", len(found)))

			out := cmd.OutOrStdout()
			if len(found) == 0 {
				fmt.Fprintln(out, styles.Muted.Render("no feedback loops"))
				return nil
			}
			for _, l := range found {
				names := make([]string, 0, l.Len())
				for _, n := range l.Nodes {
					names = append(names, n.Name)
				}
				fmt.Fprintf(out, "%s %-11s %s\n", polarityTag(l), l.Polarity, strings.Join(names, " → "))
			}

			if shared {
				writeShared(cmd, loops.SharedEdges(found))
			}

			return nil
		},
	}
	cmd.Flags().BoolVar(&shared, "shared", false, "also list edges that lie on more than one loop")

	return cmd
}

// writeShared prints edges crossed by two or more loops, busiest first.
func writeShared(cmd *cobra.Command, counts map[loops.EdgeKey]int) {
	type row struct {
		key   loops.EdgeKey
		count int
	}
	var rows []row
	for k, c := range counts {
		if c > 1 {
			rows = append(rows, row{k, c})
		}
	}
	slices.SortFunc(rows, func(x, y row) int {
		if c := cmp.Compare(y.count, x.count); c != 0 {
			return c
		}
		if c := cmp.Compare(x.key.From, y.key.From); c != 0 {
			return c
		}
		return cmp.Compare(x.key.To, y.key.To)
	})

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, styles.Title.Render("shared edges"))
	if len(rows) == 0 {
		fmt.Fprintln(out, styles.Muted.Render("  none"))
		return
	}
	for _, r := range rows {
		fmt.Fprintf(out, "  %s → %s ×%d\n", r.key.From, r.key.To, r.count)
	}
}
