// SPDX-License-Identifier: MIT
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cld/parser"
)

func newGroupsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "groups [file...]",
		Short: "Group nodes by the description that first mentioned them",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadGraph(cmd, args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, p := range g.PartitionBySubgraph() {
				title := p.Subgraph
				if title == "" {
					title = "(ungrouped)"
				}
				fmt.Fprintln(out, styles.Title.Render(title))
				for _, n := range p.Nodes {
					if n.Label != n.Name {
						fmt.Fprintf(out, "  %s %s\n", n.Name, styles.Muted.Render(n.Label))
						continue
					}
					fmt.Fprintf(out, "  %s\n", n.Name)
				}
			}

			return nil
		},
	}
}

func newFmtCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "fmt [file...]",
		Short: "Print the merged descriptions in canonical form",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadGraph(cmd, args)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), parser.Format(g))

			return err
		},
	}
}
