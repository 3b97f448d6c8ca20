package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/linkstate/fib"
)

func newTraceCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "trace <destination>",
		Short: "Follow each router's own next hop from --source to a destination",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := requireSource(a.cfg)
			if err != nil {
				return err
			}
			g, err := loadTopology(a.cfg)
			if err != nil {
				return err
			}
			tables, err := a.allTables(cmd.Context(), g)
			if err != nil {
				return err
			}

			path, err := fib.Trace(tables, source, args[0])
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(path, " -> "))
			if err != nil {
				return err
			}
			if e, ok := tables[source].Lookup(args[0]); ok {
				fmt.Fprintf(cmd.OutOrStdout(), "cost %d\n", e.Cost)
			}

			return nil
		},
	}
}
