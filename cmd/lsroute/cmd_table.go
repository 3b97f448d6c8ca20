package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/linkstate/fib"
	"github.com/katalvlaran/linkstate/spf"
)

func newTableCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "table",
		Short: "Print the forwarding table of one node",
		Example: "  lsroute table -t topo.yaml -s u\n" +
			"  lsroute table -t ring.inet -s 0 -o yaml --inf-cost 99999",
		Args: cobra.NoArgs,
		RunE: a.runTable,
	}
}

func (a *app) runTable(cmd *cobra.Command, _ []string) error {
	source, err := requireSource(a.cfg)
	if err != nil {
		return err
	}
	format, err := fib.ParseFormat(a.cfg.OutputFormat)
	if err != nil {
		return err
	}
	opts, err := solveOptions(a.cfg)
	if err != nil {
		return err
	}
	g, err := loadTopology(a.cfg)
	if err != nil {
		return err
	}

	res, err := spf.Solve(g, source, opts...)
	if err != nil {
		return err
	}
	warnUnreachable(source, res.Unreachable(g))

	return fib.Render(cmd.OutOrStdout(), fib.Build(res, buildOptions(a.cfg)...), format)
}
