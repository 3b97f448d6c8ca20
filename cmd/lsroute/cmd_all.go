package main

import (
	"context"
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/linkstate/core"
	"github.com/katalvlaran/linkstate/fib"
	"github.com/katalvlaran/linkstate/internal/logger"
	"github.com/katalvlaran/linkstate/service"
)

func newAllCmd(a *app) *cobra.Command {
	var dumpMetrics bool

	cmd := &cobra.Command{
		Use:   "all",
		Short: "Print the forwarding table of every node",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runAll(cmd, dumpMetrics)
		},
	}
	cmd.Flags().BoolVar(&dumpMetrics, "metrics", false, "Write service metrics in Prometheus text format after the tables")

	return cmd
}

func (a *app) runAll(cmd *cobra.Command, dumpMetrics bool) error {
	format, err := fib.ParseFormat(a.cfg.OutputFormat)
	if err != nil {
		return err
	}
	g, err := loadTopology(a.cfg)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	svc, err := a.newService(g, reg)
	if err != nil {
		return err
	}
	results, err := svc.All(cmd.Context())
	if err != nil {
		return err
	}

	nodes := svc.Nodes()
	tables := make([]fib.Table, 0, len(nodes))
	for _, id := range nodes {
		res := results[id]
		warnUnreachable(id, res.Unreachable(g))
		tables = append(tables, fib.Build(res, buildOptions(a.cfg)...))
	}

	out := cmd.OutOrStdout()
	if err = fib.RenderAll(out, tables, format); err != nil {
		return err
	}
	if dumpMetrics {
		return writeMetrics(out, reg)
	}

	return nil
}

func (a *app) newService(g *core.Graph, reg prometheus.Registerer) (*service.Service, error) {
	opts, err := solveOptions(a.cfg)
	if err != nil {
		return nil, err
	}

	return service.New(g,
		service.WithWorkers(a.cfg.Workers),
		service.WithRegisterer(reg),
		service.WithLogger(logger.Log),
		service.WithSolveOptions(opts...),
	)
}

// allTables computes the forwarding table of every router in g, keyed by
// router.
func (a *app) allTables(ctx context.Context, g *core.Graph) (map[string]fib.Table, error) {
	svc, err := a.newService(g, nil)
	if err != nil {
		return nil, err
	}
	results, err := svc.All(ctx)
	if err != nil {
		return nil, err
	}
	tables := make(map[string]fib.Table, len(results))
	for id, res := range results {
		tables[id] = fib.Build(res)
	}

	return tables, nil
}

func writeMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err = enc.Encode(mf); err != nil {
			return fmt.Errorf("encode metrics: %w", err)
		}
	}

	return nil
}
