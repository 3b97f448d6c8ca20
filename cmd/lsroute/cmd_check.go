package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/linkstate/core"
	"github.com/katalvlaran/linkstate/fib"
	"github.com/katalvlaran/linkstate/spf"
)

func newCheckCmd(a *app) *cobra.Command {
	var strict, forwarding bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate a topology file and report asymmetric or unreachable parts",
		Long: "check loads the topology, reports links whose reverse direction is\n" +
			"missing or costs differently, and with --source lists the nodes the\n" +
			"source has no route to, honoring --inf-cost and --max-cost like table.\n" +
			"--forwarding computes every router's table and\n" +
			"looks for forwarding loops and blackholes. --strict turns any finding\n" +
			"into an error.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runCheck(cmd, strict, forwarding)
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail on asymmetric links, unreachable nodes or forwarding faults")
	cmd.Flags().BoolVar(&forwarding, "forwarding", false, "Verify the combined forwarding state of all routers")

	return cmd
}

func (a *app) runCheck(cmd *cobra.Command, strict, forwarding bool) error {
	g, err := loadTopology(a.cfg)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Nodes:  %d\n", g.NodeCount())
	fmt.Fprintf(out, "Links:  %d\n", g.LinkCount())

	asym := asymmetricLinks(g)
	if len(asym) > 0 {
		fmt.Fprintf(out, "Asymmetric: (%d)\n", len(asym))
		for _, l := range asym {
			back := "missing"
			if c, ok := g.Cost(l.To, l.From); ok {
				back = fmt.Sprint(c)
			}
			fmt.Fprintf(out, "  %s -> %s cost %d, reverse %s\n", l.From, l.To, l.Cost, back)
		}
	}

	var unreachable []string
	if a.cfg.Source != "" {
		keep, err := a.routedFrom(g)
		if err != nil {
			return fmt.Errorf("source %q: %w", a.cfg.Source, err)
		}
		part := core.InducedSubgraph(g, keep)
		fmt.Fprintf(out, "Reachable from %s: %d nodes, %d links\n", a.cfg.Source, part.NodeCount(), part.LinkCount())
		for _, id := range g.Nodes() {
			if !keep[id] {
				unreachable = append(unreachable, id)
			}
		}
		if len(unreachable) > 0 {
			fmt.Fprintf(out, "Unreachable: %v\n", unreachable)
		}
	}

	var faults int
	if forwarding {
		tables, err := a.allTables(cmd.Context(), g)
		if err != nil {
			return err
		}
		rep := fib.Verify(tables)
		faults = len(rep.Loops) + len(rep.Blackholes)
		fmt.Fprintf(out, "Forwarding: %d loops, %d blackholes\n", len(rep.Loops), len(rep.Blackholes))
		for _, l := range rep.Loops {
			fmt.Fprintf(out, "  loop toward %s: %v\n", l.Destination, l.Hops)
		}
		for _, b := range rep.Blackholes {
			fmt.Fprintf(out, "  blackhole toward %s at %s (from %s)\n", b.Destination, b.Router, b.From)
		}
	}

	if strict && (len(asym) > 0 || len(unreachable) > 0 || faults > 0) {
		return fmt.Errorf("check failed: %d asymmetric links, %d unreachable nodes, %d forwarding faults",
			len(asym), len(unreachable), faults)
	}

	return nil
}

// routedFrom returns the routers the configured source has a route to. A cost
// cap needs path costs, so it goes through the solver; otherwise a plain
// traversal over usable links gives the same set.
func (a *app) routedFrom(g *core.Graph) (map[string]bool, error) {
	if a.cfg.MaxCost <= 0 {
		order, err := core.Reachable(g, a.cfg.Source, usableLink(a.cfg))
		if err != nil {
			return nil, err
		}
		keep := make(map[string]bool, len(order))
		for _, id := range order {
			keep[id] = true
		}
		return keep, nil
	}

	opts, err := solveOptions(a.cfg)
	if err != nil {
		return nil, err
	}
	res, err := spf.Solve(g, a.cfg.Source, opts...)
	if err != nil {
		return nil, err
	}
	keep := make(map[string]bool, len(res.Routes))
	for id := range res.Routes {
		keep[id] = true
	}

	return keep, nil
}

// asymmetricLinks returns the links whose reverse is absent or priced
// differently, in Links order.
func asymmetricLinks(g *core.Graph) []core.Link {
	var out []core.Link
	for _, l := range g.Links() {
		if l.From == l.To {
			continue
		}
		if c, ok := g.Cost(l.To, l.From); !ok || c != l.Cost {
			out = append(out, l)
		}
	}

	return out
}
