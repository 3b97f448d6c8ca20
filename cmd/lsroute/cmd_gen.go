package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/linkstate/builder"
	"github.com/katalvlaran/linkstate/topofile"
)

var genFlags struct {
	nodes      int
	rows       int
	cols       int
	prob       float64
	seed       int64
	minCost    int64
	maxCost    int64
	prefix     string
	asymmetric bool
}

func newGenCmd(_ *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:       "gen <ring|path|star|grid|complete|random>",
		Short:     "Generate a synthetic topology as YAML",
		Example:   "  lsroute gen random -n 50 --prob 0.1 --seed 7 --min-cost 1 --max-cost 20 > topo.yaml",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"ring", "path", "star", "grid", "complete", "random"},
		RunE:      runGen,
	}

	f := cmd.Flags()
	f.IntVarP(&genFlags.nodes, "nodes", "n", 8, "Number of routers")
	f.IntVar(&genFlags.rows, "rows", 3, "Grid rows")
	f.IntVar(&genFlags.cols, "cols", 3, "Grid columns")
	f.Float64Var(&genFlags.prob, "prob", 0.2, "Adjacency probability for random")
	f.Int64Var(&genFlags.seed, "seed", 1, "Random seed")
	f.Int64Var(&genFlags.minCost, "min-cost", 1, "Lowest link cost")
	f.Int64Var(&genFlags.maxCost, "max-cost", 1, "Highest link cost")
	f.StringVar(&genFlags.prefix, "prefix", "r", "Router ID prefix")
	f.BoolVar(&genFlags.asymmetric, "asymmetric", false, "Draw each direction's cost independently")

	return cmd
}

func runGen(cmd *cobra.Command, args []string) error {
	var con builder.Constructor
	switch args[0] {
	case "ring":
		con = builder.Ring(genFlags.nodes)
	case "path":
		con = builder.Path(genFlags.nodes)
	case "star":
		con = builder.Star(genFlags.nodes)
	case "grid":
		con = builder.Grid(genFlags.rows, genFlags.cols)
	case "complete":
		con = builder.Complete(genFlags.nodes)
	case "random":
		con = builder.RandomSparse(genFlags.nodes, genFlags.prob)
	default:
		return fmt.Errorf("unknown shape %q", args[0])
	}

	opts := []builder.BuilderOption{
		builder.WithSeed(genFlags.seed),
		builder.WithIDPrefix(genFlags.prefix),
		builder.WithUniformCost(genFlags.minCost, genFlags.maxCost),
	}
	if genFlags.asymmetric {
		opts = append(opts, builder.WithAsymmetricCost())
	}

	g, err := builder.BuildGraph(opts, con)
	if err != nil {
		return err
	}

	return topofile.EncodeYAML(cmd.OutOrStdout(), g)
}
