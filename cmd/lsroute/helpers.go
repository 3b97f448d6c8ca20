package main

import (
	"errors"

	"github.com/katalvlaran/linkstate/core"
	"github.com/katalvlaran/linkstate/fib"
	"github.com/katalvlaran/linkstate/internal/config"
	"github.com/katalvlaran/linkstate/internal/logger"
	"github.com/katalvlaran/linkstate/spf"
	"github.com/katalvlaran/linkstate/topofile"
)

var (
	errNoTopology = errors.New("no topology file given (--topology or LINKSTATE_TOPOLOGY_FILE)")
	errNoSource   = errors.New("no source node given (--source or LINKSTATE_SOURCE)")
)

func loadTopology(cfg *config.Config) (*core.Graph, error) {
	if cfg.TopologyFile == "" {
		return nil, errNoTopology
	}
	format, err := topofile.ParseFormat(cfg.TopologyFormat)
	if err != nil {
		return nil, err
	}
	g, err := topofile.Load(cfg.TopologyFile, format)
	if err != nil {
		return nil, err
	}
	logger.Log.WithField("file", cfg.TopologyFile).Infof("loaded %d nodes, %d links", g.NodeCount(), g.LinkCount())

	return g, nil
}

func solveOptions(cfg *config.Config) ([]spf.Option, error) {
	sel, err := spf.ParseSelection(cfg.Selection)
	if err != nil {
		return nil, err
	}
	opts := []spf.Option{spf.WithSelection(sel), spf.WithLogger(logger.Log)}
	if cfg.InfCost > 0 {
		opts = append(opts, spf.WithInfCost(cfg.InfCost))
	}
	if cfg.MaxCost > 0 {
		opts = append(opts, spf.WithMaxCost(cfg.MaxCost))
	}

	return opts, nil
}

func buildOptions(cfg *config.Config) []fib.BuildOption {
	if cfg.WithSelf {
		return []fib.BuildOption{fib.WithSelf()}
	}
	return nil
}

// usableLink mirrors the solver's down-link rule for reachability checks.
func usableLink(cfg *config.Config) func(core.Link) bool {
	if cfg.InfCost <= 0 {
		return nil
	}
	return func(l core.Link) bool { return l.Cost < cfg.InfCost }
}

func requireSource(cfg *config.Config) (string, error) {
	if cfg.Source == "" {
		return "", errNoSource
	}
	return cfg.Source, nil
}

func warnUnreachable(source string, unreachable []string) {
	if len(unreachable) == 0 {
		return
	}
	logger.Log.WithField("source", source).Warnf("no route to %v", unreachable)
}
