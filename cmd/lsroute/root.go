package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/linkstate/internal/config"
	"github.com/katalvlaran/linkstate/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// app carries the configuration shared by every subcommand. Flags are bound
// into options, so a flag beats LINKSTATE_* env vars, which beat the config
// file.
type app struct {
	options *viper.Viper
	cfg     *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{options: config.New()}

	rootCmd := &cobra.Command{
		Use:   "lsroute",
		Short: "Link-state forwarding tables from a topology snapshot",
		Long: "lsroute runs shortest-path-first over a topology snapshot and prints\n" +
			"the forwarding table (destination, next hop, cost) of one or every node.",
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		PersistentPreRunE: a.setup,
	}

	f := rootCmd.PersistentFlags()
	f.String("config", "", "Config file (YAML)")
	f.StringP("topology", "t", "", "Topology file (.yaml, .yml, .inet)")
	f.String("topology-format", "", "Topology format: yaml or inet (default: from extension)")
	f.StringP("source", "s", "", "Node to compute the table for")
	f.StringP("output", "o", config.DEFAULT_OUTPUT_FORMAT, "Output format: table or yaml")
	f.String("selection", config.DEFAULT_SELECTION, "Tentative-set strategy: heap or linear")
	f.Int("workers", 0, "Tables computed in parallel by 'all' (0: GOMAXPROCS)")
	f.String("log-level", config.DEFAULT_LOG_LEVEL, "Log level: debug, info, warn, error")
	f.Int64("inf-cost", 0, "Treat links costing at least this much as down (0: off)")
	f.Int64("max-cost", 0, "Omit routes costing more than this (0: off)")
	f.Bool("self", false, "Include the source's own row")

	for key, name := range map[string]string{
		config.TOPOLOGY_FILE:   "topology",
		config.TOPOLOGY_FORMAT: "topology-format",
		config.SOURCE:          "source",
		config.OUTPUT_FORMAT:   "output",
		config.SELECTION:       "selection",
		config.WORKERS:         "workers",
		config.LOG_LEVEL:       "log-level",
		config.INF_COST:        "inf-cost",
		config.MAX_COST:        "max-cost",
		config.WITH_SELF:       "self",
	} {
		_ = a.options.BindPFlag(key, f.Lookup(name))
	}

	rootCmd.AddCommand(newTableCmd(a))
	rootCmd.AddCommand(newAllCmd(a))
	rootCmd.AddCommand(newCheckCmd(a))
	rootCmd.AddCommand(newGenCmd(a))
	rootCmd.AddCommand(newTraceCmd(a))
	rootCmd.Version = version

	return rootCmd
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		if err := config.ReadFile(a.options, path); err != nil {
			return err
		}
	}

	cfg, err := config.FromViper(a.options)
	if err != nil {
		return err
	}
	if err = logger.InitLogger(cfg.LogLevel, cmd.ErrOrStderr()); err != nil {
		return err
	}
	a.cfg = cfg
	logger.Log.Debugf("configuration:\n%s", cfg)

	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
