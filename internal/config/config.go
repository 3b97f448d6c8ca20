package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	ENV_PREFIX = "LINKSTATE"

	TOPOLOGY_FILE   = "Topology_File"
	TOPOLOGY_FORMAT = "Topology_Format"
	SOURCE          = "Source"
	OUTPUT_FORMAT   = "Output_Format"
	SELECTION       = "Selection"
	WORKERS         = "Workers"
	LOG_LEVEL       = "Log_Level"
	INF_COST        = "Inf_Cost"
	MAX_COST        = "Max_Cost"
	WITH_SELF       = "With_Self"

	DEFAULT_OUTPUT_FORMAT = "table"
	DEFAULT_SELECTION     = "heap"
	DEFAULT_LOG_LEVEL     = "info"
)

type Config struct {
	TopologyFile   string
	TopologyFormat string
	Source         string
	OutputFormat   string
	Selection      string
	Workers        int
	LogLevel       string
	InfCost        int64
	MaxCost        int64
	WithSelf       bool
}

func (c Config) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s\n", TOPOLOGY_FILE, c.TopologyFile)
	fmt.Fprintf(&b, "%s: %s\n", TOPOLOGY_FORMAT, c.TopologyFormat)
	fmt.Fprintf(&b, "%s: %s\n", SOURCE, c.Source)
	fmt.Fprintf(&b, "%s: %s\n", OUTPUT_FORMAT, c.OutputFormat)
	fmt.Fprintf(&b, "%s: %s\n", SELECTION, c.Selection)
	fmt.Fprintf(&b, "%s: %d\n", WORKERS, c.Workers)
	fmt.Fprintf(&b, "%s: %s\n", LOG_LEVEL, c.LogLevel)
	fmt.Fprintf(&b, "%s: %d\n", INF_COST, c.InfCost)
	fmt.Fprintf(&b, "%s: %d\n", MAX_COST, c.MaxCost)
	fmt.Fprintf(&b, "%s: %t", WITH_SELF, c.WithSelf)
	return b.String()
}

// New returns a viper instance carrying the defaults and reading
// LINKSTATE_* environment variables. Inf_Cost and Max_Cost default to 0,
// which leaves the corresponding limit disabled.
func New() *viper.Viper {
	options := viper.New()

	options.SetDefault(TOPOLOGY_FILE, "")
	options.SetDefault(TOPOLOGY_FORMAT, "")
	options.SetDefault(SOURCE, "")
	options.SetDefault(OUTPUT_FORMAT, DEFAULT_OUTPUT_FORMAT)
	options.SetDefault(SELECTION, DEFAULT_SELECTION)
	options.SetDefault(WORKERS, 0)
	options.SetDefault(LOG_LEVEL, DEFAULT_LOG_LEVEL)
	options.SetDefault(INF_COST, 0)
	options.SetDefault(MAX_COST, 0)
	options.SetDefault(WITH_SELF, false)
	options.SetEnvPrefix(ENV_PREFIX)
	options.AutomaticEnv()

	return options
}

// ReadFile merges a YAML (or any viper-supported) config file into options.
// Environment variables and bound flags still take precedence.
func ReadFile(options *viper.Viper, path string) error {
	options.SetConfigFile(path)
	if err := options.ReadInConfig(); err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	return nil
}

// FromViper snapshots options into a Config.
func FromViper(options *viper.Viper) (*Config, error) {
	cfg := &Config{
		TopologyFile:   options.GetString(TOPOLOGY_FILE),
		TopologyFormat: options.GetString(TOPOLOGY_FORMAT),
		Source:         options.GetString(SOURCE),
		OutputFormat:   options.GetString(OUTPUT_FORMAT),
		Selection:      options.GetString(SELECTION),
		Workers:        options.GetInt(WORKERS),
		LogLevel:       options.GetString(LOG_LEVEL),
		InfCost:        options.GetInt64(INF_COST),
		MaxCost:        options.GetInt64(MAX_COST),
		WithSelf:       options.GetBool(WITH_SELF),
	}

	switch {
	case cfg.Workers < 0:
		return nil, fmt.Errorf("config: %s cannot be negative (%d)", WORKERS, cfg.Workers)
	case cfg.InfCost < 0:
		return nil, fmt.Errorf("config: %s cannot be negative (%d)", INF_COST, cfg.InfCost)
	case cfg.MaxCost < 0:
		return nil, fmt.Errorf("config: %s cannot be negative (%d)", MAX_COST, cfg.MaxCost)
	}

	return cfg, nil
}

// GetConfig reads defaults and environment only.
func GetConfig() (*Config, error) {
	return FromViper(New())
}
