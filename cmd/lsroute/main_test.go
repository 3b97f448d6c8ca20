package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/linkstate/builder"
	"github.com/katalvlaran/linkstate/fib"
	"github.com/katalvlaran/linkstate/topofile"
)

func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()

	return out.String(), errOut.String(), err
}

func TestTable_YAML(t *testing.T) {
	out, _, err := run(t, "table", "-t", "testdata/kurose.yaml", "-s", "u", "-o", "yaml")
	require.NoError(t, err)

	var tbl fib.Table
	require.NoError(t, yaml.Unmarshal([]byte(out), &tbl))
	assert.Equal(t, fib.Table{Source: "u", Entries: []fib.Entry{
		{Destination: "v", NextHop: "v", Cost: 2},
		{Destination: "w", NextHop: "x", Cost: 3},
		{Destination: "x", NextHop: "x", Cost: 1},
		{Destination: "y", NextHop: "x", Cost: 2},
		{Destination: "z", NextHop: "x", Cost: 4},
	}}, tbl)
}

func TestTable_TextWithSelf(t *testing.T) {
	out, _, err := run(t, "table", "-t", "testdata/kurose.yaml", "-s", "u", "--self", "--selection", "linear")
	require.NoError(t, err)
	assert.Contains(t, out, "Route table of u")
	assert.Contains(t, out, "Next hop")
}

func TestTable_DownLinksAndWarnings(t *testing.T) {
	out, errOut, err := run(t, "table", "-t", "testdata/partitioned.yaml", "-s", "r1", "--inf-cost", "99999", "-o", "yaml")
	require.NoError(t, err)

	var tbl fib.Table
	require.NoError(t, yaml.Unmarshal([]byte(out), &tbl))
	assert.Equal(t, []fib.Entry{
		{Destination: "r2", NextHop: "r2", Cost: 1},
		{Destination: "r3", NextHop: "r2", Cost: 5},
	}, tbl.Entries)
	assert.Contains(t, errOut, "no route to [r4 r5]")
}

func TestTable_Errors(t *testing.T) {
	_, _, err := run(t, "table", "-t", "testdata/kurose.yaml")
	require.ErrorIs(t, err, errNoSource)

	_, _, err = run(t, "table", "-s", "u")
	require.ErrorIs(t, err, errNoTopology)

	_, _, err = run(t, "table", "-t", "testdata/kurose.yaml", "-s", "nowhere")
	require.Error(t, err)

	_, _, err = run(t, "table", "-t", "testdata/kurose.yaml", "-s", "u", "-o", "xml")
	require.Error(t, err)

	_, _, err = run(t, "table", "-t", "testdata/kurose.yaml", "-s", "u", "--log-level", "chatty")
	require.Error(t, err)
}

func TestTable_EnvAndConfigFile(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "lsroute.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("topology_file: testdata/kurose.yaml\noutput_format: yaml\n"), 0o644))
	t.Setenv("LINKSTATE_SOURCE", "z")

	out, _, err := run(t, "table", "--config", cfgPath)
	require.NoError(t, err)

	var tbl fib.Table
	require.NoError(t, yaml.Unmarshal([]byte(out), &tbl))
	assert.Equal(t, "z", tbl.Source)
	e, ok := tbl.Lookup("u")
	require.True(t, ok)
	assert.Equal(t, fib.Entry{Destination: "u", NextHop: "y", Cost: 4}, e)
}

func TestAll(t *testing.T) {
	out, _, err := run(t, "all", "-t", "testdata/kurose.yaml", "-o", "yaml", "--workers", "3")
	require.NoError(t, err)

	var tables []fib.Table
	require.NoError(t, yaml.Unmarshal([]byte(out), &tables))
	require.Len(t, tables, 6)
	assert.Equal(t, "u", tables[0].Source)
	assert.Equal(t, "z", tables[5].Source)
	for _, tbl := range tables {
		assert.Len(t, tbl.Entries, 5)
	}
}

func TestAll_Metrics(t *testing.T) {
	out, _, err := run(t, "all", "-t", "testdata/kurose.yaml", "--metrics")
	require.NoError(t, err)
	assert.Contains(t, out, "Route table of w")
	assert.Contains(t, out, "linkstate_spf_runs_total 6")
	assert.Contains(t, out, "linkstate_topology_nodes 6")
}

func TestCheck(t *testing.T) {
	out, _, err := run(t, "check", "-t", "testdata/partitioned.yaml", "-s", "r1", "--inf-cost", "99999")
	require.NoError(t, err)
	assert.Contains(t, out, "Nodes:  5\n")
	assert.Contains(t, out, "Links:  7\n")
	assert.Contains(t, out, "r5 -> r1 cost 2, reverse missing")
	assert.Contains(t, out, "Reachable from r1: 3 nodes, 4 links")
	assert.Contains(t, out, "Unreachable: [r4 r5]")

	out, _, err = run(t, "check", "-t", "testdata/partitioned.yaml", "-s", "r1", "--inf-cost", "99999", "--max-cost", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "Reachable from r1: 2 nodes, 2 links")
	assert.Contains(t, out, "Unreachable: [r3 r4 r5]")

	_, _, err = run(t, "check", "-t", "testdata/partitioned.yaml", "--strict")
	require.Error(t, err)

	out, _, err = run(t, "check", "-t", "testdata/kurose.yaml", "-s", "u", "--strict")
	require.NoError(t, err)
	assert.NotContains(t, out, "Asymmetric")
}

func TestGen(t *testing.T) {
	out, _, err := run(t, "gen", "ring", "-n", "4", "--min-cost", "2", "--max-cost", "2")
	require.NoError(t, err)

	g, err := topofile.LoadYAML(strings.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, []string{"r0", "r1", "r2", "r3"}, g.Nodes())
	assert.Equal(t, 8, g.LinkCount())

	path := filepath.Join(t.TempDir(), "ring.yaml")
	require.NoError(t, os.WriteFile(path, []byte(out), 0o644))
	out, _, err = run(t, "table", "-t", path, "-s", "r0", "-o", "yaml")
	require.NoError(t, err)
	var tbl fib.Table
	require.NoError(t, yaml.Unmarshal([]byte(out), &tbl))
	e, ok := tbl.Lookup("r2")
	require.True(t, ok)
	assert.Equal(t, fib.Entry{Destination: "r2", NextHop: "r1", Cost: 4}, e)

	_, _, err = run(t, "gen", "hexagon")
	require.Error(t, err)
	_, _, err = run(t, "gen", "random", "--prob", "2")
	require.ErrorIs(t, err, builder.ErrInvalidProbability)
}

func TestCheck_Forwarding(t *testing.T) {
	out, _, err := run(t, "check", "-t", "testdata/kurose.yaml", "--forwarding", "--strict")
	require.NoError(t, err)
	assert.Contains(t, out, "Forwarding: 0 loops, 0 blackholes")
}

func TestTrace(t *testing.T) {
	out, _, err := run(t, "trace", "-t", "testdata/kurose.yaml", "-s", "u", "z")
	require.NoError(t, err)
	assert.Equal(t, "u -> x -> y -> z\ncost 4\n", out)

	out, _, err = run(t, "trace", "-t", "testdata/partitioned.yaml", "-s", "r1", "--inf-cost", "99999", "r4")
	require.ErrorIs(t, err, fib.ErrBlackhole)
	assert.Equal(t, "r1\n", out)
}
