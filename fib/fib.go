// Package fib turns an spf.Result into a forwarding table: one row per
// destination naming the next hop and the path cost, ready to be installed
// into a forwarding plane or printed for diagnostics.
package fib

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/linkstate/spf"
)

// ErrUnknownFormat is returned by Render and ParseFormat for unsupported formats.
var ErrUnknownFormat = errors.New("fib: unknown output format")

// Entry is one forwarding-table row.
type Entry struct {
	Destination string `yaml:"destination"`
	NextHop     string `yaml:"next_hop,omitempty"`
	Cost        int64  `yaml:"cost"`
}

// Table is the forwarding table of Source, rows sorted by Destination.
type Table struct {
	Source  string  `yaml:"source"`
	Entries []Entry `yaml:"routes"`
}

// BuildOption tunes Build.
type BuildOption func(*buildOptions)

type buildOptions struct {
	self bool
}

// WithSelf keeps the source's own zero-cost row in the table.
func WithSelf() BuildOption {
	return func(o *buildOptions) { o.self = true }
}

// Build converts res into a Table. The source row is omitted unless WithSelf
// is given, since nothing is ever forwarded to oneself.
func Build(res *spf.Result, opts ...BuildOption) Table {
	var o buildOptions
	for _, opt := range opts {
		opt(&o)
	}

	t := Table{Source: res.Source, Entries: make([]Entry, 0, len(res.Routes))}
	for _, dest := range res.Destinations() {
		if dest == res.Source && !o.self {
			continue
		}
		rt := res.Routes[dest]
		t.Entries = append(t.Entries, Entry{Destination: dest, NextHop: rt.NextHop, Cost: rt.Cost})
	}

	return t
}

// Lookup returns the row for dest using binary search over the sorted rows.
func (t Table) Lookup(dest string) (Entry, bool) {
	i := sort.Search(len(t.Entries), func(i int) bool { return t.Entries[i].Destination >= dest })
	if i < len(t.Entries) && t.Entries[i].Destination == dest {
		return t.Entries[i], true
	}

	return Entry{}, false
}

// Format selects how Render writes a Table.
type Format string

const (
	// FormatTable renders an aligned text table.
	FormatTable Format = "table"
	// FormatYAML renders the Table as a YAML document.
	FormatYAML Format = "yaml"
)

// ParseFormat validates a user-supplied format name.
func ParseFormat(name string) (Format, error) {
	switch f := Format(name); f {
	case FormatTable, FormatYAML:
		return f, nil
	case "":
		return FormatTable, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// Render writes t to w in the given format.
func Render(w io.Writer, t Table, format Format) error {
	switch format {
	case FormatTable:
		tw := table.NewWriter()
		tw.SetOutputMirror(w)
		tw.SetTitle("Route table of %s", t.Source)
		tw.AppendHeader(table.Row{"Destination", "Next hop", "Cost"})
		for _, e := range t.Entries {
			hop := e.NextHop
			if hop == "" {
				hop = "-"
			}
			tw.AppendRow(table.Row{e.Destination, hop, e.Cost})
		}
		tw.SetStyle(table.StyleLight)
		tw.Style().Format.Header = text.FormatDefault
		tw.Style().Title.Format = text.FormatDefault
		tw.Render()

		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(t); err != nil {
			return fmt.Errorf("fib: encode yaml: %w", err)
		}

		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// RenderAll writes several tables: text tables separated by a blank line, or
// a single YAML sequence.
func RenderAll(w io.Writer, ts []Table, format Format) error {
	switch format {
	case FormatTable:
		for i, t := range ts {
			if i > 0 {
				if _, err := io.WriteString(w, "\n"); err != nil {
					return err
				}
			}
			if err := Render(w, t, format); err != nil {
				return err
			}
		}

		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(ts); err != nil {
			return fmt.Errorf("fib: encode yaml: %w", err)
		}

		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
