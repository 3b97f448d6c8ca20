package topofile

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/linkstate/core"
)

// LoadInet reads the Inet topology generator format:
//
//	<node count> <link count>
//	<id> <x> <y>          one line per node
//	<from> <to> <weight>  one line per link
//
// Coordinates are ignored. Links are point-to-point and stored in both
// directions with the given weight, rounded to the nearest integer. Blank
// lines are skipped. Every error names the offending line.
func LoadInet(r io.Reader) (*core.Graph, error) {
	sc := bufio.NewScanner(r)
	lineNo := 0
	next := func() ([]string, bool) {
		for sc.Scan() {
			lineNo++
			if f := strings.Fields(sc.Text()); len(f) > 0 {
				return f, true
			}
		}
		return nil, false
	}

	// 1) Header
	hdr, ok := next()
	if !ok {
		return nil, fmt.Errorf("%w: missing header", ErrMalformed)
	}
	if len(hdr) < 2 {
		return nil, fmt.Errorf("%w: line %d: header needs node and link counts", ErrMalformed, lineNo)
	}
	nodes, err1 := strconv.Atoi(hdr[0])
	links, err2 := strconv.Atoi(hdr[1])
	if err1 != nil || err2 != nil || nodes < 0 || links < 0 {
		return nil, fmt.Errorf("%w: line %d: bad counts %q %q", ErrMalformed, lineNo, hdr[0], hdr[1])
	}

	g := core.NewGraph()

	// 2) Node section
	for i := 0; i < nodes; i++ {
		f, ok := next()
		if !ok {
			return nil, fmt.Errorf("%w: expected %d nodes, found %d", ErrMalformed, nodes, i)
		}
		if err := g.AddNode(f[0]); err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrMalformed, lineNo, err)
		}
	}

	// 3) Link section
	for i := 0; i < links; i++ {
		f, ok := next()
		if !ok {
			return nil, fmt.Errorf("%w: expected %d links, found %d", ErrMalformed, links, i)
		}
		if len(f) < 3 {
			return nil, fmt.Errorf("%w: line %d: link needs from, to and weight", ErrMalformed, lineNo)
		}
		from, to := f[0], f[1]
		if !g.HasNode(from) || !g.HasNode(to) {
			return nil, fmt.Errorf("%w: line %d: link %s-%s references an undeclared node", ErrMalformed, lineNo, from, to)
		}
		w, err := strconv.ParseFloat(f[2], 64)
		if err != nil || math.IsNaN(w) || math.IsInf(w, 0) || w >= math.MaxInt64 {
			return nil, fmt.Errorf("%w: line %d: bad weight %q", ErrMalformed, lineNo, f[2])
		}
		if err = g.AddBidirectional(from, to, int64(math.Round(w))); err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrMalformed, lineNo, err)
		}
	}

	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("topofile: read inet: %w", err)
	}

	return g, nil
}
