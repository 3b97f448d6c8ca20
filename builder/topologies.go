package builder

import (
	"fmt"

	"github.com/katalvlaran/linkstate/core"
)

const (
	methodRing         = "Ring"
	methodPath         = "Path"
	methodStar         = "Star"
	methodGrid         = "Grid"
	methodComplete     = "Complete"
	methodRandomSparse = "RandomSparse"

	minRingNodes = 3
	minPathNodes = 2
	minStarNodes = 2
	gridIDFmt    = "r%dc%d"
)

// Ring builds n nodes joined in a cycle 0–1–…–(n-1)–0 (n ≥ 3).
// Complexity: O(n).
func Ring(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRingNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRing, n, minRingNodes, ErrTooFewNodes)
		}
		ids, err := addNodes(g, cfg, methodRing, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err = connect(g, cfg, methodRing, ids[i], ids[(i+1)%n]); err != nil {
				return err
			}
		}

		return nil
	}
}

// Path builds a chain 0–1–…–(n-1) (n ≥ 2).
// Complexity: O(n).
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewNodes)
		}
		ids, err := addNodes(g, cfg, methodPath, n)
		if err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err = connect(g, cfg, methodPath, ids[i], ids[i+1]); err != nil {
				return err
			}
		}

		return nil
	}
}

// Star builds a hub (index 0) adjacent to n-1 leaves (n ≥ 2).
// Complexity: O(n).
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewNodes)
		}
		ids, err := addNodes(g, cfg, methodStar, n)
		if err != nil {
			return err
		}
		for _, leaf := range ids[1:] {
			if err = connect(g, cfg, methodStar, ids[0], leaf); err != nil {
				return err
			}
		}

		return nil
	}
}

// Grid builds a rows×cols mesh with 4-neighborhood adjacencies. Node IDs are
// "r<row>c<col>" regardless of the ID scheme.
// Complexity: O(rows·cols).
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < 1 || cols < 1 {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ 1): %w", methodGrid, rows, cols, ErrTooFewNodes)
		}
		id := func(r, c int) string { return fmt.Sprintf(gridIDFmt, r, c) }

		// 1) Nodes in row-major order
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if err := g.AddNode(id(r, c)); err != nil {
					return fmt.Errorf("%s: AddNode(%s): %w: %w", methodGrid, id(r, c), ErrConstructFailed, err)
				}
			}
		}

		// 2) For each cell: right neighbor, then bottom neighbor
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err := connect(g, cfg, methodGrid, id(r, c), id(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := connect(g, cfg, methodGrid, id(r, c), id(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

// Complete builds a full mesh over n nodes (n ≥ 1).
// Complexity: O(n²).
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < 1 {
			return fmt.Errorf("%s: n=%d < min=1: %w", methodComplete, n, ErrTooFewNodes)
		}
		ids, err := addNodes(g, cfg, methodComplete, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err = connect(g, cfg, methodComplete, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// RandomSparse joins each unordered pair {i, j} independently with
// probability p (Erdős–Rényi). A randomness source is required unless p is 0
// or 1.
// Complexity: O(n²) trials.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate
		if n < 1 {
			return fmt.Errorf("%s: n=%d < min=1: %w", methodRandomSparse, n, ErrTooFewNodes)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%.6f not in [0,1]: %w", methodRandomSparse, p, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		// 2) Nodes, then trials in (i asc, j asc) order
		ids, err := addNodes(g, cfg, methodRandomSparse, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if p < 1 && (p == 0 || cfg.rng.Float64() >= p) {
					continue
				}
				if err = connect(g, cfg, methodRandomSparse, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
