// SPDX-License-Identifier: MIT
// Package: gamma/builder
//
// impl_grid.go — implementation of Grid(rows, cols) constructor.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • Cell (r,c) gets id b + r*cols + c (row-major).
//   • For each cell emit Right then Bottom neighbour when present.
package builder

import "fmt"

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(a *Adjacency, _ builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		base := a.AddVertices(rows * cols)
		cell := func(r, c int) int { return base + r*cols + c }
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err := a.AddEdge(cell(r, c), cell(r, c+1)); err != nil {
						return fmt.Errorf("%s: %w", methodGrid, err)
					}
				}
				if r+1 < rows {
					if err := a.AddEdge(cell(r, c), cell(r+1, c)); err != nil {
						return fmt.Errorf("%s: %w", methodGrid, err)
					}
				}
			}
		}

		return nil
	}
}
