// SPDX-License-Identifier: MIT
//
// grid.go — implementation of Grid(rows, cols).
//
// Canonical model: a 2D orthogonal grid with 4-neighborhood, nodes
// numbered pos = c + r*cols (row-major).
//
// Contract:
//   - rows >= 1 and cols >= 1 (else ErrTooFewNodes).
//   - Edges connect each cell to its top and left neighbors where present;
//     symmetry is enforced by setEdge.
//
// Complexity: O(rows*cols) time and space.
package graphgen

import "github.com/katalvlaran/cutrank/gf2"

const methodGrid = "Grid"

// Grid builds the adjacency matrix of a rows x cols 4-neighbor grid graph.
func Grid(rows, cols int) (*gf2.Matrix, error) {
	if rows < 1 || cols < 1 {
		return nil, errorf(methodGrid, ErrTooFewNodes)
	}

	n := rows * cols
	m, err := gf2.NewMatrix(n, n)
	if err != nil {
		return nil, errorf(methodGrid, err)
	}

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			pos := c + r*cols
			if r > 0 {
				setEdge(m, pos, pos-cols)
			}
			if c > 0 {
				setEdge(m, pos, pos-1)
			}
		}
	}
	return m, nil
}

// setEdge marks n1<->n2 as adjacent. It is a no-op for a self-loop.
func setEdge(m *gf2.Matrix, n1, n2 int) {
	if n1 == n2 {
		return
	}
	m.Set(n1, n2, 1)
	m.Set(n2, n1, 1)
}
