// SPDX-License-Identifier: MIT
//
// partition.go — implementation of RandomPartition and
// RandomPartitionOnRandomGraph.
//
// Canonical model: round(n*portion) nodes are assigned to the row side,
// the rest to the column side, then the assignment is shuffled uniformly
// at random (Fisher-Yates) before handing it to partition.New.
package graphgen

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/cutrank/gf2"
	"github.com/katalvlaran/cutrank/partition"
)

const methodRandomPartition = "RandomPartition"

// RandomPartition builds a random bipartition of adjacency's nodes, with
// round(n*portion) nodes on the row side.
func RandomPartition(adjacency *gf2.Matrix, portion float64, opts ...Option) (*partition.State, error) {
	if portion < 0 || portion > 1 {
		return nil, errorf(methodRandomPartition, ErrInvalidPortion)
	}
	if err := gf2.ValidateSquare(adjacency); err != nil {
		return nil, errorf(methodRandomPartition, err)
	}

	n := adjacency.Rows()
	numRows := int(math.Round(float64(n) * portion))

	flags := make([]bool, n)
	for i := 0; i < numRows; i++ {
		flags[i] = true
	}
	shuffleBoolsInPlace(flags, newConfig(opts...).rand())

	st, err := partition.New(adjacency, flags)
	if err != nil {
		return nil, errorf(methodRandomPartition, err)
	}
	return st, nil
}

// RandomPartitionOnRandomGraph builds a random Erdős-Rényi-style graph via
// Random, then a random bipartition of it via RandomPartition.
func RandomPartitionOnRandomGraph(nodes int, edgeProbability, portion float64, opts ...Option) (*partition.State, error) {
	adjacency, err := Random(nodes, edgeProbability, opts...)
	if err != nil {
		return nil, err
	}
	return RandomPartition(adjacency, portion, opts...)
}

// shuffleBoolsInPlace performs an in-place Fisher-Yates shuffle of a using rng.
//
// Complexity: O(n) time, O(1) extra space.
func shuffleBoolsInPlace(a []bool, rng *rand.Rand) {
	for i := len(a) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}
