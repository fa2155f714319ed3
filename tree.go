// Copyright (c) 2025 The voxoctree Authors
// SPDX-License-Identifier: MIT

package voxoctree

import (
	"github.com/pkg/errors"

	"github.com/ochtree/voxoctree/internal/basegrid"
	"github.com/ochtree/voxoctree/internal/morton"
	"github.com/ochtree/voxoctree/internal/nodetable"
)

// Tree is a fixed-depth, hash-consed sparse voxel octree. The zero value
// is not usable; construct one with New.
type Tree struct {
	table *nodetable.Table
	grid  *basegrid.Grid
}

// New allocates a tree using the package's compile-time capacity
// constants (Depth, BaseDepth, TableBits).
func New() *Tree {
	return &Tree{
		table: nodetable.New(TableBits),
		grid:  basegrid.New(BaseDepth),
	}
}

// Stats holds the diagnostic counters exposed by Tree.Stats.
type Stats struct {
	// FillCount is the number of live node-table slots.
	FillCount uint32
	// NodeCount is the sum of all live refcounts.
	NodeCount uint32
	// MaxRefcount is the largest refcount ever observed on a single
	// slot since the last Clear.
	MaxRefcount uint32
}

// Stats returns the node table's diagnostic counters. It is purely
// informational and never affects correctness.
func (tr *Tree) Stats() Stats {
	fillcnt, nodecnt, maxRefcnt := tr.table.Stats()
	return Stats{FillCount: fillcnt, NodeCount: nodecnt, MaxRefcount: maxRefcnt}
}

func inBounds(x, y, z uint32) bool {
	return x < Dim && y < Dim && z < Dim
}

func mortonKey(x, y, z uint32) uint64 {
	return morton.Encode(x, y, z)
}

// At reads the leaf value stored at voxel (x, y, z), returning 0 for an
// empty voxel.
func (tr *Tree) At(x, y, z uint32) (uint32, error) {
	if !inBounds(x, y, z) {
		return 0, errors.Wrapf(ErrOutOfBounds, "(%d,%d,%d)", x, y, z)
	}

	key := mortonKey(x, y, z)
	curr := tr.grid.At(morton.BaseIndex(key, HashedDepth))

	for level := HashedDepth - 1; level != 0; level-- {
		if curr == 0 {
			return 0, nil
		}
		octant := morton.Octant(key, level)
		curr = tr.table.Children(curr)[octant]
	}

	if curr == 0 {
		return 0, nil
	}
	return tr.table.Children(curr)[morton.Octant(key, 0)], nil
}

// Set stores leaf value v at voxel (x, y, z), preserving the hash-consing
// invariants. v == 0 means "empty". If the node table fills up part way
// through, Set returns an error wrapping ErrTableFull and the tree is left
// partially updated: levels already released or interned stay that way.
func (tr *Tree) Set(x, y, z, v uint32) error {
	if !inBounds(x, y, z) {
		return errors.Wrapf(ErrOutOfBounds, "(%d,%d,%d)", x, y, z)
	}

	key := mortonKey(x, y, z)
	baseIdx := morton.BaseIndex(key, HashedDepth)
	root := tr.grid.At(baseIdx)

	// Phase 1 - descend, stacking each visited handle, stopping at the
	// first empty child.
	var stk [HashedDepth]uint32

	d := HashedDepth - 1
	curr := root
	for ; curr != 0 && d >= 0; d-- {
		octant := morton.Octant(key, d)
		stk[d] = curr
		curr = tr.table.Children(curr)[octant]
	}
	d++ // d is now the stopped level: the lowest level actually visited

	// Phase 2 - an empty write that stopped above the bottom is a no-op.
	if d > 0 && v == 0 {
		return nil
	}

	// Phase 3 - build the missing levels bottom-up, seeded with v.
	child := v
	for l := 0; l < d; l++ {
		var n nodetable.Node
		n.Children[morton.Octant(key, l)] = child

		h, err := tr.table.Intern(n)
		if err != nil {
			return errors.Wrap(err, "voxoctree: set: build missing levels")
		}
		child = h
	}

	// Phase 4 - rebuild each visited level bottom-up: release the old
	// node, splice in the new child, and re-intern (or collapse to 0 if
	// the result is all-zero).
	for l := d; l != HashedDepth; l++ {
		old := stk[l]
		tr.table.Release(old)

		n := tr.table.Node(old)
		n.Children[morton.Octant(key, l)] = child

		if n.IsZero() {
			child = 0
			continue
		}

		h, err := tr.table.Intern(n)
		if err != nil {
			return errors.Wrap(err, "voxoctree: set: rebuild visited levels")
		}
		child = h
	}

	// Phase 5 - install the new root. Whatever it replaces was already
	// released in phase 4 (stk[HashedDepth-1] is exactly the prior root
	// whenever the descent actually visited it).
	tr.grid.Set(baseIdx, child)

	return nil
}

// Clear resets the tree to all-empty. The underlying node table and base
// grid storage are retained, preserving the fixed-capacity invariant.
func (tr *Tree) Clear() {
	tr.table.Clear()
	tr.grid.Clear()
}

// NodeTableOccupancy reports the node table's live-slot fraction across n
// contiguous regions, for diagnostic dumps (see cmd/voxtrace's
// `stats --dump`). It has no effect on tree semantics.
func (tr *Tree) NodeTableOccupancy(n int) []float64 {
	return tr.table.OccupancyBuckets(n)
}
