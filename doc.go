// Copyright (c) 2025 The voxoctree Authors
// SPDX-License-Identifier: MIT

// Package voxoctree implements a hash-consed sparse voxel octree: a
// fixed-depth spatial index over the cube [0, 2^Depth)^3 that deduplicates
// identical subtrees so that structurally identical regions share one
// physical node record, reference-counted for reclamation on edits.
//
// The top BaseDepth levels are a dense flat grid of root handles (see
// internal/basegrid); the remaining Depth-BaseDepth levels live in a
// fixed-capacity, open-addressed node table (see internal/nodetable).
// Above the grid, a ray-traversal kernel (see internal/trace) walks both
// structures together to find the first non-empty voxel a ray strikes.
//
// Tree is single-owner and non-reentrant: Set and Clear mutate the table
// and grid; At and Trace only read them. Concurrent reads against an
// immutable Tree need no synchronization, but any Set or Clear must be
// externally serialized against all readers.
package voxoctree

// Capacity parameters. These are fixed at compile time: growing the table
// at runtime would invalidate every outstanding handle, since handles are
// slot indices.
const (
	// Depth is the number of octree levels, covering coordinates in
	// [0, 2^Depth).
	Depth = 12

	// BaseDepth is the number of top levels folded into the dense base
	// grid rather than the hashed node table.
	BaseDepth = 5

	// TableBits is log2 of the node table's fixed capacity.
	TableBits = 19

	// HashedDepth is the number of levels stored as interned nodes.
	HashedDepth = Depth - BaseDepth

	// Dim is the voxel-space extent along each axis, 2^Depth.
	Dim = 1 << Depth
)

func init() {
	if !(4 <= BaseDepth && BaseDepth < Depth) {
		panic("voxoctree: require 4 <= BaseDepth < Depth")
	}
	if Dim > 65536 {
		panic("voxoctree: require 2^Depth <= 65536")
	}
}
