// Copyright (c) 2025 The voxoctree Authors
// SPDX-License-Identifier: MIT

package voxoctree

import "github.com/ochtree/voxoctree/internal/trace"

// Direction is the cube face a ray entered through on a successful Trace,
// or Exit if the ray left the root cube without striking anything.
type Direction = trace.Direction

const (
	PosX = trace.PosX
	PosY = trace.PosY
	PosZ = trace.PosZ
	NegX = trace.NegX
	NegY = trace.NegY
	NegZ = trace.NegZ
	Exit = trace.Exit
)

// Vec3 is a 3-component point or direction in the tree's voxel-space
// coordinates, where the cube spans [0, Dim) along each axis.
type Vec3 = trace.Vec3

// Hit is the result of a Trace call.
type Hit = trace.Hit

// Trace fires a ray from o in direction d (both in voxel-space
// coordinates, not normalized to any particular range) and returns the
// first non-empty voxel it strikes, walking the base grid and the hashed
// node table together. Hit.Time is in the same units as the input ray:
// the struck point is o + Hit.Time*d.
//
// The traversal kernel operates over the canonical [1,2)^3 octree cube;
// Trace remaps (o, d) into that space before calling it, scaling both
// the same way so the reported Time stays in the caller's own units.
func (tr *Tree) Trace(o, d Vec3) Hit {
	scale := 1.0 / float64(Dim)
	ro := Vec3{X: o.X*scale + 1, Y: o.Y*scale + 1, Z: o.Z*scale + 1}
	rd := Vec3{X: d.X * scale, Y: d.Y * scale, Z: d.Z * scale}

	return trace.Trace(tr.table, tr.grid, trace.Params{Depth: Depth, BaseDepth: BaseDepth}, ro, rd)
}
