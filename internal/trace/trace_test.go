// Copyright (c) 2025 The voxoctree Authors
// SPDX-License-Identifier: MIT

package trace

import "testing"

// fakeNodes is a tiny in-memory NodeSource for unit tests, keyed directly
// by handle (handle 0 is reserved for "empty" and never stored).
type fakeNodes map[uint32][8]uint32

func (f fakeNodes) Children(h uint32) [8]uint32 { return f[h] }

// fakeGrid is a tiny in-memory GridSource for unit tests.
type fakeGrid map[uint32]uint32

func (f fakeGrid) At(i uint32) uint32 { return f[i] }

// All test rays are expressed directly in the kernel's own [1,2)^3
// coordinate space, the same convention Tree.Trace remaps world voxel
// coordinates into before calling this package.
func TestTraceMissEmptyTree(t *testing.T) {
	p := Params{Depth: 3, BaseDepth: 1}
	grid := fakeGrid{}
	nodes := fakeNodes{}

	hit := Trace(nodes, grid, p, Vec3{X: 0.5, Y: 1.2, Z: 1.2}, Vec3{X: 1, Y: 0, Z: 0})
	if hit.Direction != Exit {
		t.Fatalf("expected Exit on an all-empty tree, got %v", hit.Direction)
	}
	if hit.Voxel != 0 {
		t.Fatalf("expected Voxel 0 on a miss, got %d", hit.Voxel)
	}
}

func TestTraceMissRayNeverEntersCube(t *testing.T) {
	p := Params{Depth: 3, BaseDepth: 1}
	grid := fakeGrid{}
	nodes := fakeNodes{}

	// y and z sit outside [1,2) and the ray never moves along either axis:
	// it can never enter the cube, regardless of x.
	hit := Trace(nodes, grid, p, Vec3{X: 0.5, Y: 0, Z: 0}, Vec3{X: 1, Y: 0, Z: 0})
	if hit.Direction != Exit {
		t.Fatalf("expected Exit for a ray that never enters the cube, got %v", hit.Direction)
	}
}

func TestTraceHitsSingleVoxelMirroredAxisReportsNegFace(t *testing.T) {
	// Depth 3, BaseDepth 1: one base-grid lookup (level 1) followed by two
	// node-table levels (2 and 3, the latter holding the leaf value).
	p := Params{Depth: 3, BaseDepth: 1}

	leafNode := [8]uint32{}
	leafNode[0] = 42 // deepest level's octant (0,0,0) holds voxel 42

	midNode := [8]uint32{}
	midNode[0] = 1 // middle level's octant (0,0,0) points at handle 1 (leafNode)

	nodes := fakeNodes{2: midNode, 1: leafNode}
	grid := fakeGrid{0: 2} // base cell (0,0,0) points at handle 2 (midNode)

	// Ray travels in the world +x direction (mirrored internally) and
	// enters the cube from outside along x, landing in the low octant on
	// every axis (y = z = 1.1 lies in the lowest eighth of [1,2)).
	hit := Trace(nodes, grid, p, Vec3{X: 0.5, Y: 1.1, Z: 1.1}, Vec3{X: 1, Y: 0, Z: 0})
	if hit.Direction != NegX {
		t.Fatalf("expected NegX, got %v", hit.Direction)
	}
	if hit.Voxel != 42 {
		t.Fatalf("expected voxel 42, got %d", hit.Voxel)
	}
}

func TestTraceHitsSingleVoxelUnmirroredAxisReportsPosFace(t *testing.T) {
	p := Params{Depth: 3, BaseDepth: 1}

	leafNode := [8]uint32{}
	leafNode[1] = 99

	midNode := [8]uint32{}
	midNode[1] = 1

	nodes := fakeNodes{2: midNode, 1: leafNode}
	grid := fakeGrid{1: 2}

	// Ray travels in the world -x direction (never mirrored) starting to
	// the right of the cube.
	hit := Trace(nodes, grid, p, Vec3{X: 2.5, Y: 1.1, Z: 1.1}, Vec3{X: -1, Y: 0, Z: 0})
	if hit.Direction != PosX {
		t.Fatalf("expected PosX, got %v", hit.Direction)
	}
	if hit.Voxel != 99 {
		t.Fatalf("expected voxel 99, got %d", hit.Voxel)
	}
}

func TestTraceFoldsVirtualLevelsIntoBaseIndex(t *testing.T) {
	// Depth 4, BaseDepth 2: level 1 is virtual (folded into the base-grid
	// index rather than read directly), level 2 performs the one real
	// base-grid lookup, and levels 3-4 are node-table reads.
	p := Params{Depth: 4, BaseDepth: 2}

	nodes := fakeNodes{
		5: {0: 6},
		6: {6: 123},
	}
	grid := fakeGrid{0: 5}

	// y = z = 1.1 falls in cell 1 of 16 along each axis: octant bits 0, 0,
	// 0, 1 from level 1 down, so the last node-table level reads octant 6.
	hit := Trace(nodes, grid, p, Vec3{X: 0.5, Y: 1.1, Z: 1.1}, Vec3{X: 1, Y: 0, Z: 0})
	if hit.Direction != NegX {
		t.Fatalf("expected NegX, got %v", hit.Direction)
	}
	if hit.Voxel != 123 {
		t.Fatalf("expected voxel 123, got %d", hit.Voxel)
	}
}
