// Copyright (c) 2025 The voxoctree Authors
// SPDX-License-Identifier: MIT

// Package randvoxel generates randomized voxel coordinates, payloads and
// rays for property-style tests and benchmarks, the way the teacher's
// internal/golden and internal/tests/random packages generate randomized
// prefixes: callers own the *rand.Rand, nothing here seeds a shared,
// process-global generator.
package randvoxel

import (
	"math/rand/v2"

	"github.com/ochtree/voxoctree"
)

// Coord returns a uniformly random coordinate triple within [0, voxoctree.Dim)^3.
func Coord(prng *rand.Rand) (x, y, z uint32) {
	const dim = voxoctree.Dim
	return uint32(prng.UintN(dim)), uint32(prng.UintN(dim)), uint32(prng.UintN(dim))
}

// Value returns a random non-zero leaf payload. Zero is reserved for
// "empty" and is never produced here.
func Value(prng *rand.Rand) uint32 {
	v := prng.Uint32()
	if v == 0 {
		v = 1
	}
	return v
}

// Ray returns a random origin outside, on or inside the tree's cube and a
// random, possibly axis-degenerate direction, suitable for exercising
// Tree.Trace against arbitrary starting positions.
func Ray(prng *rand.Rand) (o, d voxoctree.Vec3) {
	const dim = float64(voxoctree.Dim)

	span := dim * 2
	o = voxoctree.Vec3{
		X: prng.Float64()*span - dim/2,
		Y: prng.Float64()*span - dim/2,
		Z: prng.Float64()*span - dim/2,
	}

	d = voxoctree.Vec3{
		X: prng.Float64()*2 - 1,
		Y: prng.Float64()*2 - 1,
		Z: prng.Float64()*2 - 1,
	}
	if d.X == 0 && d.Y == 0 && d.Z == 0 {
		d.X = 1
	}
	return o, d
}

// FillRandom writes n random non-empty voxels into tr, returning the
// coordinates actually written (a later write may overwrite an earlier
// one at the same coordinate).
func FillRandom(tr *voxoctree.Tree, prng *rand.Rand, n int) ([][3]uint32, error) {
	coords := make([][3]uint32, n)
	for i := range coords {
		x, y, z := Coord(prng)
		coords[i] = [3]uint32{x, y, z}
		if err := tr.Set(x, y, z, Value(prng)); err != nil {
			return nil, err
		}
	}
	return coords, nil
}
