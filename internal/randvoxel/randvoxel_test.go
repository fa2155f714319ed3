// Copyright (c) 2025 The voxoctree Authors
// SPDX-License-Identifier: MIT

package randvoxel

import (
	"math/rand/v2"
	"testing"

	"github.com/ochtree/voxoctree"
)

func TestCoordInBounds(t *testing.T) {
	prng := rand.New(rand.NewPCG(1, 2))
	for range 1000 {
		x, y, z := Coord(prng)
		if x >= voxoctree.Dim || y >= voxoctree.Dim || z >= voxoctree.Dim {
			t.Fatalf("coordinate out of bounds: (%d,%d,%d)", x, y, z)
		}
	}
}

func TestValueNeverZero(t *testing.T) {
	prng := rand.New(rand.NewPCG(3, 4))
	for range 1000 {
		if Value(prng) == 0 {
			t.Fatal("Value produced 0, which means \"empty\"")
		}
	}
}

func TestRayNeverAllZeroDirection(t *testing.T) {
	prng := rand.New(rand.NewPCG(5, 6))
	for range 1000 {
		_, d := Ray(prng)
		if d.X == 0 && d.Y == 0 && d.Z == 0 {
			t.Fatal("Ray produced the all-zero direction")
		}
	}
}

func TestFillRandomRoundTrips(t *testing.T) {
	tr := voxoctree.New()
	prng := rand.New(rand.NewPCG(7, 8))

	coords, err := FillRandom(tr, prng, 200)
	if err != nil {
		t.Fatalf("FillRandom: %v", err)
	}

	for _, c := range coords {
		v, err := tr.At(c[0], c[1], c[2])
		if err != nil {
			t.Fatalf("At(%v): %v", c, err)
		}
		if v == 0 {
			t.Fatalf("At(%v) = 0, want the non-zero value FillRandom wrote", c)
		}
	}
}
