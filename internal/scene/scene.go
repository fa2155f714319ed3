// Copyright (c) 2025 The voxoctree Authors
// SPDX-License-Identifier: MIT

// Package scene builds a voxel field into a tree from a parsed
// configuration document: the collaborator layer the core spec names but
// deliberately leaves unspecified (§1: "external collaborator").
package scene

import (
	"bufio"
	"os"

	"github.com/pkg/errors"

	"github.com/ochtree/voxoctree"
	"github.com/ochtree/voxoctree/internal/config"
)

// Build fills tr with every shape in shapes, in order. Later shapes may
// overwrite voxels placed by earlier ones.
func Build(tr *voxoctree.Tree, shapes []config.Shape) error {
	for i, sh := range shapes {
		var err error
		switch sh.Type {
		case "box":
			err = buildBox(tr, sh)
		case "sphere":
			err = buildSphere(tr, sh)
		case "heightfield":
			err = buildHeightfield(tr, sh)
		default:
			err = errors.Errorf("unknown shape type %q", sh.Type)
		}
		if err != nil {
			return errors.Wrapf(err, "scene: shapes[%d]", i)
		}
	}
	return nil
}

func buildBox(tr *voxoctree.Tree, sh config.Shape) error {
	min, max := sh.Min, sh.Max
	for x := min[0]; x < max[0]; x++ {
		for y := min[1]; y < max[1]; y++ {
			for z := min[2]; z < max[2]; z++ {
				if err := tr.Set(x, y, z, sh.Value); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func buildSphere(tr *voxoctree.Tree, sh config.Shape) error {
	r := sh.Radius
	if r <= 0 {
		return errors.New("sphere radius must be positive")
	}
	cx, cy, cz := sh.Center[0], sh.Center[1], sh.Center[2]

	lo := clampAxis(cx - r)
	hi := clampAxis(cx + r)
	loY := clampAxis(cy - r)
	hiY := clampAxis(cy + r)
	loZ := clampAxis(cz - r)
	hiZ := clampAxis(cz + r)

	r2 := r * r
	for x := lo; x <= hi; x++ {
		dx := float64(x) + 0.5 - cx
		for y := loY; y <= hiY; y++ {
			dy := float64(y) + 0.5 - cy
			for z := loZ; z <= hiZ; z++ {
				dz := float64(z) + 0.5 - cz
				if dx*dx+dy*dy+dz*dz > r2 {
					continue
				}
				if err := tr.Set(x, y, z, sh.Value); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func clampAxis(v float64) uint32 {
	if v < 0 {
		return 0
	}
	if v > float64(voxoctree.Dim-1) {
		return voxoctree.Dim - 1
	}
	return uint32(v)
}

// buildHeightfield reads a whitespace-separated grid of Width*Depth
// non-negative column heights and fills each column from y=0 up to its
// height (exclusive) along the Y axis.
func buildHeightfield(tr *voxoctree.Tree, sh config.Shape) error {
	f, err := os.Open(sh.Heightmap)
	if err != nil {
		return errors.Wrapf(err, "open heightmap %s", sh.Heightmap)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	sc.Split(bufio.ScanWords)

	for z := uint32(0); z < sh.Depth; z++ {
		for x := uint32(0); x < sh.Width; x++ {
			if !sc.Scan() {
				return errors.Errorf("heightmap %s: expected %d values, ran out at row %d col %d",
					sh.Heightmap, sh.Width*sh.Depth, z, x)
			}
			h, err := parseUint(sc.Text())
			if err != nil {
				return errors.Wrapf(err, "heightmap %s: row %d col %d", sh.Heightmap, z, x)
			}
			for y := uint32(0); y < h; y++ {
				if err := tr.Set(x, y, z, sh.Value); err != nil {
					return err
				}
			}
		}
	}
	return sc.Err()
}

func parseUint(s string) (uint32, error) {
	var v uint32
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, errors.Errorf("not a non-negative integer: %q", s)
		}
		v = v*10 + uint32(c-'0')
	}
	return v, nil
}
