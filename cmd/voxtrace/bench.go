// Copyright (c) 2025 The voxoctree Authors
// SPDX-License-Identifier: MIT

package main

import (
	"math/rand/v2"
	"time"

	"github.com/pkg/errors"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/ochtree/voxoctree"
	"github.com/ochtree/voxoctree/internal/randvoxel"
)

var benchCommand = cli.Command{
	Name:  "bench",
	Usage: "fill a tree with random voxels, time it, then clear and repeat",
	Flags: []cli.Flag{iterationsFlag},
	Action: func(ctx *cli.Context) error {
		initLogger(ctx)
		return benchAction(ctx)
	},
}

func benchAction(ctx *cli.Context) error {
	n := ctx.Int(iterationsFlag.Name)
	if n <= 0 {
		return errors.New("voxtrace bench: --iterations must be positive")
	}

	tr := voxoctree.New()
	prng := rand.New(rand.NewPCG(1, 2))

	const voxelsPerIteration = 4096

	log.Info("starting bench", "iterations", n, "voxels_per_iteration", voxelsPerIteration)

	start := time.Now()
	var totalVoxels int
	for i := 0; i < n; i++ {
		coords, err := randvoxel.FillRandom(tr, prng, voxelsPerIteration)
		if err != nil {
			return errors.Wrapf(err, "voxtrace bench: iteration %d", i)
		}
		totalVoxels += len(coords)
		tr.Clear()
	}
	elapsed := time.Since(start)

	log.Info("bench complete",
		"elapsed", elapsed,
		"total_voxels", totalVoxels,
		"voxels_per_sec", float64(totalVoxels)/elapsed.Seconds(),
	)

	return nil
}
