// Copyright (c) 2025 The voxoctree Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"math/rand/v2"

	"github.com/elastic/gosigar"
	"github.com/pkg/errors"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/ochtree/voxoctree"
	"github.com/ochtree/voxoctree/internal/config"
	"github.com/ochtree/voxoctree/internal/randvoxel"
	"github.com/ochtree/voxoctree/internal/scene"
)

var statsCommand = cli.Command{
	Name:  "stats",
	Usage: "build a scene (or a random fill) and print node-table diagnostics",
	Flags: []cli.Flag{sceneFlag, dumpFlag},
	Action: func(ctx *cli.Context) error {
		initLogger(ctx)
		return statsAction(ctx)
	},
}

func statsAction(ctx *cli.Context) error {
	tr := voxoctree.New()

	if path := ctx.String(sceneFlag.Name); path != "" {
		sc, err := config.Load(path)
		if err != nil {
			return errors.Wrap(err, "voxtrace stats")
		}
		if err := scene.Build(tr, sc.Shapes); err != nil {
			return errors.Wrap(err, "voxtrace stats: build scene")
		}
	} else {
		prng := rand.New(rand.NewPCG(3, 4))
		if _, err := randvoxel.FillRandom(tr, prng, 4096); err != nil {
			return errors.Wrap(err, "voxtrace stats: random fill")
		}
	}

	s := tr.Stats()
	fmt.Printf("fillcnt:     %d\n", s.FillCount)
	fmt.Printf("nodecnt:     %d\n", s.NodeCount)
	fmt.Printf("max_refcnt:  %d\n", s.MaxRefcount)

	var mem gosigar.Mem
	if err := mem.Get(); err != nil {
		log.Warn("failed to read host memory", "err", err)
	} else {
		fmt.Printf("host mem:    %d MiB total, %d MiB free\n", mem.Total/1024/1024, mem.Free/1024/1024)
	}

	if ctx.Bool(dumpFlag.Name) {
		buckets := tr.NodeTableOccupancy(16)
		fmt.Println("node table occupancy (16 buckets):")
		for i, frac := range buckets {
			fmt.Printf("  [%2d] %5.1f%%\n", i, frac*100)
		}
	}

	return nil
}
