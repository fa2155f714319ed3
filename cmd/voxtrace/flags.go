// Copyright (c) 2025 The voxoctree Authors
// SPDX-License-Identifier: MIT

package main

import (
	"github.com/inconshreveable/log15"
	cli "gopkg.in/urfave/cli.v1"
)

var (
	verbosityFlag = cli.IntFlag{
		Name:  "verbosity",
		Value: int(log15.LvlInfo),
		Usage: "log verbosity (0-4)",
	}
	sceneFlag = cli.StringFlag{
		Name:  "scene",
		Usage: "path to a scene YAML file",
	}
	outputFlag = cli.StringFlag{
		Name:  "out",
		Usage: "output PPM image path (overrides the scene file's output field)",
	}
	workersFlag = cli.IntFlag{
		Name:  "workers",
		Usage: "render worker-pool size (0 = the scene file's workers value, or the CPU count if that is 0 too)",
	}
	iterationsFlag = cli.IntFlag{
		Name:  "iterations",
		Value: 1000,
		Usage: "number of fill/clear cycles for bench",
	}
	listenFlag = cli.StringFlag{
		Name:  "listen",
		Value: "127.0.0.1:8080",
		Usage: "address for the serve subcommand's HTTP server",
	}
	dumpFlag = cli.BoolFlag{
		Name:  "dump",
		Usage: "print node-table occupancy per contiguous slot region alongside the summary counters",
	}
)
