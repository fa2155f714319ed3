// Copyright (c) 2025 The voxoctree Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"

	"github.com/inconshreveable/log15"
	cli "gopkg.in/urfave/cli.v1"
)

var log = log15.New()

func main() {
	app := cli.App{
		Version: "0.1.0",
		Name:    "voxtrace",
		Usage:   "sparse voxel octree scene renderer",
		Flags: []cli.Flag{
			verbosityFlag,
		},
		Commands: []cli.Command{
			renderCommand,
			benchCommand,
			statsCommand,
			serveCommand,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func initLogger(ctx *cli.Context) {
	lvl := ctx.GlobalInt(verbosityFlag.Name)
	log15.Root().SetHandler(log15.LvlFilterHandler(log15.Lvl(lvl), log15.StderrHandler))
}
