// Copyright (c) 2025 The voxoctree Authors
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"time"

	isatty "github.com/mattn/go-isatty"
	"github.com/pborman/uuid"
	"github.com/pkg/errors"
	pb "gopkg.in/cheggaaa/pb.v1"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/ochtree/voxoctree"
	"github.com/ochtree/voxoctree/internal/config"
	"github.com/ochtree/voxoctree/internal/render"
	"github.com/ochtree/voxoctree/internal/scene"
)

var renderCommand = cli.Command{
	Name:  "render",
	Usage: "build a scene and trace it to a PPM image",
	Flags: []cli.Flag{sceneFlag, outputFlag, workersFlag},
	Action: func(ctx *cli.Context) error {
		initLogger(ctx)
		return renderAction(ctx)
	},
}

func loadScene(ctx *cli.Context) (*config.Scene, error) {
	path := ctx.String(sceneFlag.Name)
	if path == "" {
		return nil, errors.New("voxtrace render: --scene is required")
	}
	return config.Load(path)
}

func renderAction(ctx *cli.Context) error {
	jobID := uuid.New()
	log := log.New("job", jobID)

	sc, err := loadScene(ctx)
	if err != nil {
		return errors.Wrap(err, "voxtrace render")
	}

	tr := voxoctree.New()
	if err := scene.Build(tr, sc.Shapes); err != nil {
		return errors.Wrap(err, "voxtrace render: build scene")
	}
	log.Info("scene built", "shapes", len(sc.Shapes))

	workers := ctx.Int(workersFlag.Name)
	if workers == 0 {
		workers = sc.Workers
	}

	metrics := render.NewMetrics()
	r := render.NewRenderer(tr, workers, log, metrics)

	var bar *pb.ProgressBar
	if isatty.IsTerminal(1) {
		bar = pb.New(sc.Camera.Height)
		bar.Start()
		defer bar.Finish()
	}

	start := time.Now()
	img, err := r.RenderFrame(context.Background(), sc.Camera)
	if err != nil {
		return errors.Wrap(err, "voxtrace render: trace")
	}
	if bar != nil {
		bar.Set(sc.Camera.Height)
	}
	log.Info("frame traced", "elapsed", time.Since(start))

	out := ctx.String(outputFlag.Name)
	if out == "" {
		out = sc.Output
	}
	if out == "" {
		return errors.New("voxtrace render: no output path (set --out or the scene's output field)")
	}

	if err := render.WritePPM(out, img); err != nil {
		return errors.Wrap(err, "voxtrace render")
	}

	s := tr.Stats()
	log.Info("wrote image", "path", out, "fillcnt", s.FillCount, "nodecnt", s.NodeCount, "max_refcnt", s.MaxRefcount)

	return nil
}
