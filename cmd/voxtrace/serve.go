// Copyright (c) 2025 The voxoctree Authors
// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/ochtree/voxoctree"
	"github.com/ochtree/voxoctree/internal/config"
	"github.com/ochtree/voxoctree/internal/render"
	"github.com/ochtree/voxoctree/internal/scene"
)

var serveCommand = cli.Command{
	Name:  "serve",
	Usage: "render a scene repeatedly behind an HTTP preview/metrics server",
	Flags: []cli.Flag{sceneFlag, workersFlag, listenFlag},
	Action: func(ctx *cli.Context) error {
		initLogger(ctx)
		return serveAction(ctx)
	},
}

func healthzHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]string{"status": "ok"}); err != nil {
		log.Warn("healthz: write response", "err", err)
	}
}

func previewHandler(cam config.Camera, r *render.Renderer, cache *render.TileCache) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		key := render.CameraKey(cam, 0, 0, cam.Width, cam.Height)
		if tile, ok := cache.Get(key); ok {
			w.Header().Set("X-Tile-Cache", "hit")
			w.Header().Set("Content-Type", "image/x-portable-graymap")
			if err := render.EncodePPM(w, &render.Image{Width: cam.Width, Height: cam.Height, Pixels: tile.Pixels}); err != nil {
				log.Warn("preview: write cached tile", "err", err)
			}
			return
		}

		img, err := r.RenderFrame(req.Context(), cam)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		cache.Put(key, &render.Tile{X0: 0, Y0: 0, X1: cam.Width, Y1: cam.Height, Pixels: img.Pixels})

		w.Header().Set("Content-Type", "image/x-portable-graymap")
		w.Header().Set("X-Tile-Cache", "miss")
		if err := render.EncodePPM(w, img); err != nil {
			log.Warn("preview: write frame", "err", err)
		}
	}
}

func serveAction(ctx *cli.Context) error {
	path := ctx.String(sceneFlag.Name)
	if path == "" {
		return errors.New("voxtrace serve: --scene is required")
	}
	sc, err := config.Load(path)
	if err != nil {
		return errors.Wrap(err, "voxtrace serve")
	}

	tr := voxoctree.New()
	if err := scene.Build(tr, sc.Shapes); err != nil {
		return errors.Wrap(err, "voxtrace serve: build scene")
	}

	workers := ctx.Int(workersFlag.Name)
	if workers == 0 {
		workers = sc.Workers
	}

	metrics := render.NewMetrics()
	reg := prometheus.NewRegistry()
	if err := metrics.Register(reg); err != nil {
		return errors.Wrap(err, "voxtrace serve: register metrics")
	}
	s := tr.Stats()
	metrics.Sample(s.FillCount, s.NodeCount, s.MaxRefcount)

	r := render.NewRenderer(tr, workers, log, metrics)
	cache := render.NewTileCache(64)

	router := mux.NewRouter()
	router.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	router.HandleFunc("/healthz", healthzHandler)
	router.HandleFunc("/preview", previewHandler(sc.Camera, r, cache))

	addr := ctx.String(listenFlag.Name)
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return errors.Wrapf(err, "voxtrace serve: listen %s", addr)
	}

	srv := &http.Server{
		Handler:           router,
		ReadHeaderTimeout: time.Second,
		ReadTimeout:       5 * time.Second,
	}

	log.Info("serving", "addr", listener.Addr().String())

	if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "voxtrace serve")
	}
	return nil
}
