// Copyright (c) 2025 The voxoctree Authors
// SPDX-License-Identifier: MIT

// Package render is the worker-pool ray tracer around the core: it turns a
// camera pose and a *voxoctree.Tree into a raster image by firing one
// Trace per pixel, partitioning the image plane across goroutines the way
// spec.md §5 describes the rendering thread-pool as an external
// collaborator of the core.
package render

import (
	"context"
	"math"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/inconshreveable/log15"
	"golang.org/x/sync/errgroup"

	"github.com/ochtree/voxoctree"
	"github.com/ochtree/voxoctree/internal/config"
)

// Pixel is one shaded sample: a grayscale intensity in [0, 255].
type Pixel uint8

// Tile is a rectangular region of a rendered frame: Pixels has
// (X1-X0)*(Y1-Y0) entries, row-major starting at (X0, Y0).
type Tile struct {
	X0, Y0, X1, Y1 int
	Pixels         []Pixel
}

// Image is a complete rendered frame.
type Image struct {
	Width, Height int
	Pixels        []Pixel
}

// Renderer traces camera rays against a fixed *voxoctree.Tree.
type Renderer struct {
	Tree    *voxoctree.Tree
	Workers int // 0 means runtime.NumCPU()
	Log     log15.Logger
	Metrics *Metrics
}

// NewRenderer builds a Renderer over tr. If log is nil, a discarding
// logger is used.
func NewRenderer(tr *voxoctree.Tree, workers int, log log15.Logger, metrics *Metrics) *Renderer {
	if log == nil {
		log = log15.New()
		log.SetHandler(log15.DiscardHandler())
	}
	return &Renderer{Tree: tr, Workers: workers, Log: log, Metrics: metrics}
}

// directionOf builds the camera's orthonormal basis (forward, right, up)
// and returns the world-space ray direction through pixel (px, py).
func directionOf(cam config.Camera, px, py int) voxoctree.Vec3 {
	o, t, up := cam.Origin, cam.Target, cam.Up

	fwd := normalize(sub(t, o))
	right := normalize(cross(fwd, up))
	camUp := cross(right, fwd)

	halfH := math.Tan(cam.FOVDegrees * math.Pi / 360)
	aspect := float64(cam.Width) / float64(cam.Height)
	halfW := halfH * aspect

	u := (float64(px)+0.5)/float64(cam.Width)*2 - 1
	v := 1 - (float64(py)+0.5)/float64(cam.Height)*2

	dir := add(fwd, add(scale(right, u*halfW), scale(camUp, v*halfH)))
	return toVec3(normalize(dir))
}

// shade maps a hit into a grayscale intensity: each cube face gets its own
// fixed brightness (a cheap directional light with no shadows or
// secondary bounces, per spec.md's Non-goals), and a miss is black.
func shade(hit voxoctree.Hit) Pixel {
	if hit.Direction == voxoctree.Exit || hit.Voxel == 0 {
		return 0
	}
	switch hit.Direction {
	case voxoctree.PosX, voxoctree.NegX:
		return 220
	case voxoctree.PosY, voxoctree.NegY:
		return 255
	default:
		return 160
	}
}

// RenderFrame traces one ray per pixel of cam's width x height grid,
// partitioning rows across Workers goroutines via errgroup.
func (r *Renderer) RenderFrame(ctx context.Context, cam config.Camera) (*Image, error) {
	start := time.Now()

	workers := r.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > cam.Height {
		workers = cam.Height
	}
	if workers < 1 {
		workers = 1
	}

	img := &Image{Width: cam.Width, Height: cam.Height, Pixels: make([]Pixel, cam.Width*cam.Height)}

	g, gctx := errgroup.WithContext(ctx)
	rowsPerWorker := (cam.Height + workers - 1) / workers

	var rayCount, hitCount int64

	for w := 0; w < workers; w++ {
		y0 := w * rowsPerWorker
		y1 := y0 + rowsPerWorker
		if y1 > cam.Height {
			y1 = cam.Height
		}
		if y0 >= y1 {
			continue
		}

		g.Go(func() error {
			var localRays, localHits int64
			for py := y0; py < y1; py++ {
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}
				for px := 0; px < cam.Width; px++ {
					dir := directionOf(cam, px, py)
					hit := r.Tree.Trace(voxoctree.Vec3{X: cam.Origin[0], Y: cam.Origin[1], Z: cam.Origin[2]}, dir)
					localRays++
					if hit.Direction != voxoctree.Exit {
						localHits++
					}
					img.Pixels[py*cam.Width+px] = shade(hit)
				}
			}
			atomic.AddInt64(&rayCount, localRays)
			atomic.AddInt64(&hitCount, localHits)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	elapsed := time.Since(start)
	r.Log.Debug("frame rendered", "width", cam.Width, "height", cam.Height, "rays", rayCount, "hits", hitCount, "elapsed", elapsed)

	if r.Metrics != nil {
		r.Metrics.RaysTraced.Add(float64(rayCount))
		r.Metrics.RaysHit.Add(float64(hitCount))
		r.Metrics.FrameSeconds.Observe(elapsed.Seconds())
	}

	return img, nil
}

func sub(a, b [3]float64) [3]float64 { return [3]float64{a[0] - b[0], a[1] - b[1], a[2] - b[2]} }
func add(a, b [3]float64) [3]float64 { return [3]float64{a[0] + b[0], a[1] + b[1], a[2] + b[2]} }
func scale(a [3]float64, s float64) [3]float64 {
	return [3]float64{a[0] * s, a[1] * s, a[2] * s}
}
func cross(a, b [3]float64) [3]float64 {
	return [3]float64{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}
func normalize(a [3]float64) [3]float64 {
	n := math.Sqrt(a[0]*a[0] + a[1]*a[1] + a[2]*a[2])
	if n == 0 {
		return [3]float64{}
	}
	return [3]float64{a[0] / n, a[1] / n, a[2] / n}
}
func toVec3(a [3]float64) voxoctree.Vec3 { return voxoctree.Vec3{X: a[0], Y: a[1], Z: a[2]} }
