// Copyright (c) 2025 The voxoctree Authors
// SPDX-License-Identifier: MIT

package render

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ochtree/voxoctree"
	"github.com/ochtree/voxoctree/internal/config"
)

func testCamera() config.Camera {
	return config.Camera{
		Origin:     [3]float64{-20, float64(voxoctree.Dim) / 2, float64(voxoctree.Dim) / 2},
		Target:     [3]float64{float64(voxoctree.Dim) / 2, float64(voxoctree.Dim) / 2, float64(voxoctree.Dim) / 2},
		Up:         [3]float64{0, 1, 0},
		FOVDegrees: 60,
		Width:      16,
		Height:     12,
	}
}

// singlePixelCamera has exactly one pixel, whose ray direction reduces to
// the camera's forward vector exactly (u=v=0), regardless of FOV: a
// deterministic way to test that a specific voxel gets hit.
func singlePixelCamera(origin, target [3]float64) config.Camera {
	return config.Camera{
		Origin:     origin,
		Target:     target,
		Up:         [3]float64{0, 1, 0},
		FOVDegrees: 60,
		Width:      1,
		Height:     1,
	}
}

func TestRenderFrameHitsFilledVoxel(t *testing.T) {
	tr := voxoctree.New()
	const v = 2000
	require.NoError(t, tr.Set(v, v, v, 42))

	// Origin sits well outside the cube along -x, so the ray is clipped
	// exactly onto the x=1 cube face rather than starting mid-cell; y and
	// z are offset by exactly half a voxel from an integer coordinate, the
	// same non-grid-aligned offset the core package's own tests use to
	// avoid landing exactly on a cell boundary.
	cam := singlePixelCamera(
		[3]float64{-5, v + 0.5, v + 0.5},
		[3]float64{v, v + 0.5, v + 0.5},
	)

	r := NewRenderer(tr, 1, nil, nil)
	img, err := r.RenderFrame(context.Background(), cam)
	require.NoError(t, err)
	require.Len(t, img.Pixels, 1)
	assert.NotEqual(t, Pixel(0), img.Pixels[0], "the single pixel aimed straight at the filled voxel should not be black")
}

func TestRenderFrameEmptyTreeIsAllBlack(t *testing.T) {
	tr := voxoctree.New()
	r := NewRenderer(tr, 1, nil, nil)
	img, err := r.RenderFrame(context.Background(), testCamera())
	require.NoError(t, err)

	for i, p := range img.Pixels {
		assert.Equalf(t, Pixel(0), p, "pixel %d of an empty tree should be black", i)
	}
}

func TestEncodePPMRoundTripsDimensions(t *testing.T) {
	img := &Image{Width: 4, Height: 3, Pixels: make([]Pixel, 12)}
	var buf bytes.Buffer
	require.NoError(t, EncodePPM(&buf, img))

	want := "P5\n4 3\n255\n"
	assert.Equal(t, want, buf.String()[:len(want)])
	assert.Equal(t, len(want)+12, buf.Len())
}

func TestTileCacheRoundTrips(t *testing.T) {
	cache := NewTileCache(4)
	cam := testCamera()
	key := CameraKey(cam, 0, 0, 16, 12)

	_, ok := cache.Get(key)
	assert.False(t, ok)

	tile := &Tile{X0: 0, Y0: 0, X1: 16, Y1: 12, Pixels: make([]Pixel, 16*12)}
	cache.Put(key, tile)

	got, ok := cache.Get(key)
	require.True(t, ok)
	assert.Same(t, tile, got)

	movedCam := cam
	movedCam.Origin[0] += 1
	_, ok = cache.Get(CameraKey(movedCam, 0, 0, 16, 12))
	assert.False(t, ok, "a moved camera must miss the cache")
}
