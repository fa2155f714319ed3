// Copyright (c) 2025 The voxoctree Authors
// SPDX-License-Identifier: MIT

package render

import (
	"encoding/binary"
	"math"

	lru "github.com/hashicorp/golang-lru"
	"golang.org/x/crypto/blake2b"

	"github.com/ochtree/voxoctree/internal/config"
)

// TileCache remembers recently rendered tiles keyed by a hash of the
// camera pose that produced them, so the `serve` preview loop can skip
// re-tracing a tile whose camera hasn't moved since the last frame.
type TileCache struct {
	cache *lru.Cache
}

// NewTileCache builds a cache holding up to maxTiles entries.
func NewTileCache(maxTiles int) *TileCache {
	c, _ := lru.New(maxTiles) // only errors on a non-positive size
	return &TileCache{cache: c}
}

// CameraKey hashes the camera pose (and the tile's pixel-rect within the
// full frame) into a stable cache key. Two calls with byte-identical
// cameras and rects always produce the same key.
func CameraKey(cam config.Camera, x0, y0, x1, y1 int) [32]byte {
	var buf []byte
	for _, f := range []float64{
		cam.Origin[0], cam.Origin[1], cam.Origin[2],
		cam.Target[0], cam.Target[1], cam.Target[2],
		cam.Up[0], cam.Up[1], cam.Up[2],
		cam.FOVDegrees,
	} {
		var b [8]byte
		binary.LittleEndian.PutUint64(b[:], math.Float64bits(f))
		buf = append(buf, b[:]...)
	}
	var ib [16]byte
	binary.LittleEndian.PutUint32(ib[0:4], uint32(x0))
	binary.LittleEndian.PutUint32(ib[4:8], uint32(y0))
	binary.LittleEndian.PutUint32(ib[8:12], uint32(x1))
	binary.LittleEndian.PutUint32(ib[12:16], uint32(y1))
	buf = append(buf, ib[:]...)

	return blake2b.Sum256(buf)
}

// Get returns the cached tile for key, if any.
func (c *TileCache) Get(key [32]byte) (*Tile, bool) {
	v, ok := c.cache.Get(key)
	if !ok {
		return nil, false
	}
	return v.(*Tile), true
}

// Put stores tile under key, evicting the least recently used entry if
// the cache is at capacity.
func (c *TileCache) Put(key [32]byte, tile *Tile) {
	c.cache.Add(key, tile)
}

// Len returns the number of tiles currently cached.
func (c *TileCache) Len() int {
	return c.cache.Len()
}
