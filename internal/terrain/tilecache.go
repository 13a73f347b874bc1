// Copyright (c) 2023, The AFC Engine Authors.
// All rights reserved.
//
// Redistribution and use in source and binary forms, with or without
// modification, are permitted provided that the following conditions are met:
// 1. Redistributions of source code must retain the above copyright
//    notice, this list of conditions and the following disclaimer.
// 2. Redistributions in binary form must reproduce the above copyright
//    notice, this list of conditions and the following disclaimer in the
//    documentation and/or other materials provided with the distribution.
// 3. Neither the name of the copyright holder nor the
//    names of its contributors may be used to endorse or promote products
//    derived from this software without specific prior written permission.
//
// THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
// AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
// IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE
// ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE
// LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR
// CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF
// SUBSTITUTE GOODS OR SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS
// INTERRUPTION) HOWEVER CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN
// CONTRACT, STRICT LIABILITY, OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE)
// ARISING IN ANY WAY OUT OF THE USE OF THIS SOFTWARE, EVEN IF ADVISED OF THE
// POSSIBILITY OF SUCH DAMAGE.

package terrain

import (
	"fmt"
	"math"
	"sync"

	"golang.org/x/sync/singleflight"
)

// BoundingBox is a geographic tile key in tenths-of-a-degree; a 1x1 deg
// DEM tile spans 100 of these keys, each faulted in through the loader
// separately.
type BoundingBox struct {
	MinLatDeg, MinLonDeg int // floor(lat*10), floor(lon*10)
}

// TileKeyFor buckets a (lat,lon) query into its tile's BoundingBox.
func TileKeyFor(latDeg, lonDeg float64) BoundingBox {
	return BoundingBox{MinLatDeg: int(math.Floor(latDeg * 10)), MinLonDeg: int(math.Floor(lonDeg * 10))}
}

// TileLoader fetches (faults in) the raster tile covering a BoundingBox.
// This is where an external GeoTIFF reader would actually touch disk/mmap.
type TileLoader func(bb BoundingBox) (RasterSource, error)

// TileCache is a concurrency-safe, at-most-one-fault-in-per-tile cache, per
// spec §5 ("Terrain tile cache is safe for concurrent read ... or per-
// worker mmap handles"). Reads never block on each other once a tile is
// resident; concurrent faults for the same tile collapse into one load via
// singleflight, matching the "at-most-one-build-per-key" requirement also
// specified for the elevation-profile cache.
type TileCache struct {
	mu     sync.RWMutex
	tiles  map[BoundingBox]RasterSource
	group  singleflight.Group
	loader TileLoader
}

// NewTileCache creates a tile cache backed by loader.
func NewTileCache(loader TileLoader) *TileCache {
	return &TileCache{tiles: make(map[BoundingBox]RasterSource), loader: loader}
}

// Lookup resolves a height query, faulting in the covering tile at most
// once across concurrent callers.
func (c *TileCache) Lookup(latDeg, lonDeg float64) (float64, bool) {
	bb := TileKeyFor(latDeg, lonDeg)
	c.mu.RLock()
	tile, ok := c.tiles[bb]
	c.mu.RUnlock()
	if !ok {
		v, err, _ := c.group.Do(keyFor(bb), func() (interface{}, error) {
			t, loadErr := c.loader(bb)
			if loadErr != nil {
				return nil, loadErr
			}
			c.mu.Lock()
			c.tiles[bb] = t
			c.mu.Unlock()
			return t, nil
		})
		if err != nil || v == nil {
			return 0, false
		}
		tile = v.(RasterSource)
	}
	if tile == nil {
		return 0, false
	}
	return tile.Lookup(latDeg, lonDeg)
}

func keyFor(bb BoundingBox) string {
	return fmt.Sprintf("%d:%d", bb.MinLatDeg, bb.MinLonDeg)
}
