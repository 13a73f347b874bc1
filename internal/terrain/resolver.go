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
	"math"

	"github.com/afc-project/afc-engine/pkg/afctypes"
)

// Resolver implements the §4.3 layered terrainHeight lookup:
//
//	(1) 3D building vector layer (top-of-roof height)
//	(2) LiDAR multi-band raster (ground, optional building)
//	(3) 2D building vector layer
//	(4) DEM raster (3DEP, SRTM)
//	(5) global fallback
//
// The first layer returning a defined value for its own concern wins; a
// ground height is always resolved from the DEM/fallback chain underneath
// whichever building layer answers, since a roof height is meaningless
// without the ground it sits on (an interpretation decision recorded in
// DESIGN.md, since the source spec is silent on this composition detail).
type Resolver struct {
	Building3D   BuildingVectorSource
	LiDAR        LidarSource
	Building2D   BuildingVectorSource
	DEM          RasterSource
	DEMSourceTag afctypes.HeightSource // tag to report for DEM hits, e.g. 3DEP or SRTM per config
	Fallback     RasterSource
	Morphology   MorphologySource
}

// Height resolves a (lat,lon) terrain query. It never returns NaN heights
// and always sets a SourceTag, even on a NoData result.
func (r *Resolver) Height(latDeg, lonDeg float64) afctypes.TerrainHeightResult {
	groundM, groundSrc, groundOK := r.resolveGround(latDeg, lonDeg)

	if r.Building3D != nil {
		if h, ok := r.Building3D.LookupRoofHeight(latDeg, lonDeg); ok && !math.IsNaN(h) {
			return afctypes.TerrainHeightResult{
				GroundHeightM: orZero(groundM, groundOK), BuildingHeightM: h,
				ResultClass: afctypes.TerrainBuilding, SourceTag: firstOr(groundSrc, afctypes.HeightSource3DEP),
			}
		}
	}
	if r.LiDAR != nil {
		if g, b, hasB, ok := r.LiDAR.Lookup(latDeg, lonDeg); ok && !math.IsNaN(g) {
			if hasB && !math.IsNaN(b) {
				return afctypes.TerrainHeightResult{
					GroundHeightM: g, BuildingHeightM: b,
					ResultClass: afctypes.TerrainBuilding, SourceTag: afctypes.HeightSourceLiDAR,
				}
			}
			return afctypes.TerrainHeightResult{
				GroundHeightM: g, ResultClass: afctypes.TerrainGround, SourceTag: afctypes.HeightSourceLiDAR,
			}
		}
	}
	if r.Building2D != nil {
		if h, ok := r.Building2D.LookupRoofHeight(latDeg, lonDeg); ok && !math.IsNaN(h) {
			return afctypes.TerrainHeightResult{
				GroundHeightM: orZero(groundM, groundOK), BuildingHeightM: h,
				ResultClass: afctypes.TerrainBuilding, SourceTag: firstOr(groundSrc, afctypes.HeightSource3DEP),
			}
		}
	}
	if groundOK {
		return afctypes.TerrainHeightResult{
			GroundHeightM: groundM, ResultClass: afctypes.TerrainGround, SourceTag: groundSrc,
		}
	}
	return afctypes.TerrainHeightResult{ResultClass: afctypes.TerrainNoData, SourceTag: afctypes.HeightSourceUnknown}
}

// Morphology resolves the NLCD-derived land-cover class for a point,
// defaulting to rural/"unknown" when no morphology source is configured or
// the point falls outside coverage.
func (r *Resolver) Morphology(latDeg, lonDeg float64) (afctypes.Morphology, string) {
	if r.Morphology == nil {
		return afctypes.MorphologyRural, "unknown"
	}
	if m, clutter, ok := r.Morphology.Lookup(latDeg, lonDeg); ok {
		return m, clutter
	}
	return afctypes.MorphologyRural, "unknown"
}

func (r *Resolver) resolveGround(latDeg, lonDeg float64) (float64, afctypes.HeightSource, bool) {
	if r.DEM != nil {
		if v, ok := r.DEM.Lookup(latDeg, lonDeg); ok && !math.IsNaN(v) {
			tag := r.DEMSourceTag
			if tag == "" {
				tag = afctypes.HeightSource3DEP
			}
			return v, tag, true
		}
	}
	if r.Fallback != nil {
		if v, ok := r.Fallback.Lookup(latDeg, lonDeg); ok && !math.IsNaN(v) {
			return v, afctypes.HeightSourceUnknown, true
		}
	}
	return 0, afctypes.HeightSourceUnknown, false
}

func orZero(v float64, ok bool) float64 {
	if !ok {
		return 0
	}
	return v
}

func firstOr(tag afctypes.HeightSource, def afctypes.HeightSource) afctypes.HeightSource {
	if tag == "" {
		return def
	}
	return tag
}
