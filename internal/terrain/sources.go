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

// Package terrain implements the layered terrain/height resolver (§4.3).
// Raster (GeoTIFF) and vector (Shapefile) file readers are external
// collaborators per spec §1; this package only defines the narrow
// "raster source" / "vector source" interfaces those readers must satisfy,
// and the precedence logic that combines them.
package terrain

import "github.com/afc-project/afc-engine/pkg/afctypes"

// RasterSource is a single-band height raster (e.g. a 3DEP or SRTM DEM
// tile) exposed by an external GeoTIFF reader.
type RasterSource interface {
	Lookup(latDeg, lonDeg float64) (heightM float64, ok bool)
}

// LidarSource is a multi-band raster exposing both ground and, where
// present, building-top height at a point.
type LidarSource interface {
	Lookup(latDeg, lonDeg float64) (groundM, buildingM float64, hasBuilding bool, ok bool)
}

// BuildingVectorSource is a polygon overlay (2D or 3D footprints) exposed
// by an external Shapefile reader, returning a per-polygon roof height.
type BuildingVectorSource interface {
	LookupRoofHeight(latDeg, lonDeg float64) (heightM float64, ok bool)
}

// MorphologySource resolves NLCD land-cover class at a point.
type MorphologySource interface {
	Lookup(latDeg, lonDeg float64) (m afctypes.Morphology, clutterClass string, ok bool)
}
