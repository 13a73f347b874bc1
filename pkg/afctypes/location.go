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

// Package afctypes defines the shared data model for the AFC interference
// analysis engine: locations, antennas, FS links, RLAN requests, channels,
// scan points and the intermediate results the propagation pipeline
// produces. Types here are plain data — behavior lives in the internal
// packages that consume them.
package afctypes

// HeightSource records which terrain/building data source produced a
// height value.
type HeightSource string

const (
	HeightSourceSRTM    HeightSource = "SRTM"
	HeightSourceLiDAR   HeightSource = "LiDAR"
	HeightSource3DEP    HeightSource = "3DEP"
	HeightSourceDEM     HeightSource = "DEM"
	HeightSourceUnknown HeightSource = "unknown"
)

// Location is a WGS84 geographic point with height bookkeeping. Heights are
// in metres; frequencies elsewhere in the model are in MHz unless noted.
type Location struct {
	LatitudeDeg       float64
	LongitudeDeg      float64
	HeightAboveTerrain float64 // AGL, metres
	HeightAMSL        float64
	HeightSource      HeightSource
}

// Morphology is the NLCD-derived land-cover class used to pick a
// propagation sub-model.
type Morphology string

const (
	MorphologyRural    Morphology = "rural"
	MorphologySuburban Morphology = "suburban"
	MorphologyUrban    Morphology = "urban"
)

// IndoorDeployment mirrors the AFC request's indoorDeployment enum.
type IndoorDeployment int

const (
	IndoorUnknown IndoorDeployment = 0
	IndoorTrue    IndoorDeployment = 1
	IndoorFalse   IndoorDeployment = 2
)

// BuildingType distinguishes building-penetration-loss lookup tables.
type BuildingType string

const (
	BuildingTraditional       BuildingType = "traditional"
	BuildingThermallyEfficient BuildingType = "thermallyEfficient"
)
