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

package afctypes

// PropagationModelTag names which model branch produced a PropagationResult,
// for exc_thr.csv reporting.
type PropagationModelTag string

const (
	ModelFreeSpace PropagationModelTag = "FSPL"
	ModelITM       PropagationModelTag = "ITM"
	ModelWinner2   PropagationModelTag = "WINNER2"
	ModelBlend     PropagationModelTag = "ITM+WINNER2"
)

// PropagationResult is the composed path loss for one segment, plus the
// breakdown the spec requires for reporting.
type PropagationResult struct {
	PathLossDB               float64
	ModelTag                 PropagationModelTag
	ClutterLossDB            float64
	BuildingPenetrationLossDB float64
	FreeSpaceLossDB          float64
	ITMLossDB                float64
	Winner2LossDB            float64
	IsLOS                    bool
}

// TerrainResultClass distinguishes a ground-only hit from a building hit
// from a data-coverage miss.
type TerrainResultClass string

const (
	TerrainGround  TerrainResultClass = "Ground"
	TerrainBuilding TerrainResultClass = "Building"
	TerrainNoData  TerrainResultClass = "NoData"
)

// TerrainHeightResult is the layered terrain resolver's output for one
// (lat, lon) query.
type TerrainHeightResult struct {
	GroundHeightM   float64
	BuildingHeightM float64 // valid iff ResultClass == TerrainBuilding
	ResultClass     TerrainResultClass
	SourceTag       HeightSource
}

// AntennaCatalogEntry is one row of the antenna-model catalog used by the
// FS ingester's model-matching step.
type AntennaCatalogEntry struct {
	Name                  string
	Category              AntennaCategory
	DiameterM             float64
	MidbandGainDB         float64
	ReflectorWidthLambda  float64
	ReflectorHeightLambda float64
	Type                  AntennaCatalogEntryType
}

type AntennaCatalogEntryType string

const (
	CatalogAntenna  AntennaCatalogEntryType = "Antenna"
	CatalogReflector AntennaCatalogEntryType = "Reflector"
)

// TransmitterArchitecture distinguishes indoor-unit from outdoor-unit radio
// hardware, used only for reporting; it does not affect loss computation.
type TransmitterArchitecture string

const (
	ArchitectureIDU     TransmitterArchitecture = "IDU"
	ArchitectureODU     TransmitterArchitecture = "ODU"
	ArchitectureUnknown TransmitterArchitecture = "Unknown"
)

// TransmitterCatalogEntry is one row of the radio-model prefix catalog.
type TransmitterCatalogEntry struct {
	ModelPrefix  string
	Architecture TransmitterArchitecture
}
