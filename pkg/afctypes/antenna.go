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

// AntennaFamily tags the pattern-evaluation variant an Antenna dispatches
// to. Kept as a string enum rather than an interface so catalog records and
// JSON config can name a family directly.
type AntennaFamily string

const (
	AntennaF1245    AntennaFamily = "F.1245"
	AntennaF699     AntennaFamily = "F.699"
	AntennaF1336    AntennaFamily = "F.1336"
	AntennaR2AIP07  AntennaFamily = "R2-AIP-07"
	AntennaUserLUT  AntennaFamily = "LUT"
	AntennaOmni     AntennaFamily = "Omni"
)

// AntennaCategory is the R2-AIP-07 performance category assigned to an
// antenna from its catalog entry.
type AntennaCategory string

const (
	CategoryHP      AntennaCategory = "HP" // high-performance (Category A)
	CategoryB1      AntennaCategory = "B1"
	CategoryB2      AntennaCategory = "B2"
	CategoryOther   AntennaCategory = "Other"
	CategoryUnknown AntennaCategory = "Unknown"
)

// AntennaPatternKind selects the dispatch variant for F.1245/F.699/F.1336/
// R2-AIP-07 from AnalysisConfig.
type AntennaPatternKind string

const (
	PatternF1245   AntennaPatternKind = "F.1245"
	PatternF699    AntennaPatternKind = "F.699"
	PatternF1336   AntennaPatternKind = "F.1336"
	PatternR2AIP07 AntennaPatternKind = "R2-AIP-07"
)

// LUTEntry is one (angleRad, gainDb) sample of a user-supplied antenna
// pattern lookup table.
type LUTEntry struct {
	AngleRad float64
	GainDB   float64
}

// Antenna describes a single antenna's gain pattern and the parameters its
// family needs to evaluate gain off boresight.
type Antenna struct {
	MaxGainDBi    float64
	DiameterM     float64
	DOverLambda   float64 // derived: DiameterM / wavelength at the link's frequency
	Family        AntennaFamily
	LUT           []LUTEntry // only populated when Family == AntennaUserLUT
	Category      AntennaCategory
	ModelMatch    string // free-text model string this antenna matched from
	HasDiversity  bool
	DiversityHeightM float64
	DiversityGainDBi float64
	DiversityDOverLambda float64
}

// GainResult is the output of an antenna-gain evaluation: the gain itself
// plus, for families that branch internally (R2-AIP-07), a tag naming which
// branch was taken, useful for exc_thr.csv reporting.
type GainResult struct {
	GainDBi float64
	SubModel string
}
