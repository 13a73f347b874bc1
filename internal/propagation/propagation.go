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

// Package propagation implements the §4.7 path-loss composer: it picks a
// base model by link distance, line-of-sight class, and morphology (FSPL
// for short/LOS hops, ITM for rural or long-range NLOS, an ITM/WINNER-II
// blend with ITU-R P.2108 clutter for short urban/suburban NLOS hops), then
// layers building-penetration, polarization mismatch, body loss, and feeder
// loss on top, finally applying the fade margin the caller requests.
package propagation

import (
	"math"

	"github.com/afc-project/afc-engine/internal/itm"
	"github.com/afc-project/afc-engine/pkg/afctypes"
)

// shortRangeBreakpointM is the distance below which an urban/suburban NLOS
// link is "short range" for §4.7's model-selection purposes and thus
// eligible for the ITM/WINNER-II blend rather than ITM alone.
const shortRangeBreakpointM = 1000

// Params carries every tunable the composer needs beyond the path geometry
// and morphology themselves; it mirrors the AnalysisConfig propagation
// block (§6). None of these vary by scan point, only Compose's los/
// distance/morphology arguments do.
type Params struct {
	ITM                    itm.Parameters
	Winner2BreakpointM     float64 // LOS/short-hop distance (m) below which FSPL wins outright
	Win2ConfidenceFrac     float64 // weight given the WINNER-II side of the blend, 0-1
	P2108ConfidenceFrac    float64 // ITU-R P.2108 clutter-loss exceedance confidence, 0-1
	ClutterAtFS            bool    // add P.2108 clutter loss at each end of a blended link
	BuildingPenetrationDB  float64 // fixed-value building-penetration loss (§9 design note)
	PolarizationMismatchDB float64
	BodyLossDB             float64
	FeederLossTxDB         float64
	FeederLossRxDB         float64
	FadeMarginDB           float64
}

// Compose runs the §4.7 model-selection tree and returns the full result,
// including which base model was used and the total path loss with every
// layered term applied. morph classifies the land cover around the link
// (from NLCD, via internal/terrain.Resolver.Morphology) and only affects
// model choice on NLOS hops; LOS hops and anything under
// Winner2BreakpointM always resolve to free space.
func Compose(
	profile afctypes.ElevationProfile,
	los bool,
	indoor afctypes.IndoorDeployment,
	morph afctypes.Morphology,
	distanceKM, freqMHz, txHeightM, rxHeightM float64,
	p Params,
) afctypes.PropagationResult {
	fspl := itm.FreeSpacePathLossDB(freqMHz, distanceKM)
	var base float64
	var tag afctypes.PropagationModelTag
	var itmLoss, winner2Loss, clutterLoss float64

	shortRangeUrban := (morph == afctypes.MorphologyUrban || morph == afctypes.MorphologySuburban) &&
		distanceKM*1000 <= shortRangeBreakpointM

	switch {
	case distanceKM <= 0:
		base, tag = 0, afctypes.ModelFreeSpace
	case los || distanceKM*1000 <= p.Winner2BreakpointM:
		base, tag = fspl, afctypes.ModelFreeSpace
	case shortRangeUrban:
		lossDB, err := itm.LongleyRice(profile, txHeightM, rxHeightM, freqMHz, p.ITM)
		if err != nil {
			lossDB = fspl
		}
		itmLoss = lossDB
		winner2Loss = winner2NLOS(distanceKM, freqMHz, p.Win2ConfidenceFrac)
		win2Weight := defaultConfidenceFrac(p.Win2ConfidenceFrac)
		base, tag = win2Weight*winner2Loss+(1-win2Weight)*itmLoss, afctypes.ModelBlend
		if p.ClutterAtFS {
			clutterLoss = 2 * p2108ClutterLossDB(freqMHz, distanceKM, defaultConfidenceFrac(p.P2108ConfidenceFrac))
		}
	default:
		lossDB, err := itm.LongleyRice(profile, txHeightM, rxHeightM, freqMHz, p.ITM)
		if err != nil {
			// degrade to free-space rather than abort the whole scan point.
			base, tag = fspl, afctypes.ModelFreeSpace
		} else {
			itmLoss = lossDB
			base, tag = lossDB, afctypes.ModelITM
		}
	}

	buildingLoss := 0.0
	if indoor == afctypes.IndoorTrue {
		buildingLoss = p.BuildingPenetrationDB
	}
	extra := clutterLoss + p.PolarizationMismatchDB + p.BodyLossDB +
		p.FeederLossTxDB + p.FeederLossRxDB + p.FadeMarginDB + buildingLoss

	return afctypes.PropagationResult{
		PathLossDB:                base + extra,
		ModelTag:                  tag,
		ClutterLossDB:             clutterLoss,
		BuildingPenetrationLossDB: buildingLoss,
		FreeSpaceLossDB:           fspl,
		ITMLossDB:                 itmLoss,
		Winner2LossDB:             winner2Loss,
		IsLOS:                     los,
	}
}

// winner2NLOS is the WINNER-II B1/C1 non-line-of-sight median path loss for
// short urban/suburban hops, plus a log-normal shadow margin scaled by
// confidenceFrac (0.5 reproduces the unshadowed median).
func winner2NLOS(distanceKM, freqMHz, confidenceFrac float64) float64 {
	dM := distanceKM * 1000
	if dM < 1 {
		dM = 1
	}
	median := 44.9*math.Log10(dM) + 21.5 + 20*math.Log10(freqMHz/1000)
	const shadowSigmaDB = 8 // WINNER-II B1/C1 NLOS shadow-fading standard deviation
	return median + shadowSigmaDB*qInv(defaultConfidenceFrac(confidenceFrac))
}

// defaultConfidenceFrac falls back to the median (0.5) for an unset or
// out-of-range confidence fraction.
func defaultConfidenceFrac(v float64) float64 {
	if v <= 0 || v >= 1 {
		return 0.5
	}
	return v
}
