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

// Package aggregator implements the §4.10 interference aggregator / EIRP
// solver and the §4.11 segmented-link path composition it depends on.
package aggregator

import (
	"github.com/afc-project/afc-engine/internal/aferr"
	"github.com/afc-project/afc-engine/internal/antenna"
	"github.com/afc-project/afc-engine/internal/geo"
	"github.com/afc-project/afc-engine/internal/propagation"
	"github.com/afc-project/afc-engine/internal/repeater"
	"github.com/afc-project/afc-engine/pkg/afctypes"
)

// ProfileFunc builds an elevation profile and reports line-of-sight between
// two endpoints; it is supplied by the caller (internal/analysis) since
// building a profile needs the terrain resolver and a sample count this
// package has no opinion about.
type ProfileFunc func(a, b afctypes.Location) (profile afctypes.ElevationProfile, los bool)

// MorphologyFunc reports the NLCD-derived land-cover class at a location;
// it is supplied by the caller since classifying a location needs the
// terrain resolver's morphology source, which this package has no opinion
// about.
type MorphologyFunc func(loc afctypes.Location) afctypes.Morphology

// ChainNode is one hop of the RLAN-to-FS-receiver path: the RLAN scan point
// itself (index 0, IsRepeater false, zero Repeater/RxAntenna), zero or more
// passive repeaters, and the FS rx antenna as the final node.
type ChainNode struct {
	Location        afctypes.Location
	IsRepeater      bool
	Repeater        afctypes.PassiveRepeater
	RxAntenna       afctypes.Antenna // valid on the final (non-repeater) node
	BoresightBearingDeg float64      // this node's antenna/repeater pointing bearing
}

// ComposeChain runs §4.11: walks the chain RLAN -> PR_1 -> ... -> PR_n ->
// rxAntenna, summing §4.7 path loss per segment (model chosen per segment
// by distance, line-of-sight, and the receiving end's morphology) plus
// each intermediate repeater's §4.6 discrimination, and evaluates the
// final rx antenna's actual gain (not a discrimination-below-max figure)
// toward the last incoming ray, since that gain is what the interference
// formula adds directly.
func ComposeChain(chain []ChainNode, freqMHz float64, indoor afctypes.IndoorDeployment, profileFn ProfileFunc, morphologyFn MorphologyFunc, propParams propagation.Params) (totalPathLossDB, rxGainDBi float64, err error) {
	if len(chain) < 2 {
		return 0, 0, aferr.Compute("segmented link chain needs at least an origin and a receiver, got %d nodes", len(chain))
	}

	for i := 1; i < len(chain); i++ {
		prev, cur := chain[i-1], chain[i]
		profile, los := profileFn(prev.Location, cur.Location)
		distanceKM := geo.HaversineKM(prev.Location.LatitudeDeg, prev.Location.LongitudeDeg, cur.Location.LatitudeDeg, cur.Location.LongitudeDeg)
		txHeightM := prev.Location.HeightAMSL + prev.Location.HeightAboveTerrain
		rxHeightM := cur.Location.HeightAMSL + cur.Location.HeightAboveTerrain

		segIndoor := afctypes.IndoorFalse
		if i == len(chain)-1 {
			segIndoor = indoor
		}

		morph := morphologyFn(cur.Location)
		result := propagation.Compose(profile, los, segIndoor, morph, distanceKM, freqMHz, txHeightM, rxHeightM, propParams)
		if isNonFinite(result.PathLossDB) {
			return 0, 0, aferr.Compute("non-finite path loss on segment %d->%d", i-1, i)
		}
		totalPathLossDB += result.PathLossDB

		incomingBearing := geo.InitialBearingDeg(cur.Location.LatitudeDeg, cur.Location.LongitudeDeg, prev.Location.LatitudeDeg, prev.Location.LongitudeDeg)
		offBoresightDeg := geo.OffBoresightDeg(cur.BoresightBearingDeg, incomingBearing)

		if cur.IsRepeater {
			totalPathLossDB += repeater.Discriminate(cur.Repeater, offBoresightDeg, freqMHz)
			continue
		}

		elevationDeg := geo.ElevationAngleDeg(rxHeightM, txHeightM, distanceKM*1000)
		rxGainDBi = antenna.Evaluate(cur.RxAntenna, offBoresightDeg, elevationDeg, freqMHz).GainDBi
	}

	return totalPathLossDB, rxGainDBi, nil
}

func isNonFinite(v float64) bool {
	return v != v || v > 1e300 || v < -1e300
}
