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

package uls

import (
	"math"

	"github.com/afc-project/afc-engine/pkg/afctypes"
)

const coincidentEndpointToleranceDeg = 1e-5

// Config carries the ingest-time switches §4.13's predicates reference.
type Config struct {
	RemoveMobile bool
}

// AnomalousRecord is one FsLink (or would-be FsLink) dropped to the
// anomalous sink, with the §4.13 predicate that triggered the drop.
type AnomalousRecord struct {
	LinkID string
	Reason string
}

// CheckAnomaly runs every §4.13 predicate against an assembled link and
// returns the first one that fires, or ok=true if the link is clean.
func CheckAnomaly(link *afctypes.FsLink, cfg Config) (reason string, ok bool) {
	if !ValidLatLon(link.RxLocation.LatitudeDeg, link.RxLocation.LongitudeDeg) {
		return "rx latitude/longitude absent or invalid", false
	}
	if !ValidLatLon(link.TxLocation.LatitudeDeg, link.TxLocation.LongitudeDeg) {
		return "tx latitude/longitude absent or invalid", false
	}
	if math.Abs(link.RxLocation.LatitudeDeg-link.TxLocation.LatitudeDeg) < coincidentEndpointToleranceDeg &&
		math.Abs(link.RxLocation.LongitudeDeg-link.TxLocation.LongitudeDeg) < coincidentEndpointToleranceDeg {
		return "rx and tx coincide within 1e-5 degrees", false
	}
	if link.Mobile && cfg.RemoveMobile {
		return "mobile flag set and removeMobile enabled", false
	}
	if cfg.RemoveMobile && link.RadioService == "TP" {
		return "radioServiceCode TP with removeMobile enabled", false
	}
	for i, pr := range link.PassiveRepeaters {
		if !ValidLatLon(pr.Location.LatitudeDeg, pr.Location.LongitudeDeg) {
			return "passive repeater latitude/longitude invalid", false
		}
		_ = i
	}
	for i := 0; i+1 < len(link.Segments); i++ {
		a, b := link.Segments[i].RxLocation, link.Segments[i+1].TxLocation
		if math.Abs(a.LatitudeDeg-b.LatitudeDeg) > coincidentEndpointToleranceDeg ||
			math.Abs(a.LongitudeDeg-b.LongitudeDeg) > coincidentEndpointToleranceDeg {
			return "segmentation discontinuous between consecutive hops", false
		}
	}
	if link.BandwidthMHz <= 0 {
		return "emission designator bandwidth unparseable and no fallback available", false
	}
	if !overlapsUNIIBand(link.StartUseFreqMHz, link.StopUseFreqMHz) {
		return "band does not overlap any UNII-5/6/7/8 window", false
	}
	return "", true
}

// unii5678Windows are the four UNII sub-bands within the 5925-7125 MHz
// sharing band.
var unii5678Windows = [4][2]float64{
	{5925, 6425},
	{6425, 6525},
	{6525, 6875},
	{6875, 7125},
}

func overlapsUNIIBand(startMHz, stopMHz float64) bool {
	for _, w := range unii5678Windows {
		if startMHz < w[1] && stopMHz > w[0] {
			return true
		}
	}
	return false
}
