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

package aggregator

import (
	"math"

	"github.com/afc-project/afc-engine/pkg/afctypes"
)

// Params carries the §4.10 configuration knobs: the I/N threshold, the
// RLAN's reference EIRP-per-MHz, and the regulatory EIRP clamp.
type Params struct {
	ThresholdDB       float64
	EIRPRefDBmPerMHz  float64
	MinEIRPDBm        float64
	MaxEIRPDBm        float64
	MaxLinkDistanceKM float64
}

// SpectralOverlapFraction is rho(c,f): the fraction of the channel's
// bandwidth that overlaps the FS link's occupied band.
func SpectralOverlapFraction(c afctypes.Channel, f *afctypes.FsLink) float64 {
	overlap := math.Min(f.StopUseFreqMHz, c.StopFreqMHz) - math.Max(f.StartUseFreqMHz, c.StartFreqMHz)
	if overlap <= 0 {
		return 0
	}
	bw := c.BandwidthMHz()
	if bw <= 0 {
		return 0
	}
	return math.Min(1, overlap/bw)
}

// Contribution is one (scan point, FS link, channel) triple's result: the
// EIRP ceiling it implies plus the path loss, rx gain, and spectral-overlap
// fraction that produced it. internal/analysis collects one per evaluated
// triple, feeds EIRPMaxDBm into ReduceScanPoints, and keeps the
// worst-case triple per channel around for diagnostic logging of whichever
// FS link ends up constraining that channel.
type Contribution struct {
	EIRPMaxDBm float64
	PathLossDB float64
	RxGainDBi  float64
	Rho        float64
}

// EIRPMax solves §4.10 step 2: the EIRP (referenced per MHz) that drives
// I - N exactly to threshold, given the path loss and FS rx gain already
// computed for this triple.
func EIRPMax(rho float64, c afctypes.Channel, f *afctypes.FsLink, pathLossDB, rxGainDBi float64, p Params) float64 {
	if rho <= 0 || f.BandwidthMHz <= 0 {
		return math.Inf(1) // no overlap: this triple never constrains the ceiling
	}
	spreadTermDB := 10 * math.Log10(rho*c.BandwidthMHz()/f.BandwidthMHz)
	return p.ThresholdDB - spreadTermDB + pathLossDB + f.RxAntennaFeederLossDB - rxGainDBi + f.RxNoiseLevelDBW
}

// ReduceScanPoints aggregates §4.10 step 3: the worst-case (minimum) EIRP
// ceiling across every scan point's contribution to one (FS link, channel)
// pair. Returns +Inf if contributions is empty (no constraint from this
// FS link at all, e.g. because rho==0 everywhere).
func ReduceScanPoints(eirpMaxPerScanPoint []float64) float64 {
	ceiling := math.Inf(1)
	for _, v := range eirpMaxPerScanPoint {
		if v < ceiling {
			ceiling = v
		}
	}
	return ceiling
}

// ReduceFsLinks aggregates §4.10 step 4: the worst-case ceiling across
// every FS link within range for one channel, then caps it at p.MaxEIRPDBm
// (step 5). A ceiling below p.MinEIRPDBm is returned unclamped with ok
// false, meaning the channel is unavailable.
func ReduceFsLinks(ceilingPerFsLink []float64, p Params) (eirpDBm float64, ok bool) {
	ceiling := math.Inf(1)
	for _, v := range ceilingPerFsLink {
		if v < ceiling {
			ceiling = v
		}
	}
	if math.IsInf(ceiling, 1) {
		ceiling = p.MaxEIRPDBm
	}
	clamped := math.Min(ceiling, p.MaxEIRPDBm)
	if clamped < p.MinEIRPDBm {
		return clamped, false
	}
	return clamped, true
}
