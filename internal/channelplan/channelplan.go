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

// Package channelplan implements the §4.8 channel/frequency enumerator: it
// expands inquired (globalOperatingClass, channelCfi) pairs into concrete
// channels on the 20/40/80/160 MHz raster anchored at 5950 MHz, subdivides
// inquired frequency ranges into PSD-reporting bins, and rejects anything
// that falls entirely outside the UNII-5/6/7/8 band.
package channelplan

import (
	"github.com/afc-project/afc-engine/internal/aferr"
	"github.com/afc-project/afc-engine/pkg/afctypes"
)

const bandLowMHz = 5925.0
const bandHighMHz = 7125.0
const rasterAnchorMHz = 5950.0

// classBandwidthMHz maps the four 6 GHz global operating classes this
// engine supports to their channel bandwidth.
var classBandwidthMHz = map[int]float64{
	131: 20,
	132: 40,
	133: 80,
	134: 160,
}

// allCfisForClass lists every valid channel center index (CFI) for a
// global operating class, per the 802.11 6 GHz channelization (centre =
// 5950 + 5*cfi MHz, spacing = bandwidth/5 channel numbers).
func allCfisForClass(class int) []int {
	bw, ok := classBandwidthMHz[class]
	if !ok {
		return nil
	}
	step := int(bw / 5)
	var cfis []int
	for cfi := step/2 - 1; ; cfi += step {
		center := rasterAnchorMHz + 5*float64(cfi)
		if center-bw/2 < bandLowMHz {
			continue
		}
		if center+bw/2 > bandHighMHz {
			break
		}
		cfis = append(cfis, cfi)
	}
	return cfis
}

// ExpandChannel turns one InquiredChannel into the concrete Channels it
// names (all CFIs for the class if ChannelCfi is empty), rejecting the
// whole class with INVALID_PARAMS if the operating class is unsupported.
func ExpandChannel(ic afctypes.InquiredChannel) ([]afctypes.Channel, error) {
	bw, ok := classBandwidthMHz[ic.GlobalOperatingClass]
	if !ok {
		return nil, aferr.InvalidInput("unsupported global operating class %d", ic.GlobalOperatingClass)
	}

	cfis := ic.ChannelCfi
	if len(cfis) == 0 {
		cfis = allCfisForClass(ic.GlobalOperatingClass)
	}

	channels := make([]afctypes.Channel, 0, len(cfis))
	for _, cfi := range cfis {
		center := rasterAnchorMHz + 5*float64(cfi)
		start, stop := center-bw/2, center+bw/2
		if stop <= bandLowMHz || start >= bandHighMHz {
			// entirely outside the licensed sharing band; §4.8 rejects this
			// one channel rather than the whole request.
			continue
		}
		channels = append(channels, afctypes.Channel{
			GlobalOperatingClass: ic.GlobalOperatingClass,
			ChannelCfi:           cfi,
			StartFreqMHz:         start,
			StopFreqMHz:          stop,
		})
	}
	if len(channels) == 0 {
		return nil, aferr.InvalidInput("global operating class %d, cfis %v: no channel overlaps [%.0f,%.0f] MHz", ic.GlobalOperatingClass, ic.ChannelCfi, bandLowMHz, bandHighMHz)
	}
	return channels, nil
}

// SubdivideRange subdivides an inquired frequency range into contiguous
// minBinMHz-wide PSD-reporting bins, clipped to the UNII-5/6/7/8 band.
func SubdivideRange(fr afctypes.FrequencyRange, minBinMHz float64) ([]afctypes.PSDBin, error) {
	lo := maxF(fr.LowFreqMHz, bandLowMHz)
	hi := minF(fr.HighFreqMHz, bandHighMHz)
	if lo >= hi {
		return nil, aferr.InvalidInput("frequency range [%.3f,%.3f] MHz does not overlap [%.0f,%.0f] MHz", fr.LowFreqMHz, fr.HighFreqMHz, bandLowMHz, bandHighMHz)
	}
	if minBinMHz <= 0 {
		minBinMHz = hi - lo
	}

	var bins []afctypes.PSDBin
	for start := lo; start < hi; start += minBinMHz {
		stop := start + minBinMHz
		if stop > hi {
			stop = hi
		}
		bins = append(bins, afctypes.PSDBin{StartFreqMHz: start, StopFreqMHz: stop})
	}
	return bins, nil
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
