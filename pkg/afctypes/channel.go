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

// Channel is one concrete 6 GHz channel expanded from a global operating
// class + CFI (or "all CFIs"), anchored to the 5925-7125 MHz UNII-5/6/7/8
// band plan.
type Channel struct {
	GlobalOperatingClass int
	ChannelCfi           int
	StartFreqMHz         float64
	StopFreqMHz          float64
}

// BandwidthMHz is StopFreqMHz - StartFreqMHz.
func (c Channel) BandwidthMHz() float64 {
	return c.StopFreqMHz - c.StartFreqMHz
}

// CenterFreqMHz is the channel's spectral midpoint.
func (c Channel) CenterFreqMHz() float64 {
	return (c.StartFreqMHz + c.StopFreqMHz) / 2
}

// PSDBin is one minBinMHz-wide reporting bin subdividing an inquired
// frequency range.
type PSDBin struct {
	StartFreqMHz, StopFreqMHz float64
}

// ScanPoint is one candidate RLAN transmitter location/height expanded by
// the uncertainty-region enumerator.
type ScanPoint struct {
	LatitudeDeg, LongitudeDeg float64
	AGLHeightM, AMSLHeightM   float64
	Morphology                Morphology
	ClutterCategory           string
	IsCentroid                bool // true for the single mandatory centre/nominal-height sample
}

// ElevationProfile is an ordered sequence of ground (or ground+building)
// heights sampled at uniform arc spacing along a great-circle path, plus
// the building-exclusion bookkeeping from the profile builder.
type ElevationProfile struct {
	DxMetres              float64
	Heights               []float64 // length == NumPoints
	LeadingBuildingCount  int       // samples at the start that lie inside a building
	TrailingBuildingCount int
	PathLengthMetres      float64
}

// NumPoints is the sample count the ITM driver needs (len(Heights)).
func (p ElevationProfile) NumPoints() int { return len(p.Heights) }
