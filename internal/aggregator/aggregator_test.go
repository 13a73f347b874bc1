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
	"testing"

	"github.com/afc-project/afc-engine/pkg/afctypes"
	"github.com/stretchr/testify/assert"
)

func testChannel() afctypes.Channel {
	return afctypes.Channel{StartFreqMHz: 5945, StopFreqMHz: 5965}
}

func testFsLink(startMHz, stopMHz float64) *afctypes.FsLink {
	return &afctypes.FsLink{StartUseFreqMHz: startMHz, StopUseFreqMHz: stopMHz, BandwidthMHz: stopMHz - startMHz}
}

func TestSpectralOverlapFraction_Disjoint(t *testing.T) {
	rho := SpectralOverlapFraction(testChannel(), testFsLink(6000, 6010))
	assert.Equal(t, 0.0, rho)
}

func TestSpectralOverlapFraction_FullOverlapIsOne(t *testing.T) {
	rho := SpectralOverlapFraction(testChannel(), testFsLink(5900, 6000))
	assert.Equal(t, 1.0, rho)
}

func TestSpectralOverlapFraction_AlwaysWithinUnitInterval(t *testing.T) {
	for start := 5900.0; start < 6100; start += 7 {
		rho := SpectralOverlapFraction(testChannel(), testFsLink(start, start+13))
		assert.GreaterOrEqual(t, rho, 0.0)
		assert.LessOrEqual(t, rho, 1.0)
	}
}

func TestEIRPMax_MonotoneInThreshold(t *testing.T) {
	c := testChannel()
	f := testFsLink(5945, 5965)
	rho := SpectralOverlapFraction(c, f)
	low := EIRPMax(rho, c, f, 120, 30, Params{ThresholdDB: -6})
	high := EIRPMax(rho, c, f, 120, 30, Params{ThresholdDB: 6})
	assert.Greater(t, high, low)
}

func TestEIRPMax_NoOverlapIsUnconstrained(t *testing.T) {
	c := testChannel()
	f := testFsLink(6000, 6010)
	rho := SpectralOverlapFraction(c, f)
	v := EIRPMax(rho, c, f, 120, 30, Params{ThresholdDB: 6})
	assert.True(t, math.IsInf(v, 1))
}

func TestReduceFsLinks_CapsAtMaxAndFlagsBelowMin(t *testing.T) {
	p := Params{MinEIRPDBm: 0, MaxEIRPDBm: 36}
	v, ok := ReduceFsLinks([]float64{50, 40}, p)
	assert.True(t, ok)
	assert.Equal(t, 36.0, v)

	v, ok = ReduceFsLinks([]float64{-5, 20}, p)
	assert.False(t, ok)
	assert.Equal(t, -5.0, v)
}

func TestReduceFsLinks_NoConstraintsUsesMax(t *testing.T) {
	p := Params{MinEIRPDBm: 0, MaxEIRPDBm: 36}
	v, ok := ReduceFsLinks(nil, p)
	assert.True(t, ok)
	assert.Equal(t, 36.0, v)
}

func TestReduceScanPoints_TakesMinimum(t *testing.T) {
	v := ReduceScanPoints([]float64{10, 5, 20})
	assert.Equal(t, 5.0, v)
}
