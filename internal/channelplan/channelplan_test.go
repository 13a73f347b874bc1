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

package channelplan

import (
	"testing"

	"github.com/afc-project/afc-engine/internal/aferr"
	"github.com/afc-project/afc-engine/pkg/afctypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandChannel_AllCfisWithinBand(t *testing.T) {
	channels, err := ExpandChannel(afctypes.InquiredChannel{GlobalOperatingClass: 131})
	require.NoError(t, err)
	require.NotEmpty(t, channels)
	for _, c := range channels {
		assert.GreaterOrEqual(t, c.StartFreqMHz, bandLowMHz)
		assert.LessOrEqual(t, c.StopFreqMHz, bandHighMHz)
		assert.InDelta(t, 20.0, c.BandwidthMHz(), 1e-9)
	}
}

func TestExpandChannel_Class134SinglePSK160MHz(t *testing.T) {
	channels, err := ExpandChannel(afctypes.InquiredChannel{GlobalOperatingClass: 134})
	require.NoError(t, err)
	for _, c := range channels {
		assert.InDelta(t, 160.0, c.BandwidthMHz(), 1e-9)
	}
}

func TestExpandChannel_UnsupportedClassIsInvalidInput(t *testing.T) {
	_, err := ExpandChannel(afctypes.InquiredChannel{GlobalOperatingClass: 999})
	require.Error(t, err)
	assert.Equal(t, aferr.KindInvalidInput, aferr.KindOf(err))
}

func TestExpandChannel_ExplicitCfiOutsideBandIsRejected(t *testing.T) {
	_, err := ExpandChannel(afctypes.InquiredChannel{GlobalOperatingClass: 131, ChannelCfi: []int{1000}})
	require.Error(t, err)
}

func TestSubdivideRange_ExactBinCount(t *testing.T) {
	bins, err := SubdivideRange(afctypes.FrequencyRange{LowFreqMHz: 5925, HighFreqMHz: 6025}, 20)
	require.NoError(t, err)
	require.Len(t, bins, 5)
	assert.InDelta(t, 5925.0, bins[0].StartFreqMHz, 1e-9)
	assert.InDelta(t, 6025.0, bins[len(bins)-1].StopFreqMHz, 1e-9)
}

func TestSubdivideRange_NoOverlapIsError(t *testing.T) {
	_, err := SubdivideRange(afctypes.FrequencyRange{LowFreqMHz: 4000, HighFreqMHz: 4500}, 20)
	require.Error(t, err)
}
