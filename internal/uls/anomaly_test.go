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
	"testing"

	"github.com/afc-project/afc-engine/pkg/afctypes"
	"github.com/stretchr/testify/assert"
)

func cleanLink() *afctypes.FsLink {
	return &afctypes.FsLink{
		RxLocation:      afctypes.Location{LatitudeDeg: 40.0, LongitudeDeg: -74.0},
		TxLocation:      afctypes.Location{LatitudeDeg: 40.1, LongitudeDeg: -74.1},
		StartUseFreqMHz: 5950,
		StopUseFreqMHz:  5970,
		BandwidthMHz:    20,
	}
}

func TestCheckAnomaly_CleanLinkPasses(t *testing.T) {
	_, ok := CheckAnomaly(cleanLink(), Config{})
	assert.True(t, ok)
}

func TestCheckAnomaly_CoincidentEndpoints(t *testing.T) {
	link := cleanLink()
	link.TxLocation = link.RxLocation
	reason, ok := CheckAnomaly(link, Config{})
	assert.False(t, ok)
	assert.Contains(t, reason, "coincide")
}

func TestCheckAnomaly_MobileRemoved(t *testing.T) {
	link := cleanLink()
	link.Mobile = true
	reason, ok := CheckAnomaly(link, Config{RemoveMobile: true})
	assert.False(t, ok)
	assert.Contains(t, reason, "mobile")
}

func TestCheckAnomaly_OutsideUNIIBand(t *testing.T) {
	link := cleanLink()
	link.StartUseFreqMHz = 4900
	link.StopUseFreqMHz = 4920
	reason, ok := CheckAnomaly(link, Config{})
	assert.False(t, ok)
	assert.Contains(t, reason, "UNII")
}

func TestCheckAnomaly_InvalidLatLon(t *testing.T) {
	link := cleanLink()
	link.RxLocation.LatitudeDeg = 0
	link.RxLocation.LongitudeDeg = 0
	reason, ok := CheckAnomaly(link, Config{})
	assert.False(t, ok)
	assert.Contains(t, reason, "rx latitude")
}

func TestCheckAnomaly_DiscontinuousSegments(t *testing.T) {
	link := cleanLink()
	link.Segments = []afctypes.FsPathSegment{
		{RxLocation: afctypes.Location{LatitudeDeg: 40.05, LongitudeDeg: -74.05}},
		{TxLocation: afctypes.Location{LatitudeDeg: 41.0, LongitudeDeg: -74.9}},
	}
	reason, ok := CheckAnomaly(link, Config{})
	assert.False(t, ok)
	assert.Contains(t, reason, "discontinuous")
}
