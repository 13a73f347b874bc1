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

package analysis

import (
	"context"
	"testing"

	"github.com/afc-project/afc-engine/internal/config"
	"github.com/afc-project/afc-engine/internal/metrics"
	"github.com/afc-project/afc-engine/internal/terrain"
	"github.com/afc-project/afc-engine/internal/uls/catalog"
	"github.com/afc-project/afc-engine/pkg/afctypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type flatDEM struct{ heightM float64 }

func (f flatDEM) Lookup(float64, float64) (float64, bool) { return f.heightM, true }

func testConfig() *config.AnalysisConfig {
	return &config.AnalysisConfig{
		ThresholdDB:       -6,
		MaxLinkDistanceKM: 50,
		MinEIRPDBm:        -10,
		MaxEIRPDBm:        36,
		AnalysisTimeoutSec: 30,
		ITMParameters:     config.ITMParametersConfig{Polarization: "Vertical", Ground: "Average", MaxPoints: 4},
		PropagationModel:  config.PropagationModelConfig{Kind: "FCC 6GHz Report & Order"},
	}
}

func testFsLink() afctypes.FsLink {
	return afctypes.FsLink{
		ID:              "LNK1",
		Region:          afctypes.RegionUS,
		StartUseFreqMHz: 5950,
		StopUseFreqMHz:  5970,
		BandwidthMHz:    20,
		RxLocation:      afctypes.Location{LatitudeDeg: 38.90, LongitudeDeg: -77.00, HeightAboveTerrain: 30},
		TxLocation:      afctypes.Location{LatitudeDeg: 38.95, LongitudeDeg: -77.05, HeightAboveTerrain: 30},
		RxAntenna:       afctypes.Antenna{MaxGainDBi: 38, DiameterM: 1.2, Family: afctypes.AntennaF1245, DOverLambda: 24},
	}
}

func testRequest() afctypes.RlanRequest {
	return afctypes.RlanRequest{
		RequestID: "REQ1",
		Region: afctypes.RlanRegion{
			Shape: afctypes.ShapeEllipse,
			Ellipse: afctypes.Ellipse{
				CenterLatDeg: 38.89, CenterLonDeg: -77.01,
				MajorAxisM: 100, MinorAxisM: 100,
			},
		},
		IndoorDeployment: afctypes.IndoorFalse,
		InquiredChannels: []afctypes.InquiredChannel{{GlobalOperatingClass: 133, ChannelCfi: []int{15}}},
	}
}

func newTestContext() *Context {
	resolver := &terrain.Resolver{DEM: flatDEM{heightM: 50}}
	return NewContext(testConfig(), config.DefaultEngineSettings(), resolver, catalog.NewAntennaCatalog(), []afctypes.FsLink{testFsLink()}, nil, metrics.NewMetrics())
}

func TestRun_ProducesOneResultPerChannel(t *testing.T) {
	c := newTestContext()
	result, err := c.Run(context.Background(), testRequest())
	require.NoError(t, err)
	require.Len(t, result.Channels, 1)
	assert.Equal(t, 133, result.Channels[0].Channel.GlobalOperatingClass)
	assert.NotEmpty(t, result.CorrelationID)
}

func TestRun_NoInquiredChannelsIsInvalidInput(t *testing.T) {
	c := newTestContext()
	req := testRequest()
	req.InquiredChannels = nil
	_, err := c.Run(context.Background(), req)
	assert.Error(t, err)
}

func TestRun_ChannelOutsideFsLinkBandIsUnconstrained(t *testing.T) {
	c := newTestContext()
	req := testRequest()
	req.InquiredChannels = []afctypes.InquiredChannel{{GlobalOperatingClass: 133, ChannelCfi: []int{47}}}
	result, err := c.Run(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, result.Channels, 1)
	assert.InDelta(t, c.Config.MaxEIRPDBm, result.Channels[0].EIRPCeilingDBm, 1e-9)
	assert.True(t, result.Channels[0].Available)
}

func TestRasExcludes_PointInsideZoneExcluded(t *testing.T) {
	c := newTestContext()
	c.RASZones = []afctypes.RASZone{{
		StartFreqMHz: 5900, StopFreqMHz: 6000,
		Rectangles: []afctypes.RASRectangle{{MinLatDeg: 38, MaxLatDeg: 39, MinLonDeg: -78, MaxLonDeg: -77}},
	}}
	assert.True(t, c.rasExcludes(38.5, -77.5, 10, 5950))
	assert.False(t, c.rasExcludes(10, 10, 10, 5950))
}
