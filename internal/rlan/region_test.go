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

package rlan

import (
	"testing"

	"github.com/afc-project/afc-engine/pkg/afctypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnumerateScanPoints_Ellipse(t *testing.T) {
	region := afctypes.RlanRegion{
		Shape: afctypes.ShapeEllipse,
		Ellipse: afctypes.Ellipse{
			CenterLatDeg: 40.0,
			CenterLonDeg: -74.0,
			MajorAxisM:   200,
			MinorAxisM:   100,
		},
		HeightM: 10,
	}
	points := EnumerateScanPoints(region, 25)
	require.NotEmpty(t, points)
	for _, p := range points {
		assert.InDelta(t, 10.0, p.AGLHeightM, 1e-9)
		assert.Greater(t, p.LatitudeDeg, 39.9)
		assert.Less(t, p.LatitudeDeg, 40.1)
	}
}

func TestEnumerateScanPoints_VerticalUncertaintyExpandsSamples(t *testing.T) {
	base := afctypes.RlanRegion{
		Shape: afctypes.ShapeEllipse,
		Ellipse: afctypes.Ellipse{
			CenterLatDeg: 40.0,
			CenterLonDeg: -74.0,
			MajorAxisM:   200,
			MinorAxisM:   200,
		},
		HeightM: 10,
	}
	withUncertainty := base
	withUncertainty.VerticalUncertaintyM = 5

	flat := EnumerateScanPoints(base, 50)
	tall := EnumerateScanPoints(withUncertainty, 50)
	assert.Greater(t, len(tall), len(flat))
}

func TestEnumerateScanPoints_UnknownShapeReturnsNil(t *testing.T) {
	region := afctypes.RlanRegion{Shape: "bogus"}
	assert.Nil(t, EnumerateScanPoints(region, 30))
}

func TestEnumerateScanPoints_EllipseCentroidInvariant(t *testing.T) {
	region := afctypes.RlanRegion{
		Shape: afctypes.ShapeEllipse,
		Ellipse: afctypes.Ellipse{
			CenterLatDeg: 40.0,
			CenterLonDeg: -74.0,
			MajorAxisM:   200,
			MinorAxisM:   100,
		},
		HeightM:              10,
		VerticalUncertaintyM: 5,
	}
	points := EnumerateScanPoints(region, 25)
	require.NotEmpty(t, points)

	var centroids []afctypes.ScanPoint
	for _, p := range points {
		if p.IsCentroid {
			centroids = append(centroids, p)
		}
	}
	require.Len(t, centroids, 1, "exactly one scan point should be the geometric centre at the nominal height")
	assert.InDelta(t, region.Ellipse.CenterLatDeg, centroids[0].LatitudeDeg, 1e-9)
	assert.InDelta(t, region.Ellipse.CenterLonDeg, centroids[0].LongitudeDeg, 1e-9)
	assert.InDelta(t, region.HeightM, centroids[0].AGLHeightM, 1e-9)
}

func TestEnumerateScanPoints_LinearPolygonCentroidInvariant(t *testing.T) {
	region := afctypes.RlanRegion{
		Shape: afctypes.ShapeLinearPolygon,
		LinearPolygon: afctypes.LinearPolygon{
			VerticesLatLon: [][2]float64{
				{40.001, -74.001},
				{40.001, -73.999},
				{39.999, -73.999},
				{39.999, -74.001},
			},
		},
		HeightM: 10,
	}
	points := EnumerateScanPoints(region, 25)
	require.NotEmpty(t, points)

	centroidCount := 0
	for _, p := range points {
		if p.IsCentroid {
			centroidCount++
		}
	}
	assert.Equal(t, 1, centroidCount, "exactly one scan point should be the region's geometric centre")
}

func TestPlanarLatLonRoundTrip(t *testing.T) {
	centerLat, centerLon := 37.5, -122.3
	planar := latLonToPlanar(centerLat, centerLon, 37.51, -122.29)
	lat, lon := planarToLatLon(centerLat, centerLon, planar[0], planar[1])
	assert.InDelta(t, 37.51, lat, 1e-9)
	assert.InDelta(t, -122.29, lon, 1e-9)
}
