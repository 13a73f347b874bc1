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

// RegionShapeKind tags which uncertainty-region variant an RlanRequest
// carries.
type RegionShapeKind string

const (
	ShapeEllipse       RegionShapeKind = "ellipse"
	ShapeLinearPolygon RegionShapeKind = "linearPolygon"
	ShapeRadialPolygon RegionShapeKind = "radialPolygon"
)

// Ellipse is a horizontal uncertainty ellipse: centre, semi-axes in metres,
// and orientation (degrees clockwise from north).
type Ellipse struct {
	CenterLatDeg, CenterLonDeg float64
	MajorAxisM, MinorAxisM     float64
	OrientationDeg             float64
}

// LinearPolygon is a closed polygon of geodetic vertices.
type LinearPolygon struct {
	VerticesLatLon [][2]float64
}

// RadialPolygonVertex is one (bearingDeg, distanceM) spoke from the centre.
type RadialPolygonVertex struct {
	BearingDeg float64
	DistanceM  float64
}

// RadialPolygon is a polygon described as distances along bearings from a
// centre point; its spokes are converted directly to planar vertices about
// that centre before rasterization.
type RadialPolygon struct {
	CenterLatDeg, CenterLonDeg float64
	Vertices                  []RadialPolygonVertex
}

// RlanRegion is the union of the three uncertainty-region shapes plus
// vertical uncertainty, mirroring the AFC request's "location" object.
type RlanRegion struct {
	Shape               RegionShapeKind
	Ellipse             Ellipse
	LinearPolygon       LinearPolygon
	RadialPolygon       RadialPolygon
	HeightM             float64 // nominal height
	HeightType          string  // "AGL" or "AMSL"
	VerticalUncertaintyM float64
}

// FrequencyRange is an inquired [lowFrequency, highFrequency] window, MHz.
type FrequencyRange struct {
	LowFreqMHz, HighFreqMHz float64
}

// InquiredChannel names a global operating class and, optionally, a list
// of specific CFIs within it; an empty CFI list means "all CFIs".
type InquiredChannel struct {
	GlobalOperatingClass int
	ChannelCfi           []int
}

// RlanRequest is one inbound AFC availableSpectrumInquiryRequest, stripped
// of the HTTP/JSON envelope (that packaging is handled by the external
// request-intake collaborator).
type RlanRequest struct {
	RequestID             string
	Region                RlanRegion
	IndoorDeployment      IndoorDeployment
	InquiredFrequencyRange []FrequencyRange
	InquiredChannels       []InquiredChannel
	MinDesiredPowerDBm     float64
}
