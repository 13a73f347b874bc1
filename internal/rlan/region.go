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

// Package rlan enumerates the RLAN uncertainty-region scan points (§4.9):
// an ellipse samples its centre, a perimeter ring, and concentric interior
// rings, while the two polygon shapes are rasterized and sampled at every
// interior grid cell centre; each horizontal sample is then crossed with
// the vertical-uncertainty sample set.
package rlan

import (
	"math"

	"github.com/afc-project/afc-engine/internal/geo"
	"github.com/afc-project/afc-engine/pkg/afctypes"
)

const earthRadiusM = 6371000.0
const defaultCellSizeM = 30.0
const defaultVerticalSamples = 3

// sample is one horizontal scan location in the region's local planar
// system (metres, east/north from the region's own centre).
type sample struct {
	X, Y       float64
	IsCentroid bool
}

// EnumerateScanPoints builds the horizontal sample set for region's shape,
// projects each sample back to lat/lon, and crosses it with the vertical-
// uncertainty sample heights, returning one ScanPoint per (horizontal
// sample, vertical sample) pair. Exactly one returned point has
// IsCentroid set: the region's geometric centre at its nominal height.
func EnumerateScanPoints(region afctypes.RlanRegion, cellSizeM float64) []afctypes.ScanPoint {
	if cellSizeM <= 0 {
		cellSizeM = defaultCellSizeM
	}

	var centerLat, centerLon float64
	var samples []sample

	switch region.Shape {
	case afctypes.ShapeEllipse:
		centerLat, centerLon = region.Ellipse.CenterLatDeg, region.Ellipse.CenterLonDeg
		samples = ellipseSamples(region.Ellipse, cellSizeM)
	case afctypes.ShapeLinearPolygon, afctypes.ShapeRadialPolygon:
		var vertices [][2]float64
		centerLat, centerLon, vertices = planarPolygon(region)
		if len(vertices) < 3 {
			return nil
		}
		samples = polygonSamples(vertices, cellSizeM)
	default:
		return nil
	}
	if len(samples) == 0 {
		return nil
	}

	heights := verticalSamples(region.HeightM, region.VerticalUncertaintyM)
	nominalIdx := nominalHeightIndex(heights, region.HeightM)

	points := make([]afctypes.ScanPoint, 0, len(samples)*len(heights))
	for _, s := range samples {
		lat, lon := planarToLatLon(centerLat, centerLon, s.X, s.Y)
		for i, h := range heights {
			points = append(points, afctypes.ScanPoint{
				LatitudeDeg:  lat,
				LongitudeDeg: lon,
				AGLHeightM:   h,
				IsCentroid:   s.IsCentroid && i == nominalIdx,
			})
		}
	}
	return points
}

// ellipseSamples implements §4.9's ellipse rule directly: the centre, N
// equally-spaced points on the perimeter, and K concentric interior rings,
// with both N and the ring count/spacing chosen so the step between
// adjacent samples approximates cellSizeM.
func ellipseSamples(e afctypes.Ellipse, cellSizeM float64) []sample {
	a, b := e.MajorAxisM, e.MinorAxisM
	if a <= 0 || b <= 0 {
		return nil
	}
	thetaRad := e.OrientationDeg * math.Pi / 180
	cosT, sinT := math.Cos(thetaRad), math.Sin(thetaRad)
	rotate := func(x0, y0 float64) (float64, float64) {
		// rotate clockwise from north: x=east, y=north
		return x0*sinT + y0*cosT, -x0*cosT + y0*sinT
	}

	samples := []sample{{X: 0, Y: 0, IsCentroid: true}}

	perimeterPoints := func(scaleA, scaleB float64, minPoints int) {
		perimeter := ellipsePerimeterM(scaleA, scaleB)
		n := int(math.Round(perimeter / cellSizeM))
		if n < minPoints {
			n = minPoints
		}
		for i := 0; i < n; i++ {
			phi := 2 * math.Pi * float64(i) / float64(n)
			x0, y0 := scaleA*math.Cos(phi), scaleB*math.Sin(phi)
			x, y := rotate(x0, y0)
			samples = append(samples, sample{X: x, Y: y})
		}
	}

	perimeterPoints(a, b, 8)

	numRings := int(math.Round(math.Max(a, b) / cellSizeM))
	if numRings < 1 {
		numRings = 1
	}
	for ring := 1; ring <= numRings; ring++ {
		scale := float64(ring) / float64(numRings+1)
		perimeterPoints(a*scale, b*scale, 4)
	}

	return samples
}

// ellipsePerimeterM approximates an ellipse's circumference via Ramanujan's
// second approximation.
func ellipsePerimeterM(a, b float64) float64 {
	h := math.Pow((a-b)/(a+b), 2)
	return math.Pi * (a + b) * (1 + 3*h/(10+math.Sqrt(4-3*h)))
}

// polygonSamples rasterizes vertices and returns every interior cell
// centre, plus an explicit geometric-centre sample so the §4.9 centroid
// invariant holds for polygon shapes even when no grid cell lands exactly
// on (0,0).
func polygonSamples(vertices [][2]float64, cellSizeM float64) []sample {
	grid := geo.RasterizePolygon(vertices, cellSizeM)
	minX, minY := math.Inf(1), math.Inf(1)
	for _, v := range vertices {
		minX = math.Min(minX, v[0])
		minY = math.Min(minY, v[1])
	}
	pad := 2.0 * cellSizeM
	minX -= pad
	minY -= pad

	samples := make([]sample, 0, len(grid.Interior)+1)
	samples = append(samples, sample{X: 0, Y: 0, IsCentroid: true})
	for c := range grid.Interior {
		x, y := geo.CellCenter(c, minX, minY, cellSizeM)
		samples = append(samples, sample{X: x, Y: y})
	}
	return samples
}

// planarPolygon returns the shape's local-planar vertex ring (metres,
// equirectangular about the shape's own centre) plus the centre used for
// that projection. Ellipse doesn't go through this path since it samples
// analytically rather than rasterizing a polygon approximation.
func planarPolygon(region afctypes.RlanRegion) (centerLat, centerLon float64, vertices [][2]float64) {
	switch region.Shape {
	case afctypes.ShapeLinearPolygon:
		return linearPolygonToPlanar(region.LinearPolygon)
	case afctypes.ShapeRadialPolygon:
		return radialPolygonToPlanar(region.RadialPolygon)
	default:
		return 0, 0, nil
	}
}

func linearPolygonToPlanar(p afctypes.LinearPolygon) (float64, float64, [][2]float64) {
	if len(p.VerticesLatLon) == 0 {
		return 0, 0, nil
	}
	centerLat, centerLon := centroid(p.VerticesLatLon)
	vertices := make([][2]float64, len(p.VerticesLatLon))
	for i, v := range p.VerticesLatLon {
		vertices[i] = latLonToPlanar(centerLat, centerLon, v[0], v[1])
	}
	return centerLat, centerLon, vertices
}

func radialPolygonToPlanar(p afctypes.RadialPolygon) (float64, float64, [][2]float64) {
	vertices := make([][2]float64, len(p.Vertices))
	for i, v := range p.Vertices {
		bearingRad := v.BearingDeg * math.Pi / 180
		x := v.DistanceM * math.Sin(bearingRad)
		y := v.DistanceM * math.Cos(bearingRad)
		vertices[i] = [2]float64{x, y}
	}
	return p.CenterLatDeg, p.CenterLonDeg, vertices
}

func centroid(points [][2]float64) (lat, lon float64) {
	var sLat, sLon float64
	for _, p := range points {
		sLat += p[0]
		sLon += p[1]
	}
	n := float64(len(points))
	return sLat / n, sLon / n
}

// latLonToPlanar is a small-area equirectangular projection about
// (centerLat, centerLon), adequate for uncertainty regions (tens of
// kilometres at most).
func latLonToPlanar(centerLat, centerLon, lat, lon float64) [2]float64 {
	latRad := centerLat * math.Pi / 180
	dLat := (lat - centerLat) * math.Pi / 180
	dLon := (lon - centerLon) * math.Pi / 180
	y := dLat * earthRadiusM
	x := dLon * earthRadiusM * math.Cos(latRad)
	return [2]float64{x, y}
}

func planarToLatLon(centerLat, centerLon, x, y float64) (lat, lon float64) {
	latRad := centerLat * math.Pi / 180
	dLat := y / earthRadiusM
	dLon := x / (earthRadiusM * math.Cos(latRad))
	lat = centerLat + dLat*180/math.Pi
	lon = centerLon + dLon*180/math.Pi
	return lat, lon
}

// verticalSamples returns defaultVerticalSamples heights spanning
// [nominal-uncertainty, nominal+uncertainty], or just the nominal height
// when uncertainty is zero.
func verticalSamples(nominalM, uncertaintyM float64) []float64 {
	if uncertaintyM <= 0 {
		return []float64{nominalM}
	}
	n := defaultVerticalSamples
	samples := make([]float64, n)
	for i := 0; i < n; i++ {
		frac := float64(i)/float64(n-1)*2 - 1 // -1..1
		samples[i] = nominalM + frac*uncertaintyM
	}
	return samples
}

// nominalHeightIndex finds which verticalSamples entry is the nominal
// height itself, so the centroid sample can be pinned to it rather than
// to whatever happens to be first.
func nominalHeightIndex(heights []float64, nominalM float64) int {
	best := 0
	bestDiff := math.Abs(heights[0] - nominalM)
	for i := 1; i < len(heights); i++ {
		if d := math.Abs(heights[i] - nominalM); d < bestDiff {
			best, bestDiff = i, d
		}
	}
	return best
}
