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

// Package geo implements the geometry the AFC engine owns directly: the
// great-circle sampler (§4.1) and the uncertainty-region rasterizer
// (§4.9, Design Notes §9). Full ECEF<->geodetic conversion and general
// vector math are treated as an external geodesy library per spec §1;
// this package only derives the unit-sphere vectors its own great-circle
// construction needs.
package geo

import "math"

const earthRadiusKM = 6371.0088

// Vec3 is a local unit-sphere vector, scoped to this package's great-circle
// math — not the general-purpose ECEF vector type the (external) geodesy
// library would expose.
type Vec3 struct{ X, Y, Z float64 }

func add(a, b Vec3) Vec3  { return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z} }
func sub(a, b Vec3) Vec3  { return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z} }
func dot(a, b Vec3) float64 { return a.X*b.X + a.Y*b.Y + a.Z*b.Z }
func norm(a Vec3) float64 { return math.Sqrt(dot(a, a)) }
func scale(a Vec3, s float64) Vec3 { return Vec3{a.X * s, a.Y * s, a.Z * s} }
func unit(a Vec3) Vec3 {
	n := norm(a)
	if n == 0 {
		return a
	}
	return scale(a, 1/n)
}

func toUnitVector(latDeg, lonDeg float64) Vec3 {
	lat := latDeg * math.Pi / 180
	lon := lonDeg * math.Pi / 180
	cl := math.Cos(lat)
	return Vec3{X: cl * math.Cos(lon), Y: cl * math.Sin(lon), Z: math.Sin(lat)}
}

func fromUnitVector(v Vec3) (latDeg, lonDeg float64) {
	lat := math.Asin(clamp(v.Z, -1, 1))
	lon := math.Atan2(v.Y, v.X)
	return lat * 180 / math.Pi, lon * 180 / math.Pi
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// GreatCirclePath is the result of sampling a great-circle arc: N (lat,lon)
// samples and the arc's length in km.
type GreatCirclePath struct {
	Samples      [][2]float64 // [i] = {latDeg, lonDeg}
	PathLengthKM float64
}

// HaversineKM is the great-circle distance between two geodetic points.
func HaversineKM(lat1, lon1, lat2, lon2 float64) float64 {
	p1 := lat1 * math.Pi / 180
	p2 := lat2 * math.Pi / 180
	dPhi := (lat2 - lat1) * math.Pi / 180
	dLambda := (lon2 - lon1) * math.Pi / 180
	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(p1)*math.Cos(p2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKM * c
}

// SampleApprox is the small-arc constructor (§4.1): linear interpolation of
// (lat,lon) fractions. Only valid for path lengths up to ~10 km; the caller
// is responsible for picking this vs SampleExactMM based on distance.
func SampleApprox(lat1, lon1, lat2, lon2 float64, n int) GreatCirclePath {
	if n < 2 {
		n = 2
	}
	samples := make([][2]float64, n)
	for i := 0; i < n; i++ {
		frac := float64(i) / float64(n-1)
		samples[i] = [2]float64{
			lat1 + frac*(lat2-lat1),
			lon1 + frac*(lon2-lon1),
		}
	}
	return GreatCirclePath{Samples: samples, PathLengthKM: HaversineKM(lat1, lon1, lat2, lon2)}
}

// SampleExactMM is the "MM" exact great-circle constructor (§4.1, and
// Design Notes §9 — computeGreatCircleLineMM is the only variant the
// production path uses; computeGreatCircleLine without the MM suffix is
// not reproduced). It builds unit-sphere vectors for both endpoints, an
// orthonormal basis (u,v) in their shared plane where u bisects them, and
// samples angularly so the first and last samples equal the endpoints to
// machine precision.
func SampleExactMM(lat1, lon1, lat2, lon2 float64, n int) GreatCirclePath {
	if n < 2 {
		n = 2
	}
	u1 := toUnitVector(lat1, lon1)
	u2 := toUnitVector(lat2, lon2)

	sum := add(u1, u2)
	diff := sub(u2, u1)
	sumNorm := norm(sum)
	diffNorm := norm(diff)

	samples := make([][2]float64, n)
	if sumNorm < 1e-15 {
		// antipodal points: fall back to the first endpoint repeated,
		// since no unique great circle plane is defined by u alone in
		// the antipodal case and this never occurs for real FS/RLAN
		// geometry.
		for i := 0; i < n; i++ {
			lat, lon := fromUnitVector(u1)
			samples[i] = [2]float64{lat, lon}
		}
		return GreatCirclePath{Samples: samples, PathLengthKM: 0}
	}
	u := unit(sum)
	var v Vec3
	halfAngle := 0.0
	if diffNorm < 1e-15 {
		// coincident points
		v = Vec3{}
		halfAngle = 0
	} else {
		v = unit(diff)
		halfAngle = math.Asin(clamp(diffNorm/2, -1, 1))
	}
	angle := 2 * halfAngle

	for i := 0; i < n; i++ {
		theta := angle * float64(2*i-(n-1)) / float64(2*(n-1))
		s := add(scale(u, math.Cos(theta)), scale(v, math.Sin(theta)))
		lat, lon := fromUnitVector(s)
		samples[i] = [2]float64{lat, lon}
	}
	return GreatCirclePath{Samples: samples, PathLengthKM: earthRadiusKM * angle}
}
