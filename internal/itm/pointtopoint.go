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

package itm

import (
	"math"

	"github.com/afc-project/afc-engine/pkg/afctypes"
)

// Polarization and Ground mirror the AnalysisConfig.ITMParameters enums.
type Polarization string

const (
	PolarizationVertical   Polarization = "Vertical"
	PolarizationHorizontal Polarization = "Horizontal"
)

type GroundType string

const (
	GroundGood    GroundType = "Good"
	GroundAverage GroundType = "Average"
	GroundPoor    GroundType = "Poor"
)

// Parameters mirrors the AFC config's ITMParameters object.
type Parameters struct {
	Polarization   Polarization
	Ground         GroundType
	DielectricConst float64
	Conductivity    float64
	MinSpacingM     float64
	MaxPoints       int
	ConfidenceFrac  float64 // e.g. 0.5 for median prediction
	ReliabilityFrac float64
}

// PointToPointFunc is the external, fixed-signature NTIA `point_to_point`
// entry point per spec §1: given an elevation profile, antenna heights
// above ground at each end, frequency, and ITM parameters, it returns the
// predicted path loss in dB. This repository treats the real routine as an
// out-of-tree dependency and ships LongleyRice as a documented stand-in
// (see DESIGN.md) implementing the same signature.
type PointToPointFunc func(profile afctypes.ElevationProfile, txHeightM, rxHeightM, freqMHz float64, params Parameters) (lossDB float64, err error)

// LongleyRice is this repository's simplified area-prediction stand-in for
// the real point_to_point routine: free-space loss plus a single dominant
// knife-edge diffraction term (the terrain obstruction with the largest
// Fresnel-zone intrusion along the profile) and a log-normal variability
// margin keyed to params.ConfidenceFrac. It is not a line-for-line port of
// Longley-Rice's area-mode algorithm.
func LongleyRice(profile afctypes.ElevationProfile, txHeightM, rxHeightM, freqMHz float64, params Parameters) (float64, error) {
	n := profile.NumPoints()
	if n < 2 {
		return 0, errProfileTooShort
	}
	pathLengthKM := profile.PathLengthMetres / 1000
	fspl := FreeSpacePathLossDB(freqMHz, pathLengthKM)

	diffraction := maxDiffractionLossDB(profile, txHeightM, rxHeightM, freqMHz)
	groundLoss := groundConstantLossDB(params.Ground)
	variability := variabilityMarginDB(params.ConfidenceFrac)

	total := fspl + diffraction + groundLoss + variability
	if math.IsNaN(total) || math.IsInf(total, 0) {
		return 0, errNonFiniteLoss
	}
	return total, nil
}

// maxDiffractionLossDB finds the terrain sample with the largest Fresnel-
// zone intrusion along the direct ray and returns a single-knife-edge
// diffraction loss (Fresnel-Kirchhoff) for it; zero if the ray clears every
// sample.
func maxDiffractionLossDB(profile afctypes.ElevationProfile, txHeightM, rxHeightM, freqMHz float64) float64 {
	n := profile.NumPoints()
	totalM := profile.DxMetres * float64(n-1)
	if totalM <= 0 {
		return 0
	}
	lambdaM := 299.792458 / freqMHz // freqMHz in MHz, c in m*MHz -> metres
	worstV := math.Inf(-1)
	for i, h := range profile.Heights {
		d1 := profile.DxMetres * float64(i)
		d2 := totalM - d1
		if d1 <= 0 || d2 <= 0 {
			continue
		}
		frac := d1 / totalM
		lineHeight := txHeightM + profile.Heights[0] + frac*((rxHeightM+profile.Heights[n-1])-(txHeightM+profile.Heights[0]))
		clearanceM := lineHeight - h
		radiusFresnel := math.Sqrt(lambdaM * d1 * d2 / totalM)
		if radiusFresnel <= 0 {
			continue
		}
		v := -clearanceM * math.Sqrt(2/(lambdaM*totalM)*(totalM*totalM)/(d1*d2)) // Fresnel-Kirchhoff parameter, simplified
		if v > worstV {
			worstV = v
		}
	}
	if math.IsInf(worstV, -1) || worstV <= -0.78 {
		return 0
	}
	// standard single-knife-edge diffraction loss approximation
	return 6.9 + 20*math.Log10(math.Sqrt(math.Pow(worstV-0.1, 2)+1)+worstV-0.1)
}

func groundConstantLossDB(g GroundType) float64 {
	switch g {
	case GroundPoor:
		return 3.0
	case GroundAverage:
		return 1.0
	default:
		return 0.0
	}
}

// variabilityMarginDB applies a location-variability margin keyed to the
// requested confidence: higher confidence costs more margin dB, following
// the standard Longley-Rice convention that the predicted loss grows with
// the requested confidence; at or below the median (0.5) the margin is 0.
func variabilityMarginDB(confidenceFrac float64) float64 {
	if confidenceFrac <= 0 {
		confidenceFrac = 0.5
	}
	// z-score approximation for a log-normal variability distribution with
	// sigma = 8 dB, clipped to the sane range ITM operates in.
	z := invNormalApprox(confidenceFrac)
	return math.Max(0, z*8.0)
}

// invNormalApprox is a rational approximation (Acklam's algorithm) of
// the inverse standard normal CDF, adequate for the variability margin;
// it is not used for any correctness-critical statistical computation.
func invNormalApprox(p float64) float64 {
	if p <= 0 || p >= 1 {
		return 0
	}
	a := []float64{-3.969683028665376e+01, 2.209460984245205e+02, -2.759285104469687e+02,
		1.383577518672690e+02, -3.066479806614716e+01, 2.506628277459239e+00}
	b := []float64{-5.447609879822406e+01, 1.615858368580409e+02, -1.556989798598866e+02,
		6.680131188771972e+01, -1.328068155288572e+01}
	c := []float64{-7.784894002430293e-03, -3.223964580411365e-01, -2.400758277161838e+00,
		-2.549732539343734e+00, 4.374664141464968e+00, 2.938163982698783e+00}
	d := []float64{7.784695709041462e-03, 3.224671290700398e-01, 2.445134137142996e+00,
		3.754408661907416e+00}
	plow := 0.02425
	phigh := 1 - plow
	switch {
	case p < plow:
		q := math.Sqrt(-2 * math.Log(p))
		return (((((c[0]*q+c[1])*q+c[2])*q+c[3])*q+c[4])*q + c[5]) /
			((((d[0]*q+d[1])*q+d[2])*q+d[3])*q + 1)
	case p <= phigh:
		q := p - 0.5
		r := q * q
		return (((((a[0]*r+a[1])*r+a[2])*r+a[3])*r+a[4])*r + a[5]) * q /
			(((((b[0]*r+b[1])*r+b[2])*r+b[3])*r+b[4])*r + 1)
	default:
		q := math.Sqrt(-2 * math.Log(1-p))
		return -(((((c[0]*q+c[1])*q+c[2])*q+c[3])*q+c[4])*q + c[5]) /
			((((d[0]*q+d[1])*q+d[2])*q+d[3])*q + 1)
	}
}
