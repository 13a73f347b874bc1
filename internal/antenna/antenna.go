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

// Package antenna implements the antenna-gain evaluator (§4.5): a tagged
// dispatch over the antenna pattern families an FsLink's rx/tx antenna may
// use, each returning gain off boresight at a given angle/elevation/
// frequency.
package antenna

import (
	"math"

	"github.com/afc-project/afc-engine/pkg/afctypes"
)

// Evaluate dispatches on ant.Family and returns the gain (dBi) at the given
// off-boresight angle and elevation angle (both degrees) for a link at
// freqMHz. The angle convention: 0 deg is boresight.
func Evaluate(ant afctypes.Antenna, offBoresightDeg, elevationDeg, freqMHz float64) afctypes.GainResult {
	switch ant.Family {
	case afctypes.AntennaF1245:
		return afctypes.GainResult{GainDBi: f1245(ant, offBoresightDeg), SubModel: "F.1245"}
	case afctypes.AntennaF699:
		return afctypes.GainResult{GainDBi: f699(ant, offBoresightDeg), SubModel: "F.699"}
	case afctypes.AntennaF1336:
		return afctypes.GainResult{GainDBi: f1336Omni(ant, elevationDeg), SubModel: "F.1336"}
	case afctypes.AntennaR2AIP07:
		return r2aip07(ant, offBoresightDeg, freqMHz)
	case afctypes.AntennaUserLUT:
		return afctypes.GainResult{GainDBi: lutInterp(ant, offBoresightDeg), SubModel: "LUT"}
	default:
		return afctypes.GainResult{GainDBi: omni(ant, offBoresightDeg), SubModel: "Omni"}
	}
}

// omni returns maxGain regardless of angle ("0 dB below max").
func omni(ant afctypes.Antenna, _ float64) float64 {
	return ant.MaxGainDBi
}

// f1245 implements the ITU-R F.1245 standard piecewise pattern: a main-lobe
// parabolic roll-off, a near-side-lobe plateau, and a far/back-lobe floor,
// parameterized by D/lambda.
func f1245(ant afctypes.Antenna, thetaDeg float64) float64 {
	theta := math.Abs(thetaDeg)
	g1 := 2 + 15*math.Log10(ant.DOverLambda)
	phiM := 20 / ant.DOverLambda * math.Sqrt(ant.MaxGainDBi-g1)
	phiR := 15.85 * math.Pow(ant.DOverLambda, -0.6)

	switch {
	case theta < phiM:
		return ant.MaxGainDBi - 2.5e-3*math.Pow(ant.DOverLambda*theta, 2)
	case theta < math.Max(phiM, phiR):
		return g1
	case theta < 48:
		return 29 - 25*math.Log10(theta)
	default:
		return -13
	}
}

// f699 implements ITU-R F.699, deriving an effective D/lambda from
// maxGain the same way calcItu699::CalcITU699 does, with its two
// distinct branches above and at-or-below a D/lambda of 100.
func f699(ant afctypes.Antenna, thetaDeg float64) float64 {
	theta := math.Abs(thetaDeg)
	maxGain := ant.MaxGainDBi
	dl := math.Pow(10, (maxGain-7.7)/20)
	g1 := 2 + 15*math.Log10(dl)
	psiM := 20 / dl * math.Sqrt(maxGain-g1)

	if dl > 100 {
		psiR := 15.85 * math.Pow(dl, -0.6)
		plateauEnd := math.Max(psiM, psiR)
		switch {
		case theta < psiM:
			return maxGain - 2.5e-3*math.Pow(dl*theta, 2)
		case theta < plateauEnd:
			return g1
		case theta < 120:
			return 32 - 25*math.Log10(theta)
		default:
			return -20
		}
	}

	psiR := 100 / dl
	plateauEnd := math.Max(psiM, psiR)
	switch {
	case theta < psiM:
		return maxGain - 2.5e-3*math.Pow(dl*theta, 2)
	case theta < plateauEnd:
		return g1
	case theta < 48:
		return 52 - 10*math.Log10(dl) - 25*math.Log10(theta)
	default:
		return 10 - 10*math.Log10(dl)
	}
}

// f1336Omni implements the ITU-R F.1336 elevation-dependent envelope used
// for omnidirectional (sectorized small-cell-style) FS antennas.
func f1336Omni(ant afctypes.Antenna, elevationDeg float64) float64 {
	theta := math.Abs(elevationDeg)
	k := 0.7
	x := theta / 3.0 // half-power beamwidth assumed ~ a few degrees vertically
	g := ant.MaxGainDBi - 12*math.Pow(x, 2)
	floor := ant.MaxGainDBi - 30 + 10*k
	return math.Max(g, floor)
}

// lutInterp linearly interpolates a user-supplied pattern table, given in
// radians per spec §4.5, converting the query angle from degrees.
func lutInterp(ant afctypes.Antenna, thetaDeg float64) float64 {
	if len(ant.LUT) == 0 {
		return ant.MaxGainDBi
	}
	thetaRad := math.Abs(thetaDeg) * math.Pi / 180
	if thetaRad <= ant.LUT[0].AngleRad {
		return ant.LUT[0].GainDB
	}
	last := ant.LUT[len(ant.LUT)-1]
	if thetaRad >= last.AngleRad {
		return last.GainDB
	}
	for i := 1; i < len(ant.LUT); i++ {
		if thetaRad <= ant.LUT[i].AngleRad {
			a, b := ant.LUT[i-1], ant.LUT[i]
			frac := (thetaRad - a.AngleRad) / (b.AngleRad - a.AngleRad)
			return a.GainDB + frac*(b.GainDB-a.GainDB)
		}
	}
	return last.GainDB
}
