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

package antenna

import (
	"math"

	"github.com/afc-project/afc-engine/pkg/afctypes"
)

// r2aip07 implements ULSClass::calcR2AIP07Antenna (§4.5): maxGain < 38 dBi
// falls back to F.699 inside 5 degrees of boresight and otherwise uses the
// Category B2 or B1 minimum-suppression table directly; maxGain >= 38 dBi
// likewise falls back to F.699 inside 5 degrees, then picks Category B1
// when the antenna has no matched model or is tagged B1, Category A when
// tagged high-performance (taking whichever of F.699 or the Category A
// table discriminates harder), and the plain Category A table otherwise.
// The returned GainResult carries a SubModel tag naming the branch taken,
// for exc_thr.csv.
func r2aip07(ant afctypes.Antenna, thetaDeg, _ float64) afctypes.GainResult {
	theta := math.Abs(thetaDeg)

	if theta < 5 {
		return afctypes.GainResult{GainDBi: f699(ant, thetaDeg), SubModel: "R2-AIP-07:F.699"}
	}

	if ant.MaxGainDBi < 38 {
		if ant.Category == afctypes.CategoryB2 {
			return afctypes.GainResult{GainDBi: ant.MaxGainDBi - minSuppressionB2(theta), SubModel: "R2-AIP-07:catB2"}
		}
		return afctypes.GainResult{GainDBi: ant.MaxGainDBi - minSuppressionB1(theta), SubModel: "R2-AIP-07:catB1"}
	}

	antennaModelBlank := ant.ModelMatch == ""
	switch {
	case antennaModelBlank || ant.Category == afctypes.CategoryB1:
		return afctypes.GainResult{GainDBi: ant.MaxGainDBi - minSuppressionB1(theta), SubModel: "R2-AIP-07:catB1"}
	case ant.Category == afctypes.CategoryHP:
		minSuppressionA := minSuppressionA(theta)
		discrimination699 := ant.MaxGainDBi - f699(ant, thetaDeg)
		if discrimination699 >= minSuppressionA {
			return afctypes.GainResult{GainDBi: ant.MaxGainDBi - discrimination699, SubModel: "R2-AIP-07:F.699"}
		}
		return afctypes.GainResult{GainDBi: ant.MaxGainDBi - minSuppressionA, SubModel: "R2-AIP-07:catA"}
	default:
		return afctypes.GainResult{GainDBi: ant.MaxGainDBi - minSuppressionA(theta), SubModel: "R2-AIP-07:catA"}
	}
}

// minSuppressionB2 is Table 2's Category B2 minimum suppression.
func minSuppressionB2(theta float64) float64 {
	switch {
	case theta < 10:
		return 15
	case theta < 15:
		return 20
	case theta < 20:
		return 23
	case theta < 30:
		return 28
	case theta < 100:
		return 29
	default:
		return 60
	}
}

// minSuppressionB1 is Table 2's Category B1 minimum suppression.
func minSuppressionB1(theta float64) float64 {
	switch {
	case theta < 10:
		return 21
	case theta < 15:
		return 25
	case theta < 20:
		return 29
	case theta < 30:
		return 32
	case theta < 100:
		return 35
	case theta < 140:
		return 39
	default:
		return 45
	}
}

// minSuppressionA is Table 2's Category A minimum suppression.
func minSuppressionA(theta float64) float64 {
	switch {
	case theta < 10:
		return 25
	case theta < 15:
		return 29
	case theta < 20:
		return 33
	case theta < 30:
		return 36
	case theta < 100:
		return 42
	default:
		return 55
	}
}
