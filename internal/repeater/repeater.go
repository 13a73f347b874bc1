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

// Package repeater implements passive-repeater discrimination (§4.6): the
// two variants a segmented FS link may relay through, back-to-back antenna
// pairs and billboard reflectors.
package repeater

import (
	"math"

	"github.com/afc-project/afc-engine/internal/antenna"
	"github.com/afc-project/afc-engine/pkg/afctypes"
)

// Discriminate dispatches on pr.Kind and returns the discrimination loss
// (dB, positive = attenuating) at off-boresight angle thetaDeg from the
// repeater toward the ray in question.
func Discriminate(pr afctypes.PassiveRepeater, thetaDeg, freqMHz float64) float64 {
	switch pr.Kind {
	case afctypes.RepeaterBackToBack:
		return backToBack(pr.BackToBack, thetaDeg, freqMHz)
	case afctypes.RepeaterBillboard:
		return billboard(pr.Billboard, thetaDeg)
	default:
		return 0
	}
}

// backToBack returns AntennaA's R2-AIP-07 discrimination at off-boresight
// angle thetaDeg, relative to AntennaA's own boresight gain. AntennaB's
// pattern is not consulted, whichever antenna faces the ray.
func backToBack(p afctypes.BackToBackParams, thetaDeg, freqMHz float64) float64 {
	gA := antenna.Evaluate(withR2AIP07(p.AntennaA), thetaDeg, 0, freqMHz).GainDBi
	return p.AntennaA.MaxGainDBi - gA
}

func withR2AIP07(a afctypes.Antenna) afctypes.Antenna {
	if a.Family == "" {
		a.Family = afctypes.AntennaR2AIP07
	}
	return a
}

// BillboardDiscrimination computes the §4.6 billboard-reflector
// discrimination: max(D0, D1) where D0 is the geometric-optics aperture
// term and D1 is the diffraction term, itself piecewise in theta vs the
// precomputed knee angle theta1.
//
//	u = (S/lambda) * sin(theta) / pi
//	D0 = -10*log10(4*pi*W*H*cos(thetaIn))
//	D1 = 20*log10(|sinc(u)|)                          if theta <= theta1
//	     -20*log10(pi*|u|)                             if theta <= 20 deg
//	     -20*log10(pi*|u20|) - 0.4165*(theta-20)        otherwise
func BillboardDiscrimination(p afctypes.BillboardParams, thetaDeg, thetaInDeg float64) (d0, d1, combined float64) {
	thetaRad := thetaDeg * math.Pi / 180
	thetaInRad := thetaInDeg * math.Pi / 180
	u := p.SOverLambda * math.Sin(thetaRad) / math.Pi

	d0 = -10 * math.Log10(4*math.Pi*p.ReflectorWidthLambda*p.ReflectorHeightLambda*math.Cos(thetaInRad))

	switch {
	case thetaDeg <= p.Theta1Deg:
		d1 = 20 * math.Log10(math.Abs(sinc(u)))
	case thetaDeg <= 20:
		d1 = -20 * math.Log10(math.Pi * math.Abs(u))
	default:
		u20 := p.SOverLambda * math.Sin(20*math.Pi/180) / math.Pi
		d1 = -20*math.Log10(math.Pi*math.Abs(u20)) - 0.4165*(thetaDeg-20)
	}
	return d0, d1, math.Max(d0, d1)
}

func billboard(p afctypes.BillboardParams, thetaDeg float64) float64 {
	// thetaIn (angle of incidence onto the reflector plane) is taken equal
	// to thetaDeg absent separate incidence geometry in the caller; callers
	// with distinct incidence/observation angles should call
	// BillboardDiscrimination directly.
	_, _, combined := BillboardDiscrimination(p, thetaDeg, thetaDeg)
	return combined
}

// sinc is the normalized sinc function sin(pi*x)/(pi*x), matching the
// "sinc(u)" notation in §4.6 where u already carries the pi scaling from
// the caller's formula for D1's argument.
func sinc(x float64) float64 {
	if math.Abs(x) < 1e-12 {
		return 1.0
	}
	return math.Sin(math.Pi*x) / (math.Pi * x)
}

// PrecomputeGeometry derives the knee angle theta1 and SOverLambda for a billboard
// reflector from its physical geometry, per §4.6 ("theta1 and S/lambda are
// precomputed per reflector"). S is the reflector's largest dimension.
func PrecomputeGeometry(widthLambda, heightLambda float64) (sOverLambda, theta1Deg float64) {
	s := math.Max(widthLambda, heightLambda)
	// theta1 is where the D0 and asymptotic-D1 branches cross; solved
	// numerically by bisection since both are transcendental in theta.
	lo, hi := 0.01, 19.99
	f := func(thetaDeg float64) float64 {
		u := s * math.Sin(thetaDeg*math.Pi/180) / math.Pi
		d1Edge := -20 * math.Log10(math.Pi*math.Abs(u))
		d1Main := 20 * math.Log10(math.Abs(sinc(u)))
		return d1Main - d1Edge
	}
	for i := 0; i < 60; i++ {
		mid := (lo + hi) / 2
		if f(mid) > 0 {
			lo = mid
		} else {
			hi = mid
		}
	}
	return s, (lo + hi) / 2
}
