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

// PassiveRepeaterKind tags the discriminator variant a PassiveRepeater
// dispatches to.
type PassiveRepeaterKind string

const (
	RepeaterBackToBack PassiveRepeaterKind = "BackToBack"
	RepeaterBillboard  PassiveRepeaterKind = "Billboard"
)

// BackToBackParams holds the two-antenna back-to-back passive-repeater
// parameters. Only inhabited when Kind == RepeaterBackToBack.
type BackToBackParams struct {
	AntennaA  Antenna
	AntennaB  Antenna
	ModelA    string
	ModelB    string
	PointingA Vector3
	PointingB Vector3
}

// BillboardParams holds the reflector-plane passive-repeater parameters.
// Only inhabited when Kind == RepeaterBillboard.
type BillboardParams struct {
	ReflectorWidthLambda  float64 // W, reflector width in wavelengths
	ReflectorHeightLambda float64 // H, reflector height in wavelengths
	SOverLambda           float64 // S/λ, derived from geometry at ingest time
	Theta1Deg             float64 // derived knee angle between D1's sinc and -20*log10(pi*|u|) branches
	PlaneNormal           Vector3
}

// PassiveRepeater is a non-powered relay node in a segmented FS link: either
// a back-to-back antenna pair or a billboard reflector, never both.
type PassiveRepeater struct {
	Kind      PassiveRepeaterKind
	Location  Location
	BackToBack BackToBackParams
	Billboard  BillboardParams
}

// Vector3 is a plain Cartesian 3-vector (Earth-centred frame), used for
// pointing vectors between link endpoints. Full ECEF<->geodetic conversion
// is treated as an external geodesy library; this type only carries the
// unit vector this engine's own great-circle code derives internally.
type Vector3 struct {
	X, Y, Z float64
}
