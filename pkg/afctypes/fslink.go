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

// Region identifies which national FS database schema a link was ingested
// from.
type Region string

const (
	RegionUS Region = "US"
	RegionCA Region = "CA"
)

// LicenseStatus mirrors the ULS/ISED license-status field used to decide
// whether a link is active and protectable.
type LicenseStatus string

const (
	LicenseActive  LicenseStatus = "A"
	LicenseExpired LicenseStatus = "E"
	LicenseOther   LicenseStatus = "O"
)

// FsPathSegment is one hop of a (possibly segmented) FS microwave link:
// Tx->Rx directly, or Tx->PR1, PRi->PRi+1, PRn->Rx.
type FsPathSegment struct {
	TxLocation   Location
	RxLocation   Location
	LengthKM     float64
	PointingUnit Vector3 // unit vector from Tx toward Rx
}

// FsLink is one licensed Fixed Service link, possibly relayed through a
// chain of passive repeaters.
type FsLink struct {
	ID                    string
	Region                Region
	RadioService          string
	LicenseStatus         LicenseStatus
	StartUseFreqMHz       float64
	StopUseFreqMHz        float64
	BandwidthMHz          float64
	RxLocation            Location
	RxAntenna             Antenna
	RxAntennaFeederLossDB float64
	RxNoiseLevelDBW       float64
	TxLocation            Location
	TxAntenna             Antenna
	TxEIRPDBm             float64
	PassiveRepeaters      []PassiveRepeater
	Segments              []FsPathSegment

	Mobile                   bool
	AntennaModelUnmatched    bool
	PassiveRepeaterMatchWarnings []string
}

// OverlapsBand reports whether [lo,hi] (MHz) intersects this link's
// useFreq window.
func (f *FsLink) OverlapsBand(loMHz, hiMHz float64) bool {
	return f.StartUseFreqMHz < hiMHz && f.StopUseFreqMHz > loMHz
}

// RASZone is a Radio Astronomy Service exclusion region: either a list of
// rectangles or circles (or both), a frequency window, and an optional AGL
// antenna-height ceiling above which the zone does not apply.
type RASZone struct {
	Name           string
	Rectangles     []RASRectangle
	Circles        []RASCircle
	StartFreqMHz   float64
	StopFreqMHz    float64
	MaxAGLHeightM  float64 // applies only when HasHeightLimit is set
	HasHeightLimit bool    // false means the zone applies at every height
}

type RASRectangle struct {
	MinLatDeg, MaxLatDeg float64
	MinLonDeg, MaxLonDeg float64
}

type RASCircle struct {
	CenterLatDeg, CenterLonDeg float64
	RadiusKM                  float64
}
