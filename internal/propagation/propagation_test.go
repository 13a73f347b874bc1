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

package propagation

import (
	"math"
	"testing"

	"github.com/afc-project/afc-engine/internal/itm"
	"github.com/afc-project/afc-engine/pkg/afctypes"
)

func flatProfile(n int, dxM float64) afctypes.ElevationProfile {
	heights := make([]float64, n)
	return afctypes.ElevationProfile{DxMetres: dxM, Heights: heights, PathLengthMetres: dxM * float64(n-1)}
}

func basicParams() Params {
	return Params{
		ITM:                 itm.Parameters{Ground: itm.GroundAverage, DielectricConst: 15, Conductivity: 0.005, ConfidenceFrac: 0.5},
		Winner2BreakpointM:  1000,
		Win2ConfidenceFrac:  0.5,
		P2108ConfidenceFrac: 0.5,
	}
}

func TestComposeLOSAlwaysFreeSpace(t *testing.T) {
	r := Compose(flatProfile(2, 5000), true, afctypes.IndoorFalse, afctypes.MorphologyUrban, 5, 6000, 30, 10, basicParams())
	if r.ModelTag != afctypes.ModelFreeSpace {
		t.Fatalf("LOS link should resolve to FSPL regardless of morphology, got %s", r.ModelTag)
	}
}

func TestComposeRuralNLOSUsesITM(t *testing.T) {
	r := Compose(flatProfile(50, 100), false, afctypes.IndoorFalse, afctypes.MorphologyRural, 5, 6000, 30, 10, basicParams())
	if r.ModelTag != afctypes.ModelITM {
		t.Fatalf("rural NLOS should resolve to ITM, got %s", r.ModelTag)
	}
}

func TestComposeUrbanShortRangeNLOSBlends(t *testing.T) {
	p := basicParams()
	p.Winner2BreakpointM = 100
	r := Compose(flatProfile(50, 10), false, afctypes.IndoorFalse, afctypes.MorphologyUrban, 0.5, 6000, 10, 5, p)
	if r.ModelTag != afctypes.ModelBlend {
		t.Fatalf("short-range urban NLOS should resolve to the ITM/WINNER-II blend, got %s", r.ModelTag)
	}
	if r.Winner2LossDB <= 0 || r.ITMLossDB <= 0 {
		t.Fatalf("blend should compute both contributing losses, got winner2=%v itm=%v", r.Winner2LossDB, r.ITMLossDB)
	}
}

func TestComposeLongRangeUrbanNLOSUsesITM(t *testing.T) {
	p := basicParams()
	r := Compose(flatProfile(50, 100), false, afctypes.IndoorFalse, afctypes.MorphologyUrban, 5, 6000, 30, 10, p)
	if r.ModelTag != afctypes.ModelITM {
		t.Fatalf("urban NLOS beyond the short-range breakpoint should fall back to ITM, got %s", r.ModelTag)
	}
}

func TestComposeClutterAtFSAddsLossOnlyWhenFlagged(t *testing.T) {
	p := basicParams()
	p.Winner2BreakpointM = 100
	p.ClutterAtFS = true
	withClutter := Compose(flatProfile(50, 10), false, afctypes.IndoorFalse, afctypes.MorphologySuburban, 0.5, 6000, 10, 5, p)

	p.ClutterAtFS = false
	withoutClutter := Compose(flatProfile(50, 10), false, afctypes.IndoorFalse, afctypes.MorphologySuburban, 0.5, 6000, 10, 5, p)

	if withClutter.ClutterLossDB <= 0 {
		t.Fatalf("ClutterAtFS should add positive clutter loss, got %v", withClutter.ClutterLossDB)
	}
	if withoutClutter.ClutterLossDB != 0 {
		t.Fatalf("clutter loss should be zero when ClutterAtFS is unset, got %v", withoutClutter.ClutterLossDB)
	}
	if withClutter.PathLossDB <= withoutClutter.PathLossDB {
		t.Fatalf("clutter loss should increase total path loss: with=%v without=%v", withClutter.PathLossDB, withoutClutter.PathLossDB)
	}
}

func TestQInvMonotonicAndMedianZero(t *testing.T) {
	if v := qInv(0.5); math.Abs(v) > 1e-6 {
		t.Fatalf("qInv(0.5) should be ~0, got %v", v)
	}
	if qInv(0.9) <= qInv(0.5) {
		t.Fatalf("qInv should be increasing in p")
	}
	if qInv(0.1) >= qInv(0.5) {
		t.Fatalf("qInv should be increasing in p")
	}
}

func TestP2108ClutterLossDecreasesWithExceedancePercentile(t *testing.T) {
	lowPercentile := p2108ClutterLossDB(6000, 0.5, 0.1)
	highPercentile := p2108ClutterLossDB(6000, 0.5, 0.9)
	if highPercentile >= lowPercentile {
		t.Fatalf("clutter loss exceeded at a higher percentile of locations should be smaller, got low=%v high=%v", lowPercentile, highPercentile)
	}
}
