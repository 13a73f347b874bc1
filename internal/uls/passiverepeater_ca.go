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

package uls

import "math"

// caPassiveRepeaterToleranceDeg is the lat/lon match tolerance for joining
// two CA PP records by authorizationNumber, per spec §6: "within 1e-5
// degrees".
const caPassiveRepeaterToleranceDeg = 1e-5

// CAPassiveRepeaterRecord is one "CA:PP" record prior to pairing.
type CAPassiveRepeaterRecord struct {
	AuthorizationNumber string
	LatitudeDeg         float64
	LongitudeDeg        float64
	RawFields           []string
}

// MatchCAPassiveRepeaterPairs groups CA:PP records by authorizationNumber
// and keeps pairs whose coordinates agree within tolerance; unmatched
// records (no pair, or a pair outside tolerance) are returned separately
// with a warning string, per §4.12/§6's "two-record join" rule.
func MatchCAPassiveRepeaterPairs(records []CAPassiveRepeaterRecord) (pairs [][2]CAPassiveRepeaterRecord, warnings []string) {
	byAuth := make(map[string][]CAPassiveRepeaterRecord)
	for _, r := range records {
		byAuth[r.AuthorizationNumber] = append(byAuth[r.AuthorizationNumber], r)
	}

	for auth, group := range byAuth {
		switch {
		case len(group) < 2:
			warnings = append(warnings, "authorizationNumber "+auth+": only one passive-repeater record, cannot pair")
		case len(group) > 2:
			warnings = append(warnings, "authorizationNumber "+auth+": more than two passive-repeater records, ambiguous pairing")
		default:
			a, b := group[0], group[1]
			if math.Abs(a.LatitudeDeg-b.LatitudeDeg) <= caPassiveRepeaterToleranceDeg &&
				math.Abs(a.LongitudeDeg-b.LongitudeDeg) <= caPassiveRepeaterToleranceDeg {
				pairs = append(pairs, [2]CAPassiveRepeaterRecord{a, b})
			} else {
				warnings = append(warnings, "authorizationNumber "+auth+": coordinate mismatch beyond 1e-5 degrees")
			}
		}
	}
	return pairs, warnings
}
