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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchCAPassiveRepeaterPairs_WithinToleranceMatches(t *testing.T) {
	records := []CAPassiveRepeaterRecord{
		{AuthorizationNumber: "AUTH1", LatitudeDeg: 45.0, LongitudeDeg: -75.0},
		{AuthorizationNumber: "AUTH1", LatitudeDeg: 45.0 + 0.5e-5, LongitudeDeg: -75.0},
	}
	pairs, warnings := MatchCAPassiveRepeaterPairs(records)
	assert.Len(t, pairs, 1)
	assert.Empty(t, warnings)
}

func TestMatchCAPassiveRepeaterPairs_BeyondToleranceWarns(t *testing.T) {
	records := []CAPassiveRepeaterRecord{
		{AuthorizationNumber: "AUTH1", LatitudeDeg: 45.0, LongitudeDeg: -75.0},
		{AuthorizationNumber: "AUTH1", LatitudeDeg: 45.0 + 2e-5, LongitudeDeg: -75.0},
	}
	pairs, warnings := MatchCAPassiveRepeaterPairs(records)
	assert.Empty(t, pairs)
	assert.Len(t, warnings, 1)
}

func TestMatchCAPassiveRepeaterPairs_SingleRecordWarns(t *testing.T) {
	records := []CAPassiveRepeaterRecord{
		{AuthorizationNumber: "AUTH2", LatitudeDeg: 45.0, LongitudeDeg: -75.0},
	}
	pairs, warnings := MatchCAPassiveRepeaterPairs(records)
	assert.Empty(t, pairs)
	assert.Len(t, warnings, 1)
}
