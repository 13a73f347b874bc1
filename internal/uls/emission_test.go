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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEmissionDesignator(t *testing.T) {
	cases := []struct {
		designator string
		wantMHz    float64
		wantOK     bool
	}{
		{"20M0F7W", 20.0, true},
		{"6M25F9W", 6.25, true},
		{"250KF1D", 0.25, true},
		{"XYZ", 0, false},
	}
	for _, c := range cases {
		got, ok := ParseEmissionDesignator(c.designator)
		assert.Equal(t, c.wantOK, ok, c.designator)
		if ok {
			assert.InDelta(t, c.wantMHz, got, 1e-9, c.designator)
		}
	}
}

func TestFrequencyAssignmentTable_FallbackLookup(t *testing.T) {
	csvData := "channelFrequency,channelBandwidth\n6125,30\n6175,30\n"
	table := NewFrequencyAssignmentTable()
	require.NoError(t, table.LoadCSV(strings.NewReader(csvData)))

	bw, ok := table.Lookup(6125)
	require.True(t, ok)
	assert.Equal(t, 30.0, bw)

	_, ok = table.Lookup(9999)
	assert.False(t, ok)
}

func TestResolveBandwidth_FallsBackOnUnparseableDesignator(t *testing.T) {
	csvData := "channelFrequency,channelBandwidth\n6125,30\n"
	table := NewFrequencyAssignmentTable()
	require.NoError(t, table.LoadCSV(strings.NewReader(csvData)))

	bw, ok := ResolveBandwidth("XYZ", 6125, table)
	require.True(t, ok)
	assert.Equal(t, 30.0, bw)
}
