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
	"math/rand"
	"regexp"
	"strings"
	"testing"

	"github.com/afc-project/afc-engine/internal/uls/catalog"
	"github.com/afc-project/afc-engine/pkg/afctypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAntennaCatalog() *catalog.AntennaCatalog {
	c := catalog.NewAntennaCatalog()
	c.USRules = []catalog.AntennaRule{
		{Pattern: regexp.MustCompile(`^HP`), Entry: afctypes.AntennaCatalogEntry{Name: "HP-6FT", Category: afctypes.CategoryHP, DiameterM: 1.8, MidbandGainDB: 38.5}},
	}
	return c
}

func sampleLine(id, emission string) string {
	fields := []string{
		"US:PA", id, "FX", "A", "0",
		"40", "45", "33.3", "N",
		"73", "58", "27.6", "W",
		"30", "HP6FOOT", "1.5", "-140",
		"40", "46", "10.0", "N",
		"74", "0", "15.0", "W",
		"45", "HP6FOOT", "35",
		emission, "6125", "", "",
	}
	return strings.Join(fields, "|")
}

func TestIngest_AssemblesCleanLink(t *testing.T) {
	deps := Deps{Antennas: testAntennaCatalog(), FreqTable: NewFrequencyAssignmentTable(), Rng: rand.New(rand.NewSource(1))}
	r := strings.NewReader(sampleLine("LNK1", "20M0F7W") + "\n")

	links, anomalies, stats, err := Ingest(r, deps)
	require.NoError(t, err)
	assert.Empty(t, anomalies)
	require.Len(t, links, 1)
	assert.Equal(t, 1, stats.LinksAssembled)
	assert.InDelta(t, 38.5, links[0].RxAntenna.MaxGainDBi, 1e-9)
	assert.InDelta(t, 20.0, links[0].BandwidthMHz, 1e-9)
	assert.False(t, links[0].AntennaModelUnmatched)
}

func TestIngest_EmissionFallbackToFrequencyTable(t *testing.T) {
	table := NewFrequencyAssignmentTable()
	require.NoError(t, table.LoadCSV(strings.NewReader("channelFrequency,channelBandwidth\n6125,30\n")))
	deps := Deps{Antennas: testAntennaCatalog(), FreqTable: table, Rng: rand.New(rand.NewSource(1))}
	r := strings.NewReader(sampleLine("LNK2", "XYZ") + "\n")

	links, _, _, err := Ingest(r, deps)
	require.NoError(t, err)
	require.Len(t, links, 1)
	assert.InDelta(t, 30.0, links[0].BandwidthMHz, 1e-9)
}

func TestIngest_UnparseableEmissionNoFallbackGoesToAnomalous(t *testing.T) {
	deps := Deps{Antennas: testAntennaCatalog(), FreqTable: NewFrequencyAssignmentTable(), Rng: rand.New(rand.NewSource(1))}
	r := strings.NewReader(sampleLine("LNK3", "XYZ") + "\n")

	links, anomalies, stats, err := Ingest(r, deps)
	require.NoError(t, err)
	assert.Empty(t, links)
	require.Len(t, anomalies, 1)
	assert.Equal(t, 1, stats.LinksAnomalous)
}

func TestIngest_IgnoresCommentAndBlankLines(t *testing.T) {
	deps := Deps{Antennas: testAntennaCatalog(), FreqTable: NewFrequencyAssignmentTable(), Rng: rand.New(rand.NewSource(1))}
	body := "# comment\n\n" + sampleLine("LNK4", "20M0F7W") + "\n"
	links, _, stats, err := Ingest(strings.NewReader(body), deps)
	require.NoError(t, err)
	assert.Len(t, links, 1)
	assert.Equal(t, 1, stats.RecordsRead)
}
