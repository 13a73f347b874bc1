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
	"encoding/csv"
	"io"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/afc-project/afc-engine/internal/aferr"
)

// emissionDesignatorRe matches the ITU emission-designator bandwidth
// prefix, e.g. "20M0F7W" -> 20.0 MHz, "6M25F9W" -> 6.25 MHz, "250KF1D" ->
// 0.25 MHz. The letter in place of the decimal point names the unit: K
// (kHz), M (MHz), G (GHz).
var emissionDesignatorRe = regexp.MustCompile(`^(\d+)([KMG])(\d*)`)

// ParseEmissionDesignator extracts the bandwidth (MHz) from a free-text
// emission designator string; ok is false when the designator doesn't
// match the expected numeric-unit-numeric prefix shape.
func ParseEmissionDesignator(designator string) (bandwidthMHz float64, ok bool) {
	m := emissionDesignatorRe.FindStringSubmatch(strings.ToUpper(strings.TrimSpace(designator)))
	if m == nil {
		return 0, false
	}
	whole, unit, frac := m[1], m[2], m[3]
	value, err := strconv.ParseFloat(whole+"."+zeroIfEmpty(frac), 64)
	if err != nil {
		return 0, false
	}
	switch unit {
	case "K":
		return value / 1000.0, true
	case "M":
		return value, true
	case "G":
		return value * 1000.0, true
	default:
		return 0, false
	}
}

func zeroIfEmpty(s string) string {
	if s == "" {
		return "0"
	}
	return s
}

// FrequencyAssignmentTable is the static US assignment-frequency ->
// bandwidth fallback used when emission-designator parsing fails, grounded
// on FreqAssignment.cpp's channelFrequency/channelBandwidth CSV table.
type FrequencyAssignmentTable struct {
	freqsMHz      []float64
	bandwidthMHz  map[float64]float64
	toleranceMHz  float64
}

// NewFrequencyAssignmentTable builds an empty table; LoadCSV populates it.
func NewFrequencyAssignmentTable() *FrequencyAssignmentTable {
	return &FrequencyAssignmentTable{bandwidthMHz: make(map[float64]float64), toleranceMHz: 0.01}
}

// LoadCSV reads a "channelFrequency,channelBandwidth" header-led CSV, per
// FreqAssignment.cpp's readFreqAssignment.
func (t *FrequencyAssignmentTable) LoadCSV(r io.Reader) error {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return aferr.WrapIngest(err, "reading frequency assignment table")
	}

	freqIdx, bwIdx := -1, -1
	for _, row := range records {
		if len(row) == 0 {
			continue
		}
		if strings.TrimSpace(row[0]) == "" || strings.HasPrefix(strings.TrimSpace(row[0]), "#") {
			continue
		}
		if freqIdx < 0 {
			for i, h := range row {
				switch strings.TrimSpace(h) {
				case "channelFrequency":
					freqIdx = i
				case "channelBandwidth":
					bwIdx = i
				}
			}
			if freqIdx >= 0 && bwIdx >= 0 {
				continue
			}
			return aferr.Ingest("frequency assignment table missing channelFrequency/channelBandwidth header")
		}

		freq, err1 := strconv.ParseFloat(strings.TrimSpace(row[freqIdx]), 64)
		bw, err2 := strconv.ParseFloat(strings.TrimSpace(row[bwIdx]), 64)
		if err1 != nil || err2 != nil {
			continue
		}
		t.bandwidthMHz[freq] = bw
		t.freqsMHz = append(t.freqsMHz, freq)
	}
	sort.Float64s(t.freqsMHz)
	return nil
}

// Lookup returns the fallback bandwidth for an assignment frequency,
// matching within the table's tolerance.
func (t *FrequencyAssignmentTable) Lookup(freqMHz float64) (float64, bool) {
	if bw, ok := t.bandwidthMHz[freqMHz]; ok {
		return bw, true
	}
	for _, f := range t.freqsMHz {
		if abs(f-freqMHz) <= t.toleranceMHz {
			return t.bandwidthMHz[f], true
		}
	}
	return 0, false
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// ResolveBandwidth implements §4.12's emission-designator-then-fallback
// resolution: try the free-text designator first, then the assignment
// table keyed by the declared center/assignment frequency.
func ResolveBandwidth(designator string, assignmentFreqMHz float64, table *FrequencyAssignmentTable) (float64, bool) {
	if bw, ok := ParseEmissionDesignator(designator); ok {
		return bw, true
	}
	if table != nil {
		return table.Lookup(assignmentFreqMHz)
	}
	return 0, false
}
