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
	"strconv"
	"strings"

	"github.com/afc-project/afc-engine/internal/aferr"
)

// ParseDMS assembles a signed decimal-degree value from the ULS/ISED
// degrees-minutes-seconds-direction quadruplet (direction one of
// N/S/E/W), matching UlsLocation's latitude/longitude accumulation.
func ParseDMS(degStr, minStr, secStr, dirStr string) (float64, error) {
	deg, err := strconv.ParseFloat(strings.TrimSpace(degStr), 64)
	if err != nil {
		return 0, aferr.WrapIngest(err, "invalid DMS degrees field")
	}
	min, err := strconv.ParseFloat(strings.TrimSpace(minStr), 64)
	if err != nil {
		return 0, aferr.WrapIngest(err, "invalid DMS minutes field")
	}
	sec, err := strconv.ParseFloat(strings.TrimSpace(secStr), 64)
	if err != nil {
		return 0, aferr.WrapIngest(err, "invalid DMS seconds field")
	}
	value := deg + min/60.0 + sec/3600.0

	switch strings.ToUpper(strings.TrimSpace(dirStr)) {
	case "S", "W":
		value = -value
	case "N", "E", "":
		// positive as-is
	default:
		return 0, aferr.Ingest("invalid DMS direction %q", dirStr)
	}
	return value, nil
}

// ValidLatLon reports whether a coordinate is within the physically valid
// range and not the ULS sentinel for "absent" (0,0).
func ValidLatLon(latDeg, lonDeg float64) bool {
	if latDeg < -90 || latDeg > 90 || lonDeg < -180 || lonDeg > 180 {
		return false
	}
	return !(latDeg == 0 && lonDeg == 0)
}
