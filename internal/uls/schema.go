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

// Package uls implements the FS link database ingester (§4.12, §4.13,
// §4.14, §4.15): parsing the pipe-delimited US ULS and Canadian ISED
// station-data exports, joining each record's path/antenna/frequency rows
// into assembled FsLink values, matching antenna/transmitter model strings
// to catalog entries, resolving emission-designator bandwidth, and
// filtering anomalous records to a side sink instead of aborting ingest.
package uls

import "strings"

// RecordPrefix is the "US:XX"/"CA:XX" tag leading every database line.
type RecordPrefix string

const (
	PrefixHeader      RecordPrefix = "HD"
	PrefixPath        RecordPrefix = "PA"
	PrefixAntenna     RecordPrefix = "AN"
	PrefixFrequency   RecordPrefix = "FR"
	PrefixLocation    RecordPrefix = "LO"
	PrefixEmission    RecordPrefix = "EM"
	PrefixEntity      RecordPrefix = "EN"
	PrefixMarketFreq  RecordPrefix = "MF"
	PrefixControlPt   RecordPrefix = "CP"
	PrefixSegment     RecordPrefix = "SG"
	PrefixSegDetail   RecordPrefix = "SD"
	PrefixPassivePt   RecordPrefix = "PP"
	PrefixPassiveRptr RecordPrefix = "PR"
	PrefixAppl        RecordPrefix = "AP"
	PrefixTxAntenna   RecordPrefix = "TA"
)

// RawRecord is one parsed database line: the region+prefix tag plus the
// pipe-split field list (field 0 is the "US:XX"/"CA:XX" tag itself).
type RawRecord struct {
	Region RecordPrefix // "US" or "CA", parsed from the tag
	Prefix RecordPrefix
	Fields []string
}

// SplitLine mirrors UlsFileReader.cpp's tokenizer: split on '|', and treat
// blank lines or lines whose first non-space character is '#' as ignorable
// rather than data.
func SplitLine(line string) []string {
	trimmed := strings.TrimLeft(line, " ")
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return nil
	}
	return strings.Split(line, "|")
}

// ParseRecordTag splits a leading "US:PA" / "CA:PP" tag into its region and
// prefix parts; ok is false for anything that doesn't match that shape.
func ParseRecordTag(tag string) (region, prefix RecordPrefix, ok bool) {
	parts := strings.SplitN(tag, ":", 2)
	if len(parts) != 2 {
		return "", "", false
	}
	return RecordPrefix(parts[0]), RecordPrefix(parts[1]), true
}

func field(fields []string, idx int) string {
	if idx < 0 || idx >= len(fields) {
		return ""
	}
	return strings.TrimSpace(fields[idx])
}
