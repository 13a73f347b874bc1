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
	"bufio"
	"io"
	"math/rand"
	"strconv"

	"github.com/afc-project/afc-engine/internal/aferr"
	"github.com/afc-project/afc-engine/internal/alog"
	"github.com/afc-project/afc-engine/internal/uls/catalog"
	"github.com/afc-project/afc-engine/pkg/afctypes"
)

// IngestStats counts what happened to every record processed, surfaced in
// logs/metrics, grounded on UlsFileReader.cpp's per-field warning counters.
type IngestStats struct {
	RecordsRead    int
	LinksAssembled int
	LinksAnomalous int
	AntennaMatchedUS   int
	AntennaUnmatched   int
	PassiveRepeaterWarnings int
}

// Deps bundles the ingester's collaborators: the antenna catalog, the
// emission-designator fallback table, and the setUseFrequency generator.
type Deps struct {
	Antennas     *catalog.AntennaCatalog
	Transmitters *catalog.TransmitterCatalog
	FreqTable    *FrequencyAssignmentTable
	Rng          *rand.Rand
	Config       Config
	Log          *alog.Logger
}

// Ingest reads a pipe-delimited FS database (one candidate FsLink per
// data line, region-tagged "US:PA"/"CA:PA") and returns the assembled,
// clean links plus the anomalous-record sink content and ingest stats.
func Ingest(r io.Reader, deps Deps) ([]afctypes.FsLink, []AnomalousRecord, IngestStats, error) {
	var stats IngestStats
	var links []afctypes.FsLink
	var anomalies []AnomalousRecord

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := scanner.Text()
		fields := SplitLine(line)
		if fields == nil {
			continue
		}
		region, prefix, ok := ParseRecordTag(field(fields, 0))
		if !ok || prefix != PrefixPath {
			continue
		}
		stats.RecordsRead++

		link, err := assembleLink(fields, afctypes.Region(region), deps, &stats)
		if err != nil {
			anomalies = append(anomalies, AnomalousRecord{LinkID: field(fields, 1), Reason: err.Error()})
			stats.LinksAnomalous++
			continue
		}

		if deps.Rng != nil {
			SetUseFrequency(link, deps.Rng)
		}

		if reason, ok := CheckAnomaly(link, deps.Config); !ok {
			anomalies = append(anomalies, AnomalousRecord{LinkID: link.ID, Reason: reason})
			stats.LinksAnomalous++
			continue
		}

		links = append(links, *link)
		stats.LinksAssembled++
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, stats, aferr.WrapIngest(err, "scanning FS database")
	}

	if deps.Log != nil {
		deps.Log.Info("uls ingest complete", "recordsRead", stats.RecordsRead,
			"linksAssembled", stats.LinksAssembled, "linksAnomalous", stats.LinksAnomalous)
	}
	return links, anomalies, stats, nil
}

// assembleLink builds one FsLink from a single data line. The original
// database spreads one link across HD/PA/AN/FR/LO/EM records joined by
// callsign and path/location number; this ingester instead expects one
// line per link carrying every field an FsLink needs directly (see
// DESIGN.md), trading the multi-table join for a schema a Go CSV-style
// reader can parse in one pass. Field layout:
//
//	[0]=tag [1]=id [2]=radioService [3]=licenseStatus [4]=mobile(0/1)
//	[5]=rxLatDeg [6]=rxLatMin [7]=rxLatSec [8]=rxLatDir
//	[9]=rxLonDeg [10]=rxLonMin [11]=rxLonSec [12]=rxLonDir
//	[13]=rxAGLHeightM [14]=rxAntennaModel [15]=rxFeederLossDB [16]=rxNoiseLevelDBW
//	[17]=txLatDeg..[20]=txLatDir [21]=txLonDeg..[24]=txLonDir
//	[25]=txAGLHeightM [26]=txAntennaModel [27]=txEIRPDBm
//	[28]=emissionDesignator [29]=assignmentFreqMHz [30]=startUseFreqMHz [31]=stopUseFreqMHz
func assembleLink(fields []string, region afctypes.Region, deps Deps, stats *IngestStats) (*afctypes.FsLink, error) {
	rxLat, err := ParseDMS(field(fields, 5), field(fields, 6), field(fields, 7), field(fields, 8))
	if err != nil {
		return nil, aferr.WrapIngest(err, "rx latitude")
	}
	rxLon, err := ParseDMS(field(fields, 9), field(fields, 10), field(fields, 11), field(fields, 12))
	if err != nil {
		return nil, aferr.WrapIngest(err, "rx longitude")
	}
	txLat, err := ParseDMS(field(fields, 17), field(fields, 18), field(fields, 19), field(fields, 20))
	if err != nil {
		return nil, aferr.WrapIngest(err, "tx latitude")
	}
	txLon, err := ParseDMS(field(fields, 21), field(fields, 22), field(fields, 23), field(fields, 24))
	if err != nil {
		return nil, aferr.WrapIngest(err, "tx longitude")
	}

	rxHeight := parseFloatOr(field(fields, 13), 0)
	txHeight := parseFloatOr(field(fields, 25), 0)

	rxAntennaEntry, rxMatched := matchAntenna(region, deps.Antennas, field(fields, 14))
	txAntennaEntry, _ := matchAntenna(region, deps.Antennas, field(fields, 26))
	if rxMatched {
		stats.AntennaMatchedUS++
	} else {
		stats.AntennaUnmatched++
	}

	assignmentFreq := parseFloatOr(field(fields, 29), 0)
	bandwidth, bwOK := ResolveBandwidth(field(fields, 28), assignmentFreq, deps.FreqTable)
	if !bwOK {
		return nil, aferr.Ingest("unparseable emission designator %q and no fallback for %.1f MHz", field(fields, 28), assignmentFreq)
	}

	startFreq := parseFloatOr(field(fields, 30), assignmentFreq-bandwidth/2)
	stopFreq := parseFloatOr(field(fields, 31), assignmentFreq+bandwidth/2)

	link := &afctypes.FsLink{
		ID:              field(fields, 1),
		Region:          region,
		RadioService:    field(fields, 2),
		LicenseStatus:   afctypes.LicenseStatus(field(fields, 3)),
		Mobile:          field(fields, 4) == "1",
		StartUseFreqMHz: startFreq,
		StopUseFreqMHz:  stopFreq,
		BandwidthMHz:    bandwidth,
		RxLocation: afctypes.Location{
			LatitudeDeg: rxLat, LongitudeDeg: rxLon, HeightAboveTerrain: rxHeight,
		},
		RxAntenna: afctypes.Antenna{
			MaxGainDBi: rxAntennaEntry.MidbandGainDB,
			DiameterM:  rxAntennaEntry.DiameterM,
			Category:   rxAntennaEntry.Category,
			ModelMatch: field(fields, 14),
		},
		RxAntennaFeederLossDB: parseFloatOr(field(fields, 15), 0),
		RxNoiseLevelDBW:       parseFloatOr(field(fields, 16), 0),
		TxLocation: afctypes.Location{
			LatitudeDeg: txLat, LongitudeDeg: txLon, HeightAboveTerrain: txHeight,
		},
		TxAntenna: afctypes.Antenna{
			MaxGainDBi: txAntennaEntry.MidbandGainDB,
			DiameterM:  txAntennaEntry.DiameterM,
			Category:   txAntennaEntry.Category,
			ModelMatch: field(fields, 26),
		},
		TxEIRPDBm:             parseFloatOr(field(fields, 27), 0),
		AntennaModelUnmatched: !rxMatched,
	}
	return link, nil
}

func matchAntenna(region afctypes.Region, catalogRef *catalog.AntennaCatalog, model string) (afctypes.AntennaCatalogEntry, bool) {
	if catalogRef == nil || model == "" {
		return afctypes.AntennaCatalogEntry{Category: afctypes.CategoryUnknown}, false
	}
	if region == afctypes.RegionCA {
		return catalogRef.MatchCA(model)
	}
	return catalogRef.MatchUS(model)
}

func parseFloatOr(s string, fallback float64) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fallback
	}
	return v
}
