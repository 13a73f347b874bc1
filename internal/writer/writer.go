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

// Package writer produces the engine's two gzip-compressed CSV result
// sinks: exc_thr.csv (per-channel EIRP ceilings) and anomalous.csv
// (dropped FS/passive-repeater records with the predicate that dropped
// them).
package writer

import (
	"compress/gzip"
	"encoding/csv"
	"io"
	"strconv"

	"github.com/pkg/errors"
)

func itoa(v int) string { return strconv.Itoa(v) }

func ftoa(v float64) string { return strconv.FormatFloat(v, 'f', 4, 64) }

// ExcThrRow is one row of the exceeds-threshold/EIRP-ceiling result sink:
// one row per (region, global operating class, channel).
type ExcThrRow struct {
	Region              string
	GlobalOperatingClass int
	ChannelCfi          int
	StartFreqMHz        float64
	StopFreqMHz         float64
	EIRPCeilingDBm      float64
	ConstrainingFsLinkID string
}

var excThrHeader = []string{
	"region", "globalOperatingClass", "channelCfi",
	"startFreqMHz", "stopFreqMHz", "eirpCeilingDBm", "constrainingFsLinkId",
}

// WriteExcThrCSV gzip-compresses and writes the EIRP-ceiling result set.
func WriteExcThrCSV(w io.Writer, rows []ExcThrRow) error {
	gz := gzip.NewWriter(w)
	defer gz.Close()

	cw := csv.NewWriter(gz)
	if err := cw.Write(excThrHeader); err != nil {
		return errors.Wrap(err, "writing exc_thr.csv header")
	}
	for _, row := range rows {
		record := []string{
			row.Region,
			itoa(row.GlobalOperatingClass),
			itoa(row.ChannelCfi),
			ftoa(row.StartFreqMHz),
			ftoa(row.StopFreqMHz),
			ftoa(row.EIRPCeilingDBm),
			row.ConstrainingFsLinkID,
		}
		if err := cw.Write(record); err != nil {
			return errors.Wrap(err, "writing exc_thr.csv row")
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return errors.Wrap(err, "flushing exc_thr.csv")
	}
	return gz.Close()
}

// AnomalousRow is one row of the anomalous-record sink.
type AnomalousRow struct {
	LinkID string
	Reason string
}

var anomalousHeader = []string{"linkId", "reason"}

// WriteAnomalousCSV gzip-compresses and writes the dropped-record sink.
func WriteAnomalousCSV(w io.Writer, rows []AnomalousRow) error {
	gz := gzip.NewWriter(w)
	defer gz.Close()

	cw := csv.NewWriter(gz)
	if err := cw.Write(anomalousHeader); err != nil {
		return errors.Wrap(err, "writing anomalous.csv header")
	}
	for _, row := range rows {
		if err := cw.Write([]string{row.LinkID, row.Reason}); err != nil {
			return errors.Wrap(err, "writing anomalous.csv row")
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return errors.Wrap(err, "flushing anomalous.csv")
	}
	return gz.Close()
}
