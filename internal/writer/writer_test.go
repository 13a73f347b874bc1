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

package writer

import (
	"bytes"
	"compress/gzip"
	"encoding/csv"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteExcThrCSV_RoundTrips(t *testing.T) {
	var buf bytes.Buffer
	rows := []ExcThrRow{
		{Region: "US", GlobalOperatingClass: 133, ChannelCfi: 15, StartFreqMHz: 5945, StopFreqMHz: 6025, EIRPCeilingDBm: 21.5, ConstrainingFsLinkID: "LNK1"},
	}
	require.NoError(t, WriteExcThrCSV(&buf, rows))

	gz, err := gzip.NewReader(&buf)
	require.NoError(t, err)
	defer gz.Close()

	records, err := csv.NewReader(gz).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, excThrHeader, records[0])
	assert.Equal(t, "LNK1", records[1][6])
}

func TestWriteAnomalousCSV_RoundTrips(t *testing.T) {
	var buf bytes.Buffer
	rows := []AnomalousRow{{LinkID: "LNK2", Reason: "rx and tx coincide"}}
	require.NoError(t, WriteAnomalousCSV(&buf, rows))

	gz, err := gzip.NewReader(&buf)
	require.NoError(t, err)
	data, err := io.ReadAll(gz)
	require.NoError(t, err)
	assert.Contains(t, string(data), "rx and tx coincide")
}
