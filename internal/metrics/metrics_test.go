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

package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newUnregisteredMetrics builds a Metrics against a private registry so
// repeated test runs don't collide on prometheus's default registry.
func newUnregisteredMetrics(t *testing.T) *Metrics {
	t.Helper()
	reg := prometheus.NewRegistry()
	m := &Metrics{
		AnalysisDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name: "afc_analysis_duration_seconds", Buckets: prometheus.DefBuckets,
		}, []string{"region"}),
		AnalysesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "afc_analyses_total",
		}, []string{"region", "status"}),
		AnomaliesRecorded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "afc_anomalies_recorded_total",
		}, []string{"reason"}),
		IngestRecordsRead: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "afc_ingest_records_read_total",
		}),
		IngestLinksAssembled: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "afc_ingest_links_assembled_total",
		}),
	}
	require.NoError(t, reg.Register(m.AnalysesTotal))
	require.NoError(t, reg.Register(m.AnomaliesRecorded))
	require.NoError(t, reg.Register(m.IngestRecordsRead))
	require.NoError(t, reg.Register(m.IngestLinksAssembled))
	return m
}

func TestRecordAnalysis_IncrementsCounterWithLabels(t *testing.T) {
	m := newUnregisteredMetrics(t)
	m.RecordAnalysis("US", "ok", 1.5)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.AnalysesTotal.WithLabelValues("US", "ok")))
}

func TestRecordAnomaly_IncrementsReasonCounter(t *testing.T) {
	m := newUnregisteredMetrics(t)
	m.RecordAnomaly("coincident endpoints")
	m.RecordAnomaly("coincident endpoints")
	assert.Equal(t, 2.0, testutil.ToFloat64(m.AnomaliesRecorded.WithLabelValues("coincident endpoints")))
}

func TestRecordIngest_AddsToBothCounters(t *testing.T) {
	m := newUnregisteredMetrics(t)
	m.RecordIngest(100, 90)
	m.RecordIngest(50, 45)
	assert.Equal(t, 150.0, testutil.ToFloat64(m.IngestRecordsRead))
	assert.Equal(t, 135.0, testutil.ToFloat64(m.IngestLinksAssembled))
}
