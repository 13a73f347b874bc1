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

// Package metrics exposes the engine's Prometheus counters and histograms:
// analysis duration, channels evaluated, anomalies recorded, and ingest
// record counts.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics bundles every counter/histogram/gauge the analysis orchestrator
// and the ULS ingester update.
type Metrics struct {
	AnalysisDuration     *prometheus.HistogramVec
	AnalysesTotal        *prometheus.CounterVec
	ChannelsEvaluated    prometheus.Counter
	ScanPointsEvaluated  prometheus.Counter
	AnomaliesRecorded    *prometheus.CounterVec
	IngestRecordsRead    prometheus.Counter
	IngestLinksAssembled prometheus.Counter
	EIRPCeilingDBm       prometheus.Histogram
}

// NewMetrics constructs and registers every collector against the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		AnalysisDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "afc_analysis_duration_seconds",
			Help:    "Duration of a full AFC availability analysis request",
			Buckets: prometheus.DefBuckets,
		}, []string{"region"}),
		AnalysesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "afc_analyses_total",
			Help: "The total number of AFC analysis requests processed",
		}, []string{"region", "status"}),
		ChannelsEvaluated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "afc_channels_evaluated_total",
			Help: "The total number of operating-class/channel combinations evaluated",
		}),
		ScanPointsEvaluated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "afc_scan_points_evaluated_total",
			Help: "The total number of uncertainty-region scan points evaluated",
		}),
		AnomaliesRecorded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "afc_anomalies_recorded_total",
			Help: "The total number of FS/passive-repeater records dropped as anomalous",
		}, []string{"reason"}),
		IngestRecordsRead: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "afc_ingest_records_read_total",
			Help: "The total number of raw FS database records read",
		}),
		IngestLinksAssembled: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "afc_ingest_links_assembled_total",
			Help: "The total number of FsLink records successfully assembled",
		}),
		EIRPCeilingDBm: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "afc_eirp_ceiling_dbm",
			Help:    "Distribution of computed per-channel EIRP ceilings",
			Buckets: []float64{-10, 0, 10, 20, 23, 30, 36},
		}),
	}
	m.register()
	return m
}

func (m *Metrics) register() {
	prometheus.MustRegister(m.AnalysisDuration)
	prometheus.MustRegister(m.AnalysesTotal)
	prometheus.MustRegister(m.ChannelsEvaluated)
	prometheus.MustRegister(m.ScanPointsEvaluated)
	prometheus.MustRegister(m.AnomaliesRecorded)
	prometheus.MustRegister(m.IngestRecordsRead)
	prometheus.MustRegister(m.IngestLinksAssembled)
	prometheus.MustRegister(m.EIRPCeilingDBm)
}

// RecordAnalysis records one completed analysis request's duration and
// terminal status ("ok", "timeout", "error").
func (m *Metrics) RecordAnalysis(region, status string, durationSeconds float64) {
	m.AnalysisDuration.WithLabelValues(region).Observe(durationSeconds)
	m.AnalysesTotal.WithLabelValues(region, status).Inc()
}

// RecordAnomaly increments the anomaly counter for the given §4.13 reason.
func (m *Metrics) RecordAnomaly(reason string) {
	m.AnomaliesRecorded.WithLabelValues(reason).Inc()
}

// RecordIngest folds one ingest run's stats into the ingest counters.
func (m *Metrics) RecordIngest(recordsRead, linksAssembled int) {
	m.IngestRecordsRead.Add(float64(recordsRead))
	m.IngestLinksAssembled.Add(float64(linksAssembled))
}
