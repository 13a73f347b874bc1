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

// Command afc-engine runs one availableSpectrumInquiry analysis: it loads
// an AnalysisConfig, ingests an FS database, reads one RlanRequest as JSON
// from stdin, and writes the gzip-compressed result CSVs. Request/response
// HTTP framing and CLI ergonomics beyond flag parsing are external
// concerns per spec.md §1 and are not implemented here.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/afc-project/afc-engine/internal/alog"
	"github.com/afc-project/afc-engine/internal/analysis"
	"github.com/afc-project/afc-engine/internal/config"
	"github.com/afc-project/afc-engine/internal/metrics"
	"github.com/afc-project/afc-engine/internal/prng"
	"github.com/afc-project/afc-engine/internal/terrain"
	"github.com/afc-project/afc-engine/internal/uls"
	"github.com/afc-project/afc-engine/internal/uls/catalog"
	"github.com/afc-project/afc-engine/internal/writer"
	"github.com/afc-project/afc-engine/pkg/afctypes"
)

func main() {
	configPath := flag.String("config", "", "path to the AnalysisConfig JSON document")
	settingsPath := flag.String("settings", "", "path to the EngineSettings YAML document (optional)")
	serveMetrics := flag.Bool("metrics", false, "serve Prometheus metrics while running")
	flag.Parse()

	if err := run(*configPath, *settingsPath, *serveMetrics); err != nil {
		alog.Base().Error("afc-engine exiting", "err", err.Error())
		os.Exit(1)
	}
}

func run(configPath, settingsPath string, serveMetrics bool) error {
	if configPath == "" {
		return fmt.Errorf("afc-engine: -config is required")
	}

	cfg, err := loadAnalysisConfig(configPath)
	if err != nil {
		return err
	}

	settings := config.DefaultEngineSettings()
	if settingsPath != "" {
		settings, err = config.LoadEngineSettings(settingsPath)
		if err != nil {
			return err
		}
	}
	alog.SetLevel(logLevelFromString(settings.LogLevel))

	m := metrics.NewMetrics()
	if serveMetrics {
		server := metrics.NewServer(settings.MetricsListenAddr)
		go func() {
			if err := server.Serve(); err != nil {
				alog.Base().Error("metrics server stopped", "err", err.Error())
			}
		}()
	}

	fsLinks, anomalies, err := ingestULS(cfg, settings)
	if err != nil {
		return err
	}

	var req afctypes.RlanRequest
	if err := json.NewDecoder(os.Stdin).Decode(&req); err != nil {
		return fmt.Errorf("afc-engine: decoding request from stdin: %w", err)
	}

	// Raster/vector terrain sources are external collaborators per
	// spec.md §1; this entrypoint runs with none plugged in, so every
	// height query falls through to the global-fallback result class.
	resolver := &terrain.Resolver{}
	analysisCtx := analysis.NewContext(cfg, settings, resolver, catalog.NewAntennaCatalog(), fsLinks, nil, m)

	result, err := analysisCtx.Run(context.Background(), req)
	if err != nil {
		return err
	}

	if err := writeResults(settings.OutputDir, cfg.RegionStr, result, anomalies); err != nil {
		return err
	}

	alog.Base().Info("analysis finished", "correlationId", result.CorrelationID, "channels", len(result.Channels))
	return nil
}

func loadAnalysisConfig(path string) (*config.AnalysisConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("afc-engine: opening config: %w", err)
	}
	defer f.Close()
	return config.LoadAnalysisConfig(f)
}

func ingestULS(cfg *config.AnalysisConfig, settings *config.EngineSettings) ([]afctypes.FsLink, []uls.AnomalousRecord, error) {
	f, err := os.Open(cfg.ULSDatabase)
	if err != nil {
		return nil, nil, fmt.Errorf("afc-engine: opening ULS database: %w", err)
	}
	defer f.Close()

	table := uls.NewFrequencyAssignmentTable()
	deps := uls.Deps{
		Antennas:     catalog.NewAntennaCatalog(),
		Transmitters: catalog.NewTransmitterCatalog(),
		FreqTable:    table,
		Rng:          prng.NewSet(cfg.RandomSeed).UseFrequency,
		Config:       uls.Config{RemoveMobile: cfg.RemoveMobile},
		Log:          alog.Base(),
	}
	links, anomalies, stats, err := uls.Ingest(f, deps)
	if err != nil {
		return nil, nil, err
	}
	alog.Base().Info("uls ingest", "recordsRead", stats.RecordsRead, "linksAssembled", stats.LinksAssembled)
	return links, anomalies, nil
}

func writeResults(outDir, region string, result *analysis.Result, anomalies []uls.AnomalousRecord) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("afc-engine: creating output dir: %w", err)
	}

	excThrRows := make([]writer.ExcThrRow, 0, len(result.Channels))
	for _, ch := range result.Channels {
		excThrRows = append(excThrRows, writer.ExcThrRow{
			Region:               region,
			GlobalOperatingClass: ch.Channel.GlobalOperatingClass,
			ChannelCfi:           ch.Channel.ChannelCfi,
			StartFreqMHz:         ch.Channel.StartFreqMHz,
			StopFreqMHz:          ch.Channel.StopFreqMHz,
			EIRPCeilingDBm:       ch.EIRPCeilingDBm,
			ConstrainingFsLinkID: ch.ConstrainingFsLinkID,
		})
	}
	excThrFile, err := os.Create(filepath.Join(outDir, "exc_thr.csv.gz"))
	if err != nil {
		return fmt.Errorf("afc-engine: creating exc_thr.csv.gz: %w", err)
	}
	defer excThrFile.Close()
	if err := writer.WriteExcThrCSV(excThrFile, excThrRows); err != nil {
		return err
	}

	anomalousRows := make([]writer.AnomalousRow, 0, len(anomalies))
	for _, a := range anomalies {
		anomalousRows = append(anomalousRows, writer.AnomalousRow{LinkID: a.LinkID, Reason: a.Reason})
	}
	anomalousFile, err := os.Create(filepath.Join(outDir, "anomalous.csv.gz"))
	if err != nil {
		return fmt.Errorf("afc-engine: creating anomalous.csv.gz: %w", err)
	}
	defer anomalousFile.Close()
	return writer.WriteAnomalousCSV(anomalousFile, anomalousRows)
}

func logLevelFromString(s string) alog.Level {
	switch s {
	case "debug":
		return alog.DebugLevel
	case "warn":
		return alog.WarnLevel
	case "error":
		return alog.ErrorLevel
	default:
		return alog.InfoLevel
	}
}
