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

// Package config defines the engine's two configuration surfaces: the
// per-request AnalysisConfig (§6, JSON, validated with struct tags) and the
// operator-facing EngineSettings (YAML, following the teacher's
// Config/DefaultConfig convention) covering paths, worker-pool sizing, and
// log level.
package config

import (
	"encoding/json"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// AntennaPatternConfig names an antenna-gain family. It is decoded and
// validated only; ingest and analysis do not read it, and every antenna
// uses the family its catalog entry assigns.
type AntennaPatternConfig struct {
	Kind string `json:"kind" validate:"required,oneof=F.1245 F.699 F.1336 R2-AIP-07"`
}

type LossConstant struct {
	Kind  string  `json:"kind" validate:"required"`
	Value float64 `json:"value"`
}

type BodyLossConfig struct {
	ValueIndoorDB  float64 `json:"valueIndoor"`
	ValueOutdoorDB float64 `json:"valueOutdoor"`
}

type BuildingPenetrationConfig struct {
	Kind  string  `json:"kind" validate:"required,oneof='Fixed Value' 'ITU-R P.2109' 'Ray Trace'"`
	Value float64 `json:"value"`
}

type FeederLossConfig struct {
	UNII5 float64 `json:"UNII5"`
	UNII7 float64 `json:"UNII7"`
	Other float64 `json:"other"`
}

type ReceiverNoiseConfig struct {
	UNII5 float64 `json:"UNII5"`
	UNII7 float64 `json:"UNII7"`
	Other float64 `json:"other"`
}

type PropagationModelConfig struct {
	Kind            string  `json:"kind" validate:"required,oneof='FCC 6GHz Report & Order' 'ITM with no building data' FSPL"`
	Win2Confidence  float64 `json:"win2Confidence"`
	ITMConfidence   float64 `json:"itmConfidence"`
	P2108Confidence float64 `json:"p2108Confidence"`
	BuildingSource  string  `json:"buildingSource" validate:"omitempty,oneof=None LiDAR 2D 3D"`
	TerrainSource   string  `json:"terrainSource" validate:"omitempty,oneof=3DEP SRTM LiDAR Multiband"`
}

type APUncertaintyConfig struct {
	HorizontalM float64 `json:"horizontal"`
	HeightM     float64 `json:"height"`
}

type ITMParametersConfig struct {
	Polarization    string  `json:"polarization" validate:"required,oneof=Vertical Horizontal"`
	Ground          string  `json:"ground" validate:"required,oneof=Good Average Poor"`
	DielectricConst float64 `json:"dielectricConst"`
	Conductivity    float64 `json:"conductivity"`
	MinSpacingM     float64 `json:"minSpacing"`
	MaxPoints       int     `json:"maxPoints" validate:"gte=2"`
}

type FreqBand struct {
	Name         string  `json:"name" validate:"required"`
	StartFreqMHz float64 `json:"startFreqMHz"`
	StopFreqMHz  float64 `json:"stopFreqMHz" validate:"gtfield=StartFreqMHz"`
}

// AnalysisConfig is the per-request AFC config object (§6).
type AnalysisConfig struct {
	FreqBands                []FreqBand                `json:"freqBands" validate:"required,min=1,dive"`
	AntennaPattern           AntennaPatternConfig       `json:"antennaPattern" validate:"required"`
	PolarizationMismatchLoss LossConstant               `json:"polarizationMismatchLoss"`
	BodyLoss                 BodyLossConfig             `json:"bodyLoss"`
	BuildingPenetrationLoss  BuildingPenetrationConfig  `json:"buildingPenetrationLoss" validate:"required"`
	ReceiverFeederLoss       FeederLossConfig           `json:"receiverFeederLoss"`
	FsReceiverNoise          ReceiverNoiseConfig        `json:"fsReceiverNoise"`
	ThresholdDB              float64                    `json:"threshold"`
	MaxLinkDistanceKM        float64                    `json:"maxLinkDistance" validate:"gt=0"`
	MaxEIRPDBm               float64                    `json:"maxEIRP"`
	MinEIRPDBm               float64                    `json:"minEIRP" validate:"ltefield=MaxEIRPDBm"`
	PropagationModel         PropagationModelConfig     `json:"propagationModel" validate:"required"`
	ULSDatabase              string                     `json:"ulsDatabase" validate:"required"`
	RegionStr                string                     `json:"regionStr" validate:"required"`
	RASDatabase              string                     `json:"rasDatabase"`
	APUncertainty            APUncertaintyConfig        `json:"APUncertainty"`
	ITMParameters            ITMParametersConfig        `json:"ITMParameters" validate:"required"`
	ClutterAtFS              bool                       `json:"clutterAtFS"`
	MinBinMHz                float64                    `json:"minBinMHz" validate:"gt=0"`
	RandomSeed               int64                      `json:"randomSeed"`
	RemoveMobile             bool                       `json:"removeMobile"`
	AnalysisTimeoutSec       int                        `json:"analysisTimeoutSec" validate:"gt=0"`
}

var validate = validator.New()

// LoadAnalysisConfig decodes and validates an AFC request-time config.
func LoadAnalysisConfig(r io.Reader) (*AnalysisConfig, error) {
	var cfg AnalysisConfig
	if err := json.NewDecoder(r).Decode(&cfg); err != nil {
		return nil, errors.Wrap(err, "decoding analysis config")
	}
	if err := validate.Struct(&cfg); err != nil {
		return nil, errors.Wrap(err, "validating analysis config")
	}
	return &cfg, nil
}

// EngineSettings is the operator-level YAML configuration: paths, worker
// pool sizing, and log level, independent of any single AFC request.
type EngineSettings struct {
	WorkerPoolSize     int    `yaml:"workerPoolSize"`
	TerrainTileDir     string `yaml:"terrainTileDir"`
	CatalogDir         string `yaml:"catalogDir"`
	OutputDir          string `yaml:"outputDir"`
	LogLevel           string `yaml:"logLevel"`
	MetricsListenAddr  string `yaml:"metricsListenAddr"`
}

// DefaultEngineSettings mirrors the teacher's DefaultConfig pattern: sane
// defaults an operator can override piecemeal via YAML.
func DefaultEngineSettings() *EngineSettings {
	return &EngineSettings{
		WorkerPoolSize:    0, // 0 means no limit: one goroutine per channel
		TerrainTileDir:    "./data/terrain",
		CatalogDir:        "./data/catalog",
		OutputDir:         "./out",
		LogLevel:          "info",
		MetricsListenAddr: ":9090",
	}
}

// LoadEngineSettings reads a YAML settings file, applying DefaultEngineSettings
// for any field the file doesn't set.
func LoadEngineSettings(path string) (*EngineSettings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading engine settings")
	}
	settings := DefaultEngineSettings()
	if err := yaml.Unmarshal(data, settings); err != nil {
		return nil, errors.Wrap(err, "parsing engine settings")
	}
	return settings, nil
}
