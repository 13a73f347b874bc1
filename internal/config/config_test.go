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

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validConfigJSON = `{
	"freqBands": [{"name": "UNII-5", "startFreqMHz": 5925, "stopFreqMHz": 6425}],
	"antennaPattern": {"kind": "F.1245"},
	"buildingPenetrationLoss": {"kind": "Fixed Value", "value": 20},
	"maxLinkDistance": 200,
	"minEIRP": 0,
	"maxEIRP": 36,
	"propagationModel": {"kind": "FCC 6GHz Report & Order"},
	"ulsDatabase": "./uls.csv",
	"regionStr": "US",
	"ITMParameters": {"polarization": "Vertical", "ground": "Average", "maxPoints": 2},
	"minBinMHz": 1,
	"analysisTimeoutSec": 60
}`

func TestLoadAnalysisConfig_ValidDocumentPasses(t *testing.T) {
	cfg, err := LoadAnalysisConfig(strings.NewReader(validConfigJSON))
	require.NoError(t, err)
	assert.Equal(t, "US", cfg.RegionStr)
	assert.Len(t, cfg.FreqBands, 1)
	assert.Equal(t, "F.1245", cfg.AntennaPattern.Kind)
}

func TestLoadAnalysisConfig_MissingRequiredFieldFails(t *testing.T) {
	_, err := LoadAnalysisConfig(strings.NewReader(`{"freqBands": [{"name": "x", "startFreqMHz": 1, "stopFreqMHz": 2}]}`))
	assert.Error(t, err)
}

func TestLoadAnalysisConfig_MinEIRPAboveMaxFails(t *testing.T) {
	bad := strings.Replace(validConfigJSON, `"minEIRP": 0`, `"minEIRP": 100`, 1)
	_, err := LoadAnalysisConfig(strings.NewReader(bad))
	assert.Error(t, err)
}

func TestDefaultEngineSettings_HasUsableDefaults(t *testing.T) {
	settings := DefaultEngineSettings()
	assert.Equal(t, "info", settings.LogLevel)
	assert.NotEmpty(t, settings.OutputDir)
}

func TestLoadEngineSettings_OverridesOnlyGivenFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logLevel: debug\n"), 0o644))

	settings, err := LoadEngineSettings(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", settings.LogLevel)
	assert.Equal(t, DefaultEngineSettings().OutputDir, settings.OutputDir)
}
