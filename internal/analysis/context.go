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

// Package analysis wires every other package into the engine's top-level
// operation: turning one RlanRequest plus an ingested FsLink population
// into a per-channel EIRP availability result, following the simulator's
// dispatcher/context split (a long-lived context holding collaborators,
// a per-request run carrying only what that request needs).
package analysis

import (
	"math"

	"github.com/afc-project/afc-engine/internal/alog"
	"github.com/afc-project/afc-engine/internal/config"
	"github.com/afc-project/afc-engine/internal/metrics"
	"github.com/afc-project/afc-engine/internal/prng"
	"github.com/afc-project/afc-engine/internal/terrain"
	"github.com/afc-project/afc-engine/internal/uls/catalog"
	"github.com/afc-project/afc-engine/pkg/afctypes"
	"github.com/puzpuzpuz/xsync/v4"
	"golang.org/x/sync/singleflight"
)

const defaultProfilePoints = 64

// Context bundles the engine's long-lived collaborators: everything that
// outlives any single RlanRequest. One Context is built at startup and
// reused across every analysis Run.
type Context struct {
	Config     *config.AnalysisConfig
	Settings   *config.EngineSettings
	Resolver   *terrain.Resolver
	Antennas   *catalog.AntennaCatalog
	FsLinks    []afctypes.FsLink
	RASZones   []afctypes.RASZone
	Metrics    *metrics.Metrics
	Log        *alog.Logger
	Prng       *prng.Set
	ProfilePts int

	profileCache *xsync.Map[string, cachedProfile]
	profileGroup singleflight.Group
}

type cachedProfile struct {
	profile afctypes.ElevationProfile
	los     bool
}

// NewContext builds a Context ready for Run, deriving its reproducible RNG
// set from cfg.RandomSeed and defaulting ProfilePts when unset.
func NewContext(cfg *config.AnalysisConfig, settings *config.EngineSettings, resolver *terrain.Resolver, antennas *catalog.AntennaCatalog, fsLinks []afctypes.FsLink, rasZones []afctypes.RASZone, m *metrics.Metrics) *Context {
	points := defaultProfilePoints
	if cfg.ITMParameters.MaxPoints > 1 {
		points = cfg.ITMParameters.MaxPoints
	}
	return &Context{
		Config:       cfg,
		Settings:     settings,
		Resolver:     resolver,
		Antennas:     antennas,
		FsLinks:      fsLinks,
		RASZones:     rasZones,
		Metrics:      m,
		Log:          alog.Base(),
		Prng:         prng.NewSet(cfg.RandomSeed),
		ProfilePts:   points,
		profileCache: xsync.NewMap[string, cachedProfile](),
	}
}

// rasExcludes reports whether a (lat,lon,height,freq) point falls inside
// any configured RAS exclusion zone, per spec.md §3's RASZone definition:
// a frequency-windowed rectangle/circle region, optionally bounded above a
// given AGL antenna height.
func (c *Context) rasExcludes(latDeg, lonDeg, aglHeightM, freqMHz float64) bool {
	for _, zone := range c.RASZones {
		if freqMHz < zone.StartFreqMHz || freqMHz > zone.StopFreqMHz {
			continue
		}
		if zone.HasHeightLimit && aglHeightM > zone.MaxAGLHeightM {
			continue
		}
		for _, rect := range zone.Rectangles {
			if latDeg >= rect.MinLatDeg && latDeg <= rect.MaxLatDeg && lonDeg >= rect.MinLonDeg && lonDeg <= rect.MaxLonDeg {
				return true
			}
		}
		for _, circ := range zone.Circles {
			if haversineApproxKM(latDeg, lonDeg, circ.CenterLatDeg, circ.CenterLonDeg) <= circ.RadiusKM {
				return true
			}
		}
	}
	return false
}

func haversineApproxKM(lat1, lon1, lat2, lon2 float64) float64 {
	const earthRadiusKM = 6371.0
	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*math.Pi/180)*math.Cos(lat2*math.Pi/180)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusKM * math.Asin(math.Min(1, math.Sqrt(a)))
}
