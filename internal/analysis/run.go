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

package analysis

import (
	"context"
	"fmt"
	"time"

	"github.com/afc-project/afc-engine/internal/aferr"
	"github.com/afc-project/afc-engine/internal/aggregator"
	"github.com/afc-project/afc-engine/internal/alog"
	"github.com/afc-project/afc-engine/internal/channelplan"
	"github.com/afc-project/afc-engine/internal/geo"
	"github.com/afc-project/afc-engine/internal/itm"
	"github.com/afc-project/afc-engine/internal/propagation"
	"github.com/afc-project/afc-engine/internal/rlan"
	"github.com/afc-project/afc-engine/pkg/afctypes"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// ChannelResult is one channel's availability verdict: its EIRP ceiling
// and whether that ceiling clears AnalysisConfig.MinEIRPDBm.
type ChannelResult struct {
	Channel              afctypes.Channel
	EIRPCeilingDBm       float64
	Available            bool
	ConstrainingFsLinkID string
}

// Result is the full outcome of one Run: a correlation ID plus the
// per-channel verdicts.
type Result struct {
	CorrelationID string
	Channels      []ChannelResult
}

// Run executes one RlanRequest to completion (or until req's deadline /
// ctx cancellation fires), following §5's concurrency model: one
// errgroup-driven goroutine per channel, cancellation checked between
// channels, an at-most-one-build elevation-profile cache shared across the
// whole request.
func (c *Context) Run(ctx context.Context, req afctypes.RlanRequest) (*Result, error) {
	correlationID := uuid.NewString()
	log := alog.For(correlationID)

	timeoutSec := c.Config.AnalysisTimeoutSec
	if timeoutSec <= 0 {
		timeoutSec = 60
	}
	runCtx, cancel := context.WithTimeout(ctx, time.Duration(timeoutSec)*time.Second)
	defer cancel()

	start := time.Now()
	channels, err := c.expandChannels(req)
	if err != nil {
		c.recordStatus(req, "error", start)
		return nil, err
	}

	scanPoints := rlan.EnumerateScanPoints(req.Region, 0)
	if len(scanPoints) == 0 {
		c.recordStatus(req, "error", start)
		return nil, aferr.MissingData("uncertainty region produced zero scan points")
	}
	if c.Metrics != nil {
		c.Metrics.ScanPointsEvaluated.Add(float64(len(scanPoints)))
	}

	results := make([]ChannelResult, len(channels))
	g, gctx := errgroup.WithContext(runCtx)
	if c.Settings != nil && c.Settings.WorkerPoolSize > 0 {
		g.SetLimit(c.Settings.WorkerPoolSize)
	}

	for i, ch := range channels {
		i, ch := i, ch
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return aferr.Cancelled("analysis %s cancelled before channel %d/%d", correlationID, ch.ChannelCfi, ch.GlobalOperatingClass)
			default:
			}
			result, err := c.evaluateChannel(gctx, req, ch, scanPoints)
			if err != nil {
				return err
			}
			results[i] = result
			if c.Metrics != nil {
				c.Metrics.ChannelsEvaluated.Inc()
				c.Metrics.EIRPCeilingDBm.Observe(result.EIRPCeilingDBm)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		status := "error"
		if aferr.KindOf(err) == aferr.KindTimeout || aferr.KindOf(err) == aferr.KindCancelled {
			status = "timeout"
		}
		c.recordStatus(req, status, start)
		log.Error("analysis aborted", "err", err.Error())
		return nil, err
	}

	c.recordStatus(req, "ok", start)
	log.Info("analysis complete", "channels", len(results))
	return &Result{CorrelationID: correlationID, Channels: results}, nil
}

func (c *Context) recordStatus(req afctypes.RlanRequest, status string, start time.Time) {
	if c.Metrics == nil {
		return
	}
	region := "unknown"
	if len(c.FsLinks) > 0 {
		region = string(c.FsLinks[0].Region)
	}
	c.Metrics.RecordAnalysis(region, status, time.Since(start).Seconds())
}

func (c *Context) expandChannels(req afctypes.RlanRequest) ([]afctypes.Channel, error) {
	var channels []afctypes.Channel
	for _, ic := range req.InquiredChannels {
		expanded, err := channelplan.ExpandChannel(ic)
		if err != nil {
			return nil, err
		}
		channels = append(channels, expanded...)
	}
	if len(channels) == 0 {
		return nil, aferr.InvalidInput("request named no inquired channels")
	}
	return channels, nil
}

// evaluateChannel runs §4.10's full reduction for one channel: for every
// FS link within MaxLinkDistanceKM of any scan point, compose the
// interference path for every scan point and reduce to one ceiling per
// link, then reduce across links to the channel's final EIRP.
func (c *Context) evaluateChannel(ctx context.Context, req afctypes.RlanRequest, ch afctypes.Channel, scanPoints []afctypes.ScanPoint) (ChannelResult, error) {
	params := c.aggregatorParams()
	propParams := c.propagationParams()

	var perLinkCeiling []float64
	var constrainingID string
	var constrainingContribution aggregator.Contribution
	bestCeiling := aggregator.ReduceScanPoints(nil) // +Inf sentinel

	for li := range c.FsLinks {
		select {
		case <-ctx.Done():
			return ChannelResult{}, aferr.Cancelled("channel %d cancelled mid-reduction", ch.ChannelCfi)
		default:
		}

		link := &c.FsLinks[li]
		rho := aggregator.SpectralOverlapFraction(ch, link)
		if rho <= 0 {
			continue
		}

		var contributions []aggregator.Contribution
		for _, sp := range scanPoints {
			if c.rasExcludes(sp.LatitudeDeg, sp.LongitudeDeg, sp.AGLHeightM, ch.CenterFreqMHz()) {
				continue
			}
			if geo.HaversineKM(sp.LatitudeDeg, sp.LongitudeDeg, link.RxLocation.LatitudeDeg, link.RxLocation.LongitudeDeg) > params.MaxLinkDistanceKM {
				continue
			}

			contribution, err := c.evaluateTriple(sp, link, ch, rho, req.IndoorDeployment, propParams, params)
			if err != nil {
				continue // isolate this triple (§7: Compute-kind errors don't abort the request)
			}
			contributions = append(contributions, contribution)
		}
		if len(contributions) == 0 {
			continue
		}

		eirpPerScanPoint := make([]float64, len(contributions))
		worst := 0
		for i, contribution := range contributions {
			eirpPerScanPoint[i] = contribution.EIRPMaxDBm
			if contribution.EIRPMaxDBm < contributions[worst].EIRPMaxDBm {
				worst = i
			}
		}
		ceiling := aggregator.ReduceScanPoints(eirpPerScanPoint)
		perLinkCeiling = append(perLinkCeiling, ceiling)
		if ceiling < bestCeiling {
			bestCeiling = ceiling
			constrainingID = link.ID
			constrainingContribution = contributions[worst]
		}
	}

	eirp, ok := aggregator.ReduceFsLinks(perLinkCeiling, params)
	if constrainingID != "" {
		c.Log.Debug("channel EIRP constrained",
			"channelCfi", ch.ChannelCfi,
			"fsLink", constrainingID,
			"pathLossDB", constrainingContribution.PathLossDB,
			"rxGainDBi", constrainingContribution.RxGainDBi,
			"rho", constrainingContribution.Rho,
			"eirpMaxDBm", constrainingContribution.EIRPMaxDBm)
	}
	return ChannelResult{Channel: ch, EIRPCeilingDBm: eirp, Available: ok, ConstrainingFsLinkID: constrainingID}, nil
}

func (c *Context) evaluateTriple(sp afctypes.ScanPoint, link *afctypes.FsLink, ch afctypes.Channel, rho float64, indoor afctypes.IndoorDeployment, propParams propagation.Params, params aggregator.Params) (aggregator.Contribution, error) {
	scanLocation := afctypes.Location{LatitudeDeg: sp.LatitudeDeg, LongitudeDeg: sp.LongitudeDeg, HeightAboveTerrain: sp.AGLHeightM}
	chain := c.buildInterferenceChain(scanLocation, link)

	pathLossDB, rxGainDBi, err := aggregator.ComposeChain(chain, ch.CenterFreqMHz(), indoor, c.profileFunc, c.morphologyFunc, propParams)
	if err != nil {
		return aggregator.Contribution{}, err
	}
	eirpMax := aggregator.EIRPMax(rho, ch, link, pathLossDB, rxGainDBi, params)
	return aggregator.Contribution{EIRPMaxDBm: eirpMax, PathLossDB: pathLossDB, RxGainDBi: rxGainDBi, Rho: rho}, nil
}

// buildInterferenceChain walks the link's real-world geometry (Tx -> PR1 ->
// ... -> PRn -> Rx) to fix each repeater/antenna's boresight bearing (the
// direction it physically points, independent of any interferer), then
// substitutes the RLAN scan point for Tx as the chain's origin: the
// repeaters' orientation is a property of the licensed link, not of who is
// interfering with it.
func (c *Context) buildInterferenceChain(origin afctypes.Location, link *afctypes.FsLink) []aggregator.ChainNode {
	locs := make([]afctypes.Location, 0, len(link.PassiveRepeaters)+2)
	locs = append(locs, link.TxLocation)
	for _, pr := range link.PassiveRepeaters {
		locs = append(locs, pr.Location)
	}
	locs = append(locs, link.RxLocation)

	nodes := make([]aggregator.ChainNode, len(locs))
	nodes[0] = aggregator.ChainNode{Location: origin}
	for i := 1; i < len(locs); i++ {
		bearing := geo.InitialBearingDeg(locs[i].LatitudeDeg, locs[i].LongitudeDeg, locs[i-1].LatitudeDeg, locs[i-1].LongitudeDeg)
		node := aggregator.ChainNode{Location: locs[i], BoresightBearingDeg: bearing}
		if i == len(locs)-1 {
			node.RxAntenna = link.RxAntenna
		} else {
			node.IsRepeater = true
			node.Repeater = link.PassiveRepeaters[i-1]
		}
		nodes[i] = node
	}
	return nodes
}

// profileFunc satisfies aggregator.ProfileFunc, backed by the per-request
// elevation-profile cache: a resident entry is returned directly; a miss
// is faulted in at most once across concurrent callers via singleflight,
// mirroring internal/terrain's TileCache.Lookup.
func (c *Context) profileFunc(a, b afctypes.Location) (afctypes.ElevationProfile, bool) {
	key := profileKey(a, b)
	if cached, ok := c.profileCache.Load(key); ok {
		return cached.profile, cached.los
	}
	v, _, _ := c.profileGroup.Do(key, func() (interface{}, error) {
		los, profile := itm.IsLOS(c.Resolver, a, b, c.ProfilePts)
		entry := cachedProfile{profile: profile, los: los}
		c.profileCache.Store(key, entry)
		return entry, nil
	})
	entry := v.(cachedProfile)
	return entry.profile, entry.los
}

func profileKey(a, b afctypes.Location) string {
	return fmt.Sprintf("%.6f,%.6f->%.6f,%.6f", a.LatitudeDeg, a.LongitudeDeg, b.LatitudeDeg, b.LongitudeDeg)
}

// morphologyFunc satisfies aggregator.MorphologyFunc, classifying a
// segment's receiving end by NLCD land-cover class via the terrain
// resolver so §4.7's model choice can vary per segment instead of being
// fixed once for the whole request.
func (c *Context) morphologyFunc(loc afctypes.Location) afctypes.Morphology {
	morph, _ := c.Resolver.Morphology(loc.LatitudeDeg, loc.LongitudeDeg)
	return morph
}

// defaultConfidenceFrac falls back to the median prediction (0.5) when the
// request's config doesn't specify an ITM confidence fraction.
func defaultConfidenceFrac(v float64) float64 {
	if v <= 0 || v >= 1 {
		return 0.5
	}
	return v
}

func (c *Context) aggregatorParams() aggregator.Params {
	return aggregator.Params{
		ThresholdDB:       c.Config.ThresholdDB,
		MinEIRPDBm:        c.Config.MinEIRPDBm,
		MaxEIRPDBm:        c.Config.MaxEIRPDBm,
		MaxLinkDistanceKM: c.Config.MaxLinkDistanceKM,
	}
}

func (c *Context) propagationParams() propagation.Params {
	return propagation.Params{
		ITM: itm.Parameters{
			Polarization:    itm.Polarization(c.Config.ITMParameters.Polarization),
			Ground:          itm.GroundType(c.Config.ITMParameters.Ground),
			DielectricConst: c.Config.ITMParameters.DielectricConst,
			Conductivity:    c.Config.ITMParameters.Conductivity,
			MinSpacingM:     c.Config.ITMParameters.MinSpacingM,
			MaxPoints:       c.Config.ITMParameters.MaxPoints,
			ConfidenceFrac:  defaultConfidenceFrac(c.Config.PropagationModel.ITMConfidence),
		},
		Winner2BreakpointM:     1000,
		Win2ConfidenceFrac:     c.Config.PropagationModel.Win2Confidence,
		P2108ConfidenceFrac:    c.Config.PropagationModel.P2108Confidence,
		ClutterAtFS:            c.Config.ClutterAtFS,
		BuildingPenetrationDB:  c.Config.BuildingPenetrationLoss.Value,
		PolarizationMismatchDB: c.Config.PolarizationMismatchLoss.Value,
		BodyLossDB:             c.Config.BodyLoss.ValueOutdoorDB,
		FeederLossTxDB:         c.Config.ReceiverFeederLoss.Other,
		FeederLossRxDB:         c.Config.ReceiverFeederLoss.Other,
	}
}

