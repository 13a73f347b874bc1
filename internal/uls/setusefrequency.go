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

import "github.com/afc-project/afc-engine/pkg/afctypes"

// SetUseFrequency implements §4.15: when a record's allocated bandwidth
// (stopFreq-startFreq as read) exceeds its declared channel bandwidth, a
// sub-channel of the declared width is selected pseudo-randomly from the
// allocated span, using the caller-supplied generator so the choice is
// reproducible given the same seed.
func SetUseFrequency(link *afctypes.FsLink, rng interface{ Float64() float64 }) {
	allocatedMHz := link.StopUseFreqMHz - link.StartUseFreqMHz
	if allocatedMHz <= link.BandwidthMHz+1e-6 {
		return
	}
	slack := allocatedMHz - link.BandwidthMHz
	offset := rng.Float64() * slack
	link.StartUseFreqMHz += offset
	link.StopUseFreqMHz = link.StartUseFreqMHz + link.BandwidthMHz
}
