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

package catalog

import (
	"regexp"
	"testing"

	"github.com/afc-project/afc-engine/pkg/afctypes"
	"github.com/stretchr/testify/assert"
)

func TestMatchUS_FirstRuleWins(t *testing.T) {
	c := NewAntennaCatalog()
	c.USRules = []AntennaRule{
		{Pattern: regexp.MustCompile(`^HPX`), Entry: afctypes.AntennaCatalogEntry{Name: "HPX-GENERIC", Category: afctypes.CategoryHP}},
		{Pattern: regexp.MustCompile(`^HP`), Entry: afctypes.AntennaCatalogEntry{Name: "HP-GENERIC", Category: afctypes.CategoryHP}},
	}
	entry, matched := c.MatchUS("hpx-6-2ft")
	assert.True(t, matched)
	assert.Equal(t, "HPX-GENERIC", entry.Name)
}

func TestMatchUS_NoMatchReturnsUnknown(t *testing.T) {
	c := NewAntennaCatalog()
	entry, matched := c.MatchUS("totally-unrecognized-model")
	assert.False(t, matched)
	assert.Equal(t, afctypes.CategoryUnknown, entry.Category)
}

func TestMatchCA_LongestPrefixWins(t *testing.T) {
	c := NewAntennaCatalog()
	c.CAPrefixes["VHLP"] = afctypes.AntennaCatalogEntry{Name: "VHLP-SHORT"}
	c.CAPrefixes["VHLP2"] = afctypes.AntennaCatalogEntry{Name: "VHLP2-LONG"}
	entry, matched := c.MatchCA("VHLP2-6FT-DISH")
	assert.True(t, matched)
	assert.Equal(t, "VHLP2-LONG", entry.Name)
}

func TestTransmitterCatalog_LongestPrefixWins(t *testing.T) {
	c := NewTransmitterCatalog()
	c.Prefixes["AB"] = afctypes.ArchitectureIDU
	c.Prefixes["ABC"] = afctypes.ArchitectureODU
	assert.Equal(t, afctypes.ArchitectureODU, c.Match("ABC-1000"))
	assert.Equal(t, afctypes.ArchitectureIDU, c.Match("AB-100"))
	assert.Equal(t, afctypes.ArchitectureUnknown, c.Match("ZZZ"))
}
