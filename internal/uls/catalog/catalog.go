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

// Package catalog implements §4.12 antenna/transmitter model matching: an
// ordered regex list for US ULS free-text models, and longest-prefix
// matching for Canadian ISED models, grounded on AntennaModelMap.cpp /
// TransmitterModelMap.cpp.
package catalog

import (
	"regexp"
	"sort"
	"strings"

	"github.com/afc-project/afc-engine/pkg/afctypes"
)

// cleanModelString implements AntennaModelMap.cpp's normalization: upper-
// case, strip everything but letters and digits.
func cleanModelString(s string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(s) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// AntennaRule is one ordered regex->catalog-entry mapping rule for the US
// ULS matcher; rules are tried in slice order and the first match wins.
type AntennaRule struct {
	Pattern *regexp.Regexp
	Entry   afctypes.AntennaCatalogEntry
}

// AntennaCatalog holds both matchers the ingester needs: the ordered US
// regex rule list, and the CA prefix map (keyed by cleaned model prefix).
type AntennaCatalog struct {
	USRules    []AntennaRule
	CAPrefixes map[string]afctypes.AntennaCatalogEntry
}

// NewAntennaCatalog returns an empty catalog; callers populate USRules and
// CAPrefixes from the configured model-list/model-map files.
func NewAntennaCatalog() *AntennaCatalog {
	return &AntennaCatalog{CAPrefixes: make(map[string]afctypes.AntennaCatalogEntry)}
}

// MatchUS runs the ordered US regex rules against the cleaned model
// string; matched is false (and the record should be flagged
// antennaModelUnmatched) when nothing matches.
func (c *AntennaCatalog) MatchUS(rawModel string) (entry afctypes.AntennaCatalogEntry, matched bool) {
	cleaned := cleanModelString(rawModel)
	for _, rule := range c.USRules {
		if rule.Pattern.MatchString(cleaned) {
			return rule.Entry, true
		}
	}
	return afctypes.AntennaCatalogEntry{Category: afctypes.CategoryUnknown}, false
}

// MatchCA does longest-prefix matching of the cleaned model string against
// the CA prefix table.
func (c *AntennaCatalog) MatchCA(rawModel string) (entry afctypes.AntennaCatalogEntry, matched bool) {
	cleaned := cleanModelString(rawModel)
	prefixes := make([]string, 0, len(c.CAPrefixes))
	for p := range c.CAPrefixes {
		if strings.HasPrefix(cleaned, p) {
			prefixes = append(prefixes, p)
		}
	}
	if len(prefixes) == 0 {
		return afctypes.AntennaCatalogEntry{Category: afctypes.CategoryUnknown}, false
	}
	sort.Slice(prefixes, func(i, j int) bool { return len(prefixes[i]) > len(prefixes[j]) })
	return c.CAPrefixes[prefixes[0]], true
}

// TransmitterCatalog does longest-prefix matching of a transmitter model
// string to an architecture tag (IDU/ODU/Unknown).
type TransmitterCatalog struct {
	Prefixes map[string]afctypes.TransmitterArchitecture
}

func NewTransmitterCatalog() *TransmitterCatalog {
	return &TransmitterCatalog{Prefixes: make(map[string]afctypes.TransmitterArchitecture)}
}

func (c *TransmitterCatalog) Match(rawModel string) afctypes.TransmitterArchitecture {
	cleaned := cleanModelString(rawModel)
	best := ""
	for p := range c.Prefixes {
		if strings.HasPrefix(cleaned, p) && len(p) > len(best) {
			best = p
		}
	}
	if best == "" {
		return afctypes.ArchitectureUnknown
	}
	return c.Prefixes[best]
}
