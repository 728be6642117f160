// Copyright 2017-25 the original author or authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package stroll

import (
	"regexp"
	"strconv"
	"strings"

	"m4o.io/stroll/model"
)

const (
	// DefaultTimeLimitMin is the time limit assumed when a time hint names an
	// anchor without a quantity ("near the start").
	DefaultTimeLimitMin = 5.0

	// DefaultDistanceLimitM is the distance limit assumed when a distance
	// hint names an anchor without a quantity.
	DefaultDistanceLimitM = 300.0
)

var numeralPattern = regexp.MustCompile(`\d+(\.\d+)?`)

// ParseConstraints derives the constraint spec from the two free-text hints.
// Each hint is handled independently: an empty hint leaves its limit unset;
// the first numeral in the hint becomes the limit (minutes or meters);
// failing that, a hint that mentions the origin or destination name takes the
// fixed default. Hints matching neither leave the limit unset, which is not
// an error.
func ParseConstraints(timeHint, distanceHint, origin, destination string) model.ConstraintSpec {
	return model.ConstraintSpec{
		TimeLimitMin:   parseLimit(timeHint, origin, destination, DefaultTimeLimitMin),
		DistanceLimitM: parseLimit(distanceHint, origin, destination, DefaultDistanceLimitM),
	}
}

func parseLimit(hint, origin, destination string, fallback float64) *float64 {
	if hint == "" {
		return nil
	}

	if m := numeralPattern.FindString(hint); m != "" {
		limit, err := strconv.ParseFloat(m, 64)
		if err == nil {
			return &limit
		}
	}

	if mentionsAnchor(hint, origin) || mentionsAnchor(hint, destination) {
		limit := fallback

		return &limit
	}

	return nil
}

// mentionsAnchor reports whether the hint refers to the anchor name,
// case-insensitively. Anchor names are often full geocoder labels
// ("Louvre museum, Paris") while hints use a fragment ("near the Louvre"),
// so individual words of the name match as well as the whole name.
func mentionsAnchor(hint, name string) bool {
	if name == "" {
		return false
	}

	hint = strings.ToLower(hint)
	name = strings.ToLower(name)

	if strings.Contains(hint, name) {
		return true
	}

	for _, word := range strings.FieldsFunc(name, func(r rune) bool {
		return !('a' <= r && r <= 'z' || '0' <= r && r <= '9')
	}) {
		if len(word) >= 3 && strings.Contains(hint, word) {
			return true
		}
	}

	return false
}

// Filter applies the constraint spec to a summary document, clearing the POI
// annotations of every segment whose cumulative time or distance from the
// origin exceeds an active limit. Segments are never removed or reordered,
// and route id, labels, and totals pass through verbatim. With both limits
// unset the document is returned unchanged.
func Filter(doc *model.SummaryDocument, spec model.ConstraintSpec) *model.SummaryDocument {
	if spec.Unconstrained() {
		return doc
	}

	out := *doc
	out.Segments = make([]model.SegmentSummary, len(doc.Segments))

	for i, seg := range doc.Segments {
		if exceeds(seg, spec) {
			seg.POIs = make(model.Annotations)
		}

		out.Segments[i] = seg
	}

	return &out
}

func exceeds(seg model.SegmentSummary, spec model.ConstraintSpec) bool {
	if spec.TimeLimitMin != nil && seg.TimeFromOriginMin > *spec.TimeLimitMin {
		return true
	}

	return spec.DistanceLimitM != nil && seg.DistanceFromOriginM > *spec.DistanceLimitM
}
