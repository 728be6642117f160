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
	"fmt"
	"math"
	"slices"
	"sort"
	"strings"

	"m4o.io/stroll/internal/geom"
	"m4o.io/stroll/model"
)

// Aggregate folds the association rows into the summary document. Segments
// are visited in ascending id order, the canonical route order, carrying a
// running cumulative of rounded segment lengths. Route totals come from the
// concatenated route geometry so that per-segment rounding cannot drift into
// the total. Only the requested categories contribute annotations.
func Aggregate(route *model.Route, rows []Association, categories []string,
	speedMPerMin float64, from, to string,
) *model.SummaryDocument {
	bySegment := make(map[int][]Association, len(route.Segments))
	for _, row := range rows {
		if row.POI != nil {
			bySegment[row.SegmentID] = append(bySegment[row.SegmentID], row)
		}
	}

	total := round2(geom.Length(geom.ProjectLine(route.Geometry())))
	totalTime := round2(total / speedMPerMin)

	ordered := make([]model.Segment, len(route.Segments))
	copy(ordered, route.Segments)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].ID < ordered[j].ID })

	var cumulative float64

	segments := make([]model.SegmentSummary, 0, len(ordered))

	for _, seg := range ordered {
		length := round2(geom.Length(geom.ProjectLine(seg.Geometry)))
		cumulative += length

		timeFromOrigin := round2(cumulative / speedMPerMin)

		annotations := make(model.Annotations)

		for _, row := range bySegment[seg.ID] {
			if !slices.Contains(categories, row.POI.Category) {
				continue
			}

			annotations.Record(row.POI.Category, row.POI.Subtype, row.POI.Name)
		}

		segments = append(segments, model.SegmentSummary{
			SegmentID:              seg.ID,
			Instruction:            normalizeInstruction(seg.Instruction, length),
			POIs:                   annotations,
			TimeFromOriginMin:      timeFromOrigin,
			TimeToDestinationMin:   remaining(totalTime, timeFromOrigin),
			DistanceFromOriginM:    round2(cumulative),
			DistanceToDestinationM: remaining(total, cumulative),
		})
	}

	return &model.SummaryDocument{
		RouteID:          route.ID,
		From:             from,
		To:               to,
		LengthTotM:       total,
		TimeToWalkTotMin: totalTime,
		Segments:         segments,
	}
}

// normalizeInstruction applies the measured segment length to the provider's
// instruction text, defaulting to "Continue" when none was supplied.
func normalizeInstruction(instruction string, lengthM float64) string {
	if instruction == "" {
		instruction = "Continue"
	}

	meters := int(math.Round(lengthM))

	switch {
	case strings.Contains(instruction, "Turn"):
		return fmt.Sprintf("%s after %d meters", instruction, meters)
	case strings.Contains(instruction, "Continue"),
		strings.Contains(instruction, "Walk"),
		strings.Contains(instruction, "Head"):
		return fmt.Sprintf("%s for %d meters", instruction, meters)
	}

	return instruction
}

// remaining clamps rounding drift so remaining metrics never go negative.
func remaining(total, cumulative float64) float64 {
	if diff := total - cumulative; diff > 0 {
		return round2(diff)
	}

	return 0
}

func round2(val float64) float64 {
	return math.Round(val*100) / 100
}
