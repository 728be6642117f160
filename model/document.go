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

package model

// SegmentSummary is the per-segment record of the summary document. The JSON
// field names are a frozen contract with the text summarizer and the map
// renderer.
type SegmentSummary struct {
	SegmentID              int         `json:"segment_id"`
	Instruction            string      `json:"instruction"`
	POIs                   Annotations `json:"POIs"`
	TimeFromOriginMin      float64     `json:"time_from_origin_min"`
	TimeToDestinationMin   float64     `json:"time_to_destination_min"`
	DistanceFromOriginM    float64     `json:"distance_from_origin_m"`
	DistanceToDestinationM float64     `json:"distance_to_destination_m"`
}

// SummaryDocument is the externally visible artifact of the pipeline: one
// route, segment by segment, annotated with nearby POIs and cumulative
// metrics.
type SummaryDocument struct {
	RouteID          int64            `json:"route_id"`
	From             string           `json:"from"`
	To               string           `json:"to"`
	LengthTotM       float64          `json:"length_tot_m"`
	TimeToWalkTotMin float64          `json:"time_to_walk_tot_min"`
	Segments         []SegmentSummary `json:"segments"`
}
