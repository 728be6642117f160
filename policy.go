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
	"strings"

	"m4o.io/stroll/internal/geom"
	"m4o.io/stroll/model"
)

// CandidatePolicy selects one route among the candidates returned by the
// router, by index. It is only invoked with a non-empty slice.
type CandidatePolicy func(routes []model.Route) int

// SelectFirst picks the provider's highest-priority candidate.
func SelectFirst(routes []model.Route) int {
	return 0
}

// SelectShortest picks the candidate with the smallest planar length.
func SelectShortest(routes []model.Route) int {
	best := 0
	bestLength := routeLength(routes[0])

	for i := 1; i < len(routes); i++ {
		if l := routeLength(routes[i]); l < bestLength {
			best, bestLength = i, l
		}
	}

	return best
}

// SelectFewestTurns picks the candidate whose instructions mention the fewest
// turns, breaking ties by provider order.
func SelectFewestTurns(routes []model.Route) int {
	best := 0
	bestTurns := countTurns(routes[0])

	for i := 1; i < len(routes); i++ {
		if t := countTurns(routes[i]); t < bestTurns {
			best, bestTurns = i, t
		}
	}

	return best
}

func routeLength(route model.Route) float64 {
	return geom.Length(geom.ProjectLine(route.Geometry()))
}

func countTurns(route model.Route) int {
	var turns int
	for _, seg := range route.Segments {
		if strings.Contains(seg.Instruction, "Turn") {
			turns++
		}
	}

	return turns
}
