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

// Segment is one ordered sub-path of a route. ID is the position of the
// segment within the route and is never reassigned. Buffer is the derived
// planar buffer ring, reprojected back to geographic coordinates; it is
// carried for rendering only.
type Segment struct {
	ID          int
	Geometry    LineString
	Instruction string
	Buffer      Ring
}

// Route is one candidate path from origin to destination, as returned by the
// routing provider.
type Route struct {
	ID       int64
	Segments []Segment
}

// Geometry returns the concatenated geometry of all segments, in route order.
func (r Route) Geometry() LineString {
	var line LineString
	for _, seg := range r.Segments {
		line = append(line, seg.Geometry...)
	}

	return line
}

// ConstraintSpec holds the thresholds parsed from free-text hints. A nil
// limit means the corresponding constraint is unset.
type ConstraintSpec struct {
	TimeLimitMin   *float64
	DistanceLimitM *float64
}

// Unconstrained reports whether neither limit is set.
func (c ConstraintSpec) Unconstrained() bool {
	return c.TimeLimitMin == nil && c.DistanceLimitM == nil
}
