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
	"strconv"

	"m4o.io/stroll/internal/geom"
	"m4o.io/stroll/model"
)

// Association is one row of the segment-to-POI association table. POI is nil
// when the segment matched nothing; such rows keep segment coverage intact in
// the left join.
type Association struct {
	RouteID   int64
	SegmentID int
	POI       *model.POI
}

type associationKey struct {
	routeID   int64
	segmentID int
	identity  string
	category  string
	subtype   string
}

// Associate buffers each segment of the route by radiusM in the planar
// projection and joins it against the POI set. Segments are annotated with
// their buffer ring as a side effect. Duplicate (route, segment, POI
// identity, category, subtype) rows are collapsed; a POI's identity is its
// name when known, its id otherwise.
func Associate(route *model.Route, pois []model.POI, radiusM float64) []Association {
	rows := make([]Association, 0, len(route.Segments))
	seen := make(map[associationKey]struct{})

	for i := range route.Segments {
		seg := &route.Segments[i]
		line := geom.ProjectLine(seg.Geometry)
		seg.Buffer = geom.UnprojectRing(geom.Buffer(line, radiusM))

		matched := false

		for j := range pois {
			poi := &pois[j]
			if geom.DistanceToPolyline(geom.Project(poi.Location), line) > radiusM {
				continue
			}

			key := associationKey{
				routeID:   route.ID,
				segmentID: seg.ID,
				identity:  poiIdentity(poi),
				category:  poi.Category,
				subtype:   poi.Subtype,
			}
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}

			rows = append(rows, Association{RouteID: route.ID, SegmentID: seg.ID, POI: poi})
			matched = true
		}

		if !matched {
			rows = append(rows, Association{RouteID: route.ID, SegmentID: seg.ID})
		}
	}

	return rows
}

func poiIdentity(poi *model.POI) string {
	if poi.Name != "" {
		return poi.Name
	}

	return "#" + strconv.FormatInt(poi.ID, 10)
}
