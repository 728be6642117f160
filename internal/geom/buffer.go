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

package geom

import (
	"math"

	"github.com/golang/geo/r2"
)

// arcSegments is the number of samples taken around each vertex disk when
// approximating a buffer ring.
const arcSegments = 16

// Buffer approximates the planar buffer polygon of a polyline as the convex
// hull of the radius-r disks around its vertices. The approximation is only
// used for rendering output; containment queries must use DistanceToPolyline,
// which is exact. A zero-length polyline buffers to a valid disk ring.
func Buffer(line []r2.Point, radius float64) []r2.Point {
	if len(line) == 0 {
		return nil
	}

	samples := make([]r2.Point, 0, len(line)*arcSegments)
	for _, v := range line {
		for i := 0; i < arcSegments; i++ {
			theta := 2 * math.Pi * float64(i) / arcSegments
			samples = append(samples, r2.Point{
				X: v.X + radius*math.Cos(theta),
				Y: v.Y + radius*math.Sin(theta),
			})
		}
	}

	return ConvexHull(samples)
}
