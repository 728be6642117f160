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
	"sort"

	"github.com/golang/geo/r2"
)

// Length returns the length of a planar polyline.
func Length(line []r2.Point) float64 {
	var sum float64
	for i := 1; i < len(line); i++ {
		sum += line[i].Sub(line[i-1]).Norm()
	}

	return sum
}

// DistanceToPolyline returns the shortest planar distance from p to the
// polyline. A single-point polyline degenerates to point distance.
func DistanceToPolyline(p r2.Point, line []r2.Point) float64 {
	if len(line) == 0 {
		return math.Inf(1)
	}

	if len(line) == 1 {
		return p.Sub(line[0]).Norm()
	}

	best := math.Inf(1)
	for i := 1; i < len(line); i++ {
		if d := distanceToSegment(p, line[i-1], line[i]); d < best {
			best = d
		}
	}

	return best
}

func distanceToSegment(p, a, b r2.Point) float64 {
	ab := b.Sub(a)

	length2 := ab.Dot(ab)
	if length2 == 0 {
		return p.Sub(a).Norm()
	}

	t := p.Sub(a).Dot(ab) / length2
	t = max(0, min(1, t))

	closest := a.Add(ab.Mul(t))

	return p.Sub(closest).Norm()
}

// Centroid returns the vertex mean of the points. It is the representative
// point used when an area geometry must be reduced to a single point.
func Centroid(pts []r2.Point) r2.Point {
	var c r2.Point
	for _, p := range pts {
		c = c.Add(p)
	}

	return c.Mul(1 / float64(len(pts)))
}

// ConvexHull computes the convex hull of the points using the monotone chain
// algorithm. The returned ring is in counter-clockwise order and does not
// repeat the first point.
func ConvexHull(pts []r2.Point) []r2.Point {
	if len(pts) < 3 {
		return pts
	}

	sorted := make([]r2.Point, len(pts))
	copy(sorted, pts)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].X != sorted[j].X {
			return sorted[i].X < sorted[j].X
		}

		return sorted[i].Y < sorted[j].Y
	})

	var lower []r2.Point
	for _, p := range sorted {
		for len(lower) >= 2 && cross(lower[len(lower)-2], lower[len(lower)-1], p) <= 0 {
			lower = lower[:len(lower)-1]
		}
		lower = append(lower, p)
	}

	var upper []r2.Point
	for i := len(sorted) - 1; i >= 0; i-- {
		p := sorted[i]
		for len(upper) >= 2 && cross(upper[len(upper)-2], upper[len(upper)-1], p) <= 0 {
			upper = upper[:len(upper)-1]
		}
		upper = append(upper, p)
	}

	return append(lower[:len(lower)-1], upper[:len(upper)-1]...)
}

func cross(o, a, b r2.Point) float64 {
	return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
}
