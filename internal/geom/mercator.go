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

// Package geom provides the planar geometry primitives of the enrichment
// pipeline: web-mercator reprojection, polyline lengths and distances, and
// buffer rings. Reprojection is a pure function pair; callers decide which
// coordinate space a geometry lives in, never this package.
package geom

import (
	"math"

	"github.com/golang/geo/r2"

	"m4o.io/stroll/model"
)

// EarthRadiusM is the spherical earth radius, in meters, of the web-mercator
// projection.
const EarthRadiusM = 6378137.0

// Project reprojects a geographic point to planar web-mercator meters.
func Project(p model.Point) r2.Point {
	x := EarthRadiusM * p.Lon.Radians()
	y := EarthRadiusM * math.Log(math.Tan(math.Pi/4+p.Lat.Radians()/2))

	return r2.Point{X: x, Y: y}
}

// Unproject reprojects a planar web-mercator point back to geographic
// coordinates.
func Unproject(p r2.Point) model.Point {
	lon := model.Radian * model.Degrees(p.X/EarthRadiusM)
	lat := model.Radian * model.Degrees(2*math.Atan(math.Exp(p.Y/EarthRadiusM))-math.Pi/2)

	return model.Point{Lon: lon, Lat: lat}
}

// ProjectLine reprojects a geographic polyline to planar coordinates.
func ProjectLine(line model.LineString) []r2.Point {
	pts := make([]r2.Point, len(line))
	for i, p := range line {
		pts[i] = Project(p)
	}

	return pts
}

// UnprojectRing reprojects a planar ring back to geographic coordinates.
func UnprojectRing(ring []r2.Point) model.Ring {
	out := make(model.Ring, len(ring))
	for i, p := range ring {
		out[i] = Unproject(p)
	}

	return out
}
