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

// Package stroll enriches point-to-point walking routes with nearby points of
// interest. Given an origin, a destination, requested POI subtypes, and
// free-text constraint hints, it geocodes the anchors, obtains route
// candidates from a routing provider, fetches matching POIs, associates them
// with route segments by planar buffering, folds the associations into a
// segment-by-segment summary document with cumulative distance and time, and
// prunes POI annotations that fall outside the parsed constraints.
//
// Geocoding, routing, and POI retrieval are external collaborators behind the
// Geocoder, Router, and POISource interfaces; clients for Nominatim,
// GraphHopper, and Overpass live in subpackages. One Plan invocation is a
// single-threaded, synchronous computation; only collaborator calls block.
package stroll

import (
	"context"

	"m4o.io/stroll/model"
	"m4o.io/stroll/taxonomy"
)

// Geocoder resolves a place name to a geographic point. A name with no match
// is reported by found=false, not by an error.
type Geocoder interface {
	Resolve(ctx context.Context, name string) (point model.Point, found bool, err error)
}

// Router computes up to n candidate routes between two points for the given
// travel mode. Candidates are ordered by the provider's own ranking.
type Router interface {
	Route(ctx context.Context, origin, dest model.Point, mode string, n int) ([]model.Route, error)
}

// POISource fetches the POI records matching a query spec within a region.
type POISource interface {
	Fetch(ctx context.Context, region model.BoundingBox, spec taxonomy.QuerySpec) ([]model.POI, error)
}
