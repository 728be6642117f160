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
	"testing"

	"github.com/golang/geo/r2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"m4o.io/stroll/internal/geom"
	"m4o.io/stroll/model"
)

// planarLine builds a geodetic line string from planar meters, so tests can
// reason about lengths and distances in round numbers.
func planarLine(points ...r2.Point) model.LineString {
	line := make(model.LineString, len(points))
	for i, p := range points {
		line[i] = geom.Unproject(p)
	}

	return line
}

func planarPoint(x, y float64) model.Point {
	return geom.Unproject(r2.Point{X: x, Y: y})
}

// testRoute is three collinear 100 m segments along the equator.
func testRoute() *model.Route {
	return &model.Route{
		ID: 0,
		Segments: []model.Segment{
			{ID: 0, Geometry: planarLine(r2.Point{X: 0, Y: 0}, r2.Point{X: 100, Y: 0}), Instruction: "Head east"},
			{ID: 1, Geometry: planarLine(r2.Point{X: 100, Y: 0}, r2.Point{X: 200, Y: 0}), Instruction: ""},
			{ID: 2, Geometry: planarLine(r2.Point{X: 200, Y: 0}, r2.Point{X: 300, Y: 0}), Instruction: "Turn right"},
		},
	}
}

func museumPOI() model.POI {
	// sits 50 m off the shared vertex of segments 0 and 1, inside both
	// buffers and outside segment 2's
	return model.POI{
		ID:       42,
		Name:     "Louvre",
		Category: "tourism",
		Subtype:  "museum",
		Location: planarPoint(100, 50),
	}
}

func TestAggregate(t *testing.T) {
	route := testRoute()
	rows := Associate(route, []model.POI{museumPOI()}, 100)

	doc := Aggregate(route, rows, []string{"tourism"}, DefaultWalkingSpeedMPerMin,
		testOrigin, testDestination)

	assert.Equal(t, int64(0), doc.RouteID)
	assert.Equal(t, testOrigin, doc.From)
	assert.Equal(t, testDestination, doc.To)
	assert.InDelta(t, 300.0, doc.LengthTotM, 1e-9)
	assert.InDelta(t, 3.61, doc.TimeToWalkTotMin, 1e-9)

	require.Len(t, doc.Segments, 3)

	test_cases := []struct {
		instruction string
		timeFrom    float64
		timeTo      float64
		distFrom    float64
		distTo      float64
	}{
		{"Head east for 100 meters", 1.2, 2.41, 100, 200},
		{"Continue for 100 meters", 2.41, 1.2, 200, 100},
		{"Turn right after 100 meters", 3.61, 0, 300, 0},
	}

	for i, tc := range test_cases {
		seg := doc.Segments[i]

		assert.Equal(t, i, seg.SegmentID)
		assert.Equal(t, tc.instruction, seg.Instruction)
		assert.InDelta(t, tc.timeFrom, seg.TimeFromOriginMin, 1e-9)
		assert.InDelta(t, tc.timeTo, seg.TimeToDestinationMin, 1e-9)
		assert.InDelta(t, tc.distFrom, seg.DistanceFromOriginM, 1e-9)
		assert.InDelta(t, tc.distTo, seg.DistanceToDestinationM, 1e-9)

		// origin-to-destination metrics stay complementary up to rounding
		assert.InDelta(t, doc.LengthTotM, seg.DistanceFromOriginM+seg.DistanceToDestinationM, 0.02)
		assert.InDelta(t, doc.TimeToWalkTotMin, seg.TimeFromOriginMin+seg.TimeToDestinationMin, 0.02)
	}

	// the museum annotates the two segments whose buffers reach it
	assert.Equal(t, []string{"Louvre"}, doc.Segments[0].POIs["tourism"]["museum"].Names)
	assert.Equal(t, []string{"Louvre"}, doc.Segments[1].POIs["tourism"]["museum"].Names)
	assert.Empty(t, doc.Segments[2].POIs)
}

func TestAggregate_OrdersSegmentsByID(t *testing.T) {
	route := testRoute()
	route.Segments[0], route.Segments[2] = route.Segments[2], route.Segments[0]

	doc := Aggregate(route, nil, nil, DefaultWalkingSpeedMPerMin, testOrigin, testDestination)

	require.Len(t, doc.Segments, 3)

	prevTime, prevDist := 0.0, 0.0

	for i, seg := range doc.Segments {
		assert.Equal(t, i, seg.SegmentID)
		assert.Greater(t, seg.TimeFromOriginMin, prevTime)
		assert.Greater(t, seg.DistanceFromOriginM, prevDist)
		prevTime, prevDist = seg.TimeFromOriginMin, seg.DistanceFromOriginM
	}
}

func TestAggregate_FiltersUnrequestedCategories(t *testing.T) {
	route := testRoute()
	pub := model.POI{
		ID: 7, Name: "The Anchor", Category: "amenity", Subtype: "pub",
		Location: planarPoint(50, 10),
	}
	rows := Associate(route, []model.POI{museumPOI(), pub}, 100)

	doc := Aggregate(route, rows, []string{"tourism"}, DefaultWalkingSpeedMPerMin,
		testOrigin, testDestination)

	assert.Contains(t, doc.Segments[0].POIs, "tourism")
	assert.NotContains(t, doc.Segments[0].POIs, "amenity")
}

func TestAggregate_CountsUnnamedPOIs(t *testing.T) {
	route := testRoute()
	pois := []model.POI{
		{ID: 1, Category: "tourism", Subtype: "artwork", Location: planarPoint(20, 10)},
		{ID: 2, Category: "tourism", Subtype: "artwork", Location: planarPoint(60, 10)},
	}
	rows := Associate(route, pois, 100)

	doc := Aggregate(route, rows, []string{"tourism"}, DefaultWalkingSpeedMPerMin,
		testOrigin, testDestination)

	ann := doc.Segments[0].POIs["tourism"]["artwork"]
	require.NotNil(t, ann)
	assert.Equal(t, 2, ann.Count)
	assert.Empty(t, ann.Names)
}

func TestNormalizeInstruction(t *testing.T) {
	test_cases := []struct {
		instruction string
		expected    string
	}{
		{"", "Continue for 150 meters"},
		{"Turn left onto Rue de Rivoli", "Turn left onto Rue de Rivoli after 150 meters"},
		{"Continue onto Quai des Tuileries", "Continue onto Quai des Tuileries for 150 meters"},
		{"Walk along the river", "Walk along the river for 150 meters"},
		{"Head north", "Head north for 150 meters"},
		{"Arrive at destination", "Arrive at destination"},
	}

	for _, tc := range test_cases {
		assert.Equal(t, tc.expected, normalizeInstruction(tc.instruction, 150.2))
	}
}
