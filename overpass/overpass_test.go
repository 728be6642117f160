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

package overpass_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"m4o.io/stroll/internal/respcache"
	"m4o.io/stroll/model"
	"m4o.io/stroll/overpass"
	"m4o.io/stroll/taxonomy"
)

var testRegion = model.BoundingBox{Top: 48.87, Left: 2.32, Bottom: 48.84, Right: 2.36}

const tourismFixture = `{
	"elements": [
		{
			"type": "node", "id": 1, "lat": 48.8606, "lon": 2.3376,
			"tags": {"tourism": "museum", "name": "Louvre"}
		},
		{
			"type": "way", "id": 2,
			"center": {"lat": 48.8600, "lon": 2.3265},
			"tags": {"tourism": "museum", "name": "Orangerie"}
		},
		{
			"type": "way", "id": 3,
			"geometry": [
				{"lat": 48.8610, "lon": 2.3330},
				{"lat": 48.8614, "lon": 2.3334}
			],
			"tags": {"tourism": "museum"}
		},
		{
			"type": "node", "id": 4, "lat": 48.8530, "lon": 2.3499,
			"tags": {"tourism": "hotel", "name": "Hotel du Quai"}
		},
		{
			"type": "node", "id": 5, "lat": 48.8540, "lon": 2.3400,
			"tags": {"name": "Untagged"}
		}
	]
}`

func fixtureServer(t *testing.T, hits *atomic.Int32) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits != nil {
			hits.Add(1)
		}

		query := r.FormValue("data")

		switch {
		case strings.Contains(query, `"tourism"`):
			w.Write([]byte(tourismFixture))
		case strings.Contains(query, `"amenity"`):
			w.Write([]byte(`{
				"elements": [{
					"type": "node", "id": 10, "lat": 48.8550, "lon": 2.3450,
					"tags": {"amenity": "restaurant", "name": "Le Zinc"}
				}]
			}`))
		default:
			w.Write([]byte(`{"elements": []}`))
		}
	}))
}

func TestClient_Fetch(t *testing.T) {
	server := fixtureServer(t, nil)
	defer server.Close()

	client := overpass.New(overpass.WithEndpoint(server.URL))

	pois, err := client.Fetch(context.Background(), testRegion,
		taxonomy.Translate([]string{"museum"}))

	require.NoError(t, err)
	require.Len(t, pois, 3)

	// the node resolves to itself
	assert.Equal(t, int64(1), pois[0].ID)
	assert.Equal(t, "Louvre", pois[0].Name)
	assert.Equal(t, "tourism", pois[0].Category)
	assert.Equal(t, "museum", pois[0].Subtype)
	assert.True(t, pois[0].Location.EqualWithin(model.Point{Lon: 2.3376, Lat: 48.8606}, model.E9))

	// the way with a center uses it
	assert.Equal(t, int64(2), pois[1].ID)
	assert.True(t, pois[1].Location.EqualWithin(model.Point{Lon: 2.3265, Lat: 48.8600}, model.E9))

	// the way with raw geometry collapses to its centroid; its missing name
	// leaves the record countable rather than nameable
	assert.Equal(t, int64(3), pois[2].ID)
	assert.Empty(t, pois[2].Name)
	assert.True(t, pois[2].Location.EqualWithin(model.Point{Lon: 2.3332, Lat: 48.8612}, model.E5))
}

func TestClient_FetchMergesCategoriesInOrder(t *testing.T) {
	server := fixtureServer(t, nil)
	defer server.Close()

	client := overpass.New(overpass.WithEndpoint(server.URL))

	pois, err := client.Fetch(context.Background(), testRegion,
		taxonomy.Translate([]string{"museum", "restaurant"}))

	require.NoError(t, err)
	require.Len(t, pois, 4)

	// categories merge in sorted order regardless of fetch completion order
	assert.Equal(t, "amenity", pois[0].Category)
	assert.Equal(t, "tourism", pois[1].Category)
}

func TestClient_FetchEmptyResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"elements": []}`))
	}))
	defer server.Close()

	client := overpass.New(overpass.WithEndpoint(server.URL))

	pois, err := client.Fetch(context.Background(), testRegion,
		taxonomy.Translate([]string{"museum"}))

	require.NoError(t, err)
	assert.Empty(t, pois)
}

func TestClient_FetchServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "too busy", http.StatusGatewayTimeout)
	}))
	defer server.Close()

	client := overpass.New(overpass.WithEndpoint(server.URL))

	_, err := client.Fetch(context.Background(), testRegion,
		taxonomy.Translate([]string{"museum"}))

	assert.ErrorContains(t, err, "unexpected status")
}

func TestClient_FetchCaches(t *testing.T) {
	var hits atomic.Int32

	server := fixtureServer(t, &hits)
	defer server.Close()

	cache, err := respcache.New(t.TempDir(), 0)
	require.NoError(t, err)

	client := overpass.New(overpass.WithEndpoint(server.URL), overpass.WithCache(cache))
	spec := taxonomy.Translate([]string{"museum"})

	first, err := client.Fetch(context.Background(), testRegion, spec)
	require.NoError(t, err)

	second, err := client.Fetch(context.Background(), testRegion, spec)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), hits.Load())
}
