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

// Package overpass fetches POI records from an Overpass API endpoint. One
// query is issued per category of the query spec; the per-category queries
// fan out concurrently and their results are merged in category order.
package overpass

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/destel/rill"

	"m4o.io/stroll/internal/geom"
	"m4o.io/stroll/internal/respcache"
	"m4o.io/stroll/model"
	"m4o.io/stroll/taxonomy"
)

// DefaultEndpoint is the public Overpass API interpreter.
const DefaultEndpoint = "https://overpass-api.de/api/interpreter"

const defaultWorkers = 4

// Client fetches POIs from an Overpass endpoint.
type Client struct {
	endpoint string
	httpc    *http.Client
	cache    *respcache.Cache
	workers  int
}

// Option configures how we set up the client.
type Option func(*Client)

// WithEndpoint lets you target a non-default Overpass interpreter.
func WithEndpoint(u string) Option {
	return func(c *Client) {
		c.endpoint = u
	}
}

// WithHTTPClient lets you supply the http.Client used for requests.
func WithHTTPClient(httpc *http.Client) Option {
	return func(c *Client) {
		c.httpc = httpc
	}
}

// WithCache lets you cache raw interpreter responses between runs.
func WithCache(cache *respcache.Cache) Option {
	return func(c *Client) {
		c.cache = cache
	}
}

// WithWorkers lets you set how many category queries run concurrently.
func WithWorkers(n int) Option {
	return func(c *Client) {
		c.workers = n
	}
}

// New returns an Overpass POI source client.
func New(opts ...Option) *Client {
	c := &Client{
		endpoint: DefaultEndpoint,
		httpc:    http.DefaultClient,
		workers:  defaultWorkers,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Fetch retrieves the POIs matching the query spec within the region. An
// empty result is not an error.
func (c *Client) Fetch(ctx context.Context, region model.BoundingBox, spec taxonomy.QuerySpec) ([]model.POI, error) {
	categories := rill.FromSlice(spec.Categories(), nil)

	batches := rill.OrderedMap(categories, c.workers, func(cat string) ([]model.POI, error) {
		return c.fetchCategory(ctx, region, cat, spec[cat])
	})

	results, err := rill.ToSlice(batches)
	if err != nil {
		return nil, err
	}

	var pois []model.POI
	for _, batch := range results {
		pois = append(pois, batch...)
	}

	return pois, nil
}

func (c *Client) fetchCategory(ctx context.Context, region model.BoundingBox,
	category string, sel taxonomy.Selector,
) ([]model.POI, error) {
	query := buildQuery(region, category, sel)

	body, cached := c.cachedBody(query)
	if !cached {
		var err error

		body, err = c.interpret(ctx, query)
		if err != nil {
			return nil, err
		}

		if c.cache != nil {
			if err := c.cache.Put(query, body); err != nil {
				slog.Warn("unable to cache overpass response", "error", err)
			}
		}
	}

	return parseElements(body, category, sel)
}

func (c *Client) cachedBody(query string) ([]byte, bool) {
	if c.cache == nil {
		return nil, false
	}

	return c.cache.Get(query)
}

func (c *Client) interpret(ctx context.Context, query string) ([]byte, error) {
	form := url.Values{}
	form.Set("data", query)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint,
		strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("overpass: unexpected status %s", resp.Status)
	}

	return io.ReadAll(resp.Body)
}

type element struct {
	Type   string  `json:"type"`
	ID     int64   `json:"id"`
	Lat    float64 `json:"lat"`
	Lon    float64 `json:"lon"`
	Center *struct {
		Lat float64 `json:"lat"`
		Lon float64 `json:"lon"`
	} `json:"center"`
	Geometry []struct {
		Lat float64 `json:"lat"`
		Lon float64 `json:"lon"`
	} `json:"geometry"`
	Tags map[string]string `json:"tags"`
}

type response struct {
	Elements []element `json:"elements"`
}

// parseElements converts interpreter output to POI records. The interpreter
// already filtered by tag, but the selector is re-checked so a stale cache
// entry cannot widen a narrower request.
func parseElements(body []byte, category string, sel taxonomy.Selector) ([]model.POI, error) {
	var decoded response
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("overpass: decode response: %w", err)
	}

	pois := make([]model.POI, 0, len(decoded.Elements))

	for _, el := range decoded.Elements {
		subtype, ok := el.Tags[category]
		if !ok || !sel.Matches(subtype) {
			continue
		}

		location, ok := representativePoint(el)
		if !ok {
			continue
		}

		pois = append(pois, model.POI{
			ID:       el.ID,
			Name:     el.Tags["name"],
			Category: category,
			Subtype:  subtype,
			Location: location,
		})
	}

	return pois, nil
}

// representativePoint reduces an element to a single point: nodes are
// themselves, ways use the interpreter-provided center, and full-geometry
// ways fall back to their planar centroid.
func representativePoint(el element) (model.Point, bool) {
	switch {
	case el.Type == "node":
		return model.Point{Lon: model.Degrees(el.Lon), Lat: model.Degrees(el.Lat)}, true

	case el.Center != nil:
		return model.Point{Lon: model.Degrees(el.Center.Lon), Lat: model.Degrees(el.Center.Lat)}, true

	case len(el.Geometry) > 0:
		line := make(model.LineString, len(el.Geometry))
		for i, p := range el.Geometry {
			line[i] = model.Point{Lon: model.Degrees(p.Lon), Lat: model.Degrees(p.Lat)}
		}

		return geom.Unproject(geom.Centroid(geom.ProjectLine(line))), true
	}

	return model.Point{}, false
}
