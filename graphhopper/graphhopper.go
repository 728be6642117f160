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

// Package graphhopper computes route candidates via the GraphHopper routing
// API. Each instruction interval of a returned path becomes one segment, so
// the segment order is the navigation order.
package graphhopper

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"m4o.io/stroll/model"
)

// DefaultBaseURL is the hosted GraphHopper API.
const DefaultBaseURL = "https://graphhopper.com/api/1"

// Client requests routes from a GraphHopper endpoint.
type Client struct {
	baseURL string
	apiKey  string
	httpc   *http.Client
}

// Option configures how we set up the client.
type Option func(*Client)

// WithBaseURL lets you target a self-hosted GraphHopper instance.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = u
	}
}

// WithHTTPClient lets you supply the http.Client used for requests.
func WithHTTPClient(httpc *http.Client) Option {
	return func(c *Client) {
		c.httpc = httpc
	}
}

// New returns a GraphHopper router client.
func New(apiKey string, opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		apiKey:  apiKey,
		httpc:   http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

type routeResponse struct {
	Message string `json:"message"`
	Paths   []path `json:"paths"`
}

type path struct {
	Points struct {
		Coordinates [][]float64 `json:"coordinates"`
	} `json:"points"`
	Instructions []instruction `json:"instructions"`
}

type instruction struct {
	Text     string `json:"text"`
	Interval []int  `json:"interval"`
}

// Route requests up to n candidate routes between origin and dest for the
// given profile. Provider failures propagate unchanged; the client does not
// retry.
func (c *Client) Route(ctx context.Context, origin, dest model.Point, mode string, n int) ([]model.Route, error) {
	query := url.Values{}
	query.Add("point", formatPoint(origin))
	query.Add("point", formatPoint(dest))
	query.Set("profile", mode)
	query.Set("points_encoded", "false")
	query.Set("instructions", "true")
	query.Set("key", c.apiKey)

	if n > 1 {
		query.Set("algorithm", "alternative_route")
		query.Set("alternative_route.max_paths", strconv.Itoa(n))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/route?"+query.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var decoded routeResponse
	if err = json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("graphhopper: decode response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("graphhopper: %s: %s", resp.Status, decoded.Message)
	}

	routes := make([]model.Route, 0, len(decoded.Paths))
	for i, p := range decoded.Paths {
		routes = append(routes, buildRoute(int64(i), p))
	}

	return routes, nil
}

// buildRoute slices the path geometry into per-instruction segments. The
// final "arrive" instruction spans a single point; its zero-length segment is
// kept so the destination remains addressable downstream.
func buildRoute(id int64, p path) model.Route {
	coords := make(model.LineString, len(p.Points.Coordinates))
	for i, c := range p.Points.Coordinates {
		coords[i] = model.Point{Lon: model.Degrees(c[0]), Lat: model.Degrees(c[1])}
	}

	route := model.Route{ID: id}

	for _, ins := range p.Instructions {
		if len(ins.Interval) != 2 {
			continue
		}

		from := max(0, ins.Interval[0])
		to := min(len(coords)-1, ins.Interval[1])

		if from > to {
			continue
		}

		route.Segments = append(route.Segments, model.Segment{
			ID:          len(route.Segments),
			Geometry:    append(model.LineString(nil), coords[from:to+1]...),
			Instruction: ins.Text,
		})
	}

	return route
}

func formatPoint(p model.Point) string {
	return strconv.FormatFloat(float64(p.Lat), 'f', -1, 64) + "," +
		strconv.FormatFloat(float64(p.Lon), 'f', -1, 64)
}
