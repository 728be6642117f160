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

// Package nominatim geocodes place names via the OSM Nominatim search API.
package nominatim

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"m4o.io/stroll/model"
)

// DefaultBaseURL is the public Nominatim instance.
const DefaultBaseURL = "https://nominatim.openstreetmap.org"

const defaultUserAgent = "stroll/1.0"

// Client resolves place names against a Nominatim endpoint.
type Client struct {
	baseURL   string
	userAgent string
	httpc     *http.Client
}

// Option configures how we set up the client.
type Option func(*Client)

// WithBaseURL lets you target a non-default Nominatim instance.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = u
	}
}

// WithUserAgent lets you set the User-Agent header, which public Nominatim
// instances require to identify the application.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// WithHTTPClient lets you supply the http.Client used for requests.
func WithHTTPClient(httpc *http.Client) Option {
	return func(c *Client) {
		c.httpc = httpc
	}
}

// New returns a Nominatim geocoder client.
func New(opts ...Option) *Client {
	c := &Client{
		baseURL:   DefaultBaseURL,
		userAgent: defaultUserAgent,
		httpc:     http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

type searchResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Resolve geocodes a place name to a point. A name with no match returns
// found=false; transport and decoding failures propagate as errors.
func (c *Client) Resolve(ctx context.Context, name string) (model.Point, bool, error) {
	query := url.Values{}
	query.Set("q", name)
	query.Set("format", "json")
	query.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/search?"+query.Encode(), nil)
	if err != nil {
		return model.Point{}, false, err
	}

	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return model.Point{}, false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return model.Point{}, false, fmt.Errorf("nominatim: unexpected status %s", resp.Status)
	}

	var results []searchResult
	if err = json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return model.Point{}, false, fmt.Errorf("nominatim: decode response: %w", err)
	}

	if len(results) == 0 {
		return model.Point{}, false, nil
	}

	lat, err := model.ParseDegrees(results[0].Lat)
	if err != nil {
		return model.Point{}, false, fmt.Errorf("nominatim: bad latitude %q: %w", results[0].Lat, err)
	}

	lon, err := model.ParseDegrees(results[0].Lon)
	if err != nil {
		return model.Point{}, false, fmt.Errorf("nominatim: bad longitude %q: %w", results[0].Lon, err)
	}

	return model.Point{Lon: lon, Lat: lat}, true, nil
}
