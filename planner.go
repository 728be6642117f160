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
	"context"
	"fmt"
	"log/slog"

	"m4o.io/stroll/model"
	"m4o.io/stroll/taxonomy"
)

// Request describes one enrichment invocation.
type Request struct {
	Origin      string
	Destination string

	// POITypes are the requested POI subtypes; empty falls back to the
	// tourism defaults.
	POITypes []string

	// TimeHint and DistanceHint are free-text constraint hints.
	TimeHint     string
	DistanceHint string
}

// Planner runs the enrichment pipeline against a set of collaborators. A
// single Planner may serve concurrent requests; all per-request state is
// owned by the Plan invocation.
type Planner struct {
	geocoder Geocoder
	router   Router
	pois     POISource
	opts     plannerOptions
}

// NewPlanner returns a planner using the given collaborators.
func NewPlanner(geocoder Geocoder, router Router, pois POISource, opts ...Option) *Planner {
	cfg := defaultPlannerConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Planner{geocoder: geocoder, router: router, pois: pois, opts: cfg}
}

// Plan runs the pipeline to completion for one request, returning the
// summary document and the subset of POIs still referenced by annotated
// segments, for map rendering.
//
// A geocoder miss surfaces as ErrUnresolvedLocation and an empty candidate
// list as ErrNoRouteCandidates, both distinct and errors.Is-able so callers
// can branch between "try different locations" and failure. Collaborator
// errors propagate unchanged; an empty POI set is not an error.
func (p *Planner) Plan(ctx context.Context, req Request) (*model.SummaryDocument, []model.POI, error) {
	origin, err := p.resolve(ctx, req.Origin)
	if err != nil {
		return nil, nil, err
	}

	dest, err := p.resolve(ctx, req.Destination)
	if err != nil {
		return nil, nil, err
	}

	routes, err := p.router.Route(ctx, origin, dest, p.opts.mode, p.opts.candidates)
	if err != nil {
		return nil, nil, fmt.Errorf("route %q to %q: %w", req.Origin, req.Destination, err)
	}

	if len(routes) == 0 {
		return nil, nil, fmt.Errorf("%w: %q to %q", ErrNoRouteCandidates, req.Origin, req.Destination)
	}

	route := routes[p.opts.policy(routes)]

	spec := taxonomy.Translate(req.POITypes)
	slog.Debug("translated POI request", "spec", spec)

	region := model.InitialBoundingBox()
	region.ExpandWithPoint(origin)
	region.ExpandWithPoint(dest)
	region.ExpandWithMargin(p.opts.fetchMargin)

	pois, err := p.pois.Fetch(ctx, *region, spec)
	if err != nil {
		return nil, nil, fmt.Errorf("fetch POIs: %w", err)
	}

	rows := Associate(&route, pois, p.opts.bufferRadiusM)

	doc := Aggregate(&route, rows, spec.Categories(), p.opts.walkingSpeed, req.Origin, req.Destination)
	slog.Debug("aggregated route", "route_id", doc.RouteID, "segments", len(doc.Segments),
		"length_m", doc.LengthTotM, "time_min", doc.TimeToWalkTotMin)

	constraints := ParseConstraints(req.TimeHint, req.DistanceHint, req.Origin, req.Destination)
	doc = Filter(doc, constraints)

	return doc, poiSubset(doc, rows), nil
}

func (p *Planner) resolve(ctx context.Context, name string) (model.Point, error) {
	point, found, err := p.geocoder.Resolve(ctx, name)
	if err != nil {
		return model.Point{}, fmt.Errorf("geocode %q: %w", name, err)
	}

	if !found {
		return model.Point{}, fmt.Errorf("%w: %q", ErrUnresolvedLocation, name)
	}

	return point, nil
}

// poiSubset collects the POIs joined to segments whose annotations survived
// filtering, deduplicated by id. This is the companion artifact consumed by
// the map renderer.
func poiSubset(doc *model.SummaryDocument, rows []Association) []model.POI {
	annotated := make(map[int]bool, len(doc.Segments))
	for _, seg := range doc.Segments {
		annotated[seg.SegmentID] = len(seg.POIs) > 0
	}

	seen := make(map[int64]struct{})

	var subset []model.POI

	for _, row := range rows {
		if row.POI == nil || !annotated[row.SegmentID] {
			continue
		}

		if _, dup := seen[row.POI.ID]; dup {
			continue
		}
		seen[row.POI.ID] = struct{}{}

		subset = append(subset, *row.POI)
	}

	return subset
}
