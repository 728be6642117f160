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
	"m4o.io/stroll/model"
)

const (
	// DefaultBufferRadiusM is the planar buffer radius, in meters, used when
	// associating segments with POIs.
	DefaultBufferRadiusM = 100.0

	// DefaultWalkingSpeedMPerMin is the average walking speed used to derive
	// times from distances, roughly 1.39 m/s.
	DefaultWalkingSpeedMPerMin = 83.0

	// DefaultFetchMargin is the margin, in degrees, by which the POI fetch
	// region extends past the origin/destination bounding box. Independent of
	// the association buffer radius.
	DefaultFetchMargin model.Degrees = 0.01

	// DefaultCandidates is the number of route candidates requested from the
	// routing provider.
	DefaultCandidates = 1

	// DefaultTravelMode is the routing profile requested from the provider.
	DefaultTravelMode = "foot"
)

// plannerOptions provides optional configuration parameters for Planner
// construction.
type plannerOptions struct {
	bufferRadiusM float64
	walkingSpeed  float64
	fetchMargin   model.Degrees
	candidates    int
	mode          string
	policy        CandidatePolicy
}

// Option configures how we set up the planner.
type Option func(*plannerOptions)

// WithBufferRadius lets you set the planar buffer radius, in meters, for
// segment/POI association.
func WithBufferRadius(meters float64) Option {
	return func(o *plannerOptions) {
		o.bufferRadiusM = meters
	}
}

// WithWalkingSpeed lets you set the walking speed, in meters per minute, used
// to derive times.
func WithWalkingSpeed(metersPerMin float64) Option {
	return func(o *plannerOptions) {
		o.walkingSpeed = metersPerMin
	}
}

// WithFetchMargin lets you set the margin, in degrees, added around the POI
// fetch region.
func WithFetchMargin(margin model.Degrees) Option {
	return func(o *plannerOptions) {
		o.fetchMargin = margin
	}
}

// WithCandidates lets you set how many route candidates are requested from
// the routing provider.
func WithCandidates(n int) Option {
	return func(o *plannerOptions) {
		o.candidates = n
	}
}

// WithTravelMode lets you set the routing profile requested from the
// provider.
func WithTravelMode(mode string) Option {
	return func(o *plannerOptions) {
		o.mode = mode
	}
}

// WithCandidatePolicy lets you set the policy that selects one route among
// the candidates.
func WithCandidatePolicy(policy CandidatePolicy) Option {
	return func(o *plannerOptions) {
		o.policy = policy
	}
}

// defaultPlannerConfig provides a default configuration for planners.
var defaultPlannerConfig = plannerOptions{
	bufferRadiusM: DefaultBufferRadiusM,
	walkingSpeed:  DefaultWalkingSpeedMPerMin,
	fetchMargin:   DefaultFetchMargin,
	candidates:    DefaultCandidates,
	mode:          DefaultTravelMode,
	policy:        SelectFirst,
}
