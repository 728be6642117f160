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

import "errors"

var (
	// ErrUnresolvedLocation is returned when the geocoder finds no match for
	// the origin or destination name. Callers should prompt for different
	// locations.
	ErrUnresolvedLocation = errors.New("location could not be resolved")

	// ErrNoRouteCandidates is returned when the router yields no usable
	// candidate between the resolved anchors.
	ErrNoRouteCandidates = errors.New("no route candidates")
)
