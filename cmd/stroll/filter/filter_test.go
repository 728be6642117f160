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

package filter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const documentFixture = `{
	"route_id": 0,
	"from": "Notre-Dame, Paris",
	"to": "Louvre museum, Paris",
	"length_tot_m": 300,
	"time_to_walk_tot_min": 3.61,
	"segments": [
		{
			"segment_id": 0,
			"instruction": "Head east for 100 meters",
			"POIs": {"tourism": {"museum": ["Louvre"]}},
			"time_from_origin_min": 1.2,
			"time_to_destination_min": 2.41,
			"distance_from_origin_m": 100,
			"distance_to_destination_m": 200
		},
		{
			"segment_id": 1,
			"instruction": "Continue for 100 meters",
			"POIs": {"tourism": {"museum": ["Louvre"]}},
			"time_from_origin_min": 2.41,
			"time_to_destination_min": 1.2,
			"distance_from_origin_m": 200,
			"distance_to_destination_m": 100
		}
	]
}`

func TestRunFilter(t *testing.T) {
	doc, err := runFilter(strings.NewReader(documentFixture), "", "within 150 meters")

	require.NoError(t, err)
	require.Len(t, doc.Segments, 2)
	assert.NotEmpty(t, doc.Segments[0].POIs)
	assert.Empty(t, doc.Segments[1].POIs)
	assert.Equal(t, "Notre-Dame, Paris", doc.From)
	assert.InDelta(t, 300.0, doc.LengthTotM, 1e-9)
}

func TestRunFilter_AnchorHint(t *testing.T) {
	// "near the Louvre" names the destination, so the default time limit kicks
	// in; both segments sit well under five minutes
	doc, err := runFilter(strings.NewReader(documentFixture), "near the Louvre", "")

	require.NoError(t, err)
	assert.NotEmpty(t, doc.Segments[0].POIs)
	assert.NotEmpty(t, doc.Segments[1].POIs)
}

func TestRunFilter_BadDocument(t *testing.T) {
	_, err := runFilter(strings.NewReader("not json"), "", "")

	assert.ErrorContains(t, err, "decode summary document")
}
