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

package taxonomy_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"m4o.io/stroll/taxonomy"
)

func TestTranslate(t *testing.T) {
	test_cases := []struct {
		name     string
		subtypes []string
		expected taxonomy.QuerySpec
	}{
		{
			"mixed categories",
			[]string{"museum", "restaurant"},
			taxonomy.QuerySpec{
				"tourism": {Subtypes: []string{"museum"}},
				"amenity": {Subtypes: []string{"restaurant"}},
			},
		},
		{
			"empty defaults to tourism",
			nil,
			taxonomy.QuerySpec{
				"tourism": {Subtypes: []string{"museum", "gallery", "monument", "information"}},
			},
		},
		{
			"unknown subtype",
			[]string{"unknowntype"},
			taxonomy.QuerySpec{
				"unknown": {Subtypes: []string{"unknowntype"}},
			},
		},
		{
			"any shop subtype widens to the whole category",
			[]string{"books", "museum"},
			taxonomy.QuerySpec{
				"shop":    {All: true},
				"tourism": {Subtypes: []string{"museum"}},
			},
		},
		{
			"multiple subtypes share a category",
			[]string{"cafe", "bar", "garden"},
			taxonomy.QuerySpec{
				"amenity": {Subtypes: []string{"cafe", "bar"}},
				"leisure": {Subtypes: []string{"garden"}},
			},
		},
	}

	for _, tc := range test_cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, taxonomy.Translate(tc.subtypes))
		})
	}
}

func TestQuerySpec_Categories(t *testing.T) {
	spec := taxonomy.Translate([]string{"museum", "restaurant", "books", "unknowntype"})

	assert.Equal(t, []string{"amenity", "shop", "tourism", "unknown"}, spec.Categories())
}

func TestSelector_Matches(t *testing.T) {
	restricted := taxonomy.Selector{Subtypes: []string{"museum", "gallery"}}
	assert.True(t, restricted.Matches("museum"))
	assert.False(t, restricted.Matches("castle"))

	all := taxonomy.Selector{All: true}
	assert.True(t, all.Matches("anything"))
}

func TestSelector_MarshalJSON(t *testing.T) {
	spec := taxonomy.Translate([]string{"books", "museum"})

	b, err := json.Marshal(spec)
	assert.NoError(t, err)
	assert.JSONEq(t, `{"shop": true, "tourism": ["museum"]}`, string(b))
}
