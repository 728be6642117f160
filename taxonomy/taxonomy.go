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

// Package taxonomy translates flat lists of POI subtypes into the
// category-keyed query spec understood by POI sources. The subtype table is
// static and shared read-only across requests.
package taxonomy

import (
	"encoding/json"
	"slices"
	"sort"
)

// Well-known category tokens.
const (
	CategoryAmenity        = "amenity"
	CategoryTourism        = "tourism"
	CategoryShop           = "shop"
	CategoryLeisure        = "leisure"
	CategoryPlaceOfWorship = "place_of_worship"

	// CategoryUnknown buckets requested subtypes absent from the table.
	CategoryUnknown = "unknown"
)

// subtypeCategories maps a subtype token to its category token. Never mutated
// at runtime.
var subtypeCategories = map[string]string{
	"art_centre":       CategoryTourism,
	"bakery":           CategoryAmenity,
	"bar":              CategoryAmenity,
	"biergarten":       CategoryAmenity,
	"bench":            CategoryAmenity,
	"books":            CategoryShop,
	"cafe":             CategoryAmenity,
	"castle":           CategoryTourism,
	"cinema":           CategoryAmenity,
	"church":           CategoryPlaceOfWorship,
	"clothes":          CategoryShop,
	"convenience":      CategoryShop,
	"dance":            CategoryLeisure,
	"drinking_water":   CategoryAmenity,
	"fast_food":        CategoryAmenity,
	"fountain":         CategoryAmenity,
	"gallery":          CategoryTourism,
	"garden":           CategoryLeisure,
	"ice_cream":        CategoryAmenity,
	"information":      CategoryTourism,
	"monument":         CategoryTourism,
	"museum":           CategoryTourism,
	"nature_reserve":   CategoryLeisure,
	"nightclub":        CategoryAmenity,
	"park":             CategoryLeisure,
	"pitch":            CategoryLeisure,
	"place_of_worship": CategoryPlaceOfWorship,
	"pub":              CategoryAmenity,
	"restaurant":       CategoryAmenity,
	"shop":             CategoryShop,
	"sports_centre":    CategoryLeisure,
	"stadium":          CategoryLeisure,
	"supermarket":      CategoryShop,
	"temple":           CategoryPlaceOfWorship,
	"toilets":          CategoryAmenity,
}

// defaultSubtypes is the tourism fallback used when no subtypes are
// requested, so the pipeline always has a non-empty POI query.
var defaultSubtypes = []string{"museum", "gallery", "monument", "information"}

// Selector restricts one category of a query spec: either the whole category
// is accepted or only the listed subtypes.
type Selector struct {
	All      bool
	Subtypes []string
}

// Matches reports whether the selector accepts the subtype.
func (s Selector) Matches(subtype string) bool {
	return s.All || slices.Contains(s.Subtypes, subtype)
}

// MarshalJSON renders the accept-all sentinel as true and a restricted
// selector as its subtype list.
func (s Selector) MarshalJSON() ([]byte, error) {
	if s.All {
		return json.Marshal(true)
	}

	return json.Marshal(s.Subtypes)
}

// QuerySpec maps a category token to the selector applied to it. Immutable
// after construction.
type QuerySpec map[string]Selector

// Categories returns the category tokens of the spec in sorted order.
func (q QuerySpec) Categories() []string {
	cats := make([]string, 0, len(q))
	for cat := range q {
		cats = append(cats, cat)
	}

	sort.Strings(cats)

	return cats
}

// Translate builds a query spec from the requested subtypes. Unknown subtypes
// fall into the unknown bucket, and an empty request defaults to the tourism
// subtypes. Requesting any shop subtype widens the selector to the whole shop
// category.
func Translate(subtypes []string) QuerySpec {
	spec := make(QuerySpec)

	if len(subtypes) == 0 {
		spec[CategoryTourism] = Selector{Subtypes: slices.Clone(defaultSubtypes)}

		return spec
	}

	for _, subtype := range subtypes {
		cat, ok := subtypeCategories[subtype]
		if !ok {
			cat = CategoryUnknown
		}

		sel := spec[cat]
		sel.Subtypes = append(sel.Subtypes, subtype)
		spec[cat] = sel
	}

	if _, ok := spec[CategoryShop]; ok {
		spec[CategoryShop] = Selector{All: true}
	}

	return spec
}
