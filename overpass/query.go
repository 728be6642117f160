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

package overpass

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"m4o.io/stroll/model"
	"m4o.io/stroll/taxonomy"
)

// buildQuery renders one Overpass QL query for a category selector. Nodes
// and ways are both requested; "out center" gives ways a representative
// point alongside their tags.
func buildQuery(region model.BoundingBox, category string, sel taxonomy.Selector) string {
	filter := tagFilter(category, sel)
	bbox := formatBBox(region)

	return fmt.Sprintf("[out:json][timeout:25];(node%s(%s);way%s(%s););out center;",
		filter, bbox, filter, bbox)
}

func tagFilter(category string, sel taxonomy.Selector) string {
	if sel.All {
		return fmt.Sprintf("[%q]", category)
	}

	escaped := make([]string, len(sel.Subtypes))
	for i, subtype := range sel.Subtypes {
		escaped[i] = regexp.QuoteMeta(subtype)
	}

	return fmt.Sprintf("[%q~\"^(%s)$\"]", category, strings.Join(escaped, "|"))
}

// formatBBox renders the region in Overpass south,west,north,east order.
func formatBBox(region model.BoundingBox) string {
	return strings.Join([]string{
		formatDegrees(region.Bottom),
		formatDegrees(region.Left),
		formatDegrees(region.Top),
		formatDegrees(region.Right),
	}, ",")
}

func formatDegrees(d model.Degrees) string {
	return strconv.FormatFloat(float64(d), 'f', -1, 64)
}
