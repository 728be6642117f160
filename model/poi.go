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

package model

import (
	"encoding/json"
	"fmt"
	"slices"
)

// POI represents one real-world point or area of interest, reduced to a
// representative point. Category and Subtype carry the tag values under which
// the record matched the query spec.
type POI struct {
	ID       int64  `json:"id"`
	Name     string `json:"name,omitempty"`
	Category string `json:"category"`
	Subtype  string `json:"subtype"`
	Location Point  `json:"location"`
}

// Annotation is the per-subtype POI evidence of a segment: either a count of
// unnamed occurrences or a list of distinct names, never both. Once a name is
// recorded the count is discarded and later nameless occurrences are ignored.
type Annotation struct {
	Count int
	Names []string
}

// Record folds one occurrence into the annotation, applying the
// upgrade-on-first-name rule.
func (a *Annotation) Record(name string) {
	if name == "" {
		if len(a.Names) == 0 {
			a.Count++
		}

		return
	}

	if !slices.Contains(a.Names, name) {
		a.Names = append(a.Names, name)
	}

	a.Count = 0
}

// MarshalJSON emits either the name list or the bare count, matching the
// contract expected by the summarizer and map renderer.
func (a Annotation) MarshalJSON() ([]byte, error) {
	if len(a.Names) > 0 {
		return json.Marshal(a.Names)
	}

	return json.Marshal(a.Count)
}

func (a *Annotation) UnmarshalJSON(b []byte) error {
	var count int
	if err := json.Unmarshal(b, &count); err == nil {
		*a = Annotation{Count: count}

		return nil
	}

	var names []string
	if err := json.Unmarshal(b, &names); err != nil {
		return fmt.Errorf("annotation is neither a count nor a name list: %w", err)
	}

	*a = Annotation{Names: names}

	return nil
}

// Annotations aggregates POI evidence per category and subtype for one
// segment.
type Annotations map[string]map[string]*Annotation

// Record folds one POI occurrence into the category/subtype bucket.
func (m Annotations) Record(category, subtype, name string) {
	bucket, ok := m[category]
	if !ok {
		bucket = make(map[string]*Annotation)
		m[category] = bucket
	}

	ann, ok := bucket[subtype]
	if !ok {
		ann = &Annotation{}
		bucket[subtype] = ann
	}

	ann.Record(name)
}
