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

// Package plan implements the stroll plan command, which runs the enrichment
// pipeline end to end against the live collaborators.
package plan

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	humanize "github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"m4o.io/stroll"
	"m4o.io/stroll/cmd/stroll/cli"
	"m4o.io/stroll/graphhopper"
	"m4o.io/stroll/internal/respcache"
	"m4o.io/stroll/model"
	"m4o.io/stroll/nominatim"
	"m4o.io/stroll/overpass"
)

var out io.Writer = os.Stdout

// policies are the named candidate selection policies.
var policies = map[string]stroll.CandidatePolicy{
	"first":        stroll.SelectFirst,
	"shortest":     stroll.SelectShortest,
	"fewest-turns": stroll.SelectFewestTurns,
}

func init() {
	cli.RootCmd.AddCommand(planCmd)

	flags := planCmd.Flags()
	flags.String("from", "", "origin place name")
	flags.String("to", "", "destination place name")
	flags.StringSliceP("poi", "p", nil, "requested POI subtypes (e.g. museum,restaurant)")
	flags.String("time-hint", "", "free-text time constraint")
	flags.String("distance-hint", "", "free-text distance constraint")
	flags.IntP("candidates", "n", stroll.DefaultCandidates, "number of route candidates to request")
	flags.String("policy", "first", "candidate selection policy (first|shortest|fewest-turns)")
	flags.Float64("buffer", stroll.DefaultBufferRadiusM, "association buffer radius in meters")
	flags.BoolP("json", "j", false, "emit the summary document as JSON")
	flags.String("pois-out", "", "write the map-renderer POI subset to this file")

	_ = planCmd.MarkFlagRequired("from")
	_ = planCmd.MarkFlagRequired("to")
}

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Plan and annotate a walking route",
	Long:  "Plan and annotate a walking route",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		flags := cmd.Flags()

		from, _ := flags.GetString("from")
		to, _ := flags.GetString("to")
		poiTypes, _ := flags.GetStringSlice("poi")
		timeHint, _ := flags.GetString("time-hint")
		distanceHint, _ := flags.GetString("distance-hint")
		candidates, _ := flags.GetInt("candidates")
		policyName, _ := flags.GetString("policy")
		buffer, _ := flags.GetFloat64("buffer")
		jsonfmt, _ := flags.GetBool("json")
		poisOut, _ := flags.GetString("pois-out")

		policy, ok := policies[policyName]
		if !ok {
			log.Fatalf("unknown candidate policy %q", policyName)
		}

		apiKey := os.Getenv("GRAPHHOPPER_API_KEY")
		if apiKey == "" {
			log.Fatal("GRAPHHOPPER_API_KEY environment variable is not set")
		}

		planner := stroll.NewPlanner(
			newGeocoder(),
			newRouter(apiKey),
			newPOISource(),
			stroll.WithBufferRadius(buffer),
			stroll.WithCandidates(candidates),
			stroll.WithCandidatePolicy(policy),
		)

		doc, pois, err := planner.Plan(context.Background(), stroll.Request{
			Origin:       from,
			Destination:  to,
			POITypes:     poiTypes,
			TimeHint:     timeHint,
			DistanceHint: distanceHint,
		})

		switch {
		case errors.Is(err, stroll.ErrUnresolvedLocation):
			log.Fatalf("try again, the locations could not be found: %v", err)
		case errors.Is(err, stroll.ErrNoRouteCandidates):
			log.Fatalf("no walkable route found: %v", err)
		case err != nil:
			log.Fatal(err)
		}

		if poisOut != "" {
			if err := writeJSON(poisOut, pois); err != nil {
				log.Fatal(err)
			}
		}

		if jsonfmt {
			renderJSON(doc)
		} else {
			renderTxt(doc, len(pois))
		}
	},
}

func newGeocoder() *nominatim.Client {
	var opts []nominatim.Option
	if u := os.Getenv("NOMINATIM_URL"); u != "" {
		opts = append(opts, nominatim.WithBaseURL(u))
	}

	return nominatim.New(opts...)
}

func newRouter(apiKey string) *graphhopper.Client {
	var opts []graphhopper.Option
	if u := os.Getenv("GRAPHHOPPER_URL"); u != "" {
		opts = append(opts, graphhopper.WithBaseURL(u))
	}

	return graphhopper.New(apiKey, opts...)
}

func newPOISource() *overpass.Client {
	var opts []overpass.Option
	if u := os.Getenv("OVERPASS_URL"); u != "" {
		opts = append(opts, overpass.WithEndpoint(u))
	}

	if dir := os.Getenv("STROLL_CACHE_DIR"); dir != "" {
		cache, err := respcache.New(dir, 24*time.Hour)
		if err != nil {
			log.Fatal(err)
		}

		opts = append(opts, overpass.WithCache(cache))
	}

	return overpass.New(opts...)
}

func writeJSON(path string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, b, 0o644)
}

func renderJSON(doc *model.SummaryDocument) {
	b, err := json.Marshal(doc)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Fprintln(out, string(b))
}

func renderTxt(doc *model.SummaryDocument, poiCount int) {
	fmt.Fprintf(out, "Route %d: %s -> %s\n", doc.RouteID, doc.From, doc.To)
	fmt.Fprintf(out, "Length: %s m, time to walk: %s min\n",
		humanize.Commaf(doc.LengthTotM), humanize.Commaf(doc.TimeToWalkTotMin))

	for _, seg := range doc.Segments {
		fmt.Fprintf(out, "%3d. %s", seg.SegmentID, seg.Instruction)

		if n := annotationCount(seg); n > 0 {
			fmt.Fprintf(out, "  [%d POI entries]", n)
		}

		fmt.Fprintln(out)
	}

	fmt.Fprintf(out, "POIs for rendering: %s\n", humanize.Comma(int64(poiCount)))
}

func annotationCount(seg model.SegmentSummary) int {
	var n int
	for _, bucket := range seg.POIs {
		n += len(bucket)
	}

	return n
}
