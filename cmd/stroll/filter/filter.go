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

// Package filter implements the stroll filter command, which re-applies
// constraint hints to a previously saved summary document.
package filter

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"m4o.io/stroll"
	"m4o.io/stroll/cmd/stroll/cli"
	"m4o.io/stroll/model"
)

var (
	out io.Writer = os.Stdout

	doc *os.File
)

func init() {
	cli.RootCmd.AddCommand(filterCmd)

	flags := filterCmd.Flags()
	flags.Var(cli.NewReaderValue(os.Stdin, &doc, "file"), "doc", "summary document to filter (default stdin)")
	flags.String("time-hint", "", "free-text time constraint")
	flags.String("distance-hint", "", "free-text distance constraint")
}

var filterCmd = &cobra.Command{
	Use:   "filter",
	Short: "Apply constraint hints to a saved summary document",
	Long:  "Apply constraint hints to a saved summary document",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		flags := cmd.Flags()

		timeHint, _ := flags.GetString("time-hint")
		distanceHint, _ := flags.GetString("distance-hint")

		in, err := cli.WrapInputFile(doc)
		if err != nil {
			log.Fatal(err)
		}

		filtered, err := runFilter(in, timeHint, distanceHint)
		if err != nil {
			log.Fatal(err)
		}

		if err := in.Close(); err != nil {
			log.Fatal(err)
		}

		b, err := json.MarshalIndent(filtered, "", "  ")
		if err != nil {
			log.Fatal(err)
		}

		fmt.Fprintln(out, string(b))
	},
}

// runFilter decodes a summary document and prunes its annotations using the
// document's own origin/destination labels as constraint anchors.
func runFilter(in io.Reader, timeHint, distanceHint string) (*model.SummaryDocument, error) {
	var document model.SummaryDocument
	if err := json.NewDecoder(in).Decode(&document); err != nil {
		return nil, fmt.Errorf("decode summary document: %w", err)
	}

	spec := stroll.ParseConstraints(timeHint, distanceHint, document.From, document.To)

	return stroll.Filter(&document, spec), nil
}
