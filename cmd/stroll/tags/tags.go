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

// Package tags implements the stroll tags command, which prints the tag
// query spec a list of POI subtypes translates to.
package tags

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"m4o.io/stroll/cmd/stroll/cli"
	"m4o.io/stroll/taxonomy"
)

var out io.Writer = os.Stdout

func init() {
	cli.RootCmd.AddCommand(tagsCmd)
}

var tagsCmd = &cobra.Command{
	Use:   "tags [<subtype>...]",
	Short: "Show the tag query spec for POI subtypes",
	Long:  "Show the tag query spec for POI subtypes",
	Run: func(cmd *cobra.Command, args []string) {
		spec := taxonomy.Translate(args)

		b, err := json.MarshalIndent(spec, "", "  ")
		if err != nil {
			log.Fatal(err)
		}

		fmt.Fprintln(out, string(b))
	},
}
