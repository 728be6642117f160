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

// Package cli holds the shared pieces of the stroll command hierarchy.
package cli

import (
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var verbose bool

// RootCmd is the root of the stroll command hierarchy. Subcommands register
// themselves in their init functions.
var RootCmd = &cobra.Command{
	Use:   "stroll",
	Short: "Annotate walking routes with nearby points of interest",
	Long: `stroll builds a segment-by-segment walking route summary, annotated
with nearby points of interest, cumulative distance and time, and optional
time/distance constraints parsed from free text.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// API keys and endpoint overrides come from the environment.
		if err := godotenv.Load(); err == nil {
			slog.Debug("loaded .env")
		}

		if verbose {
			slog.SetLogLoggerLevel(slog.LevelDebug)
		}
	},
}

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}
