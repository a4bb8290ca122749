// Copyright 2024 The Phie Authors
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

// Package cmd assembles the phie command tree: a root command plus the
// dataize and fib subcommands, each built with spf13/cobra and flagged
// with spf13/pflag.
package cmd

import (
	"github.com/spf13/cobra"
)

// Root builds the top-level phie command, with dataize and fib wired in as
// subcommands.
func Root() *cobra.Command {
	root := &cobra.Command{
		Use:           "phie",
		Short:         "An experimental dataizer for the 𝜑-calculus object model",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newDataizeCmd())
	root.AddCommand(newFibCmd())
	return root
}
