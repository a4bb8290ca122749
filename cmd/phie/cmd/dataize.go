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

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/objectionary/phie"
	"github.com/objectionary/phie/internal/demo"
)

func newDataizeCmd() *cobra.Command {
	var steps int
	c := &cobra.Command{
		Use:   "dataize",
		Short: "Dataize the bundled self-add demo Universe",
		RunE: func(c *cobra.Command, args []string) error {
			u := demo.SelfAdd()
			rt := phie.NewRuntime()
			rt.StepLimit = steps
			rt.Sink = c.OutOrStdout()
			word, cycles, err := phie.Dataize(rt, u)
			if err != nil {
				return err
			}
			fmt.Fprintf(c.OutOrStdout(), "%d (%d cycles)\n", word, cycles)
			return nil
		},
	}
	c.Flags().IntVar(&steps, "steps", 0, "cap the dataizer's step count (0 means unbounded)")
	return c
}
