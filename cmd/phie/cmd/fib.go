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
	"github.com/objectionary/phie/internal/core/debug"
	"github.com/objectionary/phie/internal/demo"
)

func newFibCmd() *cobra.Command {
	var n uint64
	var repeat int
	var trace bool
	c := &cobra.Command{
		Use:   "fib",
		Short: "Dataize the bundled recursive Fibonacci Universe",
		RunE: func(c *cobra.Command, args []string) error {
			u := demo.Fibonacci(n)
			rt := phie.NewRuntime()
			rt.Sink = c.OutOrStdout()
			if trace {
				rt.Trace = c.ErrOrStderr()
			}
			if repeat < 1 {
				repeat = 1
			}
			var word uint64
			var cycles int
			var err error
			for i := 0; i < repeat; i++ {
				word, cycles, err = phie.Dataize(rt, u)
				if err != nil {
					return err
				}
			}
			fmt.Fprintf(c.OutOrStdout(), "fib(%d) = %d (%d cycles on the last run, %d runs)\n",
				n, word, cycles, repeat)
			if trace {
				fmt.Fprint(c.ErrOrStderr(), debug.Universe(u))
			}
			return nil
		},
	}
	c.Flags().Uint64Var(&n, "n", 7, "which Fibonacci number to compute")
	c.Flags().IntVar(&repeat, "repeat", 1, "dataize the Universe this many times")
	c.Flags().BoolVar(&trace, "trace", false, "print a resolver/dataizer trace to stderr")
	return c
}
