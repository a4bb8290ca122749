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

// Package runtime holds the long-lived state a caller constructs once and
// reuses across Dataize calls: the atom registry, the step cap, the write
// sink, and an optional evaluation trace.
package runtime

import (
	"io"
	"os"

	"github.com/objectionary/phie/internal/core/atom"
)

// Runtime is passed to eval.Dataize. The zero value is not usable; build
// one with New.
type Runtime struct {
	atoms map[string]atom.Func

	// StepLimit caps the dataizer's step counter. Zero means unbounded.
	StepLimit int

	// Sink receives the write atom's side effect. Defaults to os.Stdout.
	Sink io.Writer

	// Trace, if non-nil, receives one line per resolver/dataizer state
	// transition, making the dataizer's state machine observable.
	Trace io.Writer
}

// New returns a Runtime pre-populated with the fixed built-in atoms and a
// default Sink of os.Stdout.
func New() *Runtime {
	rt := &Runtime{atoms: make(map[string]atom.Func), Sink: os.Stdout}
	for name, fn := range atom.Builtins() {
		rt.atoms[name] = fn
	}
	return rt
}

// RegisterAtom adds or replaces an entry in the registry. The registry is
// closed to the resolver and dataizer, which only ever look atoms up by
// name; this is the single extension point, exercised
// in-process only, never by an external plugin mechanism.
func (rt *Runtime) RegisterAtom(name string, fn atom.Func) {
	rt.atoms[name] = fn
}

// Atom looks up an atom by name.
func (rt *Runtime) Atom(name string) (atom.Func, bool) {
	fn, ok := rt.atoms[name]
	return fn, ok
}
