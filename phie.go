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

// Package phie is the public façade over the 𝜑-calculus dataization core:
// build a Universe, populate it (by hand or with internal/core/phi's
// VertexBuilder), and Dataize it against a Runtime.
package phie

import (
	"github.com/objectionary/phie/errors"
	"github.com/objectionary/phie/internal/core/eval"
	"github.com/objectionary/phie/internal/core/phi"
	"github.com/objectionary/phie/internal/core/runtime"
)

// Universe is a graph of vertices indexed by id. See internal/core/phi for
// the underlying data model.
type Universe = phi.Universe

// Vertex is a single object: a map from attribute name to attribute body.
type Vertex = phi.Vertex

// ID identifies a vertex within a Universe.
type ID = phi.ID

// Runtime holds the atom registry, step cap, write sink and trace used
// across one or more Dataize calls.
type Runtime = runtime.Runtime

// NewUniverse returns an empty Universe.
func NewUniverse() *Universe {
	return phi.NewUniverse()
}

// NewRuntime returns a Runtime pre-populated with the built-in atoms.
func NewRuntime() *Runtime {
	return runtime.New()
}

// Dataize reduces u's root vertex to a primitive machine word, using rt's
// atom registry, step cap, sink and trace. It returns the resulting word,
// the number of resolver/dataizer steps taken, and the first error
// encountered while unwinding the evaluation stack, if any.
func Dataize(rt *Runtime, u *Universe) (uint64, int, error) {
	word, cycles, err := eval.Dataize(rt, u)
	if err != nil {
		return word, cycles, err
	}
	return word, cycles, nil
}

// Validate checks u against the static invariants (delta and
// lambda are mutually exclusive, every absolute locator target exists) and
// returns one error per violation found.
func Validate(u *Universe) []error {
	list := phi.Validate(u)
	if len(list) == 0 {
		return nil
	}
	out := make([]error, len(list))
	for i, e := range list {
		out[i] = e
	}
	return out
}

// IsKind reports whether err is a phie error of the given kind name, one of
// the errors.Kind constants' String() forms ("MissingVertex",
// "AttributeNotFound", and so on). It exists so callers that only import
// the phie façade, not the errors package, can still branch on error kind.
func IsKind(err error, kind string) bool {
	var e errors.Error
	if ce, ok := err.(errors.Error); ok {
		e = ce
	} else {
		return false
	}
	return e.Kind().String() == kind
}
