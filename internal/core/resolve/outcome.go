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

package resolve

import "github.com/objectionary/phie/internal/core/phi"

// Kind discriminates the three shapes an Outcome can take.
type Kind uint8

const (
	// KindDatum means resolution reached a primitive word; evaluation halts.
	KindDatum Kind = iota
	// KindVertex means resolution reached an object that must itself be
	// dataized in the given Frame.
	KindVertex
	// KindAtomCall means resolution reached an atom ready to run.
	KindAtomCall
)

// Outcome is the result of Resolve.
type Outcome struct {
	Kind Kind

	Word uint64 // valid when Kind == KindDatum

	Vertex phi.ID // valid when Kind == KindVertex or KindAtomCall (as receiver)
	Frame  Frame  // valid when Kind == KindVertex or KindAtomCall

	Atom string // valid when Kind == KindAtomCall
}

func datum(w uint64) Outcome                    { return Outcome{Kind: KindDatum, Word: w} }
func vertex(id phi.ID, fr Frame) Outcome         { return Outcome{Kind: KindVertex, Vertex: id, Frame: fr} }
func atomCall(name string, id phi.ID, fr Frame) Outcome {
	return Outcome{Kind: KindAtomCall, Atom: name, Vertex: id, Frame: fr}
}
