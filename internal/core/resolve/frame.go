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

// Package resolve implements the path resolver: given a
// starting vertex context and an attribute body, it walks locator chains,
// applies copy-and-bind at each step, and reports either a primitive datum,
// an object still to be dataized, or an atom ready to run.
package resolve

import "github.com/objectionary/phie/internal/core/phi"

// Frame is the current vertex context: the vertex whose
// attribute is being evaluated (This), plus the chain of frames that outer
// (𝜋/rho) and sigma (prior context) currently mean. Root is threaded
// unchanged from the top-level Dataize call.
//
// Outer and Sigma are themselves *Frame, not bare ids, because a chain such
// as "rho.rho" must be able to walk more than one level of binding history
// — the same reason the reference ecosystem's own evaluator links
// Environments with an Up pointer rather than flattening them to ids. A nil
// Outer or Sigma means that anchor is unbound in this context.
type Frame struct {
	This  phi.ID
	Root  phi.ID
	Outer *Frame
	Sigma *Frame
}

// Initial builds the Dataizer's starting frame: this = outer = root.
// Root's own outer is left unbound: the root has no caller.
func Initial(root phi.ID) Frame {
	r := &Frame{This: root, Root: root}
	return Frame{This: root, Root: root, Outer: r}
}

// rebind builds the frame produced by a copy or a copy-binding suffix:
// target becomes This, bind becomes the new Outer, and whatever Outer was
// active in fr becomes the new Sigma — the "prior context".
func (fr Frame) rebind(target phi.ID, bind Frame) Frame {
	b := bind
	nf := Frame{This: target, Root: fr.Root, Outer: &b}
	if fr.Outer != nil {
		s := *fr.Outer
		nf.Sigma = &s
	}
	return nf
}
