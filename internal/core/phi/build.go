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

package phi

// VertexBuilder assembles a Vertex attribute by attribute. It stands in for
// the text-syntax parser, which is treated as an external collaborator
// out of scope for this module: callers that would otherwise hand a parsed
// AST to the Universe instead call a VertexBuilder directly.
type VertexBuilder struct {
	in *Interner
	v  Vertex
}

// NewBuilder starts an empty vertex whose labelled attributes will be
// interned against in.
func NewBuilder(in *Interner) *VertexBuilder {
	return &VertexBuilder{in: in, v: NewVertex()}
}

// Set attaches body under the textual attribute name, classifying it into
// the special, positional, or labelled category via ParseName.
func (b *VertexBuilder) Set(name string, body Body) *VertexBuilder {
	b.v.Attrs[ParseName(b.in, name)] = body
	return b
}

// Delta is shorthand for Set("delta", Data{Word: w}).
func (b *VertexBuilder) Delta(w uint64) *VertexBuilder {
	return b.Set("delta", Data{Word: w})
}

// Lambda is shorthand for Set("lambda", Atom{Name: name}).
func (b *VertexBuilder) Lambda(name string) *VertexBuilder {
	return b.Set("lambda", Atom{Name: name})
}

// Phi is shorthand for Set("phi", body).
func (b *VertexBuilder) Phi(body Body) *VertexBuilder {
	return b.Set("phi", body)
}

// Arg is shorthand for Set("aN", body).
func (b *VertexBuilder) Arg(i uint32, body Body) *VertexBuilder {
	b.v.Attrs[Positional(i)] = body
	return b
}

// Build returns the assembled vertex. The builder may not be reused
// afterwards.
func (b *VertexBuilder) Build() Vertex {
	return b.v
}
