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

// Vertex is one node in the object graph: a mapping from attribute name to
// attribute body. Attrs is a Go map, so iteration order is not defined;
// Name.Less gives positional names their numeric order. Vertices are immutable once inserted
// into a Universe; transient copies overlay only the outer/sigma anchors
// (see internal/core/resolve) and never mutate a Vertex's Attrs.
type Vertex struct {
	Attrs map[Name]Body
}

// NewVertex returns an empty vertex.
func NewVertex() Vertex {
	return Vertex{Attrs: make(map[Name]Body)}
}

// Lookup returns the body bound to n, if any.
func (v Vertex) Lookup(n Name) (Body, bool) {
	b, ok := v.Attrs[n]
	return b, ok
}

// Delta returns the vertex's delta datum, if it has one.
func (v Vertex) Delta() (uint64, bool) {
	b, ok := v.Attrs[DeltaName]
	if !ok {
		return 0, false
	}
	d, ok := b.(Data)
	return d.Word, ok
}

// Lambda returns the vertex's atom name, if it has one.
func (v Vertex) Lambda() (string, bool) {
	b, ok := v.Attrs[LambdaName]
	if !ok {
		return "", false
	}
	a, ok := b.(Atom)
	return a.Name, ok
}

// IsLeaf reports whether v is already a resolved leaf: it carries a delta
// or a lambda attribute (the two are mutually exclusive; Put does not check
// this, Validate reports it).
func (v Vertex) IsLeaf() bool {
	_, hasDelta := v.Attrs[DeltaName]
	_, hasLambda := v.Attrs[LambdaName]
	return hasDelta || hasLambda
}
