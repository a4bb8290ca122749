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

import (
	"fmt"

	"github.com/objectionary/phie/errors"
)

// RootID is the Universe's fixed root vertex id.
const RootID ID = 0

// Universe is a total mapping from vertex id to Vertex, plus a shared
// Interner for labelled attribute names. It is a flat indexed container:
// iteration order over its vertices is never semantically observable, only
// insertion order is recorded for tooling such as debug dumps.
type Universe struct {
	interner *Interner
	vertices map[ID]Vertex
	order    []ID
}

// NewUniverse returns an empty Universe with its own Interner.
func NewUniverse() *Universe {
	return &Universe{interner: NewInterner(), vertices: make(map[ID]Vertex)}
}

// Interner returns the Universe's shared label interner.
func (u *Universe) Interner() *Interner { return u.interner }

// Root returns the designated root id, always RootID.
func (u *Universe) Root() ID { return RootID }

// Put inserts v under id. It fails with DuplicateVertex if id is already
// present.
func (u *Universe) Put(id ID, v Vertex) errors.Error {
	if _, exists := u.vertices[id]; exists {
		return errors.Newf(errors.DuplicateVertex, "vertex ν%d already exists", id)
	}
	u.vertices[id] = v
	u.order = append(u.order, id)
	return nil
}

// PutOverwrite inserts or replaces v under id without the strict-mode
// DuplicateVertex check.
func (u *Universe) PutOverwrite(id ID, v Vertex) {
	if _, exists := u.vertices[id]; !exists {
		u.order = append(u.order, id)
	}
	u.vertices[id] = v
}

// Get returns the vertex at id, or MissingVertex if absent.
func (u *Universe) Get(id ID) (Vertex, errors.Error) {
	v, ok := u.vertices[id]
	if !ok {
		return Vertex{}, errors.Newf(errors.MissingVertex, "%s not found", fmt.Sprintf("ν%d", id))
	}
	return v, nil
}

// Order returns vertex ids in insertion order. It exists for deterministic
// debug dumps only; no resolution or dataization algorithm may depend on it
// (dataization results must not depend on vertex insertion order).
func (u *Universe) Order() []ID {
	out := make([]ID, len(u.order))
	copy(out, u.order)
	return out
}

// Len reports the number of vertices in the Universe.
func (u *Universe) Len() int { return len(u.vertices) }
