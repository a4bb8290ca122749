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

// Interner assigns stable small integer indices to labelled attribute
// names, shared by every vertex of a Universe. Evaluation is single
// threaded, so no locking is required.
type Interner struct {
	toIndex map[string]uint32
	toText  []string
}

// NewInterner returns an empty Interner.
func NewInterner() *Interner {
	return &Interner{toIndex: make(map[string]uint32)}
}

// ToIndex returns the stable index for s, assigning a fresh one the first
// time s is seen.
func (in *Interner) ToIndex(s string) uint32 {
	if i, ok := in.toIndex[s]; ok {
		return i
	}
	i := uint32(len(in.toText))
	in.toText = append(in.toText, s)
	in.toIndex[s] = i
	return i
}

// ToString returns the text for index i. It panics if i was never assigned
// by ToIndex, which would indicate a Name built against a different Interner.
func (in *Interner) ToString(i uint32) string {
	return in.toText[i]
}
