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
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/objectionary/phie/errors"
)

func TestUniversePutAndGet(t *testing.T) {
	u := NewUniverse()
	v := NewBuilder(u.Interner()).Delta(7).Build()
	qt.Assert(t, qt.IsNil(u.Put(1, v)))

	got, err := u.Get(1)
	qt.Assert(t, qt.IsNil(err))
	w, ok := got.Delta()
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(w, uint64(7)))
}

func TestUniversePutDuplicateFails(t *testing.T) {
	u := NewUniverse()
	v := NewVertex()
	qt.Assert(t, qt.IsNil(u.Put(1, v)))

	err := u.Put(1, v)
	qt.Assert(t, qt.IsNotNil(err))
	qt.Assert(t, qt.Equals(err.Kind(), errors.DuplicateVertex))
}

func TestUniverseGetMissing(t *testing.T) {
	u := NewUniverse()
	_, err := u.Get(42)
	qt.Assert(t, qt.IsNotNil(err))
	qt.Assert(t, qt.Equals(err.Kind(), errors.MissingVertex))
}

func TestUniversePutOverwrite(t *testing.T) {
	u := NewUniverse()
	u.PutOverwrite(5, NewBuilder(u.Interner()).Delta(1).Build())
	u.PutOverwrite(5, NewBuilder(u.Interner()).Delta(2).Build())
	qt.Assert(t, qt.Equals(u.Len(), 1))

	v, err := u.Get(5)
	qt.Assert(t, qt.IsNil(err))
	w, _ := v.Delta()
	qt.Assert(t, qt.Equals(w, uint64(2)))
}

func TestUniverseOrderIsInsertionOnly(t *testing.T) {
	u := NewUniverse()
	_ = u.Put(3, NewVertex())
	_ = u.Put(1, NewVertex())
	_ = u.Put(2, NewVertex())
	qt.Assert(t, qt.DeepEquals(u.Order(), []ID{3, 1, 2}))
}
