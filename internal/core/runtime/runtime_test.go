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

package runtime

import (
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/objectionary/phie/errors"
	"github.com/objectionary/phie/internal/core/atom"
)

func TestNewHasBuiltinAtomsAndDefaultSink(t *testing.T) {
	rt := New()
	_, ok := rt.Atom("int-add")
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.IsNotNil(rt.Sink))
}

func TestRegisterAtomAddsAndOverrides(t *testing.T) {
	rt := New()
	called := false
	rt.RegisterAtom("int-add", func(c atom.Context) (atom.Result, errors.Error) {
		called = true
		return atom.Result{}, nil
	})
	fn, ok := rt.Atom("int-add")
	qt.Assert(t, qt.IsTrue(ok))
	_, _ = fn(atom.Context{})
	qt.Assert(t, qt.IsTrue(called))
}

func TestUnknownAtomNotFound(t *testing.T) {
	rt := New()
	_, ok := rt.Atom("nope")
	qt.Assert(t, qt.IsFalse(ok))
}
