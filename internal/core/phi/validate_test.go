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

func TestValidateCleanUniverse(t *testing.T) {
	u := NewUniverse()
	_ = u.Put(RootID, NewBuilder(u.Interner()).Phi(Loc(At(1))).Build())
	_ = u.Put(1, NewBuilder(u.Interner()).Delta(1).Build())

	qt.Assert(t, qt.HasLen(Validate(u), 0))
}

func TestValidateRejectsDeltaAndLambdaTogether(t *testing.T) {
	u := NewUniverse()
	v := NewBuilder(u.Interner()).Delta(1).Lambda("int-add").Build()
	_ = u.Put(RootID, v)

	list := Validate(u)
	qt.Assert(t, qt.HasLen(list, 1))
	qt.Assert(t, qt.Equals(list[0].Kind(), errors.AtomTypeError))
}

func TestValidateRejectsMissingAbsoluteTarget(t *testing.T) {
	u := NewUniverse()
	_ = u.Put(RootID, NewBuilder(u.Interner()).Phi(Loc(At(99))).Build())

	list := Validate(u)
	qt.Assert(t, qt.HasLen(list, 1))
	qt.Assert(t, qt.Equals(list[0].Kind(), errors.MissingVertex))
}

func TestValidateRejectsMissingCopyTarget(t *testing.T) {
	u := NewUniverse()
	_ = u.Put(RootID, NewBuilder(u.Interner()).Phi(Copy{Target: 7, Bind: AnchorThis}).Build())

	list := Validate(u)
	qt.Assert(t, qt.HasLen(list, 1))
	qt.Assert(t, qt.Equals(list[0].Kind(), errors.MissingVertex))
}
