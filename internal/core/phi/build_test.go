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
)

func TestVertexBuilderComposesAllShorthands(t *testing.T) {
	in := NewInterner()
	v := NewBuilder(in).
		Phi(Loc(AnchorThis)).
		Arg(0, Data{Word: 9}).
		Set("label", Data{Word: 1}).
		Build()

	_, ok := v.Lookup(PhiName)
	qt.Assert(t, qt.IsTrue(ok))
	body, ok := v.Lookup(Positional(0))
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.DeepEquals(body, Data{Word: 9}))
	_, ok = v.Lookup(ParseName(in, "label"))
	qt.Assert(t, qt.IsTrue(ok))
}

func TestVertexBuilderLeafShorthands(t *testing.T) {
	in := NewInterner()
	leaf := NewBuilder(in).Lambda("int-add").Build()
	name, ok := leaf.Lambda()
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(name, "int-add"))
	qt.Assert(t, qt.IsTrue(leaf.IsLeaf()))
}
