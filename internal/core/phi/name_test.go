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

func TestParseNameSpecial(t *testing.T) {
	in := NewInterner()
	for _, s := range []string{"phi", "delta", "lambda", "rho", "sigma"} {
		n := ParseName(in, s)
		qt.Assert(t, qt.Equals(n.Kind(), KindSpecial))
		qt.Assert(t, qt.Equals(n.String(in), s))
	}
}

func TestParseNamePositional(t *testing.T) {
	in := NewInterner()
	n := ParseName(in, "a12")
	qt.Assert(t, qt.Equals(n.Kind(), KindPositional))
	qt.Assert(t, qt.Equals(n, Positional(12)))
	qt.Assert(t, qt.Equals(n.String(in), "a12"))
}

func TestParseNameLabelled(t *testing.T) {
	in := NewInterner()
	n1 := ParseName(in, "amount")
	n2 := ParseName(in, "amount")
	qt.Assert(t, qt.Equals(n1.Kind(), KindLabelled))
	qt.Assert(t, qt.Equals(n1, n2), qt.Commentf("interning the same text twice must yield the same Name"))
	qt.Assert(t, qt.Equals(n1.String(in), "amount"))
}

func TestNameLessOrdering(t *testing.T) {
	in := NewInterner()
	names := []Name{
		ParseName(in, "label"),
		Positional(10),
		Positional(2),
		PhiName,
		RhoName,
	}
	qt.Assert(t, qt.IsTrue(PhiName.Less(RhoName) || RhoName.Less(PhiName) || PhiName == RhoName))
	qt.Assert(t, qt.IsTrue(Positional(2).Less(Positional(10))))
	qt.Assert(t, qt.IsTrue(PhiName.Less(Positional(0))))
	qt.Assert(t, qt.IsTrue(Positional(0).Less(names[0])))
}

func TestNameEqualityAsMapKey(t *testing.T) {
	m := map[Name]int{}
	m[DeltaName] = 1
	m[Positional(0)] = 2
	qt.Assert(t, qt.Equals(m[SpecialName(Delta)], 1))
	qt.Assert(t, qt.Equals(len(m), 2))
}
