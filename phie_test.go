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

package phie_test

import (
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/objectionary/phie"
	"github.com/objectionary/phie/internal/demo"
)

func TestDataizeSelfAddThroughFacade(t *testing.T) {
	u := demo.SelfAdd()
	rt := phie.NewRuntime()
	word, cycles, err := phie.Dataize(rt, u)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(word, uint64(84)))
	qt.Assert(t, qt.IsTrue(cycles > 0))
}

func TestValidateReportsNothingForBundledDemos(t *testing.T) {
	qt.Assert(t, qt.HasLen(phie.Validate(demo.Constant()), 0))
	qt.Assert(t, qt.HasLen(phie.Validate(demo.SelfAdd()), 0))
	qt.Assert(t, qt.HasLen(phie.Validate(demo.Fibonacci(7)), 0))
}

func TestIsKindMatchesMissingVertex(t *testing.T) {
	u := phie.NewUniverse()
	_, _, err := phie.Dataize(phie.NewRuntime(), u)
	qt.Assert(t, qt.IsNotNil(err))
	qt.Assert(t, qt.IsTrue(phie.IsKind(err, "MissingVertex")))
	qt.Assert(t, qt.IsFalse(phie.IsKind(err, "StepLimit")))
}
