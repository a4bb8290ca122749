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

package demo

import (
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/objectionary/phie/internal/core/phi"
)

func TestConstantValidates(t *testing.T) {
	u := Constant()
	qt.Assert(t, qt.HasLen(phi.Validate(u), 0))
}

func TestSelfAddValidates(t *testing.T) {
	u := SelfAdd()
	qt.Assert(t, qt.HasLen(phi.Validate(u), 0))
}

func TestFibonacciValidates(t *testing.T) {
	u := Fibonacci(7)
	qt.Assert(t, qt.HasLen(phi.Validate(u), 0))
	qt.Assert(t, qt.Equals(u.Len(), 9))
}
