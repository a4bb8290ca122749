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

package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/go-quicktest/qt"
)

func TestDataizeCommandPrintsWord(t *testing.T) {
	root := Root()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"dataize"})
	qt.Assert(t, qt.IsNil(root.Execute()))
	qt.Assert(t, qt.IsTrue(strings.HasPrefix(out.String(), "84 ")))
}

func TestFibCommandPrintsResult(t *testing.T) {
	root := Root()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"fib", "--n", "7"})
	qt.Assert(t, qt.IsNil(root.Execute()))
	qt.Assert(t, qt.IsTrue(strings.Contains(out.String(), "fib(7) = 13")))
}

func TestFibCommandRepeat(t *testing.T) {
	root := Root()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"fib", "--n", "5", "--repeat", "3"})
	qt.Assert(t, qt.IsNil(root.Execute()))
	qt.Assert(t, qt.IsTrue(strings.Contains(out.String(), "3 runs")))
}
