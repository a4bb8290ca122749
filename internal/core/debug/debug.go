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

// Package debug renders a Universe, or any other value, for humans. The
// CLI's --trace mode prints the Universe through Universe here; Sdump is a
// general kr/pretty helper.
package debug

import (
	"fmt"
	"sort"
	"strings"

	"github.com/kr/pretty"

	"github.com/objectionary/phie/internal/core/phi"
)

// Sdump renders v using kr/pretty, for quick inspection in test failure
// messages.
func Sdump(v any) string {
	return pretty.Sprint(v)
}

// Universe renders every vertex of u, in insertion order, one line of
// attribute names per vertex. It is not a surface-syntax writer — there is
// no requirement that its output round-trip through a parser.
func Universe(u *phi.Universe) string {
	var b strings.Builder
	for _, id := range u.Order() {
		v, err := u.Get(id)
		if err != nil {
			fmt.Fprintf(&b, "ν%d: <%v>\n", id, err)
			continue
		}
		names := make([]string, 0, len(v.Attrs))
		for n := range v.Attrs {
			names = append(names, n.String(u.Interner()))
		}
		sort.Strings(names)
		fmt.Fprintf(&b, "ν%d: %s\n", id, strings.Join(names, ", "))
	}
	return b.String()
}
