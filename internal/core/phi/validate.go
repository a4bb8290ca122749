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

import "github.com/objectionary/phie/errors"

// Validate walks every vertex of u and reports, as an errors.List, every
// violation of a static invariant that can be checked without running
// the resolver: delta/lambda mutual exclusion, and absolute locator
// targets that are missing from the Universe. It
// does not and cannot detect cycles that fail to terminate; that is a
// dynamic property of dataization, not a static Universe invariant.
//
// Validate never mutates u and is safe to call before Dataize as a
// pre-flight check.
func Validate(u *Universe) errors.List {
	var list errors.List
	for _, id := range u.Order() {
		v, err := u.Get(id)
		if err != nil {
			list.Add(err)
			continue
		}
		_, hasDelta := v.Attrs[DeltaName]
		_, hasLambda := v.Attrs[LambdaName]
		if hasDelta && hasLambda {
			list.Add(errors.Newf(errors.AtomTypeError,
				"ν%d carries both delta and lambda", id))
		}
		for name, body := range v.Attrs {
			validateBody(u, id, name, body, &list)
		}
	}
	return list
}

func validateBody(u *Universe, owner ID, name Name, body Body, list *errors.List) {
	switch b := body.(type) {
	case Locator:
		if b.Anchor.Kind == Absolute {
			if _, err := u.Get(b.Anchor.ID); err != nil {
				list.Add(errors.Newf(errors.MissingVertex,
					"ν%d.%s references missing ν%d", owner, name.String(u.Interner()), b.Anchor.ID))
			}
		}
		for _, step := range b.Chain {
			if step.Bind != nil && step.Bind.Kind == Absolute {
				if _, err := u.Get(step.Bind.ID); err != nil {
					list.Add(errors.Newf(errors.MissingVertex,
						"ν%d.%s binds to missing ν%d", owner, name.String(u.Interner()), step.Bind.ID))
				}
			}
		}
	case Copy:
		if _, err := u.Get(b.Target); err != nil {
			list.Add(errors.Newf(errors.MissingVertex,
				"ν%d.%s copies missing ν%d", owner, name.String(u.Interner()), b.Target))
		}
		if b.Bind.Kind == Absolute {
			if _, err := u.Get(b.Bind.ID); err != nil {
				list.Add(errors.Newf(errors.MissingVertex,
					"ν%d.%s binds to missing ν%d", owner, name.String(u.Interner()), b.Bind.ID))
			}
		}
	}
}
