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

package resolve

import (
	"fmt"

	"github.com/objectionary/phie/errors"
	"github.com/objectionary/phie/internal/core/phi"
)

// Resolve walks body to an Outcome in the context of fr. body is typically
// an attribute already looked up by the caller (the Dataizer asking for a
// vertex's phi, an atom asking for one of its positional arguments); Resolve
// itself performs any further chain traversal the body's Locator describes.
func Resolve(u *phi.Universe, fr Frame, body phi.Body) (Outcome, errors.Error) {
	switch b := body.(type) {
	case phi.Data:
		return datum(b.Word), nil
	case phi.Atom:
		return atomCall(b.Name, fr.This, fr), nil
	case phi.Copy:
		bind, err := anchorFrame(u, fr, b.Bind)
		if err != nil {
			return Outcome{}, err
		}
		return vertex(b.Target, fr.rebind(b.Target, bind)), nil
	case phi.Locator:
		return resolveChain(u, fr, b.Anchor, b.Chain)
	default:
		return Outcome{}, errors.Newf(errors.Other, "unsupported attribute body %T", body)
	}
}

// anchorFrame reports the full frame an anchor currently denotes: This
// re-enters fr unchanged, Outer/Rho hands back the whole linked frame that
// was active when the current vertex was entered (so a further rho.rho can
// walk past it), and Root/Absolute land fresh, with no outer of their own.
// Absolute is checked against u here, at the point the anchor is landed, so
// a dangling νN reference fails right where it is named rather than later
// when something tries to dataize it.
func anchorFrame(u *phi.Universe, fr Frame, a phi.Anchor) (Frame, errors.Error) {
	switch a.Kind {
	case phi.This:
		return fr, nil
	case phi.Outer:
		if fr.Outer == nil {
			return Frame{}, errors.Newf(errors.UnboundOuter, "outer is unbound in this context")
		}
		return *fr.Outer, nil
	case phi.Root:
		return Frame{This: fr.Root, Root: fr.Root}, nil
	case phi.Absolute:
		if _, gerr := u.Get(a.ID); gerr != nil {
			return Frame{}, gerr
		}
		return Frame{This: a.ID, Root: fr.Root}, nil
	default:
		return Frame{}, errors.Newf(errors.Other, "unknown anchor kind %v", a.Kind)
	}
}

// resolveChain implements the resolver's step loop: start at the anchor's
// vertex, then walk chain, applying phi-decoration, copy dereferencing, and
// copy-binding suffixes at each step.
func resolveChain(u *phi.Universe, fr Frame, anchor phi.Anchor, chain []phi.Step) (Outcome, errors.Error) {
	curFrame, err := anchorFrame(u, fr, anchor)
	if err != nil {
		return Outcome{}, err
	}
	curID := curFrame.This
	if len(chain) == 0 {
		return vertex(curID, curFrame), nil
	}

	for i, step := range chain {
		last := i == len(chain)-1
		var nextID phi.ID
		var nextFrame Frame

		switch {
		case step.Name.Special(phi.Rho):
			if curFrame.Outer == nil {
				return Outcome{}, errors.Newf(errors.UnboundOuter, "ν%d has no bound outer/rho", curID)
			}
			nextFrame = *curFrame.Outer
			nextID = nextFrame.This

		case step.Name.Special(phi.Sigma):
			if curFrame.Sigma == nil {
				return Outcome{}, errors.Newf(errors.UnboundOuter, "ν%d has no prior (sigma) context", curID)
			}
			nextFrame = *curFrame.Sigma
			nextID = nextFrame.This

		default:
			v, gerr := u.Get(curID)
			if gerr != nil {
				return Outcome{}, gerr
			}
			body, ok := v.Lookup(step.Name)
			if !ok && !step.Name.Special(phi.Phi) {
				if phiBody, hasPhi := v.Lookup(phi.PhiName); hasPhi {
					sub, serr := Resolve(u, curFrame, phiBody)
					if serr != nil {
						return Outcome{}, serr
					}
					switch sub.Kind {
					case KindVertex:
						curID, curFrame = sub.Vertex, sub.Frame
					case KindDatum:
						return Outcome{}, errors.Newf(errors.DataNotObject,
							"ν%d.phi is a datum, cannot look up %s", curID, step.Name.String(u.Interner()))
					case KindAtomCall:
						return Outcome{}, errors.Newf(errors.AtomNotObject,
							"ν%d.phi is an atom, cannot look up %s", curID, step.Name.String(u.Interner()))
					}
					v, gerr = u.Get(curID)
					if gerr != nil {
						return Outcome{}, gerr
					}
					body, ok = v.Lookup(step.Name)
				}
			}
			if !ok {
				return Outcome{}, errors.Newf(errors.AttributeNotFound,
					"ν%d has no attribute %s", curID, step.Name.String(u.Interner()))
			}

			switch b := body.(type) {
			case phi.Data:
				if !last {
					return Outcome{}, errors.Newf(errors.DataNotObject,
						"ν%d.%s is a datum, cannot continue chain", curID, step.Name.String(u.Interner()))
				}
				if step.Bind != nil {
					return Outcome{}, errors.Newf(errors.DataNotObject,
						"ν%d.%s is a datum, cannot apply a copy-binding suffix", curID, step.Name.String(u.Interner()))
				}
				return datum(b.Word), nil
			case phi.Atom:
				if !last {
					return Outcome{}, errors.Newf(errors.AtomNotObject,
						"ν%d.%s is an atom, cannot continue chain", curID, step.Name.String(u.Interner()))
				}
				if step.Bind != nil {
					return Outcome{}, errors.Newf(errors.AtomNotObject,
						"ν%d.%s is an atom, cannot apply a copy-binding suffix", curID, step.Name.String(u.Interner()))
				}
				return atomCall(b.Name, curID, curFrame), nil
			case phi.Copy:
				bind, berr := anchorFrame(u, curFrame, b.Bind)
				if berr != nil {
					return Outcome{}, berr
				}
				nextID = b.Target
				nextFrame = curFrame.rebind(b.Target, bind)
			case phi.Locator:
				sub, serr := resolveChain(u, curFrame, b.Anchor, b.Chain)
				if serr != nil {
					return Outcome{}, serr
				}
				if sub.Kind != KindVertex {
					if step.Bind != nil {
						return Outcome{}, errors.Newf(errors.DataNotObject,
							"cannot apply a copy-binding suffix to a non-object result at ν%d.%s",
							curID, step.Name.String(u.Interner()))
					}
					if last {
						return sub, nil
					}
					if sub.Kind == KindDatum {
						return Outcome{}, errors.Newf(errors.DataNotObject,
							"ν%d.%s is a datum, cannot continue chain", curID, step.Name.String(u.Interner()))
					}
					return Outcome{}, errors.Newf(errors.AtomNotObject,
						"ν%d.%s is an atom, cannot continue chain", curID, step.Name.String(u.Interner()))
				}
				nextID, nextFrame = sub.Vertex, sub.Frame
			default:
				return Outcome{}, errors.Newf(errors.Other, "unsupported attribute body %T", body)
			}
		}

		if step.Bind != nil {
			bind, berr := anchorFrame(u, curFrame, *step.Bind)
			if berr != nil {
				return Outcome{}, berr
			}
			nextFrame = nextFrame.rebind(nextID, bind)
		}

		curID, curFrame = nextID, nextFrame
		if last {
			return vertex(curID, curFrame), nil
		}
	}
	return vertex(curID, curFrame), nil
}

// String renders a frame's current vertex, for context-chain frames in
// errors.
func (fr Frame) String() string {
	return fmt.Sprintf("ν%d", fr.This)
}
